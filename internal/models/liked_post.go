package models

import "time"

// LikedPost records that a user likes a post. One row per (user, post) pair.
type LikedPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user" gorm:"index;uniqueIndex:idx_user_post_like"`
	PostID    uint      `json:"post" gorm:"index;uniqueIndex:idx_user_post_like"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Post      Post      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
