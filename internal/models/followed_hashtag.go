package models

import "time"

// FollowedHashtag records that a user follows a hashtag. One row per
// (user, hashtag) pair.
type FollowedHashtag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user" gorm:"index;uniqueIndex:idx_user_hashtag_follow"`
	HashtagID uint      `json:"hashtag" gorm:"index;uniqueIndex:idx_user_hashtag_follow"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Hashtag   Hashtag   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFollowedHashtagRequest defines the request body for following a
// hashtag. The follower is always the authenticated caller.
type CreateFollowedHashtagRequest struct {
	Hashtag uint `json:"hashtag" validate:"required"`
}
