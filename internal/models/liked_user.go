package models

import "time"

// LikedUser records that one user likes another. The composite unique index
// guarantees at most one row per ordered (liker, liked_user) pair.
type LikedUser struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	LikerID     uint      `json:"liker" gorm:"index;uniqueIndex:idx_liker_liked_user"`
	LikedUserID uint      `json:"liked_user" gorm:"index;uniqueIndex:idx_liker_liked_user"`
	Liker       User      `json:"-" gorm:"foreignKey:LikerID;constraint:OnDelete:CASCADE"`
	Liked       User      `json:"-" gorm:"foreignKey:LikedUserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateLikedUserRequest defines the request body for liking a user
type CreateLikedUserRequest struct {
	Liker     uint `json:"liker" validate:"required"`
	LikedUser uint `json:"liked_user" validate:"required"`
}

// DeleteLikedUserRequest defines the request body for removing a user like
type DeleteLikedUserRequest struct {
	Liker     uint `json:"liker" validate:"required"`
	LikedUser uint `json:"liked_user" validate:"required"`
}
