package models

import "time"

// FollowedUser records a follow relationship between two users. One row per
// ordered (follower, followed_user) pair.
type FollowedUser struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FollowerID     uint      `json:"follower" gorm:"index;uniqueIndex:idx_follower_followed_user"`
	FollowedUserID uint      `json:"followed_user" gorm:"index;uniqueIndex:idx_follower_followed_user"`
	Follower       User      `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followed       User      `json:"-" gorm:"foreignKey:FollowedUserID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateFollowedUserRequest defines the request body for following a user.
// The follower is always the authenticated caller.
type CreateFollowedUserRequest struct {
	FollowedUser uint `json:"followed_user" validate:"required"`
}
