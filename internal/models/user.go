package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is the identity record every relationship row and piece of content hangs off.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Username   string    `json:"username" gorm:"uniqueIndex"`
	Password   string    `json:"-"` // Store hashed password, ignore for JSON serialization
	Bio        string    `json:"bio"`
	Registered time.Time `json:"registered" gorm:"autoCreateTime"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
}

// UpdateUserRequest defines the request body for updating the caller's own profile
type UpdateUserRequest struct {
	Email string  `json:"email,omitempty" validate:"omitempty,email"`
	Bio   *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// TokenRequest defines the request body for obtaining a token pair
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenRefreshRequest defines the request body for refreshing an access token
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// UserRef is the compact user summary nested in post and comment responses
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserProfile is the user representation with its derived counters. All fields
// below Registered are computed from the ledgers at read time, never stored.
type UserProfile struct {
	ID                       uint         `json:"id"`
	Email                    string       `json:"email"`
	Username                 string       `json:"username"`
	Bio                      string       `json:"bio"`
	Registered               time.Time    `json:"registered"`
	AmountOfLikedUsers       int64        `json:"amount_of_liked_users"`
	LikedUserIDs             []uint       `json:"liked_user_id"`
	AmountOfMeLikedUsers     int64        `json:"amount_of_me_liked_users"`
	AmountOfFollowedHashtags int64        `json:"amount_of_followed_hashtags"`
	FollowedHashtags         []HashtagRef `json:"id_and_name_of_followed_hashtags"`
	PostsCount               int64        `json:"posts_count"`
	LikedPostsCount          int64        `json:"liked_posts_count"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}
