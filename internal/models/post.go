package models

import "time"

// Post is a short text authored by a user, tagged with hashtags and optionally
// referencing other users. Time is server-assigned and never updated.
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Text       string    `json:"text" gorm:"size:144"`
	Time       time.Time `json:"time" gorm:"autoCreateTime;index"`
	UserID     uint      `json:"user_id" gorm:"index"`
	User       User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Hashtags   []Hashtag `json:"hashtags" gorm:"many2many:post_hashtags;constraint:OnDelete:CASCADE"`
	References []User    `json:"-" gorm:"many2many:post_references;constraint:OnDelete:CASCADE"`
	Comments   []Comment `json:"-"`
}

// CreatePostRequest defines the request body for creating a new post. The
// author is always the authenticated caller; there is no author field.
type CreatePostRequest struct {
	Text       string   `json:"text" validate:"required,min=1,max=144"`
	Hashtags   []string `json:"hashtags" validate:"omitempty,dive,min=1,max=20"`
	References []uint   `json:"references" validate:"omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// Pointer fields distinguish "omitted, leave as is" from "present, replace the
// whole set" -- an empty slice clears the set.
type UpdatePostRequest struct {
	Text       *string   `json:"text,omitempty" validate:"omitempty,min=1,max=144"`
	Hashtags   *[]string `json:"hashtags,omitempty" validate:"omitempty,dive,min=1,max=20"`
	References *[]uint   `json:"references,omitempty"`
}

// PostResponse is the post representation returned by list endpoints
type PostResponse struct {
	ID         uint         `json:"id"`
	Text       string       `json:"text"`
	Time       time.Time    `json:"time"`
	User       UserRef      `json:"user"`
	Hashtags   []HashtagRef `json:"hashtags"`
	References []UserRef    `json:"references"`
}

// PostDetailResponse adds the ordered comment list to a post representation.
// It is assembled at read time from the current state of all referenced rows.
type PostDetailResponse struct {
	PostResponse
	Comments      []CommentResponse `json:"comments"`
	CommentsCount int               `json:"comments_count"`
}
