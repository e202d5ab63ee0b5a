package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	PostID uint      `json:"post" gorm:"index"`
	Post   Post      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID uint      `json:"user" gorm:"index"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Text   string    `json:"text" gorm:"size:144"`
	Time   time.Time `json:"time" gorm:"autoCreateTime"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=144"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=144"`
}

// CommentResponse is the comment representation nested in post details
type CommentResponse struct {
	ID       uint      `json:"id"`
	PostID   uint      `json:"post"`
	UserID   uint      `json:"user"`
	UserName string    `json:"user_name"`
	Text     string    `json:"text"`
	Time     time.Time `json:"time"`
}
