package models

// Hashtag is created lazily the first time a post references its name. The
// unique index on name is what makes find-or-create safe under concurrency.
type Hashtag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:20;uniqueIndex"`
}

// HashtagRef is the compact hashtag summary nested in other responses
type HashtagRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateHashtagRequest defines the request body for creating a hashtag
type CreateHashtagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

// UpdateHashtagRequest defines the request body for renaming a hashtag
type UpdateHashtagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}
