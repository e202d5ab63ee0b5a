package repositories

import (
	"github.com/hive-social/hive-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikedPostRepository defines the interface for the user-likes-post ledger
type LikedPostRepository interface {
	CreateLikedPost(like *models.LikedPost) (bool, error)
	DeleteLikedPost(userID, postID uint) error
	HasLikedPost(userID, postID uint) (bool, error)
	GetLikedPostsByUser(userID uint) ([]models.LikedPost, error)
	GetLikesCountByPost(postID uint) (int64, error)
	GetLikedPostsCountByUser(userID uint) (int64, error)
	GetLikedPosts() ([]models.LikedPost, error)
}

// PostgresLikedPostRepository implements LikedPostRepository for PostgreSQL
type PostgresLikedPostRepository struct {
	db *gorm.DB
}

// NewPostgresLikedPostRepository creates a new PostgresLikedPostRepository
func NewPostgresLikedPostRepository(db *gorm.DB) *PostgresLikedPostRepository {
	return &PostgresLikedPostRepository{db: db}
}

// CreateLikedPost inserts the like with ON CONFLICT DO NOTHING. On conflict
// the existing row is loaded into like and false is returned, so a repeated
// like is a no-op instead of a duplicate or an error.
func (r *PostgresLikedPostRepository) CreateLikedPost(like *models.LikedPost) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		err := r.db.Where("user_id = ? AND post_id = ?", like.UserID, like.PostID).
			First(like).Error
		return false, err
	}
	return true, nil
}

// DeleteLikedPost removes the like, ErrNotFound if no row exists
func (r *PostgresLikedPostRepository) DeleteLikedPost(userID, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.LikedPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasLikedPost reports whether the user currently likes the post
func (r *PostgresLikedPostRepository) HasLikedPost(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.LikedPost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// GetLikedPostsByUser retrieves the user's likes
func (r *PostgresLikedPostRepository) GetLikedPostsByUser(userID uint) ([]models.LikedPost, error) {
	var likes []models.LikedPost
	if err := r.db.Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// GetLikesCountByPost retrieves how many users like the post
func (r *PostgresLikedPostRepository) GetLikesCountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.LikedPost{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// GetLikedPostsCountByUser retrieves how many posts the user likes
func (r *PostgresLikedPostRepository) GetLikedPostsCountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.LikedPost{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// GetLikedPosts retrieves every row in the ledger
func (r *PostgresLikedPostRepository) GetLikedPosts() ([]models.LikedPost, error) {
	var likes []models.LikedPost
	if err := r.db.Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
