package repositories

import (
	"github.com/hive-social/hive-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowedHashtagRepository defines the interface for the user-follows-hashtag ledger
type FollowedHashtagRepository interface {
	CreateFollowedHashtag(follow *models.FollowedHashtag) (bool, error)
	DeleteFollowedHashtag(userID, hashtagID uint) error
	IsFollowingHashtag(userID, hashtagID uint) (bool, error)
	GetFollowedHashtagsByUser(userID uint) ([]models.FollowedHashtag, error)
	GetFollowedCount(userID uint) (int64, error)
	GetFollowerCountByHashtag(hashtagID uint) (int64, error)
	GetFollowedHashtags() ([]models.FollowedHashtag, error)
}

// PostgresFollowedHashtagRepository implements FollowedHashtagRepository for PostgreSQL
type PostgresFollowedHashtagRepository struct {
	db *gorm.DB
}

// NewPostgresFollowedHashtagRepository creates a new PostgresFollowedHashtagRepository
func NewPostgresFollowedHashtagRepository(db *gorm.DB) *PostgresFollowedHashtagRepository {
	return &PostgresFollowedHashtagRepository{db: db}
}

// CreateFollowedHashtag inserts the follow with ON CONFLICT DO NOTHING. On
// conflict the existing row is loaded into follow and false is returned.
func (r *PostgresFollowedHashtagRepository) CreateFollowedHashtag(follow *models.FollowedHashtag) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "hashtag_id"}},
		DoNothing: true,
	}).Create(follow)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		err := r.db.Where("user_id = ? AND hashtag_id = ?", follow.UserID, follow.HashtagID).
			First(follow).Error
		return false, err
	}
	return true, nil
}

// DeleteFollowedHashtag removes the follow, ErrNotFound if no row exists
func (r *PostgresFollowedHashtagRepository) DeleteFollowedHashtag(userID, hashtagID uint) error {
	res := r.db.Where("user_id = ? AND hashtag_id = ?", userID, hashtagID).
		Delete(&models.FollowedHashtag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFollowingHashtag reports whether the user follows the hashtag
func (r *PostgresFollowedHashtagRepository) IsFollowingHashtag(userID, hashtagID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.FollowedHashtag{}).
		Where("user_id = ? AND hashtag_id = ?", userID, hashtagID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowedHashtagsByUser retrieves the user's follows with hashtags preloaded
func (r *PostgresFollowedHashtagRepository) GetFollowedHashtagsByUser(userID uint) ([]models.FollowedHashtag, error) {
	var follows []models.FollowedHashtag
	err := r.db.Preload("Hashtag").Where("user_id = ?", userID).Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

// GetFollowedCount retrieves how many hashtags the user follows
func (r *PostgresFollowedHashtagRepository) GetFollowedCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FollowedHashtag{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// GetFollowerCountByHashtag retrieves how many users follow the hashtag
func (r *PostgresFollowedHashtagRepository) GetFollowerCountByHashtag(hashtagID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FollowedHashtag{}).Where("hashtag_id = ?", hashtagID).Count(&count).Error
	return count, err
}

// GetFollowedHashtags retrieves every row in the ledger
func (r *PostgresFollowedHashtagRepository) GetFollowedHashtags() ([]models.FollowedHashtag, error) {
	var follows []models.FollowedHashtag
	if err := r.db.Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}
