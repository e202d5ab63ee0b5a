package repositories

import (
	"github.com/hive-social/hive-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowedUserRepository defines the interface for the user-follows-user ledger
type FollowedUserRepository interface {
	CreateFollowedUser(follow *models.FollowedUser) (bool, error)
	DeleteFollowedUser(followerID, followedUserID uint) error
	IsFollowingUser(followerID, followedUserID uint) (bool, error)
	GetFollowedUsersByUser(followerID uint) ([]models.FollowedUser, error)
	GetFollowingCount(followerID uint) (int64, error)
	GetFollowersCount(followedUserID uint) (int64, error)
	GetFollowedUsers() ([]models.FollowedUser, error)
}

// PostgresFollowedUserRepository implements FollowedUserRepository for PostgreSQL
type PostgresFollowedUserRepository struct {
	db *gorm.DB
}

// NewPostgresFollowedUserRepository creates a new PostgresFollowedUserRepository
func NewPostgresFollowedUserRepository(db *gorm.DB) *PostgresFollowedUserRepository {
	return &PostgresFollowedUserRepository{db: db}
}

// CreateFollowedUser inserts the follow with ON CONFLICT DO NOTHING. On
// conflict the existing row is loaded into follow and false is returned.
func (r *PostgresFollowedUserRepository) CreateFollowedUser(follow *models.FollowedUser) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followed_user_id"}},
		DoNothing: true,
	}).Create(follow)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		err := r.db.Where("follower_id = ? AND followed_user_id = ?", follow.FollowerID, follow.FollowedUserID).
			First(follow).Error
		return false, err
	}
	return true, nil
}

// DeleteFollowedUser removes the follow, ErrNotFound if no row exists
func (r *PostgresFollowedUserRepository) DeleteFollowedUser(followerID, followedUserID uint) error {
	res := r.db.Where("follower_id = ? AND followed_user_id = ?", followerID, followedUserID).
		Delete(&models.FollowedUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFollowingUser reports whether the follower follows the target user
func (r *PostgresFollowedUserRepository) IsFollowingUser(followerID, followedUserID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.FollowedUser{}).
		Where("follower_id = ? AND followed_user_id = ?", followerID, followedUserID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowedUsersByUser retrieves the users followed by the follower, with
// the followed user rows preloaded
func (r *PostgresFollowedUserRepository) GetFollowedUsersByUser(followerID uint) ([]models.FollowedUser, error) {
	var follows []models.FollowedUser
	err := r.db.Preload("Followed").Where("follower_id = ?", followerID).Find(&follows).Error
	if err != nil {
		return nil, err
	}
	return follows, nil
}

// GetFollowingCount retrieves how many users the follower follows
func (r *PostgresFollowedUserRepository) GetFollowingCount(followerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FollowedUser{}).Where("follower_id = ?", followerID).Count(&count).Error
	return count, err
}

// GetFollowersCount retrieves how many users follow the target user
func (r *PostgresFollowedUserRepository) GetFollowersCount(followedUserID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FollowedUser{}).Where("followed_user_id = ?", followedUserID).Count(&count).Error
	return count, err
}

// GetFollowedUsers retrieves every row in the ledger
func (r *PostgresFollowedUserRepository) GetFollowedUsers() ([]models.FollowedUser, error) {
	var follows []models.FollowedUser
	if err := r.db.Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}
