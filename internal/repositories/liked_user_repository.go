package repositories

import (
	"github.com/hive-social/hive-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikedUserRepository defines the interface for the user-likes-user ledger
type LikedUserRepository interface {
	CreateLikedUser(like *models.LikedUser) (bool, error)
	DeleteLikedUser(likerID, likedUserID uint) error
	HasLikedUser(likerID, likedUserID uint) (bool, error)
	GetLikedUserIDs(likerID uint) ([]uint, error)
	GetLikesCount(likerID uint) (int64, error)
	GetLikedByCount(likedUserID uint) (int64, error)
	GetLikedUsers() ([]models.LikedUser, error)
}

// PostgresLikedUserRepository implements LikedUserRepository for PostgreSQL
type PostgresLikedUserRepository struct {
	db *gorm.DB
}

// NewPostgresLikedUserRepository creates a new PostgresLikedUserRepository
func NewPostgresLikedUserRepository(db *gorm.DB) *PostgresLikedUserRepository {
	return &PostgresLikedUserRepository{db: db}
}

// CreateLikedUser inserts the like if the pair is absent. The insert runs with
// ON CONFLICT DO NOTHING against the composite unique index, so the existence
// check and the write are one atomic statement; on conflict the existing row
// is loaded into like and false is returned.
func (r *PostgresLikedUserRepository) CreateLikedUser(like *models.LikedUser) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "liker_id"}, {Name: "liked_user_id"}},
		DoNothing: true,
	}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		err := r.db.Where("liker_id = ? AND liked_user_id = ?", like.LikerID, like.LikedUserID).
			First(like).Error
		return false, err
	}
	return true, nil
}

// DeleteLikedUser removes the like, failing with ErrNotFound if no row exists
func (r *PostgresLikedUserRepository) DeleteLikedUser(likerID, likedUserID uint) error {
	res := r.db.Where("liker_id = ? AND liked_user_id = ?", likerID, likedUserID).
		Delete(&models.LikedUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasLikedUser reports whether the liker currently likes the target user
func (r *PostgresLikedUserRepository) HasLikedUser(likerID, likedUserID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.LikedUser{}).
		Where("liker_id = ? AND liked_user_id = ?", likerID, likedUserID).
		Count(&count).Error
	return count > 0, err
}

// GetLikedUserIDs retrieves the ids of users the liker likes
func (r *PostgresLikedUserRepository) GetLikedUserIDs(likerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.LikedUser{}).
		Where("liker_id = ?", likerID).
		Pluck("liked_user_id", &ids).Error
	return ids, err
}

// GetLikesCount retrieves how many users the given user likes
func (r *PostgresLikedUserRepository) GetLikesCount(likerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.LikedUser{}).Where("liker_id = ?", likerID).Count(&count).Error
	return count, err
}

// GetLikedByCount retrieves how many users like the given user
func (r *PostgresLikedUserRepository) GetLikedByCount(likedUserID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.LikedUser{}).Where("liked_user_id = ?", likedUserID).Count(&count).Error
	return count, err
}

// GetLikedUsers retrieves every row in the ledger
func (r *PostgresLikedUserRepository) GetLikedUsers() ([]models.LikedUser, error) {
	var likes []models.LikedUser
	if err := r.db.Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
