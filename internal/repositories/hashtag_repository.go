package repositories

import (
	"errors"

	"github.com/hive-social/hive-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HashtagRepository defines the interface for hashtag data operations
type HashtagRepository interface {
	FindOrCreateByName(name string) (*models.Hashtag, bool, error)
	GetHashtagByID(id uint) (*models.Hashtag, error)
	GetHashtagByName(name string) (*models.Hashtag, error)
	GetHashtags() ([]models.Hashtag, error)
	SearchHashtags(query string) ([]models.Hashtag, error)
	UpdateHashtag(hashtag *models.Hashtag) error
	DeleteHashtag(id uint) error
}

// PostgresHashtagRepository implements HashtagRepository for PostgreSQL
type PostgresHashtagRepository struct {
	db *gorm.DB
}

// NewPostgresHashtagRepository creates a new PostgresHashtagRepository
func NewPostgresHashtagRepository(db *gorm.DB) *PostgresHashtagRepository {
	return &PostgresHashtagRepository{db: db}
}

// FindOrCreateByName looks a hashtag up by name and creates it if absent.
// The bool result reports whether a new row was created.
func (r *PostgresHashtagRepository) FindOrCreateByName(name string) (*models.Hashtag, bool, error) {
	tag, created, err := findOrCreateHashtag(r.db, name)
	if err != nil {
		return nil, false, err
	}
	return tag, created, nil
}

// findOrCreateHashtag inserts a hashtag with ON CONFLICT DO NOTHING against
// the unique index on name, then re-reads on conflict. The insert and the
// uniqueness check are a single atomic statement, so two concurrent calls for
// the same name resolve to the same row. Shared with the post repository so
// post creation can run it inside its own transaction.
func findOrCreateHashtag(tx *gorm.DB, name string) (*models.Hashtag, bool, error) {
	tag := models.Hashtag{Name: name}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, false, err
		}
		return &tag, false, nil
	}
	return &tag, true, nil
}

// GetHashtagByID retrieves a hashtag by ID from PostgreSQL
func (r *PostgresHashtagRepository) GetHashtagByID(id uint) (*models.Hashtag, error) {
	var tag models.Hashtag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetHashtagByName retrieves a hashtag by its exact name
func (r *PostgresHashtagRepository) GetHashtagByName(name string) (*models.Hashtag, error) {
	var tag models.Hashtag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetHashtags retrieves all hashtags from PostgreSQL
func (r *PostgresHashtagRepository) GetHashtags() ([]models.Hashtag, error) {
	var tags []models.Hashtag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// SearchHashtags retrieves hashtags whose name contains the query,
// case-insensitively. An empty query matches every hashtag.
func (r *PostgresHashtagRepository) SearchHashtags(query string) ([]models.Hashtag, error) {
	var tags []models.Hashtag
	if err := r.db.Where("name ILIKE ?", "%"+query+"%").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// UpdateHashtag updates an existing hashtag in PostgreSQL
func (r *PostgresHashtagRepository) UpdateHashtag(hashtag *models.Hashtag) error {
	return r.db.Save(hashtag).Error
}

// DeleteHashtag deletes a hashtag by ID. No ordinary flow calls this; it
// exists for the administrative CRUD surface. Follows and post associations
// referencing the hashtag are removed by the FK cascades.
func (r *PostgresHashtagRepository) DeleteHashtag(id uint) error {
	res := r.db.Delete(&models.Hashtag{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
