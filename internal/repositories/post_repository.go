package repositories

import (
	"errors"

	"github.com/hive-social/hive-backend/internal/models"
	"gorm.io/gorm"
)

// PostFilter narrows a feed listing. Zero value lists everything. HashtagIDs
// use OR semantics: a post matching any id qualifies, once.
type PostFilter struct {
	HashtagIDs []uint
	AuthorID   uint
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post, hashtagNames []string, referenceIDs []uint) error
	GetPostByID(id uint) (*models.Post, error)
	GetPosts(filter PostFilter) ([]models.Post, error)
	UpdatePost(post *models.Post, text *string, hashtagNames *[]string, referenceIDs *[]uint) error
	DeletePost(id uint) error
	GetPostsCountByUser(userID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a post together with its hashtag and reference
// associations in one transaction. Hashtags are resolved find-or-create by
// name; references must all exist (ErrNotFound otherwise). A failure on any
// step rolls the whole post back.
func (r *PostgresPostRepository) CreatePost(post *models.Post, hashtagNames []string, referenceIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		refs, err := resolveReferences(tx, referenceIDs)
		if err != nil {
			return err
		}
		tags, err := resolveHashtags(tx, hashtagNames)
		if err != nil {
			return err
		}
		post.Hashtags = tags
		post.References = refs
		return tx.Create(post).Error
	})
}

// resolveHashtags maps hashtag names to rows, creating missing ones. Names
// are deduplicated and empties skipped, mirroring post input handling.
func resolveHashtags(tx *gorm.DB, names []string) ([]models.Hashtag, error) {
	tags := make([]models.Hashtag, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tag, _, err := findOrCreateHashtag(tx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// resolveReferences loads the referenced users, failing with ErrNotFound if
// any id does not resolve.
func resolveReferences(tx *gorm.DB, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	var users []models.User
	if err := tx.Find(&users, unique).Error; err != nil {
		return nil, err
	}
	if len(users) != len(unique) {
		return nil, ErrNotFound
	}
	return users, nil
}

// GetPostByID retrieves a post with its author, hashtags, references and
// comments (newest first) preloaded.
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("User").
		Preload("Hashtags").
		Preload("References").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.time DESC, comments.id DESC")
		}).
		Preload("Comments.User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPosts lists posts for the feed, newest first with descending id as the
// tie-breaker. A hashtag filter joins the post_hashtags table and selects
// DISTINCT so a post matching several of the requested hashtags still appears
// exactly once.
func (r *PostgresPostRepository) GetPosts(filter PostFilter) ([]models.Post, error) {
	q := r.db.Model(&models.Post{}).
		Preload("User").
		Preload("Hashtags").
		Preload("References")
	if len(filter.HashtagIDs) > 0 {
		q = q.Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
			Where("post_hashtags.hashtag_id IN ?", filter.HashtagIDs).
			Distinct("posts.*")
	}
	if filter.AuthorID != 0 {
		q = q.Where("posts.user_id = ?", filter.AuthorID)
	}
	var posts []models.Post
	if err := q.Order("posts.time DESC, posts.id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost applies the replace-or-leave semantics of post updates: a nil
// field leaves the current value untouched, a present field overwrites text
// or replaces the whole association set (an empty set clears it). All steps
// run in one transaction. The creation time is never touched.
func (r *PostgresPostRepository) UpdatePost(post *models.Post, text *string, hashtagNames *[]string, referenceIDs *[]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if text != nil {
			if err := tx.Model(post).Update("text", *text).Error; err != nil {
				return err
			}
		}
		if hashtagNames != nil {
			tags, err := resolveHashtags(tx, *hashtagNames)
			if err != nil {
				return err
			}
			if err := tx.Model(post).Association("Hashtags").Replace(&tags); err != nil {
				return err
			}
		}
		if referenceIDs != nil {
			refs, err := resolveReferences(tx, *referenceIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(post).Association("References").Replace(&refs); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePost deletes a post by ID. Comments, liked-post rows and the join
// rows in post_hashtags/post_references go with it via the FK cascades, so
// the parent and its dependents disappear atomically.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	res := r.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPostsCountByUser retrieves the number of posts authored by a user
func (r *PostgresPostRepository) GetPostsCountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
