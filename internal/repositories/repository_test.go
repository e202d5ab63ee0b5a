package repositories

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL, migrates
// the schema and wipes all tables. Tests are skipped when no database is
// configured.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Hashtag{},
		&models.Post{},
		&models.Comment{},
		&models.LikedUser{},
		&models.FollowedHashtag{},
		&models.LikedPost{},
		&models.FollowedUser{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	// Children before parents so the FK constraints never block the wipe
	for _, table := range []string{
		"liked_users", "followed_hashtags", "liked_posts", "followed_users",
		"comments", "post_hashtags", "post_references", "posts", "hashtags", "users",
	} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	return db
}

var testUserSeq int

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	testUserSeq++
	user := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", testUserSeq),
		Username: fmt.Sprintf("user%d", testUserSeq),
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, repo PostRepository, author *models.User, text string, hashtags []string, postTime time.Time) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, UserID: author.ID, Time: postTime}
	require.NoError(t, repo.CreatePost(post, hashtags, nil))
	return post
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
