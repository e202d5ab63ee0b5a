package repositories

import (
	"testing"
	"time"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)
	alice := createTestUser(t, db)

	byID, err := repo.GetUserByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Username, byID.Username)

	byEmail, err := repo.GetUserByEmail(alice.Email)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	byName, err := repo.GetUserByUsername(alice.Username)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	_, err = repo.GetUserByID(99999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Deleting a user must take down everything that references them: their posts
// with comments, their comments on other posts, and every ledger row naming
// them on either side. Content of other users stays.
func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)
	postRepo := NewPostgresPostRepository(db)
	likedUserRepo := NewPostgresLikedUserRepository(db)
	followedUserRepo := NewPostgresFollowedUserRepository(db)
	followedHashtagRepo := NewPostgresFollowedHashtagRepository(db)
	likedPostRepo := NewPostgresLikedPostRepository(db)

	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	tag := &models.Hashtag{Name: "golang"}
	require.NoError(t, db.Create(tag).Error)

	alicePost := createTestPost(t, db, postRepo, alice, "by alice", nil, time.Now())
	bobPost := createTestPost(t, db, postRepo, bob, "by bob", nil, time.Now())

	// Alice comments on Bob's post, Bob on Alice's
	require.NoError(t, db.Create(&models.Comment{PostID: bobPost.ID, UserID: alice.ID, Text: "from alice"}).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: alicePost.ID, UserID: bob.ID, Text: "from bob"}).Error)

	// Ledger rows with Alice on both sides
	_, err := likedUserRepo.CreateLikedUser(&models.LikedUser{LikerID: alice.ID, LikedUserID: bob.ID})
	require.NoError(t, err)
	_, err = likedUserRepo.CreateLikedUser(&models.LikedUser{LikerID: bob.ID, LikedUserID: alice.ID})
	require.NoError(t, err)
	_, err = followedUserRepo.CreateFollowedUser(&models.FollowedUser{FollowerID: alice.ID, FollowedUserID: bob.ID})
	require.NoError(t, err)
	_, err = followedUserRepo.CreateFollowedUser(&models.FollowedUser{FollowerID: bob.ID, FollowedUserID: alice.ID})
	require.NoError(t, err)
	_, err = followedHashtagRepo.CreateFollowedHashtag(&models.FollowedHashtag{UserID: alice.ID, HashtagID: tag.ID})
	require.NoError(t, err)
	_, err = likedPostRepo.CreateLikedPost(&models.LikedPost{UserID: alice.ID, PostID: bobPost.ID})
	require.NoError(t, err)
	_, err = likedPostRepo.CreateLikedPost(&models.LikedPost{UserID: bob.ID, PostID: alicePost.ID})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(alice.ID))

	_, err = repo.GetUserByID(alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Alice's post is gone and with it Bob's comment and like on it
	_, err = postRepo.GetPostByID(alicePost.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), countRows(t, db, &models.LikedUser{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.FollowedUser{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.FollowedHashtag{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.LikedPost{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.Comment{}))

	// Bob and his post survive
	survivor, err := postRepo.GetPostByID(bobPost.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, survivor.UserID)
	assert.Equal(t, int64(1), countRows(t, db, &models.Hashtag{}))
}

func TestDeleteUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)

	err := repo.DeleteUser(424242)
	assert.ErrorIs(t, err, ErrNotFound)
}
