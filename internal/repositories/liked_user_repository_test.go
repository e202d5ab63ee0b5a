package repositories

import (
	"testing"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikedUserCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	created, err := repo.CreateLikedUser(&models.LikedUser{LikerID: alice.ID, LikedUserID: bob.ID})
	require.NoError(t, err)
	assert.True(t, created)

	// Second create of the same pair is absorbed, not duplicated
	dup := &models.LikedUser{LikerID: alice.ID, LikedUserID: bob.ID}
	created, err = repo.CreateLikedUser(dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NotZero(t, dup.ID, "existing row should be loaded on conflict")

	assert.Equal(t, int64(1), countRows(t, db, &models.LikedUser{}))

	count, err := repo.GetLikesCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLikedUserPairIsDirectional(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	created, err := repo.CreateLikedUser(&models.LikedUser{LikerID: alice.ID, LikedUserID: bob.ID})
	require.NoError(t, err)
	assert.True(t, created)

	// The reverse direction is a distinct pair
	created, err = repo.CreateLikedUser(&models.LikedUser{LikerID: bob.ID, LikedUserID: alice.ID})
	require.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, int64(2), countRows(t, db, &models.LikedUser{}))

	likedBy, err := repo.GetLikedByCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likedBy)
}

func TestLikedUserSelfLikeAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikedUserRepository(db)
	alice := createTestUser(t, db)

	created, err := repo.CreateLikedUser(&models.LikedUser{LikerID: alice.ID, LikedUserID: alice.ID})
	require.NoError(t, err)
	assert.True(t, created)

	has, err := repo.HasLikedUser(alice.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestLikedUserDeleteIsStrict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	err := repo.DeleteLikedUser(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.CreateLikedUser(&models.LikedUser{LikerID: alice.ID, LikedUserID: bob.ID})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteLikedUser(alice.ID, bob.ID))

	// Deleting again fails: the relationship is gone
	err = repo.DeleteLikedUser(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLikedUserIDsReflectLedger(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	carol := createTestUser(t, db)

	for _, target := range []uint{bob.ID, carol.ID} {
		_, err := repo.CreateLikedUser(&models.LikedUser{LikerID: alice.ID, LikedUserID: target})
		require.NoError(t, err)
	}

	ids, err := repo.GetLikedUserIDs(alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
}
