package repositories

import (
	"testing"

	"github.com/hive-social/hive-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowedUserCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	created, err := repo.CreateFollowedUser(&models.FollowedUser{FollowerID: alice.ID, FollowedUserID: bob.ID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateFollowedUser(&models.FollowedUser{FollowerID: alice.ID, FollowedUserID: bob.ID})
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, int64(1), countRows(t, db, &models.FollowedUser{}))
}

func TestFollowedUserCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	carol := createTestUser(t, db)

	for _, follower := range []uint{bob.ID, carol.ID} {
		_, err := repo.CreateFollowedUser(&models.FollowedUser{FollowerID: follower, FollowedUserID: alice.ID})
		require.NoError(t, err)
	}

	followers, err := repo.GetFollowersCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)

	following, err := repo.GetFollowingCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), following)
}

func TestFollowedUserDeleteIsStrict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	err := repo.DeleteFollowedUser(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.CreateFollowedUser(&models.FollowedUser{FollowerID: alice.ID, FollowedUserID: bob.ID})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteFollowedUser(alice.ID, bob.ID))

	following, err := repo.IsFollowingUser(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowedUsersByUserPreloadsTarget(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowedUserRepository(db)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)

	_, err := repo.CreateFollowedUser(&models.FollowedUser{FollowerID: alice.ID, FollowedUserID: bob.ID})
	require.NoError(t, err)

	follows, err := repo.GetFollowedUsersByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, follows, 1)
	assert.Equal(t, bob.Username, follows[0].Followed.Username)
}
