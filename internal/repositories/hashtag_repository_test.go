package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresHashtagRepository(db)

	tag, created, err := repo.FindOrCreateByName("golang")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, tag.ID)

	again, created, err := repo.FindOrCreateByName("golang")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, tag.ID, again.ID)
}

func TestSearchHashtags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresHashtagRepository(db)

	for _, name := range []string{"golang", "gopher", "postgres"} {
		_, _, err := repo.FindOrCreateByName(name)
		require.NoError(t, err)
	}

	results, err := repo.SearchHashtags("GO")
	require.NoError(t, err)
	names := make([]string, 0, len(results))
	for _, h := range results {
		names = append(names, h.Name)
	}
	assert.ElementsMatch(t, []string{"golang", "gopher"}, names)
}

func TestUpdateAndDeleteHashtag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresHashtagRepository(db)

	tag, _, err := repo.FindOrCreateByName("golnag")
	require.NoError(t, err)

	tag.Name = "golang"
	require.NoError(t, repo.UpdateHashtag(tag))

	renamed, err := repo.GetHashtagByName("golang")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, renamed.ID)

	require.NoError(t, repo.DeleteHashtag(tag.ID))
	_, err = repo.GetHashtagByID(tag.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
