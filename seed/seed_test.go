package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpost-api/db"
	"blogpost-api/repository"
)

func TestGenerate(t *testing.T) {
	p := Generate()

	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.Title)
	assert.NotEmpty(t, p.Content)
	assert.NotEmpty(t, p.Author.FirstName)
	assert.NotEmpty(t, p.Author.LastName)
	assert.False(t, p.Created.IsZero())
}

func TestSeed(t *testing.T) {
	ldb, err := db.NewMemLevelDB()
	require.NoError(t, err)
	defer ldb.Close()
	repo := repository.NewBlogPostRepository(ldb)

	posts, err := Seed(repo, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 10)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	for _, p := range posts {
		got, err := repo.FindByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Title, got.Title)
	}
}
