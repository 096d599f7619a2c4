package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogpost-api/db"
	"blogpost-api/models"
	"blogpost-api/repository"
)

func newRepo(t *testing.T) (*repository.BlogPostRepository, *db.LevelDB) {
	t.Helper()
	ldb, err := db.NewMemLevelDB()
	require.NoError(t, err)
	t.Cleanup(func() { ldb.Close() })
	return repository.NewBlogPostRepository(ldb), ldb
}

func post(id, title string) *models.BlogPost {
	return &models.BlogPost{
		ID:      id,
		Title:   title,
		Content: "content of " + title,
		Author:  models.Author{FirstName: "Grace", LastName: "Hopper"},
		Created: time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC),
	}
}

func TestInsertAndFindByID(t *testing.T) {
	repo, _ := newRepo(t)

	require.NoError(t, repo.Insert(post("p1", "hello")))

	got, err := repo.FindByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, models.Author{FirstName: "Grace", LastName: "Hopper"}, got.Author)
	assert.True(t, got.Created.Equal(time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)))
}

func TestFindByID_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.FindByID("nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInsertManyCountAndFindAll(t *testing.T) {
	repo, _ := newRepo(t)

	require.NoError(t, repo.InsertMany([]*models.BlogPost{post("a", "1"), post("b", "2"), post("c", "3")}))

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
}

func TestFindOne(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.FindOne()
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.InsertMany([]*models.BlogPost{post("b", "2"), post("a", "1")}))
	got, err := repo.FindOne()
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestFindAll_IgnoresForeignKeys(t *testing.T) {
	repo, ldb := newRepo(t)

	require.NoError(t, ldb.Put([]byte("other:1"), []byte("not json")))
	require.NoError(t, repo.Insert(post("a", "1")))

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateByID(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Insert(post("a", "1")))

	p := post("ignored", "changed")
	require.NoError(t, repo.UpdateByID("a", p))
	assert.Equal(t, "a", p.ID)

	got, err := repo.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)

	_, err = repo.FindByID("ignored")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.UpdateByID("missing", post("missing", "x")), repository.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.InsertMany([]*models.BlogPost{post("a", "1"), post("b", "2")}))

	require.NoError(t, repo.DeleteByID("a"))
	_, err := repo.FindByID("a")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, repo.DeleteByID("a"), repository.ErrNotFound)
}

func TestDropAll(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.InsertMany([]*models.BlogPost{post("a", "1"), post("b", "2")}))

	require.NoError(t, repo.DropAll())

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}
