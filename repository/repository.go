package repository

import (
	"blogpost-api/db"
	"blogpost-api/models"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no post has the requested id
var ErrNotFound = errors.New("blog post not found")

const keyPrefix = "blogpost:"

// It abstracts the storage layer from the business logic
type BlogPostRepositoryInterface interface {
	Insert(post *models.BlogPost) error
	InsertMany(posts []*models.BlogPost) error
	FindByID(id string) (*models.BlogPost, error)
	FindOne() (*models.BlogPost, error)
	FindAll() ([]*models.BlogPost, error)
	Count() (int, error)
	UpdateByID(id string, post *models.BlogPost) error
	DeleteByID(id string) error
	DropAll() error
}

// BlogPostRepository implements the BlogPostRepositoryInterface using LevelDB as the storage backend
type BlogPostRepository struct {
	db *db.LevelDB
}

// NewBlogPostRepository creates and returns a new BlogPostRepository instance
func NewBlogPostRepository(db *db.LevelDB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

func postKey(id string) []byte {
	return []byte(keyPrefix + id)
}

// Insert stores a single post under its ID
func (r *BlogPostRepository) Insert(post *models.BlogPost) error {
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return r.db.Put(postKey(post.ID), data)
}

// InsertMany stores all posts in one batch write
func (r *BlogPostRepository) InsertMany(posts []*models.BlogPost) error {
	kvs := make(map[string][]byte, len(posts))
	for _, p := range posts {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		kvs[string(postKey(p.ID))] = data
	}
	return r.db.WriteBatch(kvs)
}

// FindByID retrieves a post by its ID
func (r *BlogPostRepository) FindByID(id string) (*models.BlogPost, error) {
	data, err := r.db.Get(postKey(id))
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("find %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var post models.BlogPost
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// FindOne returns the first post in key order
func (r *BlogPostRepository) FindOne() (*models.BlogPost, error) {
	iter := r.db.NewIterator([]byte(keyPrefix))
	defer iter.Release()

	if !iter.Next() {
		if err := iter.Error(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	var post models.BlogPost
	if err := json.Unmarshal(iter.Value(), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll retrieves all posts from the LevelDB storage
func (r *BlogPostRepository) FindAll() ([]*models.BlogPost, error) {
	iter := r.db.NewIterator([]byte(keyPrefix))
	defer iter.Release()

	posts := []*models.BlogPost{}
	for iter.Next() {
		var post models.BlogPost
		if err := json.Unmarshal(iter.Value(), &post); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, iter.Error()
}

// Count returns the number of stored posts
func (r *BlogPostRepository) Count() (int, error) {
	iter := r.db.NewIterator([]byte(keyPrefix))
	defer iter.Release()

	n := 0
	for iter.Next() {
		n++
	}
	return n, iter.Error()
}

// UpdateByID overwrites an existing post. The stored ID always wins over post.ID.
func (r *BlogPostRepository) UpdateByID(id string, post *models.BlogPost) error {
	ok, err := r.db.Has(postKey(id))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	post.ID = id
	return r.Insert(post)
}

// DeleteByID removes a post, returning ErrNotFound if it does not exist
func (r *BlogPostRepository) DeleteByID(id string) error {
	ok, err := r.db.Has(postKey(id))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	return r.db.Delete(postKey(id))
}

// DropAll wipes the store. Only the test harness and the seeder call this.
func (r *BlogPostRepository) DropAll() error {
	return r.db.DropAll()
}
