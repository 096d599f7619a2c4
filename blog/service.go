package blog

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"blogpost-api/logger"
	"blogpost-api/models"
	"blogpost-api/repository"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Errors returned by Service; handlers map them to 404 and 400
var (
	ErrNotFound   = repository.ErrNotFound
	ErrValidation = errors.New("validation failed")
)

// AuthorInput is the author pair accepted on create and replace
type AuthorInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate requires both names
func (a AuthorInput) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.FirstName, validation.Required.Error("firstName is required")),
		validation.Field(&a.LastName, validation.Required.Error("lastName is required")),
	)
}

// CreateInput is the body accepted by Create
type CreateInput struct {
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Author  AuthorInput `json:"author"`
}

// Validate requires every field to be present
func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("title is required")),
		validation.Field(&in.Content, validation.Required.Error("content is required")),
		validation.Field(&in.Author),
	)
}

// ReplaceInput carries the fields to overwrite; nil fields are left unchanged
type ReplaceInput struct {
	ID      *string      `json:"id,omitempty"`
	Title   *string      `json:"title,omitempty"`
	Content *string      `json:"content,omitempty"`
	Author  *AuthorInput `json:"author,omitempty"`
}

// Validate rejects supplied fields that would leave the post without a title,
// content or a complete author
func (in ReplaceInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&in.Content, validation.NilOrNotEmpty.Error("content cannot be empty")),
	)
	if err != nil {
		return err
	}
	if in.Author != nil {
		if err := in.Author.Validate(); err != nil {
			return validation.Errors{"author": err}
		}
	}
	return nil
}

// Service implements the blog post resource on top of a repository
type Service struct {
	repo repository.BlogPostRepositoryInterface
	mux  sync.Mutex
	now  func() time.Time
}

// NewService creates a Service backed by repo
func NewService(repo repository.BlogPostRepositoryInterface) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns every stored post, oldest first
func (s *Service) List() ([]*models.BlogPost, error) {
	posts, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Created.Equal(posts[j].Created) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].Created.Before(posts[j].Created)
	})
	return posts, nil
}

// Get returns the post with the given id or ErrNotFound
func (s *Service) Get(id string) (*models.BlogPost, error) {
	return s.repo.FindByID(id)
}

// Create assigns id and created, then stores the post
func (s *Service) Create(in CreateInput) (*models.BlogPost, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	post := &models.BlogPost{
		ID:      uuid.NewString(),
		Title:   in.Title,
		Content: in.Content,
		Author: models.Author{
			FirstName: in.Author.FirstName,
			LastName:  in.Author.LastName,
		},
		Created: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Insert(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Replace updates only the supplied fields of an existing post.
// id and created are never touched.
func (s *Service) Replace(id string, in ReplaceInput) (*models.BlogPost, error) {
	if in.ID != nil && *in.ID != id {
		return nil, fmt.Errorf("%w: request path id (%s) and body id (%s) must match", ErrValidation, id, *in.ID)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	var updated []string
	if in.Title != nil {
		post.Title = *in.Title
		updated = append(updated, "title")
	}
	if in.Content != nil {
		post.Content = *in.Content
		updated = append(updated, "content")
	}
	if in.Author != nil {
		post.Author = models.Author{FirstName: in.Author.FirstName, LastName: in.Author.LastName}
		updated = append(updated, "author")
	}

	if err := s.repo.UpdateByID(id, post); err != nil {
		return nil, err
	}
	logger.Logger.Debug("Updated blog post", zap.String("post_id", id), zap.Strings("fields", updated))
	return post, nil
}

// Delete removes one post; ErrNotFound if it does not exist
func (s *Service) Delete(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.repo.DeleteByID(id)
}
