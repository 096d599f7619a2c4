package seed

import (
	"time"

	"blogpost-api/models"
	"blogpost-api/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Generate builds one random blog post with a fresh id
func Generate() *models.BlogPost {
	return &models.BlogPost{
		ID:      uuid.NewString(),
		Title:   gofakeit.Word(),
		Content: gofakeit.Paragraph(1, 4, 12, " "),
		Author: models.Author{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		},
		Created: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Seed inserts n random posts in a single batch and returns them
func Seed(repo repository.BlogPostRepositoryInterface, n int) ([]*models.BlogPost, error) {
	posts := make([]*models.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, Generate())
	}
	if err := repo.InsertMany(posts); err != nil {
		return nil, err
	}
	return posts, nil
}
