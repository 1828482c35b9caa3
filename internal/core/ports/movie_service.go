package ports

import (
	"context"

	"github.com/conexa/starwars-api/internal/core/domain"
)

// CreateMovieInput carries all data needed to create a movie.
type CreateMovieInput struct {
	Title        string
	EpisodeID    int
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  string
}

// UpdateMovieInput carries a partial movie update. Nil fields are left
// untouched.
type UpdateMovieInput struct {
	Title        *string
	EpisodeID    *int
	OpeningCrawl *string
	Director     *string
	Producer     *string
	ReleaseDate  *string
}

// DeleteMovieResult echoes the removed movie back to the caller.
type DeleteMovieResult struct {
	Message string
	Movie   *domain.Movie
}

// MovieService defines use-case operations for movies.
type MovieService interface {
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindOne(ctx context.Context, id string) (*domain.Movie, error)
	Update(ctx context.Context, id string, input UpdateMovieInput) (*domain.Movie, error)
	Remove(ctx context.Context, id string) (*DeleteMovieResult, error)
}
