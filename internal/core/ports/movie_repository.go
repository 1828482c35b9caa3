package ports

import (
	"context"

	"github.com/conexa/starwars-api/internal/core/domain"
)

// MovieRepository defines the interface for movie persistence.
// FindByEpisodeID looks up by the natural key; misses return
// domain.ErrMovieNotFound. Create returns domain.ErrMovieExists when the
// unique episode_id constraint fires.
type MovieRepository interface {
	FindByEpisodeID(ctx context.Context, episodeID int) (*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	FindAll(ctx context.Context) ([]domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Update(ctx context.Context, id string, movie *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}
