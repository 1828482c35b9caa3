package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

// MovieService implements movie CRUD use cases.
type MovieService struct {
	repo ports.MovieRepository
	log  zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, log zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, log: log}
}

// Create inserts a new movie after checking the natural key. A duplicate
// episode_id — found by the pre-check or by the unique index when two
// creates race — yields domain.ErrMovieExists.
func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	_, err := s.repo.FindByEpisodeID(ctx, input.EpisodeID)
	if err == nil {
		return nil, domain.ErrMovieExists
	}
	if !errors.Is(err, domain.ErrMovieNotFound) {
		return nil, err
	}

	movie := &domain.Movie{
		Title:        input.Title,
		EpisodeID:    input.EpisodeID,
		OpeningCrawl: input.OpeningCrawl,
		Director:     input.Director,
		Producer:     input.Producer,
		ReleaseDate:  input.ReleaseDate,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("episode_id", created.EpisodeID).Str("title", created.Title).Msg("movie created")
	return created, nil
}

func (s *MovieService) FindAll(ctx context.Context) ([]domain.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *MovieService) FindOne(ctx context.Context, id string) (*domain.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update to an existing movie.
func (s *MovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.EpisodeID != nil {
		movie.EpisodeID = *input.EpisodeID
	}
	if input.OpeningCrawl != nil {
		movie.OpeningCrawl = *input.OpeningCrawl
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.Producer != nil {
		movie.Producer = *input.Producer
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = *input.ReleaseDate
	}

	return s.repo.Update(ctx, id, movie)
}

// Remove deletes a movie and echoes it back.
func (s *MovieService) Remove(ctx context.Context, id string) (*ports.DeleteMovieResult, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.log.Info().Str("movie_id", id).Msg("movie deleted")
	return &ports.DeleteMovieResult{
		Message: "Movie deleted successfully",
		Movie:   movie,
	}, nil
}
