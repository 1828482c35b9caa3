package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

// RunRecorder records completed sync runs (Redis-backed, best effort).
// A recording failure never fails the run.
type RunRecorder interface {
	RecordRun(ctx context.Context, at time.Time, inserted int) error
}

// SyncService reconciles the remote catalog against the local movie store.
// Insert-only: existing records are never updated or deleted by a run.
type SyncService struct {
	catalog  ports.CatalogClient
	repo     ports.MovieRepository
	recorder RunRecorder // optional
	log      zerolog.Logger
}

func NewSyncService(catalog ports.CatalogClient, repo ports.MovieRepository, recorder RunRecorder, log zerolog.Logger) *SyncService {
	return &SyncService{catalog: catalog, repo: repo, recorder: recorder, log: log}
}

// Run performs one fetch-and-reconcile pass.
//
// A fetch error or an empty result list fails the whole run with
// domain.ErrSyncFailed before any write; the next scheduled trigger is the
// retry. Reconciliation handles each record independently: a failure on one
// record does not roll back or stop the others. A duplicate-key hit on
// insert means another writer won the race for that episode — benign skip,
// the unique episode_id index is the backstop behind the existence check.
func (s *SyncService) Run(ctx context.Context) (*ports.SyncResult, error) {
	films, err := s.catalog.FetchFilms(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync run: %w: %v", domain.ErrSyncFailed, err)
	}
	if len(films) == 0 {
		return nil, fmt.Errorf("sync run: %w: empty result list", domain.ErrSyncFailed)
	}

	var inserted, skipped atomic.Int64
	var wg sync.WaitGroup
	for _, film := range films {
		wg.Add(1)
		go func(film ports.Film) {
			defer wg.Done()
			switch s.reconcile(ctx, film) {
			case reconcileInserted:
				inserted.Add(1)
			case reconcileSkipped:
				skipped.Add(1)
			}
		}(film)
	}
	wg.Wait()

	result := &ports.SyncResult{
		Fetched:  len(films),
		Inserted: int(inserted.Load()),
		Skipped:  int(skipped.Load()),
	}

	s.log.Info().
		Int("fetched", result.Fetched).
		Int("inserted", result.Inserted).
		Int("skipped", result.Skipped).
		Msg("catalog sync completed")

	if s.recorder != nil {
		if err := s.recorder.RecordRun(ctx, time.Now().UTC(), result.Inserted); err != nil {
			s.log.Warn().Err(err).Msg("failed to record sync run")
		}
	}

	return result, nil
}

type reconcileOutcome int

const (
	reconcileInserted reconcileOutcome = iota
	reconcileSkipped
	reconcileFailed
)

func (s *SyncService) reconcile(ctx context.Context, film ports.Film) reconcileOutcome {
	_, err := s.repo.FindByEpisodeID(ctx, film.EpisodeID)
	if err == nil {
		return reconcileSkipped
	}
	if !errors.Is(err, domain.ErrMovieNotFound) {
		s.log.Error().Err(err).Int("episode_id", film.EpisodeID).Msg("sync lookup failed")
		return reconcileFailed
	}

	movie := &domain.Movie{
		Title:        film.Title,
		EpisodeID:    film.EpisodeID,
		OpeningCrawl: film.OpeningCrawl,
		Director:     film.Director,
		Producer:     film.Producer,
		ReleaseDate:  film.ReleaseDate,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, movie); err != nil {
		if errors.Is(err, domain.ErrMovieExists) {
			// Lost the race for this episode to a concurrent writer.
			return reconcileSkipped
		}
		s.log.Error().Err(err).Int("episode_id", film.EpisodeID).Msg("sync insert failed")
		return reconcileFailed
	}

	s.log.Debug().Int("episode_id", film.EpisodeID).Str("title", film.Title).Msg("movie synced")
	return reconcileInserted
}
