package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

type stubMovieService struct {
	createFn  func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error)
	findAllFn func(ctx context.Context) ([]domain.Movie, error)
	findOneFn func(ctx context.Context, id string) (*domain.Movie, error)
	updateFn  func(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error)
	removeFn  func(ctx context.Context, id string) (*ports.DeleteMovieResult, error)
}

func (s *stubMovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, input)
}

func (s *stubMovieService) FindAll(ctx context.Context) ([]domain.Movie, error) {
	return s.findAllFn(ctx)
}

func (s *stubMovieService) FindOne(ctx context.Context, id string) (*domain.Movie, error) {
	return s.findOneFn(ctx, id)
}

func (s *stubMovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubMovieService) Remove(ctx context.Context, id string) (*ports.DeleteMovieResult, error) {
	return s.removeFn(ctx, id)
}

func TestMovieHandler_Create_Success(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			if input.EpisodeID != 4 || input.Title != "A New Hope" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Movie{ID: "movie-1", Title: input.Title, EpisodeID: input.EpisodeID}, nil
		},
	}
	handler := NewMovieHandler(stub)

	body := `{"title":"A New Hope","episode_id":4,"director":"George Lucas","release_date":"1977-05-25"}`
	c, rec := newTestContext(t, http.MethodPost, "/movies", body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "movie-1" {
		t.Fatalf("expected store-assigned id, got %v", resp["id"])
	}
}

func TestMovieHandler_Create_Duplicate(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			return nil, domain.ErrMovieExists
		},
	}
	handler := NewMovieHandler(stub)

	body := `{"title":"A New Hope","episode_id":4,"director":"George Lucas","release_date":"1977-05-25"}`
	c, rec := newTestContext(t, http.MethodPost, "/movies", body)
	_ = handler.Create(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestMovieHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub)

	// episode_id missing.
	c, rec := newTestContext(t, http.MethodPost, "/movies", `{"title":"A New Hope"}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMovieHandler_FindOne_NotFound(t *testing.T) {
	stub := &stubMovieService{
		findOneFn: func(ctx context.Context, id string) (*domain.Movie, error) {
			return nil, domain.ErrMovieNotFound
		},
	}
	handler := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/movies/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	_ = handler.FindOne(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMovieHandler_Update_PartialBody(t *testing.T) {
	stub := &stubMovieService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
			if input.Title == nil || *input.Title != "Updated" {
				t.Fatalf("expected title in update input, got %+v", input)
			}
			if input.Director != nil {
				t.Fatalf("absent fields must stay nil")
			}
			return &domain.Movie{ID: id, Title: *input.Title}, nil
		},
	}
	handler := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/movies/movie-1", `{"title":"Updated"}`)
	c.SetParamNames("id")
	c.SetParamValues("movie-1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMovieHandler_Delete_Success(t *testing.T) {
	stub := &stubMovieService{
		removeFn: func(ctx context.Context, id string) (*ports.DeleteMovieResult, error) {
			return &ports.DeleteMovieResult{
				Message: "Movie deleted successfully",
				Movie:   &domain.Movie{ID: id, Title: "A New Hope", EpisodeID: 4},
			}, nil
		},
	}
	handler := NewMovieHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/movies/movie-1", "")
	c.SetParamNames("id")
	c.SetParamValues("movie-1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Movie deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
