package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/conexa/starwars-api/internal/core/ports"
)

type stubCatalog struct {
	films []ports.Film
	err   error
}

func (c *stubCatalog) FetchFilms(_ context.Context) ([]ports.Film, error) {
	return c.films, c.err
}

func (c *stubCatalog) FetchFilm(_ context.Context, _ string) (*ports.Film, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &c.films[0], nil
}

func TestStarwarsHandler_GetFilms(t *testing.T) {
	stub := &stubCatalog{films: []ports.Film{{Title: "A New Hope", EpisodeID: 4}}}
	handler := NewStarwarsHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/starwars/films", "")
	if err := handler.GetFilms(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestStarwarsHandler_GetFilms_RemoteDown(t *testing.T) {
	stub := &stubCatalog{err: errors.New("connection refused")}
	handler := NewStarwarsHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/starwars/films", "")
	_ = handler.GetFilms(c)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
