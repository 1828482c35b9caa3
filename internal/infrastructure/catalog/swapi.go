// Package catalog implements the remote Star Wars catalog client against the
// public SWAPI films endpoint.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/conexa/starwars-api/internal/core/ports"
)

const defaultBaseURL = "https://swapi.dev/api"
const defaultTimeout = 30 * time.Second

// SwapiClient fetches films over HTTP.
type SwapiClient struct {
	baseURL string
	client  *http.Client
}

// NewSwapiClient builds a client for the given base URL (the public SWAPI
// host when empty).
func NewSwapiClient(baseURL string) *SwapiClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &SwapiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// filmsResponse mirrors the SWAPI list envelope.
type filmsResponse struct {
	Count   int         `json:"count"`
	Results []swapiFilm `json:"results"`
}

type swapiFilm struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`
}

// FetchFilms retrieves the full film list from the catalog.
func (c *SwapiClient) FetchFilms(ctx context.Context) ([]ports.Film, error) {
	var envelope filmsResponse
	if err := c.get(ctx, "/films", &envelope); err != nil {
		return nil, err
	}

	films := make([]ports.Film, 0, len(envelope.Results))
	for _, f := range envelope.Results {
		films = append(films, ports.Film(f))
	}
	return films, nil
}

// FetchFilm retrieves a single film by its catalog id.
func (c *SwapiClient) FetchFilm(ctx context.Context, id string) (*ports.Film, error) {
	var f swapiFilm
	if err := c.get(ctx, "/films/"+id, &f); err != nil {
		return nil, err
	}
	film := ports.Film(f)
	return &film, nil
}

func (c *SwapiClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
