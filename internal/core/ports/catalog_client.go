package ports

import "context"

// Film is a single record as returned by the remote catalog.
type Film struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`
}

// CatalogClient fetches film records from the remote Star Wars catalog.
// Both calls fail on network or decode errors; FetchFilms returns the full
// result list of the catalog.
type CatalogClient interface {
	FetchFilms(ctx context.Context) ([]Film, error)
	FetchFilm(ctx context.Context, id string) (*Film, error)
}
