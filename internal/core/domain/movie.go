package domain

import (
	"errors"
	"time"
)

var ErrMovieExists = errors.New("movie already exists")
var ErrMovieNotFound = errors.New("movie not found")
var ErrSyncFailed = errors.New("catalog sync failed")

// Movie is a film record. EpisodeID is the natural key: at most one stored
// movie per episode, enforced by a unique index in the store.
type Movie struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	EpisodeID    int       `json:"episode_id"`
	OpeningCrawl string    `json:"opening_crawl"`
	Director     string    `json:"director"`
	Producer     string    `json:"producer"`
	ReleaseDate  string    `json:"release_date"`
	CreatedAt    time.Time `json:"created_at"`
}
