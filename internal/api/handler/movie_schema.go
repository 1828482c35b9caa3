package handler

type createMovieRequest struct {
	Title        string `json:"title"         validate:"required"`
	EpisodeID    int    `json:"episode_id"    validate:"required,gt=0"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"      validate:"required"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"  validate:"required"`
}

// updateMovieRequest carries a partial update; absent fields stay untouched.
type updateMovieRequest struct {
	Title        *string `json:"title"`
	EpisodeID    *int    `json:"episode_id"`
	OpeningCrawl *string `json:"opening_crawl"`
	Director     *string `json:"director"`
	Producer     *string `json:"producer"`
	ReleaseDate  *string `json:"release_date"`
}

type deleteMovieResponse struct {
	Message string `json:"message"`
	Movie   any    `json:"movie"`
}
