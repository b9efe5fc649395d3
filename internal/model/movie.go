package model

import "time"

type Movie struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Img        string     `json:"img"`
	ImdbID     string     `json:"imdbId"`
	Type       string     `json:"type"`
	Released   *time.Time `json:"released"`
	ImdbRating float64    `json:"imdbRating"`
	Plot       string     `json:"plot"`
	Actors     string     `json:"actors"`
	Genre      string     `json:"genre"`
}

// MovieWithStatus is a movie joined with the caller's watchlist flag.
type MovieWithStatus struct {
	Movie
	Watched bool `json:"watched"`
}

// CatalogMovie is a search hit from the external catalog, passed through
// without touching local storage.
type CatalogMovie struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	ImdbID string `json:"imdbId"`
	Type   string `json:"type"`
	Poster string `json:"poster"`
}

type CatalogSearchResult struct {
	Movies       []CatalogMovie `json:"movies"`
	TotalResults int            `json:"totalResults"`
}
