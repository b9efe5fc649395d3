package model

type WatchlistEntry struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"userId"`
	MovieID int64 `json:"movieId"`
	Watched bool  `json:"watched"`
}
