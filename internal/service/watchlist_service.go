package service

import (
	"context"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/pkg/apierror"
)

type watchlistStore interface {
	Find(ctx context.Context, userID int64, movieID int64) (model.WatchlistEntry, error)
	Exists(ctx context.Context, userID int64, movieID int64) (bool, error)
	Create(ctx context.Context, userID int64, movieID int64) error
	UpdateWatched(ctx context.Context, userID int64, movieID int64, watched bool) error
	Delete(ctx context.Context, userID int64, movieID int64) error
	ListMovies(ctx context.Context, userID int64) ([]model.MovieWithStatus, error)
}

type movieResolver interface {
	ResolveByImdbID(ctx context.Context, imdbID string) (model.Movie, error)
}

type WatchlistService struct {
	entries watchlistStore
	movies  movieResolver
}

func NewWatchlistService(entries watchlistStore, movies movieResolver) *WatchlistService {
	return &WatchlistService{entries: entries, movies: movies}
}

// Add puts a movie on the caller's watchlist, pulling it into the local
// cache from the external catalog when it has not been seen before.
func (s *WatchlistService) Add(ctx context.Context, userID int64, imdbID string) (model.Movie, error) {
	movie, err := s.movies.ResolveByImdbID(ctx, imdbID)
	if err != nil {
		return model.Movie{}, err
	}

	exists, err := s.entries.Exists(ctx, userID, movie.ID)
	if err != nil {
		return model.Movie{}, err
	}
	if exists {
		return model.Movie{}, apierror.BadRequest("Movie is already in your watchlist.")
	}

	if err := s.entries.Create(ctx, userID, movie.ID); err != nil {
		return model.Movie{}, err
	}

	return movie, nil
}

func (s *WatchlistService) List(ctx context.Context, userID int64) ([]model.MovieWithStatus, error) {
	return s.entries.ListMovies(ctx, userID)
}

// SetWatched flips the watched flag, returning the previous value for the
// audit record.
func (s *WatchlistService) SetWatched(ctx context.Context, userID int64, movieID int64, watched bool) (bool, error) {
	entry, err := s.entries.Find(ctx, userID, movieID)
	if err != nil {
		return false, err
	}

	if err := s.entries.UpdateWatched(ctx, userID, movieID, watched); err != nil {
		return false, err
	}

	return entry.Watched, nil
}

func (s *WatchlistService) Remove(ctx context.Context, userID int64, movieID int64) error {
	return s.entries.Delete(ctx, userID, movieID)
}
