package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/pkg/apierror"
)

type WatchlistRepository struct {
	pool *pgxpool.Pool
}

func NewWatchlistRepository(pool *pgxpool.Pool) *WatchlistRepository {
	return &WatchlistRepository{pool: pool}
}

func (r *WatchlistRepository) Find(ctx context.Context, userID int64, movieID int64) (model.WatchlistEntry, error) {
	var e model.WatchlistEntry
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, movie_id, watched
		 FROM watchlist_entries WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID).
		Scan(&e.ID, &e.UserID, &e.MovieID, &e.Watched)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.WatchlistEntry{}, apierror.NotFound("Movie not found in your watchlist.")
	}
	if err != nil {
		return model.WatchlistEntry{}, fmt.Errorf("find watchlist entry: %w", err)
	}
	return e, nil
}

func (r *WatchlistRepository) Exists(ctx context.Context, userID int64, movieID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM watchlist_entries WHERE user_id = $1 AND movie_id = $2)`,
		userID, movieID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check watchlist entry exists: %w", err)
	}
	return exists, nil
}

func (r *WatchlistRepository) Create(ctx context.Context, userID int64, movieID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO watchlist_entries (user_id, movie_id) VALUES ($1, $2)`,
		userID, movieID)
	if err != nil {
		return fmt.Errorf("create watchlist entry: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) UpdateWatched(ctx context.Context, userID int64, movieID int64, watched bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE watchlist_entries SET watched = $3 WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID, watched)
	if err != nil {
		return fmt.Errorf("update watchlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound("Movie not found in your watchlist.")
	}
	return nil
}

func (r *WatchlistRepository) Delete(ctx context.Context, userID int64, movieID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM watchlist_entries WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID)
	if err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound("Movie not found in your watchlist.")
	}
	return nil
}

// ListMovies returns all of a user's watchlisted movies joined with their
// watched flags.
func (r *WatchlistRepository) ListMovies(ctx context.Context, userID int64) ([]model.MovieWithStatus, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.id, m.title, m.img, m.imdb_id, m.type, m.released,
		        m.imdb_rating, m.plot, m.actors, m.genre, w.watched
		 FROM watchlist_entries w
		 JOIN movies m ON m.id = w.movie_id
		 WHERE w.user_id = $1
		 ORDER BY w.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list watchlist movies: %w", err)
	}
	defer rows.Close()

	movies := make([]model.MovieWithStatus, 0)
	for rows.Next() {
		var m model.MovieWithStatus
		if err := rows.Scan(&m.ID, &m.Title, &m.Img, &m.ImdbID, &m.Type, &m.Released,
			&m.ImdbRating, &m.Plot, &m.Actors, &m.Genre, &m.Watched); err != nil {
			return nil, fmt.Errorf("scan watchlist movie: %w", err)
		}
		movies = append(movies, m)
	}

	return movies, rows.Err()
}
