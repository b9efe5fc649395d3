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

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

const movieColumns = `id, title, img, imdb_id, type, released, imdb_rating, plot, actors, genre`

func (r *MovieRepository) FindByID(ctx context.Context, id int64) (model.Movie, error) {
	var m model.Movie
	err := r.pool.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = $1`, id).
		Scan(&m.ID, &m.Title, &m.Img, &m.ImdbID, &m.Type, &m.Released, &m.ImdbRating, &m.Plot, &m.Actors, &m.Genre)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Movie{}, apierror.NotFound("Movie not found.")
	}
	if err != nil {
		return model.Movie{}, fmt.Errorf("find movie by id: %w", err)
	}
	return m, nil
}

// FindByImdbID returns pgx.ErrNoRows wrapped as a NOT_FOUND error; callers
// that fall back to the external catalog check for that case explicitly.
func (r *MovieRepository) FindByImdbID(ctx context.Context, imdbID string) (model.Movie, error) {
	var m model.Movie
	err := r.pool.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE imdb_id = $1`, imdbID).
		Scan(&m.ID, &m.Title, &m.Img, &m.ImdbID, &m.Type, &m.Released, &m.ImdbRating, &m.Plot, &m.Actors, &m.Genre)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Movie{}, apierror.NotFound("Movie not found.")
	}
	if err != nil {
		return model.Movie{}, fmt.Errorf("find movie by imdb id: %w", err)
	}
	return m, nil
}

func (r *MovieRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check movie exists: %w", err)
	}
	return exists, nil
}

func (r *MovieRepository) ExistsByImdbID(ctx context.Context, imdbID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM movies WHERE imdb_id = $1)`, imdbID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check movie exists by imdb id: %w", err)
	}
	return exists, nil
}

func (r *MovieRepository) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO movies (title, img, imdb_id, type, released, imdb_rating, plot, actors, genre)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		m.Title, m.Img, m.ImdbID, m.Type, m.Released, m.ImdbRating, m.Plot, m.Actors, m.Genre).
		Scan(&m.ID)
	if err != nil {
		return model.Movie{}, fmt.Errorf("create movie: %w", err)
	}
	return m, nil
}
