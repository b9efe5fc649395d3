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

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx,
		`SELECT id, comment, created_at, user_id, movie_id
		 FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.Comment, &c.CreatedAt, &c.UserID, &c.MovieID)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Comment{}, apierror.NotFound("Comment not found.")
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment string, userID int64, movieID int64) (model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx,
		`INSERT INTO comments (comment, user_id, movie_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, comment, created_at, user_id, movie_id`,
		comment, userID, movieID).
		Scan(&c.ID, &c.Comment, &c.CreatedAt, &c.UserID, &c.MovieID)
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound("Comment not found.")
	}
	return nil
}

// ListByMovie returns a movie's comments, newest first, with author names.
func (r *CommentRepository) ListByMovie(ctx context.Context, movieID int64) ([]model.CommentWithAuthor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.comment, c.created_at, c.user_id, u.username
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.movie_id = $1
		 ORDER BY c.created_at DESC`, movieID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.CommentWithAuthor, 0)
	for rows.Next() {
		var c model.CommentWithAuthor
		if err := rows.Scan(&c.ID, &c.Comment, &c.CreatedAt, &c.UserID, &c.Username); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
