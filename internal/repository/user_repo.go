package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/pagination"
	"go-movie-watchlist/pkg/apierror"
)

// UserSortColumns is the allow-list for the admin user listing.
var UserSortColumns = []string{"id", "username", "role_id"}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role_id, created_at
		 FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, apierror.NotFound("User don't exists in the system.")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role_id, created_at
		 FROM users WHERE username = $1`, strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, apierror.NotFound("User don't exists in the system.")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		strings.TrimSpace(username)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, username string, passwordHash string, roleID model.Role) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, username, password_hash, role_id, created_at`,
		username, passwordHash, roleID).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.CreatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, username string, roleID model.Role) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET username = $2, role_id = $3 WHERE id = $1`,
		id, username, roleID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound("User don't exists in the system.")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound("User don't exists in the system.")
	}
	return nil
}

// List returns one page of users plus the unpaginated total. The sort
// column is interpolated, which is safe because pagination.Normalize only
// accepts columns from UserSortColumns.
func (r *UserRepository) List(ctx context.Context, q pagination.Query) ([]model.PublicUser, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, username, role_id FROM users
		 ORDER BY %s %s
		 LIMIT $1 OFFSET $2`, q.SortColumn, q.SortDirection)

	rows, err := r.pool.Query(ctx, query, q.PageSize, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.PublicUser, 0)
	for rows.Next() {
		var u model.PublicUser
		if err := rows.Scan(&u.ID, &u.Username, &u.RoleID); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}
