package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/pagination"
)

// UserLogSortColumns is the allow-list for the admin audit-log listing.
var UserLogSortColumns = []string{"id", "action", "event_time"}

type UserLogRepository struct {
	pool *pgxpool.Pool
}

func NewUserLogRepository(pool *pgxpool.Pool) *UserLogRepository {
	return &UserLogRepository{pool: pool}
}

// Insert appends an audit entry. event_time is assigned by the database.
func (r *UserLogRepository) Insert(ctx context.Context, userID int64, action model.UserLogAction, description string, details string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_logs (action, description, details, user_id)
		 VALUES ($1, $2, $3, $4)`,
		action, description, details, userID)
	if err != nil {
		return fmt.Errorf("insert user log: %w", err)
	}
	return nil
}

// List returns one page of audit entries with the acting users joined,
// optionally filtered by action kind. The sort column comes from the
// pagination allow-list, so interpolating it is safe.
func (r *UserLogRepository) List(ctx context.Context, q pagination.Query, action *model.UserLogAction) ([]model.UserLogWithUser, int, error) {
	where := ""
	countArgs := []any{}
	if action != nil {
		where = "WHERE l.action = $1"
		countArgs = append(countArgs, *action)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM user_logs l %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user logs: %w", err)
	}

	args := append([]any{}, countArgs...)
	query := fmt.Sprintf(
		`SELECT l.id, l.action, l.description, l.details, l.event_time, l.user_id,
		        u.username, u.role_id
		 FROM user_logs l
		 JOIN users u ON u.id = l.user_id
		 %s
		 ORDER BY l.%s %s
		 LIMIT $%d OFFSET $%d`,
		where, q.SortColumn, q.SortDirection, len(args)+1, len(args)+2)
	args = append(args, q.PageSize, q.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list user logs: %w", err)
	}
	defer rows.Close()

	logs := make([]model.UserLogWithUser, 0)
	for rows.Next() {
		var l model.UserLogWithUser
		if err := rows.Scan(&l.ID, &l.Action, &l.Description, &l.Details, &l.EventTime,
			&l.UserID, &l.Username, &l.RoleID); err != nil {
			return nil, 0, fmt.Errorf("scan user log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, total, rows.Err()
}
