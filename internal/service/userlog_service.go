package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go-movie-watchlist/internal/event"
	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/pagination"
	"go-movie-watchlist/internal/repository"
	"go-movie-watchlist/pkg/apierror"
)

type userLogStore interface {
	Insert(ctx context.Context, userID int64, action model.UserLogAction, description string, details string) error
	List(ctx context.Context, q pagination.Query, action *model.UserLogAction) ([]model.UserLogWithUser, int, error)
}

type actingUserStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

const recordTimeout = 5 * time.Second

// UserLogService is the audit-log side channel. Writes are best effort:
// any failure is logged to the operator log stream and discarded, never
// surfaced to the request that triggered it.
type UserLogService struct {
	logs  userLogStore
	users actingUserStore
}

func NewUserLogService(logs userLogStore, users actingUserStore) *UserLogService {
	return &UserLogService{logs: logs, users: users}
}

// Record persists a single audit entry. A missing acting user counts as a
// write failure and is swallowed like any other.
func (s *UserLogService) Record(ctx context.Context, userID int64, action model.UserLogAction, description string, details string) {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err == nil && !exists {
		err = apierror.NotFound("User don't exists in the system.")
	}
	if err == nil {
		err = s.logs.Insert(ctx, userID, action, description, details)
	}

	if err != nil {
		slog.Error("failed to record user log",
			"user_id", userID, "action", int(action), "description", description, "error", err)
	}
}

// Run consumes audit events from the bus until the channel closes or ctx
// is cancelled. Each write runs under its own deadline, detached from the
// request that produced the event.
func (s *UserLogService) Run(ctx context.Context, events <-chan event.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			s.Record(writeCtx, e.UserID, e.Action, e.Description, e.Details)
			cancel()
		}
	}
}

// List returns one page of audit entries for the admin view. actionFilter
// is the raw query value; empty means no filter.
func (s *UserLogService) List(ctx context.Context, raw pagination.Raw, actionFilter string) ([]model.UserLogWithUser, model.Meta, error) {
	q, err := pagination.Normalize(raw, repository.UserLogSortColumns)
	if err != nil {
		return nil, model.Meta{}, err
	}

	var action *model.UserLogAction
	if actionFilter != "" {
		parsed, err := strconv.Atoi(actionFilter)
		if err != nil || !model.UserLogAction(parsed).Valid() {
			return nil, model.Meta{}, apierror.BadRequest("Unknown action kind: " + actionFilter)
		}
		a := model.UserLogAction(parsed)
		action = &a
	}

	logs, total, err := s.logs.List(ctx, q, action)
	if err != nil {
		return nil, model.Meta{}, err
	}

	return logs, buildMeta(q, total), nil
}

func buildMeta(q pagination.Query, total int) model.Meta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + q.PageSize - 1) / q.PageSize
	}

	return model.Meta{Page: q.Page, PageSize: q.PageSize, Total: total, TotalPages: totalPages}
}
