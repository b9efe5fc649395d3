package service

import (
	"context"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/pagination"
	"go-movie-watchlist/internal/repository"
	"go-movie-watchlist/pkg/apierror"
)

type adminUserStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, username string, passwordHash string, roleID model.Role) (model.User, error)
	Update(ctx context.Context, id int64, username string, roleID model.Role) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q pagination.Query) ([]model.PublicUser, int, error)
}

type passwordHasher interface {
	HashPassword(password string) (string, error)
}

// UserService backs the admin-only user management endpoints.
type UserService struct {
	users  adminUserStore
	hasher passwordHasher
}

func NewUserService(users adminUserStore, hasher passwordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) Create(ctx context.Context, username string, password string, roleID model.Role) (model.PublicUser, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.PublicUser{}, err
	}
	if exists {
		return model.PublicUser{}, apierror.Conflict("User already exists.")
	}

	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return model.PublicUser{}, err
	}

	user, err := s.users.Create(ctx, username, hash, roleID)
	if err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func (s *UserService) List(ctx context.Context, raw pagination.Raw) ([]model.PublicUser, model.Meta, error) {
	q, err := pagination.Normalize(raw, repository.UserSortColumns)
	if err != nil {
		return nil, model.Meta{}, err
	}

	users, total, err := s.users.List(ctx, q)
	if err != nil {
		return nil, model.Meta{}, err
	}

	return users, buildMeta(q, total), nil
}

// Update changes a user's name and role, returning the previous values for
// the audit description.
func (s *UserService) Update(ctx context.Context, id int64, username string, roleID model.Role) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.PublicUser{}, err
	}

	if err := s.users.Update(ctx, id, username, roleID); err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

// Delete removes a user. Deleting the acting admin's own account is
// rejected so an installation cannot lock itself out.
func (s *UserService) Delete(ctx context.Context, actorID int64, id int64) error {
	if actorID == id {
		return apierror.BadRequest("Cannot delete yourself.")
	}

	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apierror.NotFound("User don't exists in the system.")
	}

	return s.users.Delete(ctx, id)
}
