package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/pagination"
	"go-movie-watchlist/pkg/apierror"
)

type mockAdminUserStore struct {
	mock.Mock
}

func (m *mockAdminUserStore) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAdminUserStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdminUserStore) Create(ctx context.Context, username string, passwordHash string, roleID model.Role) (model.User, error) {
	args := m.Called(ctx, username, passwordHash, roleID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAdminUserStore) Update(ctx context.Context, id int64, username string, roleID model.Role) error {
	args := m.Called(ctx, id, username, roleID)
	return args.Error(0)
}

func (m *mockAdminUserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAdminUserStore) List(ctx context.Context, q pagination.Query) ([]model.PublicUser, int, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.PublicUser), args.Int(1), args.Error(2)
}

type stubHasher struct{}

func (stubHasher) HashPassword(string) (string, error) {
	return "hashed", nil
}

func TestUserService_Create(t *testing.T) {
	t.Run("creates user with the requested role", func(t *testing.T) {
		users := new(mockAdminUserStore)
		users.On("ExistsByUsername", mock.Anything, "newadmin").Return(false, nil)
		users.On("Create", mock.Anything, "newadmin", "hashed", model.RoleAdmin).
			Return(model.User{ID: 4, Username: "newadmin", RoleID: model.RoleAdmin}, nil)

		svc := NewUserService(users, stubHasher{})
		user, err := svc.Create(context.Background(), "newadmin", "pass12345", model.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.RoleID)
		users.AssertExpectations(t)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		users := new(mockAdminUserStore)
		users.On("ExistsByUsername", mock.Anything, "alice1").Return(true, nil)

		svc := NewUserService(users, stubHasher{})
		_, err := svc.Create(context.Background(), "alice1", "pass12345", model.RoleClient)

		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 409, apiErr.HTTPStatus)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_List_ForwardsNormalizedQuery(t *testing.T) {
	users := new(mockAdminUserStore)
	expected := pagination.Query{Page: 1, PageSize: 5, SortColumn: "username", SortDirection: "ASC", Offset: 0}
	users.On("List", mock.Anything, expected).
		Return([]model.PublicUser{{ID: 1, Username: "alice1"}}, 12, nil)

	svc := NewUserService(users, stubHasher{})
	listed, meta, err := svc.List(context.Background(),
		pagination.Raw{Page: "1", PageSize: "5", SortExp: "username", SortOrd: "ASC"})

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	users.AssertExpectations(t)
}

func TestUserService_List_RejectsUnknownSortColumn(t *testing.T) {
	users := new(mockAdminUserStore)

	svc := NewUserService(users, stubHasher{})
	_, _, err := svc.List(context.Background(),
		pagination.Raw{Page: "1", PageSize: "5", SortExp: "password_hash"})

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.HTTPStatus)
	users.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUserService_Update_ReturnsPreviousValues(t *testing.T) {
	users := new(mockAdminUserStore)
	users.On("FindByID", mock.Anything, int64(2)).
		Return(model.User{ID: 2, Username: "oldname", RoleID: model.RoleClient}, nil)
	users.On("Update", mock.Anything, int64(2), "newname", model.RoleAdmin).Return(nil)

	svc := NewUserService(users, stubHasher{})
	previous, err := svc.Update(context.Background(), 2, "newname", model.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, "oldname", previous.Username)
	assert.Equal(t, model.RoleClient, previous.RoleID)
	users.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deleting yourself is rejected", func(t *testing.T) {
		users := new(mockAdminUserStore)

		svc := NewUserService(users, stubHasher{})
		err := svc.Delete(context.Background(), 3, 3)

		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 400, apiErr.HTTPStatus)
		assert.Equal(t, "Cannot delete yourself.", apiErr.Message)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		users := new(mockAdminUserStore)
		users.On("ExistsByID", mock.Anything, int64(99)).Return(false, nil)

		svc := NewUserService(users, stubHasher{})
		err := svc.Delete(context.Background(), 3, 99)

		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 404, apiErr.HTTPStatus)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes another user", func(t *testing.T) {
		users := new(mockAdminUserStore)
		users.On("ExistsByID", mock.Anything, int64(7)).Return(true, nil)
		users.On("Delete", mock.Anything, int64(7)).Return(nil)

		svc := NewUserService(users, stubHasher{})
		err := svc.Delete(context.Background(), 3, 7)

		require.NoError(t, err)
		users.AssertExpectations(t)
	})
}
