package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/pkg/apierror"
)

type mockWatchlistStore struct {
	mock.Mock
}

func (m *mockWatchlistStore) Find(ctx context.Context, userID int64, movieID int64) (model.WatchlistEntry, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(model.WatchlistEntry), args.Error(1)
}

func (m *mockWatchlistStore) Exists(ctx context.Context, userID int64, movieID int64) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWatchlistStore) Create(ctx context.Context, userID int64, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *mockWatchlistStore) UpdateWatched(ctx context.Context, userID int64, movieID int64, watched bool) error {
	args := m.Called(ctx, userID, movieID, watched)
	return args.Error(0)
}

func (m *mockWatchlistStore) Delete(ctx context.Context, userID int64, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *mockWatchlistStore) ListMovies(ctx context.Context, userID int64) ([]model.MovieWithStatus, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.MovieWithStatus), args.Error(1)
}

type mockMovieResolver struct {
	mock.Mock
}

func (m *mockMovieResolver) ResolveByImdbID(ctx context.Context, imdbID string) (model.Movie, error) {
	args := m.Called(ctx, imdbID)
	return args.Get(0).(model.Movie), args.Error(1)
}

func TestWatchlistService_Add(t *testing.T) {
	t.Run("resolves movie and creates entry", func(t *testing.T) {
		entries := new(mockWatchlistStore)
		movies := new(mockMovieResolver)
		movies.On("ResolveByImdbID", mock.Anything, "tt0133093").
			Return(model.Movie{ID: 9, ImdbID: "tt0133093", Title: "The Matrix"}, nil)
		entries.On("Exists", mock.Anything, int64(1), int64(9)).Return(false, nil)
		entries.On("Create", mock.Anything, int64(1), int64(9)).Return(nil)

		svc := NewWatchlistService(entries, movies)
		movie, err := svc.Add(context.Background(), 1, "tt0133093")

		require.NoError(t, err)
		assert.Equal(t, int64(9), movie.ID)
		entries.AssertExpectations(t)
	})

	t.Run("movie already on the list is rejected", func(t *testing.T) {
		entries := new(mockWatchlistStore)
		movies := new(mockMovieResolver)
		movies.On("ResolveByImdbID", mock.Anything, "tt0133093").
			Return(model.Movie{ID: 9, ImdbID: "tt0133093"}, nil)
		entries.On("Exists", mock.Anything, int64(1), int64(9)).Return(true, nil)

		svc := NewWatchlistService(entries, movies)
		_, err := svc.Add(context.Background(), 1, "tt0133093")

		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 400, apiErr.HTTPStatus)
		assert.Equal(t, "Movie is already in your watchlist.", apiErr.Message)
		entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("resolver failure is passed through", func(t *testing.T) {
		entries := new(mockWatchlistStore)
		movies := new(mockMovieResolver)
		movies.On("ResolveByImdbID", mock.Anything, "tt0000000").
			Return(model.Movie{}, apierror.BadRequest("Movie not found!"))

		svc := NewWatchlistService(entries, movies)
		_, err := svc.Add(context.Background(), 1, "tt0000000")

		assert.Error(t, err)
		entries.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWatchlistService_SetWatched_ReturnsPreviousFlag(t *testing.T) {
	entries := new(mockWatchlistStore)
	entries.On("Find", mock.Anything, int64(1), int64(9)).
		Return(model.WatchlistEntry{ID: 5, UserID: 1, MovieID: 9, Watched: false}, nil)
	entries.On("UpdateWatched", mock.Anything, int64(1), int64(9), true).Return(nil)

	svc := NewWatchlistService(entries, new(mockMovieResolver))
	previous, err := svc.SetWatched(context.Background(), 1, 9, true)

	require.NoError(t, err)
	assert.False(t, previous)
	entries.AssertExpectations(t)
}

func TestWatchlistService_SetWatched_MissingEntry(t *testing.T) {
	entries := new(mockWatchlistStore)
	entries.On("Find", mock.Anything, int64(1), int64(9)).
		Return(model.WatchlistEntry{}, apierror.NotFound("Movie not found in your watchlist."))

	svc := NewWatchlistService(entries, new(mockMovieResolver))
	_, err := svc.SetWatched(context.Background(), 1, 9, true)

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.HTTPStatus)
	entries.AssertNotCalled(t, "UpdateWatched", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWatchlistService_List(t *testing.T) {
	entries := new(mockWatchlistStore)
	entries.On("ListMovies", mock.Anything, int64(1)).
		Return([]model.MovieWithStatus{
			{Movie: model.Movie{ID: 9, Title: "The Matrix"}, Watched: true},
		}, nil)

	svc := NewWatchlistService(entries, new(mockMovieResolver))
	movies, err := svc.List(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.True(t, movies[0].Watched)
}
