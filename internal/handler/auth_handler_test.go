package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-movie-watchlist/internal/middleware"
	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/service"
	"go-movie-watchlist/pkg/apierror"
)

// fakeUserStore keeps users in a map keyed by username.
type fakeUserStore struct {
	users  map[string]model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User), nextID: 1}
}

func (s *fakeUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, apierror.NotFound("User don't exists in the system.")
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	u, ok := s.users[username]
	if !ok {
		return model.User{}, apierror.NotFound("User don't exists in the system.")
	}
	return u, nil
}

func (s *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func (s *fakeUserStore) Create(_ context.Context, username string, passwordHash string, roleID model.Role) (model.User, error) {
	u := model.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		CreatedAt:    time.Now(),
	}
	s.nextID++
	s.users[username] = u
	return u, nil
}

func newAuthTestHandler(t *testing.T) (*AuthHandler, *service.AuthService, *fakeUserStore) {
	t.Helper()

	store := newFakeUserStore()
	authService := service.NewAuthService("handler-test-secret", time.Hour, store)
	sessions := middleware.NewAuthMiddleware(authService, false)
	return NewAuthHandler(authService, sessions), authService, store
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()

	var envelope model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestAuthHandlerRegister(t *testing.T) {
	h, _, store := newAuthTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"username":"moviefan","password":"secret123"}`))
	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)

	created, ok := store.users["moviefan"]
	require.True(t, ok)
	assert.Equal(t, model.RoleClient, created.RoleID)
	assert.NotEqual(t, "secret123", created.PasswordHash)
}

func TestAuthHandlerRegisterDuplicate(t *testing.T) {
	h, _, store := newAuthTestHandler(t)
	store.users["moviefan"] = model.User{ID: 1, Username: "moviefan"}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"username":"moviefan","password":"secret123"}`))
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "User already exists.", envelope.Error.Message)
}

func TestAuthHandlerRegisterRejectsShortPassword(t *testing.T) {
	h, _, store := newAuthTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"username":"moviefan","password":"abc"}`))
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.users)
}

func TestAuthHandlerLoginSetsSessionCookie(t *testing.T) {
	h, authService, store := newAuthTestHandler(t)

	hash, err := authService.HashPassword("secret123")
	require.NoError(t, err)
	store.users["moviefan"] = model.User{ID: 7, Username: "moviefan", PasswordHash: hash, RoleID: model.RoleClient}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"moviefan","password":"secret123"}`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.True(t, session.HttpOnly)

	claims, err := authService.ValidateToken(session.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "moviefan", claims.Username)
}

func TestAuthHandlerLoginUnknownUser(t *testing.T) {
	h, _, _ := newAuthTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"nobody1","password":"secret123"}`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	h, authService, store := newAuthTestHandler(t)

	hash, err := authService.HashPassword("secret123")
	require.NoError(t, err)
	store.users["moviefan"] = model.User{ID: 7, Username: "moviefan", PasswordHash: hash}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"moviefan","password":"wrong-one"}`))
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLogoutClearsCookie(t *testing.T) {
	h, _, _ := newAuthTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
}

func TestAuthHandlerCheck(t *testing.T) {
	h, _, store := newAuthTestHandler(t)
	store.users["moviefan"] = model.User{ID: 7, Username: "moviefan", RoleID: model.RoleAdmin}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/check", nil)
	req = req.WithContext(middleware.ContextWithClaims(req.Context(), &model.AuthClaims{
		UserID: 7, Username: "moviefan", RoleID: model.RoleAdmin,
	}))

	rec := httptest.NewRecorder()
	h.Check(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}
