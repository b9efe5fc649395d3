package handler

import (
	"net/http"

	"go-movie-watchlist/internal/middleware"
	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/service"
	"go-movie-watchlist/internal/validate"
)

type AuthHandler struct {
	service  *service.AuthService
	sessions *middleware.AuthMiddleware
}

func NewAuthHandler(service *service.AuthService, sessions *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": "User created successfully.",
	}, nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	user, token, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.sessions.SetSessionCookie(w, token, int(h.service.TokenTTL().Seconds()))
	writeSuccess(w, http.StatusOK, map[string]any{
		"user":    user,
		"message": "Login successful.",
	}, nil)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearSessionCookie(w)
	writeSuccess(w, http.StatusOK, map[string]any{"message": "Logged out."}, nil)
}

func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	claims, err := currentClaims(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.CheckAuth(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": user}, nil)
}
