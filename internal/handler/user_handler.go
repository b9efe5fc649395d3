package handler

import (
	"fmt"
	"net/http"

	"go-movie-watchlist/internal/event"
	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/pagination"
	"go-movie-watchlist/internal/service"
	"go-movie-watchlist/internal/validate"
)

// UserHandler backs the admin-only user management endpoints.
type UserHandler struct {
	service *service.UserService
	bus     event.Bus
}

func NewUserHandler(service *service.UserService, bus event.Bus) *UserHandler {
	return &UserHandler{service: service, bus: bus}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateUserRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.Create(r.Context(), payload.Username, payload.Password, payload.RoleID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"message": "User created successfully."}, nil)

	publishAudit(h.bus, r, model.ActionAdd,
		fmt.Sprintf("Created user with ID %d", user.ID),
		fmt.Sprintf("User: %d, %s", user.ID, user.Username))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, meta, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"users": users}, &meta)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	userID, err := idParam(r, "userId", "User id must be number.")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateUserRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	previous, err := h.service.Update(r.Context(), userID, payload.Username, payload.RoleID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"message": "User updated successfully."}, nil)

	publishAudit(h.bus, r, model.ActionUpdate,
		fmt.Sprintf("Updated user with ID %d", userID),
		fmt.Sprintf("User: %d, %s -> %s, %d -> %d",
			userID, previous.Username, payload.Username, previous.RoleID, payload.RoleID))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId", "User id must be number.")
	if err != nil {
		writeError(w, err)
		return
	}

	claims, err := currentClaims(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), claims.UserID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"message": "User deleted successfully."}, nil)

	publishAudit(h.bus, r, model.ActionDelete,
		fmt.Sprintf("Deleted user with ID %d", userID),
		fmt.Sprintf("User ID: %d", userID))
}
