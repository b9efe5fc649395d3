package handler

import (
	"net/http"

	"go-movie-watchlist/internal/pagination"
	"go-movie-watchlist/internal/service"
)

// UserLogHandler exposes the audit trail to administrators.
type UserLogHandler struct {
	service *service.UserLogService
}

func NewUserLogHandler(service *service.UserLogService) *UserLogHandler {
	return &UserLogHandler{service: service}
}

func (h *UserLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, meta, err := h.service.List(r.Context(), pagination.FromRequest(r), r.URL.Query().Get("action"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"userLogs": logs}, &meta)
}
