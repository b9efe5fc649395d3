package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-movie-watchlist/internal/middleware"
	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any, meta *model.Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// writeError maps the closed apierror taxonomy to HTTP statuses. Anything
// outside it becomes a generic 500 with no internal detail leaked.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	} else {
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}

func decodeJSON(r *http.Request, payload any) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return apierror.BadRequest("Invalid JSON body.")
	}
	return nil
}

// idParam parses a numeric chi URL parameter.
func idParam(r *http.Request, name string, message string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apierror.BadRequest(message)
	}
	return id, nil
}

// currentClaims returns the verified session claims. Routes behind
// RequireAuth always have them; the fallback guards direct handler use.
func currentClaims(r *http.Request) (*model.AuthClaims, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil, apierror.Unauthorized("Not authorized.")
	}
	return claims, nil
}
