package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"go-movie-watchlist/internal/model"
)

// Timeout bounds the total time a request may spend in a handler. The
// timeout body carries the same envelope as every other error response.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	body, _ := json.Marshal(model.APIResponse{
		Success: false,
		Error:   &model.APIError{Code: "REQUEST_TIMEOUT", Message: "Request timed out."},
	})

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
