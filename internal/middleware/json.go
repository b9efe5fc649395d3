package middleware

import (
	"encoding/json"
	"net/http"

	"go-movie-watchlist/internal/model"
)

// writeJSON emits an API envelope directly from a middleware, outside the
// handler package's response helpers.
func writeJSON(w http.ResponseWriter, status int, payload model.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
