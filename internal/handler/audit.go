package handler

import (
	"net/http"

	"go-movie-watchlist/internal/event"
	"go-movie-watchlist/internal/middleware"
	"go-movie-watchlist/internal/model"
)

// publishAudit hands an audit event to the background recorder. Called
// strictly after the response has been written so the log write can never
// delay or fail the request.
func publishAudit(bus event.Bus, r *http.Request, action model.UserLogAction, description string, details string) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return
	}

	bus.Publish(event.AuditEvent{
		UserID:      claims.UserID,
		Action:      action,
		Description: description,
		Details:     details,
	})
}
