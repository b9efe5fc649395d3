package handler

import (
	"fmt"
	"net/http"

	"go-movie-watchlist/internal/event"
	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/service"
	"go-movie-watchlist/internal/validate"
)

type WatchlistHandler struct {
	service *service.WatchlistService
	bus     event.Bus
}

func NewWatchlistHandler(service *service.WatchlistService, bus event.Bus) *WatchlistHandler {
	return &WatchlistHandler{service: service, bus: bus}
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AddWatchlistRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	claims, err := currentClaims(r)
	if err != nil {
		writeError(w, err)
		return
	}

	movie, err := h.service.Add(r.Context(), claims.UserID, payload.ImdbID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"message": "Movie added to your watchlist."}, nil)

	publishAudit(h.bus, r, model.ActionAdd,
		fmt.Sprintf("Added movie to watchlist with ID %d", movie.ID),
		fmt.Sprintf("Movie: %d, %s", movie.ID, movie.Title))
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := currentClaims(r)
	if err != nil {
		writeError(w, err)
		return
	}

	movies, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"movies": movies}, nil)
}

func (h *WatchlistHandler) UpdateWatched(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	movieID, err := idParam(r, "movieId", "Movie id must be number.")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateWatchlistRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	claims, err := currentClaims(r)
	if err != nil {
		writeError(w, err)
		return
	}

	previous, err := h.service.SetWatched(r.Context(), claims.UserID, movieID, payload.Watched)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"message": "Watch status updated successfully."}, nil)

	publishAudit(h.bus, r, model.ActionUpdate,
		fmt.Sprintf("Changed watch status for movie with ID %d", movieID),
		fmt.Sprintf("Watch status: %s -> %s", watchedLabel(previous), watchedLabel(payload.Watched)))
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "movieId", "Movie id must be number.")
	if err != nil {
		writeError(w, err)
		return
	}

	claims, err := currentClaims(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Remove(r.Context(), claims.UserID, movieID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"message": "Movie removed from your watchlist."}, nil)

	publishAudit(h.bus, r, model.ActionDelete,
		fmt.Sprintf("Removed movie from watchlist with ID %d", movieID),
		fmt.Sprintf("Movie ID: %d", movieID))
}

func watchedLabel(watched bool) string {
	if watched {
		return "watched"
	}
	return "unwatched"
}
