package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-movie-watchlist/internal/event"
	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/service"
	"go-movie-watchlist/internal/validate"
	"go-movie-watchlist/pkg/apierror"
)

type MovieHandler struct {
	service *service.MovieService
	bus     event.Bus
}

func NewMovieHandler(service *service.MovieService, bus event.Bus) *MovieHandler {
	return &MovieHandler{service: service, bus: bus}
}

// Search proxies a free-text search to the external catalog.
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("p"))
	if err != nil {
		page = 1
	}

	result, err := h.service.SearchCatalog(r.Context(), q.Get("s"), page, q.Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result, nil)
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	movie, err := h.service.Get(r.Context(), movieID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"movie": movie}, nil)
}

// GetByImdbID resolves an IMDb identifier to a local movie id, caching the
// record from the external catalog on first lookup.
func (h *MovieHandler) GetByImdbID(w http.ResponseWriter, r *http.Request) {
	imdbID := chi.URLParam(r, "imdbId")
	if imdbID == "" {
		writeError(w, apierror.BadRequest("IMDB ID cannot be empty."))
		return
	}

	movie, err := h.service.ResolveByImdbID(r.Context(), imdbID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"movieId": movie.ID}, nil)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateMovieRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	movie, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"movie": movie}, nil)
}

func (h *MovieHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	movieID, err := idParam(r, "movieId", "Movie id must be number.")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.CreateCommentRequest
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

	comment, err := h.service.AddComment(r.Context(), movieID, claims.UserID, payload.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"message": "Comment added successfully."}, nil)

	publishAudit(h.bus, r, model.ActionAdd,
		fmt.Sprintf("Added comment to movie with ID %d", movieID),
		fmt.Sprintf("Comment: %s", comment.Comment))
}

func (h *MovieHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "movieId", "Movie id must be number.")
	if err != nil {
		writeError(w, err)
		return
	}

	comments, err := h.service.ListComments(r.Context(), movieID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"comments": comments}, nil)
}

func (h *MovieHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	movieID, err := idParam(r, "movieId", "Movie id and comment id must be numbers.")
	if err != nil {
		writeError(w, err)
		return
	}

	commentID, err := idParam(r, "commentId", "Movie id and comment id must be numbers.")
	if err != nil {
		writeError(w, err)
		return
	}

	claims, err := currentClaims(r)
	if err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.service.DeleteComment(r.Context(), commentID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"message": "Comment was removed."}, nil)

	publishAudit(h.bus, r, model.ActionDelete,
		fmt.Sprintf("Deleted comment from movie with ID %d", movieID),
		fmt.Sprintf("Comment: %s", comment.Comment))
}
