package service

import (
	"context"
	"errors"
	"strings"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/internal/omdb"
	"go-movie-watchlist/pkg/apierror"
)

type movieStore interface {
	FindByID(ctx context.Context, id int64) (model.Movie, error)
	FindByImdbID(ctx context.Context, imdbID string) (model.Movie, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByImdbID(ctx context.Context, imdbID string) (bool, error)
	Create(ctx context.Context, m model.Movie) (model.Movie, error)
}

type commentStore interface {
	FindByID(ctx context.Context, id int64) (model.Comment, error)
	Create(ctx context.Context, comment string, userID int64, movieID int64) (model.Comment, error)
	Delete(ctx context.Context, id int64) error
	ListByMovie(ctx context.Context, movieID int64) ([]model.CommentWithAuthor, error)
}

type watchedLookup interface {
	Find(ctx context.Context, userID int64, movieID int64) (model.WatchlistEntry, error)
}

type catalogClient interface {
	Search(ctx context.Context, title string, page int, mediaType string) (omdb.SearchResult, error)
	ByID(ctx context.Context, imdbID string) (omdb.Detail, error)
}

// MovieService covers catalog search, the local movie cache and comments.
type MovieService struct {
	movies   movieStore
	comments commentStore
	watches  watchedLookup
	catalog  catalogClient
}

func NewMovieService(movies movieStore, comments commentStore, watches watchedLookup, catalog catalogClient) *MovieService {
	return &MovieService{movies: movies, comments: comments, watches: watches, catalog: catalog}
}

// SearchCatalog passes a free-text search through to the external catalog.
func (s *MovieService) SearchCatalog(ctx context.Context, search string, page int, mediaType string) (model.CatalogSearchResult, error) {
	if len(search) < 3 {
		return model.CatalogSearchResult{}, apierror.BadRequest("Search query must be at least 3 char long.")
	}

	result, err := s.catalog.Search(ctx, search, page, mediaType)
	if err != nil {
		return model.CatalogSearchResult{}, err
	}

	movies := make([]model.CatalogMovie, 0, len(result.Hits))
	for _, hit := range result.Hits {
		movies = append(movies, model.CatalogMovie{
			Title:  hit.Title,
			Year:   hit.Year,
			ImdbID: hit.ImdbID,
			Type:   hit.Type,
			Poster: hit.Poster,
		})
	}

	return model.CatalogSearchResult{Movies: movies, TotalResults: result.TotalResults}, nil
}

// Get returns a locally stored movie together with the caller's watched
// flag. A movie outside the caller's watchlist reads as unwatched.
func (s *MovieService) Get(ctx context.Context, movieID int64, userID int64) (model.MovieWithStatus, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return model.MovieWithStatus{}, err
	}

	watched := false
	if entry, err := s.watches.Find(ctx, userID, movieID); err == nil {
		watched = entry.Watched
	}

	return model.MovieWithStatus{Movie: movie, Watched: watched}, nil
}

// ResolveByImdbID returns the local movie for an IMDb identifier, fetching
// and caching it from the external catalog on first sight.
func (s *MovieService) ResolveByImdbID(ctx context.Context, imdbID string) (model.Movie, error) {
	movie, err := s.movies.FindByImdbID(ctx, imdbID)
	if err == nil {
		return movie, nil
	}

	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatus != 404 {
		return model.Movie{}, err
	}

	detail, err := s.catalog.ByID(ctx, imdbID)
	if err != nil {
		return model.Movie{}, err
	}

	return s.movies.Create(ctx, model.Movie{
		Title:      detail.Title,
		Img:        detail.Poster,
		ImdbID:     imdbID,
		Type:       detail.Type,
		Released:   omdb.ParseReleased(detail.Released),
		ImdbRating: omdb.ParseRating(detail.ImdbRating),
		Plot:       detail.Plot,
		Actors:     detail.Actors,
		Genre:      detail.Genre,
	})
}

// Create inserts a movie row supplied directly by the client.
func (s *MovieService) Create(ctx context.Context, req model.CreateMovieRequest) (model.Movie, error) {
	exists, err := s.movies.ExistsByImdbID(ctx, req.ImdbID)
	if err != nil {
		return model.Movie{}, err
	}
	if exists {
		return model.Movie{}, apierror.Conflict("Movie already exists.")
	}

	return s.movies.Create(ctx, model.Movie{
		Title:      req.Title,
		Img:        req.Img,
		ImdbID:     req.ImdbID,
		Type:       req.Type,
		Released:   omdb.ParseReleased(req.Released),
		ImdbRating: req.ImdbRating,
		Plot:       req.Plot,
		Actors:     req.Actors,
		Genre:      req.Genre,
	})
}

func (s *MovieService) AddComment(ctx context.Context, movieID int64, userID int64, text string) (model.Comment, error) {
	exists, err := s.movies.ExistsByID(ctx, movieID)
	if err != nil {
		return model.Comment{}, err
	}
	if !exists {
		return model.Comment{}, apierror.NotFound("Movie not found.")
	}

	return s.comments.Create(ctx, strings.TrimSpace(text), userID, movieID)
}

func (s *MovieService) ListComments(ctx context.Context, movieID int64) ([]model.CommentWithAuthor, error) {
	exists, err := s.movies.ExistsByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apierror.NotFound("Movie not found.")
	}

	return s.comments.ListByMovie(ctx, movieID)
}

// DeleteComment removes a comment owned by the caller, returning the
// deleted comment for the audit record.
func (s *MovieService) DeleteComment(ctx context.Context, commentID int64, userID int64) (model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return model.Comment{}, err
	}

	if comment.UserID != userID {
		return model.Comment{}, apierror.Unauthorized("You are not authorized to delete this comment.")
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return model.Comment{}, err
	}

	return comment, nil
}
