package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-movie-watchlist/internal/config"
	"go-movie-watchlist/internal/handler"
	"go-movie-watchlist/internal/middleware"
	"go-movie-watchlist/internal/model"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Movie     *handler.MovieHandler
	Watchlist *handler.WatchlistHandler
	User      *handler.UserHandler
	UserLog   *handler.UserLogHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	adminOnly := authMiddleware.RequireRoles(model.RoleAdmin)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", h.Auth.Register)
			auth.Post("/login", h.Auth.Login)
			auth.With(authMiddleware.RequireAuth).Delete("/logout", h.Auth.Logout)
			auth.With(authMiddleware.RequireAuth).Get("/check", h.Auth.Check)
		})

		api.Route("/movies", func(movies chi.Router) {
			movies.Use(authMiddleware.RequireAuth)
			movies.Get("/", h.Movie.Search)
			movies.Post("/", h.Movie.Create)
			movies.Get("/imdb/{imdbId}", h.Movie.GetByImdbID)
			movies.Get("/{movieId}", h.Movie.Get)
			movies.Post("/{movieId}/comments", h.Movie.AddComment)
			movies.Get("/{movieId}/comments", h.Movie.ListComments)
			movies.Delete("/{movieId}/comments/{commentId}", h.Movie.DeleteComment)
		})

		api.Route("/watchlist", func(watchlist chi.Router) {
			watchlist.Use(authMiddleware.RequireAuth)
			watchlist.Post("/", h.Watchlist.Add)
			watchlist.Get("/", h.Watchlist.List)
			watchlist.Patch("/{movieId}", h.Watchlist.UpdateWatched)
			watchlist.Delete("/{movieId}", h.Watchlist.Remove)
		})

		api.Route("/users", func(users chi.Router) {
			users.Use(authMiddleware.RequireAuth, adminOnly)
			users.Post("/", h.User.Create)
			users.Get("/", h.User.List)
			users.Put("/{userId}", h.User.Update)
			users.Delete("/{userId}", h.User.Delete)
		})

		api.With(authMiddleware.RequireAuth, adminOnly).Get("/user-logs", h.UserLog.List)
	})

	return r
}
