package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-movie-watchlist/internal/config"
	"go-movie-watchlist/internal/database"
	"go-movie-watchlist/internal/event"
	"go-movie-watchlist/internal/handler"
	"go-movie-watchlist/internal/middleware"
	"go-movie-watchlist/internal/omdb"
	"go-movie-watchlist/internal/repository"
	"go-movie-watchlist/internal/router"
	"go-movie-watchlist/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	movieRepo := repository.NewMovieRepository(pool)
	watchlistRepo := repository.NewWatchlistRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	userLogRepo := repository.NewUserLogRepository(pool)
	slog.Info("database ready")

	catalog := omdb.NewClient(cfg.OMDbBaseURL, cfg.OMDbAPIKey, cfg.OMDbTimeout)

	authService := service.NewAuthService(cfg.JWTSecret, cfg.TokenTTL, userRepo)
	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.CookieSecure)

	bus := event.NewBus()
	userLogService := service.NewUserLogService(userLogRepo, userRepo)
	auditEvents, unsubscribe := bus.Subscribe()
	recorderCtx, recorderCancel := context.WithCancel(context.Background())
	go userLogService.Run(recorderCtx, auditEvents)

	movieService := service.NewMovieService(movieRepo, commentRepo, watchlistRepo, catalog)
	watchlistService := service.NewWatchlistService(watchlistRepo, movieService)
	userService := service.NewUserService(userRepo, authService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:      handler.NewAuthHandler(authService, authMiddleware),
		Movie:     handler.NewMovieHandler(movieService, bus),
		Watchlist: handler.NewWatchlistHandler(watchlistService, bus),
		User:      handler.NewUserHandler(userService, bus),
		UserLog:   handler.NewUserLogHandler(userLogService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			func() {
				recorderCancel()
				unsubscribe()
			},
			func() {
				db.Close()
			},
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
