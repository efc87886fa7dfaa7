package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/config"
	"github.com/temitayo1239/student-information-portal-main/internal/database"
	"github.com/temitayo1239/student-information-portal-main/internal/handler"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/middleware"
	"github.com/temitayo1239/student-information-portal-main/internal/repository"
	"github.com/temitayo1239/student-information-portal-main/internal/router"
	"github.com/temitayo1239/student-information-portal-main/internal/service"
	"github.com/temitayo1239/student-information-portal-main/internal/store"
	"github.com/temitayo1239/student-information-portal-main/internal/validator"
	"github.com/temitayo1239/student-information-portal-main/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("session_backend", cfg.SessionBackend).
		Str("catalog_source", cfg.CatalogSource).
		Msg("Starting student portal")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checks := map[string]handler.Pinger{}

	// ─── Load Catalog ──────────────────────────────────────────────────
	var catalog repository.Catalog = repository.NewFixtureCatalog()
	if cfg.CatalogSource == config.CatalogSourcePostgres {
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		loaded, err := repository.NewCatalogRepository(pool).Load(ctx)
		// The catalog is read once; the pool is not needed afterwards.
		pool.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load catalog")
		}
		catalog = loaded
	}
	log.Info().
		Int("courses", len(catalog.Courses())).
		Int("notifications", len(catalog.Notifications())).
		Msg("Catalog loaded")

	// ─── Session Store ─────────────────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var sessions store.Store
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		sessions = store.NewRedisStore(rdb)
	default:
		mem := store.NewMemoryStore()
		janitor := worker.NewSessionJanitor(mem, cfg.JanitorInterval, log)
		go janitor.Start(workerCtx)
		sessions = mem
	}

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	portalService := service.NewPortalService(catalog, sessions, authService, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(portalService, log),
		Registration: handler.NewRegistrationHandler(portalService, log),
		Notification: handler.NewNotificationHandler(portalService, log),
		Academic:     handler.NewAcademicHandler(portalService, log),
		WS:           handler.NewWSHandler(portalService, log, cfg.AllowedOrigins),
		Health:       handler.NewHealthHandler(checks, sessions, log),
	}

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, time.Minute)
	go loginLimiter.Run(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(portalService, handlers, loginLimiter, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers.
	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
