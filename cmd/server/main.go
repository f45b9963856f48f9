package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/CryptoShield-Backend/internal/api"
	"github.com/ndewijer/CryptoShield-Backend/internal/config"
	"github.com/ndewijer/CryptoShield-Backend/internal/database"
	"github.com/ndewijer/CryptoShield-Backend/internal/logging"
	"github.com/ndewijer/CryptoShield-Backend/internal/repository"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
	"github.com/ndewijer/CryptoShield-Backend/internal/version"
	"github.com/ndewijer/CryptoShield-Backend/internal/view"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.Logging)
	log.Logger = logger

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
	logger.Info().Msg("server exited")
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	db, source, err := openSource(cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	// Create services
	systemService := service.NewSystemService(db, cfg.Allocation.Source)
	allocationService := service.NewAllocationService(source, cfg.Allocation, logger)

	// Create router
	router := api.NewRouter(systemService, allocationService, renderer, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str("addr", cfg.Server.Addr).
			Str("version", version.Version).
			Str("recommendation_source", cfg.Allocation.Source).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openSource returns the configured recommendation source. The sqlite source
// opens and migrates the database; the static source needs no database and
// returns a nil *sql.DB.
func openSource(cfg *config.Config, logger zerolog.Logger) (*sql.DB, service.RecommendationSource, error) {
	if cfg.Allocation.Source != config.SourceSQLite {
		return nil, service.NewStaticRecommendationSource(nil), nil
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, err
		}
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(context.Background(), db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to database")
	return db, repository.NewRecommendationRepository(db), nil
}
