package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/bed"
	"github.com/hms/hms/internal/domain/dashboard"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/medicine"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/user"
	"github.com/hms/hms/internal/platform/blob"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/middleware"
	"github.com/hms/hms/internal/seed"
	"github.com/hms/hms/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital Records API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the hospital records API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			b, cleanup, err := openBlob(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			s := store.Open(ctx, b, logger)
			return seed.Run(ctx, s, logger)
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// openBlob builds the persistence backend named by the config. The
// returned cleanup releases the Postgres pool when one was opened.
func openBlob(ctx context.Context, cfg *config.Config) (blob.Store, func(), error) {
	noop := func() {}
	switch cfg.BlobBackend {
	case "memory":
		return blob.NewMemory(), noop, nil
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, err
		}
		pg, err := blob.NewPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pg, pool.Close, nil
	default:
		fs, err := blob.NewFS(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return fs, noop, nil
	}
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	b, cleanup, err := openBlob(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open persistence backend")
	}
	defer cleanup()
	logger.Info().Str("backend", cfg.BlobBackend).Msg("persistence backend ready")

	s := store.Open(ctx, b, logger)

	if cfg.SeedOnStart {
		if err := seed.Run(ctx, s, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	api := e.Group("/api/v1")

	user.NewHandler(user.NewService(s.Users())).RegisterRoutes(api)
	patient.NewHandler(patient.NewService(s.Patients())).RegisterRoutes(api)
	doctor.NewHandler(doctor.NewService(s.Doctors())).RegisterRoutes(api)
	bed.NewHandler(bed.NewService(s.Beds())).RegisterRoutes(api)
	medicine.NewHandler(medicine.NewService(s.Medicines())).RegisterRoutes(api)
	dashboard.NewHandler(dashboard.NewService(s)).RegisterRoutes(api)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
