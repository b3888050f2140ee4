package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/murarihealth/dashboard/internal/analyzer"
	"github.com/murarihealth/dashboard/internal/config"
	"github.com/murarihealth/dashboard/internal/domain/health"
	"github.com/murarihealth/dashboard/internal/platform/auth"
	"github.com/murarihealth/dashboard/internal/platform/middleware"
	"github.com/murarihealth/dashboard/internal/platform/storage"
	"github.com/murarihealth/dashboard/internal/seed"
	"github.com/murarihealth/dashboard/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashboard-server",
		Short: "Personal health dashboard API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the configured storage to the bundled defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := context.Background()
			st, cleanup, err := newStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			blob, err := json.Marshal(store.NewSnapshot(seed.Defaults()))
			if err != nil {
				return fmt.Errorf("serializing defaults: %w", err)
			}
			if err := st.Write(ctx, blob); err != nil {
				return fmt.Errorf("writing defaults: %w", err)
			}

			logger.Info().Str("driver", cfg.StorageDriver).Msg("storage reset to bundled defaults")
			return nil
		},
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text]",
		Short: "Run the symptom analyzer once and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an := analyzer.New(seed.SymptomRules())
			res := an.Analyze(strings.Join(args, " "))

			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// newStorage builds the configured storage backend. The cleanup func
// releases any held resources.
func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func(), error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemoryStorage(nil), func() {}, nil
	case "file":
		return storage.NewFileStorage(cfg.DataFile), func() {}, nil
	case "postgres":
		pg, err := storage.NewPostgresStorage(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	st, cleanup, err := newStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage")
	}
	defer cleanup()
	logger.Info().Str("driver", cfg.StorageDriver).Msg("storage ready")

	dataStore := store.Open(ctx, st, seed.Defaults(), logger)
	svc := health.NewService(dataStore, analyzer.New(seed.SymptomRules()))
	gate := auth.NewGate(cfg.AccessCode, cfg.SigningKey())

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
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/api/v1/unlock", gate.UnlockHandler())

	apiV1 := e.Group("/api/v1", gate.Middleware())
	health.NewHandler(svc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
