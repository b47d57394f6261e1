package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/invitro/booking/internal/config"
	"github.com/invitro/booking/internal/domain/appointment"
	"github.com/invitro/booking/internal/domain/booking"
	"github.com/invitro/booking/internal/domain/catalog"
	"github.com/invitro/booking/internal/domain/session"
	"github.com/invitro/booking/internal/platform/db"
	"github.com/invitro/booking/internal/platform/middleware"
)

// devSessionSecret signs session tokens when SESSION_SECRET is unset.
// Validate rejects this fallback in production.
const devSessionSecret = "booking-dev-secret"

func main() {
	rootCmd := &cobra.Command{
		Use:   "booking-server",
		Short: "Doctor booking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the booking API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and seed the doctor catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for migrate")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, db.Config{
				URL:      cfg.DatabaseURL,
				MaxConns: cfg.DBMaxConns,
				MinConns: cfg.DBMinConns,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if err := catalog.SeedPG(ctx, pool, catalog.SeedDoctors()); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}

			fmt.Println("Schema applied and catalog seeded.")
			return nil
		},
	}
}

func runServer() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		logger.Warn().Msg("SESSION_SECRET not set, using development secret")
		secret = []byte(devSessionSecret)
	}

	// Stores. Postgres when DATABASE_URL is set, otherwise the catalog
	// is served from the built-in seed and appointments persist to a
	// JSON record under DATA_DIR.
	var (
		catalogRepo catalog.Repository
		apptRepo    appointment.Repository
	)
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := db.NewPool(ctx, db.Config{
			URL:      cfg.DatabaseURL,
			MaxConns: cfg.DBMaxConns,
			MinConns: cfg.DBMinConns,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply schema")
		}
		if err := catalog.SeedPG(ctx, pool, catalog.SeedDoctors()); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed catalog")
		}

		catalogRepo = catalog.NewPGRepo(pool)
		apptRepo = appointment.NewPGRepo(pool)
		logger.Info().Msg("connected to database")
	} else {
		catalogRepo = catalog.NewMemRepo(catalog.SeedDoctors())
		apptRepo = appointment.NewFileRepo(cfg.DataDir, logger)
		logger.Info().Str("dir", cfg.DataDir).Msg("using file-backed appointment store")
	}

	catalogSvc := catalog.NewService(catalogRepo)
	apptSvc := appointment.NewService(apptRepo)
	bookingSvc := booking.NewService(catalogSvc, apptSvc,
		booking.WithServiceSubmitDelay(cfg.SubmitDelay()))
	sessionStore := session.NewStore(cfg.DataDir, logger)

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
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	apiV1 := e.Group("/api/v1")

	// Login is the only route reachable without a session token.
	sessionHandler := session.NewHandler(sessionStore, secret)
	sessionHandler.RegisterRoutes(apiV1)

	authed := apiV1.Group("", session.Middleware(secret))
	catalog.NewHandler(catalogSvc).RegisterRoutes(authed)
	appointment.NewHandler(apptSvc).RegisterRoutes(authed)
	booking.NewHandler(bookingSvc).RegisterRoutes(authed)

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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
