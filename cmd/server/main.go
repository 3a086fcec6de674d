// Package main is the entry point for the flight booking service.
//
//	@title						Flight Booking API
//	@version					1.0.0
//	@description				Flight catalog search, booking history, and admin console endpoints for the flight booking system.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-booking/flight-booking-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-booking/flight-booking-system/docs"

	bookinghttp "github.com/flight-booking/flight-booking-system/internal/adapter/http"
	"github.com/flight-booking/flight-booking-system/internal/adapter/store/sqlite"
	"github.com/flight-booking/flight-booking-system/internal/config"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/cache"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-system/internal/infrastructure/retry"
	"github.com/flight-booking/flight-booking-system/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Path).
		Bool("cache", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-booking",
	})

	// Open the document store, waiting briefly for a slow volume mount
	store, err := openStore(cfg, appLog)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open document store")
	}
	defer store.Close()

	// Result cache: Redis when enabled, otherwise a no-op
	resultCache := setupCache(cfg)

	// Use cases
	catalog := usecase.NewCatalogUseCase(store, resultCache, appLog, &usecase.Config{
		CacheTTL: cfg.Cache.TTL,
	})
	bookings := usecase.NewBookingUseCase(store, nil, appLog)

	// Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	setupMiddleware(e)

	handler := bookinghttp.NewHandler(catalog, bookings)
	bookinghttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// openStore opens the SQLite document store with startup retries.
func openStore(cfg *config.Config, appLog *logger.Logger) (*sqlite.Store, error) {
	var store *sqlite.Store
	err := retry.Do(context.Background(), retry.StartupConfig, func(ctx context.Context) error {
		s, err := sqlite.Open(cfg.Store.Path, appLog)
		if err != nil {
			return err
		}
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return err
		}
		store = s
		return nil
	})
	return store, err
}

// setupCache wires the Redis result cache when enabled, degrading to a
// no-op cache when Redis is unreachable so the catalog still serves.
func setupCache(cfg *config.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return cache.NewNoop()
	}

	c := cache.NewRedis(cfg.Cache.Addr)
	err := retry.Do(context.Background(), retry.StartupConfig, func(ctx context.Context) error {
		return cache.Ping(ctx, c)
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.Addr).Msg("Redis unreachable, caching disabled")
		return cache.NewNoop()
	}

	log.Info().Str("addr", cfg.Cache.Addr).Msg("Result cache connected")
	return c
}

// setupMiddleware configures the Echo middleware stack.
func setupMiddleware(e *echo.Echo) {
	// Recovery middleware - recover from panics
	e.Use(middleware.Recover())

	// Request ID middleware
	e.Use(middleware.RequestID())

	// Logger middleware with zerolog integration
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("HTTP request")
			return nil
		},
	}))
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
