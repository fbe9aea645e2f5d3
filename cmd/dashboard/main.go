package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/sea-level-dashboard/internal/adapter/httpadapter"
	"github.com/couchcryptid/sea-level-dashboard/internal/adapter/mapbox"
	"github.com/couchcryptid/sea-level-dashboard/internal/config"
	"github.com/couchcryptid/sea-level-dashboard/internal/dashboard"
	"github.com/couchcryptid/sea-level-dashboard/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	metrics := observability.NewMetrics()

	style := mapbox.NewStyle(cfg.MapboxToken)
	if style.UsesMapbox() {
		logger.Info("mapbox basemap enabled", "style", style.Name())
	} else {
		logger.Info("mapbox token not set, using token-free basemap", "style", style.Name())
	}

	controller := dashboard.New(dashboard.OptionsFromConfig(cfg), clockwork.NewRealClock(), logger, metrics)

	srv, err := httpadapter.NewServer(cfg.HTTPAddr, controller, httpadapter.PageOptions{
		Style:         style,
		Zoom:          cfg.MapZoom,
		MarkerSize:    cfg.MarkerSize,
		MarkerOpacity: cfg.MarkerOpacity,
	}, logger)
	if err != nil {
		logger.Error("failed to build http server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warm-up render: proves the configured grid and baseline are usable and
	// flips readiness before traffic arrives.
	view, err := controller.ParseView("", "")
	if err == nil {
		_, err = controller.Render(ctx, view)
	}
	if err != nil {
		logger.Error("warm-up render failed", "error", err)
		os.Exit(1)
	}
	logger.Info("dashboard ready",
		"grid_lat_count", cfg.GridLatCount,
		"grid_lon_count", cfg.GridLonCount,
		"grid_seed", cfg.GridSeed,
		"year_min", cfg.YearMin,
		"year_max", cfg.YearMax,
	)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// newLogger installs the process-wide slog logger configured by LOG_LEVEL and
// LOG_FORMAT.
func newLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}
