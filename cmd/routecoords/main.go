package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"route-polyline/internal/adapters/directions"
	"route-polyline/internal/config"
	"route-polyline/internal/platform/obs"
	"route-polyline/internal/ports"
	"route-polyline/internal/services"
	"strings"
)

// main is the composition root.
// It loads configuration, wires the configured directions adapter behind the
// port and prints one route to stdout.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if !cfg.EnvFileLoaded {
		logger.Debug("no .env file found (using environment variables)")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	provider, err := newProvider(cfg.Directions)
	if err != nil {
		return err
	}

	ctx := obs.WithRunID(context.Background())
	if cfg.Directions.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Directions.Timeout)
		defer cancel()
	}

	logger.Info("requesting route",
		"run_id", obs.RunID(ctx),
		"client", cfg.Directions.Client,
		"origin", cfg.Route.Origin,
		"destination", cfg.Route.Destination,
	)

	printer := &services.RoutePrinter{
		Provider: provider,
		Out:      os.Stdout,
		Logger:   logger,
	}
	return printer.Print(ctx, cfg.Route.Origin, cfg.Route.Destination)
}

func newProvider(dc config.DirectionsConfig) (ports.DirectionsProvider, error) {
	switch strings.ToLower(dc.Client) {
	case config.ClientSDK:
		return directions.NewMapsSDKProvider(dc.APIKey, dc.BaseURL, dc.Timeout)
	case config.ClientHTTP:
		return directions.NewGoogleDirectionsProvider(dc.APIKey, dc.BaseURL, dc.Timeout)
	default:
		return nil, fmt.Errorf("unknown directions client %q", dc.Client)
	}
}
