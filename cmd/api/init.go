package main

import (
	"context"
	"errors"

	"utility-api/internal/calculator"
	"utility-api/internal/config"
	"utility-api/internal/observability"
	"utility-api/internal/text"
)

type shutdownFunc func(context.Context) error

// initTelemetry starts the OTLP providers enabled in cfg and registers the
// domain metric instruments. The returned func flushes and stops them all.
func initTelemetry(ctx context.Context, cfg *config.Config) (shutdownFunc, error) {
	var shutdowns []shutdownFunc
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Telemetry.Logs {
		fn, err := observability.InitLogging(ctx, cfg.Name)
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, fn)
	}

	if cfg.Telemetry.Traces {
		fn, err := observability.InitTracing(ctx, cfg.Name)
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, fn)
	}

	if cfg.Telemetry.Metrics {
		fn, err := observability.InitMetrics(ctx, cfg.Name)
		if err != nil {
			return shutdown, err
		}
		shutdowns = append(shutdowns, fn)
	}

	// Add new domain InitMetrics calls here as the project grows.
	if err := calculator.InitMetrics(); err != nil {
		return shutdown, err
	}
	if err := text.InitMetrics(); err != nil {
		return shutdown, err
	}

	return shutdown, nil
}
