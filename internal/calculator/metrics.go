package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"utility-api/internal/observability"
)

// Metric instruments, replaced with live ones by InitMetrics.
var (
	instruments                     = observability.NoopInstruments()
	resultGauge metric.Float64Gauge = noop.Float64Gauge{}
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	in, err := observability.NewInstruments("calculator")
	if err != nil {
		return err
	}

	gauge, err := otel.Meter("calculator").Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last numeric calculator operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	instruments = in
	resultGauge = gauge
	return nil
}
