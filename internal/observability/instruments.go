package observability

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Instruments are the per-operation OTel instruments every domain records.
type Instruments struct {
	Ops      metric.Int64Counter
	Duration metric.Float64Histogram
	Errors   metric.Int64Counter
}

// NoopInstruments returns instruments that discard everything, for use until
// a domain's InitMetrics runs.
func NoopInstruments() Instruments {
	return Instruments{
		Ops:      noop.Int64Counter{},
		Duration: noop.Float64Histogram{},
		Errors:   noop.Int64Counter{},
	}
}

// NewInstruments creates the standard instrument set on the global meter
// provider, named "<domain>.operations.total", "<domain>.operation.duration"
// and "<domain>.errors.total".
func NewInstruments(domain string) (Instruments, error) {
	meter := otel.Meter(domain)

	var (
		in  Instruments
		err error
	)

	in.Ops, err = meter.Int64Counter(domain+".operations.total",
		metric.WithDescription(fmt.Sprintf("Total number of %s operations performed", domain)),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return in, fmt.Errorf("creating %s ops counter: %w", domain, err)
	}

	in.Duration, err = meter.Float64Histogram(domain+".operation.duration",
		metric.WithDescription(fmt.Sprintf("Duration of %s operations in milliseconds", domain)),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return in, fmt.Errorf("creating %s ops histogram: %w", domain, err)
	}

	in.Errors, err = meter.Int64Counter(domain+".errors.total",
		metric.WithDescription(fmt.Sprintf("Total number of %s errors", domain)),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return in, fmt.Errorf("creating %s error counter: %w", domain, err)
	}

	return in, nil
}
