package calculator

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"utility-api/internal/handlers"
	"utility-api/internal/observability"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// binaryHandler serves GET /calculator/<op>?a=..&b=.. for a two-operand
// operation. Unparseable or missing operands reach compute as NaN and are
// rejected there.
func binaryHandler(opName string, compute func(a, b float64) (float64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := handlers.QueryNumber(r, "a")
		b := handlers.QueryNumber(r, "b")

		ctx, span := startSpan(r, opName)
		defer span.End()
		logger := observability.LoggerWithTrace(ctx)

		span.SetAttributes(
			attribute.Float64("calculator.operand.a", a),
			attribute.Float64("calculator.operand.b", b),
		)

		start := time.Now()
		result, err := compute(a, b)
		elapsed := sinceMillis(start)

		if err != nil {
			observability.RecordError(ctx, span, logger, instruments.Errors, opName, err, w)
			return
		}

		recordSuccess(ctx, span, opName, elapsed, result)

		logger.Info("calculator operation completed",
			zap.String("operation", opName),
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Float64("result", result),
			observability.RequestIDField(ctx),
			zap.Float64("duration_ms", elapsed),
		)

		handlers.WriteJSON(w, http.StatusOK, BinaryResponse{
			Operation: opName,
			A:         a,
			B:         b,
			Result:    handlers.Number(result),
		})
	}
}

// unaryHandler serves GET /calculator/<op>/{n}.
func unaryHandler[T float64 | bool](opName string, compute func(n float64) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := handlers.ParseNumber(chi.URLParam(r, "n"))

		ctx, span := startSpan(r, opName)
		defer span.End()
		logger := observability.LoggerWithTrace(ctx)

		span.SetAttributes(attribute.Float64("calculator.operand.n", n))

		start := time.Now()
		result, err := compute(n)
		elapsed := sinceMillis(start)

		if err != nil {
			observability.RecordError(ctx, span, logger, instruments.Errors, opName, err, w)
			return
		}

		var body any = result
		switch v := any(result).(type) {
		case float64:
			recordSuccess(ctx, span, opName, elapsed, v)
			body = handlers.Number(v)
		case bool:
			recordSuccess(ctx, span, opName, elapsed, math.NaN())
			span.SetAttributes(attribute.Bool("calculator.result", v))
		}

		logger.Info("calculator operation completed",
			zap.String("operation", opName),
			zap.Float64("n", n),
			zap.Any("result", result),
			observability.RequestIDField(ctx),
			zap.Float64("duration_ms", elapsed),
		)

		handlers.WriteJSON(w, http.StatusOK, UnaryResponse{
			Operation: opName,
			N:         n,
			Result:    body,
		})
	}
}

func startSpan(r *http.Request, opName string) (context.Context, trace.Span) {
	return tracer.Start(r.Context(), fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", observability.RequestIDFromContext(r.Context())),
		),
	)
}

// recordSuccess bumps the operation metrics and closes out the span. A NaN
// result marks a non-numeric outcome and is kept off the result gauge.
func recordSuccess(ctx context.Context, span trace.Span, opName string, elapsed, result float64) {
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	instruments.Ops.Add(ctx, 1, attrs)
	instruments.Duration.Record(ctx, elapsed, attrs)

	if !math.IsNaN(result) {
		if !math.IsInf(result, 0) {
			resultGauge.Record(ctx, result, attrs)
		}
		span.SetAttributes(attribute.Float64("calculator.result", result))
	}

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")
}

func sinceMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
