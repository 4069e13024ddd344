package observability

import (
	"context"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"utility-api/internal/apperrors"
	"utility-api/internal/handlers"
)

// StatusFor maps an operation failure to its HTTP status. Every failure kind
// an operation can raise is a client error.
func StatusFor(err error) int {
	var oe *apperrors.OpError
	if errors.As(err, &oe) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName string, err error, w http.ResponseWriter) {
	code := apperrors.CodeOf(err)
	msg := apperrors.MessageOf(err)
	status := StatusFor(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	span.SetAttributes(attribute.String("error.code", string(code)))

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("code", string(code)),
	))

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.String("code", string(code)),
		zap.Error(err),
		RequestIDField(ctx),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
	} else {
		logger.Warn(msg, fields...)
	}

	handlers.WriteError(w, status, string(code), msg)
}
