package text

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"utility-api/internal/apperrors"
	"utility-api/internal/handlers"
	"utility-api/internal/observability"
)

var tracer = otel.Tracer("text")

// stringHandler serves GET /string/<op>?str=.. for a single-string operation.
func stringHandler(opName string, compute func(string) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run(w, r, opName, func() (Response, error) {
			s, ok := handlers.QueryString(r, "str")
			if !ok {
				return Response{}, apperrors.New(apperrors.CodeInvalidArgument, opName, "Argument must be a string")
			}

			result, err := compute(s)
			return Response{Input: s, Result: result}, err
		})
	}
}

// truncateHandler serves GET /string/truncate?str=..&maxLength=..
func truncateHandler(w http.ResponseWriter, r *http.Request) {
	run(w, r, "truncate", func() (Response, error) {
		s, ok := handlers.QueryString(r, "str")
		if !ok {
			return Response{}, apperrors.New(apperrors.CodeInvalidArgument, "truncate", "First argument must be a string")
		}
		maxLength := handlers.QueryNumber(r, "maxLength")

		result, err := Truncate(s, maxLength)
		ml := handlers.Number(maxLength)
		return Response{Input: s, MaxLength: &ml, Result: result}, err
	})
}

// countCharHandler serves GET /string/countchar?str=..&char=..
func countCharHandler(w http.ResponseWriter, r *http.Request) {
	run(w, r, "countChar", func() (Response, error) {
		s, okS := handlers.QueryString(r, "str")
		c, okC := handlers.QueryString(r, "char")
		if !okS || !okC {
			return Response{}, apperrors.New(apperrors.CodeInvalidArgument, "countChar", "Both arguments must be strings")
		}

		result, err := CountChar(s, c)
		return Response{Input: s, Char: &c, Result: result}, err
	})
}

// run wraps a text operation in its span, metrics and logging, then writes
// the response or the failure.
func run(w http.ResponseWriter, r *http.Request, opName string, compute func() (Response, error)) {
	ctx, span := tracer.Start(r.Context(), "text."+opName,
		trace.WithAttributes(
			attribute.String("text.operation", opName),
			attribute.String("request.id", observability.RequestIDFromContext(r.Context())),
		),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	start := time.Now()
	resp, err := compute()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		observability.RecordError(ctx, span, logger, instruments.Errors, opName, err, w)
		return
	}
	resp.Operation = opName

	recordSuccess(ctx, span, opName, elapsed, len(resp.Input))

	logger.Info("text operation completed",
		zap.String("operation", opName),
		zap.Int("input_length", len(resp.Input)),
		zap.Any("result", resp.Result),
		observability.RequestIDField(ctx),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

func recordSuccess(ctx context.Context, span trace.Span, opName string, elapsed float64, inputLen int) {
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	instruments.Ops.Add(ctx, 1, attrs)
	instruments.Duration.Record(ctx, elapsed, attrs)

	span.SetAttributes(attribute.Int("text.input.length", inputLen))
	span.SetStatus(codes.Ok, "")
}
