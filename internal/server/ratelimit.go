package server

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"utility-api/internal/apperrors"
	"utility-api/internal/handlers"
	"utility-api/internal/observability"
)

// RateLimitMiddleware rejects requests with 429 once limiter's bucket is
// empty. A single limiter is shared by every caller.
func RateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				observability.RateLimitRejects.Inc()
				w.Header().Set("Retry-After", "1")
				handlers.WriteError(w, http.StatusTooManyRequests,
					string(apperrors.CodeRateLimitExceeded), "Rate limit exceeded")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(limiter.Limit())))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Second).Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}
