package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit returns a per-client-IP limiter for one endpoint. Each
// limited route gets its own instance so quotas are counted per
// (client, endpoint) pair. Rejected requests are answered directly and
// never reach the handler, so they produce no audit record.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	message := fmt.Sprintf("rate limit exceeded: %d requests per %s allowed", requests, window)

	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return ClientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"error": %q}`, message)
		}),
	)
}
