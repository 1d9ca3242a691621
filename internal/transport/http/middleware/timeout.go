package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request with a deadline so a stalled store call cannot
// pin a connection forever. Cancellation propagates through r.Context() into
// each pgx call.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
