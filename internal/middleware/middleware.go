package api_middleware

import (
	"net/http"
	"time"

	"github.com/rmachado/logkeep/internal/commons"
	"github.com/rmachado/logkeep/internal/logger"
	"golang.org/x/time/rate"
)

// Limiter is process-wide: the server handles one tenant, so there is no
// per-client bookkeeping. Exported for tests.
var Limiter = rate.NewLimiter(rate.Every(time.Second), commons.AllowedRPS)

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !Limiter.Allow() {
			logger.Errorf("rate limit exceeded for IP: %s", r.RemoteAddr)
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
