package middlewares

import (
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per client IP per second. A non-positive
// App.MaxRequests disables the limiter.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		maxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
