package middleware

import (
	"net/http"
	"time"

	"github.com/pandamarket/api/pkg/logger"
)

// Logging emits one structured log line per completed request. Lines for
// responses with a 4xx or 5xx status are logged at error level.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		event := logger.Info(r.Context())
		if rw.statusCode >= 400 {
			event = logger.Error(r.Context())
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Msg("HTTP request completed")
	})
}
