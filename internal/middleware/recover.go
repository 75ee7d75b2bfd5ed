package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/pandamarket/api/pkg/httpx"
	"github.com/pandamarket/api/pkg/logger"
)

// Recover turns panics into a generic 500 so internals never reach the
// client, and logs the stack for the operator.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(r.Context()).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("panic recovered")
				httpx.RespondError(w, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
