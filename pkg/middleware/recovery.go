package middleware

import (
	"net/http"
	"runtime/debug"

	apperrors "staysearch/pkg/errors"
	httputil "staysearch/pkg/http"
	"staysearch/pkg/logger"
)

// Recovery converts a handler panic into a 500 response in the service's
// error envelope. It sits outermost on both routers so a panicking query can
// never tear down the consumers sharing the process.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				log.Error("Panic recovered",
					"request_id", RequestIDFrom(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"panic", rec,
					"stack", string(debug.Stack()),
				)

				if err := httputil.WriteError(w, apperrors.Internal("Internal server error", nil)); err != nil {
					log.Error("failed to write error response", "handler", "Recovery", "error", err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
