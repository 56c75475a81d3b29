package httpx

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// RecoveryMiddleware turns panics into a 500 envelope instead of a dropped
// connection.
func RecoveryMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic recovered",
						zap.String("request_id", RequestIDFrom(r)),
						zap.Any("error", err),
						zap.ByteString("stack", debug.Stack()),
					)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}
					if !wroteHeader {
						writeError(w, http.StatusInternalServerError, "internal server error")
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
