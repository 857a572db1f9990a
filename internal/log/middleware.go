package log

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger returns chi middleware that logs one line per request with
// method, path, status, size and duration. 4xx logs at warn, 5xx at error.
func RequestLogger(logger *Logger) func(http.Handler) http.Handler {
	l := logger.WithComponent(logger.Component())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			args := []any{
				FieldMethod, r.Method,
				FieldPath, r.URL.Path,
				FieldStatusCode, ww.Status(),
				FieldDuration, time.Since(start).Milliseconds(),
				FieldRequestID, middleware.GetReqID(r.Context()),
			}
			switch {
			case ww.Status() >= 500:
				l.Error("request completed", args...)
			case ww.Status() >= 400:
				l.Warn("request completed", args...)
			default:
				l.Info("request completed", args...)
			}
		})
	}
}
