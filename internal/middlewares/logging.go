package middlewares

import (
	"net/http"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// LoggingMiddleware tags the request with an id (the caller's X-Request-ID
// when present) and writes one access log line once the handler returns.
// Server errors are logged at error level, client errors at warn.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		ctx := logger.ContextWithRequestID(r.Context(), reqID)
		rec := newStatusRecorder(w)
		began := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		log := logger.FromContext(ctx)
		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.written,
			"elapsed", time.Since(began),
		}
		switch {
		case rec.status >= http.StatusInternalServerError:
			log.Errorw("request served", fields...)
		case rec.status >= http.StatusBadRequest:
			log.Warnw("request served", fields...)
		default:
			log.Infow("request served", fields...)
		}
	})
}

// statusRecorder remembers the status code and body size sent downstream.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}
