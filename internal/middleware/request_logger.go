package middleware

import (
	"context"
	"net/http"
	"time"

	"breed-registry/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const loggerKey ctxKey = "logger"

// LoggerFrom devuelve el logger del request (con request_id) o uno Nop.
func LoggerFrom(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok && l != nil {
		return l
	}
	return logger.Nop()
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// RequestLogger deja en el contexto un logger con request_id y, al terminar,
// loguea método, path, status y duración. Va después de chi RequestID.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := log.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(WithLogger(r.Context(), reqLog)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
			}
			switch {
			case status >= 500:
				reqLog.Error("http request", fields)
			case status >= 400:
				reqLog.Warn("http request", fields)
			default:
				reqLog.Info("http request", fields)
			}
		})
	}
}
