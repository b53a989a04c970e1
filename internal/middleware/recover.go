package middleware

import (
	"net/http"
	"runtime/debug"
)

// Recover atrapa panics, los loguea con el logger del request y responde 500.
// Va dentro de RequestLogger para que el log lleve request_id.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			LoggerFrom(r.Context()).Error("panic recovered", map[string]any{
				"panic": rec,
				"stack": string(debug.Stack()),
			})
			http.Error(w, "internal error", http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
