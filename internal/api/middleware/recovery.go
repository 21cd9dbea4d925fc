package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/aqualog/hydration-api/internal/log"
	"github.com/aqualog/hydration-api/pkg/problem"
)

// Recovery converts a handler panic into a 500 problem response instead of
// letting the connection die with no body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// net/http uses this sentinel to abort the connection.
				panic(rec)
			}
			log.Errorw("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			problem.InternalError("An unexpected error occurred").Write(w)
		}()

		next.ServeHTTP(w, r)
	})
}
