package http

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps a handler with the given middlewares, outermost first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// contextKey keeps our context values from colliding with other packages'.
type contextKey string

const (
	dryRunKey contextKey = "dryRun"
)

// paramsMiddleware interprets the query parameters shared by every endpoint.
// verbose=true raises the log level for the duration of the request;
// dry_run=true is stashed in the context for handlers with side effects.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String())

		if r.URL.Query().Get("verbose") == "true" {
			level := log.GetLevel()
			log.SetLevel(log.DebugLevel)
			defer log.SetLevel(level)
		}

		isDryRun := r.URL.Query().Get("dry_run") == "true"
		ctx := context.WithValue(r.Context(), dryRunKey, isDryRun)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(dryRunKey).(bool)
	return ok && dryRun
}
