package http

import (
	"context"
	"net/http"
	"time"

	"newsfeed/internal/handler/http/respond"
)

// Pinger checks that one dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

const readinessTimeout = 5 * time.Second

// Healthz reports process liveness.
func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Readyz reports readiness by pinging each named dependency. Any failure
// yields 503 with the per-dependency status.
func Readyz(deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		statuses := make(map[string]string, len(deps))
		healthy := true
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				statuses[name] = err.Error()
				healthy = false
				continue
			}
			statuses[name] = "ok"
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(w, code, map[string]any{
			"status":       http.StatusText(code),
			"dependencies": statuses,
		})
	}
}
