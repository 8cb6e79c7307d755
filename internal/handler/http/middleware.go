// Package http provides the HTTP handlers and middleware for the API
// facade.
package http

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"newsfeed/internal/handler/http/requestid"
	"newsfeed/internal/handler/http/respond"
	"newsfeed/internal/handler/http/responsewriter"
	"newsfeed/internal/observability/metrics"
)

// Middleware is a standard HTTP middleware function.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h in order, so the first listed middleware
// is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Logging returns middleware that logs completed requests with structured
// fields, including the request ID and the OpenTelemetry trace ID for
// log-to-trace correlation.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := responsewriter.Wrap(w)
			next.ServeHTTP(wrapped, r)

			reqID := requestid.FromContext(r.Context())
			span := trace.SpanFromContext(r.Context())
			traceID := span.SpanContext().TraceID().String()
			duration := time.Since(start)

			logger.Info("request completed",
				slog.String("request_id", reqID),
				slog.String("trace_id", traceID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", duration),
			)
		})
	}
}

// Recover returns middleware that catches panics, logs them, and responds
// with a 500 instead of crashing the server.
func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					respond.SafeError(
						w,
						http.StatusInternalServerError,
						fmt.Errorf("internal error"),
					)

					logger.Error("panic recovered",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Metrics returns middleware that records request counts and latencies.
// The path label uses the route pattern when the mux matched one, keeping
// label cardinality bounded.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := responsewriter.Wrap(w)
			next.ServeHTTP(wrapped, r)

			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}
			metrics.HTTPRequestsTotal.WithLabelValues(
				r.Method, path, strconv.Itoa(wrapped.StatusCode())).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(
				r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// LimitRequestBody returns middleware that caps request body size.
func LimitRequestBody(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientTTL is how long an idle client keeps its bucket before the next
// sweep drops it.
const clientTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client-IP token bucket. Buckets for clients
// not seen within clientTTL are swept opportunistically on access, so the
// map stays bounded by the set of recently active clients.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

// NewRateLimiter allows ratePerSec requests per second with the given
// burst per client IP.
func NewRateLimiter(ratePerSec float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*clientLimiter),
		limit:     rate.Limit(ratePerSec),
		burst:     burst,
		ttl:       clientTTL,
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > rl.ttl {
		for addr, cl := range rl.limiters {
			if now.Sub(cl.lastSeen) > rl.ttl {
				delete(rl.limiters, addr)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Middleware rejects clients over their budget with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.limiterFor(ip).Allow() {
			respond.Error(w, http.StatusTooManyRequests,
				fmt.Errorf("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
