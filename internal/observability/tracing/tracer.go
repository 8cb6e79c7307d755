// Package tracing provides OpenTelemetry tracing support for the newsfeed
// services. The tracer is a no-op unless a trace provider is registered by
// the deployment environment.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the newsfeed application.
var tracer = otel.Tracer("newsfeed")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
