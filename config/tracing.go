package config

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("ledger-backend")

// StartSpan opens a span for an aggregation or posting operation. Database
// calls made under the returned context nest via the otelgorm plugin.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}
