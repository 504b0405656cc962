package logging

import (
	"context"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// WithCorrelationID stores the provided correlation identifier inside the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// GetCorrelationID retrieves the correlation identifier from the context, returning
// an empty string when none is present.
func GetCorrelationID(ctx context.Context) string {
	return ports.GetCorrelationID(ctx)
}

// NewCorrelatedContext returns a child of ctx carrying a freshly generated
// correlation identifier, unless ctx already has one.
func NewCorrelatedContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if GetCorrelationID(ctx) != "" {
		return ctx
	}
	return WithCorrelationID(ctx, ports.GenerateCorrelationID())
}
