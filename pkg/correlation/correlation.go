// Package correlation carries a per-request ID across the HTTP layer, the
// capture engine, and the notification consumers, so one payment attempt can
// be traced through logs end to end.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the inbound and outbound HTTP header for the request ID.
const HeaderName = "X-Correlation-ID"

// KafkaHeaderName carries the same ID on queued notification messages.
const KafkaHeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the request ID, or "" when the context has none.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithID stamps the context with the given request ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID mints a fresh ID for requests that arrive without one.
func NewID() string {
	return uuid.New().String()
}
