package integration

import (
	"context"
	"time"
)

// Event is a best-effort analytics record. Emission must never block or fail
// the request path.
type Event struct {
	Name     string
	ActorID  string
	TargetID string
	Fields   map[string]any
	At       time.Time
}

// AnalyticsPublisher emits marketplace events to an external sink
type AnalyticsPublisher interface {
	// Publish sends one event. Callers treat failures as warnings only.
	Publish(ctx context.Context, event Event) error

	// Close flushes and releases the sink
	Close() error
}
