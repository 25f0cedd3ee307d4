// Package pubsub provides a generic publish/subscribe event broker used
// for catalog reload notifications and log fanout.
package pubsub

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a published event.
type EventType string

const (
	// ReloadedEvent signals that a watched catalog was rebuilt.
	ReloadedEvent EventType = "reloaded"
	// ChangedEvent signals that watched catalog files changed on disk.
	ChangedEvent EventType = "changed"
	// LogEvent carries a formatted log entry.
	LogEvent EventType = "log"
)

// Event is a published event with a typed payload. ID is unique per
// publication so consumers can deduplicate across overlapping
// subscriptions.
type Event[T any] struct {
	ID        string
	Type      EventType
	Payload   T
	Timestamp time.Time
}

func newEvent[T any](eventType EventType, payload T) Event[T] {
	return Event[T]{
		ID:        uuid.NewString(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
