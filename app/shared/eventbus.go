package shared

import "context"

// CancelFunc releases a subscription. Safe to call more than once.
type CancelFunc func()

// EventBus defines the interface for an event bus.
type EventBus interface {
	// Publish publishes an event payload to a topic.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Subscribe registers a handler for a topic and returns a cancellation
	// handle that releases the subscription.
	Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, payload []byte) error) (CancelFunc, error)

	// Close shuts the bus down and releases all subscriptions.
	Close() error
}
