package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/artfest/gallery-api/app/shared"
)

// channelEventBus implements shared.EventBus in-process. It is the bus used
// when no NATS URL is configured, and the one unit tests run against.
type channelEventBus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger

	mu      sync.Mutex
	cancels []context.CancelFunc
}

// NewChannelEventBus creates an in-process EventBus.
func NewChannelEventBus(logger *slog.Logger) shared.EventBus {
	return &channelEventBus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger)),
		logger: logger,
	}
}

func (eb *channelEventBus) Publish(ctx context.Context, topic string, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := eb.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

func (eb *channelEventBus) Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, payload []byte) error) (shared.CancelFunc, error) {
	subCtx, cancel := context.WithCancel(ctx)

	messages, err := eb.pubsub.Subscribe(subCtx, topic)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	eb.mu.Lock()
	eb.cancels = append(eb.cancels, cancel)
	eb.mu.Unlock()

	go func() {
		for msg := range messages {
			if err := handler(msg.Context(), msg.Payload); err != nil {
				eb.logger.Error("Handler error", slog.String("topic", topic), slog.Any("error", err))
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

func (eb *channelEventBus) Close() error {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	for _, cancel := range eb.cancels {
		cancel()
	}
	return eb.pubsub.Close()
}
