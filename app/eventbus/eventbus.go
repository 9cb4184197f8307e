package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"

	"github.com/artfest/gallery-api/app/shared"
)

// natsEventBus implements shared.EventBus on top of NATS via Watermill.
type natsEventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	natsConn   *nc.Conn
	logger     *slog.Logger

	mu      sync.Mutex
	cancels []context.CancelFunc
	closed  bool
}

// NewNATSEventBus creates an EventBus backed by a NATS connection.
func NewNATSEventBus(natsURL string, logger *slog.Logger) (shared.EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		logger.Error("Failed to connect to NATS", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	// Wrap slog so Watermill internals log through the same sink.
	watermillLogger := watermill.NewSlogLogger(logger)
	marshaller := &nats.NATSMarshaler{}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		logger.Error("Failed to create Watermill publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		publisher.Close()
		logger.Error("Failed to create Watermill subscriber", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create Watermill subscriber: %w", err)
	}

	return &natsEventBus{
		publisher:  publisher,
		subscriber: subscriber,
		natsConn:   natsConn,
		logger:     logger,
	}, nil
}

func (eb *natsEventBus) Publish(ctx context.Context, topic string, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	eb.logger.Debug("Publishing message",
		slog.String("topic", topic),
		slog.String("payload", string(payload)),
	)

	if err := eb.publisher.Publish(topic, msg); err != nil {
		eb.logger.Error("Failed to publish message",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

func (eb *natsEventBus) Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, payload []byte) error) (shared.CancelFunc, error) {
	subCtx, cancel := context.WithCancel(ctx)

	messages, err := eb.subscriber.Subscribe(subCtx, topic)
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

func (eb *natsEventBus) Close() error {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return nil
	}
	eb.closed = true

	for _, cancel := range eb.cancels {
		cancel()
	}

	if err := eb.publisher.Close(); err != nil {
		eb.logger.Error("Failed to close publisher", slog.Any("error", err))
	}
	if err := eb.subscriber.Close(); err != nil {
		eb.logger.Error("Failed to close subscriber", slog.Any("error", err))
	}
	eb.natsConn.Close()
	return nil
}
