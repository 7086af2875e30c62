package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"iso-evidence-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const eventChannelPrefix = "receipts:events:"

// EventBus implements ports.EventBus over Redis pub/sub, one channel per
// receipt id. Events are transient; subscribers only see what is published
// while they are attached.
type EventBus struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewEventBus creates a Redis-backed status event bus.
func NewEventBus(client *goredis.Client, log zerolog.Logger) *EventBus {
	return &EventBus{client: client, log: log}
}

// Publish sends a status event to the receipt's channel.
func (b *EventBus) Publish(ctx context.Context, receiptID string, event domain.StatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding status event: %w", err)
	}
	if err := b.client.Publish(ctx, eventChannelPrefix+receiptID, payload).Err(); err != nil {
		return fmt.Errorf("redis event publish: %w", err)
	}
	return nil
}

// Subscribe streams the receipt's status events until cancel is called or
// ctx is done. Undecodable payloads are dropped.
func (b *EventBus) Subscribe(ctx context.Context, receiptID string) (<-chan domain.StatusEvent, func(), error) {
	pubsub := b.client.Subscribe(ctx, eventChannelPrefix+receiptID)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("redis event subscribe: %w", err)
	}

	events := make(chan domain.StatusEvent)
	done := make(chan struct{})
	go func() {
		defer close(events)
		src := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-src:
				if !ok {
					return
				}
				var event domain.StatusEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.log.Warn().Err(err).Str("receipt_id", receiptID).
						Msg("dropping undecodable status event")
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			pubsub.Close()
		})
	}
	return events, cancel, nil
}
