// Package redisfeed carries rate change notifications over a Redis pub/sub
// channel so every running instance refreshes its in-memory rate snapshot
// shortly after an admin edits pricing.
package redisfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
)

// Channel is the pub/sub channel rate change events travel on.
const Channel = "vtc:rate_changes"

// Feed implements the rate change feed over a shared Redis client.
type Feed struct {
	client *redis.Client
	logger *slog.Logger

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

var _ portsrepo.RateChangeFeed = (*Feed)(nil)

// NewFeed wraps an already-connected Redis client.
func NewFeed(client *redis.Client, logger *slog.Logger) *Feed {
	return &Feed{
		client: client,
		logger: logger.With(slog.String("component", "redisfeed")),
	}
}

// PublishRateChange broadcasts one event. Subscribers that are down miss the
// event; they catch up on their next periodic refresh.
func (f *Feed) PublishRateChange(ctx context.Context, event portsrepo.RateChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal rate change event: %w", err)
	}
	if err := f.client.Publish(ctx, Channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish rate change event: %w", err)
	}
	return nil
}

// SubscribeRateChanges starts a background goroutine delivering events to
// handler. It returns after the subscription is confirmed by Redis.
func (f *Feed) SubscribeRateChanges(ctx context.Context, handler func(portsrepo.RateChangeEvent)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pubsub != nil {
		return fmt.Errorf("rate change subscription already active")
	}

	pubsub := f.client.Subscribe(ctx, Channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", Channel, err)
	}

	f.pubsub = pubsub
	f.done = make(chan struct{})

	go f.deliver(pubsub.Channel(), handler)
	return nil
}

func (f *Feed) deliver(messages <-chan *redis.Message, handler func(portsrepo.RateChangeEvent)) {
	defer close(f.done)
	for msg := range messages {
		var event portsrepo.RateChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			f.logger.Warn("dropping malformed rate change event", slog.String("error", err.Error()))
			continue
		}
		handler(event)
	}
}

// Close tears down the subscription and waits for the delivery goroutine.
func (f *Feed) Close() error {
	f.mu.Lock()
	pubsub, done := f.pubsub, f.done
	f.pubsub, f.done = nil, nil
	f.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	err := pubsub.Close()
	<-done
	return err
}
