package repositories

import (
	"context"
	"time"
)

// Change feed actions and tables.
const (
	FeedActionInsert = "INSERT"
	FeedActionUpdate = "UPDATE"
	FeedActionDelete = "DELETE"

	FeedTableRates       = "rates"
	FeedTableOptionRates = "option_rates"
)

// RateChangeEvent describes one mutation of the rates or option_rates table.
// Subscribers do not consume the payload beyond routing: any event triggers
// a full snapshot refresh.
type RateChangeEvent struct {
	Table      string    `json:"table"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RateChangePublisher emits change events after successful rate writes.
// Publishing is fire-and-forget: the writer does not wait for subscribers.
type RateChangePublisher interface {
	PublishRateChange(ctx context.Context, event RateChangeEvent) error
}

// RateChangeSubscriber registers a handler for rate change events. Subscribe
// returns once the subscription is established; events are delivered on a
// background goroutine until the context is cancelled or Close is called.
type RateChangeSubscriber interface {
	SubscribeRateChanges(ctx context.Context, handler func(RateChangeEvent)) error
}

// RateChangeFeed combines both directions of the change channel.
type RateChangeFeed interface {
	RateChangePublisher
	RateChangeSubscriber

	// Close tears down the subscription and releases the underlying connection.
	Close() error
}
