package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ischool/courseinfo-backend/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisBroker fans changes out through Redis pub/sub so every server
// instance sees writes made on any other.
type RedisBroker struct {
	rdb       *redis.Client
	log       zerolog.Logger
	done      chan struct{}
	closeOnce sync.Once
}

// NewRedisBroker creates a broker on top of an existing client.
// The client stays owned by the caller.
func NewRedisBroker(rdb *redis.Client, log zerolog.Logger) *RedisBroker {
	return &RedisBroker{
		rdb:  rdb,
		log:  log.With().Str("component", "redis_broker").Logger(),
		done: make(chan struct{}),
	}
}

// Publish sends c on its entity's channel.
func (b *RedisBroker) Publish(ctx context.Context, c Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode change: %w", err)
	}
	channel := config.ChannelKey.EntityChanges(string(c.Entity))
	if err := b.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// Subscribe listens on every entity channel.
func (b *RedisBroker) Subscribe(ctx context.Context) (<-chan Change, func()) {
	pubsub := b.rdb.PSubscribe(ctx, config.ChannelKey.AllChanges())
	// Wait for the subscription to be confirmed so no change published
	// right after Subscribe returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		b.log.Warn().Err(err).Msg("Change subscription not confirmed")
	}
	out := make(chan Change, subscriberBuffer)

	var once sync.Once
	cancel := func() {
		once.Do(func() { pubsub.Close() })
	}

	go func() {
		defer close(out)
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case <-b.done:
				cancel()
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var c Change
				if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil {
					b.log.Warn().Err(err).Str("channel", msg.Channel).Msg("Dropping malformed change")
					continue
				}
				select {
				case out <- c:
				default:
				}
			}
		}
	}()

	return out, cancel
}

// Close ends every subscription. The Redis client is closed by its owner.
func (b *RedisBroker) Close() error {
	b.closeOnce.Do(func() { close(b.done) })
	return nil
}
