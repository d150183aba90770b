package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenplate/sustainabite/pkg/logger"
)

// Broadcaster announces a favorites change to execution contexts outside
// this process. One attempt per change, never retried; the service
// swallows any error, so implementations don't need to be reliable.
type Broadcaster interface {
	Broadcast(count int) error
}

// NoopBroadcaster discards every announcement.
type NoopBroadcaster struct{}

// Broadcast implements Broadcaster.
func (NoopBroadcaster) Broadcast(count int) error { return nil }

// event is the wire payload published on the broadcast channel.
type event struct {
	Count int `json:"count"`
}

// RedisBroadcaster publishes favorites changes on a Redis pub/sub
// channel so that other backend instances can resynchronize by
// re-reading the persisted collection.
type RedisBroadcaster struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger
}

// NewRedisBroadcaster connects to Redis at addr and publishes on the
// given channel.
func NewRedisBroadcaster(addr, channel string) *RedisBroadcaster {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisBroadcaster{
		client:  client,
		channel: channel,
		logger:  logger.New("broadcast"),
	}
}

// Broadcast implements Broadcaster.
func (b *RedisBroadcaster) Broadcast(count int) error {
	data, err := json.Marshal(event{Count: count})
	if err != nil {
		return fmt.Errorf("failed to marshal favorites event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish favorites event: %w", err)
	}
	return nil
}

// Listen subscribes to the broadcast channel and calls fn with the
// announced count for every message until ctx is cancelled. Malformed
// payloads are logged and skipped.
func (b *RedisBroadcaster) Listen(ctx context.Context, fn Callback) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				b.logger.Error("Failed to decode favorites event: %v", err)
				continue
			}
			fn(ev.Count)
		}
	}
}

// Close releases the underlying Redis connection.
func (b *RedisBroadcaster) Close() error {
	return b.client.Close()
}
