package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"phishing-simulator-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const relayChannel = "realtime:notifications"

type relayMessage struct {
	Group string          `json:"group"`
	Frame json.RawMessage `json:"frame"`
}

// RedisRelay fans notifications out through redis pub/sub so every instance can deliver them
type RedisRelay struct {
	client *redis.Client
	hub    *Hub
}

// NewRedisRelay creates a relay delivering into hub
func NewRedisRelay(client *redis.Client, hub *Hub) *RedisRelay {
	return &RedisRelay{client: client, hub: hub}
}

// Publish implements Publisher
func (r *RedisRelay) Publish(ctx context.Context, userID uuid.UUID, data interface{}) error {
	frame, err := json.Marshal(Envelope{Type: "notification", Data: data})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	msg, err := json.Marshal(relayMessage{Group: GroupName(userID), Frame: frame})
	if err != nil {
		return fmt.Errorf("failed to encode relay message: %w", err)
	}
	return r.client.Publish(ctx, relayChannel, msg).Err()
}

// Run subscribes to the relay channel and delivers messages locally until ctx is done
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, relayChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", relayChannel, err)
	}

	log := logger.New().WithField("channel", relayChannel)
	log.Info("realtime relay subscribed")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg relayMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				log.WithError(err).Warn("discarding malformed relay message")
				continue
			}
			r.hub.Deliver(msg.Group, msg.Frame)
		}
	}
}
