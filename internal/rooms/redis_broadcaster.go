package rooms

import (
	"context"
	"encoding/json"
	redisModels "socketBoard/internal/models/redis"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBroadcaster fans room events out through a Redis channel so that
// participants connected to other processes receive them too. Membership
// stays local; every node delivers to its own members.
type RedisBroadcaster struct {
	*Registry
	redis   *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisBroadcaster(registry *Registry, redis *redis.Client, channel string, logger *zap.Logger) *RedisBroadcaster {
	if channel == "" {
		channel = redisModels.REDIS_CHANNEL_WHITEBOARD
	}
	return &RedisBroadcaster{
		Registry: registry,
		redis:    redis,
		channel:  channel,
		logger:   logger.Named("redis_broadcaster"),
	}
}

// Broadcast publishes the event. Local members receive it through the
// subscription like everyone else; if publishing fails they get it directly.
func (rb *RedisBroadcaster) Broadcast(roomID, excluding string, message []byte) {
	published := redisModels.RedisPublishedMessage{
		RoomID:    roomID,
		Excluding: excluding,
		Payload:   json.RawMessage(message),
	}
	jsonMessage, err := json.Marshal(published)
	if err != nil {
		rb.logger.Error("Error marshalling room event", zap.Error(err))
		rb.Registry.Deliver(roomID, excluding, message)
		return
	}
	if err := rb.redis.Publish(context.Background(), rb.channel, jsonMessage).Err(); err != nil {
		rb.logger.Error("Error publishing room event, delivering locally",
			zap.String("room_id", roomID),
			zap.Error(err),
		)
		rb.Registry.Deliver(roomID, excluding, message)
	}
}

// Start subscribes to the channel and consumes it until ctx is cancelled.
// It returns once the subscription is confirmed.
func (rb *RedisBroadcaster) Start(ctx context.Context) error {
	pubsub := rb.redis.Subscribe(ctx, rb.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return err
	}
	rb.logger.Info("Subscribed to room events", zap.String("channel", rb.channel))

	go rb.handleRedisMessages(ctx, pubsub)
	return nil
}

func (rb *RedisBroadcaster) handleRedisMessages(ctx context.Context, pubsub *redis.PubSub) {
	defer func() {
		if err := pubsub.Close(); err != nil {
			rb.logger.Warn("Error closing subscription", zap.Error(err))
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var published redisModels.RedisPublishedMessage
			if err := json.Unmarshal([]byte(msg.Payload), &published); err != nil {
				rb.logger.Warn("Error unmarshalling room event", zap.Error(err))
				continue
			}
			rb.Registry.Deliver(published.RoomID, published.Excluding, published.Payload)
		}
	}
}
