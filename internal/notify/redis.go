package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisChannelPrefix = "notify:"

// RedisBus carries change notifications over Redis pub/sub so multiple
// portal nodes see each other's mutations. The payload is just the change
// kind; subscribers re-fetch state on delivery, same contract as MemoryBus.
type RedisBus struct {
	Log     *zap.Logger
	DBCache *redis.Client
}

func NewRedisBus(rdb *redis.Client, log *zap.Logger) *RedisBus {
	return &RedisBus{
		Log:     log,
		DBCache: rdb,
	}
}

func (bus *RedisBus) Publish(ctx context.Context, topic string, kind ChangeKind) {
	err := bus.DBCache.Publish(ctx, redisChannelPrefix+topic, string(kind)).Err()
	if err != nil {
		// The mutation is already durable; a lost signal only delays
		// viewers until their next fetch.
		bus.Log.Error("failed to publish change notification",
			zap.String("topic", topic),
			zap.Error(err))
	}
}

func (bus *RedisBus) Subscribe(topic string, handler Handler) *Subscription {
	pubsub := bus.DBCache.Subscribe(context.Background(), redisChannelPrefix+topic)

	go func() {
		for msg := range pubsub.Channel() {
			handler(topic, ChangeKind(msg.Payload))
		}
	}()

	return &Subscription{
		cancel: func() {
			_ = pubsub.Close()
		},
	}
}
