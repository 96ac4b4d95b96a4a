package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Ping checks if the connection is alive and returns latency
func (r *redisImpl) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := r.client.Ping(ctx).Err(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

func (r *redisImpl) Publish(ctx context.Context, channel string, payload []byte) error {
	return r.client.Publish(ctx, channel, payload).Err()
}

func (r *redisImpl) PubSub(ctx context.Context) *goredis.PubSub {
	return r.client.Subscribe(ctx)
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
