// Package redis carries realtime changes over Redis Pub/Sub.
package redis

import (
	"context"
	"sync"

	"polaris-api/internal/realtime"
	"polaris-api/pkg/log"
	pkgRedis "polaris-api/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

const messageBuffer = 256

type transport struct {
	l      log.Logger
	redis  pkgRedis.IRedis
	pubsub *goredis.PubSub

	out       chan realtime.Message
	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New opens one Pub/Sub connection. Channels are added and removed as the
// broker's reference counts change.
func New(ctx context.Context, l log.Logger, r pkgRedis.IRedis) realtime.Transport {
	t := &transport{
		l:      l,
		redis:  r,
		pubsub: r.PubSub(ctx),
		out:    make(chan realtime.Message, messageBuffer),
		quit:   make(chan struct{}),
	}

	t.wg.Add(1)
	go t.pump()

	return t
}

func (t *transport) pump() {
	defer t.wg.Done()
	defer close(t.out)

	in := t.pubsub.Channel()
	for {
		select {
		case msg, ok := <-in:
			if !ok {
				return
			}
			select {
			case t.out <- realtime.Message{Channel: msg.Channel, Payload: []byte(msg.Payload)}:
			case <-t.quit:
				return
			}
		case <-t.quit:
			return
		}
	}
}

func (t *transport) Subscribe(ctx context.Context, channel string) error {
	return t.pubsub.Subscribe(ctx, channel)
}

func (t *transport) Unsubscribe(ctx context.Context, channel string) error {
	return t.pubsub.Unsubscribe(ctx, channel)
}

func (t *transport) Publish(ctx context.Context, channel string, payload []byte) error {
	return t.redis.Publish(ctx, channel, payload)
}

func (t *transport) Messages() <-chan realtime.Message {
	return t.out
}

func (t *transport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.quit)
		if err = t.pubsub.Close(); err != nil {
			t.l.Errorf(context.Background(), "internal.realtime.delivery.redis.Close: %v", err)
		}
		t.wg.Wait()
	})
	return err
}
