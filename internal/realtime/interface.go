package realtime

import (
	"context"
	"time"

	"polaris-api/pkg/log"
	"polaris-api/pkg/metrics"
)

// DefaultChannelPrefix namespaces bus channels: <prefix><collection>.
const DefaultChannelPrefix = "polaris:changes:"

// Transport is a pub/sub bus connection shared by every subscriber.
type Transport interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
	Publish(ctx context.Context, channel string, payload []byte) error
	// Messages is closed when the transport is closed.
	Messages() <-chan Message
	Close() error
}

// Subscriber hands out change subscriptions on collections.
type Subscriber interface {
	// Subscribe delivers every change on collection matching event to cb,
	// exactly once and in bus order. Release the handle with Unsubscribe.
	Subscribe(ctx context.Context, collection string, event Event, cb Callback) (*Subscription, error)
}

// Publisher emits changes to the bus.
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

type Broker interface {
	Subscriber
	Publisher
	Start()
	Shutdown(ctx context.Context) error
}

type Options struct {
	ChannelPrefix string
	Metrics       *metrics.Metrics
}

func New(l log.Logger, t Transport, opts Options) Broker {
	if opts.ChannelPrefix == "" {
		opts.ChannelPrefix = DefaultChannelPrefix
	}
	return &broker{
		l:         l,
		transport: t,
		prefix:    opts.ChannelPrefix,
		metrics:   opts.Metrics,
		subs:      make(map[string]map[uint64]*Subscription),
		quit:      make(chan struct{}),
	}
}

// NopPublisher drops every change. It is used when database triggers feed
// the bus instead of the application.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Change) error { return nil }

// Emit builds a change for record and publishes it on pub.
func Emit(ctx context.Context, pub Publisher, table string, event Event, record, old any, at time.Time) error {
	c, err := NewChange(table, event, record, old, at)
	if err != nil {
		return err
	}
	return pub.Publish(ctx, c)
}
