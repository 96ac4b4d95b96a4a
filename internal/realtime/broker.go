package realtime

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"polaris-api/pkg/log"
	"polaris-api/pkg/metrics"
)

type broker struct {
	l         log.Logger
	transport Transport
	prefix    string
	metrics   *metrics.Metrics

	mu     sync.Mutex
	subs   map[string]map[uint64]*Subscription
	nextID uint64
	closed bool

	startOnce sync.Once
	quitOnce  sync.Once
	quit      chan struct{}
	wg        sync.WaitGroup
}

// Subscription is a handle on one Subscribe call.
type Subscription struct {
	id         uint64
	collection string
	event      Event
	cb         Callback
	b          *broker

	// mu is held while cb runs, so Unsubscribe waits for an in-flight call.
	mu     sync.Mutex
	active bool
	once   sync.Once
}

func (s *Subscription) Collection() string { return s.collection }
func (s *Subscription) Event() Event       { return s.event }

// Unsubscribe releases the subscription. It is idempotent and no callback
// starts after it returns. It must not be called from inside the
// subscription's own callback.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()

		s.b.remove(s)
	})
}

func (s *Subscription) deliver(c Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active && s.event.Matches(c.Type) {
		s.cb(c)
	}
}

func (b *broker) channel(collection string) string {
	return b.prefix + collection
}

func (b *broker) Subscribe(ctx context.Context, collection string, event Event, cb Callback) (*Subscription, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if !event.IsValid() {
		return nil, ErrInvalidEvent
	}
	if cb == nil {
		return nil, ErrNilCallback
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	set := b.subs[collection]
	if len(set) == 0 {
		if err := b.transport.Subscribe(ctx, b.channel(collection)); err != nil {
			b.l.Errorf(ctx, "internal.realtime.Subscribe.transport.Subscribe: %v", err)
			return nil, err
		}
		set = make(map[uint64]*Subscription)
		b.subs[collection] = set
		b.metrics.SetChannels(len(b.subs))
	}

	b.nextID++
	sub := &Subscription{
		id:         b.nextID,
		collection: collection,
		event:      event,
		cb:         cb,
		b:          b,
		active:     true,
	}
	set[sub.id] = sub
	b.metrics.SubscriptionAdded()

	return sub, nil
}

func (b *broker) remove(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[s.collection]
	if !ok {
		return
	}
	if _, ok := set[s.id]; !ok {
		return
	}
	delete(set, s.id)
	b.metrics.SubscriptionRemoved()

	if len(set) > 0 {
		return
	}
	delete(b.subs, s.collection)
	b.metrics.SetChannels(len(b.subs))

	if b.closed {
		return
	}
	ctx := context.Background()
	if err := b.transport.Unsubscribe(ctx, b.channel(s.collection)); err != nil {
		b.l.Errorf(ctx, "internal.realtime.Unsubscribe.transport.Unsubscribe: %v", err)
	}
}

func (b *broker) Publish(ctx context.Context, c Change) error {
	if c.Table == "" {
		return ErrEmptyCollection
	}
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := b.transport.Publish(ctx, b.channel(c.Table), payload); err != nil {
		b.l.Errorf(ctx, "internal.realtime.Publish.transport.Publish: %v", err)
		return err
	}
	return nil
}

// Start launches the dispatcher goroutine. Calling it again is a no-op.
func (b *broker) Start() {
	b.startOnce.Do(func() {
		b.wg.Add(1)
		go b.listen()
	})
}

func (b *broker) listen() {
	defer b.wg.Done()

	ctx := context.Background()
	msgs := b.transport.Messages()
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				b.l.Warnf(ctx, "internal.realtime.listen: transport closed")
				return
			}
			b.dispatch(ctx, msg)
		case <-b.quit:
			return
		}
	}
}

func (b *broker) dispatch(ctx context.Context, msg Message) {
	collection, ok := strings.CutPrefix(msg.Channel, b.prefix)
	if !ok || collection == "" {
		return
	}

	var c Change
	if err := json.Unmarshal(msg.Payload, &c); err != nil {
		b.l.Warnf(ctx, "internal.realtime.dispatch.Unmarshal: channel=%s: %v", msg.Channel, err)
		return
	}
	if c.Table == "" {
		c.Table = collection
	}
	b.metrics.EventReceived(collection, string(c.Type))

	for _, s := range b.snapshot(collection) {
		s.deliver(c)
	}
}

// snapshot returns the collection's subscriptions in subscribe order.
func (b *broker) snapshot(collection string) []*Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	set := b.subs[collection]
	out := make([]*Subscription, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Shutdown stops the dispatcher, closes the transport and waits for the
// dispatcher to exit or ctx to end.
func (b *broker) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.quitOnce.Do(func() { close(b.quit) })

	err := b.transport.Close()
	if err != nil {
		b.l.Errorf(ctx, "internal.realtime.Shutdown.transport.Close: %v", err)
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
