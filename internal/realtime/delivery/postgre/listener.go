// Package postgre forwards PostgreSQL NOTIFY payloads emitted by row
// triggers to the realtime bus.
package postgre

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"polaris-api/internal/realtime"
	"polaris-api/pkg/log"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

var ErrInvalidNotification = errors.New("postgre: notification must carry table, type and record")

type Bridge interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type bridge struct {
	l       log.Logger
	dsn     string
	channel string
	pub     realtime.Publisher
	clock   func() time.Time

	listener *pq.Listener
	quit     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// New returns a bridge that LISTENs on channel and publishes every
// notification through pub.
func New(l log.Logger, dsn, channel string, pub realtime.Publisher) Bridge {
	return &bridge{
		l:       l,
		dsn:     dsn,
		channel: channel,
		pub:     pub,
		clock:   time.Now,
		quit:    make(chan struct{}),
	}
}

func (b *bridge) Start() error {
	ctx := context.Background()
	b.listener = pq.NewListener(b.dsn, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				b.l.Warnf(ctx, "internal.realtime.delivery.postgre.listener: event=%d: %v", ev, err)
			}
		})

	if err := b.listener.Listen(b.channel); err != nil {
		_ = b.listener.Close()
		return err
	}

	b.wg.Add(1)
	go b.listen(ctx)

	b.l.Infof(ctx, "PostgreSQL change bridge listening on %s", b.channel)
	return nil
}

func (b *bridge) listen(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case n, ok := <-b.listener.Notify:
			if !ok {
				return
			}
			// nil after a reconnect; notifications sent meanwhile are lost.
			if n == nil {
				continue
			}
			b.forward(ctx, n.Extra)
		case <-ticker.C:
			if err := b.listener.Ping(); err != nil {
				b.l.Warnf(ctx, "internal.realtime.delivery.postgre.listen.Ping: %v", err)
			}
		case <-b.quit:
			return
		}
	}
}

func (b *bridge) forward(ctx context.Context, payload string) {
	c, err := decodeNotification(payload, b.clock())
	if err != nil {
		b.l.Warnf(ctx, "internal.realtime.delivery.postgre.forward.decode: %v", err)
		return
	}
	if err := b.pub.Publish(ctx, c); err != nil {
		b.l.Errorf(ctx, "internal.realtime.delivery.postgre.forward.Publish: %v", err)
	}
}

func (b *bridge) Shutdown(ctx context.Context) error {
	var err error
	b.once.Do(func() {
		close(b.quit)
		b.wg.Wait()
		if b.listener != nil {
			err = b.listener.Close()
		}
	})
	return err
}

// decodeNotification parses a trigger payload
// {"table","type","record","old_record"[,"commit_timestamp"]}.
func decodeNotification(payload string, now time.Time) (realtime.Change, error) {
	var c realtime.Change
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return realtime.Change{}, err
	}

	c.Table = strings.TrimSpace(c.Table)
	c.Type = realtime.Event(strings.ToUpper(string(c.Type)))
	if c.Table == "" || c.Type == realtime.EventAll || !c.Type.IsValid() || len(c.Record) == 0 {
		return realtime.Change{}, ErrInvalidNotification
	}
	if c.CommitTimestamp.IsZero() {
		c.CommitTimestamp = now.UTC()
	}
	return c, nil
}
