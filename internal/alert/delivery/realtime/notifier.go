package realtime

import (
	"context"

	"polaris-api/internal/model"
	pkgRealtime "polaris-api/internal/realtime"
	"polaris-api/internal/sqlboiler"
)

func (n *notifier) Start(ctx context.Context) error {
	s, err := n.sub.Subscribe(ctx, sqlboiler.TableNames_Alerts, pkgRealtime.EventInsert, n.handleChange)
	if err != nil {
		return err
	}
	n.subscription = s

	n.wg.Add(1)
	go n.work()

	n.logger.Info(ctx, "Critical alert notifier started")
	return nil
}

// Shutdown releases the subscription and waits for the worker to drain.
func (n *notifier) Shutdown(ctx context.Context) error {
	n.once.Do(func() {
		if n.subscription != nil {
			n.subscription.Unsubscribe()
		}
		close(n.quit)
	})

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handleChange runs on the bus dispatcher and must not block on the webhook.
func (n *notifier) handleChange(c pkgRealtime.Change) {
	var a model.Alert
	if err := c.Decode(&a); err != nil {
		n.logger.Warnf(context.Background(), "internal.alert.delivery.realtime.handleChange.Decode: %v", err)
		return
	}
	if a.Type != model.AlertTypeCritical {
		return
	}

	select {
	case n.queue <- a:
	default:
		n.logger.Warnf(context.Background(), "internal.alert.delivery.realtime.handleChange: queue full, dropping alert %s", a.ID)
	}
}

func (n *notifier) work() {
	defer n.wg.Done()
	for {
		select {
		case <-n.quit:
			return
		case a := <-n.queue:
			ctx := context.Background()
			if err := n.uc.NotifyCritical(ctx, a); err != nil {
				n.logger.Warnf(ctx, "internal.alert.delivery.realtime.work: %v", err)
			}
		}
	}
}
