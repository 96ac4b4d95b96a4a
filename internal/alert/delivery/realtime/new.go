package realtime

import (
	"context"
	"sync"

	"polaris-api/internal/alert"
	"polaris-api/internal/model"
	pkgRealtime "polaris-api/internal/realtime"
	"polaris-api/pkg/log"
)

const queueSize = 64

// Notifier forwards newly raised critical alerts to alert.UseCase.NotifyCritical.
type Notifier interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type notifier struct {
	uc     alert.UseCase
	sub    pkgRealtime.Subscriber
	logger log.Logger

	subscription *pkgRealtime.Subscription
	queue        chan model.Alert
	wg           sync.WaitGroup
	quit         chan struct{}
	once         sync.Once
}

func New(uc alert.UseCase, sub pkgRealtime.Subscriber, logger log.Logger) Notifier {
	return &notifier{
		uc:     uc,
		sub:    sub,
		logger: logger,
		queue:  make(chan model.Alert, queueSize),
		quit:   make(chan struct{}),
	}
}
