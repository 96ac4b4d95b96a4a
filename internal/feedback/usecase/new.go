package usecase

import (
	"time"

	"polaris-api/internal/feedback"
	"polaris-api/internal/feedback/repository"
	"polaris-api/internal/realtime"
	pkgLog "polaris-api/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	pub   realtime.Publisher
	clock func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, pub realtime.Publisher) feedback.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		pub:   pub,
		clock: time.Now,
	}
}
