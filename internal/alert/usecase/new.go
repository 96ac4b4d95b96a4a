package usecase

import (
	"time"

	"polaris-api/internal/alert"
	"polaris-api/internal/alert/repository"
	"polaris-api/internal/realtime"
	"polaris-api/pkg/discord"
	"polaris-api/pkg/log"
)

type implUseCase struct {
	logger  log.Logger
	repo    repository.Repository
	pub     realtime.Publisher
	discord discord.IDiscord
	clock   func() time.Time
}

// New returns the alert usecase. A nil discord client disables
// NotifyCritical.
func New(logger log.Logger, repo repository.Repository, pub realtime.Publisher, discord discord.IDiscord) alert.UseCase {
	return &implUseCase{
		logger:  logger,
		repo:    repo,
		pub:     pub,
		discord: discord,
		clock:   time.Now,
	}
}
