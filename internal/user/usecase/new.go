package usecase

import (
	"polaris-api/internal/user"
	"polaris-api/internal/user/repository"
	pkgLog "polaris-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
