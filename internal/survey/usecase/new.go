package usecase

import (
	"polaris-api/internal/survey"
	"polaris-api/internal/survey/repository"
	pkgLog "polaris-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) survey.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
