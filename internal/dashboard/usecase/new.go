package usecase

import (
	"polaris-api/internal/alert"
	"polaris-api/internal/dashboard"
	"polaris-api/internal/feedback"
	"polaris-api/internal/kpi"
	pkgLog "polaris-api/pkg/log"
)

type usecase struct {
	l       pkgLog.Logger
	kpiUC   kpi.UseCase
	alertUC alert.UseCase
	feedUC  feedback.UseCase
}

func New(l pkgLog.Logger, kpiUC kpi.UseCase, alertUC alert.UseCase, feedUC feedback.UseCase) dashboard.UseCase {
	return &usecase{
		l:       l,
		kpiUC:   kpiUC,
		alertUC: alertUC,
		feedUC:  feedUC,
	}
}
