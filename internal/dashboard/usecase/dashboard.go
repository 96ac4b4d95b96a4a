package usecase

import (
	"context"

	"polaris-api/internal/alert"
	"polaris-api/internal/dashboard"
	"polaris-api/internal/feedback"
	"polaris-api/internal/kpi"
	"polaris-api/internal/model"

	"golang.org/x/sync/errgroup"
)

// Get loads the overview. The reads run in parallel and the first failure
// cancels the rest and fails the call.
func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip dashboard.GetInput) (dashboard.Overview, error) {
	timeRange := ip.TimeRange
	if timeRange == "" {
		timeRange = kpi.DefaultTimeRange
	}

	var res dashboard.Overview
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		kpis, err := uc.kpiUC.List(egCtx, sc, kpi.ListInput{})
		res.KPIs = kpis
		return err
	})
	eg.Go(func() error {
		alerts, err := uc.alertUC.List(egCtx, sc, alert.ListInput{Filter: alert.Filter{
			Status: string(model.AlertStatusActive),
			Limit:  dashboard.ActiveAlertLimit,
		}})
		res.ActiveAlerts = alerts
		return err
	})
	eg.Go(func() error {
		s, err := uc.feedUC.SentimentSummary(egCtx, sc, feedback.SummaryInput{Kind: model.FeedbackKindCustomer, Limit: dashboard.SummaryRows})
		res.CustomerSummary = s
		return err
	})
	eg.Go(func() error {
		s, err := uc.feedUC.SentimentSummary(egCtx, sc, feedback.SummaryInput{Kind: model.FeedbackKindEmployee, Limit: dashboard.SummaryRows})
		res.EmployeeSummary = s
		return err
	})
	eg.Go(func() error {
		points, err := uc.kpiUC.Trends(egCtx, sc, kpi.TrendsInput{TimeRange: timeRange})
		res.KPITrends = points
		return err
	})

	if err := eg.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.dashboard.usecase.Get: %v", err)
		return dashboard.Overview{}, err
	}

	return res, nil
}
