package live

import (
	"context"
	"time"

	"polaris-api/internal/alert"
	"polaris-api/internal/dashboard"
	"polaris-api/internal/feedback"
	"polaris-api/internal/kpi"
	"polaris-api/internal/model"
	"polaris-api/internal/report"
	"polaris-api/internal/sqlboiler"
	"polaris-api/internal/survey"
	"polaris-api/pkg/hook"
	"polaris-api/pkg/metrics"
)

// Services are the usecases the views read through.
type Services struct {
	Dashboard dashboard.UseCase
	KPI       kpi.UseCase
	Alert     alert.UseCase
	Feedback  feedback.UseCase
	Survey    survey.UseCase
	Report    report.UseCase

	Metrics *metrics.Metrics
}

// operation binds view to p. The result is the view's data as the HTTP
// handlers would return it. Every fetch is timed.
func (s Services) operation(sc model.Scope, view View, p Params) (hook.Operation[any], error) {
	op, err := s.bind(sc, view, p)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) (any, error) {
		start := time.Now()
		data, err := op(ctx)
		s.Metrics.ObserveQuery(string(view), "watch", start, err)
		return data, err
	}, nil
}

func (s Services) bind(sc model.Scope, view View, p Params) (hook.Operation[any], error) {
	switch view {
	case ViewDashboard:
		return func(ctx context.Context) (any, error) {
			return s.Dashboard.Get(ctx, sc, dashboard.GetInput{TimeRange: p.TimeRange})
		}, nil
	case ViewKPIs:
		return func(ctx context.Context) (any, error) {
			return s.KPI.List(ctx, sc, kpi.ListInput{Filter: kpi.Filter{
				Department: p.Department,
				Status:     p.Status,
				Limit:      p.Limit,
			}})
		}, nil
	case ViewKPITrends:
		return func(ctx context.Context) (any, error) {
			return s.KPI.Trends(ctx, sc, kpi.TrendsInput{TimeRange: p.TimeRange})
		}, nil
	case ViewVoC:
		return func(ctx context.Context) (any, error) {
			return s.Feedback.ListCustomer(ctx, sc, feedback.ListInput{Filter: feedbackFilter(p)})
		}, nil
	case ViewVoE:
		return func(ctx context.Context) (any, error) {
			return s.Feedback.ListEmployee(ctx, sc, feedback.ListInput{Filter: feedbackFilter(p)})
		}, nil
	case ViewAlerts:
		return func(ctx context.Context) (any, error) {
			return s.Alert.List(ctx, sc, alert.ListInput{Filter: alert.Filter{
				Type:     p.Type,
				Status:   p.Status,
				Priority: p.Priority,
				Limit:    p.Limit,
			}})
		}, nil
	case ViewSurveys:
		return func(ctx context.Context) (any, error) {
			return s.Survey.List(ctx, sc, survey.ListInput{Filter: survey.Filter{
				Status: p.Status,
				Type:   p.Type,
				Limit:  p.Limit,
			}})
		}, nil
	case ViewReports:
		return func(ctx context.Context) (any, error) {
			return s.Report.List(ctx, sc, report.ListInput{Filter: report.Filter{
				Category: p.Category,
				Status:   p.Status,
				Search:   p.Search,
				Limit:    p.Limit,
			}})
		}, nil
	}
	return nil, ErrUnknownView
}

func feedbackFilter(p Params) feedback.Filter {
	return feedback.Filter{
		Department: p.Department,
		Sentiment:  p.Sentiment,
		Category:   p.Category,
		TimeRange:  p.TimeRange,
		Limit:      p.Limit,
	}
}

// collections lists the tables whose changes make view stale.
func collections(view View) []string {
	switch view {
	case ViewDashboard:
		return []string{sqlboiler.TableNames_Kpis, sqlboiler.TableNames_Alerts, sqlboiler.TableNames_VocFeedback, sqlboiler.TableNames_VoeFeedback}
	case ViewKPIs, ViewKPITrends:
		return []string{sqlboiler.TableNames_Kpis}
	case ViewVoC:
		return []string{sqlboiler.TableNames_VocFeedback}
	case ViewVoE:
		return []string{sqlboiler.TableNames_VoeFeedback}
	case ViewAlerts:
		return []string{sqlboiler.TableNames_Alerts}
	case ViewSurveys:
		return []string{sqlboiler.TableNames_Surveys}
	case ViewReports:
		return []string{sqlboiler.TableNames_Reports}
	}
	return nil
}
