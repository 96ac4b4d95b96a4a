package usecase

import (
	"context"

	"polaris-api/internal/feedback"
	"polaris-api/internal/feedback/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/realtime"
	"polaris-api/pkg/filter"
)

func (uc *usecase) ListCustomer(ctx context.Context, sc model.Scope, ip feedback.ListInput) ([]model.Feedback, error) {
	return uc.list(ctx, sc, model.FeedbackKindCustomer, ip)
}

func (uc *usecase) ListEmployee(ctx context.Context, sc model.Scope, ip feedback.ListInput) ([]model.Feedback, error) {
	return uc.list(ctx, sc, model.FeedbackKindEmployee, ip)
}

func (uc *usecase) list(ctx context.Context, sc model.Scope, kind model.FeedbackKind, ip feedback.ListInput) ([]model.Feedback, error) {
	since, _, err := filter.Since(uc.clock(), ip.Filter.TimeRange)
	if err != nil {
		return nil, err
	}

	opts := repository.ListOptions{
		Kind: kind,
		Filter: repository.Filter{
			Sentiment: ip.Filter.Sentiment,
			Category:  ip.Filter.Category,
			Since:     since,
		},
		Limit: filter.Limit(ip.Filter.Limit),
	}
	if kind == model.FeedbackKindEmployee {
		opts.Filter.Department = ip.Filter.Department
	}

	fbs, err := uc.repo.List(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.feedback.usecase.list.%s: %v", kind, err)
		return nil, err
	}

	return fbs, nil
}

func (uc *usecase) CreateCustomer(ctx context.Context, sc model.Scope, ip feedback.CreateCustomerInput) (model.Feedback, error) {
	if err := ip.Validate(); err != nil {
		return model.Feedback{}, err
	}

	return uc.create(ctx, sc, model.Feedback{
		Kind:      model.FeedbackKindCustomer,
		Subject:   ip.Customer,
		Sentiment: ip.Sentiment,
		Score:     ip.Score,
		Category:  ip.Category,
		Body:      ip.Feedback,
		Source:    ip.Source,
		Impact:    ip.Impact,
	})
}

func (uc *usecase) CreateEmployee(ctx context.Context, sc model.Scope, ip feedback.CreateEmployeeInput) (model.Feedback, error) {
	if err := ip.Validate(); err != nil {
		return model.Feedback{}, err
	}

	return uc.create(ctx, sc, model.Feedback{
		Kind:       model.FeedbackKindEmployee,
		Subject:    ip.Employee,
		Department: ip.Department,
		Sentiment:  ip.Sentiment,
		Score:      ip.EngagementScore,
		Category:   ip.Category,
		Body:       ip.Feedback,
	})
}

func (uc *usecase) create(ctx context.Context, sc model.Scope, f model.Feedback) (model.Feedback, error) {
	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Feedback: f})
	if err != nil {
		uc.l.Errorf(ctx, "internal.feedback.usecase.create.%s: %v", f.Kind, err)
		return model.Feedback{}, err
	}

	if err := realtime.Emit(ctx, uc.pub, created.Kind.Collection(), realtime.EventInsert, record(created), nil, uc.clock()); err != nil {
		uc.l.Warnf(ctx, "internal.feedback.usecase.create.Emit: %v", err)
	}
	return created, nil
}

// record renders f in its table's row shape, the same shape database
// triggers put on the bus.
func record(f model.Feedback) any {
	if f.Kind == model.FeedbackKindEmployee {
		row := f.ToDBEmployee()
		row.CreatedAt, row.UpdatedAt = f.CreatedAt, f.UpdatedAt
		return row
	}
	row := f.ToDBCustomer()
	row.CreatedAt, row.UpdatedAt = f.CreatedAt, f.UpdatedAt
	return row
}

func (uc *usecase) SentimentTrends(ctx context.Context, sc model.Scope, ip feedback.TrendsInput) ([]feedback.TrendPoint, error) {
	if !ip.Kind.IsValid() {
		return nil, feedback.ErrInvalidKind
	}
	window := ip.TimeRange
	if !filter.IsSet(window) {
		window = feedback.DefaultTimeRange
	}
	since, _, err := filter.Since(uc.clock(), window)
	if err != nil {
		return nil, err
	}

	fbs, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Kind:   ip.Kind,
		Filter: repository.Filter{Since: since},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.feedback.usecase.SentimentTrends.List: %v", err)
		return nil, err
	}

	return sentimentTrends(fbs), nil
}

func (uc *usecase) CategoryBreakdown(ctx context.Context, sc model.Scope, kind model.FeedbackKind) ([]feedback.CategoryStat, error) {
	if !kind.IsValid() {
		return nil, feedback.ErrInvalidKind
	}

	fbs, err := uc.repo.List(ctx, sc, repository.ListOptions{Kind: kind, Limit: feedback.CategoryBreakdownRows})
	if err != nil {
		uc.l.Errorf(ctx, "internal.feedback.usecase.CategoryBreakdown.List: %v", err)
		return nil, err
	}

	return categoryBreakdown(fbs), nil
}

func (uc *usecase) DepartmentAnalytics(ctx context.Context, sc model.Scope) ([]feedback.DepartmentStat, error) {
	fbs, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Kind:  model.FeedbackKindEmployee,
		Limit: feedback.DepartmentAnalyticsRows,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.feedback.usecase.DepartmentAnalytics.List: %v", err)
		return nil, err
	}

	return departmentAnalytics(fbs), nil
}

func (uc *usecase) SentimentSummary(ctx context.Context, sc model.Scope, ip feedback.SummaryInput) (feedback.Summary, error) {
	if !ip.Kind.IsValid() {
		return feedback.Summary{}, feedback.ErrInvalidKind
	}

	fbs, err := uc.repo.List(ctx, sc, repository.ListOptions{Kind: ip.Kind, Limit: filter.Limit(ip.Limit)})
	if err != nil {
		uc.l.Errorf(ctx, "internal.feedback.usecase.SentimentSummary.List: %v", err)
		return feedback.Summary{}, err
	}

	return summarize(fbs), nil
}

