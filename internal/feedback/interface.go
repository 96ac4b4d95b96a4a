package feedback

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListCustomer(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Feedback, error)
	ListEmployee(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Feedback, error)
	CreateCustomer(ctx context.Context, sc model.Scope, ip CreateCustomerInput) (model.Feedback, error)
	CreateEmployee(ctx context.Context, sc model.Scope, ip CreateEmployeeInput) (model.Feedback, error)
	SentimentTrends(ctx context.Context, sc model.Scope, ip TrendsInput) ([]TrendPoint, error)
	CategoryBreakdown(ctx context.Context, sc model.Scope, kind model.FeedbackKind) ([]CategoryStat, error)
	DepartmentAnalytics(ctx context.Context, sc model.Scope) ([]DepartmentStat, error)
	SentimentSummary(ctx context.Context, sc model.Scope, ip SummaryInput) (Summary, error)
}
