package kpi

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.KPI, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.KPI, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.KPI, error)
	Trends(ctx context.Context, sc model.Scope, ip TrendsInput) ([]TrendPoint, error)
}
