package repository

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.KPI, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.KPI, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.KPI, error)
}
