package repository

import (
	"context"

	"polaris-api/internal/model"
	"polaris-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Report, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Report, paginator.Paginator, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Report, error)
}
