package repository

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Survey, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Survey, error)
}
