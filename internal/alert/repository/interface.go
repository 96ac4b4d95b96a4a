package repository

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Alert, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Alert, error)
	UpdateStatus(ctx context.Context, sc model.Scope, opts UpdateStatusOptions) (model.Alert, error)
}
