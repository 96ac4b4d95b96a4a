package repository

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.User, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.User, error)
}
