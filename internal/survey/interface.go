package survey

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Survey, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Survey, error)
	Analytics(ctx context.Context, sc model.Scope) (Analytics, error)
}
