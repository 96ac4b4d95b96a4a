package dashboard

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (Overview, error)
}
