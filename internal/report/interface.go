package report

import (
	"context"

	"polaris-api/internal/model"
	"polaris-api/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Report, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Search(ctx context.Context, sc model.Scope, ip SearchInput) ([]model.Report, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Report, error)
	Analytics(ctx context.Context, sc model.Scope) (Analytics, error)
	Export(ctx context.Context, sc model.Scope, ip ExportInput) (ExportOutput, error)
}

type GetOutput struct {
	Reports   []model.Report
	Paginator paginator.Paginator
}
