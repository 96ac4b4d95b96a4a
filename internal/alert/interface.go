package alert

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Alert, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Alert, error)
	// UpdateStatus moves an alert to status in a single write.
	UpdateStatus(ctx context.Context, sc model.Scope, ip UpdateStatusInput) (model.Alert, error)
	Trends(ctx context.Context, sc model.Scope, ip TrendsInput) ([]TrendPoint, error)
	// NotifyCritical posts a critical alert to the ops webhook. Other
	// alert types are ignored.
	NotifyCritical(ctx context.Context, a model.Alert) error
}
