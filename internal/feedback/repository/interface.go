package repository

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// List reads the table selected by opts.Kind.
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Feedback, error)
	// Create writes to the table selected by opts.Feedback.Kind.
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Feedback, error)
}
