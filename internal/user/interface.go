package user

import (
	"context"

	"polaris-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope, id string) (UserOutput, error)
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.User, error)
	UpdateProfile(ctx context.Context, sc model.Scope, ip UpdateProfileInput) (UserOutput, error)
}
