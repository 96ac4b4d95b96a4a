package usecase

import (
	"context"

	"polaris-api/internal/model"
	"polaris-api/internal/user"
	"polaris-api/internal/user/repository"
	"polaris-api/pkg/filter"
)

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	if sc.IsAnonymous() {
		return user.UserOutput{}, user.ErrUnauthorized
	}

	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip user.ListInput) ([]model.User, error) {
	usrs, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			Department: ip.Filter.Department,
		},
		Limit: filter.Limit(ip.Filter.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return nil, err
	}

	return usrs, nil
}

func (uc *usecase) UpdateProfile(ctx context.Context, sc model.Scope, ip user.UpdateProfileInput) (user.UserOutput, error) {
	if sc.IsAnonymous() {
		return user.UserOutput{}, user.ErrUnauthorized
	}
	if ip.IsEmpty() {
		return user.UserOutput{}, user.ErrEmptyPatch
	}
	if (ip.FirstName != nil && *ip.FirstName == "") || (ip.LastName != nil && *ip.LastName == "") {
		return user.UserOutput{}, user.ErrFieldRequired
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		ID:         sc.UserID,
		FirstName:  ip.FirstName,
		LastName:   ip.LastName,
		Department: ip.Department,
		Company:    ip.Company,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile.Update: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: updated}, nil
}
