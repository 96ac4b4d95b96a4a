package postgres

import (
	"context"
	"database/sql"

	"polaris-api/internal/model"
	"polaris-api/internal/sqlboiler"
	"polaris-api/internal/user/repository"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	mods, err := r.buildDetailQuery(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	usr, err := sqlboiler.Users(mods...).One(ctx, r.db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.One: %v", err)
		return model.User{}, errors.Wrap(err, "detail user")
	}

	return model.NewUserFromDB(usr), nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.User, error) {
	usrs, err := sqlboiler.Users(r.buildListQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.All: %v", err)
		return nil, errors.Wrap(err, "list users")
	}

	res := make([]model.User, len(usrs))
	for i, u := range usrs {
		res[i] = model.NewUserFromDB(u)
	}

	return res, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.User, error) {
	if _, err := r.buildDetailQuery(ctx, opts.ID); err != nil {
		return model.User{}, err
	}

	usr, err := sqlboiler.UpdateUser(ctx, r.db, opts.ID, r.buildUpdateColumns(opts))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.UpdateUser: %v", err)
		return model.User{}, errors.Wrap(err, "update user")
	}

	return model.NewUserFromDB(usr), nil
}
