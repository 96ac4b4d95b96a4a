package postgres

import (
	"context"
	"database/sql"

	"polaris-api/internal/alert/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/sqlboiler"
	postgresPkg "polaris-api/pkg/postgre"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Alert, error) {
	rows, err := sqlboiler.Alerts(r.buildListQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.List.All: %v", err)
		return nil, errors.Wrap(err, "list alerts")
	}

	res := make([]model.Alert, len(rows))
	for i, a := range rows {
		res[i] = model.NewAlertFromDB(a)
	}

	return res, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	if !postgresPkg.IsValidUUID(id) {
		return model.Alert{}, repository.ErrNotFound
	}

	a, err := sqlboiler.Alerts(sqlboiler.AlertWhere.ID.EQ(id)).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Detail.One: %v", err)
		return model.Alert{}, errors.Wrap(err, "detail alert")
	}

	return model.NewAlertFromDB(a), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Alert, error) {
	dbAlert := opts.Alert.ToDBAlert()
	if err := dbAlert.Insert(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.Insert: %v", err)
		return model.Alert{}, errors.Wrap(err, "create alert")
	}

	return model.NewAlertFromDB(dbAlert), nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.Alert, error) {
	if !postgresPkg.IsValidUUID(opts.ID) {
		return model.Alert{}, repository.ErrNotFound
	}

	a, err := sqlboiler.UpdateAlert(ctx, r.db, opts.ID, r.buildStatusColumns(opts))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.UpdateStatus.UpdateAlert: %v", err)
		return model.Alert{}, errors.Wrap(err, "update alert status")
	}

	return model.NewAlertFromDB(a), nil
}
