package postgres

import (
	"context"
	"database/sql"

	"polaris-api/internal/kpi/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/sqlboiler"
	postgresPkg "polaris-api/pkg/postgre"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.KPI, error) {
	rows, err := sqlboiler.Kpis(r.buildListQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.kpi.repository.postgres.List.All: %v", err)
		return nil, errors.Wrap(err, "list kpis")
	}

	res := make([]model.KPI, len(rows))
	for i, k := range rows {
		res[i] = model.NewKPIFromDB(k)
	}

	return res, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.KPI, error) {
	mods, err := r.buildDetailQuery(ctx, id)
	if err != nil {
		return model.KPI{}, repository.ErrNotFound
	}

	k, err := sqlboiler.Kpis(mods...).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.KPI{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.kpi.repository.postgres.Detail.One: %v", err)
		return model.KPI{}, errors.Wrap(err, "detail kpi")
	}

	return model.NewKPIFromDB(k), nil
}

// Update applies the patch in a single UPDATE ... RETURNING.
func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.KPI, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Warnf(ctx, "internal.kpi.repository.postgres.Update.IsUUID: %v", err)
		return model.KPI{}, repository.ErrNotFound
	}

	k, err := sqlboiler.UpdateKpi(ctx, r.db, opts.ID, r.buildUpdateColumns(opts))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.KPI{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.kpi.repository.postgres.Update.UpdateKpi: %v", err)
		return model.KPI{}, errors.Wrap(err, "update kpi")
	}

	return model.NewKPIFromDB(k), nil
}
