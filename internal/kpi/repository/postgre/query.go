package postgres

import (
	"context"

	"polaris-api/internal/kpi/repository"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/filter"
	postgresPkg "polaris-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	var mods []qm.QueryMod

	if filter.IsSet(opts.Filter.Department) {
		mods = append(mods, sqlboiler.KpiWhere.Department.EQ(null.StringFrom(opts.Filter.Department)))
	}
	if filter.IsSet(opts.Filter.Status) {
		mods = append(mods, sqlboiler.KpiWhere.Status.EQ(opts.Filter.Status))
	}
	if !opts.Filter.Since.IsZero() {
		mods = append(mods, sqlboiler.KpiWhere.CreatedAt.GTE(opts.Filter.Since))
	}

	mods = append(mods, qm.OrderBy(sqlboiler.KpiColumns.CreatedAt+" DESC"))
	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}

	return mods
}

func (r *implRepository) buildDetailQuery(ctx context.Context, id string) ([]qm.QueryMod, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.kpi.repository.postgres.buildDetailQuery.IsUUID: %v", err)
		return nil, err
	}

	return []qm.QueryMod{
		sqlboiler.KpiWhere.ID.EQ(id),
	}, nil
}

func (r *implRepository) buildUpdateColumns(opts repository.UpdateOptions) sqlboiler.M {
	cols := sqlboiler.M{
		sqlboiler.KpiColumns.UpdatedAt: r.clock().UTC(),
	}
	if opts.Value != nil {
		cols[sqlboiler.KpiColumns.Value] = *opts.Value
	}
	if opts.Target != nil {
		cols[sqlboiler.KpiColumns.Target] = *opts.Target
	}
	if opts.Change != nil {
		cols[sqlboiler.KpiColumns.Change] = *opts.Change
	}
	if opts.Status != nil {
		cols[sqlboiler.KpiColumns.Status] = string(*opts.Status)
	}
	return cols
}
