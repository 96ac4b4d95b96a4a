package postgres

import (
	"polaris-api/internal/alert/repository"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/filter"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	var mods []qm.QueryMod

	if filter.IsSet(opts.Filter.Type) {
		mods = append(mods, sqlboiler.AlertWhere.Type.EQ(opts.Filter.Type))
	}
	if filter.IsSet(opts.Filter.Status) {
		mods = append(mods, sqlboiler.AlertWhere.Status.EQ(opts.Filter.Status))
	}
	if filter.IsSet(opts.Filter.Priority) {
		mods = append(mods, sqlboiler.AlertWhere.Priority.EQ(opts.Filter.Priority))
	}
	if !opts.Filter.Since.IsZero() {
		mods = append(mods, sqlboiler.AlertWhere.CreatedAt.GTE(opts.Filter.Since))
	}

	mods = append(mods, qm.OrderBy(sqlboiler.AlertColumns.CreatedAt+" DESC"))
	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}

	return mods
}

func (r *implRepository) buildStatusColumns(opts repository.UpdateStatusOptions) sqlboiler.M {
	return sqlboiler.M{
		sqlboiler.AlertColumns.Status:    string(opts.Status),
		sqlboiler.AlertColumns.UpdatedAt: r.clock().UTC(),
	}
}
