package postgres

import (
	"polaris-api/internal/sqlboiler"
	"polaris-api/internal/survey/repository"
	"polaris-api/pkg/filter"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	var mods []qm.QueryMod

	if filter.IsSet(opts.Filter.Status) {
		mods = append(mods, sqlboiler.SurveyWhere.Status.EQ(opts.Filter.Status))
	}
	if filter.IsSet(opts.Filter.Type) {
		mods = append(mods, sqlboiler.SurveyWhere.Type.EQ(opts.Filter.Type))
	}

	mods = append(mods, qm.OrderBy(sqlboiler.SurveyColumns.CreatedAt+" DESC"))
	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}

	return mods
}
