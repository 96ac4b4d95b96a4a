package postgres

import (
	"polaris-api/internal/report/repository"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/filter"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildFilterQuery(f repository.Filter) []qm.QueryMod {
	var mods []qm.QueryMod

	if filter.IsSet(f.Category) {
		mods = append(mods, sqlboiler.ReportWhere.Category.EQ(f.Category))
	}
	if filter.IsSet(f.Status) {
		mods = append(mods, sqlboiler.ReportWhere.Status.EQ(f.Status))
	}
	if f.Search != "" {
		p := "%" + f.Search + "%"
		mods = append(mods, qm.Expr(
			sqlboiler.ReportWhere.Title.ILIKE(p),
			qm.Or(`"reports"."description" ILIKE ?`, p),
		))
	}

	return mods
}

func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	mods := r.buildFilterQuery(opts.Filter)
	mods = append(mods, qm.OrderBy(sqlboiler.ReportColumns.CreatedAt+" DESC"))
	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}
	return mods
}

// buildGetQuery returns the page query and the matching count query.
func (r *implRepository) buildGetQuery(opts repository.GetOptions) (page []qm.QueryMod, count []qm.QueryMod) {
	count = r.buildFilterQuery(opts.Filter)

	page = append(page, count...)
	page = append(page,
		qm.OrderBy(sqlboiler.ReportColumns.CreatedAt+" DESC"),
		qm.Limit(int(opts.PagQuery.Limit)),
		qm.Offset(int(opts.PagQuery.Offset())),
	)
	return page, count
}
