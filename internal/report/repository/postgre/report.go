package postgres

import (
	"context"

	"polaris-api/internal/model"
	"polaris-api/internal/report/repository"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/paginator"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Report, error) {
	rows, err := sqlboiler.Reports(r.buildListQuery(opts)...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.report.repository.postgres.List.All: %v", err)
		return nil, errors.Wrap(err, "list reports")
	}

	return toReports(rows), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Report, paginator.Paginator, error) {
	opts.PagQuery.Adjust()
	pageMods, countMods := r.buildGetQuery(opts)

	rows, err := sqlboiler.Reports(pageMods...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.report.repository.postgres.Get.All: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "get reports")
	}

	total, err := sqlboiler.Reports(countMods...).Count(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.report.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "count reports")
	}

	return toReports(rows), paginator.Paginator{
		Total:       total,
		Count:       int64(len(rows)),
		PerPage:     opts.PagQuery.Limit,
		CurrentPage: opts.PagQuery.Page,
	}, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Report, error) {
	row := opts.Report.ToDBReport()
	if err := row.Insert(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.report.repository.postgres.Create.Insert: %v", err)
		return model.Report{}, errors.Wrap(err, "create report")
	}
	return model.NewReportFromDB(row), nil
}

func toReports(rows []*sqlboiler.Report) []model.Report {
	res := make([]model.Report, len(rows))
	for i, row := range rows {
		res[i] = model.NewReportFromDB(row)
	}
	return res
}
