package postgres

import (
	"context"

	"polaris-api/internal/sqlboiler"
	"polaris-api/internal/user/repository"
	"polaris-api/pkg/filter"
	postgresPkg "polaris-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	var mods []qm.QueryMod

	if filter.IsSet(opts.Filter.Department) {
		mods = append(mods, sqlboiler.UserWhere.Department.EQ(null.StringFrom(opts.Filter.Department)))
	}

	mods = append(mods, qm.OrderBy(sqlboiler.UserColumns.CreatedAt+" DESC"))
	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}

	return mods
}

func (r *implRepository) buildDetailQuery(ctx context.Context, id string) ([]qm.QueryMod, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Warnf(ctx, "internal.user.repository.postgres.buildDetailQuery.IsUUID: %v", err)
		return nil, repository.ErrNotFound
	}

	return []qm.QueryMod{
		sqlboiler.UserWhere.ID.EQ(id),
	}, nil
}

// buildUpdateColumns maps the set fields of opts to columns. Empty strings
// clear the nullable department and company.
func (r *implRepository) buildUpdateColumns(opts repository.UpdateOptions) sqlboiler.M {
	cols := sqlboiler.M{}

	if opts.FirstName != nil {
		cols[sqlboiler.UserColumns.FirstName] = *opts.FirstName
	}
	if opts.LastName != nil {
		cols[sqlboiler.UserColumns.LastName] = *opts.LastName
	}
	if opts.Department != nil {
		cols[sqlboiler.UserColumns.Department] = null.NewString(*opts.Department, *opts.Department != "")
	}
	if opts.Company != nil {
		cols[sqlboiler.UserColumns.Company] = null.NewString(*opts.Company, *opts.Company != "")
	}
	cols[sqlboiler.UserColumns.UpdatedAt] = r.clock().UTC()

	return cols
}
