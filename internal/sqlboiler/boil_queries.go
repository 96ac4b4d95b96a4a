// Package sqlboiler maps the dashboard tables to row structs and exposes
// sqlboiler query builders over them.
package sqlboiler

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"
)

var dialect = drivers.Dialect{
	LQ: 0x22,
	RQ: 0x22,

	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

// M is a column to value map used by partial updates.
type M map[string]interface{}

// NewQuery initializes a new Query using the passed in QueryMods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)
	return q
}

// TableQuery is a select over one table binding into rows of type T.
type TableQuery[T any] struct {
	*queries.Query
	table string
}

func newTableQuery[T any](table string, mods []qm.QueryMod) TableQuery[T] {
	mods = append(mods, qm.From(quote(table)))
	q := NewQuery(mods...)
	if len(queries.GetSelect(q)) == 0 {
		queries.SetSelect(q, []string{quote(table) + ".*"})
	}
	return TableQuery[T]{Query: q, table: table}
}

// One returns a single row. sql.ErrNoRows is returned unwrapped.
func (q TableQuery[T]) One(ctx context.Context, exec boil.ContextExecutor) (*T, error) {
	o := new(T)
	queries.SetLimit(q.Query, 1)

	if err := q.Bind(ctx, exec, o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrapf(err, "sqlboiler: failed to execute a one query for %s", q.table)
	}
	return o, nil
}

func (q TableQuery[T]) All(ctx context.Context, exec boil.ContextExecutor) ([]*T, error) {
	var o []*T
	if err := q.Bind(ctx, exec, &o); err != nil {
		return nil, errors.Wrapf(err, "sqlboiler: failed to assign all query results to %s slice", q.table)
	}
	return o, nil
}

func (q TableQuery[T]) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	if err := q.Query.QueryRowContext(ctx, exec).Scan(&count); err != nil {
		return 0, errors.Wrapf(err, "sqlboiler: failed to count %s rows", q.table)
	}
	return count, nil
}

func quote(ident string) string {
	return strmangle.IdentQuote(dialect.LQ, dialect.RQ, ident)
}

// insertReturning inserts one row and binds the stored row, defaults
// included, into dst.
func insertReturning(ctx context.Context, exec boil.ContextExecutor, table string, cols M, dst interface{}) error {
	names, vals := cols.sorted()
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		quote(table),
		strings.Join(strmangle.IdentQuoteSlice(dialect.LQ, dialect.RQ, names), ","),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(names), 1, 1),
	)

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, vals)
	}

	if err := queries.Raw(query, vals...).Bind(ctx, exec, dst); err != nil {
		return errors.Wrapf(err, "sqlboiler: unable to insert into %s", table)
	}
	return nil
}

// updateReturning applies cols to the row with the given id and binds the
// updated row into dst. sql.ErrNoRows is returned unwrapped for unknown ids.
func updateReturning(ctx context.Context, exec boil.ContextExecutor, table, id string, cols M, dst interface{}) error {
	if len(cols) == 0 {
		return errors.New("sqlboiler: update called with no columns")
	}

	names, vals := cols.sorted()
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING *",
		quote(table),
		strmangle.SetParamNames("\"", "\"", 1, names),
		strmangle.WhereClause("\"", "\"", len(names)+1, []string{"id"}),
	)
	vals = append(vals, id)

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, vals)
	}

	if err := queries.Raw(query, vals...).Bind(ctx, exec, dst); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return errors.Wrapf(err, "sqlboiler: unable to update %s", table)
	}
	return nil
}

func (m M) sorted() ([]string, []interface{}) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	vals := make([]interface{}, len(names))
	for i, name := range names {
		vals[i] = m[name]
	}
	return names, vals
}
