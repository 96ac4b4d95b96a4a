package postgres

import (
	"context"
	"testing"
	"time"

	"polaris-api/internal/sqlboiler"
	"polaris-api/internal/user/repository"
	"polaris-api/pkg/log"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	r := New(log.NewNop(), nil)

	sql, args := queries.BuildQuery(sqlboiler.Users(r.buildListQuery(repository.ListOptions{
		Filter: repository.Filter{Department: "Sales"},
		Limit:  25,
	})...).Query)
	assert.Contains(t, sql, `"users"."department" = $1`)
	assert.Contains(t, sql, "LIMIT 25")
	assert.Equal(t, []interface{}{null.StringFrom("Sales")}, args)

	sql, _ = queries.BuildQuery(sqlboiler.Users(r.buildListQuery(repository.ListOptions{
		Filter: repository.Filter{Department: "all"},
	})...).Query)
	assert.NotContains(t, sql, "WHERE")
}

func TestBuildDetailQueryRejectsBadID(t *testing.T) {
	_, err := New(log.NewNop(), nil).buildDetailQuery(context.Background(), "not-a-uuid")
	assert.Equal(t, repository.ErrNotFound, err)
}

func TestBuildUpdateColumns(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	r := New(log.NewNop(), nil)
	r.clock = func() time.Time { return now }

	first, company := "Ana", ""
	cols := r.buildUpdateColumns(repository.UpdateOptions{ID: "u1", FirstName: &first, Company: &company})

	assert.Equal(t, sqlboiler.M{
		"first_name": "Ana",
		"company":    null.NewString("", false),
		"updated_at": now,
	}, cols)
}
