package postgres

import (
	"testing"

	"polaris-api/internal/sqlboiler"
	"polaris-api/internal/survey/repository"
	"polaris-api/pkg/log"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		opts     repository.ListOptions
		contains []string
		absent   []string
		args     []interface{}
	}{
		{
			name:     "all statuses and types",
			opts:     repository.ListOptions{Filter: repository.Filter{Status: "all", Type: "all"}, Limit: 50},
			contains: []string{"ORDER BY created_at DESC", "LIMIT 50"},
			absent:   []string{"WHERE"},
		},
		{
			name:     "status and type",
			opts:     repository.ListOptions{Filter: repository.Filter{Status: "active", Type: "customer"}, Limit: 10},
			contains: []string{`"surveys"."status" = $1`, `"surveys"."type" = $2`},
			args:     []interface{}{"active", "customer"},
		},
		{
			name:   "unbounded for analytics",
			opts:   repository.ListOptions{},
			absent: []string{"LIMIT", "WHERE"},
		},
	}

	r := New(log.NewNop(), nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := queries.BuildQuery(sqlboiler.Surveys(r.buildListQuery(tc.opts)...).Query)
			for _, s := range tc.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, sql, s)
			}
			if tc.args != nil {
				assert.Equal(t, tc.args, args)
			}
		})
	}
}
