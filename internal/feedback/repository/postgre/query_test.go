package postgres

import (
	"testing"
	"time"

	"polaris-api/internal/feedback/repository"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/log"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
)

func TestBuildCustomerQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop(), clock: time.Now}
	since := time.Date(2026, 10, 8, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter repository.Filter
		want   []string
		absent []string
		args   []interface{}
	}{
		{
			name:   "all sentiment adds no predicate",
			filter: repository.Filter{Sentiment: "all"},
			absent: []string{"WHERE"},
		},
		{
			name:   "positive sentiment",
			filter: repository.Filter{Sentiment: "positive"},
			want:   []string{`"voc_feedback"."sentiment" = $1`},
			args:   []interface{}{"positive"},
		},
		{
			name:   "time window",
			filter: repository.Filter{Since: since, Category: "billing"},
			want:   []string{`"voc_feedback"."category" = $1`, `"voc_feedback"."created_at" >= $2`},
			args:   []interface{}{"billing", since},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := queries.BuildQuery(sqlboiler.VocFeedbacks(r.buildCustomerQuery(repository.ListOptions{Filter: tc.filter, Limit: 50})...).Query)
			for _, s := range tc.want {
				assert.Contains(t, sql, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, sql, s)
			}
			assert.Contains(t, sql, "LIMIT 50")
			if tc.args != nil {
				assert.Equal(t, tc.args, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}

func TestBuildEmployeeQuery(t *testing.T) {
	r := &implRepository{l: log.NewNop(), clock: time.Now}

	sql, args := queries.BuildQuery(sqlboiler.VoeFeedbacks(r.buildEmployeeQuery(repository.ListOptions{
		Filter: repository.Filter{Department: "Ops", Sentiment: "negative"},
	})...).Query)

	assert.Contains(t, sql, `"voe_feedback"."department" = $1`)
	assert.Contains(t, sql, `"voe_feedback"."sentiment" = $2`)
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []interface{}{"Ops", "negative"}, args)
}
