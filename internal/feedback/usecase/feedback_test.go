package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"polaris-api/internal/feedback"
	"polaris-api/internal/feedback/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/realtime"
	"polaris-api/pkg/filter"
	"polaris-api/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rows     []model.Feedback
	err      error
	listOpts []repository.ListOptions
}

func (f *fakeRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Feedback, error) {
	f.listOpts = append(f.listOpts, opts)
	return f.rows, f.err
}

func (f *fakeRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Feedback, error) {
	if f.err != nil {
		return model.Feedback{}, f.err
	}
	created := opts.Feedback
	created.ID = "f-new"
	created.CreatedAt = now
	created.UpdatedAt = now
	return created, nil
}

type fakePublisher struct {
	changes []realtime.Change
}

func (p *fakePublisher) Publish(ctx context.Context, c realtime.Change) error {
	p.changes = append(p.changes, c)
	return nil
}

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestUsecase(repo *fakeRepo, pub realtime.Publisher) *usecase {
	return &usecase{l: log.NewNop(), repo: repo, pub: pub, clock: func() time.Time { return now }}
}

func fb(category, dept string, s model.Sentiment, score float64, at time.Time) model.Feedback {
	return model.Feedback{Category: category, Department: dept, Sentiment: s, Score: score, CreatedAt: at}
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name      string
		kind      model.FeedbackKind
		ip        feedback.ListInput
		wantSince time.Time
		wantDept  string
		wantErr   error
	}{
		{name: "all window", kind: model.FeedbackKindCustomer, ip: feedback.ListInput{Filter: feedback.Filter{TimeRange: "all"}}},
		{name: "7d window", kind: model.FeedbackKindCustomer, ip: feedback.ListInput{Filter: feedback.Filter{TimeRange: "7d"}}, wantSince: now.AddDate(0, 0, -7)},
		{name: "bare day count", kind: model.FeedbackKindCustomer, ip: feedback.ListInput{Filter: feedback.Filter{TimeRange: "30"}}, wantSince: now.AddDate(0, 0, -30)},
		{name: "customer ignores department", kind: model.FeedbackKindCustomer, ip: feedback.ListInput{Filter: feedback.Filter{Department: "Sales"}}},
		{name: "employee keeps department", kind: model.FeedbackKindEmployee, ip: feedback.ListInput{Filter: feedback.Filter{Department: "Sales"}}, wantDept: "Sales"},
		{name: "bad window", kind: model.FeedbackKindCustomer, ip: feedback.ListInput{Filter: feedback.Filter{TimeRange: "yesterday"}}, wantErr: filter.ErrInvalidTimeWindow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUsecase(repo, &fakePublisher{})

			var err error
			if tc.kind == model.FeedbackKindEmployee {
				_, err = uc.ListEmployee(context.Background(), model.Scope{}, tc.ip)
			} else {
				_, err = uc.ListCustomer(context.Background(), model.Scope{}, tc.ip)
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.listOpts)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.listOpts, 1)

			opts := repo.listOpts[0]
			assert.Equal(t, tc.kind, opts.Kind)
			assert.Equal(t, tc.wantSince, opts.Filter.Since)
			assert.Equal(t, tc.wantDept, opts.Filter.Department)
			assert.Equal(t, filter.DefaultLimit, opts.Limit)
		})
	}
}

func TestCreateCustomerPublishesRow(t *testing.T) {
	pub := &fakePublisher{}
	uc := newTestUsecase(&fakeRepo{}, pub)

	_, err := uc.CreateCustomer(context.Background(), model.Scope{}, feedback.CreateCustomerInput{Customer: "Acme"})
	assert.Equal(t, feedback.ErrInvalidInput, err)

	_, err = uc.CreateCustomer(context.Background(), model.Scope{}, feedback.CreateCustomerInput{
		Customer: "Acme", Feedback: "slow", Category: "support", Sentiment: "furious",
	})
	assert.Equal(t, feedback.ErrInvalidSentiment, err)

	created, err := uc.CreateCustomer(context.Background(), model.Scope{}, feedback.CreateCustomerInput{
		Customer: "Acme", Feedback: "slow support", Category: "support", Sentiment: model.SentimentNegative, Score: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "f-new", created.ID)

	require.Len(t, pub.changes, 1)
	c := pub.changes[0]
	assert.Equal(t, "voc_feedback", c.Table)
	assert.Equal(t, realtime.EventInsert, c.Type)

	var row map[string]any
	require.NoError(t, json.Unmarshal(c.Record, &row))
	assert.Equal(t, "Acme", row["customer"])
	assert.Equal(t, "negative", row["sentiment"])
}

func TestCreateEmployeePublishesToVoE(t *testing.T) {
	pub := &fakePublisher{}
	_, err := newTestUsecase(&fakeRepo{}, pub).CreateEmployee(context.Background(), model.Scope{}, feedback.CreateEmployeeInput{
		Employee: "e-7", Department: "Ops", Feedback: "great team", Category: "culture", EngagementScore: 8,
	})
	require.NoError(t, err)
	require.Len(t, pub.changes, 1)
	assert.Equal(t, "voe_feedback", pub.changes[0].Table)
}

func TestCategoryBreakdown(t *testing.T) {
	rows := []model.Feedback{
		fb("billing", "", model.SentimentPositive, 0, now),
		fb("billing", "", model.SentimentPositive, 0, now),
		fb("billing", "", model.SentimentNegative, 0, now),
		fb("support", "", model.SentimentNegative, 0, now),
		fb("support", "", model.SentimentUnknown, 0, now),
		fb("ux", "", model.SentimentNeutral, 0, now),
	}
	repo := &fakeRepo{rows: rows}
	uc := newTestUsecase(repo, &fakePublisher{})

	first, err := uc.CategoryBreakdown(context.Background(), model.Scope{}, model.FeedbackKindCustomer)
	require.NoError(t, err)
	second, err := uc.CategoryBreakdown(context.Background(), model.Scope{}, model.FeedbackKindCustomer)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, feedback.CategoryBreakdownRows, repo.listOpts[0].Limit)
	require.Len(t, first, 3)

	assert.Equal(t, "billing", first[0].Category)
	assert.Equal(t, 3, first[0].Total)
	assert.Equal(t, model.SentimentPositive, first[0].Sentiment)

	assert.Equal(t, "support", first[1].Category)
	assert.Equal(t, 1, first[1].Unknown)
	assert.Equal(t, model.SentimentNegative, first[1].Sentiment)

	assert.Equal(t, model.SentimentNeutral, first[2].Sentiment)

	_, err = uc.CategoryBreakdown(context.Background(), model.Scope{}, "partner")
	assert.Equal(t, feedback.ErrInvalidKind, err)
}

func TestDepartmentAnalytics(t *testing.T) {
	repo := &fakeRepo{rows: []model.Feedback{
		fb("", "Ops", model.SentimentPositive, 8, now),
		fb("", "Ops", model.SentimentNegative, 4, now),
		fb("", "Ops", model.SentimentUnknown, 6, now),
		fb("", "Ops", model.SentimentPositive, 6, now),
		fb("", "Eng", model.SentimentNeutral, 7, now),
	}}

	stats, err := newTestUsecase(repo, &fakePublisher{}).DepartmentAnalytics(context.Background(), model.Scope{})
	require.NoError(t, err)

	assert.Equal(t, model.FeedbackKindEmployee, repo.listOpts[0].Kind)
	assert.Equal(t, feedback.DepartmentAnalyticsRows, repo.listOpts[0].Limit)
	assert.Equal(t, []feedback.DepartmentStat{
		{Department: "Eng", TotalFeedback: 1, AvgEngagement: 7},
		{Department: "Ops", TotalFeedback: 4, AvgEngagement: 6, PositiveRatio: 50, NegativeRatio: 25},
	}, stats)
}

func TestSentimentTrends(t *testing.T) {
	repo := &fakeRepo{rows: []model.Feedback{
		fb("", "", model.SentimentPositive, 0, now),
		fb("", "", model.SentimentUnknown, 0, now),
		fb("", "", model.SentimentNegative, 0, now.AddDate(0, 0, -1)),
	}}

	points, err := newTestUsecase(repo, &fakePublisher{}).SentimentTrends(context.Background(), model.Scope{}, feedback.TrendsInput{Kind: model.FeedbackKindCustomer})
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, 0, -30), repo.listOpts[0].Filter.Since)
	assert.Equal(t, []feedback.TrendPoint{
		{Date: "2026-10-14", SentimentCounts: model.SentimentCounts{Negative: 1}},
		{Date: "2026-10-15", SentimentCounts: model.SentimentCounts{Positive: 1, Unknown: 1}},
	}, points)
}

func TestSentimentSummary(t *testing.T) {
	repo := &fakeRepo{rows: []model.Feedback{
		fb("", "", model.SentimentPositive, 9, now),
		fb("", "", model.SentimentNeutral, 6, now),
		fb("", "", model.SentimentUnknown, 3, now),
	}}

	s, err := newTestUsecase(repo, &fakePublisher{}).SentimentSummary(context.Background(), model.Scope{}, feedback.SummaryInput{Kind: model.FeedbackKindCustomer, Limit: 100})
	require.NoError(t, err)

	assert.Equal(t, 100, repo.listOpts[0].Limit)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Unknown)
	assert.Equal(t, 6.0, s.AverageScore)

	empty, err := newTestUsecase(&fakeRepo{}, &fakePublisher{}).SentimentSummary(context.Background(), model.Scope{}, feedback.SummaryInput{Kind: model.FeedbackKindEmployee})
	require.NoError(t, err)
	assert.Equal(t, feedback.Summary{}, empty)
}
