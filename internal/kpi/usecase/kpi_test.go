package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"polaris-api/internal/kpi"
	"polaris-api/internal/kpi/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/realtime"
	"polaris-api/pkg/filter"
	"polaris-api/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	kpis     []model.KPI
	err      error
	listOpts []repository.ListOptions
	updated  repository.UpdateOptions
}

func (f *fakeRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.KPI, error) {
	f.listOpts = append(f.listOpts, opts)
	return f.kpis, f.err
}

func (f *fakeRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.KPI, error) {
	if f.err != nil {
		return model.KPI{}, f.err
	}
	for _, k := range f.kpis {
		if k.ID == id {
			return k, nil
		}
	}
	return model.KPI{}, repository.ErrNotFound
}

func (f *fakeRepo) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.KPI, error) {
	f.updated = opts
	if f.err != nil {
		return model.KPI{}, f.err
	}
	for _, k := range f.kpis {
		if k.ID == opts.ID {
			if opts.Value != nil {
				k.Value = *opts.Value
			}
			if opts.Status != nil {
				k.Status = *opts.Status
			}
			return k, nil
		}
	}
	return model.KPI{}, repository.ErrNotFound
}

type fakePublisher struct {
	mu      sync.Mutex
	changes []realtime.Change
}

func (p *fakePublisher) Publish(ctx context.Context, c realtime.Change) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, c)
	return nil
}

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func newTestUsecase(repo *fakeRepo, pub realtime.Publisher) *usecase {
	return &usecase{
		l:     log.NewNop(),
		repo:  repo,
		pub:   pub,
		clock: func() time.Time { return now },
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name      string
		ip        kpi.ListInput
		wantLimit int
	}{
		{name: "default limit", ip: kpi.ListInput{}, wantLimit: filter.DefaultLimit},
		{name: "explicit limit", ip: kpi.ListInput{Filter: kpi.Filter{Limit: 10}}, wantLimit: 10},
		{name: "capped limit", ip: kpi.ListInput{Filter: kpi.Filter{Limit: 5000}}, wantLimit: filter.MaxLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			_, err := newTestUsecase(repo, &fakePublisher{}).List(context.Background(), model.Scope{}, tc.ip)
			require.NoError(t, err)
			require.Len(t, repo.listOpts, 1)
			assert.Equal(t, tc.wantLimit, repo.listOpts[0].Limit)
		})
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{}, &fakePublisher{})

	_, err := uc.Detail(context.Background(), model.Scope{}, "missing")
	assert.Equal(t, kpi.ErrKPINotFound, err)
}

func TestUpdate(t *testing.T) {
	value := 92.5
	bad := model.KPIStatus("great")
	critical := model.KPIStatusCritical

	t.Run("publishes the updated row", func(t *testing.T) {
		repo := &fakeRepo{kpis: []model.KPI{{ID: "k1", Value: 80, Status: model.KPIStatusOnTrack}}}
		pub := &fakePublisher{}

		got, err := newTestUsecase(repo, pub).Update(context.Background(), model.Scope{}, kpi.UpdateInput{ID: "k1", Value: &value, Status: &critical})
		require.NoError(t, err)
		assert.Equal(t, 92.5, got.Value)
		assert.Equal(t, model.KPIStatusCritical, got.Status)

		require.Len(t, pub.changes, 1)
		assert.Equal(t, "kpis", pub.changes[0].Table)
		assert.Equal(t, realtime.EventUpdate, pub.changes[0].Type)
	})

	t.Run("status is not derived from value", func(t *testing.T) {
		repo := &fakeRepo{kpis: []model.KPI{{ID: "k1", Value: 10, Target: 100, Status: model.KPIStatusOnTrack}}}

		got, err := newTestUsecase(repo, &fakePublisher{}).Update(context.Background(), model.Scope{}, kpi.UpdateInput{ID: "k1", Value: &value})
		require.NoError(t, err)
		assert.Equal(t, model.KPIStatusOnTrack, got.Status)
		assert.Nil(t, repo.updated.Status)
	})

	t.Run("validation", func(t *testing.T) {
		pub := &fakePublisher{}
		uc := newTestUsecase(&fakeRepo{}, pub)

		_, err := uc.Update(context.Background(), model.Scope{}, kpi.UpdateInput{ID: "k1"})
		assert.Equal(t, kpi.ErrEmptyPatch, err)

		_, err = uc.Update(context.Background(), model.Scope{}, kpi.UpdateInput{ID: "k1", Status: &bad})
		assert.Equal(t, kpi.ErrInvalidStatus, err)
		assert.Empty(t, pub.changes)
	})

	t.Run("unknown id", func(t *testing.T) {
		pub := &fakePublisher{}
		_, err := newTestUsecase(&fakeRepo{}, pub).Update(context.Background(), model.Scope{}, kpi.UpdateInput{ID: "nope", Value: &value})
		assert.Equal(t, kpi.ErrKPINotFound, err)
		assert.Empty(t, pub.changes)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("pq: connection refused")
		_, err := newTestUsecase(&fakeRepo{err: storeErr}, &fakePublisher{}).Update(context.Background(), model.Scope{}, kpi.UpdateInput{ID: "k1", Value: &value})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestTrends(t *testing.T) {
	repo := &fakeRepo{kpis: []model.KPI{
		{ID: "a", Value: 10, Status: model.KPIStatusOnTrack, CreatedAt: now.Add(-time.Hour)},
		{ID: "b", Value: 30, Status: model.KPIStatusCritical, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "c", Value: 50, Status: model.KPIStatusAtRisk, CreatedAt: now.AddDate(0, 0, -3)},
	}}
	uc := newTestUsecase(repo, &fakePublisher{})

	t.Run("30d yields 31 points", func(t *testing.T) {
		points, err := uc.Trends(context.Background(), model.Scope{}, kpi.TrendsInput{TimeRange: "30d"})
		require.NoError(t, err)
		require.Len(t, points, 31)

		assert.Equal(t, "2026-09-15", points[0].Date)
		today := points[30]
		assert.Equal(t, "2026-10-15", today.Date)
		assert.Equal(t, 2, today.Count)
		assert.Equal(t, 20.0, today.AvgValue)
		assert.Equal(t, 1, today.OnTrack)
		assert.Equal(t, 1, today.Critical)

		assert.Equal(t, 1, points[27].AtRisk)
		assert.Equal(t, kpi.TrendPoint{Date: "2026-10-13"}, points[28])

		since := repo.listOpts[len(repo.listOpts)-1].Filter.Since
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), since)
	})

	t.Run("defaults to 30d", func(t *testing.T) {
		points, err := uc.Trends(context.Background(), model.Scope{}, kpi.TrendsInput{})
		require.NoError(t, err)
		assert.Len(t, points, 31)
	})

	t.Run("7d", func(t *testing.T) {
		points, err := uc.Trends(context.Background(), model.Scope{}, kpi.TrendsInput{TimeRange: "7d"})
		require.NoError(t, err)
		assert.Len(t, points, 8)
	})

	t.Run("widest window", func(t *testing.T) {
		points, err := uc.Trends(context.Background(), model.Scope{}, kpi.TrendsInput{TimeRange: "3650d"})
		require.NoError(t, err)
		assert.Len(t, points, filter.MaxDays+1)
	})

	for _, window := range []string{"last-week", "3651d", "1000000000000000000d"} {
		t.Run("invalid range "+window, func(t *testing.T) {
			calls := len(repo.listOpts)
			points, err := uc.Trends(context.Background(), model.Scope{}, kpi.TrendsInput{TimeRange: window})
			assert.ErrorIs(t, err, filter.ErrInvalidTimeWindow)
			assert.Nil(t, points)
			assert.Len(t, repo.listOpts, calls, "no store read for a rejected window")
		})
	}
}
