package usecase

import (
	"context"

	"polaris-api/internal/kpi"
	"polaris-api/internal/kpi/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/realtime"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/filter"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip kpi.ListInput) ([]model.KPI, error) {
	kpis, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			Department: ip.Filter.Department,
			Status:     ip.Filter.Status,
		},
		Limit: filter.Limit(ip.Filter.Limit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.kpi.usecase.List: %v", err)
		return nil, err
	}

	return kpis, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.KPI, error) {
	k, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.KPI{}, kpi.ErrKPINotFound
		}
		uc.l.Errorf(ctx, "internal.kpi.usecase.Detail: %v", err)
		return model.KPI{}, err
	}

	return k, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip kpi.UpdateInput) (model.KPI, error) {
	if ip.IsEmpty() {
		return model.KPI{}, kpi.ErrEmptyPatch
	}
	if ip.Status != nil && !ip.Status.IsValid() {
		return model.KPI{}, kpi.ErrInvalidStatus
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		ID:     ip.ID,
		Value:  ip.Value,
		Target: ip.Target,
		Change: ip.Change,
		Status: ip.Status,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.KPI{}, kpi.ErrKPINotFound
		}
		uc.l.Errorf(ctx, "internal.kpi.usecase.Update: %v", err)
		return model.KPI{}, err
	}

	uc.publish(ctx, realtime.EventUpdate, updated)
	return updated, nil
}

func (uc *usecase) Trends(ctx context.Context, sc model.Scope, ip kpi.TrendsInput) ([]kpi.TrendPoint, error) {
	window := ip.TimeRange
	if !filter.IsSet(window) {
		window = kpi.DefaultTimeRange
	}
	days, err := filter.Days(window)
	if err != nil {
		return nil, err
	}

	start := filter.StartOfDay(uc.clock()).AddDate(0, 0, -days)
	kpis, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{Since: start},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.kpi.usecase.Trends.List: %v", err)
		return nil, err
	}

	return buildTrends(start, days+1, kpis), nil
}

func (uc *usecase) publish(ctx context.Context, event realtime.Event, k model.KPI) {
	if err := realtime.Emit(ctx, uc.pub, sqlboiler.TableNames_Kpis, event, k, nil, uc.clock()); err != nil {
		uc.l.Warnf(ctx, "internal.kpi.usecase.publish: %v", err)
	}
}
