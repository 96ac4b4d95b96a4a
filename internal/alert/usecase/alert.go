package usecase

import (
	"context"
	"sort"

	"polaris-api/internal/alert"
	"polaris-api/internal/alert/repository"
	"polaris-api/internal/model"
	"polaris-api/internal/realtime"
	"polaris-api/internal/sqlboiler"
	"polaris-api/pkg/filter"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, ip alert.ListInput) ([]model.Alert, error) {
	alerts, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			Type:     ip.Filter.Type,
			Status:   ip.Filter.Status,
			Priority: ip.Filter.Priority,
		},
		Limit: filter.Limit(ip.Filter.Limit),
	})
	if err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.List: %v", err)
		return nil, err
	}

	return alerts, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	a, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.logger.Errorf(ctx, "internal.alert.usecase.Detail: %v", err)
		return model.Alert{}, err
	}

	return a, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, ip alert.CreateInput) (model.Alert, error) {
	if err := ip.Validate(); err != nil {
		return model.Alert{}, err
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Alert: model.Alert{
			Title:    ip.Title,
			Message:  ip.Message,
			Type:     ip.Type,
			Status:   model.AlertStatusActive,
			Priority: ip.Priority,
			Source:   ip.Source,
		},
	})
	if err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.Create: %v", err)
		return model.Alert{}, err
	}

	uc.publish(ctx, realtime.EventInsert, created, nil)
	return created, nil
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, ip alert.UpdateStatusInput) (model.Alert, error) {
	if !ip.Status.IsValid() {
		return model.Alert{}, alert.ErrInvalidStatus
	}

	updated, err := uc.repo.UpdateStatus(ctx, sc, repository.UpdateStatusOptions{
		ID:     ip.ID,
		Status: ip.Status,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.logger.Errorf(ctx, "internal.alert.usecase.UpdateStatus: %v", err)
		return model.Alert{}, err
	}

	uc.publish(ctx, realtime.EventUpdate, updated, nil)
	return updated, nil
}

func (uc *implUseCase) Trends(ctx context.Context, sc model.Scope, ip alert.TrendsInput) ([]alert.TrendPoint, error) {
	days := ip.Days
	if days <= 0 {
		days = alert.DefaultTrendDays
	}

	alerts, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{Since: uc.clock().AddDate(0, 0, -days)},
	})
	if err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.Trends.List: %v", err)
		return nil, err
	}

	return buildTrends(alerts), nil
}

// buildTrends groups alerts by UTC date, oldest first. Dates without alerts
// are omitted.
func buildTrends(alerts []model.Alert) []alert.TrendPoint {
	byDate := make(map[string]*alert.TrendPoint)
	for _, a := range alerts {
		key := filter.DateKey(a.CreatedAt)
		p, ok := byDate[key]
		if !ok {
			p = &alert.TrendPoint{Date: key}
			byDate[key] = p
		}
		switch a.Type {
		case model.AlertTypeCritical:
			p.Critical++
		case model.AlertTypeWarning:
			p.Warning++
		case model.AlertTypeInfo:
			p.Info++
		}
	}

	points := make([]alert.TrendPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points
}

func (uc *implUseCase) publish(ctx context.Context, event realtime.Event, a model.Alert, old any) {
	if err := realtime.Emit(ctx, uc.pub, sqlboiler.TableNames_Alerts, event, a, old, uc.clock()); err != nil {
		uc.logger.Warnf(ctx, "internal.alert.usecase.publish: %v", err)
	}
}
