package usecase

import (
	"time"

	"polaris-api/internal/kpi"
	"polaris-api/internal/model"
	"polaris-api/pkg/filter"
)

// buildTrends returns n daily points starting at start. Rows outside the
// range are ignored and empty days stay zero-valued.
func buildTrends(start time.Time, n int, kpis []model.KPI) []kpi.TrendPoint {
	points := make([]kpi.TrendPoint, n)
	index := make(map[string]int, n)
	sums := make([]float64, n)

	for i := range points {
		points[i].Date = filter.DateKey(start.AddDate(0, 0, i))
		index[points[i].Date] = i
	}

	for _, k := range kpis {
		i, ok := index[filter.DateKey(k.CreatedAt)]
		if !ok {
			continue
		}
		p := &points[i]
		p.Count++
		sums[i] += k.Value
		switch k.Status {
		case model.KPIStatusOnTrack:
			p.OnTrack++
		case model.KPIStatusAtRisk:
			p.AtRisk++
		case model.KPIStatusCritical:
			p.Critical++
		}
	}

	for i := range points {
		if points[i].Count > 0 {
			points[i].AvgValue = sums[i] / float64(points[i].Count)
		}
	}

	return points
}
