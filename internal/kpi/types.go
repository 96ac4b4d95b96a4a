package kpi

import "polaris-api/internal/model"

// DefaultTimeRange is used by Trends when no range is requested.
const DefaultTimeRange = "30d"

type Filter struct {
	Department string
	Status     string
	Limit      int
}

type ListInput struct {
	Filter Filter
}

// UpdateInput patches a KPI. Nil fields are left untouched.
type UpdateInput struct {
	ID     string
	Value  *float64
	Target *float64
	Change *float64
	Status *model.KPIStatus
}

func (ip UpdateInput) IsEmpty() bool {
	return ip.Value == nil && ip.Target == nil && ip.Change == nil && ip.Status == nil
}

type TrendsInput struct {
	TimeRange string
}

// TrendPoint aggregates the KPI rows created on one UTC calendar day.
type TrendPoint struct {
	Date     string  `json:"date"`
	Count    int     `json:"count"`
	AvgValue float64 `json:"avg_value"`
	OnTrack  int     `json:"on_track"`
	AtRisk   int     `json:"at_risk"`
	Critical int     `json:"critical"`
}
