package dashboard

import (
	"polaris-api/internal/feedback"
	"polaris-api/internal/kpi"
	"polaris-api/internal/model"
)

const (
	// ActiveAlertLimit caps the alerts shown on the overview.
	ActiveAlertLimit = 5
	// SummaryRows is how many of the newest feedback rows feed each summary.
	SummaryRows = 100
)

type GetInput struct {
	TimeRange string
}

// Overview is everything the landing view renders in one call.
type Overview struct {
	KPIs            []model.KPI      `json:"kpis"`
	ActiveAlerts    []model.Alert    `json:"active_alerts"`
	CustomerSummary feedback.Summary `json:"customer_summary"`
	EmployeeSummary feedback.Summary `json:"employee_summary"`
	KPITrends       []kpi.TrendPoint `json:"kpi_trends"`
}
