package model

import (
	"time"

	"polaris-api/internal/sqlboiler"
)

type KPIStatus string

const (
	KPIStatusOnTrack  KPIStatus = "on-track"
	KPIStatusAtRisk   KPIStatus = "at-risk"
	KPIStatusCritical KPIStatus = "critical"
)

func (s KPIStatus) IsValid() bool {
	switch s {
	case KPIStatusOnTrack, KPIStatusAtRisk, KPIStatusCritical:
		return true
	}
	return false
}

// KPI is a tracked metric. Status is stored as reported by its producer and
// is never derived from Value and Target.
type KPI struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Target     float64   `json:"target"`
	Change     float64   `json:"change"`
	Status     KPIStatus `json:"status"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewKPIFromDB(db *sqlboiler.Kpi) KPI {
	return KPI{
		ID:         db.ID,
		Name:       db.Name,
		Value:      db.Value,
		Target:     db.Target,
		Change:     db.Change,
		Status:     KPIStatus(db.Status),
		Department: db.Department.String,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}
}
