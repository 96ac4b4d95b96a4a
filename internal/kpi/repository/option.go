package repository

import (
	"time"

	"polaris-api/internal/model"
)

type Filter struct {
	Department string
	Status     string
	// Since bounds created_at from below when non-zero.
	Since time.Time
}

// ListOptions selects KPIs newest first. A zero Limit reads every match.
type ListOptions struct {
	Filter Filter
	Limit  int
}

type UpdateOptions struct {
	ID     string
	Value  *float64
	Target *float64
	Change *float64
	Status *model.KPIStatus
}
