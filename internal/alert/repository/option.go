package repository

import (
	"time"

	"polaris-api/internal/model"
)

type Filter struct {
	Type     string
	Status   string
	Priority string
	Since    time.Time
}

// ListOptions selects alerts newest first. A zero Limit reads every match.
type ListOptions struct {
	Filter Filter
	Limit  int
}

type CreateOptions struct {
	Alert model.Alert
}

type UpdateStatusOptions struct {
	ID     string
	Status model.AlertStatus
}
