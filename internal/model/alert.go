package model

import (
	"time"

	"github.com/aarondl/null/v8"

	"polaris-api/internal/sqlboiler"
)

type AlertType string

const (
	AlertTypeCritical AlertType = "critical"
	AlertTypeWarning  AlertType = "warning"
	AlertTypeInfo     AlertType = "info"
)

func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeCritical, AlertTypeWarning, AlertTypeInfo:
		return true
	}
	return false
}

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusActive, AlertStatusAcknowledged, AlertStatusResolved:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Alert is raised by an external evaluator. This service only moves its
// status and never deletes it.
type Alert struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Type      AlertType   `json:"type"`
	Status    AlertStatus `json:"status"`
	Priority  Priority    `json:"priority"`
	Source    string      `json:"source"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func NewAlertFromDB(db *sqlboiler.Alert) Alert {
	return Alert{
		ID:        db.ID,
		Title:     db.Title,
		Message:   db.Message,
		Type:      AlertType(db.Type),
		Status:    AlertStatus(db.Status),
		Priority:  Priority(db.Priority),
		Source:    db.Source.String,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
}

func (a Alert) ToDBAlert() *sqlboiler.Alert {
	return &sqlboiler.Alert{
		ID:       a.ID,
		Title:    a.Title,
		Message:  a.Message,
		Type:     string(a.Type),
		Status:   string(a.Status),
		Priority: string(a.Priority),
		Source:   null.NewString(a.Source, a.Source != ""),
	}
}
