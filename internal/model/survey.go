package model

import (
	"time"

	"github.com/aarondl/null/v8"

	"polaris-api/internal/sqlboiler"
)

type SurveyStatus string

const (
	SurveyStatusDraft     SurveyStatus = "draft"
	SurveyStatusActive    SurveyStatus = "active"
	SurveyStatusCompleted SurveyStatus = "completed"
	SurveyStatusArchived  SurveyStatus = "archived"
)

func (s SurveyStatus) IsValid() bool {
	switch s {
	case SurveyStatusDraft, SurveyStatusActive, SurveyStatusCompleted, SurveyStatusArchived:
		return true
	}
	return false
}

type SurveyType string

const (
	SurveyTypeCustomer SurveyType = "customer"
	SurveyTypeEmployee SurveyType = "employee"
	SurveyTypeProduct  SurveyType = "product"
	SurveyTypeService  SurveyType = "service"
)

func (t SurveyType) IsValid() bool {
	switch t {
	case SurveyTypeCustomer, SurveyTypeEmployee, SurveyTypeProduct, SurveyTypeService:
		return true
	}
	return false
}

type Survey struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Status         SurveyStatus `json:"status"`
	Type           SurveyType   `json:"type"`
	Responses      int          `json:"responses"`
	CompletionRate float64      `json:"completion_rate"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func NewSurveyFromDB(db *sqlboiler.Survey) Survey {
	return Survey{
		ID:             db.ID,
		Title:          db.Title,
		Description:    db.Description.String,
		Status:         SurveyStatus(db.Status),
		Type:           SurveyType(db.Type),
		Responses:      db.Responses,
		CompletionRate: db.CompletionRate,
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}
}

func (s Survey) ToDBSurvey() *sqlboiler.Survey {
	return &sqlboiler.Survey{
		ID:             s.ID,
		Title:          s.Title,
		Description:    null.NewString(s.Description, s.Description != ""),
		Status:         string(s.Status),
		Type:           string(s.Type),
		Responses:      s.Responses,
		CompletionRate: s.CompletionRate,
	}
}
