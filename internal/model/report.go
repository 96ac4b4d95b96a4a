package model

import (
	"time"

	"github.com/aarondl/null/v8"

	"polaris-api/internal/sqlboiler"
)

type ReportCategory string

const (
	ReportCategoryExecutive   ReportCategory = "executive"
	ReportCategoryOperational ReportCategory = "operational"
	ReportCategoryFinancial   ReportCategory = "financial"
	ReportCategoryCustomer    ReportCategory = "customer"
	ReportCategoryEmployee    ReportCategory = "employee"
)

func (c ReportCategory) IsValid() bool {
	switch c {
	case ReportCategoryExecutive, ReportCategoryOperational, ReportCategoryFinancial,
		ReportCategoryCustomer, ReportCategoryEmployee:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusPublished ReportStatus = "published"
	ReportStatusArchived  ReportStatus = "archived"
)

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusPublished, ReportStatusArchived:
		return true
	}
	return false
}

type Report struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    ReportCategory `json:"category"`
	Status      ReportStatus   `json:"status"`
	Author      string         `json:"author"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewReportFromDB(db *sqlboiler.Report) Report {
	return Report{
		ID:          db.ID,
		Title:       db.Title,
		Description: db.Description.String,
		Category:    ReportCategory(db.Category),
		Status:      ReportStatus(db.Status),
		Author:      db.Author,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}
}

func (r Report) ToDBReport() *sqlboiler.Report {
	return &sqlboiler.Report{
		ID:          r.ID,
		Title:       r.Title,
		Description: null.NewString(r.Description, r.Description != ""),
		Category:    string(r.Category),
		Status:      string(r.Status),
		Author:      r.Author,
	}
}
