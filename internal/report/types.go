package report

import (
	"time"

	"polaris-api/internal/model"
	"polaris-api/pkg/paginator"
)

const (
	// ExportPageSize is the page size used while walking reports for export.
	ExportPageSize = 100
	// SearchLimit caps a search when the caller gives no limit.
	SearchLimit = 10
)

type Filter struct {
	Category string
	Status   string
	Search   string
	Limit    int
}

type ListInput struct {
	Filter Filter
}

type GetInput struct {
	Filter   Filter
	PagQuery paginator.PaginateQuery
}

type SearchInput struct {
	Query string
	Limit int
}

type CreateInput struct {
	Title       string
	Description string
	Category    model.ReportCategory
	Status      model.ReportStatus
	Author      string
}

func (ip CreateInput) Validate() error {
	switch {
	case ip.Title == "", !ip.Category.IsValid():
		return ErrInvalidInput
	case ip.Status != "" && !ip.Status.IsValid():
		return ErrInvalidStatus
	}
	return nil
}

type CategoryStat struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Analytics struct {
	TotalReports int            `json:"total_reports"`
	Categories   []CategoryStat `json:"category_distribution"`
}

type ExportInput struct {
	Filter Filter
}

type ExportOutput struct {
	URL        string    `json:"url"`
	ObjectName string    `json:"object_name"`
	Rows       int       `json:"rows"`
	ExpiresAt  time.Time `json:"expires_at"`
}
