package repository

import (
	"polaris-api/internal/model"
	"polaris-api/pkg/paginator"
)

// Filter narrows reports. Search matches title or description without
// regard to case.
type Filter struct {
	Category string
	Status   string
	Search   string
}

// ListOptions selects reports newest first. A zero Limit reads every match.
type ListOptions struct {
	Filter Filter
	Limit  int
}

type GetOptions struct {
	Filter   Filter
	PagQuery paginator.PaginateQuery
}

type CreateOptions struct {
	Report model.Report
}
