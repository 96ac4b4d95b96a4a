package repository

import "polaris-api/internal/model"

type Filter struct {
	Status string
	Type   string
}

// ListOptions selects surveys newest first. A zero Limit reads every match.
type ListOptions struct {
	Filter Filter
	Limit  int
}

type CreateOptions struct {
	Survey model.Survey
}
