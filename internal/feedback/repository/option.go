package repository

import (
	"time"

	"polaris-api/internal/model"
)

type Filter struct {
	Department string
	Sentiment  string
	Category   string
	Since      time.Time
}

// ListOptions selects feedback newest first. A zero Limit reads every match.
type ListOptions struct {
	Kind   model.FeedbackKind
	Filter Filter
	Limit  int
}

type CreateOptions struct {
	Feedback model.Feedback
}
