package model

import (
	"time"

	"github.com/aarondl/null/v8"

	"polaris-api/internal/sqlboiler"
)

// FeedbackKind selects the customer (VoC) or employee (VoE) feedback table.
type FeedbackKind string

const (
	FeedbackKindCustomer FeedbackKind = "customer"
	FeedbackKindEmployee FeedbackKind = "employee"
)

func (k FeedbackKind) IsValid() bool {
	return k == FeedbackKindCustomer || k == FeedbackKindEmployee
}

func (k FeedbackKind) Collection() string {
	if k == FeedbackKindEmployee {
		return sqlboiler.TableNames_VoeFeedback
	}
	return sqlboiler.TableNames_VocFeedback
}

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

func (i Impact) IsValid() bool {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return true
	}
	return false
}

// Feedback is one customer or employee voice record. For customer rows
// Subject is the customer and Score the satisfaction score. For employee
// rows Subject is the employee and Score the engagement score.
type Feedback struct {
	ID         string       `json:"id"`
	Kind       FeedbackKind `json:"kind"`
	Subject    string       `json:"subject"`
	Department string       `json:"department,omitempty"`
	Sentiment  Sentiment    `json:"sentiment"`
	Score      float64      `json:"score"`
	Category   string       `json:"category"`
	Body       string       `json:"feedback"`
	Source     string       `json:"source,omitempty"`
	Impact     Impact       `json:"impact,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func NewCustomerFeedbackFromDB(db *sqlboiler.VocFeedback) Feedback {
	return Feedback{
		ID:        db.ID,
		Kind:      FeedbackKindCustomer,
		Subject:   db.Customer,
		Sentiment: NormalizeSentiment(db.Sentiment.String),
		Score:     db.Score,
		Category:  db.Category,
		Body:      db.Feedback,
		Source:    db.Source.String,
		Impact:    Impact(db.Impact.String),
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
}

func NewEmployeeFeedbackFromDB(db *sqlboiler.VoeFeedback) Feedback {
	return Feedback{
		ID:         db.ID,
		Kind:       FeedbackKindEmployee,
		Subject:    db.Employee,
		Department: db.Department,
		Sentiment:  NormalizeSentiment(db.Sentiment.String),
		Score:      db.EngagementScore,
		Category:   db.Category,
		Body:       db.Feedback,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}
}

func (f Feedback) ToDBCustomer() *sqlboiler.VocFeedback {
	return &sqlboiler.VocFeedback{
		ID:        f.ID,
		Customer:  f.Subject,
		Sentiment: null.NewString(string(f.Sentiment), f.Sentiment != ""),
		Score:     f.Score,
		Category:  f.Category,
		Feedback:  f.Body,
		Source:    null.NewString(f.Source, f.Source != ""),
		Impact:    null.NewString(string(f.Impact), f.Impact != ""),
	}
}

func (f Feedback) ToDBEmployee() *sqlboiler.VoeFeedback {
	return &sqlboiler.VoeFeedback{
		ID:              f.ID,
		Employee:        f.Subject,
		Department:      f.Department,
		Sentiment:       null.NewString(string(f.Sentiment), f.Sentiment != ""),
		EngagementScore: f.Score,
		Feedback:        f.Body,
		Category:        f.Category,
	}
}
