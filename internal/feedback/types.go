package feedback

import "polaris-api/internal/model"

const (
	DefaultTimeRange = "30d"

	// Row caps of the aggregate reads, newest rows first.
	CategoryBreakdownRows   = 500
	DepartmentAnalyticsRows = 1000
)

// Filter narrows a feedback listing. Department only applies to employee
// feedback.
type Filter struct {
	Department string
	Sentiment  string
	Category   string
	TimeRange  string
	Limit      int
}

type ListInput struct {
	Filter Filter
}

type CreateCustomerInput struct {
	Customer  string
	Sentiment model.Sentiment
	Score     float64
	Category  string
	Feedback  string
	Source    string
	Impact    model.Impact
}

func (ip CreateCustomerInput) Validate() error {
	switch {
	case ip.Customer == "", ip.Feedback == "", ip.Category == "":
		return ErrInvalidInput
	case ip.Sentiment != "" && !ip.Sentiment.IsValid():
		return ErrInvalidSentiment
	case ip.Impact != "" && !ip.Impact.IsValid():
		return ErrInvalidInput
	case ip.Score < 0:
		return ErrInvalidInput
	}
	return nil
}

type CreateEmployeeInput struct {
	Employee        string
	Department      string
	Sentiment       model.Sentiment
	EngagementScore float64
	Feedback        string
	Category        string
}

func (ip CreateEmployeeInput) Validate() error {
	switch {
	case ip.Employee == "", ip.Department == "", ip.Feedback == "", ip.Category == "":
		return ErrInvalidInput
	case ip.Sentiment != "" && !ip.Sentiment.IsValid():
		return ErrInvalidSentiment
	case ip.EngagementScore < 0:
		return ErrInvalidInput
	}
	return nil
}

type TrendsInput struct {
	Kind      model.FeedbackKind
	TimeRange string
}

// TrendPoint counts the feedback of one UTC date by sentiment.
type TrendPoint struct {
	Date string `json:"date"`
	model.SentimentCounts
}

type CategoryStat struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	model.SentimentCounts
	// Sentiment is the dominant side: positive or negative when one
	// outnumbers the other, else neutral.
	Sentiment model.Sentiment `json:"sentiment"`
}

type DepartmentStat struct {
	Department    string  `json:"department"`
	TotalFeedback int     `json:"total_feedback"`
	AvgEngagement float64 `json:"avg_engagement"`
	PositiveRatio float64 `json:"positive_ratio"`
	NegativeRatio float64 `json:"negative_ratio"`
}

type SummaryInput struct {
	Kind  model.FeedbackKind
	Limit int
}

// Summary aggregates the newest Limit rows of one feedback kind.
type Summary struct {
	model.SentimentCounts
	Total        int     `json:"total"`
	AverageScore float64 `json:"average_score"`
}
