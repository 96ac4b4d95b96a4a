package alert

import "polaris-api/internal/model"

const DefaultTrendDays = 7

type Filter struct {
	Type     string
	Status   string
	Priority string
	Limit    int
}

type ListInput struct {
	Filter Filter
}

type CreateInput struct {
	Title    string
	Message  string
	Type     model.AlertType
	Priority model.Priority
	Source   string
}

func (ip CreateInput) Validate() error {
	if ip.Title == "" || !ip.Type.IsValid() || !ip.Priority.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

type UpdateStatusInput struct {
	ID     string
	Status model.AlertStatus
}

type TrendsInput struct {
	Days int
}

// TrendPoint counts the alerts raised on one UTC date by type.
type TrendPoint struct {
	Date     string `json:"date"`
	Critical int    `json:"critical"`
	Warning  int    `json:"warning"`
	Info     int    `json:"info"`
}
