package survey

import "polaris-api/internal/model"

type Filter struct {
	Status string
	Type   string
	Limit  int
}

type ListInput struct {
	Filter Filter
}

type CreateInput struct {
	Title       string
	Description string
	Type        model.SurveyType
	Status      model.SurveyStatus
}

func (ip CreateInput) Validate() error {
	switch {
	case ip.Title == "", !ip.Type.IsValid():
		return ErrInvalidInput
	case ip.Status != "" && !ip.Status.IsValid():
		return ErrInvalidStatus
	}
	return nil
}

type Analytics struct {
	TotalSurveys      int     `json:"total_surveys"`
	ActiveSurveys     int     `json:"active_surveys"`
	TotalResponses    int     `json:"total_responses"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`
}
