package http

import (
	"time"

	"polaris-api/internal/model"
	"polaris-api/internal/survey"
)

type listReq struct {
	Status string `form:"status"`
	Type   string `form:"type"`
	Limit  int    `form:"limit"`
}

func (r listReq) toInput() survey.ListInput {
	return survey.ListInput{
		Filter: survey.Filter{
			Status: r.Status,
			Type:   r.Type,
			Limit:  r.Limit,
		},
	}
}

type createReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	Status      string `json:"status"`
}

func (r createReq) toInput() survey.CreateInput {
	return survey.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Type:        model.SurveyType(r.Type),
		Status:      model.SurveyStatus(r.Status),
	}
}

type surveyResp struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	Type           string    `json:"type"`
	Responses      int       `json:"responses"`
	CompletionRate float64   `json:"completion_rate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newSurveyResp(s model.Survey) surveyResp {
	return surveyResp{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		Status:         string(s.Status),
		Type:           string(s.Type),
		Responses:      s.Responses,
		CompletionRate: s.CompletionRate,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type listResp struct {
	Items []surveyResp `json:"items"`
}

func newListResp(surveys []model.Survey) listResp {
	items := make([]surveyResp, len(surveys))
	for i, s := range surveys {
		items[i] = newSurveyResp(s)
	}
	return listResp{Items: items}
}
