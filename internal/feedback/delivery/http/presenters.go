package http

import (
	"polaris-api/internal/feedback"
	"polaris-api/internal/model"
)

type listReq struct {
	Department string `form:"department"`
	Sentiment  string `form:"sentiment"`
	Category   string `form:"category"`
	TimeRange  string `form:"time_range"`
	Limit      int    `form:"limit"`
}

func (r listReq) toInput() feedback.ListInput {
	return feedback.ListInput{
		Filter: feedback.Filter{
			Department: r.Department,
			Sentiment:  r.Sentiment,
			Category:   r.Category,
			TimeRange:  r.TimeRange,
			Limit:      r.Limit,
		},
	}
}

type createCustomerReq struct {
	Customer  string  `json:"customer" binding:"required"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Category  string  `json:"category" binding:"required"`
	Feedback  string  `json:"feedback" binding:"required"`
	Source    string  `json:"source"`
	Impact    string  `json:"impact"`
}

func (r createCustomerReq) toInput() feedback.CreateCustomerInput {
	return feedback.CreateCustomerInput{
		Customer:  r.Customer,
		Sentiment: model.Sentiment(r.Sentiment),
		Score:     r.Score,
		Category:  r.Category,
		Feedback:  r.Feedback,
		Source:    r.Source,
		Impact:    model.Impact(r.Impact),
	}
}

type createEmployeeReq struct {
	Employee        string  `json:"employee" binding:"required"`
	Department      string  `json:"department" binding:"required"`
	Sentiment       string  `json:"sentiment"`
	EngagementScore float64 `json:"engagement_score"`
	Feedback        string  `json:"feedback" binding:"required"`
	Category        string  `json:"category" binding:"required"`
}

func (r createEmployeeReq) toInput() feedback.CreateEmployeeInput {
	return feedback.CreateEmployeeInput{
		Employee:        r.Employee,
		Department:      r.Department,
		Sentiment:       model.Sentiment(r.Sentiment),
		EngagementScore: r.EngagementScore,
		Feedback:        r.Feedback,
		Category:        r.Category,
	}
}

type trendsReq struct {
	TimeRange string `form:"time_range"`
}

type listResp struct {
	Items []model.Feedback `json:"items"`
}

func newListResp(fbs []model.Feedback) listResp {
	if fbs == nil {
		fbs = []model.Feedback{}
	}
	return listResp{Items: fbs}
}
