package http

import (
	"polaris-api/internal/alert"
	"polaris-api/internal/model"
)

type listReq struct {
	Type     string `form:"type"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Limit    int    `form:"limit"`
}

func (r listReq) toInput() alert.ListInput {
	return alert.ListInput{
		Filter: alert.Filter{
			Type:     r.Type,
			Status:   r.Status,
			Priority: r.Priority,
			Limit:    r.Limit,
		},
	}
}

type createReq struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message"`
	Type     string `json:"type" binding:"required"`
	Priority string `json:"priority" binding:"required"`
	Source   string `json:"source"`
}

func (r createReq) toInput() alert.CreateInput {
	return alert.CreateInput{
		Title:    r.Title,
		Message:  r.Message,
		Type:     model.AlertType(r.Type),
		Priority: model.Priority(r.Priority),
		Source:   r.Source,
	}
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) toInput(id string) alert.UpdateStatusInput {
	return alert.UpdateStatusInput{ID: id, Status: model.AlertStatus(r.Status)}
}

type trendsReq struct {
	Days int `form:"days"`
}

type listResp struct {
	Items []model.Alert `json:"items"`
}

type trendsResp struct {
	Points []alert.TrendPoint `json:"points"`
}

func newListResp(alerts []model.Alert) listResp {
	if alerts == nil {
		alerts = []model.Alert{}
	}
	return listResp{Items: alerts}
}
