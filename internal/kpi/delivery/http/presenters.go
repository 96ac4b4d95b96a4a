package http

import (
	"time"

	"polaris-api/internal/kpi"
	"polaris-api/internal/model"
)

type listReq struct {
	Department string `form:"department"`
	Status     string `form:"status"`
	Limit      int    `form:"limit"`
}

func (r listReq) toInput() kpi.ListInput {
	return kpi.ListInput{
		Filter: kpi.Filter{
			Department: r.Department,
			Status:     r.Status,
			Limit:      r.Limit,
		},
	}
}

type trendsReq struct {
	TimeRange string `form:"time_range"`
}

func (r trendsReq) toInput() kpi.TrendsInput {
	return kpi.TrendsInput{TimeRange: r.TimeRange}
}

type updateReq struct {
	Value  *float64 `json:"value"`
	Target *float64 `json:"target"`
	Change *float64 `json:"change"`
	Status *string  `json:"status"`
}

func (r updateReq) toInput(id string) kpi.UpdateInput {
	ip := kpi.UpdateInput{
		ID:     id,
		Value:  r.Value,
		Target: r.Target,
		Change: r.Change,
	}
	if r.Status != nil {
		s := model.KPIStatus(*r.Status)
		ip.Status = &s
	}
	return ip
}

type kpiResp struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Target     float64   `json:"target"`
	Change     float64   `json:"change"`
	Status     string    `json:"status"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newKPIResp(k model.KPI) kpiResp {
	return kpiResp{
		ID:         k.ID,
		Name:       k.Name,
		Value:      k.Value,
		Target:     k.Target,
		Change:     k.Change,
		Status:     string(k.Status),
		Department: k.Department,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
}

type listResp struct {
	Items []kpiResp `json:"items"`
}

func newListResp(kpis []model.KPI) listResp {
	items := make([]kpiResp, len(kpis))
	for i, k := range kpis {
		items[i] = newKPIResp(k)
	}
	return listResp{Items: items}
}

type trendsResp struct {
	Points []kpi.TrendPoint `json:"points"`
}
