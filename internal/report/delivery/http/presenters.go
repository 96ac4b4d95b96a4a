package http

import (
	"time"

	"polaris-api/internal/model"
	"polaris-api/internal/report"
	"polaris-api/pkg/paginator"
)

type filterReq struct {
	Category string `form:"category" json:"category"`
	Status   string `form:"status" json:"status"`
	Search   string `form:"search" json:"search"`
}

func (r filterReq) toFilter(limit int) report.Filter {
	return report.Filter{
		Category: r.Category,
		Status:   r.Status,
		Search:   r.Search,
		Limit:    limit,
	}
}

type listReq struct {
	filterReq
	Limit int `form:"limit"`
}

func (r listReq) toInput() report.ListInput {
	return report.ListInput{Filter: r.toFilter(r.Limit)}
}

type getReq struct {
	filterReq
	paginator.PaginateQuery
}

func (r getReq) toInput() report.GetInput {
	return report.GetInput{
		Filter:   r.toFilter(0),
		PagQuery: r.PaginateQuery,
	}
}

type searchReq struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

func (r searchReq) toInput() report.SearchInput {
	return report.SearchInput{Query: r.Query, Limit: r.Limit}
}

type createReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Status      string `json:"status"`
	Author      string `json:"author"`
}

func (r createReq) toInput() report.CreateInput {
	return report.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    model.ReportCategory(r.Category),
		Status:      model.ReportStatus(r.Status),
		Author:      r.Author,
	}
}

type exportReq struct {
	filterReq
}

func (r exportReq) toInput() report.ExportInput {
	return report.ExportInput{Filter: r.toFilter(0)}
}

type reportResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newReportResp(r model.Report) reportResp {
	return reportResp{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    string(r.Category),
		Status:      string(r.Status),
		Author:      r.Author,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type listResp struct {
	Items []reportResp `json:"items"`
}

func newListResp(reports []model.Report) listResp {
	items := make([]reportResp, len(reports))
	for i, r := range reports {
		items[i] = newReportResp(r)
	}
	return listResp{Items: items}
}

type getResp struct {
	Items []reportResp                `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newGetResp(o report.GetOutput) getResp {
	return getResp{
		Items: newListResp(o.Reports).Items,
		Meta:  o.Paginator.ToResponse(),
	}
}
