package http

import (
	"io"

	"polaris-api/pkg/response"
	"polaris-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/reports?category=&status=&search=&limit=
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.report.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	reports, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(reports))
}

// Get returns one page of reports with paging metadata.
// GET /api/v1/reports/page?category=&status=&search=&page=&limit=
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.report.delivery.http.Get.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}
	req.PaginateQuery.Adjust()

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newGetResp(o))
}

// GET /api/v1/reports/search?q=&limit=
func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	reports, err := h.uc.Search(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(reports))
}

// POST /api/v1/reports
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.report.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	r, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, newReportResp(r))
}

// GET /api/v1/reports/analytics
func (h *Handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	res, err := h.uc.Analytics(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, res)
}

// Export renders the matching reports to CSV and answers with a download
// link. An empty body exports everything.
// POST /api/v1/reports/export
func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.l.Warnf(ctx, "internal.report.delivery.http.Export.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	o, err := h.uc.Export(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
