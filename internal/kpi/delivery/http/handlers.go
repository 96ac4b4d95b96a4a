package http

import (
	"polaris-api/pkg/response"
	"polaris-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// List returns KPIs newest first.
// GET /api/v1/kpis?department=&status=&limit=
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.kpi.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	kpis, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(kpis))
}

// GET /api/v1/kpis/:id
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	k, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newKPIResp(k))
}

// Update patches value, target, change or status.
// PATCH /api/v1/kpis/:id
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.kpi.delivery.http.Update.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	k, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newKPIResp(k))
}

// Trends returns one point per day over time_range (default 30d).
// GET /api/v1/kpis/trends?time_range=
func (h *Handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req trendsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	points, err := h.uc.Trends(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, trendsResp{Points: points})
}
