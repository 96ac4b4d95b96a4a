package http

import (
	"polaris-api/internal/alert"
	"polaris-api/pkg/response"
	"polaris-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/alerts?type=&status=&priority=&limit=
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	alerts, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(alerts))
}

// GET /api/v1/alerts/:id
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	a, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, a)
}

// POST /api/v1/alerts
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	a, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, a)
}

// UpdateStatus acknowledges or resolves an alert.
// PATCH /api/v1/alerts/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.UpdateStatus.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	a, err := h.uc.UpdateStatus(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, a)
}

// GET /api/v1/alerts/trends?days=
func (h *Handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req trendsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	points, err := h.uc.Trends(ctx, sc, alert.TrendsInput{Days: req.Days})
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, trendsResp{Points: points})
}
