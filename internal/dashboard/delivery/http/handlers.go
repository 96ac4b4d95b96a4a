package http

import (
	"polaris-api/internal/dashboard"
	"polaris-api/pkg/response"
	"polaris-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

type getReq struct {
	TimeRange string `form:"time_range"`
}

// Get returns KPIs, active alerts, both sentiment summaries and KPI trends.
// GET /api/v1/dashboard?time_range=
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	o, err := h.uc.Get(ctx, sc, dashboard.GetInput{TimeRange: req.TimeRange})
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}
