package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("", h.List)
		alerts.POST("", h.Create)
		alerts.GET("/trends", h.Trends)
		alerts.GET("/:id", h.Detail)
		alerts.PATCH("/:id/status", h.UpdateStatus)
	}
}
