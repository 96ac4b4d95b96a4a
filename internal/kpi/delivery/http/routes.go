package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	kpis := r.Group("/kpis", mw.Auth())
	{
		kpis.GET("", h.List)
		kpis.GET("/trends", h.Trends)
		kpis.GET("/:id", h.Detail)
		kpis.PATCH("/:id", h.Update)
	}
}
