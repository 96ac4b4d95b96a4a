package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports", mw.Auth())
	{
		reports.GET("", h.List)
		reports.POST("", h.Create)
		reports.GET("/page", h.Get)
		reports.GET("/search", h.Search)
		reports.GET("/analytics", h.Analytics)
		reports.POST("/export", h.Export)
	}
}
