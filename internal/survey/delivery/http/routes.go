package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	surveys := r.Group("/surveys", mw.Auth())
	{
		surveys.GET("", h.List)
		surveys.POST("", h.Create)
		surveys.GET("/analytics", h.Analytics)
	}
}
