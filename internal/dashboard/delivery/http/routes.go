package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/dashboard", mw.Auth(), h.Get)
}
