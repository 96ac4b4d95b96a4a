package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	// Connect reads its own token.
	r.GET("/live", h.Connect)
	r.GET("/live/stats", mw.Auth(), h.Stats)
}
