package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users", mw.Auth())
	{
		users.GET("", h.List)
		users.GET("/me", h.DetailMe)
		users.PATCH("/me", h.UpdateProfile)
		users.GET("/:id", h.Detail)
	}
}
