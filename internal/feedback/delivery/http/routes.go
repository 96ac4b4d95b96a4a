package http

import (
	"polaris-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	fb := r.Group("/feedback", mw.Auth())

	customer := fb.Group("/customer")
	{
		customer.GET("", h.ListCustomer)
		customer.POST("", h.CreateCustomer)
		customer.GET("/trends", h.customerTrends)
		customer.GET("/categories", h.customerCategories)
	}

	employee := fb.Group("/employee")
	{
		employee.GET("", h.ListEmployee)
		employee.POST("", h.CreateEmployee)
		employee.GET("/trends", h.employeeTrends)
		employee.GET("/departments", h.DepartmentAnalytics)
	}
}
