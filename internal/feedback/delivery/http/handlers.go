package http

import (
	"context"

	"polaris-api/internal/feedback"
	"polaris-api/internal/model"
	"polaris-api/pkg/response"
	"polaris-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/feedback/customer?sentiment=&category=&time_range=&limit=
func (h *Handler) ListCustomer(c *gin.Context) {
	h.list(c, h.uc.ListCustomer)
}

// GET /api/v1/feedback/employee?department=&sentiment=&category=&time_range=&limit=
func (h *Handler) ListEmployee(c *gin.Context) {
	h.list(c, h.uc.ListEmployee)
}

type listFunc func(ctx context.Context, sc model.Scope, ip feedback.ListInput) ([]model.Feedback, error)

func (h *Handler) list(c *gin.Context, fn listFunc) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.feedback.delivery.http.list.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	fbs, err := fn(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(fbs))
}

// POST /api/v1/feedback/customer
func (h *Handler) CreateCustomer(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req createCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.feedback.delivery.http.CreateCustomer.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	f, err := h.uc.CreateCustomer(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, f)
}

// POST /api/v1/feedback/employee
func (h *Handler) CreateEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req createEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.feedback.delivery.http.CreateEmployee.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	f, err := h.uc.CreateEmployee(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, f)
}

func (h *Handler) customerTrends(c *gin.Context) {
	h.trends(c, model.FeedbackKindCustomer)
}

func (h *Handler) employeeTrends(c *gin.Context) {
	h.trends(c, model.FeedbackKindEmployee)
}

// trends answers GET /api/v1/feedback/{customer,employee}/trends?time_range=
func (h *Handler) trends(c *gin.Context, kind model.FeedbackKind) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	var req trendsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	points, err := h.uc.SentimentTrends(ctx, sc, feedback.TrendsInput{Kind: kind, TimeRange: req.TimeRange})
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gin.H{"points": points})
}

// GET /api/v1/feedback/customer/categories
func (h *Handler) customerCategories(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	stats, err := h.uc.CategoryBreakdown(ctx, sc, model.FeedbackKindCustomer)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gin.H{"categories": stats})
}

// GET /api/v1/feedback/employee/departments
func (h *Handler) DepartmentAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := scope.GetScopeFromContext(ctx)

	stats, err := h.uc.DepartmentAnalytics(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gin.H{"departments": stats})
}
