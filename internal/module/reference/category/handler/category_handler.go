package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financequest/internal/middleware"
	"financequest/internal/module/reference/category/dto"
	"financequest/internal/module/reference/category/service"
	"financequest/internal/shared"
)

// Handler exposes the read-only category/subcategory reference catalog.
type Handler struct {
	service service.Service
}

// NewHandler creates a new category handler.
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reference catalog routes.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.Middleware) {
	group := r.Group("/api/v1")
	group.Use(authMiddleware.AuthMiddleware())
	{
		group.GET("/expense-categories/list", h.listExpenseCategories)
		group.GET("/income-categories/list", h.listIncomeCategories)
	}
}

// listExpenseCategories godoc
// @Summary List expense categories
// @Description List expense categories with nested subcategories ordered by sort_order
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CategoryListResponse
// @Router /api/v1/expense-categories/list [get]
func (h *Handler) listExpenseCategories(c *gin.Context) {
	categories, err := h.service.ListExpenseCategories(c.Request.Context())
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	response := dto.ToCategoryListResponse(categories)
	shared.RespondWithSuccess(c, http.StatusOK, "expense categories retrieved", response)
}

// listIncomeCategories godoc
// @Summary List income categories
// @Description List income categories with nested subcategories ordered by sort_order
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CategoryListResponse
// @Router /api/v1/income-categories/list [get]
func (h *Handler) listIncomeCategories(c *gin.Context) {
	categories, err := h.service.ListIncomeCategories(c.Request.Context())
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	response := dto.ToCategoryListResponse(categories)
	shared.RespondWithSuccess(c, http.StatusOK, "income categories retrieved", response)
}
