package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financequest/internal/middleware"
	"financequest/internal/module/cashflow/budgetplan/dto"
	"financequest/internal/module/cashflow/budgetplan/service"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

// Handler handles budget-plan HTTP requests.
type Handler struct {
	service service.Service
}

// NewHandler creates a new budget plan handler.
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all budget plan routes.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.Middleware) {
	plans := r.Group("/api/v1/budget-plans")
	plans.Use(authMiddleware.AuthMiddleware())
	{
		plans.POST("/create", h.create)
		plans.GET("/get", h.get)
		plans.PATCH("/update", h.update)
	}
}

func (h *Handler) create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var req dto.CreateBudgetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	year, month := currentMonth()
	plan, income, err := h.service.Create(c.Request.Context(), userID, req, year, month)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusCreated, "budget plan created", dto.ToBudgetPlanResponse(plan, income))
}

func (h *Handler) get(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var query dto.GetBudgetPlanQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	year, month := currentMonth()
	if query.Year != nil {
		year = *query.Year
	}
	if query.Month != nil {
		month = *query.Month
	}

	plan, income, err := h.service.Get(c.Request.Context(), userID, year, month)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "budget plan retrieved", dto.ToBudgetPlanResponse(plan, income))
}

func (h *Handler) update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var req dto.UpdateBudgetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	year, month := currentMonth()
	plan, income, err := h.service.Update(c.Request.Context(), userID, req, year, month)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "budget plan updated", dto.ToBudgetPlanResponse(plan, income))
}

// currentMonth is the default (year, month) expected_income is summed
// over when the caller doesn't specify one.
func currentMonth() (int, int) {
	today := caldate.TodayIn("UTC")
	return today.Year(), int(today.Month())
}
