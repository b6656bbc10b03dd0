package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financequest/internal/middleware"
	"financequest/internal/module/cashflow/transaction/dto"
	"financequest/internal/module/cashflow/transaction/service"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

// Handler handles transaction-related HTTP requests.
type Handler struct {
	service service.Service
}

// NewHandler creates a new transaction handler.
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all transaction routes.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.Middleware) {
	transactions := r.Group("/api/v1/transactions")
	transactions.Use(authMiddleware.AuthMiddleware())
	{
		transactions.POST("/create-expense", h.createExpense)
		transactions.POST("/create-income", h.createIncome)
		transactions.GET("/list", h.list)
		transactions.GET("/today-summary", h.todaySummary)
		transactions.PATCH("/update/:id", h.update)
		transactions.DELETE("/delete/:id", h.delete)
	}
}

func (h *Handler) createExpense(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}
	req.Kind = "expense"

	txn, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusCreated, "expense logged", dto.ToTransactionResponse(txn))
}

func (h *Handler) createIncome(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}
	req.Kind = "income"

	txn, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusCreated, "income logged", dto.ToTransactionResponse(txn))
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	start, err := caldate.ParseDate(query.Start)
	if err != nil {
		shared.HandleError(c, shared.ErrInvalidDateFormat)
		return
	}
	end, err := caldate.ParseDate(query.End)
	if err != nil {
		shared.HandleError(c, shared.ErrInvalidDateFormat)
		return
	}

	txns, err := h.service.ListByDateRange(c.Request.Context(), userID, start, end)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "transactions retrieved", dto.ToTransactionListResponse(txns))
}

func (h *Handler) todaySummary(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	today := caldate.TodayIn("UTC")
	summary, err := h.service.TodaySummary(c.Request.Context(), userID, today)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "today summary retrieved", dto.ToTodaySummaryResponse(summary))
}

func (h *Handler) update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	txn, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "transaction updated", dto.ToTransactionResponse(txn))
}

func (h *Handler) delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccessNoData(c, http.StatusOK, "transaction deleted")
}
