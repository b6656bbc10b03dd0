package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financequest/internal/middleware"
	"financequest/internal/module/insights/dto"
	"financequest/internal/module/insights/service"
	"financequest/internal/shared"
)

// Handler handles insights HTTP requests.
type Handler struct {
	service service.Service
}

// NewHandler creates a new insights handler.
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all insights routes.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.Middleware) {
	insights := r.Group("/api/v1/insights")
	insights.Use(authMiddleware.AuthMiddleware())
	{
		insights.GET("/month-snapshot", h.monthSnapshot)
		insights.GET("/available-months", h.availableMonths)
	}
}

func (h *Handler) monthSnapshot(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var query dto.MonthSnapshotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	snapshot, err := h.service.MonthSnapshot(c.Request.Context(), userID, query.Year, query.Month)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "month snapshot retrieved", dto.ToMonthSnapshotResponse(snapshot))
}

func (h *Handler) availableMonths(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	months, err := h.service.AvailableMonths(c.Request.Context(), userID)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "available months retrieved", dto.ToAvailableMonthsResponse(months))
}
