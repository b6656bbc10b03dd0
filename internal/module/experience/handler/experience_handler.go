package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"financequest/internal/middleware"
	"financequest/internal/module/experience/dto"
	"financequest/internal/module/experience/service"
	"financequest/internal/shared"
)

// Handler serves the experience/gamification endpoints.
type Handler struct {
	service service.Service
}

// NewHandler constructs an experience handler.
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the experience routes.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.Middleware) {
	experience := r.Group("/api/v1/experience")
	experience.Use(authMiddleware.AuthMiddleware())
	{
		experience.GET("/status", h.status)
		experience.POST("/check-in", h.checkIn)
		experience.GET("/history", h.history)
		experience.GET("/streak-milestones", h.milestones)
	}
}

func (h *Handler) status(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	profile, err := h.service.Status(c.Request.Context(), userID)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "status retrieved", dto.ToStatusResponse(profile))
}

func (h *Handler) checkIn(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	result, err := h.service.CheckIn(c.Request.Context(), userID)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "checked in", dto.ToCheckInResponse(result))
}

func (h *Handler) history(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	events, total, err := h.service.History(c.Request.Context(), userID, limit, offset)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "history retrieved", dto.ToHistoryResponse(events, total, limit, offset))
}

func (h *Handler) milestones(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	progress, err := h.service.Milestones(c.Request.Context(), userID)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "milestones retrieved", dto.ToMilestoneResponses(progress))
}
