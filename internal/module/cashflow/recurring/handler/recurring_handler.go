package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financequest/internal/middleware"
	"financequest/internal/module/cashflow/recurring/dto"
	"financequest/internal/module/cashflow/recurring/service"
	"financequest/internal/shared"
)

// Handler handles recurring-template HTTP requests.
type Handler struct {
	service service.Service
}

// NewHandler creates a new recurring-template handler.
func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all recurring-template routes, nested under
// the transaction surface ("/transactions/recurring/...").
func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.Middleware) {
	recurringRoutes := r.Group("/api/v1/transactions/recurring")
	recurringRoutes.Use(authMiddleware.AuthMiddleware())
	{
		recurringRoutes.POST("/create", h.create)
		recurringRoutes.GET("/list", h.list)
		recurringRoutes.GET("/:id", h.get)
		recurringRoutes.PATCH("/update/:id", h.update)
		recurringRoutes.DELETE("/delete/:id", h.delete)
		recurringRoutes.PATCH("/:id/pause", h.pause)
		recurringRoutes.PATCH("/:id/resume", h.resume)
	}
}

func (h *Handler) create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	tmpl, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusCreated, "recurring template created", dto.ToTemplateResponse(tmpl))
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := middleware.GetCurrentUser(c)
	if !ok {
		shared.HandleError(c, shared.ErrUnauthenticated)
		return
	}

	templates, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "recurring templates retrieved", dto.ToTemplateListResponse(templates))
}

func (h *Handler) get(c *gin.Context) {
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

	tmpl, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "recurring template retrieved", dto.ToTemplateResponse(tmpl))
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

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.HandleError(c, shared.ErrBadRequest.WithError(err))
		return
	}

	tmpl, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "recurring template updated", dto.ToTemplateResponse(tmpl))
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

	shared.RespondWithSuccessNoData(c, http.StatusOK, "recurring template deleted")
}

func (h *Handler) pause(c *gin.Context) {
	h.setPaused(c, true)
}

func (h *Handler) resume(c *gin.Context) {
	h.setPaused(c, false)
}

func (h *Handler) setPaused(c *gin.Context, paused bool) {
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

	tmpl, err := h.service.SetPaused(c.Request.Context(), userID, id, paused)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "recurring template updated", dto.ToTemplateResponse(tmpl))
}
