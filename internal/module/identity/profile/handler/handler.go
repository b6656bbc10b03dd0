package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"financequest/internal/middleware"
	tokenservice "financequest/internal/module/identity/authtoken/service"
	profiledto "financequest/internal/module/identity/profile/dto"
	profileservice "financequest/internal/module/identity/profile/service"
	"financequest/internal/shared"
)

// Handler manages sign-up and authenticated profile endpoints.
type Handler struct {
	service profileservice.Service
	tokens  tokenservice.Service
}

// NewHandler constructs a profile handler.
func NewHandler(service profileservice.Service, tokens tokenservice.Service) *Handler {
	return &Handler{service: service, tokens: tokens}
}

// RegisterRoutes wires sign-up and profile routes.
func (h *Handler) RegisterRoutes(r *gin.Engine, authMiddleware *middleware.Middleware) {
	r.POST("/api/v1/auth/sign-up", h.signUp)

	profile := r.Group("/api/v1/profile")
	profile.Use(authMiddleware.AuthMiddleware())
	{
		profile.GET("/me", h.getProfile)
		profile.PATCH("/timezone", h.updateTimezone)
	}
}

// signUp godoc
// @Summary Sign up
// @Description Mint a new identity, a default profile, and a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body profiledto.SignUpRequest false "Sign-up data"
// @Success 201 {object} profiledto.SignUpResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 500 {object} shared.ErrorResponse
// @Router /api/v1/auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var req profiledto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid request data")
		return
	}

	userID := uuid.New()

	profile, err := h.service.CreateDefaultProfile(c.Request.Context(), userID, req.Timezone)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		shared.RespondWithAppError(c, shared.ErrInternal.WithError(err))
		return
	}

	shared.RespondWithSuccess(c, http.StatusCreated, "Signed up successfully", profiledto.SignUpResponse{
		Token:   token,
		Profile: profiledto.ToProfileResponse(profile),
	})
}

// getProfile godoc
// @Summary Get my profile
// @Description Retrieve the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} profiledto.ProfileResponse
// @Failure 401 {object} shared.ErrorResponse
// @Failure 404 {object} shared.ErrorResponse
// @Failure 500 {object} shared.ErrorResponse
// @Router /api/v1/profile/me [get]
func (h *Handler) getProfile(c *gin.Context) {
	userID, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Profile retrieved successfully", profiledto.ToProfileResponse(profile))
}

// updateTimezone godoc
// @Summary Set profile timezone
// @Description Set the authenticated user's IANA timezone
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body profiledto.UpdateTimezoneRequest true "Timezone"
// @Success 200 {object} profiledto.ProfileResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 401 {object} shared.ErrorResponse
// @Failure 404 {object} shared.ErrorResponse
// @Failure 500 {object} shared.ErrorResponse
// @Router /api/v1/profile/timezone [patch]
func (h *Handler) updateTimezone(c *gin.Context) {
	userID, exists := middleware.GetCurrentUser(c)
	if !exists {
		shared.RespondWithError(c, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req profiledto.UpdateTimezoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid request data")
		return
	}

	profile, err := h.service.UpdateTimezone(c.Request.Context(), userID, req.Timezone)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Timezone updated successfully", profiledto.ToProfileResponse(profile))
}
