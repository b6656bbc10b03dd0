package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"financequest/internal/middleware"
	"financequest/internal/module/identity/profile/domain"
	"financequest/internal/module/identity/profile/dto"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CreateDefaultProfile(ctx context.Context, userID uuid.UUID, timezone string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, timezone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdateTimezone(ctx context.Context, userID uuid.UUID, timezone string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, timezone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func setupRouter(h *Handler, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserKey, userID)
		c.Next()
	})
	r.POST("/api/v1/auth/sign-up", h.signUp)
	r.GET("/api/v1/profile/me", h.getProfile)
	r.PATCH("/api/v1/profile/timezone", h.updateTimezone)
	return r
}

func TestHandler_SignUp(t *testing.T) {
	t.Run("creates a profile and issues a token", func(t *testing.T) {
		mockService := new(MockProfileService)
		mockTokens := new(MockTokenService)
		h := NewHandler(mockService, mockTokens)
		r := setupRouter(h, uuid.Nil)

		mockService.On("CreateDefaultProfile", mock.Anything, mock.AnythingOfType("uuid.UUID"), "").
			Return(&domain.UserProfile{UserID: uuid.New(), Timezone: "UTC", CurrentLevel: 1}, nil)
		mockTokens.On("Issue", mock.AnythingOfType("uuid.UUID")).Return("signed-token", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-up", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Data dto.SignUpResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body.Data.Token)
	})
}

func TestHandler_GetProfile(t *testing.T) {
	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		mockService := new(MockProfileService)
		mockTokens := new(MockTokenService)
		userID := uuid.New()
		h := NewHandler(mockService, mockTokens)
		r := setupRouter(h, userID)

		mockService.On("GetProfile", mock.Anything, userID).
			Return(&domain.UserProfile{UserID: userID, Timezone: "UTC", CurrentLevel: 3}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_UpdateTimezone(t *testing.T) {
	t.Run("updates the timezone", func(t *testing.T) {
		mockService := new(MockProfileService)
		mockTokens := new(MockTokenService)
		userID := uuid.New()
		h := NewHandler(mockService, mockTokens)
		r := setupRouter(h, userID)

		mockService.On("UpdateTimezone", mock.Anything, userID, "Asia/Ho_Chi_Minh").
			Return(&domain.UserProfile{UserID: userID, Timezone: "Asia/Ho_Chi_Minh"}, nil)

		body, _ := json.Marshal(dto.UpdateTimezoneRequest{Timezone: "Asia/Ho_Chi_Minh"})
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/profile/timezone", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a missing timezone field", func(t *testing.T) {
		mockService := new(MockProfileService)
		mockTokens := new(MockTokenService)
		userID := uuid.New()
		h := NewHandler(mockService, mockTokens)
		r := setupRouter(h, userID)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/profile/timezone", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
