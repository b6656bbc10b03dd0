package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"financequest/internal/middleware"
	"financequest/internal/module/insights/domain"
)

type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) MonthSnapshot(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthSnapshot, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthSnapshot), args.Error(1)
}

func (m *MockInsightsService) AvailableMonths(ctx context.Context, userID uuid.UUID) ([]domain.AvailableMonth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailableMonth), args.Error(1)
}

func stubAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserKey, userID)
		c.Next()
	}
}

func setupRouter(h *Handler, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1/insights")
	group.Use(stubAuth(userID))
	group.GET("/month-snapshot", h.monthSnapshot)
	group.GET("/available-months", h.availableMonths)
	return r
}

func TestHandler_MonthSnapshot(t *testing.T) {
	svc := new(MockInsightsService)
	userID := uuid.New()
	h := NewHandler(svc)
	r := setupRouter(h, userID)

	snapshot := &domain.MonthSnapshot{Key: "jun-2024", Label: "June 2024"}
	svc.On("MonthSnapshot", mock.Anything, userID, 2024, 6).Return(snapshot, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/month-snapshot?year=2024&month=6", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_MonthSnapshot_MissingQueryParams(t *testing.T) {
	svc := new(MockInsightsService)
	userID := uuid.New()
	h := NewHandler(svc)
	r := setupRouter(h, userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/month-snapshot", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AvailableMonths(t *testing.T) {
	svc := new(MockInsightsService)
	userID := uuid.New()
	h := NewHandler(svc)
	r := setupRouter(h, userID)

	svc.On("AvailableMonths", mock.Anything, userID).
		Return([]domain.AvailableMonth{{Year: 2024, Month: 6}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/available-months", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
