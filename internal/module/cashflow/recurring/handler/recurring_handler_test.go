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

	"financequest/internal/middleware"
	"financequest/internal/module/cashflow/recurring/domain"
	"financequest/internal/module/cashflow/recurring/dto"
	"financequest/internal/pkg/caldate"
)

type MockRecurringService struct {
	mock.Mock
}

func (m *MockRecurringService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateTemplateRequest) (*domain.Template, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *MockRecurringService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Template, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *MockRecurringService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Template), args.Error(1)
}

func (m *MockRecurringService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTemplateRequest) (*domain.Template, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *MockRecurringService) SetPaused(ctx context.Context, userID, id uuid.UUID, paused bool) (*domain.Template, error) {
	args := m.Called(ctx, userID, id, paused)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *MockRecurringService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockRecurringService) Materialize(ctx context.Context, userID uuid.UUID, start, end caldate.Date) error {
	return m.Called(ctx, userID, start, end).Error(0)
}

func stubAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserKey, userID)
		c.Next()
	}
}

func setupRecurringRouter(h *Handler, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1/transactions/recurring")
	group.Use(stubAuth(userID))
	group.POST("/create", h.create)
	group.GET("/list", h.list)
	group.GET("/:id", h.get)
	group.PATCH("/update/:id", h.update)
	group.DELETE("/delete/:id", h.delete)
	group.PATCH("/:id/pause", h.pause)
	group.PATCH("/:id/resume", h.resume)
	return r
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockRecurringService)
	userID := uuid.New()
	h := NewHandler(svc)
	r := setupRecurringRouter(h, userID)

	svc.On("Create", mock.Anything, userID, mock.AnythingOfType("dto.CreateTemplateRequest")).
		Return(&domain.Template{ID: uuid.New(), UserID: userID}, nil)

	dayOfMonth := 1
	body, _ := json.Marshal(dto.CreateTemplateRequest{
		Amount:    "20.00",
		Kind:      "expense",
		Frequency: "monthly",
		StartDate: "2024-01-01",
		DayOfMonth: &dayOfMonth,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/recurring/create", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_List(t *testing.T) {
	svc := new(MockRecurringService)
	userID := uuid.New()
	h := NewHandler(svc)
	r := setupRecurringRouter(h, userID)

	svc.On("List", mock.Anything, userID).Return([]*domain.Template{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/recurring/list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Pause(t *testing.T) {
	svc := new(MockRecurringService)
	userID := uuid.New()
	id := uuid.New()
	h := NewHandler(svc)
	r := setupRecurringRouter(h, userID)

	svc.On("SetPaused", mock.Anything, userID, id, true).
		Return(&domain.Template{ID: id, UserID: userID, IsPaused: true}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/transactions/recurring/"+id.String()+"/pause", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockRecurringService)
	userID := uuid.New()
	id := uuid.New()
	h := NewHandler(svc)
	r := setupRecurringRouter(h, userID)

	svc.On("Delete", mock.Anything, userID, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/recurring/delete/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
