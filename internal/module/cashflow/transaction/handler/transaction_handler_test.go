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
	"financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/module/cashflow/transaction/dto"
	"financequest/internal/pkg/caldate"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]*domain.Transaction, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) TodaySummary(ctx context.Context, userID uuid.UUID, today caldate.Date) (*domain.TodaySummary, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TodaySummary), args.Error(1)
}

func (m *MockTransactionService) AggregateByCategory(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.CategoryAggregate, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryAggregate), args.Error(1)
}

func (m *MockTransactionService) AggregateByWeek(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.WeekAggregate, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekAggregate), args.Error(1)
}

func (m *MockTransactionService) DistinctLoggedDays(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (int, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionService) Recent(ctx context.Context, userID uuid.UUID, start, end caldate.Date, limit int) ([]*domain.Transaction, error) {
	args := m.Called(ctx, userID, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) TotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end caldate.Date) (float64, error) {
	args := m.Called(ctx, userID, categoryID, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionService) TotalIncome(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (float64, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTransactionService) DistinctMonths(ctx context.Context, userID uuid.UUID) ([]domain.MonthKey, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthKey), args.Error(1)
}

func (m *MockTransactionService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func stubAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserKey, userID)
		c.Next()
	}
}

func setupTransactionRouter(h *Handler, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1/transactions")
	group.Use(stubAuth(userID))
	group.POST("/create-expense", h.createExpense)
	group.POST("/create-income", h.createIncome)
	group.GET("/list", h.list)
	group.GET("/today-summary", h.todaySummary)
	group.PATCH("/update/:id", h.update)
	group.DELETE("/delete/:id", h.delete)
	return r
}

func TestHandler_CreateExpense(t *testing.T) {
	svc := new(MockTransactionService)
	userID := uuid.New()
	h := NewHandler(svc)
	r := setupTransactionRouter(h, userID)

	svc.On("Create", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(&domain.Transaction{ID: uuid.New(), UserID: userID, Kind: domain.KindExpense}, nil)

	body, _ := json.Marshal(map[string]string{
		"occurred_at":         "2024-06-01",
		"amount":              "12.50",
		"expense_category_id": uuid.New().String(),
		"transaction_tag":     "need",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/create-expense", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_TodaySummary(t *testing.T) {
	svc := new(MockTransactionService)
	userID := uuid.New()
	h := NewHandler(svc)
	r := setupTransactionRouter(h, userID)

	svc.On("TodaySummary", mock.Anything, userID, mock.AnythingOfType("caldate.Date")).
		Return(&domain.TodaySummary{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/today-summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockTransactionService)
	userID := uuid.New()
	id := uuid.New()
	h := NewHandler(svc)
	r := setupTransactionRouter(h, userID)

	svc.On("Delete", mock.Anything, userID, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/delete/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
