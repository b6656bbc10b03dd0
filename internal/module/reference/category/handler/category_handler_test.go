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

	"financequest/internal/module/reference/category/domain"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CategoryExists(ctx context.Context, id uuid.UUID, kind domain.Kind) (bool, error) {
	args := m.Called(ctx, id, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryService) SubcategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryService) ListExpenseCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListIncomeCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryService) CategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

func (m *MockCategoryService) SubcategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/expense-categories/list", h.listExpenseCategories)
	r.GET("/api/v1/income-categories/list", h.listIncomeCategories)
	return r
}

func TestHandler_ListExpenseCategories(t *testing.T) {
	svc := new(MockCategoryService)
	h := NewHandler(svc)
	r := setupRouter(h)

	svc.On("ListExpenseCategories", mock.Anything).Return([]*domain.Category{
		{ID: uuid.New(), Kind: domain.KindExpense, Name: "Food & Dining"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expense-categories/list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_ListIncomeCategories(t *testing.T) {
	svc := new(MockCategoryService)
	h := NewHandler(svc)
	r := setupRouter(h)

	svc.On("ListIncomeCategories", mock.Anything).Return([]*domain.Category{
		{ID: uuid.New(), Kind: domain.KindIncome, Name: "Salary"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/income-categories/list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
