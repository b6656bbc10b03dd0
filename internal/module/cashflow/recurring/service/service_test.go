package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"financequest/internal/module/cashflow/recurring/domain"
	"financequest/internal/module/cashflow/recurring/dto"
	categorydomain "financequest/internal/module/reference/category/domain"
	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, t *domain.Template) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockRepository) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Template, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, t *domain.Template) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Template), args.Error(1)
}

func (m *MockRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Template), args.Error(1)
}

type MockCategoryChecker struct {
	mock.Mock
}

func (m *MockCategoryChecker) CategoryExists(ctx context.Context, id uuid.UUID, kind categorydomain.Kind) (bool, error) {
	args := m.Called(ctx, id, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryChecker) SubcategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryChecker) ListExpenseCategories(ctx context.Context) ([]*categorydomain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categorydomain.Category), args.Error(1)
}

func (m *MockCategoryChecker) ListIncomeCategories(ctx context.Context) ([]*categorydomain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*categorydomain.Category), args.Error(1)
}

func (m *MockCategoryChecker) CategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

func (m *MockCategoryChecker) SubcategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) Create(ctx context.Context, txn *transactiondomain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionStore) ExistsByTemplateOccurrence(ctx context.Context, templateID uuid.UUID, occurredAt caldate.Date) (bool, error) {
	args := m.Called(ctx, templateID, occurredAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionStore) DetachTemplate(ctx context.Context, templateID uuid.UUID) error {
	return m.Called(ctx, templateID).Error(0)
}

func TestCreate_Weekly_RequiresDayOfWeek(t *testing.T) {
	repo := new(MockRepository)
	categories := new(MockCategoryChecker)
	transactions := new(MockTransactionStore)
	svc := NewService(repo, categories, transactions)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateTemplateRequest{
		Amount:    "10.00",
		Kind:      "expense",
		Frequency: "weekly",
		StartDate: "2024-01-01",
	})

	require.Error(t, err)
	appErr := err.(*shared.AppError)
	assert.Equal(t, shared.ErrCodeValidation, appErr.Code)
}

func TestCreate_Monthly_Success(t *testing.T) {
	repo := new(MockRepository)
	categories := new(MockCategoryChecker)
	transactions := new(MockTransactionStore)
	svc := NewService(repo, categories, transactions)

	catID := uuid.New()
	catIDStr := catID.String()
	dayOfMonth := 15

	categories.On("CategoryExists", mock.Anything, catID, categorydomain.KindExpense).Return(true, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Template")).Return(nil)

	tmpl, err := svc.Create(context.Background(), uuid.New(), dto.CreateTemplateRequest{
		Amount:            "50.00",
		Kind:              "expense",
		ExpenseCategoryID: &catIDStr,
		TransactionTag:    "need",
		Frequency:         "monthly",
		DayOfMonth:        &dayOfMonth,
		StartDate:         "2024-01-15",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyMonthly, tmpl.Frequency)
	repo.AssertExpectations(t)
	categories.AssertExpectations(t)
}

func TestCreate_UnknownFrequency(t *testing.T) {
	repo := new(MockRepository)
	categories := new(MockCategoryChecker)
	transactions := new(MockTransactionStore)
	svc := NewService(repo, categories, transactions)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateTemplateRequest{
		Amount:    "10.00",
		Kind:      "expense",
		Frequency: "daily",
		StartDate: "2024-01-01",
	})

	require.Error(t, err)
}

func TestDelete_DetachesMaterializedTransactions(t *testing.T) {
	repo := new(MockRepository)
	categories := new(MockCategoryChecker)
	transactions := new(MockTransactionStore)
	svc := NewService(repo, categories, transactions)

	userID := uuid.New()
	tmplID := uuid.New()
	tmpl := &domain.Template{ID: tmplID, UserID: userID}

	repo.On("Get", mock.Anything, userID, tmplID).Return(tmpl, nil)
	repo.On("Delete", mock.Anything, userID, tmplID).Return(nil)
	transactions.On("DetachTemplate", mock.Anything, tmplID).Return(nil)

	err := svc.Delete(context.Background(), userID, tmplID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	transactions.AssertExpectations(t)
}

func TestMaterialize_SkipsAlreadyMaterializedOccurrence(t *testing.T) {
	repo := new(MockRepository)
	categories := new(MockCategoryChecker)
	transactions := new(MockTransactionStore)
	svc := NewService(repo, categories, transactions)

	userID := uuid.New()
	dayOfMonth := 1
	tmpl := &domain.Template{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       transactiondomain.KindExpense,
		Frequency:  domain.FrequencyMonthly,
		DayOfMonth: &dayOfMonth,
		StartDate:  caldate.NewDate(2024, 1, 1),
	}

	start := caldate.NewDate(2024, 1, 1)
	end := caldate.NewDate(2024, 1, 31)

	repo.On("ListActive", mock.Anything, userID).Return([]*domain.Template{tmpl}, nil)
	transactions.On("ExistsByTemplateOccurrence", mock.Anything, tmpl.ID, mock.Anything).Return(true, nil)

	err := svc.Materialize(context.Background(), userID, start, end)

	require.NoError(t, err)
	transactions.AssertExpectations(t)
	transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMaterialize_CreatesMissingOccurrence(t *testing.T) {
	repo := new(MockRepository)
	categories := new(MockCategoryChecker)
	transactions := new(MockTransactionStore)
	svc := NewService(repo, categories, transactions)

	userID := uuid.New()
	dayOfMonth := 1
	tmpl := &domain.Template{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       transactiondomain.KindExpense,
		Frequency:  domain.FrequencyMonthly,
		DayOfMonth: &dayOfMonth,
		StartDate:  caldate.NewDate(2024, 1, 1),
	}

	start := caldate.NewDate(2024, 1, 1)
	end := caldate.NewDate(2024, 1, 31)

	repo.On("ListActive", mock.Anything, userID).Return([]*domain.Template{tmpl}, nil)
	transactions.On("ExistsByTemplateOccurrence", mock.Anything, tmpl.ID, mock.Anything).Return(false, nil)
	transactions.On("Create", mock.Anything, mock.AnythingOfType("*domain.Transaction")).Return(nil)

	err := svc.Materialize(context.Background(), userID, start, end)

	require.NoError(t, err)
	transactions.AssertExpectations(t)
}
