package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/module/cashflow/budgetplan/domain"
	"financequest/internal/module/cashflow/budgetplan/dto"
	"financequest/internal/module/cashflow/budgetplan/repository"
	"financequest/internal/pkg/caldate"
)

// TransactionIncomeReader is the slice of the transaction store this
// service needs to compute expected_income fresh on every read, rather
// than storing it. Declared here, in the consumer, and satisfied by
// the transaction module's service without either package importing
// the other's fx wiring.
type TransactionIncomeReader interface {
	TotalIncome(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (float64, error)
}

// Service is the composite interface for the budget plan store.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetPlanRequest, year, month int) (*domain.BudgetPlan, decimal.Decimal, error)
	Get(ctx context.Context, userID uuid.UUID, year, month int) (*domain.BudgetPlan, decimal.Decimal, error)
	Update(ctx context.Context, userID uuid.UUID, req dto.UpdateBudgetPlanRequest, year, month int) (*domain.BudgetPlan, decimal.Decimal, error)
}

type budgetPlanService struct {
	repo         repository.Repository
	transactions TransactionIncomeReader
}

// NewService creates a new budget plan service.
func NewService(repo repository.Repository, transactions TransactionIncomeReader) Service {
	return &budgetPlanService{repo: repo, transactions: transactions}
}
