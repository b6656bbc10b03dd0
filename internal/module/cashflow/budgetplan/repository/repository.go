package repository

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/budgetplan/domain"
)

// Repository defines data access methods for budget plans.
type Repository interface {
	Create(ctx context.Context, plan *domain.BudgetPlan) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BudgetPlan, error)
	Update(ctx context.Context, plan *domain.BudgetPlan) error
}
