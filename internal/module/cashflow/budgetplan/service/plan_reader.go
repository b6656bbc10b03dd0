package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/module/cashflow/budgetplan/domain"
)

func (s *budgetPlanService) Get(ctx context.Context, userID uuid.UUID, year, month int) (*domain.BudgetPlan, decimal.Decimal, error) {
	plan, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	income, err := s.expectedIncome(ctx, userID, year, month)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return plan, income, nil
}
