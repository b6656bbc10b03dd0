package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/module/cashflow/budgetplan/domain"
	"financequest/internal/module/cashflow/budgetplan/dto"
	"financequest/internal/shared"
)

func (s *budgetPlanService) Update(ctx context.Context, userID uuid.UUID, req dto.UpdateBudgetPlanRequest, year, month int) (*domain.BudgetPlan, decimal.Decimal, error) {
	plan, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	if req.SavingsGoal != nil {
		goal, err := parseGoal(req.SavingsGoal, "savings_goal")
		if err != nil {
			return nil, decimal.Zero, err
		}
		plan.SavingsGoal = goal
	}
	if req.InvestmentGoal != nil {
		goal, err := parseGoal(req.InvestmentGoal, "investment_goal")
		if err != nil {
			return nil, decimal.Zero, err
		}
		plan.InvestmentGoal = goal
	}

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, decimal.Zero, shared.ErrInternal.WithError(err)
	}

	income, err := s.expectedIncome(ctx, userID, year, month)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return plan, income, nil
}
