package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/module/cashflow/budgetplan/domain"
	"financequest/internal/module/cashflow/budgetplan/dto"
	"financequest/internal/shared"
)

func (s *budgetPlanService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetPlanRequest, year, month int) (*domain.BudgetPlan, decimal.Decimal, error) {
	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, decimal.Zero, shared.ErrAlreadyExists.WithDetails("reason", "user already has a budget plan")
	} else if err != shared.ErrBudgetPlanNotFound {
		return nil, decimal.Zero, shared.ErrInternal.WithError(err)
	}

	savingsGoal, err := parseGoal(req.SavingsGoal, "savings_goal")
	if err != nil {
		return nil, decimal.Zero, err
	}
	investmentGoal, err := parseGoal(req.InvestmentGoal, "investment_goal")
	if err != nil {
		return nil, decimal.Zero, err
	}

	plan := &domain.BudgetPlan{
		ID:             uuid.New(),
		UserID:         userID,
		SavingsGoal:    savingsGoal,
		InvestmentGoal: investmentGoal,
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, decimal.Zero, shared.ErrInternal.WithError(err)
	}

	income, err := s.expectedIncome(ctx, userID, year, month)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return plan, income, nil
}

// parseGoal validates an optional goal amount is a non-negative decimal.
func parseGoal(raw *string, field string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	amount, err := decimal.NewFromString(*raw)
	if err != nil || amount.IsNegative() {
		return nil, shared.ErrValidation.WithDetails("field", field).WithDetails("reason", "must be a non-negative decimal")
	}
	return &amount, nil
}
