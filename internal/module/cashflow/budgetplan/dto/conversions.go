package dto

import (
	"github.com/shopspring/decimal"

	"financequest/internal/module/cashflow/budgetplan/domain"
)

// ToBudgetPlanResponse converts a domain.BudgetPlan and its freshly
// computed expected income to the wire shape.
func ToBudgetPlanResponse(p *domain.BudgetPlan, expectedIncome decimal.Decimal) BudgetPlanResponse {
	resp := BudgetPlanResponse{
		ID:             p.ID.String(),
		UserID:         p.UserID.String(),
		ExpectedIncome: expectedIncome.StringFixed(2),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if p.SavingsGoal != nil {
		s := p.SavingsGoal.StringFixed(2)
		resp.SavingsGoal = &s
	}
	if p.InvestmentGoal != nil {
		s := p.InvestmentGoal.StringFixed(2)
		resp.InvestmentGoal = &s
	}

	return resp
}
