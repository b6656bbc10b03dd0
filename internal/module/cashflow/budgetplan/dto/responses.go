package dto

import "time"

// BudgetPlanResponse is the budget plan's wire shape. ExpectedIncome is
// always computed fresh over the queried month, never stored.
type BudgetPlanResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	ExpectedIncome string  `json:"expected_income"`
	SavingsGoal    *string `json:"savings_goal,omitempty"`
	InvestmentGoal *string `json:"investment_goal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
