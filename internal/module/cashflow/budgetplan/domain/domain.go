package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPlan maps to the budget_plans table. At most one row per user;
// expected_income is never stored here — it's computed on read from the
// transaction store over a caller-supplied month.
type BudgetPlan struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`

	SavingsGoal    *decimal.Decimal `gorm:"type:numeric(12,2);column:savings_goal" json:"savings_goal,omitempty"`
	InvestmentGoal *decimal.Decimal `gorm:"type:numeric(12,2);column:investment_goal" json:"investment_goal,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

// TableName matches the database table.
func (BudgetPlan) TableName() string {
	return "budget_plans"
}
