package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/pkg/caldate"
)

// Transaction is a single income or expense event. Exactly one
// of the category sides is populated, matching Kind; category side is
// immutable once created.
type Transaction struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_user_date;column:user_id" json:"user_id"`

	OccurredAt caldate.Date `gorm:"type:date;not null;index:idx_transactions_user_date;column:occurred_at" json:"occurred_at"`
	CreatedAt  time.Time    `gorm:"autoCreateTime;column:created_at" json:"created_at"`

	Amount decimal.Decimal `gorm:"type:numeric(14,2);not null;column:amount" json:"amount"`
	Kind   Kind            `gorm:"type:varchar(10);not null;index;column:kind" json:"kind"`
	Notes  string          `gorm:"type:text;column:notes" json:"notes,omitempty"`

	// Expense-only fields.
	ExpenseCategoryID    *uuid.UUID `gorm:"type:uuid;column:expense_category_id" json:"expense_category_id,omitempty"`
	ExpenseSubcategoryID *uuid.UUID `gorm:"type:uuid;column:expense_subcategory_id" json:"expense_subcategory_id,omitempty"`
	TransactionTag       string     `gorm:"type:varchar(50);column:transaction_tag" json:"transaction_tag,omitempty"`

	// Income-only field.
	IncomeCategoryID *uuid.UUID `gorm:"type:uuid;column:income_category_id" json:"income_category_id,omitempty"`

	// RecurringTemplateID, when set, is the template that materialized
	// this row; (recurring_template_id, occurred_at) is unique.
	RecurringTemplateID *uuid.UUID `gorm:"type:uuid;index:idx_transactions_template_occurrence,unique;column:recurring_template_id" json:"recurring_template_id,omitempty"`
}

// TableName specifies the database table name.
func (Transaction) TableName() string {
	return "transactions"
}

// CategoryID returns the populated category side, regardless of kind.
func (t Transaction) CategoryID() *uuid.UUID {
	if t.Kind == KindIncome {
		return t.IncomeCategoryID
	}
	return t.ExpenseCategoryID
}

// TodaySummary is the result of today_summary.
type TodaySummary struct {
	ExpenseTotal  decimal.Decimal `json:"expense_total"`
	ExpenseCount  int             `json:"expense_count"`
	IncomeTotal   decimal.Decimal `json:"income_total"`
	IncomeCount   int             `json:"income_count"`
	HasLoggedToday bool           `json:"has_logged_today"`
}

// CategoryAggregate is one row of aggregate_by_category.
type CategoryAggregate struct {
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Total         decimal.Decimal
	Count         int
}

// WeekAggregate is one row of aggregate_by_week. Week is
// ((day_of_month-1)/7)+1 ∈ {1..6}.
type WeekAggregate struct {
	Week  int
	Total decimal.Decimal
}

// MonthKey identifies a distinct (year, month) a user has transactions in.
type MonthKey struct {
	Year  int
	Month int
}
