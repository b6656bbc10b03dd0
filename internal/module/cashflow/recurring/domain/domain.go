package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
)

// Frequency is the recurrence cadence of a template.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Template is a recurring-transaction template. Occurrence
// generation and idempotent materialization are driven by the fields
// below; see service.Materializer.
type Template struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_recurring_templates_user;column:user_id" json:"user_id"`

	Amount decimal.Decimal   `gorm:"type:numeric(14,2);not null;column:amount" json:"amount"`
	Kind   transactiondomain.Kind `gorm:"type:varchar(10);not null;column:kind" json:"kind"`
	Notes  string            `gorm:"type:text;column:notes" json:"notes,omitempty"`

	ExpenseCategoryID    *uuid.UUID `gorm:"type:uuid;column:expense_category_id" json:"expense_category_id,omitempty"`
	ExpenseSubcategoryID *uuid.UUID `gorm:"type:uuid;column:expense_subcategory_id" json:"expense_subcategory_id,omitempty"`
	TransactionTag       string     `gorm:"type:varchar(50);column:transaction_tag" json:"transaction_tag,omitempty"`

	IncomeCategoryID *uuid.UUID `gorm:"type:uuid;column:income_category_id" json:"income_category_id,omitempty"`

	Frequency   Frequency `gorm:"type:varchar(10);not null;column:frequency" json:"frequency"`
	DayOfWeek   *int      `gorm:"column:day_of_week" json:"day_of_week,omitempty"`
	DayOfMonth  *int      `gorm:"column:day_of_month" json:"day_of_month,omitempty"`

	StartDate        caldate.Date `gorm:"type:date;not null;column:start_date" json:"start_date"`
	EndDate          *caldate.Date `gorm:"type:date;column:end_date" json:"end_date,omitempty"`
	TotalOccurrences *int         `gorm:"column:total_occurrences" json:"total_occurrences,omitempty"`

	IsPaused bool `gorm:"not null;default:false;column:is_paused" json:"is_paused"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

// TableName specifies the database table name.
func (Template) TableName() string {
	return "recurring_templates"
}

// CategoryID returns the populated category side, regardless of kind.
func (t Template) CategoryID() *uuid.UUID {
	if t.Kind == transactiondomain.KindIncome {
		return t.IncomeCategoryID
	}
	return t.ExpenseCategoryID
}

// EffectiveEnd returns the template's end bound for a materialization
// window, the earlier of its own end_date and the window's end.
func (t Template) EffectiveEnd(windowEnd caldate.Date) caldate.Date {
	if t.EndDate != nil && t.EndDate.Before(windowEnd) {
		return *t.EndDate
	}
	return windowEnd
}
