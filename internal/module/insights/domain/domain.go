package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/pkg/caldate"
)

// MonthSnapshot is the full month-in-review view: spend/budget totals,
// the category and weekly breakdowns, the savings/investment trend, and
// a handful of the month's most recent expenses.
type MonthSnapshot struct {
	Key   string
	Label string

	TotalSpent     decimal.Decimal
	LoggedDays     int
	TotalDays      int
	Budget         decimal.Decimal
	LastMonthDelta float64

	Categories   []CategoryBreakdown
	Weekly       []WeekBreakdown
	Savings      SavingsBreakdown
	Transactions []RecentTransaction
}

// CategoryBreakdown is one expense category's share of a month's spend.
type CategoryBreakdown struct {
	CategoryID    uuid.UUID
	Name          string
	Color         string
	SortOrder     int
	Total         decimal.Decimal
	Percent       int
	Count         int
	Subcategories []SubcategoryBreakdown
}

// SubcategoryBreakdown is one subcategory's share within its parent
// category's total.
type SubcategoryBreakdown struct {
	SubcategoryID uuid.UUID
	Name          string
	Color         string
	SortOrder     int
	Total         decimal.Decimal
	Percent       int
	Count         int
}

// WeekBreakdown is a calendar week's expense total within the month.
type WeekBreakdown struct {
	Week  int
	Label string
	Total decimal.Decimal
}

// SavingsBreakdown tracks the two reference categories the insights
// view always reports on, regardless of how much the user logged
// against them this month.
type SavingsBreakdown struct {
	Savings     CategoryTrend
	Investments CategoryTrend
}

// CategoryTrend is a category's current-month total plus its change
// from the previous month. Delta is nil when the previous month's
// total was zero, since a percentage change against zero is undefined.
type CategoryTrend struct {
	Total decimal.Decimal
	Delta *float64
}

// RecentTransaction is a single recent expense row, trimmed to what the
// snapshot view needs.
type RecentTransaction struct {
	Amount        decimal.Decimal
	CategoryID    uuid.UUID
	SubcategoryID *uuid.UUID
	Date          caldate.Date
}

// AvailableMonth is one month the user has at least one transaction in.
type AvailableMonth struct {
	Year  int
	Month int
}
