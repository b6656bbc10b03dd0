package dto

import "time"

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	OccurredAt string    `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`

	Amount string `json:"amount"`
	Kind   string `json:"kind"`
	Notes  string `json:"notes,omitempty"`

	ExpenseCategoryID    *string `json:"expense_category_id,omitempty"`
	ExpenseSubcategoryID *string `json:"expense_subcategory_id,omitempty"`
	TransactionTag       string  `json:"transaction_tag,omitempty"`

	IncomeCategoryID *string `json:"income_category_id,omitempty"`

	RecurringTemplateID *string `json:"recurring_template_id,omitempty"`
}

// TransactionListResponse wraps a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// TodaySummaryResponse is today_summary's wire shape.
type TodaySummaryResponse struct {
	ExpenseTotal   string `json:"expense_total"`
	ExpenseCount   int    `json:"expense_count"`
	IncomeTotal    string `json:"income_total"`
	IncomeCount    int    `json:"income_count"`
	HasLoggedToday bool   `json:"has_logged_today"`
}
