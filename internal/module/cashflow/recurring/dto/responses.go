package dto

import "time"

// TemplateResponse represents a recurring template in API responses.
type TemplateResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Amount string `json:"amount"`
	Kind   string `json:"kind"`
	Notes  string `json:"notes,omitempty"`

	ExpenseCategoryID    *string `json:"expense_category_id,omitempty"`
	ExpenseSubcategoryID *string `json:"expense_subcategory_id,omitempty"`
	TransactionTag       string  `json:"transaction_tag,omitempty"`

	IncomeCategoryID *string `json:"income_category_id,omitempty"`

	Frequency        string  `json:"frequency"`
	DayOfWeek        *int    `json:"day_of_week,omitempty"`
	DayOfMonth       *int    `json:"day_of_month,omitempty"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date,omitempty"`
	TotalOccurrences *int    `json:"total_occurrences,omitempty"`
	IsPaused         bool    `json:"is_paused"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateListResponse wraps a list of templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Count     int                `json:"count"`
}
