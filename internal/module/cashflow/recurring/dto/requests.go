package dto

// CreateTemplateRequest is the payload for creating a recurring template.
// Exactly one category side must be populated, matching Kind;
// day_of_week is required iff frequency is weekly/biweekly, day_of_month
// iff frequency is monthly.
type CreateTemplateRequest struct {
	Amount string `json:"amount" binding:"required"`
	Kind   string `json:"kind" binding:"required,oneof=expense income"`
	Notes  string `json:"notes,omitempty"`

	ExpenseCategoryID    *string `json:"expense_category_id,omitempty" binding:"omitempty,uuid"`
	ExpenseSubcategoryID *string `json:"expense_subcategory_id,omitempty" binding:"omitempty,uuid"`
	TransactionTag       string  `json:"transaction_tag,omitempty"`

	IncomeCategoryID *string `json:"income_category_id,omitempty" binding:"omitempty,uuid"`

	Frequency        string `json:"frequency" binding:"required,oneof=weekly biweekly monthly"`
	DayOfWeek        *int   `json:"day_of_week,omitempty"`
	DayOfMonth       *int   `json:"day_of_month,omitempty"`
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          *string `json:"end_date,omitempty"`
	TotalOccurrences *int   `json:"total_occurrences,omitempty"`
}

// UpdateTemplateRequest is a partial update. Kind and frequency are
// immutable, so the request carries no fields for them.
type UpdateTemplateRequest struct {
	Amount *string `json:"amount,omitempty"`
	Notes  *string `json:"notes,omitempty"`

	ExpenseCategoryID    *string `json:"expense_category_id,omitempty" binding:"omitempty,uuid"`
	ExpenseSubcategoryID *string `json:"expense_subcategory_id,omitempty" binding:"omitempty,uuid"`
	TransactionTag       *string `json:"transaction_tag,omitempty"`

	IncomeCategoryID *string `json:"income_category_id,omitempty" binding:"omitempty,uuid"`

	DayOfWeek        *int    `json:"day_of_week,omitempty"`
	DayOfMonth       *int    `json:"day_of_month,omitempty"`
	EndDate          *string `json:"end_date,omitempty"`
	TotalOccurrences *int    `json:"total_occurrences,omitempty"`
}

// MaterializeQuery is the materialization window query.
type MaterializeQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
