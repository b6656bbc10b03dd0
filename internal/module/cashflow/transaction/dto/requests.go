package dto

// CreateTransactionRequest is the kind-tagged payload for creating a
// transaction. Exactly one category side must be populated,
// matching Kind.
type CreateTransactionRequest struct {
	OccurredAt string `json:"occurred_at" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Kind       string `json:"kind" binding:"required,oneof=expense income"`
	Notes      string `json:"notes,omitempty"`

	ExpenseCategoryID    *string `json:"expense_category_id,omitempty" binding:"omitempty,uuid"`
	ExpenseSubcategoryID *string `json:"expense_subcategory_id,omitempty" binding:"omitempty,uuid"`
	TransactionTag       string  `json:"transaction_tag,omitempty"`

	IncomeCategoryID *string `json:"income_category_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest is a partial update. Kind is immutable —
// present only so the handler can reject an attempt to change it.
type UpdateTransactionRequest struct {
	OccurredAt *string `json:"occurred_at,omitempty"`
	Amount     *string `json:"amount,omitempty"`
	Kind       *string `json:"kind,omitempty" binding:"omitempty,oneof=expense income"`
	Notes      *string `json:"notes,omitempty"`

	ExpenseCategoryID    *string `json:"expense_category_id,omitempty" binding:"omitempty,uuid"`
	ExpenseSubcategoryID *string `json:"expense_subcategory_id,omitempty" binding:"omitempty,uuid"`
	TransactionTag       *string `json:"transaction_tag,omitempty"`

	IncomeCategoryID *string `json:"income_category_id,omitempty" binding:"omitempty,uuid"`
}

// ListTransactionsQuery is the list_by_date_range query.
type ListTransactionsQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
