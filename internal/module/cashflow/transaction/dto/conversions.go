package dto

import (
	"financequest/internal/module/cashflow/transaction/domain"
)

// ToTransactionResponse converts a domain.Transaction to its wire shape.
func ToTransactionResponse(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	resp := &TransactionResponse{
		ID:             t.ID.String(),
		UserID:         t.UserID.String(),
		OccurredAt:     t.OccurredAt.String(),
		CreatedAt:      t.CreatedAt,
		Amount:         t.Amount.StringFixed(2),
		Kind:           string(t.Kind),
		Notes:          t.Notes,
		TransactionTag: t.TransactionTag,
	}

	if t.ExpenseCategoryID != nil {
		id := t.ExpenseCategoryID.String()
		resp.ExpenseCategoryID = &id
	}
	if t.ExpenseSubcategoryID != nil {
		id := t.ExpenseSubcategoryID.String()
		resp.ExpenseSubcategoryID = &id
	}
	if t.IncomeCategoryID != nil {
		id := t.IncomeCategoryID.String()
		resp.IncomeCategoryID = &id
	}
	if t.RecurringTemplateID != nil {
		id := t.RecurringTemplateID.String()
		resp.RecurringTemplateID = &id
	}

	return resp
}

// ToTransactionListResponse converts a slice of transactions.
func ToTransactionListResponse(transactions []*domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}
	for _, t := range transactions {
		if tr := ToTransactionResponse(t); tr != nil {
			resp.Transactions = append(resp.Transactions, *tr)
		}
	}
	resp.Count = len(resp.Transactions)
	return resp
}

// ToTodaySummaryResponse converts domain.TodaySummary to its wire shape.
func ToTodaySummaryResponse(s *domain.TodaySummary) TodaySummaryResponse {
	return TodaySummaryResponse{
		ExpenseTotal:   s.ExpenseTotal.StringFixed(2),
		ExpenseCount:   s.ExpenseCount,
		IncomeTotal:    s.IncomeTotal.StringFixed(2),
		IncomeCount:    s.IncomeCount,
		HasLoggedToday: s.HasLoggedToday,
	}
}
