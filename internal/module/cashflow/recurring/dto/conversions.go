package dto

import (
	"financequest/internal/module/cashflow/recurring/domain"
)

// ToTemplateResponse converts a domain template to its wire shape.
func ToTemplateResponse(t *domain.Template) TemplateResponse {
	resp := TemplateResponse{
		ID:               t.ID.String(),
		UserID:           t.UserID.String(),
		Amount:           t.Amount.StringFixed(2),
		Kind:             string(t.Kind),
		Notes:            t.Notes,
		TransactionTag:   t.TransactionTag,
		Frequency:        string(t.Frequency),
		DayOfWeek:        t.DayOfWeek,
		DayOfMonth:       t.DayOfMonth,
		StartDate:        t.StartDate.String(),
		TotalOccurrences: t.TotalOccurrences,
		IsPaused:         t.IsPaused,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
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
	if t.EndDate != nil {
		end := t.EndDate.String()
		resp.EndDate = &end
	}
	return resp
}

// ToTemplateListResponse converts a slice of domain templates.
func ToTemplateListResponse(templates []*domain.Template) TemplateListResponse {
	responses := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, ToTemplateResponse(t))
	}
	return TemplateListResponse{Templates: responses, Count: len(responses)}
}
