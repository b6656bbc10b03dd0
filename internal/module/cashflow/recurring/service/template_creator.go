package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/module/cashflow/recurring/domain"
	"financequest/internal/module/cashflow/recurring/dto"
	categorydomain "financequest/internal/module/reference/category/domain"
	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

func (s *recurringService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateTemplateRequest) (*domain.Template, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, shared.ErrValidation.WithDetails("field", "amount").WithDetails("reason", "must be a positive decimal")
	}

	startDate, err := caldate.ParseDate(req.StartDate)
	if err != nil {
		return nil, shared.ErrInvalidDateFormat
	}

	var endDate *caldate.Date
	if req.EndDate != nil {
		d, err := caldate.ParseDate(*req.EndDate)
		if err != nil {
			return nil, shared.ErrInvalidDateFormat
		}
		endDate = &d
	}

	tmpl := &domain.Template{
		ID:               uuid.New(),
		UserID:           userID,
		Amount:           amount,
		Kind:             transactiondomain.Kind(req.Kind),
		Notes:            req.Notes,
		Frequency:        domain.Frequency(req.Frequency),
		StartDate:        startDate,
		EndDate:          endDate,
		TotalOccurrences: req.TotalOccurrences,
	}

	if err := s.applyFrequencyFields(tmpl, req.DayOfWeek, req.DayOfMonth); err != nil {
		return nil, err
	}

	if err := s.applyKindFields(ctx, tmpl, req.ExpenseCategoryID, req.ExpenseSubcategoryID, req.TransactionTag, req.IncomeCategoryID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, tmpl); err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	return tmpl, nil
}

// applyFrequencyFields validates the frequency/day pairing (
// day_of_week required iff weekly/biweekly, day_of_month iff monthly).
func (s *recurringService) applyFrequencyFields(tmpl *domain.Template, dayOfWeek, dayOfMonth *int) error {
	switch tmpl.Frequency {
	case domain.FrequencyWeekly, domain.FrequencyBiweekly:
		if dayOfWeek == nil || *dayOfWeek < 0 || *dayOfWeek > 6 {
			return shared.ErrValidation.WithDetails("field", "day_of_week").WithDetails("reason", "required, 0-6, for weekly/biweekly frequency")
		}
		tmpl.DayOfWeek = dayOfWeek
	case domain.FrequencyMonthly:
		if dayOfMonth == nil || *dayOfMonth < 1 || *dayOfMonth > 31 {
			return shared.ErrValidation.WithDetails("field", "day_of_month").WithDetails("reason", "required, 1-31, for monthly frequency")
		}
		tmpl.DayOfMonth = dayOfMonth
	default:
		return shared.ErrValidation.WithDetails("field", "frequency").WithDetails("reason", "must be weekly, biweekly, or monthly")
	}
	return nil
}

// applyKindFields validates and sets the kind-tagged category side,
// mirroring the transaction store's own rule.
func (s *recurringService) applyKindFields(ctx context.Context, tmpl *domain.Template, expenseCategoryID, expenseSubcategoryID *string, tag string, incomeCategoryID *string) error {
	switch tmpl.Kind {
	case transactiondomain.KindExpense:
		if expenseCategoryID == nil || tag == "" {
			return shared.ErrValidation.WithDetails("reason", "expense templates require expense_category_id and transaction_tag")
		}
		catID, err := uuid.Parse(*expenseCategoryID)
		if err != nil {
			return shared.ErrValidation.WithDetails("field", "expense_category_id")
		}
		exists, err := s.categories.CategoryExists(ctx, catID, categorydomain.KindExpense)
		if err != nil {
			return shared.ErrInternal.WithError(err)
		}
		if !exists {
			return shared.ErrCategoryNotFound
		}
		if expenseSubcategoryID != nil {
			subID, err := uuid.Parse(*expenseSubcategoryID)
			if err != nil {
				return shared.ErrValidation.WithDetails("field", "expense_subcategory_id")
			}
			subExists, err := s.categories.SubcategoryExists(ctx, subID)
			if err != nil {
				return shared.ErrInternal.WithError(err)
			}
			if !subExists {
				return shared.ErrCategoryNotFound
			}
			tmpl.ExpenseSubcategoryID = &subID
		}
		tmpl.ExpenseCategoryID = &catID
		tmpl.TransactionTag = tag

	case transactiondomain.KindIncome:
		if incomeCategoryID == nil {
			return shared.ErrValidation.WithDetails("reason", "income templates require income_category_id")
		}
		catID, err := uuid.Parse(*incomeCategoryID)
		if err != nil {
			return shared.ErrValidation.WithDetails("field", "income_category_id")
		}
		exists, err := s.categories.CategoryExists(ctx, catID, categorydomain.KindIncome)
		if err != nil {
			return shared.ErrInternal.WithError(err)
		}
		if !exists {
			return shared.ErrCategoryNotFound
		}
		tmpl.IncomeCategoryID = &catID

	default:
		return shared.ErrValidation.WithDetails("field", "kind").WithDetails("reason", "must be expense or income")
	}

	return nil
}
