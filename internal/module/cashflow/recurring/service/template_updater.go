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

// Update applies a partial change to an existing template. Kind and
// frequency are immutable; the request type carries no fields for them.
func (s *recurringService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTemplateRequest) (*domain.Template, error) {
	tmpl, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil || amount.Sign() <= 0 {
			return nil, shared.ErrValidation.WithDetails("field", "amount").WithDetails("reason", "must be a positive decimal")
		}
		tmpl.Amount = amount
	}

	if req.Notes != nil {
		tmpl.Notes = *req.Notes
	}

	if req.EndDate != nil {
		d, err := caldate.ParseDate(*req.EndDate)
		if err != nil {
			return nil, shared.ErrInvalidDateFormat
		}
		tmpl.EndDate = &d
	}

	if req.TotalOccurrences != nil {
		tmpl.TotalOccurrences = req.TotalOccurrences
	}

	switch tmpl.Frequency {
	case domain.FrequencyWeekly, domain.FrequencyBiweekly:
		if req.DayOfWeek != nil {
			if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
				return nil, shared.ErrValidation.WithDetails("field", "day_of_week").WithDetails("reason", "must be 0-6")
			}
			tmpl.DayOfWeek = req.DayOfWeek
		}
	case domain.FrequencyMonthly:
		if req.DayOfMonth != nil {
			if *req.DayOfMonth < 1 || *req.DayOfMonth > 31 {
				return nil, shared.ErrValidation.WithDetails("field", "day_of_month").WithDetails("reason", "must be 1-31")
			}
			tmpl.DayOfMonth = req.DayOfMonth
		}
	}

	if err := s.applyCategoryUpdate(ctx, tmpl, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, tmpl); err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	return tmpl, nil
}

func (s *recurringService) applyCategoryUpdate(ctx context.Context, tmpl *domain.Template, req dto.UpdateTemplateRequest) error {
	switch tmpl.Kind {
	case transactiondomain.KindExpense:
		if req.ExpenseCategoryID != nil {
			catID, err := uuid.Parse(*req.ExpenseCategoryID)
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
			tmpl.ExpenseCategoryID = &catID
		}
		if req.ExpenseSubcategoryID != nil {
			subID, err := uuid.Parse(*req.ExpenseSubcategoryID)
			if err != nil {
				return shared.ErrValidation.WithDetails("field", "expense_subcategory_id")
			}
			exists, err := s.categories.SubcategoryExists(ctx, subID)
			if err != nil {
				return shared.ErrInternal.WithError(err)
			}
			if !exists {
				return shared.ErrCategoryNotFound
			}
			tmpl.ExpenseSubcategoryID = &subID
		}
		if req.TransactionTag != nil {
			tmpl.TransactionTag = *req.TransactionTag
		}
	case transactiondomain.KindIncome:
		if req.IncomeCategoryID != nil {
			catID, err := uuid.Parse(*req.IncomeCategoryID)
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
		}
	}
	return nil
}

// SetPaused toggles the template's pause state (pause/resume).
func (s *recurringService) SetPaused(ctx context.Context, userID, id uuid.UUID, paused bool) (*domain.Template, error) {
	tmpl, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	tmpl.IsPaused = paused
	if err := s.repo.Update(ctx, tmpl); err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}
	return tmpl, nil
}
