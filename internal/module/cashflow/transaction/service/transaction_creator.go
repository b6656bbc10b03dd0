package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	categorydomain "financequest/internal/module/reference/category/domain"
	"financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/module/cashflow/transaction/dto"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

func (s *transactionService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	occurredAt, err := caldate.ParseDate(req.OccurredAt)
	if err != nil {
		return nil, shared.ErrInvalidDateFormat
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, shared.ErrValidation.WithDetails("field", "amount").WithDetails("reason", "must be a positive decimal")
	}

	txn := &domain.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		OccurredAt: occurredAt,
		Amount:     amount,
		Kind:       domain.Kind(req.Kind),
		Notes:      req.Notes,
	}

	if err := s.applyKindFields(ctx, txn, req.ExpenseCategoryID, req.ExpenseSubcategoryID, req.TransactionTag, req.IncomeCategoryID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	s.xp.AwardTransactionXP(ctx, userID)

	return txn, nil
}

// applyKindFields validates and sets the kind-tagged category side
// (exactly one side populated, matching Kind).
func (s *transactionService) applyKindFields(ctx context.Context, txn *domain.Transaction, expenseCategoryID, expenseSubcategoryID *string, tag string, incomeCategoryID *string) error {
	switch txn.Kind {
	case domain.KindExpense:
		if expenseCategoryID == nil || tag == "" {
			return shared.ErrValidation.WithDetails("reason", "expense transactions require expense_category_id and transaction_tag")
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
			txn.ExpenseSubcategoryID = &subID
		}
		txn.ExpenseCategoryID = &catID
		txn.TransactionTag = tag

	case domain.KindIncome:
		if incomeCategoryID == nil {
			return shared.ErrValidation.WithDetails("reason", "income transactions require income_category_id")
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
		txn.IncomeCategoryID = &catID

	default:
		return shared.ErrValidation.WithDetails("field", "kind").WithDetails("reason", "must be expense or income")
	}

	return nil
}

var errKindImmutable = errors.New("kind is immutable")
