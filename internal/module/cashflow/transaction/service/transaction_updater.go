package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/module/cashflow/transaction/dto"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

func (s *transactionService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Kind != nil && domain.Kind(*req.Kind) != txn.Kind {
		return nil, shared.ErrValidation.WithDetails("field", "kind").WithDetails("reason", errKindImmutable.Error())
	}

	if req.OccurredAt != nil {
		occurredAt, err := caldate.ParseDate(*req.OccurredAt)
		if err != nil {
			return nil, shared.ErrInvalidDateFormat
		}
		txn.OccurredAt = occurredAt
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil || amount.Sign() <= 0 {
			return nil, shared.ErrValidation.WithDetails("field", "amount").WithDetails("reason", "must be a positive decimal")
		}
		txn.Amount = amount
	}

	if req.Notes != nil {
		txn.Notes = *req.Notes
	}

	if req.ExpenseCategoryID != nil || req.IncomeCategoryID != nil || req.TransactionTag != nil {
		tag := txn.TransactionTag
		if req.TransactionTag != nil {
			tag = *req.TransactionTag
		}
		if err := s.applyKindFields(ctx, txn, coalesce(req.ExpenseCategoryID, txn.ExpenseCategoryID), coalesce(req.ExpenseSubcategoryID, txn.ExpenseSubcategoryID), tag, coalesce(req.IncomeCategoryID, txn.IncomeCategoryID)); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, txn); err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}
	return txn, nil
}

// coalesce prefers an explicit request override; falls back to the
// existing stored uuid pointer rendered as a string pointer.
func coalesce(override *string, existing *uuid.UUID) *string {
	if override != nil {
		return override
	}
	if existing == nil {
		return nil
	}
	s := existing.String()
	return &s
}
