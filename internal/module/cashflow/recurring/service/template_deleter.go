package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/shared"
)

// Delete removes a template and detaches (not deletes) any transaction
// rows it already materialized.
func (s *recurringService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tmpl, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	if err := s.transactions.DetachTemplate(ctx, tmpl.ID); err != nil {
		return shared.ErrInternal.WithError(err)
	}

	return nil
}
