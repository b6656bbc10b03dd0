package service

import (
	"context"

	"github.com/google/uuid"
)

func (s *transactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
