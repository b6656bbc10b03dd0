package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/recurring/domain"
)

func (s *recurringService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Template, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *recurringService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error) {
	return s.repo.List(ctx, userID)
}
