package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
)

func (s *transactionService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *transactionService) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]*domain.Transaction, error) {
	if err := s.materializer.Materialize(ctx, userID, start, end); err != nil {
		return nil, err
	}
	return s.repo.ListByDateRange(ctx, userID, start, end)
}

func (s *transactionService) TodaySummary(ctx context.Context, userID uuid.UUID, today caldate.Date) (*domain.TodaySummary, error) {
	if err := s.materializer.Materialize(ctx, userID, today, today); err != nil {
		return nil, err
	}
	return s.repo.TodaySummary(ctx, userID, today)
}

func (s *transactionService) AggregateByCategory(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.CategoryAggregate, error) {
	return s.repo.AggregateByCategory(ctx, userID, start, end)
}

func (s *transactionService) AggregateByWeek(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.WeekAggregate, error) {
	return s.repo.AggregateByWeek(ctx, userID, start, end)
}

func (s *transactionService) DistinctLoggedDays(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (int, error) {
	return s.repo.DistinctLoggedDays(ctx, userID, start, end)
}

func (s *transactionService) Recent(ctx context.Context, userID uuid.UUID, start, end caldate.Date, limit int) ([]*domain.Transaction, error) {
	return s.repo.Recent(ctx, userID, start, end, limit)
}

func (s *transactionService) TotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end caldate.Date) (float64, error) {
	return s.repo.TotalByCategory(ctx, userID, categoryID, start, end)
}

func (s *transactionService) TotalIncome(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (float64, error) {
	return s.repo.TotalIncome(ctx, userID, start, end)
}

func (s *transactionService) DistinctMonths(ctx context.Context, userID uuid.UUID) ([]domain.MonthKey, error) {
	return s.repo.DistinctMonths(ctx, userID)
}
