package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"financequest/internal/module/insights/domain"
	"financequest/internal/shared"
)

// AvailableMonths returns the months the user has at least one
// transaction in, most recent first.
func (s *insightsService) AvailableMonths(ctx context.Context, userID uuid.UUID) ([]domain.AvailableMonth, error) {
	months, err := s.transactions.DistinctMonths(ctx, userID)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	available := make([]domain.AvailableMonth, len(months))
	for i, m := range months {
		available[i] = domain.AvailableMonth{Year: m.Year, Month: m.Month}
	}

	sort.Slice(available, func(a, b int) bool {
		if available[a].Year != available[b].Year {
			return available[a].Year > available[b].Year
		}
		return available[a].Month > available[b].Month
	})

	return available, nil
}
