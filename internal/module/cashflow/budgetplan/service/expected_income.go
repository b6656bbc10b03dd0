package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

// expectedIncome sums the user's income transactions over the given
// month. It is never stored on the plan — every read recomputes it.
func (s *budgetPlanService) expectedIncome(ctx context.Context, userID uuid.UUID, year, month int) (decimal.Decimal, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return decimal.Zero, shared.ErrInsightsValidation
	}

	start, end := caldate.MonthBounds(year, month)
	total, err := s.transactions.TotalIncome(ctx, userID, start, end)
	if err != nil {
		return decimal.Zero, shared.ErrInternal.WithError(err)
	}

	return decimal.NewFromFloat(total), nil
}
