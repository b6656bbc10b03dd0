package repository

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/experience/domain"
)

// Repository is the append-only XP event log.
type Repository interface {
	Create(ctx context.Context, event *domain.XPEvent) error
	CreateBatch(ctx context.Context, events []*domain.XPEvent) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.XPEvent, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindStreakMilestoneEvent looks up a prior streak_milestone event whose
	// description mentions the given streak length, for idempotence.
	FindStreakMilestoneEvent(ctx context.Context, userID uuid.UUID, days int) (*domain.XPEvent, error)

	// FindFinancialGoalEvent is the repository-level counterpart to the
	// award_financial_goal_xp hook — unused until the
	// hook is activated.
	FindFinancialGoalEvent(ctx context.Context, userID uuid.UUID, year, month int) (*domain.XPEvent, error)
}
