// Package service implements the experience engine: the state machine
// over a profile's gamification counters plus the append-only XP event
// log.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"financequest/internal/module/experience/domain"
	"financequest/internal/module/experience/repository"
	profiledomain "financequest/internal/module/identity/profile/domain"
	profilerepo "financequest/internal/module/identity/profile/repository"
)

// profileStore is the slice of the profile repository the experience
// engine reads and mutates during check-in and transaction-XP
// accounting. Declared here, in the consumer, so tests can substitute a
// mock without a real database.
type profileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*profiledomain.UserProfile, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*profiledomain.UserProfile, error)
	Update(ctx context.Context, profile *profiledomain.UserProfile) error
}

// profileStoreFactory scopes a profileStore to a *gorm.DB — the engine
// calls it once per transaction so reads and writes inside CheckIn and
// AwardTransactionXP run against the transaction handle, not the pool.
type profileStoreFactory func(db *gorm.DB) profileStore

// eventRepoFactory is the repository.Repository counterpart of
// profileStoreFactory, scoping the XP event log to a transaction.
type eventRepoFactory func(db *gorm.DB) repository.Repository

// Service is the composite interface for the experience engine.
type Service interface {
	Status(ctx context.Context, userID uuid.UUID) (*profiledomain.UserProfile, error)
	CheckIn(ctx context.Context, userID uuid.UUID) (*domain.CheckInResult, error)
	// AwardTransactionXP must never surface an error to the caller — the
	// transaction write it follows must succeed regardless of whether XP
	// accounting fails; failures are caught and logged.
	AwardTransactionXP(ctx context.Context, userID uuid.UUID)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.XPEvent, int64, error)
	Milestones(ctx context.Context, userID uuid.UUID) ([]domain.MilestoneProgress, error)
	// AwardFinancialGoalXP is a disabled hook — returns an empty list until
	// product intent for goal-linked XP is clarified.
	AwardFinancialGoalXP(ctx context.Context, userID uuid.UUID, year, month int) ([]*domain.XPEvent, error)
}

type engine struct {
	db           *gorm.DB
	events       repository.Repository
	logger       *zap.Logger
	profiles     profileStoreFactory
	eventRepoFor eventRepoFactory
}

// NewService constructs the experience engine.
func NewService(db *gorm.DB, events repository.Repository, logger *zap.Logger) Service {
	return &engine{
		db:     db,
		events: events,
		logger: logger,
		profiles: func(db *gorm.DB) profileStore {
			return profilerepo.New(db)
		},
		eventRepoFor: repository.NewGormRepository,
	}
}

func (e *engine) Status(ctx context.Context, userID uuid.UUID) (*profiledomain.UserProfile, error) {
	return e.profiles(e.db).GetByUserID(ctx, userID)
}

func (e *engine) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.XPEvent, int64, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	events, err := e.events.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := e.events.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (e *engine) Milestones(ctx context.Context, userID uuid.UUID) ([]domain.MilestoneProgress, error) {
	profile, err := e.profiles(e.db).GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := make([]domain.MilestoneProgress, 0, len(domain.StreakMilestones))
	for _, m := range domain.StreakMilestones {
		achieved := profile.CurrentStreak >= m.Days
		entry := domain.MilestoneProgress{
			Days:     m.Days,
			XPReward: m.XPReward,
		}

		event, err := e.events.FindStreakMilestoneEvent(ctx, userID, m.Days)
		if err != nil {
			return nil, err
		}
		if event != nil {
			entry.Achieved = true
			createdAt := event.CreatedAt
			entry.AchievedAt = &createdAt
		} else if achieved {
			// Streak has reached this length but no milestone event exists
			// yet (e.g. seeded data) — still reported as not achieved, days
			// remaining 0, matching the log as the source of truth.
			entry.DaysRemaining = 0
		} else {
			entry.DaysRemaining = m.Days - profile.CurrentStreak
			if entry.DaysRemaining < 0 {
				entry.DaysRemaining = 0
			}
		}
		progress = append(progress, entry)
	}
	return progress, nil
}

// AwardFinancialGoalXP is disabled — see the Service doc comment.
func (e *engine) AwardFinancialGoalXP(ctx context.Context, userID uuid.UUID, year, month int) ([]*domain.XPEvent, error) {
	return []*domain.XPEvent{}, nil
}
