package repository

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
)

// Repository defines transaction store data access operations,
// all implicitly scoped to a user id for authorization.
type Repository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error

	// Get returns nothing if the row does not belong to userID — no
	// distinction between missing and unauthorized, to avoid enumeration.
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error)

	Update(ctx context.Context, transaction *domain.Transaction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// ListByDateRange returns transactions ordered by occurred_at desc,
	// tie-broken by created_at desc.
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]*domain.Transaction, error)

	TodaySummary(ctx context.Context, userID uuid.UUID, today caldate.Date) (*domain.TodaySummary, error)

	AggregateByCategory(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.CategoryAggregate, error)
	AggregateByWeek(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.WeekAggregate, error)
	DistinctLoggedDays(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (int, error)
	Recent(ctx context.Context, userID uuid.UUID, start, end caldate.Date, limit int) ([]*domain.Transaction, error)
	TotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end caldate.Date) (float64, error)
	TotalIncome(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (float64, error)
	DistinctMonths(ctx context.Context, userID uuid.UUID) ([]domain.MonthKey, error)

	// ExistsByTemplateOccurrence reports whether a row already exists for
	// (recurringTemplateID, occurredAt) — used by the materializer's
	// idempotent insertion.
	ExistsByTemplateOccurrence(ctx context.Context, templateID uuid.UUID, occurredAt caldate.Date) (bool, error)

	// DetachTemplate clears recurring_template_id on every row produced
	// by templateID, leaving the materialized rows in place (
	// deleting a template sets recurring_template_id to null on past rows).
	DetachTemplate(ctx context.Context, templateID uuid.UUID) error
}
