package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/module/cashflow/transaction/dto"
	"financequest/internal/module/cashflow/transaction/repository"
	"financequest/internal/pkg/caldate"
	categoryservice "financequest/internal/module/reference/category/service"
)

// CategoryChecker is the slice of the category module this service needs
// to validate create/update payloads.
type CategoryChecker = categoryservice.Reader

// XPAwarder is the slice of the experience engine a successful create
// notifies.
type XPAwarder interface {
	AwardTransactionXP(ctx context.Context, userID uuid.UUID)
}

// Materializer is the slice of the recurrence materializer that read
// queries invoke over their window before querying the store, so any
// occurrence due in the window exists as a concrete row before it's read.
type Materializer interface {
	Materialize(ctx context.Context, userID uuid.UUID, start, end caldate.Date) error
}

// Creator handles transaction creation.
type Creator interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// Reader handles transaction reads and aggregate queries.
type Reader interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]*domain.Transaction, error)
	TodaySummary(ctx context.Context, userID uuid.UUID, today caldate.Date) (*domain.TodaySummary, error)

	AggregateByCategory(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.CategoryAggregate, error)
	AggregateByWeek(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.WeekAggregate, error)
	DistinctLoggedDays(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (int, error)
	Recent(ctx context.Context, userID uuid.UUID, start, end caldate.Date, limit int) ([]*domain.Transaction, error)
	TotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end caldate.Date) (float64, error)
	TotalIncome(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (float64, error)
	DistinctMonths(ctx context.Context, userID uuid.UUID) ([]domain.MonthKey, error)
}

// Updater handles partial updates. Kind is immutable.
type Updater interface {
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
}

// Deleter handles deletion.
type Deleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service is the composite interface for the transaction store.
type Service interface {
	Creator
	Reader
	Updater
	Deleter
}

type transactionService struct {
	repo         repository.Repository
	categories   CategoryChecker
	xp           XPAwarder
	materializer Materializer
}

// NewService creates a new transaction service.
func NewService(repo repository.Repository, categories CategoryChecker, xp XPAwarder, materializer Materializer) Service {
	return &transactionService{repo: repo, categories: categories, xp: xp, materializer: materializer}
}
