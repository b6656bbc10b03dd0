package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	budgetplandomain "financequest/internal/module/cashflow/budgetplan/domain"
	categoryservice "financequest/internal/module/reference/category/service"
	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/module/insights/domain"
	"financequest/internal/pkg/caldate"
)

// TransactionAggregator is the slice of the transaction store the
// insights aggregator reads from. Declared here, in the consumer, and
// satisfied by the transaction module's service without either package
// importing the other's fx wiring.
type TransactionAggregator interface {
	AggregateByCategory(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]transactiondomain.CategoryAggregate, error)
	AggregateByWeek(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]transactiondomain.WeekAggregate, error)
	DistinctLoggedDays(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (int, error)
	Recent(ctx context.Context, userID uuid.UUID, start, end caldate.Date, limit int) ([]*transactiondomain.Transaction, error)
	TotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end caldate.Date) (float64, error)
	TotalIncome(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (float64, error)
	DistinctMonths(ctx context.Context, userID uuid.UUID) ([]transactiondomain.MonthKey, error)
}

// CategoryChecker is the slice of the category module the insights
// aggregator needs for category/subcategory names, colors, and order.
type CategoryChecker = categoryservice.Reader

// BudgetPlanChecker is the slice of the budget plan store the insights
// aggregator needs to confirm a user has a plan before building a
// snapshot for them.
type BudgetPlanChecker interface {
	Get(ctx context.Context, userID uuid.UUID, year, month int) (*budgetplandomain.BudgetPlan, decimal.Decimal, error)
}

// Service is the composite interface for the insights aggregator.
type Service interface {
	MonthSnapshot(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthSnapshot, error)
	AvailableMonths(ctx context.Context, userID uuid.UUID) ([]domain.AvailableMonth, error)
}

type insightsService struct {
	transactions TransactionAggregator
	categories   CategoryChecker
	budgetPlans  BudgetPlanChecker
	cache        *SnapshotCache
	logger       *zap.Logger
}

// NewService creates a new insights aggregator.
func NewService(
	transactions TransactionAggregator,
	categories CategoryChecker,
	budgetPlans BudgetPlanChecker,
	cache *SnapshotCache,
	logger *zap.Logger,
) Service {
	return &insightsService{
		transactions: transactions,
		categories:   categories,
		budgetPlans:  budgetPlans,
		cache:        cache,
		logger:       logger,
	}
}
