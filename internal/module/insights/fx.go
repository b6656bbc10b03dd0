package insights

import (
	"financequest/internal/module/insights/handler"
	"financequest/internal/module/insights/service"

	"go.uber.org/fx"
)

// Module provides the insights aggregator's dependencies. Unlike the
// other cashflow modules, insights has no repository of its own — it
// composes the transaction, category, and budget-plan modules' existing
// services, narrowed to the interfaces this package declares in its own
// service subpackage (TransactionAggregator, CategoryChecker,
// BudgetPlanChecker) and satisfied by those modules' fx.go files.
var Module = fx.Module("insights",
	fx.Provide(
		service.NewSnapshotCache,
		service.NewService,
		handler.NewHandler,
	),
)
