package budgetplan

import (
	"financequest/internal/module/cashflow/budgetplan/handler"
	"financequest/internal/module/cashflow/budgetplan/repository"
	"financequest/internal/module/cashflow/budgetplan/service"

	insightsservice "financequest/internal/module/insights/service"

	"go.uber.org/fx"
)

// Module provides budget plan module dependencies.
var Module = fx.Module("budgetplan",
	fx.Provide(
		fx.Annotate(
			repository.NewGormRepository,
			fx.As(new(repository.Repository)),
		),

		// Service - provide as interface, and additionally as the
		// narrower BudgetPlanChecker the insights aggregator needs to
		// confirm a user has a plan before building a snapshot
		// (insights/service declares that interface; this is the only
		// place budgetplan imports it).
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service)),
			fx.As(new(insightsservice.BudgetPlanChecker)),
		),

		handler.NewHandler,
	),
)
