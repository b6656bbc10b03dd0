package transaction

import (
	"financequest/internal/module/cashflow/transaction/handler"
	"financequest/internal/module/cashflow/transaction/repository"
	"financequest/internal/module/cashflow/transaction/service"
	budgetplanservice "financequest/internal/module/cashflow/budgetplan/service"
	recurringservice "financequest/internal/module/cashflow/recurring/service"
	insightsservice "financequest/internal/module/insights/service"

	"go.uber.org/fx"
)

// Module provides transaction module dependencies
var Module = fx.Module("transaction",
	fx.Provide(
		// Repository - provide as interface, and additionally as the
		// narrower TransactionStore the recurrence materializer needs
		// (recurring/service declares that interface; this is the only
		// place transaction imports it, to satisfy it without recurring
		// importing transaction's fx wiring).
		fx.Annotate(
			repository.NewGormRepository,
			fx.As(new(repository.Repository)),
			fx.As(new(recurringservice.TransactionStore)),
		),

		// Service - provide as interface, and additionally as the
		// narrower TransactionIncomeReader the budget plan store needs
		// to compute expected_income, and the narrower
		// TransactionAggregator the insights aggregator reads from
		// (both declare their interface in their own service package;
		// this is the only place transaction imports either).
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service)),
			fx.As(new(budgetplanservice.TransactionIncomeReader)),
			fx.As(new(insightsservice.TransactionAggregator)),
		),

		// Handler
		handler.NewHandler,
	),
)
