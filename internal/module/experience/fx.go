package experience

import (
	"financequest/internal/module/experience/handler"
	"financequest/internal/module/experience/repository"
	"financequest/internal/module/experience/service"

	transactionservice "financequest/internal/module/cashflow/transaction/service"

	"go.uber.org/fx"
)

// Module provides the experience engine's dependencies.
var Module = fx.Module("experience",
	fx.Provide(
		fx.Annotate(
			repository.NewGormRepository,
			fx.As(new(repository.Repository)),
		),

		// Service is also exposed as transaction's XPAwarder so transaction
		// creates can notify the engine without importing it directly.
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service), new(transactionservice.XPAwarder)),
		),

		handler.NewHandler,
	),
)
