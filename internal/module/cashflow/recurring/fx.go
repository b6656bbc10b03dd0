package recurring

import (
	"financequest/internal/module/cashflow/recurring/handler"
	"financequest/internal/module/cashflow/recurring/repository"
	"financequest/internal/module/cashflow/recurring/service"

	transactionservice "financequest/internal/module/cashflow/transaction/service"

	"go.uber.org/fx"
)

// Module provides the recurrence materializer's dependencies.
var Module = fx.Module("recurring",
	fx.Provide(
		fx.Annotate(
			repository.NewGormRepository,
			fx.As(new(repository.Repository)),
		),

		// Service is also exposed as transaction's Materializer so list/
		// today-summary reads can materialize their window without
		// transaction importing recurring directly.
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service), new(transactionservice.Materializer)),
		),

		handler.NewHandler,
	),
)
