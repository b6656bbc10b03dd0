package category

import (
	"financequest/internal/module/reference/category/handler"
	"financequest/internal/module/reference/category/repository"
	"financequest/internal/module/reference/category/service"

	"go.uber.org/fx"
)

// Module provides category module dependencies
var Module = fx.Module("category",
	fx.Provide(
		// Repository - provide as interface
		fx.Annotate(
			repository.NewGormRepository,
			fx.As(new(repository.Repository)),
		),

		// Service - provide as both the composite interface and the
		// narrower Reader interface (consumed by the transaction module
		// for category/subcategory existence checks).
		fx.Annotate(
			service.NewService,
			fx.As(new(service.Service), new(service.Reader)),
		),

		// Handler
		handler.NewHandler,
	),
)
