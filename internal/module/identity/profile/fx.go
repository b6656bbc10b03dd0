package profile

import (
	"financequest/internal/module/identity/profile/handler"
	"financequest/internal/module/identity/profile/repository"
	"financequest/internal/module/identity/profile/service"

	"go.uber.org/fx"
)

// Module provides profile module dependencies.
var Module = fx.Module("profile",
	fx.Provide(
		fx.Annotate(
			repository.New,
			fx.As(new(repository.Repository)),
		),
		service.NewService,
		handler.NewHandler,
	),
)
