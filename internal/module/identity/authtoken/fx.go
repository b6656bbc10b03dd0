package authtoken

import (
	"financequest/internal/config"
	"financequest/internal/module/identity/authtoken/service"

	"go.uber.org/fx"
)

// Module provides the bearer-token issuer/validator.
var Module = fx.Module("authtoken",
	fx.Provide(
		func(cfg *config.Config) service.Service {
			return service.NewService(cfg.Auth.JWTSecret)
		},
	),
)
