package fx

import (
	"financequest/internal/config"

	"financequest/internal/module/experience"
	"financequest/internal/module/identity/authtoken"
	"financequest/internal/module/identity/profile"
	"financequest/internal/module/insights"
	"financequest/internal/module/reference/category"
	"financequest/internal/module/cashflow/budgetplan"
	"financequest/internal/module/cashflow/recurring"
	"financequest/internal/module/cashflow/transaction"

	"go.uber.org/fx"
)

// Application creates the main FX application with all modules.
func Application() *fx.App {
	options := []fx.Option{
		CoreModule,

		authtoken.Module,
		profile.Module,
		category.Module,
		transaction.Module,
		recurring.Module,
		budgetplan.Module,
		insights.Module,
		experience.Module,

		AppModule,
	}

	if config.IsProduction() {
		options = append(options, fx.NopLogger)
	}

	return fx.New(options...)
}
