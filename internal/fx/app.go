package fx

import (
	"context"
	"net/http"
	"time"

	"financequest/internal/config"
	"financequest/internal/database"
	"financequest/internal/middleware"

	budgetplanHandler "financequest/internal/module/cashflow/budgetplan/handler"
	categoryHandler "financequest/internal/module/reference/category/handler"
	experienceHandler "financequest/internal/module/experience/handler"
	insightsHandler "financequest/internal/module/insights/handler"
	profileHandler "financequest/internal/module/identity/profile/handler"
	recurringHandler "financequest/internal/module/cashflow/recurring/handler"
	transactionHandler "financequest/internal/module/cashflow/transaction/handler"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppModule wires migrations/seeding, route registration, and the
// HTTP server lifecycle.
var AppModule = fx.Module("app",
	fx.Invoke(
		RunMigrationsAndSeeding,
		RegisterRoutes,
		StartServer,
	),
)

// RegisterRoutes registers all API routes.
func RegisterRoutes(
	router *gin.Engine,
	profileH *profileHandler.Handler,
	categoryH *categoryHandler.Handler,
	transactionH *transactionHandler.Handler,
	recurringH *recurringHandler.Handler,
	budgetplanH *budgetplanHandler.Handler,
	insightsH *insightsHandler.Handler,
	experienceH *experienceHandler.Handler,
	authMiddleware *middleware.Middleware,
	logger *zap.Logger,
) {
	logger.Info("registering routes...")

	profileH.RegisterRoutes(router, authMiddleware)
	categoryH.RegisterRoutes(router, authMiddleware)
	transactionH.RegisterRoutes(router, authMiddleware)
	recurringH.RegisterRoutes(router, authMiddleware)
	budgetplanH.RegisterRoutes(router, authMiddleware)
	insightsH.RegisterRoutes(router, authMiddleware)
	experienceH.RegisterRoutes(router, authMiddleware)

	logger.Info("all routes registered successfully")
}

// RunMigrationsAndSeeding runs database migrations and reference-data
// seeding before the server starts accepting traffic.
func RunMigrationsAndSeeding(db *gorm.DB, logger *zap.Logger) {
	logger.Info("running database migrations...")
	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if config.IsDevelopment() {
		logger.Info("seeding reference data (development mode)...")
		seeder := database.NewSeeder(db, logger)
		if err := seeder.SeedAll(); err != nil {
			logger.Warn("seeding failed", zap.Error(err))
		}
	} else {
		logger.Info("skipping database seeding (production mode)")
	}
}

// StartServer starts the HTTP server with graceful shutdown.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server",
					zap.String("addr", server.Addr),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down HTTP server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("server forced to shutdown", zap.Error(err))
				return err
			}

			logger.Info("server gracefully stopped")
			return nil
		},
	})
}
