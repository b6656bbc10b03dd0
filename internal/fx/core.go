package fx

import (
	"fmt"
	"net/http"
	"time"

	"financequest/internal/config"
	"financequest/internal/logger"
	"financequest/internal/middleware"
	"financequest/internal/shared"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CoreModule provides core application dependencies.
var CoreModule = fx.Module("core",
	fx.Provide(
		config.Load,
		NewLogger,
		NewDatabase,
		config.NewRedisClient,
		NewGinRouter,
		middleware.NewMiddleware,
	),
)

// NewLogger creates a new zap logger based on config.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("logger initialized", zap.String("level", cfg.Logging.Level), zap.String("format", cfg.Logging.Format))
	return log, nil
}

// NewDatabase creates a new database connection.
func NewDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	log.Info("connecting to database...",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Name),
	)

	dsn := cfg.Database.URL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Pass, cfg.Database.Name,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error("failed to get database instance", zap.Error(err))
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("successfully connected to database")
	return db, nil
}

// NewGinRouter creates a new Gin router with the standard middleware
// order: logger, recovery, error handler, CORS, rate limit.
func NewGinRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(middleware.NewCORS(cfg.CORS.Origins))
	r.Use(middleware.IPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	r.GET("/health", func(c *gin.Context) {
		shared.RespondWithSuccess(c, http.StatusOK, "service is healthy", gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return r
}
