package database

import (
	"fmt"

	experiencedomain "financequest/internal/module/experience/domain"
	profiledomain "financequest/internal/module/identity/profile/domain"
	categorydomain "financequest/internal/module/reference/category/domain"
	budgetplandomain "financequest/internal/module/cashflow/budgetplan/domain"
	recurringdomain "financequest/internal/module/cashflow/recurring/domain"
	transactiondomain "financequest/internal/module/cashflow/transaction/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate runs automatic database migrations for all entities.
// Migration order respects foreign key dependencies.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")

	if err := enableUUIDExtension(db, log); err != nil {
		log.Error("failed to enable PostgreSQL extensions", zap.Error(err))
		return fmt.Errorf("failed to enable PostgreSQL extensions: %w", err)
	}

	entities := []interface{}{
		// 1. Independent tables (no user foreign key).
		&categorydomain.Category{},
		&categorydomain.Subcategory{},

		// 2. Tables keyed by user id (external identity, no local FK).
		&profiledomain.UserProfile{},
		&recurringdomain.Template{},
		&transactiondomain.Transaction{},
		&budgetplandomain.BudgetPlan{},
		&experiencedomain.XPEvent{},
	}

	log.Info("migrating entities", zap.Int("entity_count", len(entities)))

	if err := db.AutoMigrate(entities...); err != nil {
		log.Error("auto migration failed", zap.Error(err))
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Info("database migrations completed successfully",
		zap.Strings("tables", []string{
			"categories",
			"subcategories",
			"user_profiles",
			"recurring_templates",
			"transactions",
			"budget_plans",
			"xp_events",
		}),
	)

	return nil
}

// enableUUIDExtension enables UUID generation extensions for PostgreSQL.
func enableUUIDExtension(db *gorm.DB, log *zap.Logger) error {
	log.Info("enabling required PostgreSQL extensions...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		log.Warn("pgcrypto extension not available, relying on built-in gen_random_uuid()", zap.Error(err))
	} else {
		log.Info("pgcrypto extension enabled successfully")
	}

	return nil
}

// DropAllTables drops all tables. WARNING: this deletes all data.
func DropAllTables(db *gorm.DB, log *zap.Logger) error {
	log.Warn("dropping all tables...")

	entities := []interface{}{
		&experiencedomain.XPEvent{},
		&budgetplandomain.BudgetPlan{},
		&transactiondomain.Transaction{},
		&recurringdomain.Template{},
		&profiledomain.UserProfile{},
		&categorydomain.Subcategory{},
		&categorydomain.Category{},
	}

	log.Info("dropping tables", zap.Int("entity_count", len(entities)))

	if err := db.Migrator().DropTable(entities...); err != nil {
		log.Error("failed to drop tables", zap.Error(err))
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	log.Info("all tables dropped successfully")
	return nil
}
