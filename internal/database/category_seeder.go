package database

import (
	"fmt"

	categorydomain "financequest/internal/module/reference/category/domain"
	categorydto "financequest/internal/module/reference/category/dto"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// seedDefaultCategories loads the system expense/income catalog
// once; the catalog never changes at runtime afterward.
func (s *Seeder) seedDefaultCategories(tx *gorm.DB) error {
	s.logger.Info("checking for existing categories...")

	var count int64
	if err := tx.Model(&categorydomain.Category{}).Count(&count).Error; err != nil {
		s.logger.Error("failed to check category count", zap.Error(err))
		return err
	}

	if count > 0 {
		s.logger.Info("categories already seeded, skipping", zap.Int64("count", count))
		return nil
	}

	expense := categorydto.ExpandSeedCategories(categorydomain.DefaultExpenseCategories(), categorydomain.KindExpense)
	income := categorydto.ExpandSeedCategories(categorydomain.DefaultIncomeCategories(), categorydomain.KindIncome)

	all := make([]*categorydomain.Category, 0, len(expense)+len(income))
	all = append(all, expense...)
	all = append(all, income...)

	s.logger.Info("creating default categories...", zap.Int("count", len(all)))

	if err := tx.Create(all).Error; err != nil {
		s.logger.Error("failed to create default categories", zap.Error(err))
		return fmt.Errorf("failed to create default categories: %w", err)
	}

	s.logger.Info("seeded default categories successfully",
		zap.Int("expense", len(expense)),
		zap.Int("income", len(income)),
	)
	return nil
}

// SeedCategoriesOnly seeds only the default category catalog.
func (s *Seeder) SeedCategoriesOnly() error {
	s.logger.Info("seeding categories only...")
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.seedDefaultCategories(tx)
	})
}
