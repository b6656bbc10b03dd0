package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder handles startup reference-data loading.
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSeeder creates a new database seeder.
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// SeedAll runs all seeding operations.
func (s *Seeder) SeedAll() error {
	s.logger.Info("running database seeder...")

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.seedDefaultCategories(tx); err != nil {
			s.logger.Error("failed to seed default categories", zap.Error(err))
			return fmt.Errorf("failed to seed default categories: %w", err)
		}

		s.logger.Info("database seeding completed successfully")
		return nil
	})
}
