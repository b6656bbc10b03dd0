package cmd

import (
	"log"
	"os"
	"strings"

	"financequest/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed reference data",
	Long:  `Seeds the database with the default expense/income category catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		runFullSeed()
	},
}

var seedCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Seed only default categories",
	Run: func(cmd *cobra.Command, args []string) {
		runSeedCategories()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.AddCommand(seedCategoriesCmd)
}

func runFullSeed() {
	_ = loadEnvFile()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	log.Println("🌱 Running database seeding...")

	dsn := getDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	seeder := database.NewSeeder(db, logger)
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✅ Database seeding finished!")
}

func runSeedCategories() {
	_ = loadEnvFile()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	log.Println("🌱 Seeding default categories...")

	dsn := getDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	seeder := database.NewSeeder(db, logger)
	if err := seeder.SeedCategoriesOnly(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✅ Default categories seeded successfully!")
}

// loadEnvFile loads .env file from common locations.
func loadEnvFile() error {
	envPaths := []string{
		"deploy/.env",
		".env",
		"../.env",
	}

	for _, path := range envPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		lines := strings.Split(string(data), "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) == 2 {
				key := strings.TrimSpace(parts[0])
				value := strings.TrimSpace(parts[1])
				os.Setenv(key, value)
			}
		}
		return nil
	}
	return nil
}
