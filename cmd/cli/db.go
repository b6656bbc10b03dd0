package cmd

import (
	"log"

	"financequest/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
	Long:  `Manage database operations`,
}

var dbCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean database (drop all tables + fresh migrations, NO seed)",
	Long:  `WARNING: Drops ALL tables and creates fresh empty database. No data will be seeded.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDBClean()
	},
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Complete database reset (drop + migrate + seed)",
	Long:  `WARNING: Drops ALL tables, runs fresh migrations, and seeds reference data.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDBReset()
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbCleanCmd)
	dbCmd.AddCommand(dbResetCmd)
}

func runDBClean() {
	_ = loadEnvFile()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	log.Println("🧹 Cleaning database: dropping all tables + fresh migrations, no seed...")

	dsn := getDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	log.Println("📋 Step 1/2: Dropping all tables...")
	if err := database.DropAllTables(db, logger); err != nil {
		log.Fatalf("❌ Failed to drop tables: %v", err)
	}

	log.Println("📋 Step 2/2: Running fresh migrations...")
	if err := database.AutoMigrate(db, logger); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	log.Println("✨ Database cleaned: all tables dropped and recreated, no data seeded.")
}

func runDBReset() {
	_ = loadEnvFile()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	log.Println("⚠️  Complete database reset — this will DELETE ALL DATA!")

	dsn := getDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	log.Println("📋 Step 1/3: Dropping all tables...")
	if err := database.DropAllTables(db, logger); err != nil {
		log.Fatalf("❌ Failed to drop tables: %v", err)
	}

	log.Println("📋 Step 2/3: Running fresh migrations...")
	if err := database.AutoMigrate(db, logger); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	log.Println("📋 Step 3/3: Seeding reference data...")
	seeder := database.NewSeeder(db, logger)
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("🎉 Database fully reset and seeded!")
}
