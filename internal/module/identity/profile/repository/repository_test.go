package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"financequest/internal/module/identity/profile/domain"
	"financequest/internal/shared"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			timezone TEXT DEFAULT 'UTC',
			current_level INTEGER DEFAULT 1,
			current_xp INTEGER DEFAULT 0,
			total_xp_earned INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			last_login_date DATE,
			transactions_today_count INTEGER DEFAULT 0,
			last_transaction_date DATE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`).Error
	require.NoError(t, err)

	return db
}

func createTestProfile(userID uuid.UUID) *domain.UserProfile {
	return &domain.UserProfile{
		ID:           uuid.New(),
		UserID:       userID,
		Timezone:     "UTC",
		CurrentLevel: 1,
	}
}

func TestProfileRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	t.Run("successfully create profile", func(t *testing.T) {
		userID := uuid.New()
		profile := createTestProfile(userID)

		err := repo.Create(ctx, profile)
		assert.NoError(t, err)

		var result domain.UserProfile
		err = db.First(&result, "user_id = ?", userID).Error
		assert.NoError(t, err)
		assert.Equal(t, userID, result.UserID)
	})

	t.Run("create duplicate profile fails", func(t *testing.T) {
		userID := uuid.New()
		profile1 := createTestProfile(userID)
		require.NoError(t, repo.Create(ctx, profile1))

		profile2 := createTestProfile(userID)
		err := repo.Create(ctx, profile2)
		assert.Error(t, err)
	})
}

func TestProfileRepository_GetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	t.Run("successfully get profile", func(t *testing.T) {
		userID := uuid.New()
		profile := createTestProfile(userID)
		require.NoError(t, db.Create(profile).Error)

		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, userID, result.UserID)
	})

	t.Run("profile not found", func(t *testing.T) {
		result, err := repo.GetByUserID(ctx, uuid.New())
		assert.Error(t, err)
		assert.True(t, err == shared.ErrNotFound)
		assert.Nil(t, result)
	})
}

func TestProfileRepository_GetForUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	t.Run("locks and returns the profile row", func(t *testing.T) {
		userID := uuid.New()
		profile := createTestProfile(userID)
		require.NoError(t, db.Create(profile).Error)

		result, err := repo.GetForUpdate(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, result.UserID)
	})
}

func TestProfileRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	t.Run("successfully update profile", func(t *testing.T) {
		userID := uuid.New()
		profile := createTestProfile(userID)
		require.NoError(t, db.Create(profile).Error)

		profile.CurrentXP = 42
		err := repo.Update(ctx, profile)
		assert.NoError(t, err)

		var result domain.UserProfile
		require.NoError(t, db.First(&result, "user_id = ?", userID).Error)
		assert.Equal(t, 42, result.CurrentXP)
	})
}

func TestProfileRepository_UpdateColumns(t *testing.T) {
	// NOTE: skipped because the repository uses gorm.Expr("NOW()"), which
	// is PostgreSQL-specific and unsupported by SQLite.
	t.Skip("Skipping UpdateColumns tests - uses PostgreSQL NOW() function not supported by SQLite")
}
