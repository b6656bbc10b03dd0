package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"financequest/internal/module/identity/profile/domain"
	"financequest/internal/pkg/caldate"
)

func TestToProfileResponse(t *testing.T) {
	t.Run("maps all gamification fields", func(t *testing.T) {
		userID := uuid.New()
		today := caldate.NewDate(2024, time.June, 10)
		p := &domain.UserProfile{
			UserID:                 userID,
			Timezone:               "Asia/Ho_Chi_Minh",
			CurrentLevel:           6,
			CurrentXP:              120,
			TotalXPEarned:          500,
			CurrentStreak:          7,
			LongestStreak:          10,
			LastLoginDate:          &today,
			TransactionsTodayCount: 2,
			LastTransactionDate:    &today,
		}

		resp := ToProfileResponse(p)

		assert.Equal(t, userID.String(), resp.UserID)
		assert.Equal(t, "Asia/Ho_Chi_Minh", resp.Timezone)
		assert.Equal(t, 6, resp.CurrentLevel)
		assert.Equal(t, "Young", resp.EvolutionStage)
		assert.Equal(t, 7, resp.CurrentStreak)
		require := assert.New(t)
		require.NotNil(resp.LastLoginDate)
		require.Equal("2024-06-10", *resp.LastLoginDate)
		require.NotNil(resp.LastTransactionDate)
	})

	t.Run("nil dates stay nil", func(t *testing.T) {
		p := &domain.UserProfile{UserID: uuid.New(), CurrentLevel: 1}
		resp := ToProfileResponse(p)
		assert.Nil(t, resp.LastLoginDate)
		assert.Nil(t, resp.LastTransactionDate)
	})
}
