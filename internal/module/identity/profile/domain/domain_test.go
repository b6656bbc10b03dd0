package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"financequest/internal/pkg/caldate"
)

func TestUserProfile_TableName(t *testing.T) {
	profile := UserProfile{}
	assert.Equal(t, "user_profiles", profile.TableName())
}

func TestUserProfile_EvolutionStage(t *testing.T) {
	t.Run("level 1 is Baby", func(t *testing.T) {
		assert.Equal(t, "Baby", (&UserProfile{CurrentLevel: 1}).EvolutionStage())
	})
	t.Run("level 5 is still Baby", func(t *testing.T) {
		assert.Equal(t, "Baby", (&UserProfile{CurrentLevel: 5}).EvolutionStage())
	})
	t.Run("level 6 is Young", func(t *testing.T) {
		assert.Equal(t, "Young", (&UserProfile{CurrentLevel: 6}).EvolutionStage())
	})
	t.Run("level 15 is still Young", func(t *testing.T) {
		assert.Equal(t, "Young", (&UserProfile{CurrentLevel: 15}).EvolutionStage())
	})
	t.Run("level 16 is Adult", func(t *testing.T) {
		assert.Equal(t, "Adult", (&UserProfile{CurrentLevel: 16}).EvolutionStage())
	})
	t.Run("level 31 is Prime", func(t *testing.T) {
		assert.Equal(t, "Prime", (&UserProfile{CurrentLevel: 31}).EvolutionStage())
	})
	t.Run("level 51 is Legendary", func(t *testing.T) {
		assert.Equal(t, "Legendary", (&UserProfile{CurrentLevel: 51}).EvolutionStage())
	})
}

func TestUserProfile_HasCheckedInToday(t *testing.T) {
	today := caldate.NewDate(2024, time.January, 15)

	t.Run("nil last login date", func(t *testing.T) {
		p := &UserProfile{}
		assert.False(t, p.HasCheckedInToday(today))
	})

	t.Run("last login date equals today", func(t *testing.T) {
		p := &UserProfile{LastLoginDate: &today}
		assert.True(t, p.HasCheckedInToday(today))
	})

	t.Run("last login date is yesterday", func(t *testing.T) {
		yesterday := today.AddDays(-1)
		p := &UserProfile{LastLoginDate: &yesterday}
		assert.False(t, p.HasCheckedInToday(today))
	})
}
