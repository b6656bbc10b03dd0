package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financequest/internal/module/experience/domain"
)

const (
	loginBonusXP        = 15
	inactivityPenaltyXP = 15
)

// CheckIn runs the daily check-in state machine. Profile
// mutation and every event insert commit in one transaction.
func (e *engine) CheckIn(ctx context.Context, userID uuid.UUID) (*domain.CheckInResult, error) {
	var result *domain.CheckInResult

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profiles := e.profiles(tx)
		events := e.eventRepoFor(tx)

		profile, err := profiles.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		today := profile.TodayIn()
		if profile.HasCheckedInToday(today) {
			result = &domain.CheckInResult{
				AlreadyCheckedIn: true,
				CurrentStreak:    profile.CurrentStreak,
				CurrentLevel:     profile.CurrentLevel,
				CurrentXP:        profile.CurrentXP,
			}
			return nil
		}

		levelBefore := profile.CurrentLevel
		streakBroken := false
		var pending []*domain.XPEvent

		if profile.LastLoginDate != nil {
			gap := today.DaysSince(*profile.LastLoginDate) - 1
			if gap > 0 {
				for d := 1; d <= gap; d++ {
					delta := -inactivityPenaltyXP * d
					pending = append(pending, &domain.XPEvent{
						ID:          uuid.New(),
						UserID:      userID,
						XPAmount:    delta,
						EventType:   domain.EventInactivityPenalty,
						Description: fmt.Sprintf("Missed day %d of inactivity", d),
					})
					profile.CurrentXP = max(0, profile.CurrentXP+delta)
				}
				profile.CurrentStreak = 0
				streakBroken = true
			}
		}

		pending = append(pending, &domain.XPEvent{
			ID:          uuid.New(),
			UserID:      userID,
			XPAmount:    loginBonusXP,
			EventType:   domain.EventDailyLogin,
			Description: "Daily login bonus",
		})
		profile.CurrentXP += loginBonusXP
		profile.TotalXPEarned += loginBonusXP

		if !streakBroken {
			profile.CurrentStreak++
			if profile.CurrentStreak > profile.LongestStreak {
				profile.LongestStreak = profile.CurrentStreak
			}
		}

		var milestoneReached *int
		if xp, ok := domain.MilestoneXPFor(profile.CurrentStreak); ok {
			existing, err := events.FindStreakMilestoneEvent(ctx, userID, profile.CurrentStreak)
			if err != nil {
				return err
			}
			if existing == nil {
				days := profile.CurrentStreak
				milestoneReached = &days
				pending = append(pending, &domain.XPEvent{
					ID:          uuid.New(),
					UserID:      userID,
					XPAmount:    xp,
					EventType:   domain.EventStreakMilestone,
					Description: fmt.Sprintf("%d-day streak milestone", days),
				})
				profile.CurrentXP += xp
				profile.TotalXPEarned += xp
			}
		}

		profile.LastLoginDate = &today
		profile.CurrentLevel = domain.Level(profile.CurrentXP)
		levelUp := profile.CurrentLevel > levelBefore

		if err := events.CreateBatch(ctx, pending); err != nil {
			return err
		}
		if err := profiles.Update(ctx, profile); err != nil {
			return err
		}

		xpAwarded := 0
		for _, ev := range pending {
			xpAwarded += ev.XPAmount
		}

		result = &domain.CheckInResult{
			StreakBroken:     streakBroken,
			LevelUp:          levelUp,
			XPAwarded:        xpAwarded,
			CurrentStreak:    profile.CurrentStreak,
			CurrentLevel:     profile.CurrentLevel,
			CurrentXP:        profile.CurrentXP,
			MilestoneReached: milestoneReached,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
