package dto

import (
	"financequest/internal/module/experience/domain"
	profiledomain "financequest/internal/module/identity/profile/domain"
)

// ToStatusResponse converts a profile into its gamification status view.
func ToStatusResponse(p *profiledomain.UserProfile) StatusResponse {
	return StatusResponse{
		CurrentLevel:   p.CurrentLevel,
		CurrentXP:      p.CurrentXP,
		TotalXPEarned:  p.TotalXPEarned,
		XPForNextLevel: domain.XPForLevel(p.CurrentLevel),
		EvolutionStage: p.EvolutionStage(),
		CurrentStreak:  p.CurrentStreak,
		LongestStreak:  p.LongestStreak,
	}
}

// ToCheckInResponse converts a CheckInResult to its wire shape.
func ToCheckInResponse(r *domain.CheckInResult) CheckInResponse {
	return CheckInResponse{
		AlreadyCheckedIn: r.AlreadyCheckedIn,
		StreakBroken:     r.StreakBroken,
		LevelUp:          r.LevelUp,
		XPAwarded:        r.XPAwarded,
		CurrentStreak:    r.CurrentStreak,
		CurrentLevel:     r.CurrentLevel,
		CurrentXP:        r.CurrentXP,
		MilestoneReached: r.MilestoneReached,
	}
}

// ToHistoryResponse converts a page of XP events to its wire shape.
func ToHistoryResponse(events []*domain.XPEvent, total int64, limit, offset int) HistoryResponse {
	resp := HistoryResponse{
		Events: make([]EventResponse, 0, len(events)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, e := range events {
		resp.Events = append(resp.Events, EventResponse{
			ID:          e.ID.String(),
			XPAmount:    e.XPAmount,
			EventType:   string(e.EventType),
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return resp
}

// ToMilestoneResponses converts milestone progress entries to their wire shape.
func ToMilestoneResponses(progress []domain.MilestoneProgress) []MilestoneResponse {
	resp := make([]MilestoneResponse, 0, len(progress))
	for _, p := range progress {
		resp = append(resp, MilestoneResponse{
			Days:          p.Days,
			XPReward:      p.XPReward,
			Achieved:      p.Achieved,
			AchievedAt:    p.AchievedAt,
			DaysRemaining: p.DaysRemaining,
		})
	}
	return resp
}
