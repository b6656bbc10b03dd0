package dto

import (
	"financequest/internal/module/identity/profile/domain"
)

// ToProfileResponse maps a domain profile to its wire representation.
func ToProfileResponse(p *domain.UserProfile) ProfileResponse {
	resp := ProfileResponse{
		UserID:                 p.UserID.String(),
		Timezone:               p.Timezone,
		CurrentLevel:           p.CurrentLevel,
		CurrentXP:              p.CurrentXP,
		TotalXPEarned:          p.TotalXPEarned,
		CurrentStreak:          p.CurrentStreak,
		LongestStreak:          p.LongestStreak,
		EvolutionStage:         p.EvolutionStage(),
		TransactionsTodayCount: p.TransactionsTodayCount,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}

	if p.LastLoginDate != nil {
		s := p.LastLoginDate.String()
		resp.LastLoginDate = &s
	}
	if p.LastTransactionDate != nil {
		s := p.LastTransactionDate.String()
		resp.LastTransactionDate = &s
	}

	return resp
}
