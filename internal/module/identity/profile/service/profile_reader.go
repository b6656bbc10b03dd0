package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/identity/profile/domain"
	"financequest/internal/shared"
)

// GetProfile retrieves a user's profile.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrNotFound
		}
		return nil, shared.ErrInternal.WithError(err)
	}
	return profile, nil
}
