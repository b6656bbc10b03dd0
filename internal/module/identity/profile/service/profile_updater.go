package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"financequest/internal/module/identity/profile/domain"
	"financequest/internal/shared"
)

// UpdateTimezone sets the profile's IANA timezone.
func (s *profileService) UpdateTimezone(ctx context.Context, userID uuid.UUID, timezone string) (*domain.UserProfile, error) {
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, shared.ErrBadRequest.WithDetails("field", "timezone").WithDetails("reason", "unknown IANA timezone")
	}

	if err := s.repo.UpdateColumns(ctx, userID, map[string]any{"timezone": timezone}); err != nil {
		if err == shared.ErrNotFound {
			return nil, err
		}
		return nil, shared.ErrInternal.WithError(err)
	}

	return s.GetProfile(ctx, userID)
}
