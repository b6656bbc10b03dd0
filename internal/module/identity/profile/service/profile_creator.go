package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"financequest/internal/module/identity/profile/domain"
	"financequest/internal/shared"
)

const defaultTimezone = "UTC"

// CreateDefaultProfile creates a profile for a newly signed-up user. If
// a profile already exists for the user id (a retried sign-up), it is
// returned unchanged rather than treated as an error.
func (s *profileService) CreateDefaultProfile(ctx context.Context, userID uuid.UUID, timezone string) (*domain.UserProfile, error) {
	if existing, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return existing, nil
	} else if err != shared.ErrNotFound {
		return nil, shared.ErrInternal.WithError(err)
	}

	if timezone == "" {
		timezone = defaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, shared.ErrBadRequest.WithDetails("field", "timezone").WithDetails("reason", "unknown IANA timezone")
	}

	profile := &domain.UserProfile{
		ID:           uuid.New(),
		UserID:       userID,
		Timezone:     timezone,
		CurrentLevel: 1,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	return s.GetProfile(ctx, userID)
}
