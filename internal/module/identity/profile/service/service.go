package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/identity/profile/domain"
	"financequest/internal/module/identity/profile/repository"
)

// ProfileCreator provisions profiles.
type ProfileCreator interface {
	// CreateDefaultProfile creates a profile with default gamification
	// counters for a freshly signed-up user, or returns the existing one
	// if sign-up is retried.
	CreateDefaultProfile(ctx context.Context, userID uuid.UUID, timezone string) (*domain.UserProfile, error)
}

// ProfileReader reads profiles.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

// ProfileUpdater updates mutable profile fields.
type ProfileUpdater interface {
	UpdateTimezone(ctx context.Context, userID uuid.UUID, timezone string) (*domain.UserProfile, error)
}

// Service is the composite interface for all profile operations.
type Service interface {
	ProfileCreator
	ProfileReader
	ProfileUpdater
}

type profileService struct {
	repo repository.Repository
}

// NewService creates a new profile service.
func NewService(repo repository.Repository) Service {
	return &profileService{repo: repo}
}
