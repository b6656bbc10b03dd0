package repository

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/identity/profile/domain"
)

// Repository defines data access methods for user profiles.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	// GetForUpdate locks the profile row (SELECT ... FOR UPDATE) so
	// concurrent check-ins and transaction-XP awards for the same user
	// serialize within their enclosing transaction.
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Create(ctx context.Context, profile *domain.UserProfile) error
	Update(ctx context.Context, profile *domain.UserProfile) error
	UpdateColumns(ctx context.Context, userID uuid.UUID, columns map[string]any) error
}
