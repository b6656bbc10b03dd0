package repository

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/recurring/domain"
)

// Repository defines recurring-template data access operations, all
// implicitly scoped to a user id for authorization.
type Repository interface {
	Create(ctx context.Context, template *domain.Template) error

	// Get returns nothing if the row does not belong to userID — no
	// distinction between missing and unauthorized, to avoid enumeration.
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Template, error)

	Update(ctx context.Context, template *domain.Template) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// List returns all templates owned by userID, active and paused.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error)

	// ListActive returns the non-paused templates owned by userID —
	// the set the materializer walks.
	ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error)
}
