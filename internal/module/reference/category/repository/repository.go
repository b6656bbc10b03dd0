package repository

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/reference/category/domain"
)

// Repository defines read-only access to the category/subcategory
// catalog plus the bulk-create entry point the boot-time seed loader
// uses (categories never change at runtime outside seeding).
type Repository interface {
	CategoryExists(ctx context.Context, id uuid.UUID, kind domain.Kind) (bool, error)
	SubcategoryExists(ctx context.Context, id uuid.UUID) (bool, error)

	ListByKind(ctx context.Context, kind domain.Kind) ([]*domain.Category, error)

	// CategoryColors returns category id -> color for every category.
	CategoryColors(ctx context.Context) (map[uuid.UUID]string, error)
	// SubcategoryColors returns subcategory id -> color for every subcategory.
	SubcategoryColors(ctx context.Context) (map[uuid.UUID]string, error)

	Count(ctx context.Context) (int64, error)
	BulkCreateCategories(ctx context.Context, categories []*domain.Category) error
}
