package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"financequest/internal/module/reference/category/domain"
	"financequest/internal/module/reference/category/repository"
)

// Reader defines the read-only category/subcategory catalog operations
// exposed over HTTP and consumed by other modules.
type Reader interface {
	CategoryExists(ctx context.Context, id uuid.UUID, kind domain.Kind) (bool, error)
	SubcategoryExists(ctx context.Context, id uuid.UUID) (bool, error)
	ListExpenseCategories(ctx context.Context) ([]*domain.Category, error)
	ListIncomeCategories(ctx context.Context) ([]*domain.Category, error)
	CategoryColors(ctx context.Context) (map[uuid.UUID]string, error)
	SubcategoryColors(ctx context.Context) (map[uuid.UUID]string, error)
}

// Service is the composite interface for the category module.
type Service interface {
	Reader
}

type categoryService struct {
	repo   repository.Repository
	logger *zap.Logger
}

// NewService creates a new category service.
func NewService(repo repository.Repository, logger *zap.Logger) Service {
	return &categoryService{repo: repo, logger: logger}
}
