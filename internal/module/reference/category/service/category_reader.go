package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/reference/category/domain"
)

func (s *categoryService) CategoryExists(ctx context.Context, id uuid.UUID, kind domain.Kind) (bool, error) {
	return s.repo.CategoryExists(ctx, id, kind)
}

func (s *categoryService) SubcategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.SubcategoryExists(ctx, id)
}

func (s *categoryService) ListExpenseCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListByKind(ctx, domain.KindExpense)
}

func (s *categoryService) ListIncomeCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListByKind(ctx, domain.KindIncome)
}

func (s *categoryService) CategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	return s.repo.CategoryColors(ctx)
}

func (s *categoryService) SubcategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	return s.repo.SubcategoryColors(ctx)
}
