package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financequest/internal/module/reference/category/domain"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-based category repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CategoryExists(ctx context.Context, id uuid.UUID, kind domain.Kind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("id = ? AND kind = ?", id, kind).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) SubcategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subcategory{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) ListByKind(ctx context.Context, kind domain.Kind) ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("subcategories.sort_order ASC")
		}).
		Where("kind = ?", kind).
		Order("sort_order ASC").
		Find(&categories).Error
	return categories, err
}

func (r *gormRepository) CategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	var rows []domain.Category
	if err := r.db.WithContext(ctx).Select("id", "color").Find(&rows).Error; err != nil {
		return nil, err
	}
	colors := make(map[uuid.UUID]string, len(rows))
	for _, c := range rows {
		colors[c.ID] = c.Color
	}
	return colors, nil
}

func (r *gormRepository) SubcategoryColors(ctx context.Context) (map[uuid.UUID]string, error) {
	var rows []domain.Subcategory
	if err := r.db.WithContext(ctx).Select("id", "color").Find(&rows).Error; err != nil {
		return nil, err
	}
	colors := make(map[uuid.UUID]string, len(rows))
	for _, s := range rows {
		colors[s.ID] = s.Color
	}
	return colors, nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&count).Error
	return count, err
}

func (r *gormRepository) BulkCreateCategories(ctx context.Context, categories []*domain.Category) error {
	return r.db.WithContext(ctx).Create(categories).Error
}
