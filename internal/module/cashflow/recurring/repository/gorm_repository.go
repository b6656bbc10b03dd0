package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financequest/internal/module/cashflow/recurring/domain"
	"financequest/internal/shared"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-based recurring-template repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, template *domain.Template) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *gormRepository) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Template, error) {
	var template domain.Template
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *gormRepository) Update(ctx context.Context, template *domain.Template) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *gormRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Template{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *gormRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error) {
	var templates []*domain.Template
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

func (r *gormRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error) {
	var templates []*domain.Template
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_paused = ?", userID, false).
		Find(&templates).Error
	return templates, err
}
