package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financequest/internal/module/cashflow/budgetplan/domain"
	"financequest/internal/shared"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-based budget plan repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, plan *domain.BudgetPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *gormRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.BudgetPlan, error) {
	var plan domain.BudgetPlan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, shared.ErrBudgetPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *gormRepository) Update(ctx context.Context, plan *domain.BudgetPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}
