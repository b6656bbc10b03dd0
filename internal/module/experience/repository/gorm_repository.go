package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financequest/internal/module/experience/domain"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed XP event log.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, event *domain.XPEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *gormRepository) CreateBatch(ctx context.Context, events []*domain.XPEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}

func (r *gormRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.XPEvent, error) {
	var events []*domain.XPEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	return events, err
}

func (r *gormRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.XPEvent{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *gormRepository) FindStreakMilestoneEvent(ctx context.Context, userID uuid.UUID, days int) (*domain.XPEvent, error) {
	var event domain.XPEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_type = ? AND description LIKE ?", userID, domain.EventStreakMilestone, fmt.Sprintf("%%%d-day%%", days)).
		Order("created_at ASC").
		First(&event).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *gormRepository) FindFinancialGoalEvent(ctx context.Context, userID uuid.UUID, year, month int) (*domain.XPEvent, error) {
	var event domain.XPEvent
	marker := fmt.Sprintf("%d/%d", month, year)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_type = ? AND description LIKE ?", userID, domain.EventFinancialGoal, "%"+marker+"%").
		Order("created_at ASC").
		First(&event).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
