package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-based transaction repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *gormRepository) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *gormRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}

func (r *gormRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *gormRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, start, end).
		Order("occurred_at DESC, created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *gormRepository) TodaySummary(ctx context.Context, userID uuid.UUID, today caldate.Date) (*domain.TodaySummary, error) {
	type row struct {
		Kind  string
		Total float64
		Count int
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Select("kind, COALESCE(SUM(amount), 0) as total, COUNT(*) as count").
		Where("user_id = ? AND occurred_at = ?", userID, today).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &domain.TodaySummary{}
	for _, row := range rows {
		amount := decimalFromFloat(row.Total)
		switch domain.Kind(row.Kind) {
		case domain.KindExpense:
			summary.ExpenseTotal = amount
			summary.ExpenseCount = row.Count
		case domain.KindIncome:
			summary.IncomeTotal = amount
			summary.IncomeCount = row.Count
		}
	}
	summary.HasLoggedToday = summary.ExpenseCount > 0 || summary.IncomeCount > 0
	return summary, nil
}

func (r *gormRepository) AggregateByCategory(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.CategoryAggregate, error) {
	type row struct {
		CategoryID    uuid.UUID
		SubcategoryID *uuid.UUID
		Total         float64
		Count         int
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Select("expense_category_id as category_id, expense_subcategory_id as subcategory_id, COALESCE(SUM(amount), 0) as total, COUNT(*) as count").
		Where("user_id = ? AND kind = ? AND occurred_at >= ? AND occurred_at <= ?", userID, domain.KindExpense, start, end).
		Group("expense_category_id, expense_subcategory_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]domain.CategoryAggregate, 0, len(rows))
	for _, row := range rows {
		aggregates = append(aggregates, domain.CategoryAggregate{
			CategoryID:    row.CategoryID,
			SubcategoryID: row.SubcategoryID,
			Total:         decimalFromFloat(row.Total),
			Count:         row.Count,
		})
	}
	return aggregates, nil
}

func (r *gormRepository) AggregateByWeek(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.WeekAggregate, error) {
	transactions, err := r.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	for _, t := range transactions {
		if t.Kind != domain.KindExpense {
			continue
		}
		week := ((t.OccurredAt.Day() - 1) / 7) + 1
		amount, _ := t.Amount.Float64()
		totals[week] += amount
	}

	weeks := make([]domain.WeekAggregate, 0, len(totals))
	for week, total := range totals {
		weeks = append(weeks, domain.WeekAggregate{Week: week, Total: decimalFromFloat(total)})
	}
	return weeks, nil
}

func (r *gormRepository) DistinctLoggedDays(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("user_id = ? AND kind = ? AND occurred_at >= ? AND occurred_at <= ?", userID, domain.KindExpense, start, end).
		Distinct("occurred_at").
		Count(&count).Error
	return int(count), err
}

func (r *gormRepository) Recent(ctx context.Context, userID uuid.UUID, start, end caldate.Date, limit int) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND occurred_at >= ? AND occurred_at <= ?", userID, domain.KindExpense, start, end).
		Order("occurred_at DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *gormRepository) TotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end caldate.Date) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND expense_category_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, categoryID, start, end).
		Scan(&total).Error
	return total, err
}

func (r *gormRepository) TotalIncome(ctx context.Context, userID uuid.UUID, start, end caldate.Date) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND kind = ? AND occurred_at >= ? AND occurred_at <= ?", userID, domain.KindIncome, start, end).
		Scan(&total).Error
	return total, err
}

func (r *gormRepository) DistinctMonths(ctx context.Context, userID uuid.UUID) ([]domain.MonthKey, error) {
	var transactions []*domain.Transaction
	if err := r.db.WithContext(ctx).
		Select("occurred_at").
		Where("user_id = ?", userID).
		Find(&transactions).Error; err != nil {
		return nil, err
	}

	seen := make(map[domain.MonthKey]bool)
	var months []domain.MonthKey
	for _, t := range transactions {
		key := domain.MonthKey{Year: t.OccurredAt.Year(), Month: t.OccurredAt.Month()}
		if !seen[key] {
			seen[key] = true
			months = append(months, key)
		}
	}
	return months, nil
}

func (r *gormRepository) ExistsByTemplateOccurrence(ctx context.Context, templateID uuid.UUID, occurredAt caldate.Date) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("recurring_template_id = ? AND occurred_at = ?", templateID, occurredAt).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) DetachTemplate(ctx context.Context, templateID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("recurring_template_id = ?", templateID).
		Update("recurring_template_id", nil).Error
}
