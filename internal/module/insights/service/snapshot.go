package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	categorydomain "financequest/internal/module/reference/category/domain"
	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/module/insights/domain"
	"financequest/internal/pkg/caldate"
	"financequest/internal/shared"
)

const recentTransactionLimit = 5

// MonthSnapshot builds (or returns the cached) month-in-review view for
// a user. A missing budget plan is the only hard error: without one
// there is no budget figure to report the spend against.
func (s *insightsService) MonthSnapshot(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthSnapshot, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, shared.ErrInsightsValidation
	}

	if _, _, err := s.budgetPlans.Get(ctx, userID, year, month); err != nil {
		return nil, err
	}

	if cached, err := s.cache.Get(ctx, userID, year, month); err == nil && cached != nil {
		return cached, nil
	}

	snapshot, err := s.buildSnapshot(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, userID, year, month, snapshot)
	return snapshot, nil
}

func (s *insightsService) buildSnapshot(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthSnapshot, error) {
	start, end := caldate.MonthBounds(year, month)
	prevYear, prevMonth := caldate.PreviousMonth(year, month)
	prevStart, prevEnd := caldate.MonthBounds(prevYear, prevMonth)

	aggregates, err := s.transactions.AggregateByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	prevAggregates, err := s.transactions.AggregateByCategory(ctx, userID, prevStart, prevEnd)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	totalSpent := sumAggregates(aggregates)
	prevTotalSpent := sumAggregates(prevAggregates)

	budget, err := s.transactions.TotalIncome(ctx, userID, start, end)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	loggedDays, err := s.transactions.DistinctLoggedDays(ctx, userID, start, end)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	categories, err := s.buildCategories(ctx, aggregates)
	if err != nil {
		return nil, err
	}

	weekly, err := s.buildWeekly(ctx, userID, start, end, year, month)
	if err != nil {
		return nil, err
	}

	savings, err := s.buildSavings(ctx, userID, start, end, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	recent, err := s.buildRecentTransactions(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	totalSpentFloat, _ := totalSpent.Float64()
	prevTotalSpentFloat, _ := prevTotalSpent.Float64()

	return &domain.MonthSnapshot{
		Key:            domain.MonthKey(year, month),
		Label:          domain.MonthLabel(year, month),
		TotalSpent:     totalSpent,
		LoggedDays:     loggedDays,
		TotalDays:      caldate.DaysInMonth(year, month),
		Budget:         decimal.NewFromFloat(budget),
		LastMonthDelta: domain.MonthOverMonthDelta(totalSpentFloat, prevTotalSpentFloat),
		Categories:     categories,
		Weekly:         weekly,
		Savings:        savings,
		Transactions:   recent,
	}, nil
}

func sumAggregates(aggregates []transactiondomain.CategoryAggregate) decimal.Decimal {
	total := decimal.Zero
	for _, a := range aggregates {
		total = total.Add(a.Total)
	}
	return total
}

// buildCategories groups category aggregate rows by category, attaches
// reference-catalog metadata (name/color/sort order), and distributes
// integer percentages both across categories and, within each category,
// across its subcategories.
func (s *insightsService) buildCategories(ctx context.Context, aggregates []transactiondomain.CategoryAggregate) ([]domain.CategoryBreakdown, error) {
	expenseCategories, err := s.categories.ListExpenseCategories(ctx)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	byID := make(map[uuid.UUID]*categorydomain.Category, len(expenseCategories))
	for _, c := range expenseCategories {
		byID[c.ID] = c
	}

	buckets := make(map[uuid.UUID]*categoryBucket)
	var order []uuid.UUID
	for _, a := range aggregates {
		b, ok := buckets[a.CategoryID]
		if !ok {
			b = &categoryBucket{subs: make(map[uuid.UUID]*totalCount)}
			buckets[a.CategoryID] = b
			order = append(order, a.CategoryID)
		}
		b.total = b.total.Add(a.Total)
		b.count += a.Count

		if a.SubcategoryID != nil {
			sub, ok := b.subs[*a.SubcategoryID]
			if !ok {
				sub = &totalCount{}
				b.subs[*a.SubcategoryID] = sub
			}
			sub.total = sub.total.Add(a.Total)
			sub.count += a.Count
		}
	}

	totals := make([]decimal.Decimal, len(order))
	for i, id := range order {
		totals[i] = buckets[id].total
	}
	percents := domain.DistributePercentages(totals)

	categories := make([]domain.CategoryBreakdown, 0, len(order))
	for i, id := range order {
		b := buckets[id]
		ref := byID[id]

		breakdown := domain.CategoryBreakdown{
			CategoryID: id,
			Total:      b.total,
			Percent:    percents[i],
			Count:      b.count,
		}
		if ref != nil {
			breakdown.Name = ref.Name
			breakdown.Color = ref.Color
			breakdown.SortOrder = ref.SortOrder
		}
		breakdown.Subcategories = buildSubcategories(ref, b.subs)

		categories = append(categories, breakdown)
	}

	sort.SliceStable(categories, func(a, b int) bool {
		if categories[a].Percent != categories[b].Percent {
			return categories[a].Percent > categories[b].Percent
		}
		return categories[a].SortOrder < categories[b].SortOrder
	})

	return categories, nil
}

// categoryBucket and totalCount accumulate a category's (and its
// subcategories') totals while grouping raw aggregate rows.
type categoryBucket struct {
	total decimal.Decimal
	count int
	subs  map[uuid.UUID]*totalCount
}

type totalCount struct {
	total decimal.Decimal
	count int
}

func buildSubcategories(ref *categorydomain.Category, subs map[uuid.UUID]*totalCount) []domain.SubcategoryBreakdown {
	if len(subs) == 0 {
		return nil
	}

	subMeta := make(map[uuid.UUID]categorydomain.Subcategory)
	if ref != nil {
		for _, sc := range ref.Subcategories {
			subMeta[sc.ID] = sc
		}
	}

	var order []uuid.UUID
	for id := range subs {
		order = append(order, id)
	}
	sort.Slice(order, func(a, b int) bool { return order[a].String() < order[b].String() })

	totals := make([]decimal.Decimal, len(order))
	for i, id := range order {
		totals[i] = subs[id].total
	}
	percents := domain.DistributePercentages(totals)

	breakdowns := make([]domain.SubcategoryBreakdown, 0, len(order))
	for i, id := range order {
		meta := subMeta[id]
		breakdowns = append(breakdowns, domain.SubcategoryBreakdown{
			SubcategoryID: id,
			Name:          meta.Name,
			Color:         meta.Color,
			SortOrder:     meta.SortOrder,
			Total:         subs[id].total,
			Percent:       percents[i],
			Count:         subs[id].count,
		})
	}

	sort.SliceStable(breakdowns, func(a, b int) bool {
		if breakdowns[a].Percent != breakdowns[b].Percent {
			return breakdowns[a].Percent > breakdowns[b].Percent
		}
		return breakdowns[a].SortOrder < breakdowns[b].SortOrder
	})

	return breakdowns
}

func (s *insightsService) buildWeekly(ctx context.Context, userID uuid.UUID, start, end caldate.Date, year, month int) ([]domain.WeekBreakdown, error) {
	weeks, err := s.transactions.AggregateByWeek(ctx, userID, start, end)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	totals := make(map[int]decimal.Decimal, len(weeks))
	for _, w := range weeks {
		totals[w.Week] = w.Total
	}

	totalDays := caldate.DaysInMonth(year, month)
	maxWeek := ((totalDays - 1) / 7) + 1

	breakdowns := make([]domain.WeekBreakdown, 0, maxWeek)
	for week := 1; week <= maxWeek; week++ {
		total, ok := totals[week]
		if !ok {
			total = decimal.Zero
		}
		breakdowns = append(breakdowns, domain.WeekBreakdown{
			Week:  week,
			Label: domain.WeekLabel(week),
			Total: total,
		})
	}

	return breakdowns, nil
}

func (s *insightsService) buildSavings(ctx context.Context, userID uuid.UUID, start, end, prevStart, prevEnd caldate.Date) (domain.SavingsBreakdown, error) {
	savings, err := s.buildCategoryTrend(ctx, userID, categorydomain.CategoryIDSavings, start, end, prevStart, prevEnd)
	if err != nil {
		return domain.SavingsBreakdown{}, err
	}

	investments, err := s.buildCategoryTrend(ctx, userID, categorydomain.CategoryIDInvestments, start, end, prevStart, prevEnd)
	if err != nil {
		return domain.SavingsBreakdown{}, err
	}

	return domain.SavingsBreakdown{Savings: savings, Investments: investments}, nil
}

func (s *insightsService) buildCategoryTrend(ctx context.Context, userID, categoryID uuid.UUID, start, end, prevStart, prevEnd caldate.Date) (domain.CategoryTrend, error) {
	current, err := s.transactions.TotalByCategory(ctx, userID, categoryID, start, end)
	if err != nil {
		return domain.CategoryTrend{}, shared.ErrInternal.WithError(err)
	}

	previous, err := s.transactions.TotalByCategory(ctx, userID, categoryID, prevStart, prevEnd)
	if err != nil {
		return domain.CategoryTrend{}, shared.ErrInternal.WithError(err)
	}

	return domain.CategoryTrend{
		Total: decimal.NewFromFloat(current),
		Delta: domain.TrendDelta(current, previous),
	}, nil
}

func (s *insightsService) buildRecentTransactions(ctx context.Context, userID uuid.UUID, start, end caldate.Date) ([]domain.RecentTransaction, error) {
	transactions, err := s.transactions.Recent(ctx, userID, start, end, recentTransactionLimit)
	if err != nil {
		return nil, shared.ErrInternal.WithError(err)
	}

	recent := make([]domain.RecentTransaction, 0, len(transactions))
	for _, t := range transactions {
		var categoryID uuid.UUID
		if t.CategoryID() != nil {
			categoryID = *t.CategoryID()
		}
		recent = append(recent, domain.RecentTransaction{
			Amount:        t.Amount,
			CategoryID:    categoryID,
			SubcategoryID: t.ExpenseSubcategoryID,
			Date:          t.OccurredAt,
		})
	}

	return recent, nil
}
