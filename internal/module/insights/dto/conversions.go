package dto

import (
	"financequest/internal/module/insights/domain"
)

// ToMonthSnapshotResponse converts a domain.MonthSnapshot to its wire shape.
func ToMonthSnapshotResponse(s *domain.MonthSnapshot) MonthSnapshotResponse {
	categories := make([]CategoryBreakdownResponse, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, toCategoryBreakdownResponse(c))
	}

	weekly := make([]WeekBreakdownResponse, 0, len(s.Weekly))
	for _, w := range s.Weekly {
		weekly = append(weekly, WeekBreakdownResponse{
			Week:  w.Week,
			Label: w.Label,
			Total: w.Total.StringFixed(2),
		})
	}

	transactions := make([]RecentTransactionResponse, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		resp := RecentTransactionResponse{
			Amount:     t.Amount.StringFixed(2),
			CategoryID: t.CategoryID.String(),
			Date:       t.Date.String(),
		}
		if t.SubcategoryID != nil {
			id := t.SubcategoryID.String()
			resp.SubcategoryID = &id
		}
		transactions = append(transactions, resp)
	}

	return MonthSnapshotResponse{
		Key:            s.Key,
		Label:          s.Label,
		TotalSpent:     s.TotalSpent.StringFixed(2),
		LoggedDays:     s.LoggedDays,
		TotalDays:      s.TotalDays,
		Budget:         s.Budget.StringFixed(2),
		LastMonthDelta: s.LastMonthDelta,
		Categories:     categories,
		Weekly:         weekly,
		Savings: SavingsBreakdownResponse{
			Savings:     toCategoryTrendResponse(s.Savings.Savings),
			Investments: toCategoryTrendResponse(s.Savings.Investments),
		},
		Transactions: transactions,
	}
}

func toCategoryBreakdownResponse(c domain.CategoryBreakdown) CategoryBreakdownResponse {
	subcategories := make([]SubcategoryBreakdownResponse, 0, len(c.Subcategories))
	for _, sc := range c.Subcategories {
		subcategories = append(subcategories, SubcategoryBreakdownResponse{
			SubcategoryID: sc.SubcategoryID.String(),
			Name:          sc.Name,
			Color:         sc.Color,
			Total:         sc.Total.StringFixed(2),
			Percent:       sc.Percent,
			Count:         sc.Count,
		})
	}

	return CategoryBreakdownResponse{
		CategoryID:    c.CategoryID.String(),
		Name:          c.Name,
		Color:         c.Color,
		Total:         c.Total.StringFixed(2),
		Percent:       c.Percent,
		Count:         c.Count,
		Subcategories: subcategories,
	}
}

func toCategoryTrendResponse(t domain.CategoryTrend) CategoryTrendResponse {
	return CategoryTrendResponse{
		Total: t.Total.StringFixed(2),
		Delta: t.Delta,
	}
}

// ToAvailableMonthsResponse converts available months to their wire shape.
func ToAvailableMonthsResponse(months []domain.AvailableMonth) AvailableMonthsResponse {
	resp := AvailableMonthsResponse{Months: make([]AvailableMonthResponse, 0, len(months))}
	for _, m := range months {
		resp.Months = append(resp.Months, AvailableMonthResponse{Year: m.Year, Month: m.Month})
	}
	return resp
}
