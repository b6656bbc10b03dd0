package dto

// SubcategoryBreakdownResponse is one subcategory's share of its
// parent category's spend.
type SubcategoryBreakdownResponse struct {
	SubcategoryID string `json:"subcategory_id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	Total         string `json:"total"`
	Percent       int    `json:"percent"`
	Count         int    `json:"count"`
}

// CategoryBreakdownResponse is one category's share of a month's spend.
type CategoryBreakdownResponse struct {
	CategoryID    string                          `json:"category_id"`
	Name          string                          `json:"name"`
	Color         string                          `json:"color"`
	Total         string                          `json:"total"`
	Percent       int                             `json:"percent"`
	Count         int                             `json:"count"`
	Subcategories []SubcategoryBreakdownResponse `json:"subcategories,omitempty"`
}

// WeekBreakdownResponse is a calendar week's expense total.
type WeekBreakdownResponse struct {
	Week  int    `json:"week"`
	Label string `json:"label"`
	Total string `json:"total"`
}

// CategoryTrendResponse is a category's current total plus its change
// from the previous month.
type CategoryTrendResponse struct {
	Total string   `json:"total"`
	Delta *float64 `json:"delta"`
}

// SavingsBreakdownResponse is the savings/investment trend pair.
type SavingsBreakdownResponse struct {
	Savings     CategoryTrendResponse `json:"savings"`
	Investments CategoryTrendResponse `json:"investments"`
}

// RecentTransactionResponse is a trimmed recent expense row.
type RecentTransactionResponse struct {
	Amount        string  `json:"amount"`
	CategoryID    string  `json:"category_id"`
	SubcategoryID *string `json:"subcategory_id,omitempty"`
	Date          string  `json:"date"`
}

// MonthSnapshotResponse is the month-in-review wire shape.
type MonthSnapshotResponse struct {
	Key            string                      `json:"key"`
	Label          string                      `json:"label"`
	TotalSpent     string                      `json:"total_spent"`
	LoggedDays     int                         `json:"logged_days"`
	TotalDays      int                         `json:"total_days"`
	Budget         string                      `json:"budget"`
	LastMonthDelta float64                     `json:"last_month_delta"`
	Categories     []CategoryBreakdownResponse `json:"categories"`
	Weekly         []WeekBreakdownResponse     `json:"weekly"`
	Savings        SavingsBreakdownResponse    `json:"savings"`
	Transactions   []RecentTransactionResponse `json:"transactions"`
}

// AvailableMonthResponse is one month the user has transactions in.
type AvailableMonthResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// AvailableMonthsResponse wraps the available-months list.
type AvailableMonthsResponse struct {
	Months []AvailableMonthResponse `json:"months"`
}
