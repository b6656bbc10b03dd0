package domain

import "github.com/google/uuid"

// SeedSubcategory is a subcategory seed definition.
type SeedSubcategory struct {
	Name  string
	Color string
}

// SeedCategory is a category seed definition. ID is only set for
// categories the rest of the system needs to address by a well-known
// id (see CategoryIDSavings, CategoryIDInvestments); zero otherwise,
// in which case the seeder assigns a fresh one.
type SeedCategory struct {
	ID            uuid.UUID
	Name          string
	Color         string
	Subcategories []SeedSubcategory
}

// DefaultExpenseCategories returns the system-provided expense catalog.
func DefaultExpenseCategories() []SeedCategory {
	return []SeedCategory{
		{Name: "Food & Dining", Color: "#FF6B6B", Subcategories: []SeedSubcategory{
			{Name: "Groceries", Color: "#FF6B6B"},
			{Name: "Restaurants", Color: "#FF8787"},
			{Name: "Cafes", Color: "#FFA8A8"},
		}},
		{Name: "Transportation", Color: "#4ECDC4", Subcategories: []SeedSubcategory{
			{Name: "Fuel", Color: "#4ECDC4"},
			{Name: "Public Transport", Color: "#63D9D1"},
			{Name: "Parking", Color: "#7FE3DC"},
		}},
		{Name: "Housing", Color: "#95E1D3"},
		{Name: "Healthcare", Color: "#F38181"},
		{Name: "Utilities", Color: "#FFA726"},
		{Name: "Shopping", Color: "#BA68C8", Subcategories: []SeedSubcategory{
			{Name: "Clothing", Color: "#BA68C8"},
			{Name: "Electronics", Color: "#CE93D8"},
		}},
		{Name: "Entertainment", Color: "#FFB74D"},
		{Name: "Travel", Color: "#81C784"},
		{Name: "Education", Color: "#64B5F6"},
		{Name: "Personal Care", Color: "#F06292"},
		{Name: "Insurance", Color: "#9575CD"},
		{Name: "Debt Payment", Color: "#E57373"},
		{ID: CategoryIDSavings, Name: "Savings", Color: "#4DB6AC"},
		{ID: CategoryIDInvestments, Name: "Investment", Color: "#7986CB"},
		{Name: "Gifts & Donations", Color: "#FF8A65"},
		{Name: "Pets", Color: "#A1887F"},
		{Name: "Other", Color: "#90A4AE"},
	}
}

// DefaultIncomeCategories returns the system-provided income catalog.
func DefaultIncomeCategories() []SeedCategory {
	return []SeedCategory{
		{Name: "Salary", Color: "#66BB6A"},
		{Name: "Business", Color: "#42A5F5"},
		{Name: "Investment Returns", Color: "#26A69A"},
		{Name: "Freelance", Color: "#AB47BC"},
		{Name: "Rental Income", Color: "#78909C"},
		{Name: "Bonus", Color: "#FFCA28"},
		{Name: "Gift Received", Color: "#FF7043"},
		{Name: "Refund", Color: "#26C6DA"},
		{Name: "Other Income", Color: "#9CCC65"},
	}
}
