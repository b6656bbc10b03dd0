package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"financequest/internal/module/reference/category/domain"
)

func TestToCategoryResponse_NestsSubcategoriesInOrder(t *testing.T) {
	catID := uuid.New()
	cat := &domain.Category{
		ID:        catID,
		Kind:      domain.KindExpense,
		Name:      "Food & Dining",
		Color:     "#FF6B6B",
		SortOrder: 0,
		Subcategories: []domain.Subcategory{
			{ID: uuid.New(), CategoryID: catID, Name: "Groceries", Color: "#FF6B6B", SortOrder: 0},
			{ID: uuid.New(), CategoryID: catID, Name: "Restaurants", Color: "#FF8787", SortOrder: 1},
		},
	}

	resp := ToCategoryResponse(cat)

	assert.Equal(t, catID.String(), resp.ID)
	assert.Equal(t, "expense", resp.Kind)
	assert.Len(t, resp.Subcategories, 2)
	assert.Equal(t, "Groceries", resp.Subcategories[0].Name)
	assert.Equal(t, "Restaurants", resp.Subcategories[1].Name)
}

func TestToCategoryResponse_NoSubcategories(t *testing.T) {
	cat := &domain.Category{ID: uuid.New(), Kind: domain.KindIncome, Name: "Salary"}

	resp := ToCategoryResponse(cat)

	assert.Nil(t, resp.Subcategories)
}

func TestToCategoryListResponse(t *testing.T) {
	categories := []*domain.Category{
		{ID: uuid.New(), Kind: domain.KindExpense, Name: "Housing"},
		{ID: uuid.New(), Kind: domain.KindExpense, Name: "Utilities"},
	}

	resp := ToCategoryListResponse(categories)

	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Categories, 2)
}

func TestExpandSeedCategories_PinsWellKnownIDs(t *testing.T) {
	defs := domain.DefaultExpenseCategories()

	expanded := ExpandSeedCategories(defs, domain.KindExpense)

	var sawSavings bool
	for _, c := range expanded {
		if c.ID == domain.CategoryIDSavings {
			sawSavings = true
			assert.Equal(t, "Savings", c.Name)
		}
		assert.NotEqual(t, uuid.Nil, c.ID)
	}
	assert.True(t, sawSavings)
}

func TestExpandSeedCategories_AssignsSubcategoryParent(t *testing.T) {
	defs := []domain.SeedCategory{
		{Name: "Food & Dining", Color: "#FF6B6B", Subcategories: []domain.SeedSubcategory{
			{Name: "Groceries", Color: "#FF6B6B"},
		}},
	}

	expanded := ExpandSeedCategories(defs, domain.KindExpense)

	assert.Len(t, expanded, 1)
	assert.Len(t, expanded[0].Subcategories, 1)
	assert.Equal(t, expanded[0].ID, expanded[0].Subcategories[0].CategoryID)
}
