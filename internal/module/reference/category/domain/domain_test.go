package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_TableName(t *testing.T) {
	assert.Equal(t, "categories", Category{}.TableName())
}

func TestSubcategory_TableName(t *testing.T) {
	assert.Equal(t, "subcategories", Subcategory{}.TableName())
}

func TestDefaultExpenseCategories_IncludesSavingsAndInvestments(t *testing.T) {
	defs := DefaultExpenseCategories()

	var sawSavings, sawInvestments bool
	for _, d := range defs {
		if d.ID == CategoryIDSavings {
			sawSavings = true
			assert.Equal(t, "Savings", d.Name)
		}
		if d.ID == CategoryIDInvestments {
			sawInvestments = true
			assert.Equal(t, "Investment", d.Name)
		}
	}

	assert.True(t, sawSavings, "Savings category must carry the well-known id")
	assert.True(t, sawInvestments, "Investment category must carry the well-known id")
}

func TestDefaultIncomeCategories_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, DefaultIncomeCategories())
}
