package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind discriminates expense and income categories.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Category is a read-only reference-catalog row. Categories
// never change at runtime; they are populated once by the seed loader
// at boot.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Kind      Kind      `gorm:"type:varchar(10);not null;index;column:kind" json:"kind"`
	Name      string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Color     string    `gorm:"type:varchar(20);not null;column:color" json:"color"`
	SortOrder int       `gorm:"not null;default:0;column:sort_order" json:"sort_order"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

// TableName specifies the database table name.
func (Category) TableName() string {
	return "categories"
}

// Subcategory narrows an expense category (a transaction's expense_subcategory_id).
type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index;column:category_id" json:"category_id"`
	Name       string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Color      string    `gorm:"type:varchar(20);not null;column:color" json:"color"`
	SortOrder  int       `gorm:"not null;default:0;column:sort_order" json:"sort_order"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

// TableName specifies the database table name.
func (Subcategory) TableName() string {
	return "subcategories"
}

// Well-known category ids the insights aggregator's savings breakdown
// reads by identity. Seeding pins the Savings and
// Investment expense categories to these ids so the aggregator never
// has to look them up by name.
var (
	CategoryIDSavings     = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	CategoryIDInvestments = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)
