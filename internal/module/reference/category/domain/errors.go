package domain

import "errors"

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSubcategoryNotFound is returned when a subcategory is not found.
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)
