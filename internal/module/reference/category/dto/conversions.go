package dto

import (
	"github.com/google/uuid"

	"financequest/internal/module/reference/category/domain"
)

// ToSubcategoryResponse converts a domain.Subcategory to its wire shape.
func ToSubcategoryResponse(s domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Color:     s.Color,
		SortOrder: s.SortOrder,
	}
}

// ToCategoryResponse converts a domain.Category, with its subcategories
// already ordered by sort_order, to its wire shape.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:        c.ID.String(),
		Kind:      string(c.Kind),
		Name:      c.Name,
		Color:     c.Color,
		SortOrder: c.SortOrder,
	}

	if len(c.Subcategories) > 0 {
		resp.Subcategories = make([]SubcategoryResponse, 0, len(c.Subcategories))
		for _, s := range c.Subcategories {
			resp.Subcategories = append(resp.Subcategories, ToSubcategoryResponse(s))
		}
	}

	return resp
}

// ToCategoryListResponse converts a slice of domain categories.
func ToCategoryListResponse(categories []*domain.Category) CategoryListResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return CategoryListResponse{Categories: out, Count: len(out)}
}

// ExpandSeedCategories turns seed definitions into persistable rows for
// the boot-time seed loader, assigning a fresh id to any
// definition that doesn't pin a well-known one.
func ExpandSeedCategories(defs []domain.SeedCategory, kind domain.Kind) []*domain.Category {
	categories := make([]*domain.Category, 0, len(defs))
	for i, def := range defs {
		id := def.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		cat := &domain.Category{
			ID:        id,
			Kind:      kind,
			Name:      def.Name,
			Color:     def.Color,
			SortOrder: i,
		}

		for j, sub := range def.Subcategories {
			cat.Subcategories = append(cat.Subcategories, domain.Subcategory{
				ID:         uuid.New(),
				CategoryID: id,
				Name:       sub.Name,
				Color:      sub.Color,
				SortOrder:  j,
			})
		}

		categories = append(categories, cat)
	}
	return categories
}
