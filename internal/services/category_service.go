package services

import (
	"context"

	"satuBack/internal/models"
	"satuBack/internal/repositories"
)

type CategoryService struct {
	CatalogRepo *repositories.CatalogRepository
}

// GetCategories returns the fixed taxonomy with active-product counts.
func (s *CategoryService) GetCategories(ctx context.Context) []models.Category {
	counts := make(map[string]int)
	for _, p := range s.CatalogRepo.Snapshot(ctx) {
		if p.Status == models.StatusActive {
			counts[p.Category]++
		}
	}

	names := repositories.CategoryNames()
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, models.Category{
			Name:          name,
			Subcategories: repositories.SubcategoriesOf(name),
			ProductCount:  counts[name],
		})
	}
	return categories
}

// GetSubcategories returns the subcategories of one taxonomy node.
func (s *CategoryService) GetSubcategories(ctx context.Context, category string) ([]string, error) {
	subcategories := repositories.SubcategoriesOf(category)
	if subcategories == nil {
		return nil, models.ErrCategoryNotFound
	}
	return subcategories, nil
}

// GetBrands returns the supported-brand set.
func (s *CategoryService) GetBrands(ctx context.Context) []string {
	return repositories.Brands()
}
