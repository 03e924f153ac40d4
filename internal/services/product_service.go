package services

import (
	"context"
	"sort"

	"satuBack/internal/models"
	"satuBack/internal/repositories"
)

type ProductService struct {
	CatalogRepo *repositories.CatalogRepository
}

// GetProductByID returns one listing for the detail page. Sold listings stay
// visible (the storefront renders them with a badge); inactive ones do not
// exist as far as clients are concerned.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	product, err := s.CatalogRepo.GetProductByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if product.Status == models.StatusInactive {
		return models.Product{}, models.ErrProductNotFound
	}
	return product, nil
}

// GetProductsByCategory lists active products of one category, newest first,
// with the same pagination rules as search.
func (s *ProductService) GetProductsByCategory(ctx context.Context, category string, page, limit int) (models.SearchResponse, error) {
	if page < 1 {
		return models.SearchResponse{}, models.ErrInvalidPage
	}
	if limit < 1 || limit > MaxLimit {
		return models.SearchResponse{}, models.ErrInvalidLimit
	}
	if repositories.SubcategoriesOf(category) == nil {
		return models.SearchResponse{}, models.ErrCategoryNotFound
	}

	products := s.CatalogRepo.GetProductsByCategory(ctx, category)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	return models.SearchResponse{
		Products:   paginate(products, page, limit),
		TotalCount: len(products),
		Page:       page,
		Limit:      limit,
		Facets:     buildFacets(products),
	}, nil
}
