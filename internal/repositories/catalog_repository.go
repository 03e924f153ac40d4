package repositories

import (
	"context"

	"satuBack/internal/models"
)

// CatalogRepository holds the in-memory product catalog. It is built once at
// startup and injected into the services; after construction it is read-only,
// so concurrent requests can share it without locking. Callers must not
// mutate the slice returned by Snapshot.
type CatalogRepository struct {
	products []models.Product
	byID     map[string]int
}

func NewCatalogRepository(products []models.Product) *CatalogRepository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &CatalogRepository{products: products, byID: byID}
}

// Snapshot returns the full catalog in insertion order.
func (r *CatalogRepository) Snapshot(ctx context.Context) []models.Product {
	return r.products
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, models.ErrProductNotFound
	}
	return r.products[i], nil
}

// GetProductsByCategory returns active products of one category,
// preserving catalog order.
func (r *CatalogRepository) GetProductsByCategory(ctx context.Context, category string) []models.Product {
	var result []models.Product
	for _, p := range r.products {
		if p.Status == models.StatusActive && p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

func (r *CatalogRepository) Size() int {
	return len(r.products)
}
