package repositories

import (
	"errors"
	"strings"

	"fhr-mart/models"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogRepository struct {
	products []models.Product
	byID     map[string]models.Product
}

func NewCatalogRepository() *CatalogRepository {
	byID := make(map[string]models.Product, len(catalogProducts))
	for _, p := range catalogProducts {
		byID[p.ID] = p
	}
	return &CatalogRepository{
		products: catalogProducts,
		byID:     byID,
	}
}

func (r *CatalogRepository) GetAllCategories() []models.Category {
	return models.AllCategories()
}

// GetAllProducts returns the catalog in its original order. Callers get a copy
// of the slice; the records themselves never change after startup.
func (r *CatalogRepository) GetAllProducts() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *CatalogRepository) GetProductByID(id string) (models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Filter returns the products whose name contains search (case-insensitive)
// and whose category matches, preserving catalog order. The All category
// matches every product. Empty inputs are valid, not errors.
func (r *CatalogRepository) Filter(search string, category models.Category) []models.Product {
	search = strings.ToLower(search)

	matched := []models.Product{}
	for _, p := range r.products {
		if !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != models.CategoryAll && p.Category != category {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
