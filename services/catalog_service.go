package services

import (
	"sync"

	"fhr-mart/models"
	"fhr-mart/repositories"
)

type CatalogService struct {
	catalogRepo *repositories.CatalogRepository

	mu           sync.Mutex
	lastSearch   string
	lastCategory models.Category
	lastResult   []models.Product
	hasResult    bool
}

func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) GetAllCategories() []models.Category {
	return s.catalogRepo.GetAllCategories()
}

func (s *CatalogService) GetProductByID(id string) (models.Product, error) {
	return s.catalogRepo.GetProductByID(id)
}

// Filter recomputes the visible product subset for a search term and category.
// Only the most recent input pair is memoized; any other input recomputes.
func (s *CatalogService) Filter(search string, category models.Category) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasResult && search == s.lastSearch && category == s.lastCategory {
		return s.lastResult
	}

	result := s.catalogRepo.Filter(search, category)
	s.lastSearch = search
	s.lastCategory = category
	s.lastResult = result
	s.hasResult = true
	return result
}
