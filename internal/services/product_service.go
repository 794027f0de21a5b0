package services

import (
	"errors"
	"fmt"
	"strings"

	"niaga/internal/models"
	"niaga/internal/repositories"
)

// ErrDuplicateVariantName is returned when a product carries two variants
// with the same name.
var ErrDuplicateVariantName = errors.New("duplicate variant name")

// ProductService handles business logic for the catalog, including the
// variant set attached to each product.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves the catalog with variants.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product with its variants.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product after checking its variant set.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := checkVariantNames(product); err != nil {
		return err
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product and replaces its variant set.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := checkVariantNames(product); err != nil {
		return err
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product and its variants by product ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// checkVariantNames rejects a product whose variants collide on name.
// Comparison is case-insensitive since the names face customers.
func checkVariantNames(product *models.Product) error {
	seen := make(map[string]struct{}, len(product.Variants))
	for _, v := range product.Variants {
		key := strings.ToLower(v.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateVariantName, v.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
