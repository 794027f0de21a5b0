package repositories

import (
	"niaga/internal/models"
)

// ProductRepository defines the interface for catalog data access. Reads
// return products with their variants loaded; writes persist the product
// together with its variant set.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
