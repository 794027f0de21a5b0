package repositories

import (
	"fmt"
	"niaga/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShippingMethodRepository is a GORM implementation of ShippingMethodRepository.
type GORMShippingMethodRepository struct {
	db *gorm.DB
}

// NewGORMShippingMethodRepository creates a new instance of GORMShippingMethodRepository.
func NewGORMShippingMethodRepository(db *gorm.DB) *GORMShippingMethodRepository {
	return &GORMShippingMethodRepository{
		db: db,
	}
}

// GetByID retrieves a single shipping method by its ID from the database.
func (r *GORMShippingMethodRepository) GetByID(id string) (*models.ShippingMethod, error) {
	var method models.ShippingMethod
	if err := r.db.First(&method, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("shipping method with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get shipping method by ID %s: %w", id, err)
	}
	return &method, nil
}

// Create creates a new shipping method in the database.
func (r *GORMShippingMethodRepository) Create(method *models.ShippingMethod) error {
	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	if err := r.db.Create(method).Error; err != nil {
		return fmt.Errorf("failed to create shipping method: %w", err)
	}
	return nil
}
