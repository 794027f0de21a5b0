package repositories

import (
	"niaga/internal/models"
)

// ShippingMethodRepository defines the interface for shipping method data access.
type ShippingMethodRepository interface {
	GetByID(id string) (*models.ShippingMethod, error)
	Create(method *models.ShippingMethod) error
}
