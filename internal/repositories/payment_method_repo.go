package repositories

import (
	"niaga/internal/models"
)

// PaymentMethodRepository defines the interface for payment method data access.
type PaymentMethodRepository interface {
	GetAll() ([]models.PaymentMethod, error)
	GetByID(id string) (*models.PaymentMethod, error)
	Create(method *models.PaymentMethod) error
}
