package repositories

import (
	"fmt"
	"niaga/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentMethodRepository is a GORM implementation of PaymentMethodRepository.
type GORMPaymentMethodRepository struct {
	db *gorm.DB
}

// NewGORMPaymentMethodRepository creates a new instance of GORMPaymentMethodRepository.
func NewGORMPaymentMethodRepository(db *gorm.DB) *GORMPaymentMethodRepository {
	return &GORMPaymentMethodRepository{
		db: db,
	}
}

// GetAll retrieves all payment methods from the database.
func (r *GORMPaymentMethodRepository) GetAll() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := r.db.Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to get all payment methods: %w", err)
	}
	return methods, nil
}

// GetByID retrieves a single payment method by its ID from the database.
func (r *GORMPaymentMethodRepository) GetByID(id string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.First(&method, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment method with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get payment method by ID %s: %w", id, err)
	}
	return &method, nil
}

// Create creates a new payment method in the database.
func (r *GORMPaymentMethodRepository) Create(method *models.PaymentMethod) error {
	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	if err := r.db.Create(method).Error; err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}
	return nil
}
