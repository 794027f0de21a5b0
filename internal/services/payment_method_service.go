package services

import (
	"niaga/internal/models"
	"niaga/internal/repositories"
)

// PaymentMethodService handles business logic related to payment methods.
type PaymentMethodService struct {
	repo repositories.PaymentMethodRepository
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(repo repositories.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{
		repo: repo,
	}
}

// GetAllPaymentMethods retrieves all payment methods.
func (s *PaymentMethodService) GetAllPaymentMethods() ([]models.PaymentMethod, error) {
	return s.repo.GetAll()
}

// CreatePaymentMethod creates a new payment method.
func (s *PaymentMethodService) CreatePaymentMethod(method *models.PaymentMethod) error {
	return s.repo.Create(method)
}
