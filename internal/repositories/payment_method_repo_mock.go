package repositories

import (
	"fmt"
	"sync"

	"niaga/internal/models"

	"github.com/google/uuid"
)

// MockPaymentMethodRepository is an in-memory implementation of PaymentMethodRepository.
type MockPaymentMethodRepository struct {
	methods map[string]models.PaymentMethod
	mu      sync.RWMutex
}

// NewMockPaymentMethodRepository creates a new instance of MockPaymentMethodRepository.
func NewMockPaymentMethodRepository() *MockPaymentMethodRepository {
	return &MockPaymentMethodRepository{
		methods: make(map[string]models.PaymentMethod),
	}
}

// GetAll returns all payment methods.
func (r *MockPaymentMethodRepository) GetAll() ([]models.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	methodList := make([]models.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		methodList = append(methodList, m)
	}
	return methodList, nil
}

// GetByID returns a payment method by its ID.
func (r *MockPaymentMethodRepository) GetByID(id string) (*models.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	method, ok := r.methods[id]
	if !ok {
		return nil, fmt.Errorf("payment method with ID %s not found", id)
	}
	return &method, nil
}

// Create adds a new payment method.
func (r *MockPaymentMethodRepository) Create(method *models.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	r.methods[method.ID] = *method
	return nil
}
