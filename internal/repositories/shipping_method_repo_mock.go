package repositories

import (
	"fmt"
	"sync"

	"niaga/internal/models"

	"github.com/google/uuid"
)

// MockShippingMethodRepository is an in-memory implementation of ShippingMethodRepository.
type MockShippingMethodRepository struct {
	methods map[string]models.ShippingMethod
	mu      sync.RWMutex
}

// NewMockShippingMethodRepository creates a new instance of MockShippingMethodRepository.
func NewMockShippingMethodRepository() *MockShippingMethodRepository {
	return &MockShippingMethodRepository{
		methods: make(map[string]models.ShippingMethod),
	}
}

// GetByID returns a shipping method by its ID.
func (r *MockShippingMethodRepository) GetByID(id string) (*models.ShippingMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	method, ok := r.methods[id]
	if !ok {
		return nil, fmt.Errorf("shipping method with ID %s not found", id)
	}
	return &method, nil
}

// Create adds a new shipping method.
func (r *MockShippingMethodRepository) Create(method *models.ShippingMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	r.methods[method.ID] = *method
	return nil
}
