package repositories

import (
	"fmt"
	"sync"

	"niaga/internal/models"

	"github.com/google/uuid"
)

// MockCustomerRepository is an in-memory implementation of CustomerRepository.
type MockCustomerRepository struct {
	customers map[string]models.Customer
	mu        sync.RWMutex
}

// NewMockCustomerRepository creates a new instance of MockCustomerRepository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]models.Customer),
	}
}

// GetAll returns all customers.
func (r *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customerList := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customerList = append(customerList, c)
	}
	return customerList, nil
}

// GetByID returns a customer by its ID.
func (r *MockCustomerRepository) GetByID(id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer with ID %s not found", id)
	}
	return &customer, nil
}

// Create adds a new customer.
func (r *MockCustomerRepository) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	r.customers[customer.ID] = *customer
	return nil
}

// Update modifies an existing customer.
func (r *MockCustomerRepository) Update(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.customers[customer.ID]
	if !ok {
		return fmt.Errorf("customer with ID %s not found for update", customer.ID)
	}
	r.customers[customer.ID] = *customer
	return nil
}

// Delete removes a customer by its ID.
func (r *MockCustomerRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.customers[id]
	if !ok {
		return fmt.Errorf("customer with ID %s not found for deletion", id)
	}
	delete(r.customers, id)
	return nil
}
