package repositories

import (
	"errors"

	"niaga/internal/models"
)

// ErrDuplicateOrderNumber signals that an insert collided with the unique
// index on the order number. Callers translate it into a retryable
// validation error rather than a server failure.
var ErrDuplicateOrderNumber = errors.New("duplicate order number")

// ErrOrderNotFound marks a lookup that matched no order. Callers must
// check for it with errors.Is so an infrastructure failure is never
// mistaken for an absent order.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	// GetByOrderNumber wraps ErrOrderNotFound when no order carries the
	// number; any other error is an infrastructure failure.
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	// Create persists the order together with its items and payments in a
	// single transaction. A collision on the order number returns an error
	// wrapping ErrDuplicateOrderNumber and leaves no rows behind.
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	// Delete(id string) error // Deletion of orders might be complex, so we'll omit for now.
}
