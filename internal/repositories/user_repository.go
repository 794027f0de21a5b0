package repositories

import (
	"errors"

	"niaga/internal/models"
)

// ErrUserNotFound marks a lookup that matched no staff account. Callers
// distinguish it from infrastructure failures with errors.Is.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for staff account data access.
// Lookups wrap ErrUserNotFound when no account matches.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
