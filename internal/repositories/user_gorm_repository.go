package repositories

import (
	"errors"
	"fmt"

	"niaga/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create persists a new staff account.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = models.RoleClerk
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername looks up a staff account by its username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.findOne("username = ?", username)
}

// GetByEmail looks up a staff account by its email address.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.findOne("email = ?", email)
}

// GetByID looks up a staff account by its ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	return r.findOne("id = ?", id)
}

// findOne runs a single-row lookup, mapping a missing row to the
// ErrUserNotFound sentinel and anything else to an infrastructure error.
func (r *GORMUserRepository) findOne(query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no user matches %q: %w", arg, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to look up user by %q: %w", arg, err)
	}
	return &user, nil
}
