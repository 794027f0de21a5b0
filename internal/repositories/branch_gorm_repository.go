package repositories

import (
	"fmt"
	"niaga/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBranchRepository is a GORM implementation of BranchRepository.
type GORMBranchRepository struct {
	db *gorm.DB
}

// NewGORMBranchRepository creates a new instance of GORMBranchRepository.
func NewGORMBranchRepository(db *gorm.DB) *GORMBranchRepository {
	return &GORMBranchRepository{
		db: db,
	}
}

// GetByID retrieves a single branch by its ID from the database.
func (r *GORMBranchRepository) GetByID(id string) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.First(&branch, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("branch with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get branch by ID %s: %w", id, err)
	}
	return &branch, nil
}

// Create creates a new branch in the database.
func (r *GORMBranchRepository) Create(branch *models.Branch) error {
	if branch.ID == "" {
		branch.ID = uuid.New().String()
	}
	if err := r.db.Create(branch).Error; err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}
	return nil
}
