package repositories

import (
	"niaga/internal/models"
)

// BranchRepository defines the interface for branch data access.
type BranchRepository interface {
	GetByID(id string) (*models.Branch, error)
	Create(branch *models.Branch) error
}
