package repositories

import (
	"fmt"
	"sync"

	"niaga/internal/models"

	"github.com/google/uuid"
)

// MockBranchRepository is an in-memory implementation of BranchRepository.
type MockBranchRepository struct {
	branches map[string]models.Branch
	mu       sync.RWMutex
}

// NewMockBranchRepository creates a new instance of MockBranchRepository.
func NewMockBranchRepository() *MockBranchRepository {
	return &MockBranchRepository{
		branches: make(map[string]models.Branch),
	}
}

// GetByID returns a branch by its ID.
func (r *MockBranchRepository) GetByID(id string) (*models.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	branch, ok := r.branches[id]
	if !ok {
		return nil, fmt.Errorf("branch with ID %s not found", id)
	}
	return &branch, nil
}

// Create adds a new branch.
func (r *MockBranchRepository) Create(branch *models.Branch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if branch.ID == "" {
		branch.ID = uuid.New().String()
	}
	r.branches[branch.ID] = *branch
	return nil
}
