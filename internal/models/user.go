package models

import "gorm.io/gorm"

// Back-office roles. Clerks run the POS flows; admins additionally manage
// reference data such as payment methods.
const (
	RoleAdmin = "admin"
	RoleClerk = "clerk"
)

// User is a staff account. Role gates the back-office surface and BranchID
// ties the account to the branch it operates from.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(20)" validate:"omitempty,oneof=admin clerk"`
	BranchID   string `json:"branch_id,omitempty" gorm:"type:varchar(36)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
