package models

import "gorm.io/gorm"

// Customer represents a buyer referenced by orders. Storefront buyers and
// back-office walk-in customers share this record type.
type Customer struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"type:varchar(255)" validate:"omitempty,email"`
	Phone      string `json:"phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	Address    string `json:"address" validate:"omitempty,max=500"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
