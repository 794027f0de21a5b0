package models

import "gorm.io/gorm"

// Branch is a physical store location an order can be attributed to.
type Branch struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Address    string `json:"address" validate:"omitempty,max=500"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
