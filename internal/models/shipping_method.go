package models

import "gorm.io/gorm"

// ShippingMethod is a configured delivery option with a base cost. The
// cost submitted at checkout may override the base cost for a given order.
type ShippingMethod struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	BaseCost   float64 `json:"base_cost" validate:"gte=0"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
