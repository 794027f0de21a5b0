package models

import "gorm.io/gorm"

// PaymentMethod is a configured way of paying for an order, e.g. cash,
// cheque or mobile money. Checkout verifies the referenced method exists;
// the Active flag is informational and not enforced at checkout.
type PaymentMethod struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Key        string `json:"key" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=2,max=50"`
	Active     bool   `json:"active"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
