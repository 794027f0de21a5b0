package models

import "gorm.io/gorm"

// ProductVariant is a sellable variation of a product, e.g. a size or a
// colour. Cart items referencing a variant must name one that belongs to
// the product they order.
type ProductVariant struct {
	ID              string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID       string  `json:"product_id" gorm:"index;type:varchar(36)"`
	Name            string  `json:"name" validate:"required,min=1,max=100"`
	SKU             string  `json:"sku,omitempty" gorm:"type:varchar(64)"`
	PriceAdjustment float64 `json:"price_adjustment"`
	Stock           int     `json:"stock" validate:"gte=0"`
	gorm.Model
}

// Product is a catalog entry. Price and Stock describe the base product;
// variants carry their own stock and a price adjustment relative to it.
type Product struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string           `json:"name" validate:"required,min=3,max=100"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Price       float64          `json:"price" validate:"required,gt=0"`
	Stock       int              `json:"stock" validate:"gte=0"`
	Variants    []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
	gorm.Model                   // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasVariant reports whether the given variant ID belongs to this product.
func (p *Product) HasVariant(variantID string) bool {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return true
		}
	}
	return false
}
