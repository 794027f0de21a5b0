package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses. An order starts as "pending" and moves through the
// fulfilment pipeline via explicit status transitions.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a persisted cart line captured at checkout time.
// UnitPrice is the price submitted with the cart, not the current catalog price.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	VariantID string  `json:"variant_id,omitempty" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	LineTotal float64 `json:"line_total"`
	gorm.Model
}

// OrderPayment is one entry of a split payment, persisted alongside the order.
type OrderPayment struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID         string    `json:"order_id" gorm:"index;type:varchar(36)"`
	PaymentMethodID string    `json:"payment_method_id" gorm:"type:varchar(36)" validate:"required"`
	MethodKey       string    `json:"method_key" gorm:"type:varchar(50)"`
	Amount          float64   `json:"amount" validate:"gt=0"`
	PayerName       string    `json:"payer_name,omitempty" gorm:"type:varchar(100)"`
	PayerPhone      string    `json:"payer_phone,omitempty" gorm:"type:varchar(30)"`
	PaidAt          time.Time `json:"paid_at"`
	gorm.Model
}

// Order is the durable sale aggregate. It owns its items and payments; all
// three are written in a single transaction at checkout.
type Order struct {
	ID               string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OrderNumber      string         `json:"order_number" gorm:"uniqueIndex;type:varchar(50)" validate:"required"`
	Date             time.Time      `json:"date"`
	CustomerID       string         `json:"customer_id" gorm:"index;type:varchar(36)" validate:"required"`
	BranchID         string         `json:"branch_id,omitempty" gorm:"type:varchar(36)"`
	ShippingMethodID string         `json:"shipping_method_id,omitempty" gorm:"type:varchar(36)"`
	Subtotal         float64        `json:"subtotal"`
	Tax              float64        `json:"tax"`
	Discount         float64        `json:"discount"`
	DiscountType     string         `json:"discount_type,omitempty" gorm:"type:varchar(20)"`
	ShippingCost     float64        `json:"shipping_cost"`
	Total            float64        `json:"total"`
	Status           string         `json:"status" gorm:"type:varchar(20)"`
	CustomerNote     string         `json:"customer_note,omitempty" gorm:"type:varchar(500)"`
	Items            []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	Payments         []OrderPayment `json:"payments" gorm:"foreignKey:OrderID"`
	gorm.Model
}
