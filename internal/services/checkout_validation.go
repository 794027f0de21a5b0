package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Discount types accepted by the checkout payload. The discount_type field
// is the discriminant selecting which range rule applies to discount.
const (
	DiscountTypeAmount     = "amount"
	DiscountTypePercentage = "percentage"
)

// reconcileTolerance is the rounding slack allowed between the cart total
// and the payment total.
const reconcileTolerance = 0.01

// FieldError is a single validation violation attached to a payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in a checkout payload.
// It implements error so services can return it through normal error paths
// while handlers recover it with errors.As and render a 422.
type ValidationErrors []FieldError

// Error returns a short summary of the first violation.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	if len(v) == 1 {
		return fmt.Sprintf("validation failed: %s %s", v[0].Field, v[0].Message)
	}
	return fmt.Sprintf("validation failed: %s %s (and %d more)", v[0].Field, v[0].Message, len(v)-1)
}

// Fields groups the messages by field key for the HTTP error body.
func (v ValidationErrors) Fields() map[string][]string {
	fields := make(map[string][]string, len(v))
	for _, fe := range v {
		fields[fe.Field] = append(fields[fe.Field], fe.Message)
	}
	return fields
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// CartItem is one product/quantity/price tuple in a checkout submission.
type CartItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	VariantID string  `json:"variant_id"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// PaymentEntry is one amount/method tuple within the payment breakdown.
type PaymentEntry struct {
	Amount          float64 `json:"amount"`
	PaymentMethodID string  `json:"payment_method_id" validate:"required"`
	PayerName       string  `json:"payer_name"`
	PayerPhone      string  `json:"payer_phone"`
	Date            string  `json:"date"`
}

// CheckoutRequest is the raw checkout submission. CartItems and PaymentData
// accept either structured JSON or a JSON-encoded string of it, so they are
// captured as raw messages and decoded during normalization.
type CheckoutRequest struct {
	Date             string          `json:"date"`
	CustomerID       string          `json:"customer_id"`
	OrderNumber      string          `json:"order_number"`
	CartItems        json.RawMessage `json:"cart_items"`
	PaymentData      json.RawMessage `json:"payment_data"`
	BranchID         string          `json:"branch_id"`
	CustomerNote     string          `json:"customer_note"`
	ShippingMethodID string          `json:"shipping_method_id"`
	ShippingCost     float64         `json:"shipping_cost"`
	Tax              float64         `json:"tax"`
	Discount         float64         `json:"discount"`
	DiscountType     string          `json:"discount_type"`
}

// NormalizedCheckout is a CheckoutRequest after pre-parsing and cleanup:
// the date resolved, cart and payment structures decoded, and non-positive
// payment entries discarded.
type NormalizedCheckout struct {
	Date             time.Time
	CustomerID       string
	OrderNumber      string
	CartItems        []CartItem
	PaymentData      map[string][]PaymentEntry
	BranchID         string
	CustomerNote     string
	ShippingMethodID string
	ShippingCost     float64
	Tax              float64
	Discount         float64
	DiscountType     string
}

// NormalizeCheckout prepares a raw submission for validation. It never
// fails: an unparseable date falls back to the current date, and an
// unparseable cart or payment structure yields an empty one, which the
// required rules reject downstream.
func NormalizeCheckout(req CheckoutRequest) NormalizedCheckout {
	nc := NormalizedCheckout{
		Date:             parseDateOrNow(req.Date),
		CustomerID:       req.CustomerID,
		OrderNumber:      req.OrderNumber,
		BranchID:         req.BranchID,
		CustomerNote:     req.CustomerNote,
		ShippingMethodID: req.ShippingMethodID,
		ShippingCost:     req.ShippingCost,
		Tax:              req.Tax,
		Discount:         req.Discount,
		DiscountType:     req.DiscountType,
	}

	decodeFlexible(req.CartItems, &nc.CartItems)

	var rawPayments map[string][]PaymentEntry
	decodeFlexible(req.PaymentData, &rawPayments)
	nc.PaymentData = make(map[string][]PaymentEntry, len(rawPayments))
	for key, entries := range rawPayments {
		kept := make([]PaymentEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.Amount > 0 {
				kept = append(kept, entry)
			}
		}
		if len(kept) > 0 {
			nc.PaymentData[key] = kept
		}
	}

	return nc
}

// decodeFlexible unmarshals raw into v, first unwrapping a JSON-encoded
// string when the payload was double-encoded. Any parse failure leaves v
// untouched.
func decodeFlexible(raw json.RawMessage, v interface{}) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return
		}
		data = []byte(s)
	}
	_ = json.Unmarshal(data, v)
}

func parseDateOrNow(s string) time.Time {
	if s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Now()
}

// CartTotal sums quantity times unit price over all cart items.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// PaymentTotal sums the amounts of every entry across all method groups.
func PaymentTotal(payments map[string][]PaymentEntry) float64 {
	var total float64
	for _, entries := range payments {
		for _, entry := range entries {
			total += entry.Amount
		}
	}
	return total
}

// ReconcilePayments verifies that the payment total covers the cart total
// within the rounding tolerance. On mismatch it returns a single aggregate
// error intended for the paymentData field.
func ReconcilePayments(items []CartItem, payments map[string][]PaymentEntry) error {
	cartTotal := CartTotal(items)
	paymentTotal := PaymentTotal(payments)
	if math.Abs(cartTotal-paymentTotal) < reconcileTolerance {
		return nil
	}
	return fmt.Errorf("payment total %.2f does not match cart total %.2f", paymentTotal, cartTotal)
}

// validateDiscount applies the discount schema selected by the
// discount_type discriminant and returns the violations in order.
func validateDiscount(discount float64, discountType string) []FieldError {
	var errs []FieldError
	switch discountType {
	case "":
		if discount != 0 {
			errs = append(errs, FieldError{Field: "discountType", Message: "is required when a discount is given"})
		}
	case DiscountTypeAmount:
		if discount < 0 {
			errs = append(errs, FieldError{Field: "discount", Message: "must be zero or greater"})
		}
	case DiscountTypePercentage:
		if discount < 0 || discount > 100 {
			errs = append(errs, FieldError{Field: "discount", Message: "must be between 0 and 100"})
		}
	default:
		errs = append(errs, FieldError{Field: "discountType", Message: fmt.Sprintf("must be either '%s' or '%s'", DiscountTypeAmount, DiscountTypePercentage)})
	}
	return errs
}
