package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"time"

	"niaga/internal/models"
	"niaga/internal/repositories"
	"niaga/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

const orderNumberPrefix = "ORD"

// StockChecker decides whether the requested cart quantities can be
// fulfilled. Checkout runs it after structural validation; a rejection is
// reported on the cartItems field.
type StockChecker interface {
	Check(items []CartItem) error
}

// NoopStockChecker accepts every cart. Inventory enforcement is an
// extension point: wire a real checker into NewCheckoutService to enable it.
type NoopStockChecker struct{}

// Check always reports sufficient stock.
func (NoopStockChecker) Check(items []CartItem) error { return nil }

// CheckoutService handles the sale intake workflow: it normalizes and
// validates a checkout submission, reconciles payments against the cart,
// persists the order atomically, and publishes a sale event.
type CheckoutService struct {
	orderRepo          repositories.OrderRepository
	customerRepo       repositories.CustomerRepository
	productRepo        repositories.ProductRepository
	paymentMethodRepo  repositories.PaymentMethodRepository
	branchRepo         repositories.BranchRepository
	shippingMethodRepo repositories.ShippingMethodRepository
	stockChecker       StockChecker
	mqClient           *rabbitmq.Client
	validate           *validator.Validate
}

// NewCheckoutService creates a new CheckoutService. A nil stockChecker
// falls back to the no-op checker.
func NewCheckoutService(
	orderRepo repositories.OrderRepository,
	customerRepo repositories.CustomerRepository,
	productRepo repositories.ProductRepository,
	paymentMethodRepo repositories.PaymentMethodRepository,
	branchRepo repositories.BranchRepository,
	shippingMethodRepo repositories.ShippingMethodRepository,
	stockChecker StockChecker,
	mqClient *rabbitmq.Client,
) *CheckoutService {
	if stockChecker == nil {
		stockChecker = NoopStockChecker{}
	}

	validate := validator.New()
	// Report violations under the submitted JSON names instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CheckoutService{
		orderRepo:          orderRepo,
		customerRepo:       customerRepo,
		productRepo:        productRepo,
		paymentMethodRepo:  paymentMethodRepo,
		branchRepo:         branchRepo,
		shippingMethodRepo: shippingMethodRepo,
		stockChecker:       stockChecker,
		mqClient:           mqClient,
		validate:           validate,
	}
}

// Checkout runs the full sale intake workflow. It returns the created
// order, or ValidationErrors when the payload is rejected, or a plain
// error when persistence fails unexpectedly.
func (s *CheckoutService) Checkout(req CheckoutRequest) (*models.Order, error) {
	nc := NormalizeCheckout(req)

	if errs := s.ValidateCheckout(nc); len(errs) > 0 {
		return nil, errs
	}

	if err := s.stockChecker.Check(nc.CartItems); err != nil {
		return nil, ValidationErrors{{Field: "cartItems", Message: err.Error()}}
	}

	if nc.OrderNumber == "" {
		nc.OrderNumber = GenerateOrderNumber()
	}

	order := buildOrder(nc)
	if err := s.orderRepo.Create(order); err != nil {
		// Generated numbers are not pre-checked, so a collision can still
		// surface here. The transaction has already rolled back; report it
		// as a retryable validation error.
		if errors.Is(err, repositories.ErrDuplicateOrderNumber) {
			return nil, ValidationErrors{{Field: "orderNumber", Message: fmt.Sprintf("order number %s is already in use", nc.OrderNumber)}}
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishSaleCreated(order)

	return order, nil
}

// ValidateCheckout checks a normalized submission against every rule and
// returns all violations together, never stopping at the first.
func (s *CheckoutService) ValidateCheckout(nc NormalizedCheckout) ValidationErrors {
	var errs ValidationErrors

	if nc.CustomerID == "" {
		errs.add("customerId", "is required")
	} else if _, err := s.customerRepo.GetByID(nc.CustomerID); err != nil {
		errs.add("customerId", fmt.Sprintf("customer %s not found", nc.CustomerID))
	}

	if nc.OrderNumber != "" {
		existing, err := s.orderRepo.GetByOrderNumber(nc.OrderNumber)
		switch {
		case err == nil && existing != nil:
			errs.add("orderNumber", fmt.Sprintf("order number %s is already in use", nc.OrderNumber))
		case err != nil && !errors.Is(err, repositories.ErrOrderNotFound):
			// A failed lookup must not pass for a free number. The submission
			// is rejected as retryable; the unique index stays the backstop.
			errs.add("orderNumber", "could not be checked for uniqueness, retry the request")
		}
	}

	if len(nc.CartItems) == 0 {
		errs.add("cartItems", "must contain at least one item")
	}
	for i, item := range nc.CartItems {
		errs = append(errs, s.structErrors(fmt.Sprintf("cartItems.%d", i), item)...)
		if item.ProductID == "" {
			continue
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			errs.add(fmt.Sprintf("cartItems.%d.product_id", i), fmt.Sprintf("product %s not found", item.ProductID))
			continue
		}
		if item.VariantID != "" && !product.HasVariant(item.VariantID) {
			errs.add(fmt.Sprintf("cartItems.%d.variant_id", i), fmt.Sprintf("variant %s does not belong to product %s", item.VariantID, item.ProductID))
		}
	}

	for _, key := range sortedKeys(nc.PaymentData) {
		for i, entry := range nc.PaymentData[key] {
			prefix := fmt.Sprintf("paymentData.%s.%d", key, i)
			errs = append(errs, s.structErrors(prefix, entry)...)
			if entry.PaymentMethodID != "" {
				if _, err := s.paymentMethodRepo.GetByID(entry.PaymentMethodID); err != nil {
					errs.add("paymentData", fmt.Sprintf("payment method %s not found", entry.PaymentMethodID))
				}
			}
		}
	}

	if nc.BranchID != "" {
		if _, err := s.branchRepo.GetByID(nc.BranchID); err != nil {
			errs.add("branchId", fmt.Sprintf("branch %s not found", nc.BranchID))
		}
	}
	if nc.ShippingMethodID != "" {
		if _, err := s.shippingMethodRepo.GetByID(nc.ShippingMethodID); err != nil {
			errs.add("shippingMethodId", fmt.Sprintf("shipping method %s not found", nc.ShippingMethodID))
		}
	}
	if nc.ShippingCost < 0 {
		errs.add("shippingCost", "must be zero or greater")
	}
	if nc.Tax < 0 {
		errs.add("tax", "must be zero or greater")
	}
	errs = append(errs, validateDiscount(nc.Discount, nc.DiscountType)...)
	if len(nc.CustomerNote) > 500 {
		errs.add("customerNote", "must be at most 500 characters")
	}

	if err := ReconcilePayments(nc.CartItems, nc.PaymentData); err != nil {
		errs.add("paymentData", err.Error())
	}

	return errs
}

// structErrors runs the validator tags of v and prefixes the field keys.
func (s *CheckoutService) structErrors(prefix string, v interface{}) []FieldError {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []FieldError{{Field: prefix, Message: err.Error()}}
	}
	fieldErrs := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fmt.Sprintf("%s.%s", prefix, fe.Field()),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return fieldErrs
}

// GenerateOrderNumber produces a fresh candidate order number: a fixed
// prefix, the current date, and a random six digit suffix. Uniqueness is
// not guaranteed here; the database unique index is the backstop.
func GenerateOrderNumber() string {
	return fmt.Sprintf("%s%s-%06d", orderNumberPrefix, time.Now().Format("20060102"), rand.Intn(1000000))
}

// buildOrder materializes the normalized submission into the order
// aggregate. The order total is the cart subtotal, which is what the
// payments were reconciled against.
func buildOrder(nc NormalizedCheckout) *models.Order {
	subtotal := CartTotal(nc.CartItems)

	items := make([]models.OrderItem, 0, len(nc.CartItems))
	for _, item := range nc.CartItems {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: float64(item.Quantity) * item.UnitPrice,
		})
	}

	var payments []models.OrderPayment
	for _, key := range sortedKeys(nc.PaymentData) {
		for _, entry := range nc.PaymentData[key] {
			paidAt := nc.Date
			if t := parseDateOrNow(entry.Date); entry.Date != "" {
				paidAt = t
			}
			payments = append(payments, models.OrderPayment{
				PaymentMethodID: entry.PaymentMethodID,
				MethodKey:       key,
				Amount:          entry.Amount,
				PayerName:       entry.PayerName,
				PayerPhone:      entry.PayerPhone,
				PaidAt:          paidAt,
			})
		}
	}

	return &models.Order{
		OrderNumber:      nc.OrderNumber,
		Date:             nc.Date,
		CustomerID:       nc.CustomerID,
		BranchID:         nc.BranchID,
		ShippingMethodID: nc.ShippingMethodID,
		Subtotal:         subtotal,
		Tax:              nc.Tax,
		Discount:         nc.Discount,
		DiscountType:     nc.DiscountType,
		ShippingCost:     nc.ShippingCost,
		Total:            subtotal,
		Status:           models.OrderStatusPending,
		CustomerNote:     nc.CustomerNote,
		Items:            items,
		Payments:         payments,
	}
}

// publishSaleCreated emits a sale.created event. Publishing is best effort:
// a broker failure never fails the checkout that already committed.
func (s *CheckoutService) publishSaleCreated(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping sale event publication.")
		return
	}

	event := map[string]interface{}{
		"orderID":     order.ID,
		"orderNumber": order.OrderNumber,
		"customerID":  order.CustomerID,
		"status":      order.Status,
		"total":       order.Total,
	}
	if err := s.mqClient.PublishSaleCreated(event); err != nil {
		log.Printf("Warning: Failed to publish sale created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published sale created event for order %s", order.ID)
	}
}

func sortedKeys(payments map[string][]PaymentEntry) []string {
	keys := make([]string, 0, len(payments))
	for key := range payments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
