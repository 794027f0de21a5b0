package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"niaga/internal/handlers"
	"niaga/internal/models"
	"niaga/internal/repositories"
	"niaga/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// setupCheckoutApp wires the checkout handler against in-memory repositories
// seeded with one customer, one product and one payment method.
func setupCheckoutApp(t *testing.T) (*fiber.App, *repositories.MockOrderRepository) {
	t.Helper()

	orderRepo := repositories.NewMockOrderRepository()
	customerRepo := repositories.NewMockCustomerRepository()
	productRepo := repositories.NewMockProductRepository()
	methodRepo := repositories.NewMockPaymentMethodRepository()
	branchRepo := repositories.NewMockBranchRepository()
	shippingRepo := repositories.NewMockShippingMethodRepository()

	assert.NoError(t, customerRepo.Create(&models.Customer{ID: "cust-1", Name: "Walk-in Customer"}))
	assert.NoError(t, productRepo.Create(&models.Product{ID: "prod-5", Name: "Widget", Price: 9.99, Stock: 10,
		Variants: []models.ProductVariant{{ID: "var-red", Name: "Red", Stock: 4}}}))
	assert.NoError(t, methodRepo.Create(&models.PaymentMethod{ID: "pm-1", Name: "Cash", Key: "cash", Active: true}))

	checkoutService := services.NewCheckoutService(
		orderRepo, customerRepo, productRepo, methodRepo, branchRepo, shippingRepo, nil, nil)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewCheckoutHandler(checkoutService).RegisterRoutes(apiV1)

	return app, orderRepo
}

func postCheckout(t *testing.T, app *fiber.App, payload map[string]interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func TestHandleCheckout_Success(t *testing.T) {
	app, orderRepo := setupCheckoutApp(t)

	resp := postCheckout(t, app, map[string]interface{}{
		"date":        "2025-06-01",
		"customer_id": "cust-1",
		"cart_items": []map[string]interface{}{
			{"product_id": "prod-5", "quantity": 3, "unit_price": 9.99},
		},
		"payment_data": map[string]interface{}{
			"cash": []map[string]interface{}{
				{"amount": 29.97, "payment_method_id": "pm-1", "payer_name": "Ana"},
			},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Order
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.InDelta(t, 29.97, created.Total, 0.001)
	assert.NotEmpty(t, created.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, created.Status)

	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestHandleCheckout_PaymentMismatch(t *testing.T) {
	app, orderRepo := setupCheckoutApp(t)

	resp := postCheckout(t, app, map[string]interface{}{
		"date":        "2025-06-01",
		"customer_id": "cust-1",
		"cart_items": []map[string]interface{}{
			{"product_id": "prod-5", "quantity": 3, "unit_price": 9.99},
		},
		"payment_data": map[string]interface{}{
			"cash": []map[string]interface{}{
				{"amount": 25.00, "payment_method_id": "pm-1"},
			},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Validation failed", errResp.Message)
	assert.Contains(t, errResp.Errors, "paymentData")

	// Nothing may be persisted on a rejected checkout.
	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestHandleCheckout_StringEncodedCart(t *testing.T) {
	app, _ := setupCheckoutApp(t)

	// cart_items and payment_data arrive as JSON-encoded strings; the
	// handler must treat them like the structured equivalents.
	resp := postCheckout(t, app, map[string]interface{}{
		"date":         "2025-06-01",
		"customer_id":  "cust-1",
		"cart_items":   `[{"product_id":"prod-5","quantity":2,"unit_price":10.00}]`,
		"payment_data": `{"cash":[{"amount":20.00,"payment_method_id":"pm-1"}]}`,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Order
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.InDelta(t, 20.00, created.Total, 0.001)
}

func TestHandleCheckout_UnknownVariant(t *testing.T) {
	app, orderRepo := setupCheckoutApp(t)

	// The seeded product only carries the "var-red" variant.
	resp := postCheckout(t, app, map[string]interface{}{
		"date":        "2025-06-01",
		"customer_id": "cust-1",
		"cart_items": []map[string]interface{}{
			{"product_id": "prod-5", "variant_id": "var-blue", "quantity": 1, "unit_price": 9.99},
		},
		"payment_data": map[string]interface{}{
			"cash": []map[string]interface{}{
				{"amount": 9.99, "payment_method_id": "pm-1"},
			},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp struct {
		Errors map[string][]string `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Errors, "cartItems.0.variant_id")

	orders, err := orderRepo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestHandleCheckout_DuplicateOrderNumber(t *testing.T) {
	app, _ := setupCheckoutApp(t)

	payload := map[string]interface{}{
		"date":         "2025-06-01",
		"customer_id":  "cust-1",
		"order_number": "ORD20250601-424242",
		"cart_items": []map[string]interface{}{
			{"product_id": "prod-5", "quantity": 1, "unit_price": 10.00},
		},
		"payment_data": map[string]interface{}{
			"cash": []map[string]interface{}{
				{"amount": 10.00, "payment_method_id": "pm-1"},
			},
		},
	}

	resp := postCheckout(t, app, payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Re-submitting the same order number must yield a validation error,
	// not a server failure.
	resp = postCheckout(t, app, payload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp struct {
		Errors map[string][]string `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Errors, "orderNumber")
}

func TestHandleCheckout_InvalidBody(t *testing.T) {
	app, _ := setupCheckoutApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
