package handlers

import (
	"fmt"
	"log"

	"niaga/internal/models"
	"niaga/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentMethodHandler handles HTTP requests for payment methods.
type PaymentMethodHandler struct {
	service  *services.PaymentMethodService
	validate *validator.Validate
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(service *services.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment method routes with the Fiber app.
func (h *PaymentMethodHandler) RegisterRoutes(router fiber.Router) {
	methodRoutes := router.Group("/payment-methods")
	methodRoutes.Get("/", h.HandleGetPaymentMethods)
	methodRoutes.Post("/", h.HandleCreatePaymentMethod)
}

// HandleGetPaymentMethods retrieves all payment methods.
func (h *PaymentMethodHandler) HandleGetPaymentMethods(c *fiber.Ctx) error {
	methods, err := h.service.GetAllPaymentMethods()
	if err != nil {
		log.Printf("Error getting all payment methods: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve payment methods",
		})
	}
	return c.JSON(methods)
}

// HandleCreatePaymentMethod creates a new payment method.
func (h *PaymentMethodHandler) HandleCreatePaymentMethod(c *fiber.Ctx) error {
	var method models.PaymentMethod
	if err := c.BodyParser(&method); err != nil {
		log.Printf("Error parsing create payment method request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(method); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreatePaymentMethod(&method); err != nil {
		log.Printf("Error creating payment method: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create payment method",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(method)
}
