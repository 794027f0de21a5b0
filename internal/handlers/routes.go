package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Mode selects which route surface the application exposes. It is resolved
// once from configuration at startup, not per request.
type Mode string

const (
	// ModeERP exposes the back-office surface: every resource behind
	// authentication, including checkout for POS sale entry.
	ModeERP Mode = "erp"
	// ModeEcommerce exposes the storefront surface: public product
	// browsing and checkout, orders behind authentication.
	ModeEcommerce Mode = "ecommerce"
)

// ParseMode validates a configured deployment mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeERP, ModeEcommerce:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown deployment mode %q (expected %q or %q)", s, ModeERP, ModeEcommerce)
	}
}

// Registry bundles the handlers and the auth guard needed to assemble a
// route surface.
type Registry struct {
	Auth           *AuthHandler
	Products       *ProductHandler
	Customers      *CustomerHandler
	PaymentMethods *PaymentMethodHandler
	Orders         *OrderHandler
	Checkout       *CheckoutHandler
	AuthGuard      fiber.Handler
	// AdminGuard further restricts reference-data management to admin
	// accounts. It runs after AuthGuard.
	AdminGuard fiber.Handler
}

// Register assembles the route set for the given deployment mode under the
// provided router group.
func Register(router fiber.Router, mode Mode, reg Registry) {
	reg.Auth.RegisterRoutes(router)

	switch mode {
	case ModeEcommerce:
		reg.Products.RegisterPublicRoutes(router)
		reg.Checkout.RegisterRoutes(router)

		protected := router.Group("", reg.AuthGuard)
		reg.Orders.RegisterRoutes(protected)
	default: // ModeERP
		protected := router.Group("", reg.AuthGuard)
		reg.Products.RegisterRoutes(protected)
		reg.Customers.RegisterRoutes(protected)
		reg.Orders.RegisterRoutes(protected)
		reg.Checkout.RegisterRoutes(protected)

		// Payment methods shape how money is taken, so only admins manage them.
		admin := protected.Group("", reg.AdminGuard)
		reg.PaymentMethods.RegisterRoutes(admin)
	}
}
