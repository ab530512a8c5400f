package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/services"
)

// SubscriptionRequired gates the tracking features behind an unexpired
// trial or an active paid subscription.
func (handler *Handler) SubscriptionRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if !services.HasActiveSubscription(user, time.Now().In(handler.location)) {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error":               "subscription required",
			"subscription_status": user.SubscriptionStatus,
		})
	}
	return c.Next()
}
