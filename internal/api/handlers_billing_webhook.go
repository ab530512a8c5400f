package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/security"
	"github.com/voltadev/shiftbook/internal/services"
)

const webhookEventIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// BillingWebhook ingests payment-provider deliveries. The provider
// retries on any non-2xx response, so every delivery we have safely
// recorded answers 200 even when it changes nothing.
func (handler *Handler) BillingWebhook(c *fiber.Ctx) error {
	if !handler.webhookTokenValid(c) {
		return apiError(c, fiber.StatusUnauthorized, "invalid webhook token")
	}

	event, err := parseWebhookEvent(c.Body())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if event.EventID == "" {
		// Some providers omit a delivery id; synthesize one so the
		// event log row can still be created.
		generated, genErr := security.RandomString(24, webhookEventIDAlphabet)
		if genErr != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to process event")
		}
		event.EventID = "generated-" + generated
	}

	outcome, err := handler.billingService.ProcessEvent(event, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrBillingCustomerMissing) {
			return apiError(c, fiber.StatusBadRequest, "customer email missing")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to process event")
	}

	return c.JSON(fiber.Map{
		"ok":         true,
		"duplicate":  outcome.Duplicate,
		"user_found": outcome.UserFound,
		"applied":    outcome.Applied,
	})
}

func (handler *Handler) webhookTokenValid(c *fiber.Ctx) bool {
	if strings.TrimSpace(handler.webhookToken) == "" {
		return false
	}

	candidates := []string{
		strings.TrimSpace(c.Query("token")),
		strings.TrimSpace(c.Get("X-Webhook-Token")),
	}
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		candidates = append(candidates, strings.TrimSpace(header[len("bearer "):]))
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(handler.webhookToken)) == 1 {
			return true
		}
	}
	return false
}

// parseWebhookEvent pulls the id, type, and customer email out of a
// provider payload without binding to one provider's schema.
func parseWebhookEvent(body []byte) (services.WebhookEvent, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return services.WebhookEvent{}, err
	}

	event := services.WebhookEvent{
		EventID:       firstStringField(payload, "id", "event_id", "order_id", "transaction_id"),
		EventType:     firstStringField(payload, "event", "event_type", "type", "status", "order_status", "webhook_event_type"),
		CustomerEmail: firstStringField(payload, "customer_email", "email"),
		RawPayload:    string(body),
	}

	if event.CustomerEmail == "" {
		for _, nested := range []string{"customer", "Customer", "buyer", "subscriber"} {
			if section, ok := payload[nested].(map[string]any); ok {
				if email := firstStringField(section, "email", "Email"); email != "" {
					event.CustomerEmail = email
					break
				}
			}
		}
	}
	return event, nil
}

func firstStringField(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := payload[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
