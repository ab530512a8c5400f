package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

var ErrBillingCustomerMissing = errors.New("billing event has no customer email")

type BillingEventRepository interface {
	FindByEventID(eventID string) (models.BillingEvent, bool, error)
	Create(event *models.BillingEvent) error
	Save(event *models.BillingEvent) error
}

type BillingUserRepository interface {
	LookupByNormalizedEmail(email string) (models.User, bool, error)
	UpdateByID(userID uint, updates map[string]any) error
}

// BillingOutcome tells the webhook handler how a delivery was handled.
type BillingOutcome struct {
	Duplicate bool
	UserFound bool
	Applied   string
}

// WebhookEvent is the provider-agnostic view of one payment event
// after tolerant payload extraction.
type WebhookEvent struct {
	EventID       string
	EventType     string
	CustomerEmail string
	RawPayload    string
}

// BillingService applies payment-provider events to user subscription
// state. Processing is idempotent: the unique event id plus the
// processed flag make provider retries harmless.
type BillingService struct {
	events BillingEventRepository
	users  BillingUserRepository
}

func NewBillingService(events BillingEventRepository, users BillingUserRepository) *BillingService {
	return &BillingService{events: events, users: users}
}

// ProcessEvent records and applies one webhook delivery. Already
// processed events short-circuit as duplicates. An event for an
// unknown customer is still recorded (with an error log) so the
// provider stops retrying it.
func (service *BillingService) ProcessEvent(incoming WebhookEvent, now time.Time) (BillingOutcome, error) {
	email := strings.ToLower(strings.TrimSpace(incoming.CustomerEmail))
	if email == "" {
		return BillingOutcome{}, ErrBillingCustomerMissing
	}

	event, exists, err := service.events.FindByEventID(incoming.EventID)
	if err != nil {
		return BillingOutcome{}, err
	}
	if exists && event.Processed {
		return BillingOutcome{Duplicate: true}, nil
	}
	if !exists {
		event = models.BillingEvent{
			EventID:   incoming.EventID,
			EventType: incoming.EventType,
			Payload:   incoming.RawPayload,
		}
		if err := service.events.Create(&event); err != nil {
			return BillingOutcome{}, err
		}
	}

	user, found, err := service.users.LookupByNormalizedEmail(email)
	if err != nil {
		return BillingOutcome{}, err
	}
	if !found {
		if markErr := service.markProcessed(&event, now, fmt.Sprintf("no user found for email %s", email)); markErr != nil {
			return BillingOutcome{}, markErr
		}
		return BillingOutcome{UserFound: false}, nil
	}

	applied, err := service.applyTransition(user.ID, incoming.EventType, now)
	if err != nil {
		return BillingOutcome{}, err
	}

	if err := service.markProcessed(&event, now, ""); err != nil {
		return BillingOutcome{}, err
	}
	return BillingOutcome{UserFound: true, Applied: applied}, nil
}

func (service *BillingService) applyTransition(userID uint, eventType string, now time.Time) (string, error) {
	switch normalizeBillingEventType(eventType) {
	case "paid":
		periodEnd := now.AddDate(0, 0, PremiumPeriodDays)
		return "activated", service.users.UpdateByID(userID, map[string]any{
			"plan":                 models.PlanPremium,
			"subscription_status":  models.SubscriptionActive,
			"subscription_ends_at": periodEnd,
		})
	case "canceled":
		return "canceled", service.users.UpdateByID(userID, map[string]any{
			"subscription_status": models.SubscriptionCanceled,
		})
	case "refunded":
		return "revoked", service.users.UpdateByID(userID, map[string]any{
			"plan":                 models.PlanFree,
			"subscription_status":  models.SubscriptionExpired,
			"subscription_ends_at": now,
		})
	default:
		return "ignored", nil
	}
}

func normalizeBillingEventType(eventType string) string {
	switch strings.ToLower(strings.TrimSpace(eventType)) {
	case "paid", "approved", "order_approved", "compra_aprovada":
		return "paid"
	case "canceled", "cancelled", "subscription_canceled", "subscription_cancelled":
		return "canceled"
	case "refunded", "chargeback", "chargedback", "order_refunded":
		return "refunded"
	default:
		return ""
	}
}

func (service *BillingService) markProcessed(event *models.BillingEvent, now time.Time, errorLog string) error {
	processedAt := now
	event.Processed = true
	event.ProcessedAt = &processedAt
	event.ErrorLog = errorLog
	return service.events.Save(event)
}
