package services

import (
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

// TrialPeriodDays is how long a fresh account can use the tracker
// before a payment is required.
const TrialPeriodDays = 7

// PremiumPeriodDays is the access window granted per confirmed payment.
const PremiumPeriodDays = 30

// HasActiveSubscription decides whether the user may reach the gated
// tracking features. Admins always pass. Trial, active and canceled
// subscribers pass while their window has not expired: canceling stops
// renewal, not the already-paid period. A missing expiry on an active
// subscription is treated as open-ended.
func HasActiveSubscription(user *models.User, now time.Time) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}

	switch user.SubscriptionStatus {
	case models.SubscriptionTrial, models.SubscriptionActive:
		if user.SubscriptionEndsAt == nil {
			return true
		}
		return now.Before(*user.SubscriptionEndsAt)
	case models.SubscriptionCanceled:
		// No renewal, so access only lasts as far as the recorded
		// paid-through instant.
		return user.SubscriptionEndsAt != nil && now.Before(*user.SubscriptionEndsAt)
	default:
		return false
	}
}

// NewTrialWindow returns the subscription fields for a fresh account.
func NewTrialWindow(now time.Time) (string, string, *time.Time) {
	endsAt := now.AddDate(0, 0, TrialPeriodDays)
	return models.PlanFree, models.SubscriptionTrial, &endsAt
}
