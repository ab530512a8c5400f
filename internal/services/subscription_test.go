package services

import (
	"testing"
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

func TestHasActiveSubscription(t *testing.T) {
	now := mustParseShiftInstant(t, "2026-03-02 12:00:00")
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "admin always passes", user: &models.User{Role: models.RoleAdmin, SubscriptionStatus: models.SubscriptionExpired}, want: true},
		{name: "trial within window", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionTrial, SubscriptionEndsAt: &future}, want: true},
		{name: "trial expired", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionTrial, SubscriptionEndsAt: &past}, want: false},
		{name: "active within window", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionActive, SubscriptionEndsAt: &future}, want: true},
		{name: "active lapsed", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionActive, SubscriptionEndsAt: &past}, want: false},
		{name: "active without expiry is open-ended", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionActive}, want: true},
		{name: "canceled inside paid window keeps access", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionCanceled, SubscriptionEndsAt: &future}, want: true},
		{name: "canceled past paid window", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionCanceled, SubscriptionEndsAt: &past}, want: false},
		{name: "canceled without recorded window", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionCanceled}, want: false},
		{name: "expired", user: &models.User{Role: models.RoleDriver, SubscriptionStatus: models.SubscriptionExpired}, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := HasActiveSubscription(test.user, now); got != test.want {
				t.Fatalf("HasActiveSubscription() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestNewTrialWindow(t *testing.T) {
	now := mustParseShiftInstant(t, "2026-03-02 12:00:00")

	plan, status, endsAt := NewTrialWindow(now)
	if plan != models.PlanFree || status != models.SubscriptionTrial {
		t.Fatalf("expected free trial, got plan=%q status=%q", plan, status)
	}
	if endsAt == nil || !endsAt.Equal(now.AddDate(0, 0, TrialPeriodDays)) {
		t.Fatalf("expected trial end %d days out, got %v", TrialPeriodDays, endsAt)
	}
}
