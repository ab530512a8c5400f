package models

import "time"

const (
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

const (
	SubscriptionTrial    = "trial"
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
	SubscriptionExpired  = "expired"
)

const DefaultWorkingDaysPerMonth = 22

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Email              string    `gorm:"uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	DisplayName        string
	Role               string    `gorm:"not null;default:driver"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	Plan               string    `gorm:"not null;default:free"`
	SubscriptionStatus string    `gorm:"not null;default:trial"`
	SubscriptionEndsAt *time.Time
	// Work schedule settings used as divisors by the profit calculator.
	TargetMonthlyRevenue float64 `gorm:"not null;default:0"`
	WorkingDaysPerMonth  int     `gorm:"not null;default:22"`
	CreatedAt            time.Time `gorm:"not null"`
}
