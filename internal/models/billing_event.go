package models

import "time"

// BillingEvent logs every payment-provider webhook delivery. The unique
// EventID plus the Processed flag make webhook processing idempotent
// under provider retries.
type BillingEvent struct {
	ID          uint       `gorm:"primaryKey"`
	EventID     string     `gorm:"uniqueIndex;not null"`
	EventType   string     `gorm:"not null"`
	Payload     string
	Processed   bool       `gorm:"not null;default:false"`
	ProcessedAt *time.Time
	ErrorLog    string
	CreatedAt   time.Time
}
