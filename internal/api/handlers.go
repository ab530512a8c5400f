package api

import (
	"time"

	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, webhookToken string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		webhookToken: webhookToken,
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database), nil
}
