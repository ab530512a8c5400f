package models

import "time"

// ShiftSession tracks one work shift for a driver.
//
// PausedAt is dual-purpose: while IsPaused is true it records when the
// pause began; while the session is open and running it records when
// the current active segment started (the most recent resume), or is
// nil when the first segment is still running from StartTime. This is
// the only persisted signal that lets elapsed active time be rebuilt
// after a client restart.
type ShiftSession struct {
	ID                 uint       `gorm:"primaryKey"`
	UserID             uint       `gorm:"not null;index"`
	StartTime          time.Time  `gorm:"not null"`
	EndTime            *time.Time
	IsPaused           bool       `gorm:"not null;default:false"`
	PausedAt           *time.Time
	TotalActiveSeconds int64      `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Open reports whether the shift has not been stopped yet.
func (session ShiftSession) Open() bool {
	return session.EndTime == nil
}
