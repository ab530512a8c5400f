package services

import (
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

// SegmentStart resolves when the current active segment of a running
// session began. PausedAt marks the most recent resume when set; the
// first segment runs from StartTime.
func SegmentStart(session models.ShiftSession) time.Time {
	if session.PausedAt != nil {
		return *session.PausedAt
	}
	return session.StartTime
}

// ElapsedActiveSeconds rebuilds the session's active time from the
// persisted row and the current instant alone, so the value survives
// client restarts. Closed and paused sessions are frozen at their last
// snapshot; a running session adds the floored wall-clock delta of the
// current segment, clamped at zero against clock skew.
func ElapsedActiveSeconds(session models.ShiftSession, now time.Time) int64 {
	if session.EndTime != nil {
		return session.TotalActiveSeconds
	}
	if session.IsPaused {
		return session.TotalActiveSeconds
	}

	liveDelta := int64(now.Sub(SegmentStart(session)) / time.Second)
	if liveDelta < 0 {
		liveDelta = 0
	}
	return session.TotalActiveSeconds + liveDelta
}
