package services

import (
	"errors"
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

var (
	ErrShiftAlreadyOpen   = errors.New("an open shift already exists")
	ErrNoOpenShift        = errors.New("no open shift")
	ErrShiftNotRunning    = errors.New("shift is not running")
	ErrShiftNotPaused     = errors.New("shift is not paused")
	ErrShiftAlreadyClosed = errors.New("shift is already closed")
	ErrShiftStillOpen     = errors.New("shift is still open")
	ErrShiftNotFound      = errors.New("shift not found")
)

type ShiftRepository interface {
	FindOpenByUser(userID uint) (models.ShiftSession, bool, error)
	FindByIDForUser(sessionID uint, userID uint) (models.ShiftSession, bool, error)
	Create(session *models.ShiftSession) error
	Save(session *models.ShiftSession) error
}

// ShiftService drives the shift state machine. Every operation loads
// the persisted row fresh and recomputes elapsed time at call instant,
// so a raced duplicate request can never write back a stale cached
// value. Validation happens before any mutation; persistence failures
// propagate unchanged with nothing written.
type ShiftService struct {
	shifts ShiftRepository
}

func NewShiftService(shifts ShiftRepository) *ShiftService {
	return &ShiftService{shifts: shifts}
}

// Start opens a new session. Valid only when the user has no open
// session; the partial unique index at the persistence layer backs the
// same invariant against racing start calls.
func (service *ShiftService) Start(userID uint, now time.Time) (models.ShiftSession, error) {
	_, exists, err := service.shifts.FindOpenByUser(userID)
	if err != nil {
		return models.ShiftSession{}, err
	}
	if exists {
		return models.ShiftSession{}, ErrShiftAlreadyOpen
	}

	session := models.ShiftSession{
		UserID:             userID,
		StartTime:          now,
		TotalActiveSeconds: 0,
	}
	if err := service.shifts.Create(&session); err != nil {
		return models.ShiftSession{}, err
	}
	return session, nil
}

// Pause freezes the running session: the freshly recomputed elapsed
// value becomes the snapshot and PausedAt records the pause instant.
func (service *ShiftService) Pause(userID uint, now time.Time) (models.ShiftSession, int64, error) {
	session, err := service.openSession(userID)
	if err != nil {
		return models.ShiftSession{}, 0, err
	}
	if session.IsPaused {
		return models.ShiftSession{}, 0, ErrShiftNotRunning
	}

	elapsed := ElapsedActiveSeconds(session, now)
	session.TotalActiveSeconds = elapsed
	session.IsPaused = true
	pausedAt := now
	session.PausedAt = &pausedAt

	if err := service.shifts.Save(&session); err != nil {
		return models.ShiftSession{}, 0, err
	}
	return session, elapsed, nil
}

// Resume reopens a paused session. PausedAt now marks the start of the
// new active segment; the accumulated total is unchanged.
func (service *ShiftService) Resume(userID uint, now time.Time) (models.ShiftSession, int64, error) {
	session, err := service.openSession(userID)
	if err != nil {
		return models.ShiftSession{}, 0, err
	}
	if !session.IsPaused {
		return models.ShiftSession{}, 0, ErrShiftNotPaused
	}

	session.IsPaused = false
	segmentStart := now
	session.PausedAt = &segmentStart

	if err := service.shifts.Save(&session); err != nil {
		return models.ShiftSession{}, 0, err
	}
	return session, session.TotalActiveSeconds, nil
}

// Stop closes the session from either Running or Paused, persisting
// the final elapsed value. Stopping twice returns ErrShiftAlreadyClosed
// because the row is re-read before the write.
func (service *ShiftService) Stop(userID uint, now time.Time) (models.ShiftSession, int64, error) {
	session, exists, err := service.shifts.FindOpenByUser(userID)
	if err != nil {
		return models.ShiftSession{}, 0, err
	}
	if !exists {
		return models.ShiftSession{}, 0, ErrShiftAlreadyClosed
	}

	elapsed := ElapsedActiveSeconds(session, now)
	endTime := now
	session.EndTime = &endTime
	session.TotalActiveSeconds = elapsed
	session.IsPaused = false
	session.PausedAt = nil

	if err := service.shifts.Save(&session); err != nil {
		return models.ShiftSession{}, 0, err
	}
	return session, elapsed, nil
}

// Current returns the open session and its live elapsed seconds, for
// reload recovery. The second return is false when no session is open.
func (service *ShiftService) Current(userID uint, now time.Time) (models.ShiftSession, int64, bool, error) {
	session, exists, err := service.shifts.FindOpenByUser(userID)
	if err != nil {
		return models.ShiftSession{}, 0, false, err
	}
	if !exists {
		return models.ShiftSession{}, 0, false, nil
	}
	return session, ElapsedActiveSeconds(session, now), true, nil
}

// StoppedSessionSeconds loads a stopped session owned by the user and
// returns its frozen active seconds, for the day-closing hand-off.
func (service *ShiftService) StoppedSessionSeconds(sessionID uint, userID uint) (models.ShiftSession, int64, error) {
	session, exists, err := service.shifts.FindByIDForUser(sessionID, userID)
	if err != nil {
		return models.ShiftSession{}, 0, err
	}
	if !exists {
		return models.ShiftSession{}, 0, ErrShiftNotFound
	}
	if session.Open() {
		return models.ShiftSession{}, 0, ErrShiftStillOpen
	}
	return session, session.TotalActiveSeconds, nil
}

func (service *ShiftService) openSession(userID uint) (models.ShiftSession, error) {
	session, exists, err := service.shifts.FindOpenByUser(userID)
	if err != nil {
		return models.ShiftSession{}, err
	}
	if !exists {
		return models.ShiftSession{}, ErrNoOpenShift
	}
	return session, nil
}
