package services

import (
	"errors"
	"testing"
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

type stubShiftRepository struct {
	sessions map[uint]*models.ShiftSession
	nextID   uint

	findErr   error
	createErr error
	saveErr   error

	createCalls int
	saveCalls   int
}

func newStubShiftRepository() *stubShiftRepository {
	return &stubShiftRepository{sessions: map[uint]*models.ShiftSession{}, nextID: 1}
}

func (stub *stubShiftRepository) FindOpenByUser(userID uint) (models.ShiftSession, bool, error) {
	if stub.findErr != nil {
		return models.ShiftSession{}, false, stub.findErr
	}
	for _, session := range stub.sessions {
		if session.UserID == userID && session.EndTime == nil {
			return *session, true, nil
		}
	}
	return models.ShiftSession{}, false, nil
}

func (stub *stubShiftRepository) FindByIDForUser(sessionID uint, userID uint) (models.ShiftSession, bool, error) {
	if stub.findErr != nil {
		return models.ShiftSession{}, false, stub.findErr
	}
	session, exists := stub.sessions[sessionID]
	if !exists || session.UserID != userID {
		return models.ShiftSession{}, false, nil
	}
	return *session, true, nil
}

func (stub *stubShiftRepository) Create(session *models.ShiftSession) error {
	stub.createCalls++
	if stub.createErr != nil {
		return stub.createErr
	}
	session.ID = stub.nextID
	stub.nextID++
	stored := *session
	stub.sessions[session.ID] = &stored
	return nil
}

func (stub *stubShiftRepository) Save(session *models.ShiftSession) error {
	stub.saveCalls++
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stored := *session
	stub.sessions[session.ID] = &stored
	return nil
}

func TestShiftStartCreatesFreshSession(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	now := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	session, err := service.Start(7, now)
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if !session.StartTime.Equal(now) {
		t.Fatalf("expected start time %v, got %v", now, session.StartTime)
	}
	if session.TotalActiveSeconds != 0 || session.IsPaused || session.PausedAt != nil {
		t.Fatalf("expected pristine session, got %#v", session)
	}
}

func TestShiftStartRejectsSecondOpenSession(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	now := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, now); err != nil {
		t.Fatalf("first Start() unexpected error: %v", err)
	}
	if _, err := service.Start(7, now.Add(time.Minute)); !errors.Is(err, ErrShiftAlreadyOpen) {
		t.Fatalf("expected ErrShiftAlreadyOpen, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected a single create, got %d", repo.createCalls)
	}
}

func TestShiftPauseSnapshotsElapsed(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	pauseAt := start.Add(time.Hour)
	session, elapsed, err := service.Pause(7, pauseAt)
	if err != nil {
		t.Fatalf("Pause() unexpected error: %v", err)
	}
	if elapsed != 3600 {
		t.Fatalf("expected 3600 elapsed at pause, got %d", elapsed)
	}
	if !session.IsPaused || session.PausedAt == nil || !session.PausedAt.Equal(pauseAt) {
		t.Fatalf("expected paused session at %v, got %#v", pauseAt, session)
	}
	if session.TotalActiveSeconds != 3600 {
		t.Fatalf("expected snapshot 3600 persisted, got %d", session.TotalActiveSeconds)
	}
}

func TestShiftPauseWhilePausedRejected(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if _, _, err := service.Pause(7, start.Add(time.Minute)); err != nil {
		t.Fatalf("Pause() unexpected error: %v", err)
	}
	if _, _, err := service.Pause(7, start.Add(2*time.Minute)); !errors.Is(err, ErrShiftNotRunning) {
		t.Fatalf("expected ErrShiftNotRunning, got %v", err)
	}
}

func TestShiftResumeMarksNewSegmentStart(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if _, _, err := service.Pause(7, start.Add(time.Hour)); err != nil {
		t.Fatalf("Pause() unexpected error: %v", err)
	}

	resumeAt := start.Add(90 * time.Minute)
	session, elapsed, err := service.Resume(7, resumeAt)
	if err != nil {
		t.Fatalf("Resume() unexpected error: %v", err)
	}
	if elapsed != 3600 {
		t.Fatalf("expected elapsed unchanged at 3600, got %d", elapsed)
	}
	if session.IsPaused || session.PausedAt == nil || !session.PausedAt.Equal(resumeAt) {
		t.Fatalf("expected running session with segment start %v, got %#v", resumeAt, session)
	}
}

func TestShiftResumeWhileRunningRejected(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if _, _, err := service.Resume(7, start.Add(time.Minute)); !errors.Is(err, ErrShiftNotPaused) {
		t.Fatalf("expected ErrShiftNotPaused, got %v", err)
	}
}

// start, run 1h, pause, resume, run 30min, stop: the distilled shift
// scenario must end at 5400 accumulated seconds.
func TestShiftFullCycleAccumulatesSegments(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if _, _, err := service.Pause(7, start.Add(time.Hour)); err != nil {
		t.Fatalf("Pause() unexpected error: %v", err)
	}
	resumeAt := start.Add(2 * time.Hour)
	if _, _, err := service.Resume(7, resumeAt); err != nil {
		t.Fatalf("Resume() unexpected error: %v", err)
	}

	session, elapsed, err := service.Stop(7, resumeAt.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("Stop() unexpected error: %v", err)
	}
	if elapsed != 5400 {
		t.Fatalf("expected final 5400 seconds, got %d", elapsed)
	}
	if session.EndTime == nil || session.IsPaused || session.PausedAt != nil {
		t.Fatalf("expected closed session with cleared pause fields, got %#v", session)
	}
	if session.TotalActiveSeconds != 5400 {
		t.Fatalf("expected persisted total 5400, got %d", session.TotalActiveSeconds)
	}
}

// Reconstruction is invariant under segmentation: many pause/resume
// cycles produce the same total as the sum of running intervals.
func TestShiftSegmentationInvariance(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	clock := mustParseShiftInstant(t, "2026-03-02 06:00:00")

	if _, err := service.Start(7, clock); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	runIntervals := []time.Duration{13 * time.Minute, 47 * time.Minute, 5 * time.Second, 2 * time.Hour}
	pauseIntervals := []time.Duration{3 * time.Minute, 90 * time.Minute, 11 * time.Second, 25 * time.Minute}

	var expected int64
	for index, run := range runIntervals {
		clock = clock.Add(run)
		expected += int64(run / time.Second)
		if _, _, err := service.Pause(7, clock); err != nil {
			t.Fatalf("Pause() cycle %d unexpected error: %v", index, err)
		}
		clock = clock.Add(pauseIntervals[index])
		if _, _, err := service.Resume(7, clock); err != nil {
			t.Fatalf("Resume() cycle %d unexpected error: %v", index, err)
		}
	}

	_, elapsed, err := service.Stop(7, clock)
	if err != nil {
		t.Fatalf("Stop() unexpected error: %v", err)
	}
	if elapsed != expected {
		t.Fatalf("expected %d accumulated seconds across segments, got %d", expected, elapsed)
	}
}

func TestShiftStopTwiceReportsAlreadyClosed(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if _, _, err := service.Stop(7, start.Add(time.Hour)); err != nil {
		t.Fatalf("Stop() unexpected error: %v", err)
	}
	if _, _, err := service.Stop(7, start.Add(2*time.Hour)); !errors.Is(err, ErrShiftAlreadyClosed) {
		t.Fatalf("expected ErrShiftAlreadyClosed, got %v", err)
	}
}

func TestShiftPersistenceFailureLeavesStateUntouched(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if _, _, err := service.Pause(7, start.Add(time.Hour)); err == nil {
		t.Fatalf("expected persistence error from Pause()")
	}

	repo.saveErr = nil
	stored, exists, err := repo.FindOpenByUser(7)
	if err != nil || !exists {
		t.Fatalf("expected stored open session, exists=%v err=%v", exists, err)
	}
	if stored.IsPaused || stored.TotalActiveSeconds != 0 {
		t.Fatalf("failed pause must not mutate persisted state, got %#v", stored)
	}

	// Still running: the operation is retryable.
	if _, _, err := service.Pause(7, start.Add(2*time.Hour)); err != nil {
		t.Fatalf("retried Pause() unexpected error: %v", err)
	}
}

func TestShiftCurrentRecoversLiveElapsed(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	if _, _, _, err := service.Current(7, start); err != nil {
		t.Fatalf("Current() unexpected error: %v", err)
	}
	if _, _, open, _ := service.Current(7, start); open {
		t.Fatalf("expected no open session before start")
	}

	if _, err := service.Start(7, start); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	_, elapsed, open, err := service.Current(7, start.Add(42*time.Second))
	if err != nil {
		t.Fatalf("Current() unexpected error: %v", err)
	}
	if !open || elapsed != 42 {
		t.Fatalf("expected open session with 42 elapsed seconds, got open=%v elapsed=%d", open, elapsed)
	}
}

func TestShiftStoppedSessionSeconds(t *testing.T) {
	repo := newStubShiftRepository()
	service := NewShiftService(repo)
	start := mustParseShiftInstant(t, "2026-03-02 08:00:00")

	created, err := service.Start(7, start)
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	if _, _, err := service.StoppedSessionSeconds(created.ID, 7); !errors.Is(err, ErrShiftStillOpen) {
		t.Fatalf("expected ErrShiftStillOpen for open session, got %v", err)
	}

	if _, _, err := service.Stop(7, start.Add(90*time.Minute)); err != nil {
		t.Fatalf("Stop() unexpected error: %v", err)
	}

	_, seconds, err := service.StoppedSessionSeconds(created.ID, 7)
	if err != nil {
		t.Fatalf("StoppedSessionSeconds() unexpected error: %v", err)
	}
	if seconds != 5400 {
		t.Fatalf("expected 5400 frozen seconds, got %d", seconds)
	}

	if _, _, err := service.StoppedSessionSeconds(created.ID, 99); !errors.Is(err, ErrShiftNotFound) {
		t.Fatalf("expected ErrShiftNotFound for foreign user, got %v", err)
	}
}
