package services

import (
	"errors"
	"testing"
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

type stubDayRecordRepository struct {
	records map[uint]*models.DailyRecord
	nextID  uint

	findErr   error
	createErr error
	saveErr   error

	createCalls int
}

func newStubDayRecordRepository() *stubDayRecordRepository {
	return &stubDayRecordRepository{records: map[uint]*models.DailyRecord{}, nextID: 1}
}

func (stub *stubDayRecordRepository) ListByUser(userID uint) ([]models.DailyRecord, error) {
	var result []models.DailyRecord
	for _, record := range stub.records {
		if record.UserID == userID {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (stub *stubDayRecordRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyRecord, error) {
	var result []models.DailyRecord
	for _, record := range stub.records {
		if record.UserID == userID && !record.Date.Before(fromStart) && record.Date.Before(toEnd) {
			result = append(result, *record)
		}
	}
	return result, nil
}

func (stub *stubDayRecordRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyRecord, bool, error) {
	if stub.findErr != nil {
		return models.DailyRecord{}, false, stub.findErr
	}
	for _, record := range stub.records {
		if record.UserID == userID && !record.Date.Before(dayStart) && record.Date.Before(dayEnd) {
			return *record, true, nil
		}
	}
	return models.DailyRecord{}, false, nil
}

func (stub *stubDayRecordRepository) FindByIDForUser(recordID uint, userID uint) (models.DailyRecord, bool, error) {
	if stub.findErr != nil {
		return models.DailyRecord{}, false, stub.findErr
	}
	record, exists := stub.records[recordID]
	if !exists || record.UserID != userID {
		return models.DailyRecord{}, false, nil
	}
	return *record, true, nil
}

func (stub *stubDayRecordRepository) Create(record *models.DailyRecord) error {
	stub.createCalls++
	if stub.createErr != nil {
		return stub.createErr
	}
	record.ID = stub.nextID
	stub.nextID++
	stored := *record
	stub.records[record.ID] = &stored
	return nil
}

func (stub *stubDayRecordRepository) Save(record *models.DailyRecord) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stored := *record
	stub.records[record.ID] = &stored
	return nil
}

func (stub *stubDayRecordRepository) DeleteByIDForUser(recordID uint, userID uint) error {
	delete(stub.records, recordID)
	return nil
}

func dayServiceVehicle() models.Vehicle {
	return models.Vehicle{
		AssetValue:         45000,
		MonthlyMaintenance: 220,
		IncludeTax:         true,
		IncludeMaintenance: true,
	}
}

func TestCloseDayComputesDerivedTotals(t *testing.T) {
	repo := newStubDayRecordRepository()
	service := NewDayService(repo)
	day := mustParseShiftInstant(t, "2026-03-02 14:30:00")

	input := DayInput{
		Uber:          PlatformEntry{Rides: 10, Amount: 200},
		NinetyNine:    PlatformEntry{Rides: 8, Amount: 150},
		Private:       PlatformEntry{Rides: 2, Amount: 50},
		FuelExpense:   60,
		FoodExpense:   20,
		OtherExpense:  10,
		ActiveSeconds: 28800,
	}

	record, err := service.CloseDay(7, day, input, models.Vehicle{}, 22, time.UTC)
	if err != nil {
		t.Fatalf("CloseDay() unexpected error: %v", err)
	}

	if !record.Date.Equal(mustParseShiftInstant(t, "2026-03-02 00:00:00")) {
		t.Fatalf("expected record date normalized to day start, got %v", record.Date)
	}
	if !almostEqual(record.TotalRevenue, 400) || !almostEqual(record.GrossProfit, 310) {
		t.Fatalf("unexpected derived totals: revenue=%v gross=%v", record.TotalRevenue, record.GrossProfit)
	}
	if !almostEqual(record.NetProfitPerHour, 38.75) {
		t.Fatalf("expected per-hour 38.75, got %v", record.NetProfitPerHour)
	}
	if record.TotalRides() != 20 {
		t.Fatalf("expected 20 total rides, got %d", record.TotalRides())
	}
}

func TestCloseDayRejectsDuplicateDateBeforeWriting(t *testing.T) {
	repo := newStubDayRecordRepository()
	service := NewDayService(repo)
	day := mustParseShiftInstant(t, "2026-03-02 09:00:00")

	if _, err := service.CloseDay(7, day, DayInput{}, models.Vehicle{}, 22, time.UTC); err != nil {
		t.Fatalf("first CloseDay() unexpected error: %v", err)
	}

	laterSameDay := mustParseShiftInstant(t, "2026-03-02 23:59:00")
	if _, err := service.CloseDay(7, laterSameDay, DayInput{}, models.Vehicle{}, 22, time.UTC); !errors.Is(err, ErrDayAlreadyClosed) {
		t.Fatalf("expected ErrDayAlreadyClosed, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("duplicate close must not reach the write, got %d creates", repo.createCalls)
	}
}

func TestCloseDaySameDateDifferentUsersAllowed(t *testing.T) {
	repo := newStubDayRecordRepository()
	service := NewDayService(repo)
	day := mustParseShiftInstant(t, "2026-03-02 09:00:00")

	if _, err := service.CloseDay(7, day, DayInput{}, models.Vehicle{}, 22, time.UTC); err != nil {
		t.Fatalf("CloseDay() user 7 unexpected error: %v", err)
	}
	if _, err := service.CloseDay(8, day, DayInput{}, models.Vehicle{}, 22, time.UTC); err != nil {
		t.Fatalf("CloseDay() user 8 unexpected error: %v", err)
	}
}

func TestCloseDayAppliesVehicleProvisions(t *testing.T) {
	repo := newStubDayRecordRepository()
	service := NewDayService(repo)
	day := mustParseShiftInstant(t, "2026-03-02 09:00:00")

	input := DayInput{
		Uber:          PlatformEntry{Rides: 12, Amount: 300},
		FuelExpense:   50,
		ActiveSeconds: 36000,
	}

	record, err := service.CloseDay(7, day, input, dayServiceVehicle(), 22, time.UTC)
	if err != nil {
		t.Fatalf("CloseDay() unexpected error: %v", err)
	}

	expectedTax := 45000.0 * 0.04 / 12 / 22
	expectedMaintenance := 220.0 / 22
	if !almostEqual(record.TaxProvision, expectedTax) {
		t.Fatalf("expected tax provision %v, got %v", expectedTax, record.TaxProvision)
	}
	if !almostEqual(record.MaintenanceProvision, expectedMaintenance) {
		t.Fatalf("expected maintenance provision %v, got %v", expectedMaintenance, record.MaintenanceProvision)
	}
	expectedNet := 300.0 - 50.0 - expectedTax - expectedMaintenance
	if !almostEqual(record.NetProfit, expectedNet) {
		t.Fatalf("expected net profit %v, got %v", expectedNet, record.NetProfit)
	}
}

func TestUpdateDayRecomputesEverythingFromScratch(t *testing.T) {
	repo := newStubDayRecordRepository()
	service := NewDayService(repo)
	day := mustParseShiftInstant(t, "2026-03-02 09:00:00")

	created, err := service.CloseDay(7, day, DayInput{
		Uber:          PlatformEntry{Rides: 10, Amount: 200},
		FuelExpense:   60,
		ActiveSeconds: 28800,
	}, models.Vehicle{}, 22, time.UTC)
	if err != nil {
		t.Fatalf("CloseDay() unexpected error: %v", err)
	}

	updated, err := service.UpdateDay(7, created.ID, DayInput{
		Uber:          PlatformEntry{Rides: 4, Amount: 80},
		NinetyNine:    PlatformEntry{Rides: 6, Amount: 120},
		FuelExpense:   30,
		ActiveSeconds: 14400,
	}, models.Vehicle{}, 22)
	if err != nil {
		t.Fatalf("UpdateDay() unexpected error: %v", err)
	}

	if !almostEqual(updated.TotalRevenue, 200) {
		t.Fatalf("expected recomputed revenue 200, got %v", updated.TotalRevenue)
	}
	if !almostEqual(updated.NetProfit, 170) {
		t.Fatalf("expected recomputed net 170, got %v", updated.NetProfit)
	}
	if !almostEqual(updated.NetProfitPerHour, 42.5) {
		t.Fatalf("expected recomputed per-hour 42.5, got %v", updated.NetProfitPerHour)
	}
	if updated.UberRides != 4 || updated.NinetyNineRides != 6 {
		t.Fatalf("expected replaced ride counts, got uber=%d ninetynine=%d", updated.UberRides, updated.NinetyNineRides)
	}
	if !updated.Date.Equal(created.Date) {
		t.Fatalf("edit must not move the record date: %v vs %v", updated.Date, created.Date)
	}
}

func TestUpdateDayUnknownRecord(t *testing.T) {
	service := NewDayService(newStubDayRecordRepository())

	if _, err := service.UpdateDay(7, 99, DayInput{}, models.Vehicle{}, 22); !errors.Is(err, ErrDayRecordNotFound) {
		t.Fatalf("expected ErrDayRecordNotFound, got %v", err)
	}
}

func TestDeleteDayScopedToOwner(t *testing.T) {
	repo := newStubDayRecordRepository()
	service := NewDayService(repo)
	day := mustParseShiftInstant(t, "2026-03-02 09:00:00")

	created, err := service.CloseDay(7, day, DayInput{}, models.Vehicle{}, 22, time.UTC)
	if err != nil {
		t.Fatalf("CloseDay() unexpected error: %v", err)
	}

	if err := service.DeleteDay(99, created.ID); !errors.Is(err, ErrDayRecordNotFound) {
		t.Fatalf("foreign user delete should report not found, got %v", err)
	}
	if err := service.DeleteDay(7, created.ID); err != nil {
		t.Fatalf("owner delete unexpected error: %v", err)
	}
	if exists, err := service.DayExists(7, day, time.UTC); err != nil || exists {
		t.Fatalf("expected day reopened after delete, exists=%v err=%v", exists, err)
	}
}

func TestFetchRecordsRangeIsInclusive(t *testing.T) {
	repo := newStubDayRecordRepository()
	service := NewDayService(repo)

	for _, raw := range []string{"2026-03-01 10:00:00", "2026-03-05 10:00:00", "2026-03-10 10:00:00"} {
		if _, err := service.CloseDay(7, mustParseShiftInstant(t, raw), DayInput{}, models.Vehicle{}, 22, time.UTC); err != nil {
			t.Fatalf("CloseDay(%s) unexpected error: %v", raw, err)
		}
	}

	from := mustParseShiftInstant(t, "2026-03-01 23:00:00")
	to := mustParseShiftInstant(t, "2026-03-05 00:30:00")
	records, err := service.FetchRecordsRange(7, from, to, time.UTC)
	if err != nil {
		t.Fatalf("FetchRecordsRange() unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected boundary days included, got %d records", len(records))
	}
}
