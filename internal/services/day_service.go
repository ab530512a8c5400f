package services

import (
	"errors"
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

var (
	ErrDayAlreadyClosed  = errors.New("day already has a record")
	ErrDayRecordNotFound = errors.New("day record not found")
)

// DayInput is everything the driver enters (or hands off from a
// stopped shift) when closing or editing a day.
type DayInput struct {
	Uber       PlatformEntry
	NinetyNine PlatformEntry
	InDrive    PlatformEntry
	Private    PlatformEntry

	DistanceKM   float64
	FuelExpense  float64
	FoodExpense  float64
	OtherExpense float64

	ActiveSeconds  int64
	ShiftSessionID *uint
}

func (input DayInput) profitInput() ProfitInput {
	return ProfitInput{
		Uber:          input.Uber,
		NinetyNine:    input.NinetyNine,
		InDrive:       input.InDrive,
		Private:       input.Private,
		DistanceKM:    input.DistanceKM,
		FuelExpense:   input.FuelExpense,
		FoodExpense:   input.FoodExpense,
		OtherExpense:  input.OtherExpense,
		ActiveSeconds: input.ActiveSeconds,
	}
}

type DayRecordRepository interface {
	ListByUser(userID uint) ([]models.DailyRecord, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyRecord, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyRecord, bool, error)
	FindByIDForUser(recordID uint, userID uint) (models.DailyRecord, bool, error)
	Create(record *models.DailyRecord) error
	Save(record *models.DailyRecord) error
	DeleteByIDForUser(recordID uint, userID uint) error
}

// DayService closes working days into daily records and keeps every
// derived field recomputed in full on edit.
type DayService struct {
	records DayRecordRepository
}

func NewDayService(records DayRecordRepository) *DayService {
	return &DayService{records: records}
}

// CloseDay creates the record for one (user, date) pair. The duplicate
// check happens before any write: an existing record for the date
// rejects the save so the caller can direct the user to edit it.
func (service *DayService) CloseDay(userID uint, day time.Time, input DayInput, vehicle models.Vehicle, workingDays int, location *time.Location) (models.DailyRecord, error) {
	dayStart, dayEnd := DayRange(day, location)

	_, exists, err := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if exists {
		return models.DailyRecord{}, ErrDayAlreadyClosed
	}

	record := models.DailyRecord{
		UserID:         userID,
		Date:           dayStart,
		ShiftSessionID: input.ShiftSessionID,
	}
	applyDayComputation(&record, input, vehicle, workingDays)

	if err := service.records.Create(&record); err != nil {
		return models.DailyRecord{}, err
	}
	return record, nil
}

// UpdateDay replaces the record's raw inputs and recomputes every
// derived total from scratch. No partial patches.
func (service *DayService) UpdateDay(userID uint, recordID uint, input DayInput, vehicle models.Vehicle, workingDays int) (models.DailyRecord, error) {
	record, exists, err := service.records.FindByIDForUser(recordID, userID)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if !exists {
		return models.DailyRecord{}, ErrDayRecordNotFound
	}

	applyDayComputation(&record, input, vehicle, workingDays)

	if err := service.records.Save(&record); err != nil {
		return models.DailyRecord{}, err
	}
	return record, nil
}

func (service *DayService) DeleteDay(userID uint, recordID uint) error {
	_, exists, err := service.records.FindByIDForUser(recordID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDayRecordNotFound
	}
	return service.records.DeleteByIDForUser(recordID, userID)
}

func (service *DayService) FetchRecord(userID uint, recordID uint) (models.DailyRecord, error) {
	record, exists, err := service.records.FindByIDForUser(recordID, userID)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if !exists {
		return models.DailyRecord{}, ErrDayRecordNotFound
	}
	return record, nil
}

func (service *DayService) FetchAllRecords(userID uint) ([]models.DailyRecord, error) {
	return service.records.ListByUser(userID)
}

func (service *DayService) FetchRecordsRange(userID uint, from time.Time, to time.Time, location *time.Location) ([]models.DailyRecord, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)
	return service.records.ListByUserRange(userID, fromStart, toEnd)
}

// DayExists reports whether a record is already closed for the date.
func (service *DayService) DayExists(userID uint, day time.Time, location *time.Location) (bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	_, exists, err := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
	return exists, err
}

func applyDayComputation(record *models.DailyRecord, input DayInput, vehicle models.Vehicle, workingDays int) {
	provisions := ComputeDailyProvisions(vehicle, workingDays)
	result := ComputeDailyProfit(input.profitInput(), provisions)

	record.UberRides = input.Uber.Rides
	record.UberAmount = input.Uber.Amount
	record.NinetyNineRides = input.NinetyNine.Rides
	record.NinetyNineAmount = input.NinetyNine.Amount
	record.InDriveRides = input.InDrive.Rides
	record.InDriveAmount = input.InDrive.Amount
	record.PrivateRides = input.Private.Rides
	record.PrivateAmount = input.Private.Amount

	record.DistanceKM = input.DistanceKM
	record.FuelExpense = input.FuelExpense
	record.FoodExpense = input.FoodExpense
	record.OtherExpense = input.OtherExpense

	record.TotalRevenue = result.TotalRevenue
	record.TotalVariableExpense = result.TotalVariableExpense
	record.GrossProfit = result.GrossProfit
	record.TaxProvision = result.Provisions.Tax
	record.MaintenanceProvision = result.Provisions.Maintenance
	record.InsuranceProvision = result.Provisions.Insurance
	record.FinancingProvision = result.Provisions.Financing
	record.NetProfit = result.NetProfit
	record.NetProfitPerHour = result.NetProfitPerHour
	record.ActiveSeconds = input.ActiveSeconds
}
