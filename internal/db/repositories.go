package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Shifts        *ShiftSessionRepository
	DailyRecords  *DailyRecordRepository
	Vehicles      *VehicleRepository
	BillingEvents *BillingEventRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Shifts:        NewShiftSessionRepository(database),
		DailyRecords:  NewDailyRecordRepository(database),
		Vehicles:      NewVehicleRepository(database),
		BillingEvents: NewBillingEventRepository(database),
	}
}
