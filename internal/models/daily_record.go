package models

import "time"

// DailyRecord is one closed working day. Every derived field is
// computed in full from the raw inputs when the record is created or
// edited; aggregation sums the stored values as-is.
type DailyRecord struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;uniqueIndex:uidx_record_user_date"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:uidx_record_user_date"`
	ShiftSessionID *uint

	UberRides        int     `gorm:"not null;default:0"`
	UberAmount       float64 `gorm:"not null;default:0"`
	NinetyNineRides  int     `gorm:"not null;default:0"`
	NinetyNineAmount float64 `gorm:"not null;default:0"`
	InDriveRides     int     `gorm:"not null;default:0"`
	InDriveAmount    float64 `gorm:"not null;default:0"`
	PrivateRides     int     `gorm:"not null;default:0"`
	PrivateAmount    float64 `gorm:"not null;default:0"`
	TotalRevenue     float64 `gorm:"not null;default:0"`

	DistanceKM           float64 `gorm:"not null;default:0"`
	FuelExpense          float64 `gorm:"not null;default:0"`
	FoodExpense          float64 `gorm:"not null;default:0"`
	OtherExpense         float64 `gorm:"not null;default:0"`
	TotalVariableExpense float64 `gorm:"not null;default:0"`
	GrossProfit          float64 `gorm:"not null;default:0"`

	TaxProvision         float64 `gorm:"not null;default:0"`
	MaintenanceProvision float64 `gorm:"not null;default:0"`
	InsuranceProvision   float64 `gorm:"not null;default:0"`
	FinancingProvision   float64 `gorm:"not null;default:0"`

	NetProfit        float64 `gorm:"not null;default:0"`
	NetProfitPerHour float64 `gorm:"not null;default:0"`
	ActiveSeconds    int64   `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalRides sums the ride counts across all four platforms.
func (record DailyRecord) TotalRides() int {
	return record.UberRides + record.NinetyNineRides + record.InDriveRides + record.PrivateRides
}
