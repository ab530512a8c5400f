package models

import "time"

// Vehicle holds the fixed-cost configuration used to amortize monthly
// vehicle costs into daily provisions. A category whose include flag is
// false contributes zero regardless of its stored estimate.
type Vehicle struct {
	ID                 uint       `gorm:"primaryKey"`
	UserID             uint       `gorm:"not null;uniqueIndex"`
	AssetValue         float64    `gorm:"not null;default:0"`
	TaxDueDate         *time.Time `gorm:"type:date"`
	MonthlyMaintenance float64    `gorm:"not null;default:0"`
	MonthlyInsurance   float64    `gorm:"not null;default:0"`
	MonthlyFinancing   float64    `gorm:"not null;default:0"`
	IncludeTax         bool       `gorm:"not null;default:true"`
	IncludeMaintenance bool       `gorm:"not null;default:true"`
	IncludeInsurance   bool       `gorm:"not null;default:true"`
	IncludeFinancing   bool       `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
