package services

import "github.com/voltadev/shiftbook/internal/models"

// Annual vehicle tax is estimated as a flat 4% of the asset value,
// amortized over twelve months. Policy constant, not user-configurable.
const annualTaxRate = 0.04

const secondsPerHour = 3600

// PlatformEntry is one platform's raw daily input.
type PlatformEntry struct {
	Rides  int
	Amount float64
}

// ProfitInput carries the raw per-day figures the driver enters when
// closing a day. ActiveSeconds comes from a stopped shift or from
// manually entered hours.
type ProfitInput struct {
	Uber       PlatformEntry
	NinetyNine PlatformEntry
	InDrive    PlatformEntry
	Private    PlatformEntry

	DistanceKM   float64
	FuelExpense  float64
	FoodExpense  float64
	OtherExpense float64

	ActiveSeconds int64
}

// DailyProvisions is the daily-amortized share of each monthly fixed
// vehicle cost. Categories excluded by the vehicle config are zero.
type DailyProvisions struct {
	Tax         float64
	Maintenance float64
	Insurance   float64
	Financing   float64
}

// Total sums the four provisions.
func (provisions DailyProvisions) Total() float64 {
	return provisions.Tax + provisions.Maintenance + provisions.Insurance + provisions.Financing
}

// ProfitResult is the fully derived outcome of one working day.
type ProfitResult struct {
	TotalRevenue         float64
	TotalVariableExpense float64
	GrossProfit          float64
	Provisions           DailyProvisions
	TotalProvisions      float64
	NetProfit            float64
	ActiveHours          float64
	NetProfitPerHour     float64
}

// ClampWorkingDays guards the monthly-to-daily division: a working-day
// count below one is treated as one.
func ClampWorkingDays(workingDays int) int {
	if workingDays < 1 {
		return 1
	}
	return workingDays
}

// MonthlyTaxEstimate derives the monthly share of the annual vehicle
// tax from the asset value.
func MonthlyTaxEstimate(assetValue float64) float64 {
	return assetValue * annualTaxRate / 12
}

// ComputeDailyProvisions amortizes the configured monthly fixed costs
// across the month's working days, honoring each include flag.
func ComputeDailyProvisions(vehicle models.Vehicle, workingDays int) DailyProvisions {
	days := float64(ClampWorkingDays(workingDays))

	provisions := DailyProvisions{}
	if vehicle.IncludeTax {
		provisions.Tax = MonthlyTaxEstimate(vehicle.AssetValue) / days
	}
	if vehicle.IncludeMaintenance {
		provisions.Maintenance = vehicle.MonthlyMaintenance / days
	}
	if vehicle.IncludeInsurance {
		provisions.Insurance = vehicle.MonthlyInsurance / days
	}
	if vehicle.IncludeFinancing {
		provisions.Financing = vehicle.MonthlyFinancing / days
	}
	return provisions
}

// MonthlyFixedCost is the aggregate monthly provision total for the
// vehicle, include flags respected.
func MonthlyFixedCost(vehicle models.Vehicle) float64 {
	total := 0.0
	if vehicle.IncludeTax {
		total += MonthlyTaxEstimate(vehicle.AssetValue)
	}
	if vehicle.IncludeMaintenance {
		total += vehicle.MonthlyMaintenance
	}
	if vehicle.IncludeInsurance {
		total += vehicle.MonthlyInsurance
	}
	if vehicle.IncludeFinancing {
		total += vehicle.MonthlyFinancing
	}
	return total
}

// ComputeDailyProfit turns raw daily inputs and precomputed provisions
// into the day's derived figures. Pure and deterministic: identical
// inputs always produce identical results. Negative net profit is a
// valid outcome and is never clamped.
func ComputeDailyProfit(input ProfitInput, provisions DailyProvisions) ProfitResult {
	totalRevenue := input.Uber.Amount + input.NinetyNine.Amount + input.InDrive.Amount + input.Private.Amount
	totalVariableExpense := input.FuelExpense + input.FoodExpense + input.OtherExpense
	grossProfit := totalRevenue - totalVariableExpense

	totalProvisions := provisions.Total()
	netProfit := grossProfit - totalProvisions

	activeHours := float64(input.ActiveSeconds) / secondsPerHour
	netProfitPerHour := 0.0
	if activeHours > 0 {
		netProfitPerHour = netProfit / activeHours
	}

	return ProfitResult{
		TotalRevenue:         totalRevenue,
		TotalVariableExpense: totalVariableExpense,
		GrossProfit:          grossProfit,
		Provisions:           provisions,
		TotalProvisions:      totalProvisions,
		NetProfit:            netProfit,
		ActiveHours:          activeHours,
		NetProfitPerHour:     netProfitPerHour,
	}
}
