package services

import (
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

// PeriodSummary aggregates already-computed daily records over a date
// range. Each additive field is summed independently; the per-record
// include-flag effects are baked into the stored provisions, so the
// vehicle config is never re-applied here. NetProfitPerHour is the
// weighted average Σ net / Σ hours, not an average of per-day rates.
type PeriodSummary struct {
	Days          int
	TotalRevenue  float64
	TotalVariable float64

	TotalFuel  float64
	TotalFood  float64
	TotalOther float64

	TotalTaxProvision         float64
	TotalMaintenanceProvision float64
	TotalInsuranceProvision   float64
	TotalFinancingProvision   float64
	TotalProvisions           float64

	TotalExpenses    float64
	NetProfit        float64
	ActiveSeconds    int64
	ActiveHours      float64
	NetProfitPerHour float64

	TotalRides int
	DistanceKM float64

	ProfitMarginPercent float64
	FuelSharePercent    float64
	FoodSharePercent    float64
	OtherSharePercent   float64
}

type ReportRecordReader interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyRecord, error)
}

type ReportService struct {
	records ReportRecordReader
}

func NewReportService(records ReportRecordReader) *ReportService {
	return &ReportService{records: records}
}

func (service *ReportService) BuildPeriodSummary(userID uint, from time.Time, to time.Time, location *time.Location) (PeriodSummary, []models.DailyRecord, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)

	records, err := service.records.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return PeriodSummary{}, nil, err
	}
	return SummarizePeriod(records), records, nil
}

// SummarizePeriod folds a slice of daily records into a PeriodSummary.
// Pure; record order does not affect the result.
func SummarizePeriod(records []models.DailyRecord) PeriodSummary {
	summary := PeriodSummary{Days: len(records)}

	for _, record := range records {
		summary.TotalRevenue += record.TotalRevenue
		summary.TotalVariable += record.TotalVariableExpense
		summary.TotalFuel += record.FuelExpense
		summary.TotalFood += record.FoodExpense
		summary.TotalOther += record.OtherExpense

		summary.TotalTaxProvision += record.TaxProvision
		summary.TotalMaintenanceProvision += record.MaintenanceProvision
		summary.TotalInsuranceProvision += record.InsuranceProvision
		summary.TotalFinancingProvision += record.FinancingProvision

		summary.NetProfit += record.NetProfit
		summary.ActiveSeconds += record.ActiveSeconds
		summary.TotalRides += record.TotalRides()
		summary.DistanceKM += record.DistanceKM
	}

	summary.TotalProvisions = summary.TotalTaxProvision +
		summary.TotalMaintenanceProvision +
		summary.TotalInsuranceProvision +
		summary.TotalFinancingProvision
	summary.TotalExpenses = summary.TotalVariable + summary.TotalProvisions

	summary.ActiveHours = float64(summary.ActiveSeconds) / secondsPerHour
	if summary.ActiveHours > 0 {
		summary.NetProfitPerHour = summary.NetProfit / summary.ActiveHours
	}

	if summary.TotalRevenue > 0 {
		summary.ProfitMarginPercent = summary.NetProfit / summary.TotalRevenue * 100
	}
	if summary.TotalExpenses > 0 {
		summary.FuelSharePercent = summary.TotalFuel / summary.TotalExpenses * 100
		summary.FoodSharePercent = summary.TotalFood / summary.TotalExpenses * 100
		summary.OtherSharePercent = summary.TotalOther / summary.TotalExpenses * 100
	}

	return summary
}
