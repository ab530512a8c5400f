package services

// The per-hour revenue target assumes a 12-hour reference workday.
// Design constant, not user-configurable.
const referenceWorkdayHours = 12

// DailyRevenueTarget splits the monthly revenue target across the
// configured working days.
func DailyRevenueTarget(monthlyTarget float64, workingDays int) float64 {
	return monthlyTarget / float64(ClampWorkingDays(workingDays))
}

// HourlyRevenueTarget derives the per-hour target from the daily one.
func HourlyRevenueTarget(monthlyTarget float64, workingDays int) float64 {
	return DailyRevenueTarget(monthlyTarget, workingDays) / referenceWorkdayHours
}

// AccruedTarget is the revenue the driver should have earned after the
// given active time, shown live next to the shift timer.
func AccruedTarget(hourlyTarget float64, activeSeconds int64) float64 {
	return hourlyTarget * float64(activeSeconds) / secondsPerHour
}
