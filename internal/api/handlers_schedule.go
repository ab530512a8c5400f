package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/services"
)

// ScheduleTargets returns the revenue pace derived from the driver's
// monthly goal, plus the target accrued so far in the open shift.
func (handler *Handler) ScheduleTargets(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	daily := services.DailyRevenueTarget(user.TargetMonthlyRevenue, user.WorkingDaysPerMonth)
	hourly := services.HourlyRevenueTarget(user.TargetMonthlyRevenue, user.WorkingDaysPerMonth)

	payload := fiber.Map{
		"target_monthly_revenue": user.TargetMonthlyRevenue,
		"working_days_per_month": user.WorkingDaysPerMonth,
		"daily_revenue_target":   daily,
		"hourly_revenue_target":  hourly,
	}

	_, elapsed, open, err := handler.shiftService.Current(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load shift")
	}
	if open {
		payload["shift_open"] = true
		payload["active_seconds"] = elapsed
		payload["accrued_target"] = services.AccruedTarget(hourly, elapsed)
	} else {
		payload["shift_open"] = false
	}

	return c.JSON(payload)
}
