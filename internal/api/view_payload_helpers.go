package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/models"
	"github.com/voltadev/shiftbook/internal/services"
)

func userPayload(user *models.User) fiber.Map {
	payload := fiber.Map{
		"id":                     user.ID,
		"email":                  user.Email,
		"display_name":           user.DisplayName,
		"role":                   user.Role,
		"plan":                   user.Plan,
		"subscription_status":    user.SubscriptionStatus,
		"target_monthly_revenue": user.TargetMonthlyRevenue,
		"working_days_per_month": user.WorkingDaysPerMonth,
		"created_at":             user.CreatedAt,
	}
	if user.SubscriptionEndsAt != nil {
		payload["subscription_ends_at"] = *user.SubscriptionEndsAt
	}
	return payload
}

func sessionPayload(session models.ShiftSession, elapsed int64) fiber.Map {
	payload := fiber.Map{
		"id":                   session.ID,
		"start_time":           session.StartTime,
		"is_paused":            session.IsPaused,
		"total_active_seconds": elapsed,
	}
	if session.EndTime != nil {
		payload["end_time"] = *session.EndTime
	}
	return payload
}

func recordPayload(record models.DailyRecord) fiber.Map {
	return fiber.Map{
		"id":   record.ID,
		"date": formatDateParam(record.Date),

		"uber":        fiber.Map{"rides": record.UberRides, "amount": record.UberAmount},
		"ninety_nine": fiber.Map{"rides": record.NinetyNineRides, "amount": record.NinetyNineAmount},
		"in_drive":    fiber.Map{"rides": record.InDriveRides, "amount": record.InDriveAmount},
		"private":     fiber.Map{"rides": record.PrivateRides, "amount": record.PrivateAmount},

		"distance_km":   record.DistanceKM,
		"fuel_expense":  record.FuelExpense,
		"food_expense":  record.FoodExpense,
		"other_expense": record.OtherExpense,

		"total_rides":            record.TotalRides(),
		"total_revenue":          record.TotalRevenue,
		"total_variable_expense": record.TotalVariableExpense,
		"gross_profit":           record.GrossProfit,
		"tax_provision":          record.TaxProvision,
		"maintenance_provision":  record.MaintenanceProvision,
		"insurance_provision":    record.InsuranceProvision,
		"financing_provision":    record.FinancingProvision,
		"net_profit":             record.NetProfit,
		"net_profit_per_hour":    record.NetProfitPerHour,
		"active_seconds":         record.ActiveSeconds,
	}
}

func recordListPayload(records []models.DailyRecord) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, recordPayload(record))
	}
	return payloads
}

func summaryPayload(summary services.PeriodSummary) fiber.Map {
	return fiber.Map{
		"days":          summary.Days,
		"total_revenue": summary.TotalRevenue,

		"total_variable_expense": summary.TotalVariable,
		"total_fuel":             summary.TotalFuel,
		"total_food":             summary.TotalFood,
		"total_other":            summary.TotalOther,

		"total_tax_provision":         summary.TotalTaxProvision,
		"total_maintenance_provision": summary.TotalMaintenanceProvision,
		"total_insurance_provision":   summary.TotalInsuranceProvision,
		"total_financing_provision":   summary.TotalFinancingProvision,
		"total_provisions":            summary.TotalProvisions,
		"total_expenses":              summary.TotalExpenses,

		"net_profit":          summary.NetProfit,
		"active_seconds":      summary.ActiveSeconds,
		"active_hours":        summary.ActiveHours,
		"net_profit_per_hour": summary.NetProfitPerHour,

		"total_rides": summary.TotalRides,
		"distance_km": summary.DistanceKM,

		"profit_margin_percent": summary.ProfitMarginPercent,
		"fuel_share_percent":    summary.FuelSharePercent,
		"food_share_percent":    summary.FoodSharePercent,
		"other_share_percent":   summary.OtherSharePercent,
	}
}

func vehicleResponsePayload(vehicle models.Vehicle) fiber.Map {
	payload := fiber.Map{
		"asset_value":         vehicle.AssetValue,
		"monthly_maintenance": vehicle.MonthlyMaintenance,
		"monthly_insurance":   vehicle.MonthlyInsurance,
		"monthly_financing":   vehicle.MonthlyFinancing,
		"include_tax":         vehicle.IncludeTax,
		"include_maintenance": vehicle.IncludeMaintenance,
		"include_insurance":   vehicle.IncludeInsurance,
		"include_financing":   vehicle.IncludeFinancing,
	}
	if vehicle.TaxDueDate != nil {
		payload["tax_due_date"] = formatDateParam(*vehicle.TaxDueDate)
	}
	return payload
}

func billingEventPayload(event models.BillingEvent) fiber.Map {
	payload := fiber.Map{
		"event_id":   event.EventID,
		"event_type": event.EventType,
		"processed":  event.Processed,
		"error_log":  event.ErrorLog,
		"created_at": event.CreatedAt,
	}
	if event.ProcessedAt != nil {
		payload["processed_at"] = *event.ProcessedAt
	}
	return payload
}
