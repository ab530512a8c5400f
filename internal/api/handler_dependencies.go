package api

import (
	"github.com/voltadev/shiftbook/internal/db"
	"github.com/voltadev/shiftbook/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.shiftService = services.NewShiftService(handler.repositories.Shifts)
	handler.dayService = services.NewDayService(handler.repositories.DailyRecords)
	handler.reportService = services.NewReportService(handler.repositories.DailyRecords)
	handler.vehicleService = services.NewVehicleService(handler.repositories.Vehicles)
	handler.billingService = services.NewBillingService(handler.repositories.BillingEvents, handler.repositories.Users)
	handler.adminService = services.NewAdminService(
		handler.repositories.Users,
		handler.repositories.DailyRecords,
		handler.repositories.Shifts,
		handler.repositories.BillingEvents,
	)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
