package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/services"
)

func (handler *Handler) GetVehicle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	vehicle, err := handler.vehicleService.LoadVehicle(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load vehicle config")
	}
	return c.JSON(fiber.Map{"vehicle": vehicleResponsePayload(vehicle)})
}

func (handler *Handler) SaveVehicle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := vehiclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.AssetValue < 0 || payload.MonthlyMaintenance < 0 || payload.MonthlyInsurance < 0 || payload.MonthlyFinancing < 0 {
		return apiError(c, fiber.StatusBadRequest, "vehicle costs must not be negative")
	}

	var taxDueDate *time.Time
	if raw := strings.TrimSpace(payload.TaxDueDate); raw != "" {
		parsed, err := parseDateParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid tax due date")
		}
		taxDueDate = &parsed
	}

	vehicle, err := handler.vehicleService.SaveVehicle(user.ID, services.VehicleInput{
		AssetValue:         payload.AssetValue,
		TaxDueDate:         taxDueDate,
		MonthlyMaintenance: payload.MonthlyMaintenance,
		MonthlyInsurance:   payload.MonthlyInsurance,
		MonthlyFinancing:   payload.MonthlyFinancing,
		IncludeTax:         payload.IncludeTax,
		IncludeMaintenance: payload.IncludeMaintenance,
		IncludeInsurance:   payload.IncludeInsurance,
		IncludeFinancing:   payload.IncludeFinancing,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save vehicle config")
	}
	return c.JSON(fiber.Map{"vehicle": vehicleResponsePayload(vehicle)})
}
