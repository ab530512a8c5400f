package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/services"
)

// CloseDay records one worked day. When the payload references a
// stopped shift session, its frozen active seconds override whatever
// the client sent, so the timer stays the single source of truth.
func (handler *Handler) CloseDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := dayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDateParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input, err := handler.dayInputFromPayload(user.ID, payload)
	if err != nil {
		return handler.respondDayInputError(c, err)
	}

	vehicle, err := handler.vehicleService.LoadVehicle(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load vehicle config")
	}

	record, err := handler.dayService.CloseDay(user.ID, day, input, vehicle, user.WorkingDaysPerMonth, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrDayAlreadyClosed) {
			return apiError(c, fiber.StatusConflict, "day already closed, edit the existing record")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to close day")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"record": recordPayload(record)})
}

func (handler *Handler) ListDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw == "" && toRaw == "" {
		records, err := handler.dayService.FetchAllRecords(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load records")
		}
		return c.JSON(fiber.Map{"records": recordListPayload(records)})
	}

	from, err := parseDateParam(fromRaw, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDateParam(toRaw, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "date range is reversed")
	}

	records, err := handler.dayService.FetchRecordsRange(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}
	return c.JSON(fiber.Map{"records": recordListPayload(records)})
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	recordID, err := parseRecordID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	record, err := handler.dayService.FetchRecord(user.ID, recordID)
	if err != nil {
		if errors.Is(err, services.ErrDayRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load record")
	}
	return c.JSON(fiber.Map{"record": recordPayload(record)})
}

func (handler *Handler) CheckDayExists(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	day, err := parseDateParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	exists, err := handler.dayService.DayExists(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check day")
	}
	return c.JSON(fiber.Map{"exists": exists})
}

func (handler *Handler) UpdateDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	recordID, err := parseRecordID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	payload := dayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input, err := handler.dayInputFromPayload(user.ID, payload)
	if err != nil {
		return handler.respondDayInputError(c, err)
	}

	vehicle, err := handler.vehicleService.LoadVehicle(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load vehicle config")
	}

	record, err := handler.dayService.UpdateDay(user.ID, recordID, input, vehicle, user.WorkingDaysPerMonth)
	if err != nil {
		if errors.Is(err, services.ErrDayRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update record")
	}
	return c.JSON(fiber.Map{"record": recordPayload(record)})
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	recordID, err := parseRecordID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	if err := handler.dayService.DeleteDay(user.ID, recordID); err != nil {
		if errors.Is(err, services.ErrDayRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) dayInputFromPayload(userID uint, payload dayPayload) (services.DayInput, error) {
	input := services.DayInput{
		Uber:       services.PlatformEntry{Rides: payload.Uber.Rides, Amount: payload.Uber.Amount},
		NinetyNine: services.PlatformEntry{Rides: payload.NinetyNine.Rides, Amount: payload.NinetyNine.Amount},
		InDrive:    services.PlatformEntry{Rides: payload.InDrive.Rides, Amount: payload.InDrive.Amount},
		Private:    services.PlatformEntry{Rides: payload.Private.Rides, Amount: payload.Private.Amount},

		DistanceKM:   payload.DistanceKM,
		FuelExpense:  payload.FuelExpense,
		FoodExpense:  payload.FoodExpense,
		OtherExpense: payload.OtherExpense,

		ActiveSeconds:  payload.ActiveSeconds,
		ShiftSessionID: payload.ShiftSessionID,
	}
	if err := validateDayInput(input); err != nil {
		return services.DayInput{}, err
	}

	if payload.ShiftSessionID != nil {
		_, seconds, err := handler.shiftService.StoppedSessionSeconds(*payload.ShiftSessionID, userID)
		if err != nil {
			return services.DayInput{}, err
		}
		input.ActiveSeconds = seconds
	}
	return input, nil
}

func (handler *Handler) respondDayInputError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrShiftNotFound):
		return apiError(c, fiber.StatusBadRequest, "shift session not found")
	case errors.Is(err, services.ErrShiftStillOpen):
		return apiError(c, fiber.StatusConflict, "shift session is still open")
	default:
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
}

func validateDayInput(input services.DayInput) error {
	for _, entry := range []services.PlatformEntry{input.Uber, input.NinetyNine, input.InDrive, input.Private} {
		if entry.Rides < 0 || entry.Amount < 0 {
			return errors.New("platform entries must not be negative")
		}
	}
	if input.DistanceKM < 0 || input.FuelExpense < 0 || input.FoodExpense < 0 || input.OtherExpense < 0 {
		return errors.New("expenses must not be negative")
	}
	if input.ActiveSeconds < 0 {
		return errors.New("active seconds must not be negative")
	}
	return nil
}

func parseRecordID(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
