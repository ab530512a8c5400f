package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/services"
)

func (handler *Handler) StartShift(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, err := handler.shiftService.Start(user.ID, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrShiftAlreadyOpen) {
			return apiError(c, fiber.StatusConflict, "a shift is already open")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to start shift")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": sessionPayload(session, 0)})
}

func (handler *Handler) PauseShift(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, elapsed, err := handler.shiftService.Pause(user.ID, time.Now().In(handler.location))
	if err != nil {
		return handler.respondShiftError(c, err, "failed to pause shift")
	}
	return c.JSON(fiber.Map{"session": sessionPayload(session, elapsed)})
}

func (handler *Handler) ResumeShift(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, elapsed, err := handler.shiftService.Resume(user.ID, time.Now().In(handler.location))
	if err != nil {
		return handler.respondShiftError(c, err, "failed to resume shift")
	}
	return c.JSON(fiber.Map{"session": sessionPayload(session, elapsed)})
}

func (handler *Handler) StopShift(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, elapsed, err := handler.shiftService.Stop(user.ID, time.Now().In(handler.location))
	if err != nil {
		return handler.respondShiftError(c, err, "failed to stop shift")
	}
	return c.JSON(fiber.Map{"session": sessionPayload(session, elapsed)})
}

// CurrentShift lets a reloaded client rebuild its timer from the
// persisted session instead of a lost in-memory counter.
func (handler *Handler) CurrentShift(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, elapsed, open, err := handler.shiftService.Current(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load shift")
	}
	if !open {
		return c.JSON(fiber.Map{"open": false})
	}
	return c.JSON(fiber.Map{"open": true, "session": sessionPayload(session, elapsed)})
}

func (handler *Handler) respondShiftError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNoOpenShift):
		return apiError(c, fiber.StatusNotFound, "no open shift")
	case errors.Is(err, services.ErrShiftNotRunning):
		return apiError(c, fiber.StatusConflict, "shift is not running")
	case errors.Is(err, services.ErrShiftNotPaused):
		return apiError(c, fiber.StatusConflict, "shift is not paused")
	case errors.Is(err, services.ErrShiftAlreadyClosed):
		return apiError(c, fiber.StatusConflict, "shift is already closed")
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}
