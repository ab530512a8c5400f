package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/services"
)

func (handler *Handler) AdminOverview(c *fiber.Ctx) error {
	overview, err := handler.adminService.BuildOverview()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build overview")
	}
	return c.JSON(fiber.Map{
		"total_users":        overview.TotalUsers,
		"active_subscribers": overview.ActiveSubscribers,
		"trial_users":        overview.TrialUsers,
	})
}

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	users, err := handler.adminService.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}

	payloads := make([]fiber.Map, 0, len(users))
	for index := range users {
		payloads = append(payloads, userPayload(&users[index]))
	}
	return c.JSON(fiber.Map{"users": payloads})
}

func (handler *Handler) AdminUserDetail(c *fiber.Ctx) error {
	userID, err := parseAdminUserID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	detail, err := handler.adminService.UserDetail(userID)
	if err != nil {
		if errors.Is(err, services.ErrAdminUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	return c.JSON(fiber.Map{
		"user":          userPayload(&detail.User),
		"record_count":  detail.RecordCount,
		"session_count": detail.SessionCount,
	})
}

// AdminActivatePremium is the manual escape hatch when a payment
// confirmation never arrived through the webhook.
func (handler *Handler) AdminActivatePremium(c *fiber.Ctx) error {
	userID, err := parseAdminUserID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	input := adminPremiumInput{}
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	endsAt, err := handler.adminService.ActivatePremium(userID, input.Days, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to activate premium")
	}
	return c.JSON(fiber.Map{"ok": true, "subscription_ends_at": endsAt})
}

func (handler *Handler) AdminCancelPremium(c *fiber.Ctx) error {
	userID, err := parseAdminUserID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := handler.adminService.CancelPremium(userID, time.Now().In(handler.location)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to cancel premium")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AdminBillingEvents(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return apiError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	events, err := handler.adminService.RecentBillingEvents(limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list events")
	}

	payloads := make([]fiber.Map, 0, len(events))
	for _, event := range events {
		payloads = append(payloads, billingEventPayload(event))
	}
	return c.JSON(fiber.Map{"events": payloads})
}

func parseAdminUserID(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
