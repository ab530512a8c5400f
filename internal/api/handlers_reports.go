package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// PeriodReport aggregates closed days over an inclusive date range.
// Without query parameters it defaults to the current month so far.
func (handler *Handler) PeriodReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, handler.location)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDateParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid from date")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDateParam(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid to date")
		}
		to = parsed
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "date range is reversed")
	}

	summary, records, err := handler.reportService.BuildPeriodSummary(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	return c.JSON(fiber.Map{
		"from":    formatDateParam(from),
		"to":      formatDateParam(to),
		"summary": summaryPayload(summary),
		"records": recordListPayload(records),
	})
}
