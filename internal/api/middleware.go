package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/voltadev/shiftbook/internal/models"
)

const (
	authCookieName = "shiftbook_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
