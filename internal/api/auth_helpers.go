package api

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordLetterRegex = regexp.MustCompile(`\p{L}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}

	input.Email = normalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	input.ConfirmPassword = strings.TrimSpace(input.ConfirmPassword)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if input.Email == "" || input.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	return input, nil
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func validatePasswordStrength(password string) error {
	if !passwordLengthRegex.MatchString(password) {
		return errors.New("password must be at least 8 characters")
	}
	if !passwordLetterRegex.MatchString(password) || !passwordDigitRegex.MatchString(password) {
		return errors.New("password must mix letters and digits")
	}
	return nil
}
