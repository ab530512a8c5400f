package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/voltadev/shiftbook/internal/db"
	"github.com/voltadev/shiftbook/internal/models"
	"github.com/voltadev/shiftbook/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand issues a temporary password for a locked-out
// account. The user is forced to pick a new one on next login.
func RunResetPasswordCommand(dbPath string, email string) error {
	database, user, err := loadUserForCommand(dbPath, email)
	if err != nil {
		return err
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = true
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("✅ Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("User must change password on next login.")

	return nil
}

// RunPromoteAdminCommand grants the support-console role to an existing
// account. Admin access is only ever granted from the host shell.
func RunPromoteAdminCommand(dbPath string, email string) error {
	database, user, err := loadUserForCommand(dbPath, email)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		fmt.Printf("%s is already an admin\n", user.Email)
		return nil
	}

	user.Role = models.RoleAdmin
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user role: %w", err)
	}

	fmt.Printf("✅ %s promoted to admin\n", user.Email)
	return nil
}

func loadUserForCommand(dbPath string, email string) (*gorm.DB, models.User, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return nil, models.User{}, errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return nil, models.User{}, fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, models.User{}, fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("email = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.User{}, fmt.Errorf("user %s not found", normalizedEmail)
		}
		return nil, models.User{}, fmt.Errorf("load user: %w", err)
	}
	return database, user, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
