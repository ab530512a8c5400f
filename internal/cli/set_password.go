package cli

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// RunSetPasswordCommand sets a specific password for an account,
// prompting on the terminal with echo disabled.
func RunSetPasswordCommand(dbPath string, email string) error {
	database, user, err := loadUserForCommand(dbPath, email)
	if err != nil {
		return err
	}

	fmt.Printf("New password for %s: ", user.Email)
	password, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	passwordHash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("✅ Password updated")
	return nil
}
