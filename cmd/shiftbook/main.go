package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/voltadev/shiftbook/internal/api"
	"github.com/voltadev/shiftbook/internal/cli"
	"github.com/voltadev/shiftbook/internal/db"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "shiftbook.db"))

	if len(os.Args) > 1 {
		runCommand(dbPath, os.Args[1], os.Args[2:])
		return
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	webhookToken := getEnv("WEBHOOK_TOKEN", "")
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, webhookToken, location, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Shiftbook",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Shiftbook listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(dbPath string, command string, args []string) {
	switch command {
	case "reset-password":
		if len(args) != 1 {
			log.Fatalf("usage: shiftbook reset-password <email>")
		}
		if err := cli.RunResetPasswordCommand(dbPath, args[0]); err != nil {
			log.Fatalf("reset-password failed: %v", err)
		}
	case "set-password":
		if len(args) != 1 {
			log.Fatalf("usage: shiftbook set-password <email>")
		}
		if err := cli.RunSetPasswordCommand(dbPath, args[0]); err != nil {
			log.Fatalf("set-password failed: %v", err)
		}
	case "promote-admin":
		if len(args) != 1 {
			log.Fatalf("usage: shiftbook promote-admin <email>")
		}
		if err := cli.RunPromoteAdminCommand(dbPath, args[0]); err != nil {
			log.Fatalf("promote-admin failed: %v", err)
		}
	default:
		log.Fatalf("unknown command %q (expected reset-password, set-password, or promote-admin)", command)
	}
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if secret == "change_me_in_production" {
		return "", errors.New("SECRET_KEY still uses the insecure placeholder")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
