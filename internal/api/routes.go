package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/schedule", handler.UpdateScheduleSettings)

	shift := api.Group("/shift", handler.AuthRequired, handler.SubscriptionRequired)
	shift.Get("/current", handler.CurrentShift)
	shift.Post("/start", handler.StartShift)
	shift.Post("/pause", handler.PauseShift)
	shift.Post("/resume", handler.ResumeShift)
	shift.Post("/stop", handler.StopShift)

	days := api.Group("/days", handler.AuthRequired, handler.SubscriptionRequired)
	days.Get("", handler.ListDays)
	days.Post("", handler.CloseDay)
	days.Get("/exists/:date", handler.CheckDayExists)
	days.Get("/:id", handler.GetDay)
	days.Put("/:id", handler.UpdateDay)
	days.Delete("/:id", handler.DeleteDay)

	reports := api.Group("/reports", handler.AuthRequired, handler.SubscriptionRequired)
	reports.Get("/summary", handler.PeriodReport)

	schedule := api.Group("/schedule", handler.AuthRequired, handler.SubscriptionRequired)
	schedule.Get("/targets", handler.ScheduleTargets)

	vehicle := api.Group("/vehicle", handler.AuthRequired, handler.SubscriptionRequired)
	vehicle.Get("", handler.GetVehicle)
	vehicle.Put("", handler.SaveVehicle)

	api.Post("/billing/webhook", handler.BillingWebhook)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/overview", handler.AdminOverview)
	admin.Get("/users", handler.AdminListUsers)
	admin.Get("/users/:id", handler.AdminUserDetail)
	admin.Post("/users/:id/premium", handler.AdminActivatePremium)
	admin.Delete("/users/:id/premium", handler.AdminCancelPremium)
	admin.Get("/billing/events", handler.AdminBillingEvents)
}
