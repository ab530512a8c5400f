package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/voltadev/shiftbook/internal/db"
	"github.com/voltadev/shiftbook/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	webhookToken string

	repositories *db.Repositories

	authService    *services.AuthService
	shiftService   *services.ShiftService
	dayService     *services.DayService
	reportService  *services.ReportService
	vehicleService *services.VehicleService
	billingService *services.BillingService
	adminService   *services.AdminService

	loginLimiter *attemptLimiter
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	DisplayName     string `json:"display_name" form:"display_name"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type scheduleSettingsInput struct {
	TargetMonthlyRevenue float64 `json:"target_monthly_revenue" form:"target_monthly_revenue"`
	WorkingDaysPerMonth  int     `json:"working_days_per_month" form:"working_days_per_month"`
}

type platformPayload struct {
	Rides  int     `json:"rides"`
	Amount float64 `json:"amount"`
}

type dayPayload struct {
	Date string `json:"date" form:"date"`

	Uber       platformPayload `json:"uber"`
	NinetyNine platformPayload `json:"ninety_nine"`
	InDrive    platformPayload `json:"in_drive"`
	Private    platformPayload `json:"private"`

	DistanceKM   float64 `json:"distance_km"`
	FuelExpense  float64 `json:"fuel_expense"`
	FoodExpense  float64 `json:"food_expense"`
	OtherExpense float64 `json:"other_expense"`

	ActiveSeconds  int64 `json:"active_seconds"`
	ShiftSessionID *uint `json:"shift_session_id"`
}

type vehiclePayload struct {
	AssetValue         float64 `json:"asset_value"`
	TaxDueDate         string  `json:"tax_due_date"`
	MonthlyMaintenance float64 `json:"monthly_maintenance"`
	MonthlyInsurance   float64 `json:"monthly_insurance"`
	MonthlyFinancing   float64 `json:"monthly_financing"`
	IncludeTax         bool    `json:"include_tax"`
	IncludeMaintenance bool    `json:"include_maintenance"`
	IncludeInsurance   bool    `json:"include_insurance"`
	IncludeFinancing   bool    `json:"include_financing"`
}

type adminPremiumInput struct {
	Days int `json:"days" form:"days"`
}
