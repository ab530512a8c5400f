package services

import (
	"errors"
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

var ErrAdminUserNotFound = errors.New("user not found")

type AdminUserRepository interface {
	CountUsers() (int64, error)
	CountBySubscriptionStatus(status string) (int64, error)
	FindByID(userID uint) (models.User, error)
	ListOrderedByCreation() ([]models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type AdminRecordCounter interface {
	CountByUser(userID uint) (int64, error)
}

type AdminShiftCounter interface {
	CountByUser(userID uint) (int64, error)
}

type AdminBillingEventLister interface {
	ListRecent(limit int) ([]models.BillingEvent, error)
}

// AdminOverview holds the support-console headline counts.
type AdminOverview struct {
	TotalUsers        int64
	ActiveSubscribers int64
	TrialUsers        int64
}

// AdminUserDetail is one user plus their tracked-data volume.
type AdminUserDetail struct {
	User         models.User
	RecordCount  int64
	SessionCount int64
}

type AdminService struct {
	users   AdminUserRepository
	records AdminRecordCounter
	shifts  AdminShiftCounter
	events  AdminBillingEventLister
}

func NewAdminService(users AdminUserRepository, records AdminRecordCounter, shifts AdminShiftCounter, events AdminBillingEventLister) *AdminService {
	return &AdminService{
		users:   users,
		records: records,
		shifts:  shifts,
		events:  events,
	}
}

func (service *AdminService) BuildOverview() (AdminOverview, error) {
	totalUsers, err := service.users.CountUsers()
	if err != nil {
		return AdminOverview{}, err
	}
	activeSubscribers, err := service.users.CountBySubscriptionStatus(models.SubscriptionActive)
	if err != nil {
		return AdminOverview{}, err
	}
	trialUsers, err := service.users.CountBySubscriptionStatus(models.SubscriptionTrial)
	if err != nil {
		return AdminOverview{}, err
	}

	return AdminOverview{
		TotalUsers:        totalUsers,
		ActiveSubscribers: activeSubscribers,
		TrialUsers:        trialUsers,
	}, nil
}

func (service *AdminService) ListUsers() ([]models.User, error) {
	return service.users.ListOrderedByCreation()
}

func (service *AdminService) UserDetail(userID uint) (AdminUserDetail, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return AdminUserDetail{}, ErrAdminUserNotFound
	}

	recordCount, err := service.records.CountByUser(userID)
	if err != nil {
		return AdminUserDetail{}, err
	}
	sessionCount, err := service.shifts.CountByUser(userID)
	if err != nil {
		return AdminUserDetail{}, err
	}

	return AdminUserDetail{
		User:         user,
		RecordCount:  recordCount,
		SessionCount: sessionCount,
	}, nil
}

// ActivatePremium grants premium access for the given number of days,
// mirroring what a confirmed payment would do.
func (service *AdminService) ActivatePremium(userID uint, days int, now time.Time) (time.Time, error) {
	if days < 1 {
		days = PremiumPeriodDays
	}
	endsAt := now.AddDate(0, 0, days)
	err := service.users.UpdateByID(userID, map[string]any{
		"plan":                 models.PlanPremium,
		"subscription_status":  models.SubscriptionActive,
		"subscription_ends_at": endsAt,
	})
	if err != nil {
		return time.Time{}, err
	}
	return endsAt, nil
}

// CancelPremium revokes access immediately.
func (service *AdminService) CancelPremium(userID uint, now time.Time) error {
	return service.users.UpdateByID(userID, map[string]any{
		"plan":                 models.PlanFree,
		"subscription_status":  models.SubscriptionExpired,
		"subscription_ends_at": now,
	})
}

func (service *AdminService) RecentBillingEvents(limit int) ([]models.BillingEvent, error) {
	return service.events.ListRecent(limit)
}
