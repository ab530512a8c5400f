package db

import (
	"github.com/voltadev/shiftbook/internal/models"
	"gorm.io/gorm"
)

type BillingEventRepository struct {
	database *gorm.DB
}

func NewBillingEventRepository(database *gorm.DB) *BillingEventRepository {
	return &BillingEventRepository{database: database}
}

func (repo *BillingEventRepository) FindByEventID(eventID string) (models.BillingEvent, bool, error) {
	event := models.BillingEvent{}
	result := repo.database.
		Where("event_id = ?", eventID).
		Limit(1).
		Find(&event)
	if result.Error != nil {
		return models.BillingEvent{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.BillingEvent{}, false, nil
	}
	return event, true, nil
}

func (repo *BillingEventRepository) ListRecent(limit int) ([]models.BillingEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	events := make([]models.BillingEvent, 0, limit)
	if err := repo.database.Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *BillingEventRepository) Create(event *models.BillingEvent) error {
	return repo.database.Create(event).Error
}

func (repo *BillingEventRepository) Save(event *models.BillingEvent) error {
	return repo.database.Save(event).Error
}
