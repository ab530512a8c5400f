package db

import (
	"github.com/voltadev/shiftbook/internal/models"
	"gorm.io/gorm"
)

type ShiftSessionRepository struct {
	database *gorm.DB
}

func NewShiftSessionRepository(database *gorm.DB) *ShiftSessionRepository {
	return &ShiftSessionRepository{database: database}
}

// FindOpenByUser returns the user's open session, if any. The partial
// unique index on (user_id) WHERE end_time IS NULL guarantees at most
// one row can match.
func (repo *ShiftSessionRepository) FindOpenByUser(userID uint) (models.ShiftSession, bool, error) {
	session := models.ShiftSession{}
	result := repo.database.
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC, id DESC").
		Limit(1).
		Find(&session)
	if result.Error != nil {
		return models.ShiftSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ShiftSession{}, false, nil
	}
	return session, true, nil
}

func (repo *ShiftSessionRepository) FindByIDForUser(sessionID uint, userID uint) (models.ShiftSession, bool, error) {
	session := models.ShiftSession{}
	result := repo.database.
		Where("id = ? AND user_id = ?", sessionID, userID).
		Limit(1).
		Find(&session)
	if result.Error != nil {
		return models.ShiftSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ShiftSession{}, false, nil
	}
	return session, true, nil
}

func (repo *ShiftSessionRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ShiftSession{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ShiftSessionRepository) Create(session *models.ShiftSession) error {
	return repo.database.Create(session).Error
}

func (repo *ShiftSessionRepository) Save(session *models.ShiftSession) error {
	return repo.database.Save(session).Error
}
