package db

import (
	"github.com/voltadev/shiftbook/internal/models"
	"gorm.io/gorm"
)

type VehicleRepository struct {
	database *gorm.DB
}

func NewVehicleRepository(database *gorm.DB) *VehicleRepository {
	return &VehicleRepository{database: database}
}

func (repo *VehicleRepository) FindByUser(userID uint) (models.Vehicle, bool, error) {
	vehicle := models.Vehicle{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&vehicle)
	if result.Error != nil {
		return models.Vehicle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Vehicle{}, false, nil
	}
	return vehicle, true, nil
}

func (repo *VehicleRepository) Create(vehicle *models.Vehicle) error {
	return repo.database.Create(vehicle).Error
}

func (repo *VehicleRepository) Save(vehicle *models.Vehicle) error {
	return repo.database.Save(vehicle).Error
}
