package services

import (
	"time"

	"github.com/voltadev/shiftbook/internal/models"
)

type VehicleRepository interface {
	FindByUser(userID uint) (models.Vehicle, bool, error)
	Create(vehicle *models.Vehicle) error
	Save(vehicle *models.Vehicle) error
}

// VehicleInput mirrors the editable cost-config fields.
type VehicleInput struct {
	AssetValue         float64
	TaxDueDate         *time.Time
	MonthlyMaintenance float64
	MonthlyInsurance   float64
	MonthlyFinancing   float64
	IncludeTax         bool
	IncludeMaintenance bool
	IncludeInsurance   bool
	IncludeFinancing   bool
}

type VehicleService struct {
	vehicles VehicleRepository
}

func NewVehicleService(vehicles VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// LoadVehicle returns the user's vehicle config, or a zero-value
// config with all categories included when none was saved yet.
func (service *VehicleService) LoadVehicle(userID uint) (models.Vehicle, error) {
	vehicle, exists, err := service.vehicles.FindByUser(userID)
	if err != nil {
		return models.Vehicle{}, err
	}
	if !exists {
		return models.Vehicle{
			UserID:             userID,
			IncludeTax:         true,
			IncludeMaintenance: true,
			IncludeInsurance:   true,
			IncludeFinancing:   true,
		}, nil
	}
	return vehicle, nil
}

// SaveVehicle upserts the single per-user vehicle row.
func (service *VehicleService) SaveVehicle(userID uint, input VehicleInput) (models.Vehicle, error) {
	vehicle, exists, err := service.vehicles.FindByUser(userID)
	if err != nil {
		return models.Vehicle{}, err
	}
	if !exists {
		vehicle = models.Vehicle{UserID: userID}
	}

	vehicle.AssetValue = input.AssetValue
	vehicle.TaxDueDate = input.TaxDueDate
	vehicle.MonthlyMaintenance = input.MonthlyMaintenance
	vehicle.MonthlyInsurance = input.MonthlyInsurance
	vehicle.MonthlyFinancing = input.MonthlyFinancing
	vehicle.IncludeTax = input.IncludeTax
	vehicle.IncludeMaintenance = input.IncludeMaintenance
	vehicle.IncludeInsurance = input.IncludeInsurance
	vehicle.IncludeFinancing = input.IncludeFinancing

	if exists {
		err = service.vehicles.Save(&vehicle)
	} else {
		err = service.vehicles.Create(&vehicle)
	}
	if err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}
