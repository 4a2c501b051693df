package repository

import (
	"rental-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildingRepository handles database operations for buildings
type BuildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new building repository
func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// Create creates a new building
func (r *BuildingRepository) Create(building *models.Building) error {
	return r.db.Create(building).Error
}

// GetByID retrieves a building by ID
func (r *BuildingRepository) GetByID(id uuid.UUID) (*models.Building, error) {
	var building models.Building
	err := r.db.First(&building, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

// GetByCorporationID retrieves buildings belonging to a corporation with pagination
func (r *BuildingRepository) GetByCorporationID(corpID uuid.UUID, limit, offset int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	if err := r.db.Model(&models.Building{}).Where("corporation_id = ?", corpID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("corporation_id = ?", corpID).Limit(limit).Offset(offset).Order("name").Find(&buildings).Error
	if err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}

// GetAll retrieves all buildings with pagination
func (r *BuildingRepository) GetAll(limit, offset int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	if err := r.db.Model(&models.Building{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&buildings).Error
	if err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}

// GetWithProperties retrieves a building with its properties
func (r *BuildingRepository) GetWithProperties(id uuid.UUID) (*models.Building, error) {
	var building models.Building
	err := r.db.Preload("Properties").First(&building, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

// Update updates a building
func (r *BuildingRepository) Update(building *models.Building) error {
	return r.db.Save(building).Error
}

// Delete hard-deletes a building and cascades to its properties
func (r *BuildingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Building{}, "id = ?", id).Error
}
