package repository

import (
	"rental-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CorporationRepository handles database operations for corporations
type CorporationRepository struct {
	db *gorm.DB
}

// NewCorporationRepository creates a new corporation repository
func NewCorporationRepository(db *gorm.DB) *CorporationRepository {
	return &CorporationRepository{db: db}
}

// Create creates a new corporation
func (r *CorporationRepository) Create(corp *models.Corporation) error {
	return r.db.Create(corp).Error
}

// GetByID retrieves a corporation by ID
func (r *CorporationRepository) GetByID(id uuid.UUID) (*models.Corporation, error) {
	var corp models.Corporation
	err := r.db.First(&corp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &corp, nil
}

// GetByName retrieves a corporation by name
func (r *CorporationRepository) GetByName(name string) (*models.Corporation, error) {
	var corp models.Corporation
	err := r.db.First(&corp, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &corp, nil
}

// GetAll retrieves all corporations with pagination
func (r *CorporationRepository) GetAll(limit, offset int) ([]models.Corporation, int64, error) {
	var corps []models.Corporation
	var total int64

	if err := r.db.Model(&models.Corporation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&corps).Error
	if err != nil {
		return nil, 0, err
	}

	return corps, total, nil
}

// GetWithBuildings retrieves a corporation with its buildings
func (r *CorporationRepository) GetWithBuildings(id uuid.UUID) (*models.Corporation, error) {
	var corp models.Corporation
	err := r.db.Preload("Buildings").First(&corp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &corp, nil
}

// Update updates a corporation
func (r *CorporationRepository) Update(corp *models.Corporation) error {
	return r.db.Save(corp).Error
}

// Delete hard-deletes a corporation; buildings, properties and tenancy
// periods go with it through the DB-level cascades.
func (r *CorporationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Corporation{}, "id = ?", id).Error
}
