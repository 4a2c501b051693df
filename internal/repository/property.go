package repository

import (
	"time"

	"rental-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetByID retrieves a property by ID
func (r *PropertyRepository) GetByID(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetByBuildingID retrieves properties belonging to a building with pagination
func (r *PropertyRepository) GetByBuildingID(buildingID uuid.UUID, limit, offset int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	if err := r.db.Model(&models.Property{}).Where("building_id = ?", buildingID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("building_id = ?", buildingID).Limit(limit).Offset(offset).Order("name").Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// GetAll retrieves all properties with pagination
func (r *PropertyRepository) GetAll(limit, offset int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	if err := r.db.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// GetWithTenancyPeriods retrieves a property with its tenancy periods
func (r *PropertyRepository) GetWithTenancyPeriods(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.Preload("TenancyPeriods").First(&property, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetTenants retrieves the distinct tenants attached to any of the
// property's tenancy periods. Soft-deleted tenants are excluded.
func (r *PropertyRepository) GetTenants(id uuid.UUID) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.
		Distinct("tenants.*").
		Joins("JOIN tenancy_assignments ta ON ta.tenant_id = tenants.id").
		Joins("JOIN tenancy_periods tp ON tp.id = ta.tenancy_period_id").
		Where("tp.property_id = ?", id).
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

// IsActiveOn reports whether the property has a tenancy period covering the
// given date. An open-ended period counts as active.
func (r *PropertyRepository) IsActiveOn(id uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.TenancyPeriod{}).
		Where("property_id = ?", id).
		Where("start_date <= ?", date).
		Where("end_date IS NULL OR end_date >= ?", date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a property
func (r *PropertyRepository) Update(property *models.Property) error {
	return r.db.Save(property).Error
}

// Delete hard-deletes a property and cascades to its tenancy periods.
// Tenants are untouched; they are independent entities.
func (r *PropertyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Property{}, "id = ?", id).Error
}
