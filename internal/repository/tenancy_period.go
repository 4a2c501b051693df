package repository

import (
	"time"

	"rental-portal-backend/internal/database/models"
	"rental-portal-backend/internal/daterange"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenancyPeriodRepository handles database operations for tenancy periods
// and the tenant attachments hanging off them.
type TenancyPeriodRepository struct {
	db *gorm.DB
}

// NewTenancyPeriodRepository creates a new tenancy period repository
func NewTenancyPeriodRepository(db *gorm.DB) *TenancyPeriodRepository {
	return &TenancyPeriodRepository{db: db}
}

// Create creates a new tenancy period
func (r *TenancyPeriodRepository) Create(period *models.TenancyPeriod) error {
	return r.db.Create(period).Error
}

// GetByID retrieves a tenancy period by ID
func (r *TenancyPeriodRepository) GetByID(id uuid.UUID) (*models.TenancyPeriod, error) {
	var period models.TenancyPeriod
	err := r.db.First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetWithTenants retrieves a tenancy period with its attached tenants
func (r *TenancyPeriodRepository) GetWithTenants(id uuid.UUID) (*models.TenancyPeriod, error) {
	var period models.TenancyPeriod
	err := r.db.Preload("Tenants").First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByPropertyID retrieves all tenancy periods of a property ordered by start date
func (r *TenancyPeriodRepository) GetByPropertyID(propertyID uuid.UUID) ([]models.TenancyPeriod, error) {
	var periods []models.TenancyPeriod
	err := r.db.Where("property_id = ?", propertyID).Order("start_date").Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

// GetByTenantID retrieves all tenancy periods a tenant is attached to
func (r *TenancyPeriodRepository) GetByTenantID(tenantID uuid.UUID) ([]models.TenancyPeriod, error) {
	var periods []models.TenancyPeriod
	err := r.db.
		Joins("JOIN tenancy_assignments ta ON ta.tenancy_period_id = tenancy_periods.id").
		Where("ta.tenant_id = ?", tenantID).
		Order("tenancy_periods.start_date").
		Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

// GetOverlapping retrieves the property's periods whose stored range
// overlaps rng. Boundaries are inclusive; a NULL end date extends to
// infinity. Must run inside the caller's transaction for allocation checks.
func (r *TenancyPeriodRepository) GetOverlapping(propertyID uuid.UUID, rng daterange.Range) ([]models.TenancyPeriod, error) {
	var periods []models.TenancyPeriod
	q := r.db.
		Where("property_id = ?", propertyID).
		Where("end_date IS NULL OR end_date >= ?", rng.Start)
	if rng.End != nil {
		q = q.Where("start_date <= ?", *rng.End)
	}
	if err := q.Order("start_date").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

// GetOverlappingForTenant retrieves the periods a tenant is attached to
// whose stored range overlaps rng, using the same full interval test as
// GetOverlapping (not an endpoint-only comparison).
func (r *TenancyPeriodRepository) GetOverlappingForTenant(tenantID uuid.UUID, rng daterange.Range) ([]models.TenancyPeriod, error) {
	var periods []models.TenancyPeriod
	q := r.db.
		Joins("JOIN tenancy_assignments ta ON ta.tenancy_period_id = tenancy_periods.id").
		Where("ta.tenant_id = ?", tenantID).
		Where("tenancy_periods.end_date IS NULL OR tenancy_periods.end_date >= ?", rng.Start)
	if rng.End != nil {
		q = q.Where("tenancy_periods.start_date <= ?", *rng.End)
	}
	if err := q.Order("tenancy_periods.start_date").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

// CountTenants counts the tenants currently attached to a period
func (r *TenancyPeriodRepository) CountTenants(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TenancyAssignment{}).
		Where("tenancy_period_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Attach creates the tenant↔period association, optionally recording the
// effective occupancy window of this specific attachment.
func (r *TenancyPeriodRepository) Attach(periodID, tenantID uuid.UUID, effectiveStart, effectiveEnd *time.Time) error {
	assignment := models.TenancyAssignment{
		TenancyPeriodID: periodID,
		TenantID:        tenantID,
		EffectiveStart:  effectiveStart,
		EffectiveEnd:    effectiveEnd,
	}
	return r.db.Create(&assignment).Error
}

// Detach removes the tenant↔period association
func (r *TenancyPeriodRepository) Detach(periodID, tenantID uuid.UUID) error {
	return r.db.
		Where("tenancy_period_id = ? AND tenant_id = ?", periodID, tenantID).
		Delete(&models.TenancyAssignment{}).Error
}

// Delete hard-deletes a tenancy period; its attachments go with it
func (r *TenancyPeriodRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TenancyPeriod{}, "id = ?", id).Error
}
