package repository

import (
	"rental-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a non-deleted tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByEmail retrieves a non-deleted tenant by email
func (r *TenantRepository) GetByEmail(email string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetAll retrieves all non-deleted tenants with pagination
func (r *TenantRepository) GetAll(limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// GetWithTenancyPeriods retrieves a tenant with its tenancy periods
func (r *TenantRepository) GetWithTenancyPeriods(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.Preload("TenancyPeriods").First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update updates a tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// SoftDelete logically removes a tenant. Historic period attachments are
// kept for audit; the email becomes reusable via the partial unique index.
func (r *TenantRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Tenant{}, "id = ?", id).Error
}

// Restore reverses a soft delete
func (r *TenantRepository) Restore(id uuid.UUID) error {
	return r.db.Unscoped().Model(&models.Tenant{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

// ForceDelete permanently removes a tenant and its period attachments.
// Properties and tenancy periods themselves are untouched.
func (r *TenantRepository) ForceDelete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&models.TenancyAssignment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Tenant{}, "id = ?", id).Error
	})
}
