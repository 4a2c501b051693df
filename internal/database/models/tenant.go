package models

import (
	"gorm.io/gorm"
)

// Tenant represents a person renting properties over time. Tenants are
// independent of any single tenancy period and are soft-deleted so that
// historical attachments survive removal.
type Tenant struct {
	BaseModel
	Name      string         `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Email     string         `json:"email" gorm:"uniqueIndex:idx_tenants_email_active,where:deleted_at IS NULL;not null;size:255" validate:"required,email,max=255"` // Partial unique index excludes soft-deleted records so an email can be reused after removal
	Phone     string         `json:"phone,omitempty" gorm:"size:255" validate:"max=255"`
	Comments  string         `json:"comments,omitempty" gorm:"type:text"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	TenancyPeriods []TenancyPeriod `json:"tenancy_periods,omitempty" gorm:"many2many:tenancy_assignments;"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// IsDeleted reports whether the tenant has been soft-deleted
func (t *Tenant) IsDeleted() bool {
	return t.DeletedAt.Valid
}
