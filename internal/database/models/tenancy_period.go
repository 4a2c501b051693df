package models

import (
	"time"

	"github.com/google/uuid"

	"rental-portal-backend/internal/daterange"
)

// MaxTenantsPerPeriod is the hard cap on tenants attached to a single period.
const MaxTenantsPerPeriod = 4

// TenancyPeriod represents a bounded (or open-ended) occupancy of a property.
// An open-ended period (EndDate nil) is currently active and extends to
// infinity for overlap purposes.
type TenancyPeriod struct {
	BaseModel
	PropertyID uuid.UUID  `json:"property_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string     `json:"name" gorm:"size:255" validate:"max=255"`
	StartDate  time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    *time.Time `json:"end_date,omitempty" gorm:"type:date"`

	// Relationships
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Tenants  []Tenant `json:"tenants,omitempty" gorm:"many2many:tenancy_assignments;"`
}

// TableName returns the table name for TenancyPeriod
func (TenancyPeriod) TableName() string {
	return "tenancy_periods"
}

// Range returns the period's date range for overlap checks.
func (tp *TenancyPeriod) Range() daterange.Range {
	return daterange.Range{Start: tp.StartDate, End: tp.EndDate}
}

// IsOpenEnded reports whether the period has no end date
func (tp *TenancyPeriod) IsOpenEnded() bool {
	return tp.EndDate == nil
}
