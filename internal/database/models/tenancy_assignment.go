package models

import (
	"time"

	"github.com/google/uuid"
)

// TenancyAssignment is the join row attaching a tenant to a tenancy period.
// EffectiveStart/EffectiveEnd optionally narrow the occupancy window of this
// specific tenant inside the period's own bounds (set by MoveTenant).
type TenancyAssignment struct {
	TenancyPeriodID uuid.UUID  `json:"tenancy_period_id" gorm:"type:uuid;primaryKey"`
	TenantID        uuid.UUID  `json:"tenant_id" gorm:"type:uuid;primaryKey"`
	EffectiveStart  *time.Time `json:"effective_start,omitempty" gorm:"type:date"`
	EffectiveEnd    *time.Time `json:"effective_end,omitempty" gorm:"type:date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relationships
	TenancyPeriod TenancyPeriod `json:"tenancy_period,omitempty" gorm:"foreignKey:TenancyPeriodID;constraint:OnDelete:CASCADE"`
	Tenant        Tenant        `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TenancyAssignment
func (TenancyAssignment) TableName() string {
	return "tenancy_assignments"
}
