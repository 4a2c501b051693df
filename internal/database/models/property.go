package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property represents a rentable unit inside a building
type Property struct {
	BaseModel
	BuildingID  uuid.UUID       `json:"building_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" gorm:"type:numeric(10,2);not null"`

	// Relationships
	Building       Building        `json:"building,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	TenancyPeriods []TenancyPeriod `json:"tenancy_periods,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}

// IsActiveOn reports whether any of the loaded tenancy periods covers the
// given date. Requires TenancyPeriods to be preloaded; repository-level
// activity checks query the store directly instead.
func (p *Property) IsActiveOn(date time.Time) bool {
	for _, tp := range p.TenancyPeriods {
		if tp.Range().Contains(date) {
			return true
		}
	}
	return false
}
