package models

import (
	"github.com/google/uuid"
)

// Building represents a building owned by a corporation
type Building struct {
	BaseModel
	CorporationID uuid.UUID `json:"corporation_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Address       string    `json:"address" gorm:"not null;size:255" validate:"required,max=255"`
	City          string    `json:"city" gorm:"not null;size:100" validate:"required,max=100"`
	ZipCode       string    `json:"zip_code" gorm:"not null;size:20" validate:"required,max=20"`

	// Relationships
	Corporation Corporation `json:"corporation,omitempty" gorm:"foreignKey:CorporationID;constraint:OnDelete:CASCADE"`
	Properties  []Property  `json:"properties,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Building
func (Building) TableName() string {
	return "buildings"
}
