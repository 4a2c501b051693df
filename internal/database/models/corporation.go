package models

// Corporation represents the root entity of the real-estate hierarchy
type Corporation struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:255" validate:"required,min=1,max=255"`

	// Relationships
	Buildings []Building `json:"buildings,omitempty" gorm:"foreignKey:CorporationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Corporation
func (Corporation) TableName() string {
	return "corporations"
}
