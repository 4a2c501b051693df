package models

// User represents an authenticated portal account (not a tenant).
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
