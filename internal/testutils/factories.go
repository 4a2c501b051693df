package testutils

import (
	"fmt"
	"time"

	"rental-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CorporationFactory provides methods to create test Corporation data
type CorporationFactory struct{}

// NewCorporationFactory creates a new CorporationFactory
func NewCorporationFactory() *CorporationFactory {
	return &CorporationFactory{}
}

// Create creates a test Corporation with default values
func (f *CorporationFactory) Create() *models.Corporation {
	id := uuid.New()
	return &models.Corporation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Corporation " + id.String()[:8],
	}
}

// WithName sets a custom name for the corporation
func (f *CorporationFactory) WithName(name string) *models.Corporation {
	corp := f.Create()
	corp.Name = name
	return corp
}

// BuildingFactory provides methods to create test Building data
type BuildingFactory struct{}

// NewBuildingFactory creates a new BuildingFactory
func NewBuildingFactory() *BuildingFactory {
	return &BuildingFactory{}
}

// Create creates a test Building with default values
func (f *BuildingFactory) Create() *models.Building {
	return &models.Building{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CorporationID: uuid.New(),
		Name:          "Test Building",
		Address:       "1 Main Street",
		City:          "Amsterdam",
		ZipCode:       "1011 AB",
	}
}

// WithCorporation sets the corporation ID for the building
func (f *BuildingFactory) WithCorporation(corpID uuid.UUID) *models.Building {
	building := f.Create()
	building.CorporationID = corpID
	return building
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values
func (f *PropertyFactory) Create() *models.Property {
	return &models.Property{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BuildingID:  uuid.New(),
		Name:        "Apartment 1A",
		MonthlyRent: decimal.NewFromFloat(1250.00),
	}
}

// WithBuilding sets the building ID for the property
func (f *PropertyFactory) WithBuilding(buildingID uuid.UUID) *models.Property {
	property := f.Create()
	property.BuildingID = buildingID
	return property
}

// WithMonthlyRent sets a custom rent for the property
func (f *PropertyFactory) WithMonthlyRent(rent decimal.Decimal) *models.Property {
	property := f.Create()
	property.MonthlyRent = rent
	return property
}

// TenancyPeriodFactory provides methods to create test TenancyPeriod data
type TenancyPeriodFactory struct{}

// NewTenancyPeriodFactory creates a new TenancyPeriodFactory
func NewTenancyPeriodFactory() *TenancyPeriodFactory {
	return &TenancyPeriodFactory{}
}

// Create creates a test TenancyPeriod with default values (one year, closed)
func (f *TenancyPeriodFactory) Create() *models.TenancyPeriod {
	start := Date(2024, 1, 1)
	end := Date(2024, 12, 31)
	return &models.TenancyPeriod{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PropertyID: uuid.New(),
		Name:       "Test Tenancy Period",
		StartDate:  start,
		EndDate:    &end,
	}
}

// WithProperty sets the property ID for the period
func (f *TenancyPeriodFactory) WithProperty(propertyID uuid.UUID) *models.TenancyPeriod {
	period := f.Create()
	period.PropertyID = propertyID
	return period
}

// WithDates sets custom start and end dates for the period
func (f *TenancyPeriodFactory) WithDates(start time.Time, end *time.Time) *models.TenancyPeriod {
	period := f.Create()
	period.StartDate = start
	period.EndDate = end
	return period
}

// OpenEnded creates a period with no end date
func (f *TenancyPeriodFactory) OpenEnded(propertyID uuid.UUID, start time.Time) *models.TenancyPeriod {
	period := f.Create()
	period.PropertyID = propertyID
	period.StartDate = start
	period.EndDate = nil
	return period
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values and a unique email
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "John Doe",
		Email: fmt.Sprintf("tenant-%s@test.com", id.String()[:8]),
		Phone: "+31-6-55512345",
	}
}

// WithEmail sets a custom email for the tenant
func (f *TenantFactory) WithEmail(email string) *models.Tenant {
	tenant := f.Create()
	tenant.Email = email
	return tenant
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	return tenant
}

// Date builds a UTC date at midnight, matching how service dates are parsed.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr is a convenience for optional end dates.
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}
