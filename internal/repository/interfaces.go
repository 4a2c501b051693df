package repository

import (
	"time"

	"rental-portal-backend/internal/database/models"
	"rental-portal-backend/internal/daterange"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CorporationRepositoryInterface defines the interface for corporation repository operations
type CorporationRepositoryInterface interface {
	Create(corp *models.Corporation) error
	GetByID(id uuid.UUID) (*models.Corporation, error)
	GetByName(name string) (*models.Corporation, error)
	GetAll(limit, offset int) ([]models.Corporation, int64, error)
	GetWithBuildings(id uuid.UUID) (*models.Corporation, error)
	Update(corp *models.Corporation) error
	Delete(id uuid.UUID) error
}

// BuildingRepositoryInterface defines the interface for building repository operations
type BuildingRepositoryInterface interface {
	Create(building *models.Building) error
	GetByID(id uuid.UUID) (*models.Building, error)
	GetByCorporationID(corpID uuid.UUID, limit, offset int) ([]models.Building, int64, error)
	GetAll(limit, offset int) ([]models.Building, int64, error)
	GetWithProperties(id uuid.UUID) (*models.Building, error)
	Update(building *models.Building) error
	Delete(id uuid.UUID) error
}

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	Create(property *models.Property) error
	GetByID(id uuid.UUID) (*models.Property, error)
	GetByBuildingID(buildingID uuid.UUID, limit, offset int) ([]models.Property, int64, error)
	GetAll(limit, offset int) ([]models.Property, int64, error)
	GetWithTenancyPeriods(id uuid.UUID) (*models.Property, error)
	GetTenants(id uuid.UUID) ([]models.Tenant, error)
	IsActiveOn(id uuid.UUID, date time.Time) (bool, error)
	Update(property *models.Property) error
	Delete(id uuid.UUID) error
}

// TenancyPeriodRepositoryInterface defines the interface for tenancy period repository operations
type TenancyPeriodRepositoryInterface interface {
	Create(period *models.TenancyPeriod) error
	GetByID(id uuid.UUID) (*models.TenancyPeriod, error)
	GetWithTenants(id uuid.UUID) (*models.TenancyPeriod, error)
	GetByPropertyID(propertyID uuid.UUID) ([]models.TenancyPeriod, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.TenancyPeriod, error)
	GetOverlapping(propertyID uuid.UUID, rng daterange.Range) ([]models.TenancyPeriod, error)
	GetOverlappingForTenant(tenantID uuid.UUID, rng daterange.Range) ([]models.TenancyPeriod, error)
	CountTenants(id uuid.UUID) (int64, error)
	Attach(periodID, tenantID uuid.UUID, effectiveStart, effectiveEnd *time.Time) error
	Detach(periodID, tenantID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByEmail(email string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	GetWithTenancyPeriods(id uuid.UUID) (*models.Tenant, error)
	Update(tenant *models.Tenant) error
	SoftDelete(id uuid.UUID) error
	Restore(id uuid.UUID) error
	ForceDelete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
