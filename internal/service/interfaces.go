package service

import (
	"rental-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AllocationServiceInterface defines the interface for the tenancy allocation service
type AllocationServiceInterface interface {
	CreateRentalContract(propertyID uuid.UUID, req *CreateRentalContractRequest) (*models.TenancyPeriod, error)
	MoveTenant(tenantID uuid.UUID, req *MoveTenantRequest) (*models.Tenant, error)
	ListPropertyTenants(propertyID uuid.UUID) ([]models.Tenant, error)
}

// CorporationServiceInterface defines the interface for corporation service
type CorporationServiceInterface interface {
	Create(req *CreateCorporationRequest) (*models.Corporation, error)
	GetByID(id uuid.UUID) (*models.Corporation, error)
	GetAll(page, pageSize int) (*CorporationListResponse, error)
	GetWithBuildings(id uuid.UUID) (*models.Corporation, error)
	Update(id uuid.UUID, req *UpdateCorporationRequest) (*models.Corporation, error)
	Delete(id uuid.UUID) error
}

// BuildingServiceInterface defines the interface for building service
type BuildingServiceInterface interface {
	Create(req *CreateBuildingRequest) (*models.Building, error)
	GetByID(id uuid.UUID) (*models.Building, error)
	GetByCorporation(corpID uuid.UUID, page, pageSize int) (*BuildingListResponse, error)
	GetWithProperties(id uuid.UUID) (*models.Building, error)
	Update(id uuid.UUID, req *UpdateBuildingRequest) (*models.Building, error)
	Delete(id uuid.UUID) error
}

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	Create(req *CreatePropertyRequest) (*models.Property, error)
	GetByID(id uuid.UUID) (*models.Property, error)
	GetByBuilding(buildingID uuid.UUID, page, pageSize int) (*PropertyListResponse, error)
	GetWithTenancyPeriods(id uuid.UUID) (*models.Property, error)
	IsActiveOn(id uuid.UUID, date string) (*PropertyActivityResponse, error)
	Update(id uuid.UUID, req *UpdatePropertyRequest) (*models.Property, error)
	Delete(id uuid.UUID) error
}

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(req *CreateTenantRequest) (*models.Tenant, error)
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetAll(page, pageSize int) (*TenantListResponse, error)
	GetWithTenancyPeriods(id uuid.UUID) (*models.Tenant, error)
	Update(id uuid.UUID, req *UpdateTenantRequest) (*models.Tenant, error)
	Delete(id uuid.UUID) error
	Restore(id uuid.UUID) (*models.Tenant, error)
	ForceDelete(id uuid.UUID) error
}
