package service

import (
	"errors"
	"fmt"
	"time"

	"rental-portal-backend/internal/database/models"
	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PropertyService handles business logic for properties
type PropertyService struct {
	repo         repository.PropertyRepositoryInterface
	buildingRepo repository.BuildingRepositoryInterface
	validator    *validator.Validate
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepositoryInterface, buildingRepo repository.BuildingRepositoryInterface, validator *validator.Validate) *PropertyService {
	return &PropertyService{
		repo:         repo,
		buildingRepo: buildingRepo,
		validator:    validator,
	}
}

// CreatePropertyRequest represents the request to create a property
type CreatePropertyRequest struct {
	BuildingID  uuid.UUID       `json:"building_id" validate:"required"`
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

// UpdatePropertyRequest represents the request to update a property
type UpdatePropertyRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

// PropertyListResponse represents a paginated list of properties
type PropertyListResponse struct {
	Properties []models.Property `json:"properties"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// PropertyActivityResponse reports whether a property is occupied on a date
type PropertyActivityResponse struct {
	PropertyID uuid.UUID `json:"property_id"`
	Date       string    `json:"date"`
	Active     bool      `json:"active"`
}

// Create creates a new property under an existing building
func (s *PropertyService) Create(req *CreatePropertyRequest) (*models.Property, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.MonthlyRent.IsNegative() {
		return nil, apperrors.NewValidationError("monthly_rent", "must not be negative")
	}

	if _, err := s.buildingRepo.GetByID(req.BuildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to verify building: %w", err)
	}

	property := &models.Property{
		BuildingID:  req.BuildingID,
		Name:        req.Name,
		MonthlyRent: req.MonthlyRent,
	}
	if err := s.repo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// GetByID retrieves a property by ID
func (s *PropertyService) GetByID(id uuid.UUID) (*models.Property, error) {
	property, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

// GetByBuilding retrieves properties of a building with pagination
func (s *PropertyService) GetByBuilding(buildingID uuid.UUID, page, pageSize int) (*PropertyListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.buildingRepo.GetByID(buildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to verify building: %w", err)
	}

	offset := (page - 1) * pageSize
	properties, total, err := s.repo.GetByBuildingID(buildingID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get properties: %w", err)
	}

	return &PropertyListResponse{
		Properties: properties,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetWithTenancyPeriods retrieves a property with its tenancy periods
func (s *PropertyService) GetWithTenancyPeriods(id uuid.UUID) (*models.Property, error) {
	property, err := s.repo.GetWithTenancyPeriods(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property with tenancy periods: %w", err)
	}
	return property, nil
}

// IsActiveOn reports whether the property is occupied on the given date.
// An empty date means today.
func (s *PropertyService) IsActiveOn(id uuid.UUID, date string) (*PropertyActivityResponse, error) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		parsed, err := time.Parse(DateLayout, date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
		}
		day = parsed
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	active, err := s.repo.IsActiveOn(id, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check property activity: %w", err)
	}

	return &PropertyActivityResponse{
		PropertyID: id,
		Date:       day.Format(DateLayout),
		Active:     active,
	}, nil
}

// Update updates a property
func (s *PropertyService) Update(id uuid.UUID, req *UpdatePropertyRequest) (*models.Property, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.MonthlyRent.IsNegative() {
		return nil, apperrors.NewValidationError("monthly_rent", "must not be negative")
	}

	property, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	property.Name = req.Name
	property.MonthlyRent = req.MonthlyRent
	if err := s.repo.Update(property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return property, nil
}

// Delete hard-deletes a property; its tenancy periods cascade, tenants remain
func (s *PropertyService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return fmt.Errorf("failed to get property: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}
