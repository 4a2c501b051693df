package service

import (
	"errors"
	"fmt"

	"rental-portal-backend/internal/database/models"
	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildingService handles business logic for buildings
type BuildingService struct {
	repo      repository.BuildingRepositoryInterface
	corpRepo  repository.CorporationRepositoryInterface
	validator *validator.Validate
}

// NewBuildingService creates a new building service
func NewBuildingService(repo repository.BuildingRepositoryInterface, corpRepo repository.CorporationRepositoryInterface, validator *validator.Validate) *BuildingService {
	return &BuildingService{
		repo:      repo,
		corpRepo:  corpRepo,
		validator: validator,
	}
}

// CreateBuildingRequest represents the request to create a building
type CreateBuildingRequest struct {
	CorporationID uuid.UUID `json:"corporation_id" validate:"required"`
	Name          string    `json:"name" validate:"required,min=1,max=255"`
	Address       string    `json:"address" validate:"required,max=255"`
	City          string    `json:"city" validate:"required,max=100"`
	ZipCode       string    `json:"zip_code" validate:"required,max=20"`
}

// UpdateBuildingRequest represents the request to update a building
type UpdateBuildingRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Address string `json:"address" validate:"required,max=255"`
	City    string `json:"city" validate:"required,max=100"`
	ZipCode string `json:"zip_code" validate:"required,max=20"`
}

// BuildingListResponse represents a paginated list of buildings
type BuildingListResponse struct {
	Buildings []models.Building `json:"buildings"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a new building under an existing corporation
func (s *BuildingService) Create(req *CreateBuildingRequest) (*models.Building, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.corpRepo.GetByID(req.CorporationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCorporationNotFound
		}
		return nil, fmt.Errorf("failed to verify corporation: %w", err)
	}

	building := &models.Building{
		CorporationID: req.CorporationID,
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		ZipCode:       req.ZipCode,
	}
	if err := s.repo.Create(building); err != nil {
		return nil, fmt.Errorf("failed to create building: %w", err)
	}

	return building, nil
}

// GetByID retrieves a building by ID
func (s *BuildingService) GetByID(id uuid.UUID) (*models.Building, error) {
	building, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}
	return building, nil
}

// GetByCorporation retrieves buildings of a corporation with pagination
func (s *BuildingService) GetByCorporation(corpID uuid.UUID, page, pageSize int) (*BuildingListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.corpRepo.GetByID(corpID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCorporationNotFound
		}
		return nil, fmt.Errorf("failed to verify corporation: %w", err)
	}

	offset := (page - 1) * pageSize
	buildings, total, err := s.repo.GetByCorporationID(corpID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get buildings: %w", err)
	}

	return &BuildingListResponse{
		Buildings: buildings,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetWithProperties retrieves a building with its properties
func (s *BuildingService) GetWithProperties(id uuid.UUID) (*models.Building, error) {
	building, err := s.repo.GetWithProperties(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to get building with properties: %w", err)
	}
	return building, nil
}

// Update updates a building
func (s *BuildingService) Update(id uuid.UUID, req *UpdateBuildingRequest) (*models.Building, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	building, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}

	building.Name = req.Name
	building.Address = req.Address
	building.City = req.City
	building.ZipCode = req.ZipCode
	if err := s.repo.Update(building); err != nil {
		return nil, fmt.Errorf("failed to update building: %w", err)
	}

	return building, nil
}

// Delete hard-deletes a building and its properties
func (s *BuildingService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBuildingNotFound
		}
		return fmt.Errorf("failed to get building: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete building: %w", err)
	}
	return nil
}
