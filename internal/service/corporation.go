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

// CorporationService handles business logic for corporations
type CorporationService struct {
	repo      repository.CorporationRepositoryInterface
	validator *validator.Validate
}

// NewCorporationService creates a new corporation service
func NewCorporationService(repo repository.CorporationRepositoryInterface, validator *validator.Validate) *CorporationService {
	return &CorporationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCorporationRequest represents the request to create a corporation
type CreateCorporationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// UpdateCorporationRequest represents the request to update a corporation
type UpdateCorporationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// CorporationListResponse represents a paginated list of corporations
type CorporationListResponse struct {
	Corporations []models.Corporation `json:"corporations"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

// Create creates a new corporation
func (s *CorporationService) Create(req *CreateCorporationRequest) (*models.Corporation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing corporation: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCorporationExists
	}

	corp := &models.Corporation{Name: req.Name}
	if err := s.repo.Create(corp); err != nil {
		return nil, fmt.Errorf("failed to create corporation: %w", err)
	}

	return corp, nil
}

// GetByID retrieves a corporation by ID
func (s *CorporationService) GetByID(id uuid.UUID) (*models.Corporation, error) {
	corp, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCorporationNotFound
		}
		return nil, fmt.Errorf("failed to get corporation: %w", err)
	}
	return corp, nil
}

// GetAll retrieves all corporations with pagination
func (s *CorporationService) GetAll(page, pageSize int) (*CorporationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	corps, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get corporations: %w", err)
	}

	return &CorporationListResponse{
		Corporations: corps,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// GetWithBuildings retrieves a corporation with its buildings
func (s *CorporationService) GetWithBuildings(id uuid.UUID) (*models.Corporation, error) {
	corp, err := s.repo.GetWithBuildings(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCorporationNotFound
		}
		return nil, fmt.Errorf("failed to get corporation with buildings: %w", err)
	}
	return corp, nil
}

// Update updates a corporation
func (s *CorporationService) Update(id uuid.UUID, req *UpdateCorporationRequest) (*models.Corporation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	corp, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCorporationNotFound
		}
		return nil, fmt.Errorf("failed to get corporation: %w", err)
	}

	corp.Name = req.Name
	if err := s.repo.Update(corp); err != nil {
		return nil, fmt.Errorf("failed to update corporation: %w", err)
	}

	return corp, nil
}

// Delete hard-deletes a corporation and everything below it in the hierarchy
func (s *CorporationService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCorporationNotFound
		}
		return fmt.Errorf("failed to get corporation: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete corporation: %w", err)
	}
	return nil
}
