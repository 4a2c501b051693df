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

// TenantService handles business logic for tenants
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=255"`
	Comment string `json:"comment,omitempty"`
}

// UpdateTenantRequest represents the request to update a tenant
type UpdateTenantRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=255"`
	Comment string `json:"comment,omitempty"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []models.Tenant `json:"tenants"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new tenant with a globally unique email
func (s *TenantService) Create(req *CreateTenantRequest) (*models.Tenant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTenantExists
	}

	tenant := &models.Tenant{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Comments: req.Comment,
	}
	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return tenant, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

// GetAll retrieves all tenants with pagination
func (s *TenantService) GetAll(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tenants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}

	return &TenantListResponse{
		Tenants:  tenants,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetWithTenancyPeriods retrieves a tenant with its tenancy periods
func (s *TenantService) GetWithTenancyPeriods(id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.repo.GetWithTenancyPeriods(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant with tenancy periods: %w", err)
	}
	return tenant, nil
}

// Update updates a tenant's mutable fields (email is immutable)
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*models.Tenant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	tenant.Name = req.Name
	tenant.Phone = req.Phone
	tenant.Comments = req.Comment
	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return tenant, nil
}

// Delete soft-deletes a tenant; historical attachments are preserved
func (s *TenantService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to get tenant: %w", err)
	}

	if err := s.repo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

// Restore reverses a soft delete
func (s *TenantService) Restore(id uuid.UUID) (*models.Tenant, error) {
	// GetByID excludes soft-deleted rows, so a live tenant here means
	// there is nothing to restore.
	if _, err := s.repo.GetByID(id); err == nil {
		return nil, apperrors.ErrTenantNotDeleted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if err := s.repo.Restore(id); err != nil {
		return nil, fmt.Errorf("failed to restore tenant: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get restored tenant: %w", err)
	}
	return tenant, nil
}

// ForceDelete permanently removes a tenant together with its period
// attachments. The periods and properties stay untouched.
func (s *TenantService) ForceDelete(id uuid.UUID) error {
	if err := s.repo.ForceDelete(id); err != nil {
		return fmt.Errorf("failed to force-delete tenant: %w", err)
	}
	return nil
}
