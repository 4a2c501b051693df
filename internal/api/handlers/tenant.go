package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Create a new tenant
// @Description Create a new tenant with a unique email
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} models.Tenant "Successfully created tenant"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Tenant already exists"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /api/v1/tenants/:id
// @Summary Get tenant by ID
// @Description Get a specific tenant by its UUID
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} models.Tenant "Successfully retrieved tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	tenant, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tenant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /api/v1/tenants
// @Summary List all tenants
// @Description Get all tenants with pagination support
// @Tags tenants
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TenantListResponse "Successfully retrieved tenants"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tenants, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tenants", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenantWithTenancyPeriods handles GET /api/v1/tenants/:id/tenancy-periods
// @Summary Get tenant with its tenancy periods
// @Description Get a tenant and the tenancy periods the tenant is assigned to
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} models.Tenant "Successfully retrieved tenant with tenancy periods"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id}/tenancy-periods [get]
func (h *TenantHandler) GetTenantWithTenancyPeriods(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	tenant, err := h.service.GetWithTenancyPeriods(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tenant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant handles PUT /api/v1/tenants/:id
// @Summary Update tenant
// @Description Update an existing tenant's name (email is immutable)
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Tenant data"
// @Success 200 {object} models.Tenant "Successfully updated tenant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tenant", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /api/v1/tenants/:id
// @Summary Soft delete tenant
// @Description Soft delete a tenant, keeping historical assignments intact
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tenant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tenant deleted successfully"})
}

// RestoreTenant handles POST /api/v1/tenants/:id/restore
// @Summary Restore a soft deleted tenant
// @Description Bring a soft deleted tenant back, reusing its original email
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} models.Tenant "Successfully restored tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 422 {object} map[string]interface{} "Tenant is not deleted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id}/restore [post]
func (h *TenantHandler) RestoreTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	tenant, err := h.service.Restore(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore tenant", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ForceDeleteTenant handles DELETE /api/v1/tenants/:id/force
// @Summary Permanently delete tenant
// @Description Permanently delete a tenant and remove its tenancy assignments
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted tenant"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id}/force [delete]
func (h *TenantHandler) ForceDeleteTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	if err := h.service.ForceDelete(id); err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tenant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tenant permanently deleted"})
}
