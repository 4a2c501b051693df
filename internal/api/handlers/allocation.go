package handlers

import (
	"net/http"

	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AllocationHandler handles HTTP requests for tenancy allocation
type AllocationHandler struct {
	service service.AllocationServiceInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(service service.AllocationServiceInterface) *AllocationHandler {
	return &AllocationHandler{service: service}
}

// CreateRentalContract handles POST /api/v1/properties/:id/createRentalContract
// @Summary Create a rental contract
// @Description Atomically create a tenancy period on a property together with its tenants
// @Tags allocation
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param contract body service.CreateRentalContractRequest true "Contract data"
// @Success 201 {object} map[string]interface{} "Successfully created rental contract"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 422 {object} map[string]interface{} "Validation failed or dates overlap an existing period"
// @Failure 500 {object} map[string]interface{} "Transaction failed"
// @Security BearerAuth
// @Router /properties/{id}/createRentalContract [post]
func (h *AllocationHandler) CreateRentalContract(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID: invalid UUID format"})
		return
	}

	var req service.CreateRentalContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	period, err := h.service.CreateRentalContract(propertyID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err), apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsTransaction(err):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create rental contract", "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental contract", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Rental contract created successfully",
		"tenancy_period": period,
	})
}

// ListPropertyTenants handles GET /api/v1/properties/:id/tenants
// @Summary List tenants of a property
// @Description Get the distinct tenants assigned to any tenancy period of the property
// @Tags allocation
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {array} models.Tenant "Tenants of the property"
// @Failure 400 {object} map[string]interface{} "Invalid property ID"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties/{id}/tenants [get]
func (h *AllocationHandler) ListPropertyTenants(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID: invalid UUID format"})
		return
	}

	tenants, err := h.service.ListPropertyTenants(propertyID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tenants", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// MoveTenant handles POST /api/v1/tenants/:id/move
// @Summary Move a tenant to another tenancy period
// @Description Atomically detach the tenant from overlapping periods and attach it to the target period
// @Tags allocation
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param move body service.MoveTenantRequest true "Move data"
// @Success 200 {object} map[string]interface{} "Successfully moved tenant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Tenant or target period not found"
// @Failure 422 {object} map[string]interface{} "Validation failed or target period at capacity"
// @Failure 500 {object} map[string]interface{} "Transaction failed"
// @Security BearerAuth
// @Router /tenants/{id}/move [post]
func (h *AllocationHandler) MoveTenant(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	var req service.MoveTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenant, err := h.service.MoveTenant(tenantID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err), apperrors.IsConflict(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsTransaction(err):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to move tenant", "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move tenant", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tenant moved successfully",
		"tenant":  tenant,
	})
}
