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

// PropertyHandler handles HTTP requests for properties
type PropertyHandler struct {
	service service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(service service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// CreateProperty handles POST /api/v1/properties
// @Summary Create a new property
// @Description Create a new rentable property under a building
// @Tags properties
// @Accept json
// @Produce json
// @Param property body service.CreatePropertyRequest true "Property data"
// @Success 201 {object} models.Property "Successfully created property"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req service.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	property, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBuildingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, property)
}

// GetProperty handles GET /api/v1/properties/:id
// @Summary Get property by ID
// @Description Get a specific property by its UUID
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} models.Property "Successfully retrieved property"
// @Failure 400 {object} map[string]interface{} "Invalid property ID"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID: invalid UUID format"})
		return
	}

	property, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetPropertiesByBuilding handles GET /api/v1/properties?building_id=...
// @Summary List properties for a building
// @Description Get all properties belonging to a building with pagination support
// @Tags properties
// @Accept json
// @Produce json
// @Param building_id query string true "Building ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PropertyListResponse "Successfully retrieved properties"
// @Failure 400 {object} map[string]interface{} "Missing or invalid building_id"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) GetPropertiesByBuilding(c *gin.Context) {
	buildingIDStr := c.Query("building_id")
	if buildingIDStr == "" {
		buildingIDStr = c.Param("id")
	}
	if buildingIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "building_id parameter is required"})
		return
	}

	buildingID, err := uuid.Parse(buildingIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	properties, err := h.service.GetByBuilding(buildingID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrBuildingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetPropertyWithTenancyPeriods handles GET /api/v1/properties/:id/tenancy-periods
// @Summary Get property with its tenancy periods
// @Description Get a property and all tenancy periods attached to it
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} models.Property "Successfully retrieved property with tenancy periods"
// @Failure 400 {object} map[string]interface{} "Invalid property ID"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties/{id}/tenancy-periods [get]
func (h *PropertyHandler) GetPropertyWithTenancyPeriods(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID: invalid UUID format"})
		return
	}

	property, err := h.service.GetWithTenancyPeriods(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetPropertyActivity handles GET /api/v1/properties/:id/active?date=YYYY-MM-DD
// @Summary Check whether a property is actively rented
// @Description Check whether the property has a tenancy period covering the given date (today when omitted)
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param date query string false "Date to check (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.PropertyActivityResponse "Activity status for the property"
// @Failure 400 {object} map[string]interface{} "Invalid property ID"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 422 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties/{id}/active [get]
func (h *PropertyHandler) GetPropertyActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID: invalid UUID format"})
		return
	}

	activity, err := h.service.IsActiveOn(id, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check property activity", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, activity)
}

// UpdateProperty handles PUT /api/v1/properties/:id
// @Summary Update property
// @Description Update an existing property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param property body service.UpdatePropertyRequest true "Property data"
// @Success 200 {object} models.Property "Successfully updated property"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID: invalid UUID format"})
		return
	}

	var req service.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	property, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE /api/v1/properties/:id
// @Summary Delete property
// @Description Delete a property and its tenancy periods
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted property"
// @Failure 400 {object} map[string]interface{} "Invalid property ID"
// @Failure 404 {object} map[string]interface{} "Property not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
