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

// BuildingHandler handles HTTP requests for buildings
type BuildingHandler struct {
	service service.BuildingServiceInterface
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(service service.BuildingServiceInterface) *BuildingHandler {
	return &BuildingHandler{service: service}
}

// CreateBuilding handles POST /api/v1/buildings
// @Summary Create a new building
// @Description Create a new building under a corporation
// @Tags buildings
// @Accept json
// @Produce json
// @Param building body service.CreateBuildingRequest true "Building data"
// @Success 201 {object} models.Building "Successfully created building"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Corporation not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings [post]
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req service.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	building, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCorporationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create building", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, building)
}

// GetBuilding handles GET /api/v1/buildings/:id
// @Summary Get building by ID
// @Description Get a specific building by its UUID
// @Tags buildings
// @Accept json
// @Produce json
// @Param id path string true "Building ID (UUID)"
// @Success 200 {object} models.Building "Successfully retrieved building"
// @Failure 400 {object} map[string]interface{} "Invalid building ID"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building ID: invalid UUID format"})
		return
	}

	building, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBuildingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get building", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, building)
}

// GetBuildingsByCorporation handles GET /api/v1/buildings?corporation_id=...
// @Summary List buildings for a corporation
// @Description Get all buildings belonging to a corporation with pagination support
// @Tags buildings
// @Accept json
// @Produce json
// @Param corporation_id query string true "Corporation ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BuildingListResponse "Successfully retrieved buildings"
// @Failure 400 {object} map[string]interface{} "Missing or invalid corporation_id"
// @Failure 404 {object} map[string]interface{} "Corporation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings [get]
func (h *BuildingHandler) GetBuildingsByCorporation(c *gin.Context) {
	corpIDStr := c.Query("corporation_id")
	if corpIDStr == "" {
		corpIDStr = c.Param("id")
	}
	if corpIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corporation_id parameter is required"})
		return
	}

	corpID, err := uuid.Parse(corpIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid corporation ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	buildings, err := h.service.GetByCorporation(corpID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrCorporationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get buildings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, buildings)
}

// GetBuildingWithProperties handles GET /api/v1/buildings/:id/properties
// @Summary Get building with its properties
// @Description Get a building and all properties that belong to it
// @Tags buildings
// @Accept json
// @Produce json
// @Param id path string true "Building ID (UUID)"
// @Success 200 {object} models.Building "Successfully retrieved building with properties"
// @Failure 400 {object} map[string]interface{} "Invalid building ID"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings/{id}/properties [get]
func (h *BuildingHandler) GetBuildingWithProperties(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building ID: invalid UUID format"})
		return
	}

	building, err := h.service.GetWithProperties(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBuildingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get building", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, building)
}

// UpdateBuilding handles PUT /api/v1/buildings/:id
// @Summary Update building
// @Description Update an existing building
// @Tags buildings
// @Accept json
// @Produce json
// @Param id path string true "Building ID (UUID)"
// @Param building body service.UpdateBuildingRequest true "Building data"
// @Success 200 {object} models.Building "Successfully updated building"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings/{id} [put]
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building ID: invalid UUID format"})
		return
	}

	var req service.UpdateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	building, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBuildingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update building", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, building)
}

// DeleteBuilding handles DELETE /api/v1/buildings/:id
// @Summary Delete building
// @Description Delete a building and everything beneath it
// @Tags buildings
// @Accept json
// @Produce json
// @Param id path string true "Building ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted building"
// @Failure 400 {object} map[string]interface{} "Invalid building ID"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /buildings/{id} [delete]
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid building ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrBuildingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete building", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Building deleted successfully"})
}
