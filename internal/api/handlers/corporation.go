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

// CorporationHandler handles HTTP requests for corporations
type CorporationHandler struct {
	service service.CorporationServiceInterface
}

// NewCorporationHandler creates a new corporation handler
func NewCorporationHandler(service service.CorporationServiceInterface) *CorporationHandler {
	return &CorporationHandler{service: service}
}

// CreateCorporation handles POST /api/v1/corporations
// @Summary Create a new corporation
// @Description Create a new corporation with the provided details
// @Tags corporations
// @Accept json
// @Produce json
// @Param corporation body service.CreateCorporationRequest true "Corporation data"
// @Success 201 {object} models.Corporation "Successfully created corporation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Corporation already exists"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /corporations [post]
func (h *CorporationHandler) CreateCorporation(c *gin.Context) {
	var req service.CreateCorporationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	corp, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCorporationExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create corporation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, corp)
}

// GetCorporation handles GET /api/v1/corporations/:id
// @Summary Get corporation by ID
// @Description Get a specific corporation by its UUID
// @Tags corporations
// @Accept json
// @Produce json
// @Param id path string true "Corporation ID (UUID)"
// @Success 200 {object} models.Corporation "Successfully retrieved corporation"
// @Failure 400 {object} map[string]interface{} "Invalid corporation ID"
// @Failure 404 {object} map[string]interface{} "Corporation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /corporations/{id} [get]
func (h *CorporationHandler) GetCorporation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid corporation ID: invalid UUID format"})
		return
	}

	corp, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCorporationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get corporation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, corp)
}

// ListCorporations handles GET /api/v1/corporations
// @Summary List all corporations
// @Description Get all corporations with pagination support
// @Tags corporations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CorporationListResponse "Successfully retrieved corporations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /corporations [get]
func (h *CorporationHandler) ListCorporations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	corps, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get corporations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, corps)
}

// GetCorporationWithBuildings handles GET /api/v1/corporations/:id/buildings
// @Summary Get corporation with its buildings
// @Description Get a corporation and all buildings that belong to it
// @Tags corporations
// @Accept json
// @Produce json
// @Param id path string true "Corporation ID (UUID)"
// @Success 200 {object} models.Corporation "Successfully retrieved corporation with buildings"
// @Failure 400 {object} map[string]interface{} "Invalid corporation ID"
// @Failure 404 {object} map[string]interface{} "Corporation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /corporations/{id}/buildings [get]
func (h *CorporationHandler) GetCorporationWithBuildings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid corporation ID: invalid UUID format"})
		return
	}

	corp, err := h.service.GetWithBuildings(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCorporationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get corporation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, corp)
}

// UpdateCorporation handles PUT /api/v1/corporations/:id
// @Summary Update corporation
// @Description Update an existing corporation
// @Tags corporations
// @Accept json
// @Produce json
// @Param id path string true "Corporation ID (UUID)"
// @Param corporation body service.UpdateCorporationRequest true "Corporation data"
// @Success 200 {object} models.Corporation "Successfully updated corporation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Corporation not found"
// @Failure 409 {object} map[string]interface{} "Corporation already exists"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /corporations/{id} [put]
func (h *CorporationHandler) UpdateCorporation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid corporation ID: invalid UUID format"})
		return
	}

	var req service.UpdateCorporationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	corp, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCorporationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrCorporationExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update corporation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, corp)
}

// DeleteCorporation handles DELETE /api/v1/corporations/:id
// @Summary Delete corporation
// @Description Delete a corporation and everything beneath it
// @Tags corporations
// @Accept json
// @Produce json
// @Param id path string true "Corporation ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted corporation"
// @Failure 400 {object} map[string]interface{} "Invalid corporation ID"
// @Failure 404 {object} map[string]interface{} "Corporation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /corporations/{id} [delete]
func (h *CorporationHandler) DeleteCorporation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid corporation ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCorporationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete corporation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Corporation deleted successfully"})
}
