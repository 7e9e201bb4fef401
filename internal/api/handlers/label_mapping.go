package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LabelMappingHandler handles HTTP requests for Chatwoot label to stage mappings
type LabelMappingHandler struct {
	service service.LabelMappingServiceInterface
}

// NewLabelMappingHandler creates a new label mapping handler
func NewLabelMappingHandler(service service.LabelMappingServiceInterface) *LabelMappingHandler {
	return &LabelMappingHandler{service: service}
}

// CreateLabelMapping handles POST /api/v1/label-mappings
// @Summary Map a label to a stage
// @Description When a conversation receives the label, its deal moves to the stage
// @Tags label-mappings
// @Accept json
// @Produce json
// @Param mapping body service.CreateLabelMappingRequest true "Mapping data"
// @Success 201 {object} service.LabelMappingResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Stage not found"
// @Failure 409 {object} map[string]interface{} "Label already mapped"
// @Security BearerAuth
// @Router /api/v1/label-mappings [post]
func (h *LabelMappingHandler) CreateLabelMapping(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.CreateLabelMappingRequest
	if !bindJSON(c, &req) {
		return
	}

	mapping, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create label mapping")
		return
	}

	c.JSON(http.StatusCreated, mapping)
}

// ListLabelMappings handles GET /api/v1/label-mappings
// @Summary List label mappings
// @Tags label-mappings
// @Produce json
// @Success 200 {array} service.LabelMappingResponse
// @Security BearerAuth
// @Router /api/v1/label-mappings [get]
func (h *LabelMappingHandler) ListLabelMappings(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	mappings, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err, "Failed to list label mappings")
		return
	}

	c.JSON(http.StatusOK, mappings)
}

// DeleteLabelMapping handles DELETE /api/v1/label-mappings/:id
// @Summary Delete label mapping
// @Tags label-mappings
// @Param id path string true "Mapping ID (UUID)"
// @Success 204 "Successfully deleted mapping"
// @Failure 404 {object} map[string]interface{} "Mapping not found"
// @Security BearerAuth
// @Router /api/v1/label-mappings/{id} [delete]
func (h *LabelMappingHandler) DeleteLabelMapping(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "label mapping")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err, "Failed to delete label mapping")
		return
	}

	c.Status(http.StatusNoContent)
}
