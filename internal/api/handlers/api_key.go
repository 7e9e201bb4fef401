package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// APIKeyHandler handles HTTP requests for public API keys
type APIKeyHandler struct {
	service service.APIKeyServiceInterface
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(service service.APIKeyServiceInterface) *APIKeyHandler {
	return &APIKeyHandler{service: service}
}

// CreateAPIKey handles POST /api/v1/api-keys
// @Summary Issue API key
// @Description Issue a key for the public API. The plain key is only returned in this response.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param key body service.CreateAPIKeyRequest true "Key name"
// @Success 201 {object} service.CreatedAPIKeyResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Security BearerAuth
// @Router /api/v1/api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.CreateAPIKeyRequest
	if !bindJSON(c, &req) {
		return
	}

	key, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create api key")
		return
	}

	c.JSON(http.StatusCreated, key)
}

// ListAPIKeys handles GET /api/v1/api-keys
// @Summary List API keys
// @Tags api-keys
// @Produce json
// @Success 200 {array} service.APIKeyResponse
// @Security BearerAuth
// @Router /api/v1/api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	keys, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err, "Failed to list api keys")
		return
	}

	c.JSON(http.StatusOK, keys)
}

// RevokeAPIKey handles DELETE /api/v1/api-keys/:id
// @Summary Revoke API key
// @Tags api-keys
// @Param id path string true "API key ID (UUID)"
// @Success 204 "Successfully revoked key"
// @Failure 404 {object} map[string]interface{} "API key not found"
// @Security BearerAuth
// @Router /api/v1/api-keys/{id} [delete]
func (h *APIKeyHandler) RevokeAPIKey(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "api key")
	if !ok {
		return
	}

	if err := h.service.Revoke(orgID, id); err != nil {
		respondError(c, err, "Failed to revoke api key")
		return
	}

	c.Status(http.StatusNoContent)
}
