package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for organization members
type ProfileHandler struct {
	service service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMe handles GET /api/v1/profiles/me
// @Summary Get own profile
// @Tags profiles
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Security BearerAuth
// @Router /api/v1/profiles/me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profileID, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetByID(profileID)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /api/v1/profiles
// @Summary List organization members
// @Tags profiles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProfileListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	profiles, err := h.service.List(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// UpdateRole handles PUT /api/v1/profiles/:id/role
// @Summary Change a member's role
// @Description Admins change the role of another member of their organization. Admins cannot demote themselves.
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Security BearerAuth
// @Router /api/v1/profiles/{id}/role [put]
func (h *ProfileHandler) UpdateRole(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "profile")
	if !ok {
		return
	}

	var req service.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.service.UpdateRole(orgID, actorID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, profile)
}
