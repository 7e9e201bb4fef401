package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for the caller's organization
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
	}
}

// GetOrganization handles GET /api/v1/organization
// @Summary Get current organization
// @Description Retrieve the organization of the authenticated user, including its settings
// @Tags organizations
// @Accept json
// @Produce json
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 403 {object} map[string]interface{} "No organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/organization [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	org, err := h.service.GetByID(orgID)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PUT /api/v1/organization
// @Summary Update current organization
// @Description Update the name or settings of the caller's organization. Requires the admin role.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/organization [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Update(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}
