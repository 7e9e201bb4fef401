package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicAPIHandler serves the API-key authenticated public API
type PublicAPIHandler struct {
	service service.PublicAPIServiceInterface
}

// NewPublicAPIHandler creates a new public API handler
func NewPublicAPIHandler(service service.PublicAPIServiceInterface) *PublicAPIHandler {
	return &PublicAPIHandler{service: service}
}

func cursorParams(c *gin.Context) (string, int) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}
	return c.Query("cursor"), limit
}

// ListContacts handles GET /public/v1/contacts
// @Summary List contacts (public API)
// @Description Newest contacts first. Pass next_cursor back as cursor to fetch the following page.
// @Tags public
// @Produce json
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (1..100)" default(50)
// @Success 200 {object} service.CursorPage[service.ContactResponse]
// @Failure 400 {object} map[string]interface{} "Malformed cursor"
// @Failure 401 {object} map[string]interface{} "Invalid API key"
// @Security ApiKeyAuth
// @Router /public/v1/contacts [get]
func (h *PublicAPIHandler) ListContacts(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	cursor, limit := cursorParams(c)

	page, err := h.service.ListContacts(orgID, cursor, limit)
	if err != nil {
		respondError(c, err, "Failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListDeals handles GET /public/v1/deals
// @Summary List deals (public API)
// @Tags public
// @Produce json
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (1..100)" default(50)
// @Success 200 {object} service.CursorPage[service.DealResponse]
// @Failure 400 {object} map[string]interface{} "Malformed cursor"
// @Failure 401 {object} map[string]interface{} "Invalid API key"
// @Security ApiKeyAuth
// @Router /public/v1/deals [get]
func (h *PublicAPIHandler) ListDeals(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	cursor, limit := cursorParams(c)

	page, err := h.service.ListDeals(orgID, cursor, limit)
	if err != nil {
		respondError(c, err, "Failed to list deals")
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateContact handles POST /public/v1/contacts
// @Summary Create or find contact (public API)
// @Description Resolve the identifiers to an existing contact or create one. Answers 201 when created, 200 when matched.
// @Tags public
// @Accept json
// @Produce json
// @Param contact body service.ResolveContactRequest true "Known identifiers"
// @Success 200 {object} service.ResolveContactResponse "Existing contact"
// @Success 201 {object} service.ResolveContactResponse "Created contact"
// @Failure 400 {object} map[string]interface{} "No usable identifier"
// @Failure 401 {object} map[string]interface{} "Invalid API key"
// @Security ApiKeyAuth
// @Router /public/v1/contacts [post]
func (h *PublicAPIHandler) CreateContact(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.ResolveContactRequest
	if !bindJSON(c, &req) {
		return
	}

	resolved, err := h.service.CreateContact(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create contact")
		return
	}

	status := http.StatusOK
	if resolved.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resolved)
}
