package handlers

import (
	"net/http"
	"strings"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles HTTP requests for contacts and their identity keys
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// CreateContact handles POST /api/v1/contacts
// @Summary Create contact
// @Description Create a contact. Phone and e-mail are canonicalized and registered as identity keys.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.CreateContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Identity already belongs to another contact"
// @Security BearerAuth
// @Router /api/v1/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Create(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// SearchContacts handles GET /api/v1/contacts
// @Summary Search contacts
// @Description List contacts, optionally filtered by name, e-mail or phone
// @Tags contacts
// @Produce json
// @Param q query string false "Search term"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ContactListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/contacts [get]
func (h *ContactHandler) SearchContacts(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	contacts, err := h.service.Search(orgID, strings.TrimSpace(c.Query("q")), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to search contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact handles GET /api/v1/contacts/:id
// @Summary Get contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /api/v1/contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "contact")
	if !ok {
		return
	}

	contact, err := h.service.GetByID(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact handles PUT /api/v1/contacts/:id
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param contact body service.UpdateContactRequest true "Updated contact data"
// @Success 200 {object} service.ContactResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 409 {object} map[string]interface{} "Identity already belongs to another contact"
// @Security BearerAuth
// @Router /api/v1/contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "contact")
	if !ok {
		return
	}

	var req service.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Update(c.Request.Context(), orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /api/v1/contacts/:id
// @Summary Delete contact
// @Tags contacts
// @Param id path string true "Contact ID (UUID)"
// @Success 204 "Successfully deleted contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /api/v1/contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "contact")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err, "Failed to delete contact")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListIdentities handles GET /api/v1/contacts/:id/identities
// @Summary List contact identities
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {array} service.IdentityResponse
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /api/v1/contacts/{id}/identities [get]
func (h *ContactHandler) ListIdentities(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "contact")
	if !ok {
		return
	}

	identities, err := h.service.ListIdentities(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to list identities")
		return
	}

	c.JSON(http.StatusOK, identities)
}

// AddIdentity handles POST /api/v1/contacts/:id/identities
// @Summary Attach identity key
// @Description Attach an identity key such as "whatsapp:+5511999998888" to a contact. The key is canonicalized first.
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param identity body service.AddIdentityRequest true "Identity key"
// @Success 201 {object} service.IdentityResponse
// @Failure 400 {object} map[string]interface{} "Malformed identity key"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 409 {object} map[string]interface{} "Identity already belongs to another contact"
// @Security BearerAuth
// @Router /api/v1/contacts/{id}/identities [post]
func (h *ContactHandler) AddIdentity(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "contact")
	if !ok {
		return
	}

	var req service.AddIdentityRequest
	if !bindJSON(c, &req) {
		return
	}

	identity, err := h.service.AddIdentity(c.Request.Context(), orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to add identity")
		return
	}

	c.JSON(http.StatusCreated, identity)
}

// RemoveIdentity handles DELETE /api/v1/contacts/:id/identities/:identity_id
// @Summary Detach identity key
// @Tags contacts
// @Param id path string true "Contact ID (UUID)"
// @Param identity_id path string true "Identity ID (UUID)"
// @Success 204 "Successfully removed identity"
// @Failure 404 {object} map[string]interface{} "Identity not found"
// @Security BearerAuth
// @Router /api/v1/contacts/{id}/identities/{identity_id} [delete]
func (h *ContactHandler) RemoveIdentity(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	contactID, ok := uuidParam(c, "id", "contact")
	if !ok {
		return
	}
	identityID, ok := uuidParam(c, "identity_id", "identity")
	if !ok {
		return
	}

	if err := h.service.RemoveIdentity(orgID, contactID, identityID); err != nil {
		respondError(c, err, "Failed to remove identity")
		return
	}

	c.Status(http.StatusNoContent)
}

// MergeContacts handles POST /api/v1/contacts/merge
// @Summary Merge contacts
// @Description Move identities, conversations, deals and messages of drop_id to keep_id and delete drop_id. Requires the admin role.
// @Tags contacts
// @Accept json
// @Produce json
// @Param merge body service.MergeContactsRequest true "Contacts to merge"
// @Success 200 {object} service.ContactResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /api/v1/contacts/merge [post]
func (h *ContactHandler) MergeContacts(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.MergeContactsRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Merge(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to merge contacts")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// ResolveContact handles POST /api/v1/contacts/resolve
// @Summary Resolve contact
// @Description Find the contact matching the given identifiers, creating it when none matches
// @Tags contacts
// @Accept json
// @Produce json
// @Param identifiers body service.ResolveContactRequest true "Known identifiers"
// @Success 200 {object} service.ResolveContactResponse
// @Failure 400 {object} map[string]interface{} "No usable identifier"
// @Security BearerAuth
// @Router /api/v1/contacts/resolve [post]
func (h *ContactHandler) ResolveContact(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.ResolveContactRequest
	if !bindJSON(c, &req) {
		return
	}

	resolved, err := h.service.Resolve(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to resolve contact")
		return
	}

	c.JSON(http.StatusOK, resolved)
}
