package handlers

import (
	"net/http"
	"strings"

	"crm-backend/internal/database/models"
	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DealHandler handles HTTP requests for deals and deal items
type DealHandler struct {
	service service.DealServiceInterface
}

// NewDealHandler creates a new deal handler
func NewDealHandler(service service.DealServiceInterface) *DealHandler {
	return &DealHandler{service: service}
}

// CreateDeal handles POST /api/v1/deals
// @Summary Create deal
// @Description Create a deal. Without a board the default board is used; without a stage the first stage.
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body service.CreateDealRequest true "Deal data"
// @Success 201 {object} service.DealResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Reference to another organization"
// @Failure 404 {object} map[string]interface{} "Board or stage not found"
// @Security BearerAuth
// @Router /api/v1/deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateDealRequest
	if !bindJSON(c, &req) {
		return
	}

	deal, err := h.service.Create(orgID, ownerID, &req)
	if err != nil {
		respondError(c, err, "Failed to create deal")
		return
	}

	c.JSON(http.StatusCreated, deal)
}

// ListDeals handles GET /api/v1/deals
// @Summary List deals
// @Tags deals
// @Produce json
// @Param board_id query string false "Board ID"
// @Param stage_id query string false "Stage ID"
// @Param contact_id query string false "Contact ID"
// @Param owner_id query string false "Owner profile ID"
// @Param status query string false "Deal status (open, won, lost)"
// @Param q query string false "Title search"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DealListResponse
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /api/v1/deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var q service.DealListQuery
	if q.BoardID, ok = optionalUUIDQuery(c, "board_id"); !ok {
		return
	}
	if q.StageID, ok = optionalUUIDQuery(c, "stage_id"); !ok {
		return
	}
	if q.ContactID, ok = optionalUUIDQuery(c, "contact_id"); !ok {
		return
	}
	if q.OwnerID, ok = optionalUUIDQuery(c, "owner_id"); !ok {
		return
	}
	q.Status = models.DealStatus(strings.ToLower(c.Query("status")))
	q.Query = strings.TrimSpace(c.Query("q"))
	q.Page, q.PageSize = pageParams(c)

	deals, err := h.service.List(orgID, q)
	if err != nil {
		respondError(c, err, "Failed to list deals")
		return
	}

	c.JSON(http.StatusOK, deals)
}

// GetDeal handles GET /api/v1/deals/:id
// @Summary Get deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Success 200 {object} service.DealResponse
// @Failure 404 {object} map[string]interface{} "Deal not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}

	deal, err := h.service.GetByID(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get deal")
		return
	}

	c.JSON(http.StatusOK, deal)
}

// UpdateDeal handles PUT /api/v1/deals/:id
// @Summary Update deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param deal body service.UpdateDealRequest true "Updated deal data"
// @Success 200 {object} service.DealResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Deal not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id} [put]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}

	var req service.UpdateDealRequest
	if !bindJSON(c, &req) {
		return
	}

	deal, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update deal")
		return
	}

	c.JSON(http.StatusOK, deal)
}

// MoveDeal handles PATCH /api/v1/deals/:id/move
// @Summary Move deal
// @Description Move a deal to another stage of its board, optionally at a position
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param move body service.MoveDealRequest true "Target stage"
// @Success 200 {object} service.DealResponse
// @Failure 400 {object} map[string]interface{} "Stage belongs to another board"
// @Failure 404 {object} map[string]interface{} "Deal or stage not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id}/move [patch]
func (h *DealHandler) MoveDeal(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}

	var req service.MoveDealRequest
	if !bindJSON(c, &req) {
		return
	}

	deal, err := h.service.Move(c.Request.Context(), orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to move deal")
		return
	}

	c.JSON(http.StatusOK, deal)
}

// UpdateDealStatus handles PATCH /api/v1/deals/:id/status
// @Summary Change deal status
// @Description Won and lost deals get a closing date; reopening clears it
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param status body service.UpdateDealStatusRequest true "New status"
// @Success 200 {object} service.DealResponse
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Deal not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id}/status [patch]
func (h *DealHandler) UpdateDealStatus(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}

	var req service.UpdateDealStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	deal, err := h.service.UpdateStatus(orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update deal status")
		return
	}

	c.JSON(http.StatusOK, deal)
}

// DeleteDeal handles DELETE /api/v1/deals/:id
// @Summary Delete deal
// @Tags deals
// @Param id path string true "Deal ID (UUID)"
// @Success 204 "Successfully deleted deal"
// @Failure 404 {object} map[string]interface{} "Deal not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err, "Failed to delete deal")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddItem handles POST /api/v1/deals/:id/items
// @Summary Add deal item
// @Description Add a line item; the deal value becomes the sum of item totals
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param item body service.DealItemRequest true "Item data"
// @Success 201 {object} service.DealResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Deal or product not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id}/items [post]
func (h *DealHandler) AddItem(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	dealID, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}

	var req service.DealItemRequest
	if !bindJSON(c, &req) {
		return
	}

	deal, err := h.service.AddItem(orgID, dealID, &req)
	if err != nil {
		respondError(c, err, "Failed to add deal item")
		return
	}

	c.JSON(http.StatusCreated, deal)
}

// UpdateItem handles PUT /api/v1/deals/:id/items/:item_id
// @Summary Update deal item
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param item_id path string true "Item ID (UUID)"
// @Param item body service.UpdateDealItemRequest true "Updated item data"
// @Success 200 {object} service.DealResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Deal or item not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id}/items/{item_id} [put]
func (h *DealHandler) UpdateItem(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	dealID, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "item_id", "item")
	if !ok {
		return
	}

	var req service.UpdateDealItemRequest
	if !bindJSON(c, &req) {
		return
	}

	deal, err := h.service.UpdateItem(orgID, dealID, itemID, &req)
	if err != nil {
		respondError(c, err, "Failed to update deal item")
		return
	}

	c.JSON(http.StatusOK, deal)
}

// RemoveItem handles DELETE /api/v1/deals/:id/items/:item_id
// @Summary Remove deal item
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param item_id path string true "Item ID (UUID)"
// @Success 200 {object} service.DealResponse
// @Failure 404 {object} map[string]interface{} "Deal or item not found"
// @Security BearerAuth
// @Router /api/v1/deals/{id}/items/{item_id} [delete]
func (h *DealHandler) RemoveItem(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	dealID, ok := uuidParam(c, "id", "deal")
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "item_id", "item")
	if !ok {
		return
	}

	deal, err := h.service.RemoveItem(orgID, dealID, itemID)
	if err != nil {
		respondError(c, err, "Failed to remove deal item")
		return
	}

	c.JSON(http.StatusOK, deal)
}
