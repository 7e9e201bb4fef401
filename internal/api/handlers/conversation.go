package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConversationHandler handles HTTP requests for linked channel conversations
type ConversationHandler struct {
	service service.ConversationServiceInterface
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(service service.ConversationServiceInterface) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// GetConversation handles GET /api/v1/conversations/:id
// @Summary Get conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID (UUID)"
// @Success 200 {object} service.ConversationResponse
// @Failure 404 {object} map[string]interface{} "Conversation not found"
// @Security BearerAuth
// @Router /api/v1/conversations/{id} [get]
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "conversation")
	if !ok {
		return
	}

	conversation, err := h.service.GetByID(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get conversation")
		return
	}

	c.JSON(http.StatusOK, conversation)
}

// ListContactConversations handles GET /api/v1/contacts/:id/conversations
// @Summary List conversations of a contact
// @Tags conversations
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {array} service.ConversationResponse
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Security BearerAuth
// @Router /api/v1/contacts/{id}/conversations [get]
func (h *ConversationHandler) ListContactConversations(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	contactID, ok := uuidParam(c, "id", "contact")
	if !ok {
		return
	}

	conversations, err := h.service.ListByContact(orgID, contactID)
	if err != nil {
		respondError(c, err, "Failed to list conversations")
		return
	}

	c.JSON(http.StatusOK, conversations)
}

// Reply handles POST /api/v1/conversations/:id/messages
// @Summary Reply to conversation
// @Description Send an agent reply on the channel the conversation lives on
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID (UUID)"
// @Param message body service.ReplyRequest true "Reply text"
// @Success 202 {object} map[string]interface{} "Reply sent"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Conversation not found"
// @Failure 503 {object} map[string]interface{} "Channel not configured"
// @Security BearerAuth
// @Router /api/v1/conversations/{id}/messages [post]
func (h *ConversationHandler) Reply(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "conversation")
	if !ok {
		return
	}

	var req service.ReplyRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Reply(c.Request.Context(), orgID, id, &req); err != nil {
		respondError(c, err, "Failed to send reply")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}
