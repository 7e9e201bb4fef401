package handlers

import (
	"context"
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WhatsAppHandler handles WPPConnect session management and WhatsApp messages
type WhatsAppHandler struct {
	service service.WhatsAppServiceInterface
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(service service.WhatsAppServiceInterface) *WhatsAppHandler {
	return &WhatsAppHandler{service: service}
}

// CreateSession handles POST /api/v1/whatsapp/sessions
// @Summary Create WhatsApp session
// @Description Register a WPPConnect session, generate its token and start it. Scan the QR code to connect.
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param session body service.CreateSessionRequest false "Session options"
// @Success 201 {object} service.SessionResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Session name in use"
// @Failure 503 {object} map[string]interface{} "WPPConnect not configured"
// @Security BearerAuth
// @Router /api/v1/whatsapp/sessions [post]
func (h *WhatsAppHandler) CreateSession(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.CreateSessionRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions handles GET /api/v1/whatsapp/sessions
// @Summary List WhatsApp sessions
// @Tags whatsapp
// @Produce json
// @Success 200 {array} service.SessionResponse
// @Security BearerAuth
// @Router /api/v1/whatsapp/sessions [get]
func (h *WhatsAppHandler) ListSessions(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	sessions, err := h.service.ListSessions(orgID)
	if err != nil {
		respondError(c, err, "Failed to list sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// StartSession handles POST /api/v1/whatsapp/sessions/:id/start
// @Summary Start WhatsApp session
// @Tags whatsapp
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Security BearerAuth
// @Router /api/v1/whatsapp/sessions/{id}/start [post]
func (h *WhatsAppHandler) StartSession(c *gin.Context) {
	h.sessionAction(c, h.service.StartSession, "Failed to start session")
}

// SessionStatus handles GET /api/v1/whatsapp/sessions/:id/status
// @Summary Refresh WhatsApp session status
// @Tags whatsapp
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Security BearerAuth
// @Router /api/v1/whatsapp/sessions/{id}/status [get]
func (h *WhatsAppHandler) SessionStatus(c *gin.Context) {
	h.sessionAction(c, h.service.Status, "Failed to get session status")
}

// SessionQRCode handles GET /api/v1/whatsapp/sessions/:id/qrcode
// @Summary Get WhatsApp pairing QR code
// @Description Returns the session with qr_code set to a data URI while the session waits for pairing
// @Tags whatsapp
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Security BearerAuth
// @Router /api/v1/whatsapp/sessions/{id}/qrcode [get]
func (h *WhatsAppHandler) SessionQRCode(c *gin.Context) {
	h.sessionAction(c, h.service.QRCode, "Failed to get QR code")
}

// LogoutSession handles POST /api/v1/whatsapp/sessions/:id/logout
// @Summary Log out WhatsApp session
// @Tags whatsapp
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Security BearerAuth
// @Router /api/v1/whatsapp/sessions/{id}/logout [post]
func (h *WhatsAppHandler) LogoutSession(c *gin.Context) {
	h.sessionAction(c, h.service.Logout, "Failed to log out session")
}

func (h *WhatsAppHandler) sessionAction(
	c *gin.Context,
	action func(ctx context.Context, orgID, id uuid.UUID) (*service.SessionResponse, error),
	failure string,
) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "session")
	if !ok {
		return
	}

	session, err := action(c.Request.Context(), orgID, id)
	if err != nil {
		respondError(c, err, failure)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SendMessage handles POST /api/v1/whatsapp/messages
// @Summary Send WhatsApp message
// @Description Send a text to a contact through the organization's connected session
// @Tags whatsapp
// @Accept json
// @Produce json
// @Param message body service.SendWhatsAppMessageRequest true "Message"
// @Success 201 {object} service.WhatsAppMessageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request or contact without phone"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Failure 409 {object} map[string]interface{} "No connected session"
// @Security BearerAuth
// @Router /api/v1/whatsapp/messages [post]
func (h *WhatsAppHandler) SendMessage(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.SendWhatsAppMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /api/v1/whatsapp/messages
// @Summary List WhatsApp messages of a contact
// @Tags whatsapp
// @Produce json
// @Param contact_id query string true "Contact ID (UUID)"
// @Param limit query int false "Maximum number of messages" default(50)
// @Success 200 {array} service.WhatsAppMessageResponse
// @Failure 400 {object} map[string]interface{} "Missing contact_id"
// @Security BearerAuth
// @Router /api/v1/whatsapp/messages [get]
func (h *WhatsAppHandler) ListMessages(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	contactID, ok := optionalUUIDQuery(c, "contact_id")
	if !ok {
		return
	}
	if contactID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact_id parameter is required"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}

	messages, err := h.service.ListMessages(orgID, *contactID, limit)
	if err != nil {
		respondError(c, err, "Failed to list messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}
