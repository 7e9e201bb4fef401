package handlers

import (
	"io"
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody caps the payload read from messaging webhook senders
const maxWebhookBody = 1 << 20

// WebhookHandler receives deliveries from Chatwoot, WPPConnect, Instagram and N8N.
// Webhook routes authenticate with signatures or shared secrets instead of bearer tokens.
type WebhookHandler struct {
	chatwoot  service.ChatwootServiceInterface
	whatsapp  service.WhatsAppServiceInterface
	instagram service.InstagramServiceInterface
	n8n       service.N8NCallbackServiceInterface

	// N8N callbacks carry every chunk of a processed document
	maxCallbackBody int64
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(
	chatwoot service.ChatwootServiceInterface,
	whatsapp service.WhatsAppServiceInterface,
	instagram service.InstagramServiceInterface,
	n8n service.N8NCallbackServiceInterface,
	maxCallbackBody int64,
) *WebhookHandler {
	if maxCallbackBody < maxWebhookBody {
		maxCallbackBody = maxWebhookBody
	}
	return &WebhookHandler{
		chatwoot:        chatwoot,
		whatsapp:        whatsapp,
		instagram:       instagram,
		n8n:             n8n,
		maxCallbackBody: maxCallbackBody,
	}
}

// readBody reads the raw request body, which signatures are computed over
func readBody(c *gin.Context, limit int64) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "details": err.Error()})
		return nil, false
	}
	return body, true
}

// Chatwoot handles POST /api/webhooks/chatwoot/:org_id
// @Summary Chatwoot webhook
// @Description Receive a Chatwoot event. X-Chatwoot-Signature is sha256=HMAC(secret, "<timestamp>.<body>").
// @Tags webhooks
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID (UUID)"
// @Param X-Chatwoot-Signature header string true "Body signature"
// @Param X-Chatwoot-Timestamp header string true "Unix timestamp of the delivery"
// @Param X-Chatwoot-Delivery header string false "Delivery ID"
// @Success 200 {object} map[string]interface{} "Outcome: processed, duplicate or ignored"
// @Failure 401 {object} map[string]interface{} "Invalid signature"
// @Router /api/webhooks/chatwoot/{org_id} [post]
func (h *WebhookHandler) Chatwoot(c *gin.Context) {
	orgID, ok := uuidParam(c, "org_id", "organization")
	if !ok {
		return
	}
	body, ok := readBody(c, maxWebhookBody)
	if !ok {
		return
	}

	outcome, err := h.chatwoot.HandleWebhook(c.Request.Context(), orgID, &service.ChatwootWebhook{
		Signature: c.GetHeader(service.ChatwootSignatureHeader),
		Timestamp: c.GetHeader(service.ChatwootTimestampHeader),
		Delivery:  c.GetHeader(service.ChatwootDeliveryHeader),
		Body:      body,
	})
	if err != nil {
		respondError(c, err, "Failed to process chatwoot webhook")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": outcome})
}

// WPPConnect handles POST /api/webhooks/wppconnect/:session
// @Summary WPPConnect webhook
// @Description Receive a WPPConnect event for a session. The session's webhook secret is sent in X-Webhook-Secret or the secret query parameter.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param session path string true "Session name"
// @Param X-Webhook-Secret header string false "Session webhook secret"
// @Param secret query string false "Session webhook secret"
// @Success 200 {object} map[string]interface{} "Outcome: processed, duplicate or ignored"
// @Failure 401 {object} map[string]interface{} "Invalid secret"
// @Failure 404 {object} map[string]interface{} "Unknown session"
// @Router /api/webhooks/wppconnect/{session} [post]
func (h *WebhookHandler) WPPConnect(c *gin.Context) {
	secret := c.GetHeader(service.WPPSecretHeader)
	if secret == "" {
		secret = c.Query("secret")
	}
	body, ok := readBody(c, maxWebhookBody)
	if !ok {
		return
	}

	outcome, err := h.whatsapp.HandleWebhook(c.Request.Context(), c.Param("session"), secret, body)
	if err != nil {
		respondError(c, err, "Failed to process wppconnect webhook")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": outcome})
}

// InstagramVerify handles GET /api/webhooks/instagram
// @Summary Instagram webhook verification
// @Description Echo hub.challenge when hub.verify_token matches the configured token
// @Tags webhooks
// @Produce plain
// @Param hub.mode query string true "Must be subscribe"
// @Param hub.verify_token query string true "Verify token"
// @Param hub.challenge query string true "Challenge to echo"
// @Success 200 {string} string "Challenge"
// @Failure 403 {object} map[string]interface{} "Verification failed"
// @Router /api/webhooks/instagram [get]
func (h *WebhookHandler) InstagramVerify(c *gin.Context) {
	challenge, err := h.instagram.VerifySubscription(
		c.Query("hub.mode"),
		c.Query("hub.verify_token"),
		c.Query("hub.challenge"),
	)
	if err != nil {
		respondError(c, err, "Failed to verify subscription")
		return
	}

	c.String(http.StatusOK, challenge)
}

// Instagram handles POST /api/webhooks/instagram
// @Summary Instagram webhook
// @Description Receive Instagram messaging events signed with X-Hub-Signature-256
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Hub-Signature-256 header string true "sha256=HMAC(app secret, body)"
// @Success 200 {object} map[string]interface{} "Outcome: processed, duplicate or ignored"
// @Failure 401 {object} map[string]interface{} "Invalid signature"
// @Router /api/webhooks/instagram [post]
func (h *WebhookHandler) Instagram(c *gin.Context) {
	body, ok := readBody(c, maxWebhookBody)
	if !ok {
		return
	}

	outcome, err := h.instagram.HandleWebhook(c.Request.Context(), c.GetHeader(service.InstagramSignatureHeader), body)
	if err != nil {
		respondError(c, err, "Failed to process instagram webhook")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": outcome})
}

// N8N handles POST /api/webhooks/n8n/:event
// @Summary N8N callback
// @Description Receive a workflow callback such as document.processed
// @Tags webhooks
// @Accept json
// @Produce json
// @Param event path string true "Event name"
// @Param X-N8N-Secret header string true "Shared secret"
// @Success 200 {object} map[string]interface{} "Callback accepted"
// @Failure 400 {object} map[string]interface{} "Unknown event or invalid body"
// @Failure 401 {object} map[string]interface{} "Invalid secret"
// @Router /api/webhooks/n8n/{event} [post]
func (h *WebhookHandler) N8N(c *gin.Context) {
	if !h.n8n.VerifySecret(c.GetHeader(service.N8NSecretHeader)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid callback secret"})
		return
	}
	body, ok := readBody(c, h.maxCallbackBody)
	if !ok {
		return
	}

	if err := h.n8n.HandleEvent(c.Request.Context(), c.Param("event"), body); err != nil {
		respondError(c, err, "Failed to process n8n callback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": service.WebhookProcessed})
}
