package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/messaging"
	"crm-backend/internal/metrics"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WhatsApp session states stored on whatsapp_sessions
const (
	SessionStatusClosed       = "CLOSED"
	SessionStatusInitializing = "INITIALIZING"
	SessionStatusQRCode       = "QRCODE"
	SessionStatusConnected    = "CONNECTED"
	SessionStatusDisconnected = "DISCONNECTED"
)

// WPPConnect webhook events
const (
	WPPEventMessage     = "onmessage"
	WPPEventStatusFind  = "status-find"
	WPPEventStateChange = "onstatechange"
	WPPEventQRCode      = "qrcode"
)

// WPPSecretHeader carries the per-session webhook secret
const WPPSecretHeader = "X-Webhook-Secret"

var sessionNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{2,62}$`)

// WhatsAppService manages WPPConnect sessions, receives their webhooks and sends messages
type WhatsAppService struct {
	repo          repository.WhatsAppRepositoryInterface
	contacts      repository.ContactRepositoryInterface
	client        *WPPConnectClient
	conversations ConversationServiceInterface
	guard         deliveryGuard
	validator     *validator.Validate
	publicURL     string
	now           func() time.Time
}

// WhatsAppDependencies groups what a WhatsAppService needs
type WhatsAppDependencies struct {
	Repo          repository.WhatsAppRepositoryInterface
	Contacts      repository.ContactRepositoryInterface
	Client        *WPPConnectClient
	Conversations ConversationServiceInterface
	Dedup         WebhookDeduplicator
	Metrics       *metrics.Registry
}

// NewWhatsAppService creates a new WhatsApp service
func NewWhatsAppService(cfg *config.Config, deps WhatsAppDependencies, validator *validator.Validate) *WhatsAppService {
	return &WhatsAppService{
		repo:          deps.Repo,
		contacts:      deps.Contacts,
		client:        deps.Client,
		conversations: deps.Conversations,
		guard:         deliveryGuard{source: "wppconnect", dedup: deps.Dedup, metrics: deps.Metrics},
		validator:     validator,
		publicURL:     strings.TrimRight(cfg.PublicURL, "/"),
		now:           time.Now,
	}
}

// CreateSessionRequest represents the request to create a WhatsApp session
type CreateSessionRequest struct {
	SessionName string `json:"session_name,omitempty" validate:"omitempty,max=63" example:"sales-team"`
}

// SendWhatsAppMessageRequest represents an outbound WhatsApp message
type SendWhatsAppMessageRequest struct {
	ContactID uuid.UUID `json:"contact_id" validate:"required"`
	Text      string    `json:"text" validate:"required,min=1,max=4096"`
}

// SessionResponse represents a WhatsApp session
type SessionResponse struct {
	ID          uuid.UUID `json:"id"`
	SessionName string    `json:"session_name"`
	Status      string    `json:"status"`
	Phone       string    `json:"phone,omitempty"`
	QRCode      string    `json:"qr_code,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// WhatsAppMessageResponse represents a stored WhatsApp message
type WhatsAppMessageResponse struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	ContactID  uuid.UUID `json:"contact_id"`
	ExternalID string    `json:"external_id"`
	Direction  string    `json:"direction"`
	Body       string    `json:"body"`
	MediaType  string    `json:"media_type,omitempty"`
	SentAt     string    `json:"sent_at"`
}

// CreateSession registers a session, generates its token and starts it
func (s *WhatsAppService) CreateSession(ctx context.Context, orgID uuid.UUID, req *CreateSessionRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !s.client.Configured() {
		return nil, apperrors.ErrWPPConnectNotConfigured
	}

	name := strings.ToLower(strings.TrimSpace(req.SessionName))
	if name == "" {
		name = "crm-" + strings.ReplaceAll(orgID.String(), "-", "")[:12]
	}
	if !sessionNamePattern.MatchString(name) {
		return nil, apperrors.NewValidationError("session_name", "must be 3-63 lowercase letters, digits, '-' or '_'")
	}

	secret, err := randomSecret()
	if err != nil {
		return nil, err
	}
	session := &models.WhatsAppSession{
		SessionName:   name,
		Status:        SessionStatusClosed,
		WebhookSecret: secret,
	}
	session.OrganizationID = orgID
	if err := s.repo.CreateSession(session); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrSessionExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.start(ctx, session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// StartSession (re)starts an existing session
func (s *WhatsAppService) StartSession(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.getSession(orgID, id)
	if err != nil {
		return nil, err
	}
	if err := s.start(ctx, session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *WhatsAppService) start(ctx context.Context, session *models.WhatsAppSession) error {
	if session.Token == "" {
		token, err := s.client.GenerateToken(ctx, session.SessionName)
		if err != nil {
			return err
		}
		session.Token = token
	}

	state, err := s.client.StartSession(ctx, session.SessionName, session.Token, s.webhookURL(session))
	if err != nil {
		return err
	}
	session.Status = normalizeSessionStatus(state.Status, SessionStatusInitializing)
	if state.QRCode != "" {
		session.QRCode = state.QRCode
	}
	if err := s.repo.UpdateSession(session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"session": session.SessionName,
		"status":  session.Status,
	}).Info("WhatsApp session started")
	return nil
}

// webhookURL is where WPPConnect posts events. The secret travels as a query parameter because
// WPPConnect cannot add headers to its webhook calls.
func (s *WhatsAppService) webhookURL(session *models.WhatsAppSession) string {
	return fmt.Sprintf("%s/api/webhooks/wppconnect/%s?secret=%s",
		s.publicURL, url.PathEscape(session.SessionName), url.QueryEscape(session.WebhookSecret))
}

// ListSessions lists the sessions of an organization
func (s *WhatsAppService) ListSessions(orgID uuid.UUID) ([]SessionResponse, error) {
	sessions, err := s.repo.ListSessions(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *toSessionResponse(&sessions[i])
	}
	return responses, nil
}

// Status refreshes a session's state from WPPConnect
func (s *WhatsAppService) Status(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.getSession(orgID, id)
	if err != nil {
		return nil, err
	}
	state, err := s.client.Status(ctx, session.SessionName, session.Token)
	if err != nil {
		return nil, err
	}
	session.Status = normalizeSessionStatus(state.Status, session.Status)
	if session.Status == SessionStatusConnected {
		session.QRCode = ""
	}
	if err := s.repo.UpdateSession(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return toSessionResponse(session), nil
}

// QRCode fetches the pairing QR code of a session
func (s *WhatsAppService) QRCode(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.getSession(orgID, id)
	if err != nil {
		return nil, err
	}
	state, err := s.client.QRCode(ctx, session.SessionName, session.Token)
	if err != nil {
		return nil, err
	}
	session.Status = normalizeSessionStatus(state.Status, session.Status)
	if state.QRCode != "" {
		session.QRCode = state.QRCode
	}
	if err := s.repo.UpdateSession(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return toSessionResponse(session), nil
}

// Logout disconnects a session from WhatsApp
func (s *WhatsAppService) Logout(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error) {
	session, err := s.getSession(orgID, id)
	if err != nil {
		return nil, err
	}
	if err := s.client.Logout(ctx, session.SessionName, session.Token); err != nil {
		return nil, err
	}
	session.Status = SessionStatusClosed
	session.QRCode = ""
	if err := s.repo.UpdateSession(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return toSessionResponse(session), nil
}

// wppWebhookPayload is the union of the WPPConnect events the CRM consumes
type wppWebhookPayload struct {
	Event      string `json:"event"`
	Session    string `json:"session"`
	ID         string `json:"id"`
	Body       string `json:"body"`
	Type       string `json:"type"`
	From       string `json:"from"`
	ChatID     string `json:"chatId"`
	FromMe     bool   `json:"fromMe"`
	IsGroupMsg bool   `json:"isGroupMsg"`
	Timestamp  int64  `json:"timestamp"`
	Mimetype   string `json:"mimetype"`
	NotifyName string `json:"notifyName"`
	Sender     struct {
		ID       string `json:"id"`
		Pushname string `json:"pushname"`
		Name     string `json:"name"`
		Profile  struct {
			EURL string `json:"eurl"`
		} `json:"profilePicThumbObj"`
	} `json:"sender"`
	Status string `json:"status"`
	State  string `json:"state"`
	QRCode string `json:"qrcode"`
}

// HandleWebhook authenticates and processes a WPPConnect event for a session
func (s *WhatsAppService) HandleWebhook(ctx context.Context, sessionName, secret string, body []byte) (string, error) {
	session, err := s.repo.GetSessionByName(sessionName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.guard.observe(WebhookRejected)
			return "", apperrors.ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	if !secretsEqual(session.WebhookSecret, secret) {
		s.guard.observe(WebhookRejected)
		return "", apperrors.ErrInvalidSignature
	}

	var p wppWebhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		s.guard.observe(WebhookRejected)
		return "", apperrors.NewValidationError("body", "invalid JSON: "+err.Error())
	}

	var outcome string
	switch p.Event {
	case WPPEventMessage:
		outcome, err = s.handleMessage(ctx, session, &p)
	case WPPEventStatusFind:
		outcome, err = s.updateStatus(session, p.Status)
	case WPPEventStateChange:
		outcome, err = s.updateStatus(session, p.State)
	case WPPEventQRCode:
		session.QRCode = p.QRCode
		session.Status = SessionStatusQRCode
		outcome, err = WebhookProcessed, s.repo.UpdateSession(session)
	default:
		outcome = WebhookIgnored
	}
	if err != nil {
		s.guard.observe(WebhookFailed)
		return "", err
	}
	s.guard.observe(outcome)
	return outcome, nil
}

func (s *WhatsAppService) updateStatus(session *models.WhatsAppSession, raw string) (string, error) {
	status := normalizeSessionStatus(raw, "")
	if status == "" {
		return WebhookIgnored, nil
	}
	session.Status = status
	if status == SessionStatusConnected {
		session.QRCode = ""
	}
	if err := s.repo.UpdateSession(session); err != nil {
		return "", fmt.Errorf("failed to update session: %w", err)
	}
	return WebhookProcessed, nil
}

func (s *WhatsAppService) handleMessage(ctx context.Context, session *models.WhatsAppSession, p *wppWebhookPayload) (string, error) {
	if p.FromMe || p.IsGroupMsg || p.ID == "" {
		return WebhookIgnored, nil
	}
	if _, err := messaging.ParseWhatsAppJID(p.From); err != nil {
		// groups, broadcasts and newsletters
		return WebhookIgnored, nil
	}

	deliveryID := session.SessionName + ":" + p.ID
	if !s.guard.claim(ctx, deliveryID) {
		return WebhookDuplicate, nil
	}

	outcome, err := s.recordMessage(ctx, session, p)
	if err != nil {
		s.guard.release(ctx, deliveryID)
	}
	return outcome, err
}

func (s *WhatsAppService) recordMessage(ctx context.Context, session *models.WhatsAppSession, p *wppWebhookPayload) (string, error) {
	sentAt := s.now()
	if p.Timestamp > 0 {
		sentAt = time.Unix(p.Timestamp, 0)
	}
	name := p.Sender.Pushname
	if name == "" {
		name = p.NotifyName
	}
	chatID := p.ChatID
	if chatID == "" {
		chatID = p.From
	}

	res, err := s.conversations.RecordInbound(ctx, session.OrganizationID, InboundConversation{
		Channel:                models.ConversationChannelWhatsApp,
		ExternalConversationID: chatID,
		InboxID:                session.SessionName,
		At:                     sentAt,
		Identity: messaging.IdentityInput{
			Channel:    messaging.ChannelWhatsApp,
			ExternalID: p.From,
			Name:       name,
			AvatarURL:  p.Sender.Profile.EURL,
		},
	})
	if err != nil {
		if errors.Is(err, messaging.ErrNotAContact) {
			return WebhookIgnored, nil
		}
		return "", err
	}

	msg := &models.WhatsAppMessage{
		OrganizationID: session.OrganizationID,
		SessionID:      session.ID,
		ContactID:      res.Contact.ID,
		ExternalID:     p.ID,
		Direction:      models.MessageDirectionInbound,
		Body:           p.Body,
		SentAt:         sentAt,
	}
	if p.Type != "" && p.Type != "chat" {
		msg.MediaType = p.Type
		if p.Mimetype != "" {
			msg.MediaType = p.Mimetype
		}
	}
	created, err := s.repo.CreateMessageIfAbsent(msg)
	if err != nil {
		return "", fmt.Errorf("failed to store message: %w", err)
	}
	if !created {
		return WebhookDuplicate, nil
	}

	logger.ForOrganization(ctx, session.OrganizationID).WithFields(map[string]interface{}{
		"session":    session.SessionName,
		"contact_id": res.Contact.ID,
		"matched_by": res.MatchedBy,
		"created":    res.Created,
	}).Info("WhatsApp message received")
	return WebhookProcessed, nil
}

// SendMessage sends a text to a contact through the organization's connected session
func (s *WhatsAppService) SendMessage(ctx context.Context, orgID uuid.UUID, req *SendWhatsAppMessageRequest) (*WhatsAppMessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	contact, err := s.contacts.GetByID(orgID, req.ContactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	msg, err := s.sendToContact(ctx, orgID, contact, req.Text)
	if err != nil {
		return nil, err
	}
	return toWhatsAppMessageResponse(msg), nil
}

// SendReply implements ChannelSender for WhatsApp conversations
func (s *WhatsAppService) SendReply(ctx context.Context, org *models.Organization, _ *models.ConversationLink, contact *models.Contact, text string) error {
	_, err := s.sendToContact(ctx, org.ID, contact, text)
	return err
}

func (s *WhatsAppService) sendToContact(ctx context.Context, orgID uuid.UUID, contact *models.Contact, text string) (*models.WhatsAppMessage, error) {
	if contact.Phone == "" {
		return nil, apperrors.NewValidationError("contact_id", "contact has no phone number")
	}
	session, err := s.repo.GetConnectedSession(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoConnectedSession
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sent, err := s.client.SendMessage(ctx, session.SessionName, session.Token, contact.Phone, text)
	if err != nil {
		return nil, err
	}
	externalID := sent.ID
	if externalID == "" {
		externalID = "local-" + uuid.NewString()
	}

	msg := &models.WhatsAppMessage{
		OrganizationID: orgID,
		SessionID:      session.ID,
		ContactID:      contact.ID,
		ExternalID:     externalID,
		Direction:      models.MessageDirectionOutbound,
		Body:           text,
		SentAt:         s.now(),
	}
	if _, err := s.repo.CreateMessageIfAbsent(msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

// ListMessages lists the latest messages exchanged with a contact
func (s *WhatsAppService) ListMessages(orgID, contactID uuid.UUID, limit int) ([]WhatsAppMessageResponse, error) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultPublicLimit
	}
	messages, err := s.repo.ListMessages(orgID, contactID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	responses := make([]WhatsAppMessageResponse, len(messages))
	for i := range messages {
		responses[i] = *toWhatsAppMessageResponse(&messages[i])
	}
	return responses, nil
}

func (s *WhatsAppService) getSession(orgID, id uuid.UUID) (*models.WhatsAppSession, error) {
	session, err := s.repo.GetSession(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// normalizeSessionStatus maps WPPConnect statuses and states onto the stored session states.
// Unknown values yield fallback.
func normalizeSessionStatus(raw, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "connected", "inchat", "islogged", "qrreadsuccess", "chatsavailable", "successchat":
		return SessionStatusConnected
	case "qrcode", "qrreaderror", "notlogged":
		return SessionStatusQRCode
	case "initializing", "opening", "pairing", "browsersessionconfigured":
		return SessionStatusInitializing
	case "closed", "autoclosecalled", "browserclose", "deletetoken":
		return SessionStatusClosed
	case "disconnected", "desconnectedmobile", "unpaired", "unpaired_idle", "conflict", "unlaunched":
		return SessionStatusDisconnected
	}
	return fallback
}

func randomSecret() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func toSessionResponse(s *models.WhatsAppSession) *SessionResponse {
	return &SessionResponse{
		ID:          s.ID,
		SessionName: s.SessionName,
		Status:      s.Status,
		Phone:       s.Phone,
		QRCode:      s.QRCode,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func toWhatsAppMessageResponse(m *models.WhatsAppMessage) *WhatsAppMessageResponse {
	return &WhatsAppMessageResponse{
		ID:         m.ID,
		SessionID:  m.SessionID,
		ContactID:  m.ContactID,
		ExternalID: m.ExternalID,
		Direction:  string(m.Direction),
		Body:       m.Body,
		MediaType:  m.MediaType,
		SentAt:     formatTime(m.SentAt),
	}
}
