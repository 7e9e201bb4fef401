package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"crm-backend/internal/config"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/messaging"
	"crm-backend/internal/metrics"

	"github.com/google/uuid"
)

// Chatwoot webhook events handled by the CRM
const (
	ChatwootEventMessageCreated      = "message_created"
	ChatwootEventConversationCreated = "conversation_created"
	ChatwootEventConversationUpdated = "conversation_updated"
)

// Chatwoot webhook headers
const (
	ChatwootSignatureHeader = "X-Chatwoot-Signature"
	ChatwootTimestampHeader = "X-Chatwoot-Timestamp"
	ChatwootDeliveryHeader  = "X-Chatwoot-Delivery"
)

// ChatwootMaxSkew bounds the age of a signed webhook
const ChatwootMaxSkew = 5 * time.Minute

// ChatwootClient talks to the Chatwoot application API
type ChatwootClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewChatwootClient creates a new Chatwoot client
func NewChatwootClient(cfg *config.Config) *ChatwootClient {
	return &ChatwootClient{
		baseURL:    strings.TrimRight(cfg.ChatwootBaseURL, "/"),
		token:      cfg.ChatwootAPIToken,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether base URL and token are set
func (c *ChatwootClient) Configured() bool {
	return c != nil && c.baseURL != "" && c.token != ""
}

// ChatwootSender is the contact behind a Chatwoot conversation
type ChatwootSender struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Identifier  string `json:"identifier"`
	Thumbnail   string `json:"thumbnail"`
	Type        string `json:"type"`
}

// ChatwootConversation is the subset of a Chatwoot conversation the CRM uses
type ChatwootConversation struct {
	ID      int64    `json:"id"`
	InboxID int64    `json:"inbox_id"`
	Status  string   `json:"status"`
	Labels  []string `json:"labels"`
	Channel string   `json:"channel"`
	Meta    struct {
		Sender ChatwootSender `json:"sender"`
	} `json:"meta"`
	ContactInbox struct {
		SourceID string `json:"source_id"`
	} `json:"contact_inbox"`
}

// ChatwootMessage is a message returned by the Chatwoot API
type ChatwootMessage struct {
	ID             int64  `json:"id"`
	Content        string `json:"content"`
	MessageType    string `json:"message_type"`
	ConversationID int64  `json:"conversation_id"`
}

// SendMessage posts an outgoing message to a conversation
func (c *ChatwootClient) SendMessage(ctx context.Context, accountID, conversationID int64, content string) (*ChatwootMessage, error) {
	body := map[string]interface{}{
		"content":      content,
		"message_type": "outgoing",
		"private":      false,
	}
	var msg ChatwootMessage
	path := fmt.Sprintf("/api/v1/accounts/%d/conversations/%d/messages", accountID, conversationID)
	if err := c.do(ctx, http.MethodPost, path, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AddLabels sets labels on a conversation
func (c *ChatwootClient) AddLabels(ctx context.Context, accountID, conversationID int64, labels []string) error {
	path := fmt.Sprintf("/api/v1/accounts/%d/conversations/%d/labels", accountID, conversationID)
	return c.do(ctx, http.MethodPost, path, map[string]interface{}{"labels": labels}, nil)
}

// GetConversation fetches a conversation
func (c *ChatwootClient) GetConversation(ctx context.Context, accountID, conversationID int64) (*ChatwootConversation, error) {
	var conv ChatwootConversation
	path := fmt.Sprintf("/api/v1/accounts/%d/conversations/%d", accountID, conversationID)
	if err := c.do(ctx, http.MethodGet, path, nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (c *ChatwootClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	if !c.Configured() {
		return apperrors.ErrChatwootNotConfigured
	}

	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode chatwoot request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("api_access_token", c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chatwoot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrConversationNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("chatwoot request failed: status=%d body=%s", resp.StatusCode, string(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode chatwoot response: %w", err)
	}
	return nil
}

// chatwootPayload covers the message and conversation webhook bodies. Message events nest the
// conversation; conversation events carry it at the top level.
type chatwootPayload struct {
	Event        string                `json:"event"`
	ID           int64                 `json:"id"`
	Content      string                `json:"content"`
	MessageType  string                `json:"message_type"`
	Private      bool                  `json:"private"`
	Sender       *ChatwootSender       `json:"sender"`
	Conversation *ChatwootConversation `json:"conversation"`
	Account      struct {
		ID int64 `json:"id"`
	} `json:"account"`

	InboxID int64    `json:"inbox_id"`
	Labels  []string `json:"labels"`
	Channel string   `json:"channel"`
	Meta    struct {
		Sender ChatwootSender `json:"sender"`
	} `json:"meta"`
	ContactInbox struct {
		SourceID string `json:"source_id"`
	} `json:"contact_inbox"`
}

// conversation normalizes both payload shapes
func (p *chatwootPayload) conversation() ChatwootConversation {
	if p.Conversation != nil {
		conv := *p.Conversation
		if p.Sender != nil && p.Sender.ID != 0 && conv.Meta.Sender.ID == 0 {
			conv.Meta.Sender = *p.Sender
		}
		return conv
	}
	conv := ChatwootConversation{
		ID:      p.ID,
		InboxID: p.InboxID,
		Labels:  p.Labels,
		Channel: p.Channel,
	}
	conv.Meta.Sender = p.Meta.Sender
	conv.ContactInbox.SourceID = p.ContactInbox.SourceID
	return conv
}

// ChatwootWebhook is a signed webhook delivery
type ChatwootWebhook struct {
	Signature string
	Timestamp string
	Delivery  string
	Body      []byte
}

// ChatwootService receives Chatwoot webhooks and replies through the Chatwoot API
type ChatwootService struct {
	client        *ChatwootClient
	conversations ConversationServiceInterface
	guard         deliveryGuard
	secret        string
	now           func() time.Time
}

// NewChatwootService creates a new Chatwoot service
func NewChatwootService(cfg *config.Config, client *ChatwootClient, conversations ConversationServiceInterface, dedup WebhookDeduplicator, registry *metrics.Registry) *ChatwootService {
	return &ChatwootService{
		client:        client,
		conversations: conversations,
		guard:         deliveryGuard{source: "chatwoot", dedup: dedup, metrics: registry},
		secret:        cfg.ChatwootWebhookSecret,
		now:           time.Now,
	}
}

// VerifySignature checks the HMAC of "<timestamp>.<body>" and the timestamp window
func (s *ChatwootService) VerifySignature(w *ChatwootWebhook) error {
	if w.Signature == "" || w.Timestamp == "" {
		return apperrors.ErrInvalidSignature
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(w.Timestamp), 10, 64)
	if err != nil {
		return apperrors.ErrInvalidSignature
	}
	skew := s.now().Sub(time.Unix(ts, 0))
	if math.Abs(float64(skew)) > float64(ChatwootMaxSkew) {
		return apperrors.ErrStaleWebhook
	}

	payload := make([]byte, 0, len(w.Timestamp)+1+len(w.Body))
	payload = append(payload, w.Timestamp...)
	payload = append(payload, '.')
	payload = append(payload, w.Body...)
	if !verifyHMACSHA256(s.secret, payload, w.Signature) {
		return apperrors.ErrInvalidSignature
	}
	return nil
}

// HandleWebhook verifies and processes a delivery for an organization. It returns the outcome:
// processed, duplicate or ignored.
func (s *ChatwootService) HandleWebhook(ctx context.Context, orgID uuid.UUID, w *ChatwootWebhook) (string, error) {
	if err := s.VerifySignature(w); err != nil {
		s.guard.observe(WebhookRejected)
		return "", err
	}

	var p chatwootPayload
	if err := json.Unmarshal(w.Body, &p); err != nil {
		s.guard.observe(WebhookRejected)
		return "", apperrors.NewValidationError("body", "invalid JSON: "+err.Error())
	}

	switch p.Event {
	case ChatwootEventMessageCreated, ChatwootEventConversationCreated, ChatwootEventConversationUpdated:
	default:
		s.guard.observe(WebhookIgnored)
		return WebhookIgnored, nil
	}
	if p.Event == ChatwootEventMessageCreated && (p.MessageType != "incoming" || p.Private) {
		s.guard.observe(WebhookIgnored)
		return WebhookIgnored, nil
	}

	deliveryID := w.Delivery
	if deliveryID == "" {
		deliveryID = fmt.Sprintf("%s:%s:%d", orgID, p.Event, p.ID)
		if p.Event == ChatwootEventConversationUpdated {
			deliveryID += ":" + w.Timestamp
		}
	}
	if !s.guard.claim(ctx, deliveryID) {
		s.guard.observe(WebhookDuplicate)
		return WebhookDuplicate, nil
	}

	if err := s.process(ctx, orgID, &p); err != nil {
		s.guard.release(ctx, deliveryID)
		s.guard.observe(WebhookFailed)
		return "", err
	}
	s.guard.observe(WebhookProcessed)
	return WebhookProcessed, nil
}

func (s *ChatwootService) process(ctx context.Context, orgID uuid.UUID, p *chatwootPayload) error {
	conv := p.conversation()
	if conv.ID == 0 {
		return apperrors.NewValidationError("conversation", "is required")
	}
	externalID := strconv.FormatInt(conv.ID, 10)
	log := logger.ForOrganization(ctx, orgID).WithFields(map[string]interface{}{
		"event":           p.Event,
		"conversation_id": externalID,
	})

	if p.Event == ChatwootEventConversationUpdated {
		if len(conv.Labels) == 0 {
			return nil
		}
		deal, err := s.conversations.ApplyLabels(ctx, orgID, models.ConversationChannelChatwoot, externalID, conv.Labels)
		if err != nil {
			if apperrors.IsNotFound(err) {
				log.Debug("Labels for an unknown conversation ignored")
				return nil
			}
			return err
		}
		if deal != nil {
			log.WithField("deal_id", deal.ID).Info("Deal moved from conversation labels")
		}
		return nil
	}

	in := InboundConversation{
		Channel:                models.ConversationChannelChatwoot,
		ExternalConversationID: externalID,
		Identity:               chatwootIdentity(conv),
		At:                     s.now(),
	}
	if conv.InboxID != 0 {
		in.InboxID = strconv.FormatInt(conv.InboxID, 10)
	}

	res, err := s.conversations.RecordInbound(ctx, orgID, in)
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"contact_id":   res.Contact.ID,
		"matched_by":   res.MatchedBy,
		"created":      res.Created,
		"deal_created": res.DealCreated,
	}).Info("Chatwoot conversation recorded")
	return nil
}

// chatwootIdentity picks the strongest identifier Chatwoot knows about the sender
func chatwootIdentity(conv ChatwootConversation) messaging.IdentityInput {
	sender := conv.Meta.Sender
	in := messaging.IdentityInput{
		Name:      sender.Name,
		Phone:     sender.PhoneNumber,
		Email:     sender.Email,
		AvatarURL: sender.Thumbnail,
	}
	channel := strings.ToLower(conv.Channel)

	switch {
	case strings.Contains(channel, "instagram"):
		in.Channel = messaging.ChannelInstagram
		in.ExternalID = sender.Identifier
		if in.ExternalID == "" {
			in.ExternalID = conv.ContactInbox.SourceID
		}
	case sender.PhoneNumber != "" && strings.Contains(channel, "whatsapp"):
		in.Channel = messaging.ChannelWhatsApp
	case sender.PhoneNumber != "":
		in.Channel = messaging.ChannelPhone
	case sender.Email != "":
		in.Channel = messaging.ChannelEmail
	default:
		in.Channel = messaging.ChannelChatwoot
		if sender.ID != 0 {
			in.ExternalID = strconv.FormatInt(sender.ID, 10)
		}
		return in
	}

	// a phone or e-mail that does not parse leaves nothing to look up; the
	// Chatwoot contact id still identifies the sender
	if sender.ID != 0 {
		if keys, err := messaging.CandidateKeys(in); err == nil && len(keys) == 0 {
			in.Channel = messaging.ChannelChatwoot
			in.ExternalID = strconv.FormatInt(sender.ID, 10)
		}
	}
	return in
}

// SendReply implements ChannelSender for Chatwoot conversations
func (s *ChatwootService) SendReply(ctx context.Context, org *models.Organization, link *models.ConversationLink, _ *models.Contact, text string) error {
	if !s.client.Configured() {
		return apperrors.ErrChatwootNotConfigured
	}
	if org.Settings.ChatwootAccountID == 0 {
		return apperrors.NewConfigurationError("organization has no chatwoot_account_id setting")
	}
	conversationID, err := strconv.ParseInt(link.ExternalConversationID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chatwoot conversation id %q: %w", link.ExternalConversationID, err)
	}
	_, err = s.client.SendMessage(ctx, org.Settings.ChatwootAccountID, conversationID, text)
	return err
}
