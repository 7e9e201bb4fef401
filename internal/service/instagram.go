package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm-backend/internal/config"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/messaging"
	"crm-backend/internal/metrics"
	"crm-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const defaultGraphURL = "https://graph.facebook.com/v19.0"

// InstagramSignatureHeader carries the HMAC of an Instagram webhook body
const InstagramSignatureHeader = "X-Hub-Signature-256"

// InstagramGraphClient calls the Graph API with a long-lived page access token
type InstagramGraphClient struct {
	baseURL    string
	httpClient *http.Client
	configured bool
}

// NewInstagramGraphClient creates a Graph API client. The token is attached by an oauth2
// transport backed by a static token source.
func NewInstagramGraphClient(ctx context.Context, cfg *config.Config) *InstagramGraphClient {
	baseURL := strings.TrimRight(cfg.InstagramGraphURL, "/")
	if baseURL == "" {
		baseURL = defaultGraphURL
	}
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.InstagramAccessToken,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = 15 * time.Second

	return &InstagramGraphClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		configured: cfg.InstagramAccessToken != "",
	}
}

// Configured reports whether an access token is set
func (c *InstagramGraphClient) Configured() bool {
	return c != nil && c.configured
}

// InstagramProfile is the public profile of an Instagram-scoped user
type InstagramProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
}

// SendText sends a text message from a page to an Instagram-scoped user
func (c *InstagramGraphClient) SendText(ctx context.Context, pageID, igsid, text string) (string, error) {
	body := map[string]interface{}{
		"recipient": map[string]string{"id": igsid},
		"message":   map[string]string{"text": text},
	}
	var out struct {
		RecipientID string `json:"recipient_id"`
		MessageID   string `json:"message_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/"+url.PathEscape(pageID)+"/messages", body, &out); err != nil {
		return "", err
	}
	return out.MessageID, nil
}

// GetProfile fetches the name and picture of an Instagram-scoped user
func (c *InstagramGraphClient) GetProfile(ctx context.Context, igsid string) (*InstagramProfile, error) {
	var out InstagramProfile
	path := "/" + url.PathEscape(igsid) + "?fields=name,username,profile_pic"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *InstagramGraphClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	if !c.Configured() {
		return apperrors.ErrInstagramNotConfigured
	}

	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode graph request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("graph request failed: status=%d body=%s", resp.StatusCode, string(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode graph response: %w", err)
	}
	return nil
}

// instagramPayload is the webhook body of the Instagram messaging product
type instagramPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID        string `json:"id"`
		Time      int64  `json:"time"`
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Recipient struct {
				ID string `json:"id"`
			} `json:"recipient"`
			Timestamp int64 `json:"timestamp"`
			Message   *struct {
				MID    string `json:"mid"`
				Text   string `json:"text"`
				IsEcho bool   `json:"is_echo"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

// InstagramService receives Instagram messaging webhooks and replies through the Graph API
type InstagramService struct {
	orgs          repository.OrganizationRepositoryInterface
	graph         *InstagramGraphClient
	conversations ConversationServiceInterface
	guard         deliveryGuard
	appSecret     string
	verifyToken   string
}

// NewInstagramService creates a new Instagram service
func NewInstagramService(cfg *config.Config, orgs repository.OrganizationRepositoryInterface, graph *InstagramGraphClient, conversations ConversationServiceInterface, dedup WebhookDeduplicator, registry *metrics.Registry) *InstagramService {
	return &InstagramService{
		orgs:          orgs,
		graph:         graph,
		conversations: conversations,
		guard:         deliveryGuard{source: "instagram", dedup: dedup, metrics: registry},
		appSecret:     cfg.InstagramAppSecret,
		verifyToken:   cfg.InstagramVerifyToken,
	}
}

// VerifySubscription answers the webhook verification handshake
func (s *InstagramService) VerifySubscription(mode, token, challenge string) (string, error) {
	if mode != "subscribe" || !secretsEqual(s.verifyToken, token) {
		return "", apperrors.NewAuthorizationError("webhook verification failed")
	}
	return challenge, nil
}

// HandleWebhook verifies the body signature and records every inbound message
func (s *InstagramService) HandleWebhook(ctx context.Context, signature string, body []byte) (string, error) {
	if !verifyHMACSHA256(s.appSecret, body, signature) {
		s.guard.observe(WebhookRejected)
		return "", apperrors.ErrInvalidSignature
	}

	var p instagramPayload
	if err := json.Unmarshal(body, &p); err != nil {
		s.guard.observe(WebhookRejected)
		return "", apperrors.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if p.Object != "instagram" && p.Object != "page" {
		s.guard.observe(WebhookIgnored)
		return WebhookIgnored, nil
	}

	outcome := WebhookIgnored
	for _, entry := range p.Entry {
		org, err := s.orgs.GetByInstagramPageID(entry.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.WithContext(ctx).WithField("page_id", entry.ID).Warn("Instagram event for an unknown page")
				continue
			}
			s.guard.observe(WebhookFailed)
			return "", fmt.Errorf("failed to get organization: %w", err)
		}

		for _, m := range entry.Messaging {
			if m.Message == nil || m.Message.IsEcho || m.Message.MID == "" || m.Sender.ID == entry.ID {
				continue
			}
			if !s.guard.claim(ctx, m.Message.MID) {
				if outcome == WebhookIgnored {
					outcome = WebhookDuplicate
				}
				continue
			}
			at := time.Now()
			if m.Timestamp > 0 {
				at = time.UnixMilli(m.Timestamp)
			}
			if err := s.recordMessage(ctx, org.ID, m.Sender.ID, at); err != nil {
				s.guard.release(ctx, m.Message.MID)
				s.guard.observe(WebhookFailed)
				return "", err
			}
			outcome = WebhookProcessed
		}
	}
	s.guard.observe(outcome)
	return outcome, nil
}

func (s *InstagramService) recordMessage(ctx context.Context, orgID uuid.UUID, igsid string, at time.Time) error {
	identity := messaging.IdentityInput{
		Channel:    messaging.ChannelInstagram,
		ExternalID: igsid,
	}
	if s.graph.Configured() {
		if profile, err := s.graph.GetProfile(ctx, igsid); err == nil {
			identity.Name = profile.Name
			if identity.Name == "" {
				identity.Name = profile.Username
			}
			identity.AvatarURL = profile.ProfilePic
		} else {
			logger.WithContext(ctx).WithError(err).Debug("Instagram profile lookup failed")
		}
	}

	res, err := s.conversations.RecordInbound(ctx, orgID, InboundConversation{
		Channel:                models.ConversationChannelInstagram,
		ExternalConversationID: igsid,
		At:                     at,
		Identity:               identity,
	})
	if err != nil {
		return err
	}
	logger.ForOrganization(ctx, orgID).WithFields(map[string]interface{}{
		"contact_id": res.Contact.ID,
		"matched_by": res.MatchedBy,
		"created":    res.Created,
	}).Info("Instagram message received")
	return nil
}

// SendReply implements ChannelSender for Instagram conversations
func (s *InstagramService) SendReply(ctx context.Context, org *models.Organization, link *models.ConversationLink, _ *models.Contact, text string) error {
	if !s.graph.Configured() {
		return apperrors.ErrInstagramNotConfigured
	}
	if org.Settings.InstagramPageID == "" {
		return apperrors.NewConfigurationError("organization has no instagram_page_id setting")
	}
	_, err := s.graph.SendText(ctx, org.Settings.InstagramPageID, link.ExternalConversationID, text)
	return err
}
