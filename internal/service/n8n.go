package service

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"crm-backend/internal/config"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"

	"github.com/google/uuid"
)

// Outbound N8N events
const (
	EventDealStageChanged = "deal.stage_changed"
	EventDocumentUploaded = "document.uploaded"
)

// Inbound N8N callback events
const (
	CallbackDocumentProcessed = "document.processed"
)

// N8NSecretHeader authenticates N8N calls in both directions
const N8NSecretHeader = "X-N8N-Secret"

// n8nEnvelope is the body posted to the N8N webhook
type n8nEnvelope struct {
	Event          string      `json:"event"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	Data           interface{} `json:"data"`
	SentAt         string      `json:"sent_at"`
}

// N8NClient posts workflow events to the configured N8N webhook. With no webhook URL configured
// every notification is a no-op.
type N8NClient struct {
	webhookURL string
	secret     string
	httpClient *http.Client
}

// NewN8NClient creates a new N8N client
func NewN8NClient(cfg *config.Config) *N8NClient {
	return &N8NClient{
		webhookURL: cfg.N8NWebhookURL,
		secret:     cfg.N8NSecret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether a webhook URL is configured
func (c *N8NClient) Enabled() bool {
	return c.webhookURL != ""
}

// Notify posts an event envelope to N8N
func (c *N8NClient) Notify(ctx context.Context, event string, orgID uuid.UUID, data interface{}) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(n8nEnvelope{
		Event:          event,
		OrganizationID: orgID,
		Data:           data,
		SentAt:         formatTime(time.Now().UTC()),
	})
	if err != nil {
		return fmt.Errorf("failed to encode n8n event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set(N8NSecretHeader, c.secret)
	}

	logger.WithContext(ctx).WithField("event", event).Debug("Posting N8N event")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("n8n request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("n8n request failed: status=%d body=%s", resp.StatusCode, string(msg))
	}
	return nil
}

// DocumentProcessedCallback is posted by the ingestion workflow once a document is parsed
type DocumentProcessedCallback struct {
	DocumentID uuid.UUID `json:"document_id" validate:"required"`
	Status     string    `json:"status" validate:"required,oneof=ready failed"`
	Chunks     []string  `json:"chunks,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// N8NCallbackService handles callbacks from N8N workflows
type N8NCallbackService struct {
	secret   string
	training AITrainingServiceInterface
}

// NewN8NCallbackService creates a new callback service
func NewN8NCallbackService(cfg *config.Config, training AITrainingServiceInterface) *N8NCallbackService {
	return &N8NCallbackService{
		secret:   cfg.N8NSecret,
		training: training,
	}
}

// VerifySecret compares the shared secret in constant time. An unset secret rejects every call.
func (s *N8NCallbackService) VerifySecret(provided string) bool {
	if s.secret == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.secret), []byte(provided)) == 1
}

// HandleEvent dispatches a callback body by event name
func (s *N8NCallbackService) HandleEvent(ctx context.Context, event string, body []byte) error {
	switch event {
	case CallbackDocumentProcessed:
		var cb DocumentProcessedCallback
		if err := json.Unmarshal(body, &cb); err != nil {
			return apperrors.NewValidationError("body", "invalid JSON: "+err.Error())
		}
		if cb.DocumentID == uuid.Nil {
			return apperrors.NewValidationError("document_id", "is required")
		}
		return s.training.CompleteProcessing(ctx, &cb)
	}
	return fmt.Errorf("%w: %s", apperrors.ErrUnknownEvent, event)
}
