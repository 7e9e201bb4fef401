package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

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

// ConversationService ties external conversations to contacts and deals. Every messaging
// webhook funnels its inbound traffic through RecordInbound.
type ConversationService struct {
	links     repository.ConversationLinkRepositoryInterface
	mappings  repository.LabelMappingRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	contacts  repository.ContactRepositoryInterface
	resolver  IdentityResolver
	deals     DealServiceInterface
	metrics   *metrics.Registry
	validator *validator.Validate
	now       func() time.Time

	mu      sync.RWMutex
	senders map[models.ConversationChannel]ChannelSender
}

// ConversationDependencies groups what a ConversationService needs
type ConversationDependencies struct {
	Links    repository.ConversationLinkRepositoryInterface
	Mappings repository.LabelMappingRepositoryInterface
	Orgs     repository.OrganizationRepositoryInterface
	Contacts repository.ContactRepositoryInterface
	Resolver IdentityResolver
	Deals    DealServiceInterface
	Metrics  *metrics.Registry
}

// NewConversationService creates a new conversation service
func NewConversationService(deps ConversationDependencies, validator *validator.Validate) *ConversationService {
	return &ConversationService{
		links:     deps.Links,
		mappings:  deps.Mappings,
		orgs:      deps.Orgs,
		contacts:  deps.Contacts,
		resolver:  deps.Resolver,
		deals:     deps.Deals,
		metrics:   deps.Metrics,
		validator: validator,
		now:       time.Now,
		senders:   make(map[models.ConversationChannel]ChannelSender),
	}
}

// RegisterSender sets the reply transport of a channel
func (s *ConversationService) RegisterSender(channel models.ConversationChannel, sender ChannelSender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.senders[channel] = sender
}

// InboundConversation describes a message or conversation event received from a channel
type InboundConversation struct {
	Channel                models.ConversationChannel
	ExternalConversationID string
	InboxID                string
	At                     time.Time
	Identity               messaging.IdentityInput
	// DealTitle overrides the title of an automatically created deal
	DealTitle string
}

// InboundResult is the outcome of recording inbound traffic
type InboundResult struct {
	Contact     *models.Contact
	Link        *models.ConversationLink
	Created     bool
	MatchedBy   messaging.MatchKind
	DealCreated bool
}

// ConversationResponse represents a conversation link
type ConversationResponse struct {
	ID                     uuid.UUID  `json:"id"`
	Channel                string     `json:"channel"`
	ExternalConversationID string     `json:"external_conversation_id"`
	ContactID              uuid.UUID  `json:"contact_id"`
	DealID                 *uuid.UUID `json:"deal_id,omitempty"`
	InboxID                string     `json:"inbox_id,omitempty"`
	LastMessageAt          *string    `json:"last_message_at,omitempty"`
	CreatedAt              string     `json:"created_at"`
}

// ReplyRequest represents an agent reply to a conversation
type ReplyRequest struct {
	Text string `json:"text" validate:"required,min=1,max=4096" example:"Hi! How can we help?"`
}

// RecordInbound resolves the sender to a contact, upserts the conversation link and, when the
// organization enables it, opens a deal for a conversation that has none.
func (s *ConversationService) RecordInbound(ctx context.Context, orgID uuid.UUID, in InboundConversation) (*InboundResult, error) {
	if strings.TrimSpace(in.ExternalConversationID) == "" {
		return nil, apperrors.NewValidationError("conversation_id", "is required")
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if in.Identity.DefaultCountry == "" {
		in.Identity.DefaultCountry = org.Settings.DefaultCountryCode
	}

	res, err := s.resolver.Resolve(ctx, orgID, in.Identity)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveIdentityResolution(string(res.MatchedBy), res.Created)

	at := in.At
	if at.IsZero() {
		at = s.now()
	}
	link := &models.ConversationLink{
		OrganizationID:         orgID,
		Channel:                in.Channel,
		ExternalConversationID: in.ExternalConversationID,
		ContactID:              res.Contact.ID,
		InboxID:                in.InboxID,
		LastMessageAt:          &at,
	}
	if err := s.links.Upsert(link); err != nil {
		return nil, fmt.Errorf("failed to upsert conversation link: %w", err)
	}

	result := &InboundResult{
		Contact:   res.Contact,
		Link:      link,
		Created:   res.Created,
		MatchedBy: res.MatchedBy,
	}

	if org.Settings.AutoCreateDeals && link.DealID == nil {
		title := in.DealTitle
		if title == "" {
			title = res.Contact.Name
		}
		deal, err := s.deals.CreateForContact(orgID, org.Settings.DefaultBoardID, res.Contact, title)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("conversation_id", link.ID).Warn("Failed to create deal for conversation")
			return result, nil
		}
		attached, err := s.links.SetDeal(link.ID, deal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to attach deal to conversation: %w", err)
		}
		if !attached {
			// a concurrent delivery linked its own deal first
			return s.keepWinningDeal(ctx, orgID, result, deal.ID)
		}
		link.DealID = &deal.ID
		result.DealCreated = true
	}
	return result, nil
}

// keepWinningDeal drops the deal that lost the race for a conversation link and reloads the
// link carrying the winner's deal
func (s *ConversationService) keepWinningDeal(ctx context.Context, orgID uuid.UUID, result *InboundResult, lostDealID uuid.UUID) (*InboundResult, error) {
	if err := s.deals.Delete(orgID, lostDealID); err != nil {
		logger.ForOrganization(ctx, orgID).WithError(err).WithField("deal_id", lostDealID).Warn("Failed to delete duplicate conversation deal")
	}
	stored, err := s.links.GetByID(orgID, result.Link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload conversation link: %w", err)
	}
	result.Link = stored
	return result, nil
}

// ApplyLabels moves the deal linked to a conversation to the stage mapped from the first label
// that has a mapping. It returns nil when nothing had to move.
func (s *ConversationService) ApplyLabels(ctx context.Context, orgID uuid.UUID, channel models.ConversationChannel, externalID string, labels []string) (*DealResponse, error) {
	normalized := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			normalized = append(normalized, l)
		}
	}
	if len(normalized) == 0 {
		return nil, nil
	}
	labels = normalized

	link, err := s.links.GetByExternalID(orgID, channel, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	if link.DealID == nil {
		return nil, nil
	}

	mappings, err := s.mappings.GetByLabels(orgID, labels)
	if err != nil {
		return nil, fmt.Errorf("failed to get label mappings: %w", err)
	}
	stageID, ok := firstMappedStage(labels, mappings)
	if !ok {
		return nil, nil
	}
	return s.deals.Move(ctx, orgID, *link.DealID, &MoveDealRequest{StageID: stageID})
}

// firstMappedStage walks labels in order and returns the stage of the first mapped one
func firstMappedStage(labels []string, mappings []models.LabelMapping) (uuid.UUID, bool) {
	byLabel := make(map[string]uuid.UUID, len(mappings))
	for _, m := range mappings {
		byLabel[m.ChatwootLabel] = m.StageID
	}
	for _, label := range labels {
		if stageID, ok := byLabel[label]; ok {
			return stageID, true
		}
	}
	return uuid.Nil, false
}

// GetByID retrieves a conversation link
func (s *ConversationService) GetByID(orgID, id uuid.UUID) (*ConversationResponse, error) {
	link, err := s.getLink(orgID, id)
	if err != nil {
		return nil, err
	}
	return toConversationResponse(link), nil
}

// ListByContact lists the conversations of a contact
func (s *ConversationService) ListByContact(orgID, contactID uuid.UUID) ([]ConversationResponse, error) {
	links, err := s.links.ListByContact(orgID, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	responses := make([]ConversationResponse, len(links))
	for i := range links {
		responses[i] = *toConversationResponse(&links[i])
	}
	return responses, nil
}

// Reply sends an agent message through the conversation's channel
func (s *ConversationService) Reply(ctx context.Context, orgID, id uuid.UUID, req *ReplyRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	link, err := s.getLink(orgID, id)
	if err != nil {
		return err
	}

	s.mu.RLock()
	sender, ok := s.senders[link.Channel]
	s.mu.RUnlock()
	if !ok {
		return apperrors.NewConfigurationError(fmt.Sprintf("no reply transport for channel %s", link.Channel))
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}
	contact, err := s.contacts.GetByID(orgID, link.ContactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if err := sender.SendReply(ctx, org, link, contact, req.Text); err != nil {
		return err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"conversation_id": link.ID,
		"channel":         link.Channel,
	}).Info("Reply sent")
	return nil
}

func (s *ConversationService) getLink(orgID, id uuid.UUID) (*models.ConversationLink, error) {
	link, err := s.links.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return link, nil
}

func toConversationResponse(l *models.ConversationLink) *ConversationResponse {
	return &ConversationResponse{
		ID:                     l.ID,
		Channel:                string(l.Channel),
		ExternalConversationID: l.ExternalConversationID,
		ContactID:              l.ContactID,
		DealID:                 l.DealID,
		InboxID:                l.InboxID,
		LastMessageAt:          formatTimePtr(l.LastMessageAt),
		CreatedAt:              formatTime(l.CreatedAt),
	}
}
