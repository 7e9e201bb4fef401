package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/cache"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
	"crm-backend/internal/search"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultContextChunks = 5

// AIChatService answers questions about the CRM with an LLM, grounded on training documents
type AIChatService struct {
	llm       LLMClient
	history   ChatHistory
	searcher  ChunkSearcher
	docs      repository.AITrainingRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	deals     repository.DealRepositoryInterface
	contacts  repository.ContactRepositoryInterface
	validator *validator.Validate
	chunks    int
	now       func() time.Time
}

// AIChatDependencies groups what an AIChatService needs. History and Searcher are optional.
type AIChatDependencies struct {
	LLM           LLMClient
	History       ChatHistory
	Searcher      ChunkSearcher
	Documents     repository.AITrainingRepositoryInterface
	Organizations repository.OrganizationRepositoryInterface
	Deals         repository.DealRepositoryInterface
	Contacts      repository.ContactRepositoryInterface
	ContextChunks int
}

// NewAIChatService creates a new AI chat service
func NewAIChatService(deps AIChatDependencies, validator *validator.Validate) *AIChatService {
	chunks := deps.ContextChunks
	if chunks <= 0 {
		chunks = defaultContextChunks
	}
	return &AIChatService{
		llm:       deps.LLM,
		history:   deps.History,
		searcher:  deps.Searcher,
		docs:      deps.Documents,
		orgs:      deps.Organizations,
		deals:     deps.Deals,
		contacts:  deps.Contacts,
		validator: validator,
		chunks:    chunks,
		now:       time.Now,
	}
}

// AIChatRequest represents a chat message to the assistant
type AIChatRequest struct {
	ConversationID string     `json:"conversation_id,omitempty" validate:"omitempty,max=100"`
	Message        string     `json:"message" validate:"required,min=1,max=8000" example:"Summarize this deal"`
	DealID         *uuid.UUID `json:"deal_id,omitempty"`
	ContactID      *uuid.UUID `json:"contact_id,omitempty"`
}

// ChatSource is a training chunk the answer was grounded on
type ChatSource struct {
	DocumentID    string `json:"document_id"`
	DocumentTitle string `json:"document_title"`
	Position      int    `json:"position"`
}

// AIChatResponse represents the assistant reply
type AIChatResponse struct {
	ConversationID string       `json:"conversation_id"`
	Reply          string       `json:"reply"`
	Sources        []ChatSource `json:"sources"`
}

// Chat sends a message to the assistant and stores the exchange in the conversation history
func (s *AIChatService) Chat(ctx context.Context, orgID, profileID uuid.UUID, req *AIChatRequest) (*AIChatResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if s.llm == nil || !s.llm.Configured() {
		return nil, apperrors.ErrLLMNotConfigured
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	var deal *models.Deal
	if req.DealID != nil {
		if deal, err = s.deals.GetByID(orgID, *req.DealID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDealNotFound
			}
			return nil, fmt.Errorf("failed to get deal: %w", err)
		}
	}
	var contact *models.Contact
	if req.ContactID != nil {
		if contact, err = s.contacts.GetByID(orgID, *req.ContactID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to get contact: %w", err)
		}
	}

	log := logger.WithContext(ctx)
	hits, err := retrieveChunks(s.searcher, s.docs, orgID, req.Message, s.chunks)
	if err != nil {
		log.WithError(err).Warn("Failed to retrieve training chunks")
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	var past []cache.ChatTurn
	if s.history != nil {
		if past, err = s.history.Load(ctx, orgID, profileID, conversationID); err != nil {
			log.WithError(err).Warn("Failed to load chat history")
		}
	}

	messages := make([]ChatMessage, 0, len(past)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: buildSystemPrompt(org, deal, contact, hits)})
	for _, t := range past {
		messages = append(messages, ChatMessage{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: req.Message})

	reply, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	if s.history != nil {
		now := s.now().UTC()
		turns := []cache.ChatTurn{
			{Role: "user", Content: req.Message, At: now},
			{Role: "assistant", Content: reply, At: now},
		}
		if err := s.history.Append(ctx, orgID, profileID, conversationID, turns...); err != nil {
			log.WithError(err).Warn("Failed to store chat history")
		}
	}

	sources := make([]ChatSource, 0, len(hits))
	for _, h := range hits {
		sources = append(sources, ChatSource{DocumentID: h.DocumentID, DocumentTitle: h.DocumentTitle, Position: h.Position})
	}
	return &AIChatResponse{
		ConversationID: conversationID,
		Reply:          reply,
		Sources:        sources,
	}, nil
}

// ClearHistory forgets a conversation
func (s *AIChatService) ClearHistory(ctx context.Context, orgID, profileID uuid.UUID, conversationID string) error {
	if strings.TrimSpace(conversationID) == "" {
		return apperrors.NewValidationError("conversation_id", "is required")
	}
	if s.history == nil {
		return nil
	}
	return s.history.Clear(ctx, orgID, profileID, conversationID)
}

func buildSystemPrompt(org *models.Organization, deal *models.Deal, contact *models.Contact, hits []search.ChunkHit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the sales assistant of %s. Answer in the language of the question, be concise and "+
		"never invent prices, dates or commitments that are not in the context below.\n", org.Name)

	if deal != nil {
		fmt.Fprintf(&b, "\nCurrent deal: %q, status %s, value %s %s.", deal.Title, deal.Status, deal.Value.StringFixed(2), deal.Currency)
		if len(deal.Items) > 0 {
			b.WriteString(" Items:")
			for _, item := range deal.Items {
				fmt.Fprintf(&b, "\n- %s x%s = %s", item.Name, item.Quantity.String(), item.Total.StringFixed(2))
			}
		}
		if deal.Notes != "" {
			fmt.Fprintf(&b, "\nDeal notes: %s", deal.Notes)
		}
		b.WriteString("\n")
	}
	if contact != nil {
		fmt.Fprintf(&b, "\nContact: %s", contact.Name)
		if contact.Phone != "" {
			fmt.Fprintf(&b, ", phone %s", contact.Phone)
		}
		if contact.Email != "" {
			fmt.Fprintf(&b, ", e-mail %s", contact.Email)
		}
		if contact.Notes != "" {
			fmt.Fprintf(&b, "\nContact notes: %s", contact.Notes)
		}
		b.WriteString("\n")
	}
	if len(hits) > 0 {
		b.WriteString("\nKnowledge base excerpts:\n")
		for i, h := range hits {
			fmt.Fprintf(&b, "[%d] %s: %s\n", i+1, h.DocumentTitle, h.Content)
		}
	}
	return b.String()
}

// retrieveChunks queries the search index and falls back to a database text match when the
// index is not configured or fails
func retrieveChunks(searcher ChunkSearcher, docs repository.AITrainingRepositoryInterface, orgID uuid.UUID, query string, limit int) ([]search.ChunkHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var searchErr error
	if searcher != nil {
		hits, err := searcher.Search(orgID.String(), query, limit)
		if err == nil {
			return hits, nil
		}
		searchErr = err
	}

	chunks, err := docs.SearchChunks(orgID, query, limit)
	if err != nil {
		if searchErr != nil {
			return nil, fmt.Errorf("%v; fallback: %w", searchErr, err)
		}
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}

	titles := make(map[uuid.UUID]string)
	hits := make([]search.ChunkHit, 0, len(chunks))
	for _, c := range chunks {
		title, ok := titles[c.DocumentID]
		if !ok {
			if doc, err := docs.GetByID(orgID, c.DocumentID); err == nil {
				title = doc.Title
			}
			titles[c.DocumentID] = title
		}
		hits = append(hits, search.ChunkHit{
			ID:            c.ID.String(),
			DocumentID:    c.DocumentID.String(),
			DocumentTitle: title,
			Position:      c.Position,
			Content:       c.Content,
		})
	}
	return hits, searchErr
}
