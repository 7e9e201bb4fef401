package service

import (
	"context"
	"mime/multipart"
	"time"

	"crm-backend/internal/cache"
	"crm-backend/internal/database/models"
	"crm-backend/internal/messaging"
	"crm-backend/internal/search"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetBySlug(slug string) (*OrganizationResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	Create(req *CreateProfileRequest) (*ProfileResponse, error)
	GetByID(id uuid.UUID) (*ProfileResponse, error)
	List(orgID uuid.UUID, page, pageSize int) (*ProfileListResponse, error)
	UpdateRole(orgID, actorID, id uuid.UUID, req *UpdateRoleRequest) (*ProfileResponse, error)
}

// BoardServiceInterface defines the interface for board and stage service
type BoardServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateBoardRequest) (*BoardResponse, error)
	GetByID(orgID, id uuid.UUID) (*BoardResponse, error)
	List(orgID uuid.UUID) ([]BoardResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateBoardRequest) (*BoardResponse, error)
	Delete(orgID, id uuid.UUID) error
	CreateStage(orgID, boardID uuid.UUID, req *StageRequest) (*StageResponse, error)
	UpdateStage(orgID, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error)
	DeleteStage(orgID, id uuid.UUID) error
	ReorderStages(orgID, boardID uuid.UUID, req *ReorderStagesRequest) ([]StageResponse, error)
}

// DealServiceInterface defines the interface for deal service
type DealServiceInterface interface {
	Create(orgID, ownerID uuid.UUID, req *CreateDealRequest) (*DealResponse, error)
	CreateForContact(orgID uuid.UUID, boardID *uuid.UUID, contact *models.Contact, title string) (*models.Deal, error)
	GetByID(orgID, id uuid.UUID) (*DealResponse, error)
	List(orgID uuid.UUID, q DealListQuery) (*DealListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateDealRequest) (*DealResponse, error)
	Move(ctx context.Context, orgID, id uuid.UUID, req *MoveDealRequest) (*DealResponse, error)
	UpdateStatus(orgID, id uuid.UUID, req *UpdateDealStatusRequest) (*DealResponse, error)
	Delete(orgID, id uuid.UUID) error
	AddItem(orgID, dealID uuid.UUID, req *DealItemRequest) (*DealResponse, error)
	UpdateItem(orgID, dealID, itemID uuid.UUID, req *UpdateDealItemRequest) (*DealResponse, error)
	RemoveItem(orgID, dealID, itemID uuid.UUID) (*DealResponse, error)
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	Create(ctx context.Context, orgID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error)
	GetByID(orgID, id uuid.UUID) (*ContactResponse, error)
	Search(orgID uuid.UUID, query string, page, pageSize int) (*ContactListResponse, error)
	Update(ctx context.Context, orgID, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error)
	Delete(orgID, id uuid.UUID) error
	ListIdentities(orgID, contactID uuid.UUID) ([]IdentityResponse, error)
	AddIdentity(ctx context.Context, orgID, contactID uuid.UUID, req *AddIdentityRequest) (*IdentityResponse, error)
	RemoveIdentity(orgID, contactID, identityID uuid.UUID) error
	Merge(ctx context.Context, orgID uuid.UUID, req *MergeContactsRequest) (*ContactResponse, error)
	Resolve(ctx context.Context, orgID uuid.UUID, req *ResolveContactRequest) (*ResolveContactResponse, error)
}

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(orgID, id uuid.UUID) (*CompanyResponse, error)
	Search(orgID uuid.UUID, query string, page, pageSize int) (*CompanyListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// ProductServiceInterface defines the interface for product service
type ProductServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error)
	GetByID(orgID, id uuid.UUID) (*ProductResponse, error)
	Search(orgID uuid.UUID, query string, page, pageSize int) (*ProductListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// ConversationServiceInterface defines the interface for conversation service
type ConversationServiceInterface interface {
	RecordInbound(ctx context.Context, orgID uuid.UUID, in InboundConversation) (*InboundResult, error)
	ApplyLabels(ctx context.Context, orgID uuid.UUID, channel models.ConversationChannel, externalID string, labels []string) (*DealResponse, error)
	GetByID(orgID, id uuid.UUID) (*ConversationResponse, error)
	ListByContact(orgID, contactID uuid.UUID) ([]ConversationResponse, error)
	Reply(ctx context.Context, orgID, id uuid.UUID, req *ReplyRequest) error
}

// LabelMappingServiceInterface defines the interface for label mapping service
type LabelMappingServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateLabelMappingRequest) (*LabelMappingResponse, error)
	List(orgID uuid.UUID) ([]LabelMappingResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// APIKeyServiceInterface defines the interface for API key service
type APIKeyServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateAPIKeyRequest) (*CreatedAPIKeyResponse, error)
	List(orgID uuid.UUID) ([]APIKeyResponse, error)
	Revoke(orgID, id uuid.UUID) error
}

// PublicAPIServiceInterface defines the interface for the public API service
type PublicAPIServiceInterface interface {
	ListContacts(orgID uuid.UUID, cursor string, limit int) (*CursorPage[ContactResponse], error)
	ListDeals(orgID uuid.UUID, cursor string, limit int) (*CursorPage[DealResponse], error)
	CreateContact(ctx context.Context, orgID uuid.UUID, req *ResolveContactRequest) (*ResolveContactResponse, error)
}

// AIChatServiceInterface defines the interface for AI chat service
type AIChatServiceInterface interface {
	Chat(ctx context.Context, orgID, profileID uuid.UUID, req *AIChatRequest) (*AIChatResponse, error)
	ClearHistory(ctx context.Context, orgID, profileID uuid.UUID, conversationID string) error
}

// AITrainingServiceInterface defines the interface for AI training service
type AITrainingServiceInterface interface {
	Upload(ctx context.Context, orgID, uploaderID uuid.UUID, file multipart.File, header *multipart.FileHeader, title string) (*DocumentResponse, error)
	CompleteProcessing(ctx context.Context, cb *DocumentProcessedCallback) error
	List(orgID uuid.UUID, page, pageSize int) (*DocumentListResponse, error)
	GetByID(orgID, id uuid.UUID) (*DocumentResponse, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	Search(ctx context.Context, orgID uuid.UUID, query string, limit int) (*SearchPreviewResponse, error)
}

// ChatwootServiceInterface defines the interface for Chatwoot webhook service
type ChatwootServiceInterface interface {
	HandleWebhook(ctx context.Context, orgID uuid.UUID, w *ChatwootWebhook) (string, error)
}

// WhatsAppServiceInterface defines the interface for WhatsApp service
type WhatsAppServiceInterface interface {
	CreateSession(ctx context.Context, orgID uuid.UUID, req *CreateSessionRequest) (*SessionResponse, error)
	StartSession(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error)
	ListSessions(orgID uuid.UUID) ([]SessionResponse, error)
	Status(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error)
	QRCode(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error)
	Logout(ctx context.Context, orgID, id uuid.UUID) (*SessionResponse, error)
	HandleWebhook(ctx context.Context, sessionName, secret string, body []byte) (string, error)
	SendMessage(ctx context.Context, orgID uuid.UUID, req *SendWhatsAppMessageRequest) (*WhatsAppMessageResponse, error)
	ListMessages(orgID, contactID uuid.UUID, limit int) ([]WhatsAppMessageResponse, error)
}

// InstagramServiceInterface defines the interface for Instagram webhook service
type InstagramServiceInterface interface {
	VerifySubscription(mode, token, challenge string) (string, error)
	HandleWebhook(ctx context.Context, signature string, body []byte) (string, error)
}

// N8NCallbackServiceInterface defines the interface for N8N callback service
type N8NCallbackServiceInterface interface {
	VerifySecret(provided string) bool
	HandleEvent(ctx context.Context, event string, body []byte) error
}

// IdentityResolver maps channel identities to contacts
type IdentityResolver interface {
	Resolve(ctx context.Context, orgID uuid.UUID, in messaging.IdentityInput) (*messaging.Resolution, error)
	Link(ctx context.Context, orgID, contactID uuid.UUID, key string) (*models.ContactIdentity, error)
	Merge(ctx context.Context, orgID, keepID, dropID uuid.UUID) (*models.Contact, error)
}

// Notifier delivers workflow events
type Notifier interface {
	Notify(ctx context.Context, event string, orgID uuid.UUID, data interface{}) error
}

// ChannelSender delivers an agent reply on the channel a conversation lives on
type ChannelSender interface {
	SendReply(ctx context.Context, org *models.Organization, link *models.ConversationLink, contact *models.Contact, text string) error
}

// LLMClient produces chat completions
type LLMClient interface {
	Configured() bool
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// ChatHistory stores AI chat turns per conversation
type ChatHistory interface {
	Load(ctx context.Context, orgID, profileID uuid.UUID, conversationID string) ([]cache.ChatTurn, error)
	Append(ctx context.Context, orgID, profileID uuid.UUID, conversationID string, turns ...cache.ChatTurn) error
	Clear(ctx context.Context, orgID, profileID uuid.UUID, conversationID string) error
}

// ChunkSearcher indexes and retrieves training chunks
type ChunkSearcher interface {
	IndexChunks(records []search.ChunkRecord) error
	DeleteChunks(ids []string) error
	Search(organizationID, query string, limit int) ([]search.ChunkHit, error)
}

// ObjectStorage stores uploaded files
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// WebhookDeduplicator remembers processed webhook deliveries
type WebhookDeduplicator interface {
	FirstDelivery(ctx context.Context, source, deliveryID string) (bool, error)
	Forget(ctx context.Context, source, deliveryID string) error
}
