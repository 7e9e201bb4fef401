package repository

import (
	"time"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetByInstagramPageID(pageID string) (*models.Organization, error)
	Update(org *models.Organization) error
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Profile, int64, error)
	Update(profile *models.Profile) error
}

// BoardRepositoryInterface defines the interface for board repository operations
type BoardRepositoryInterface interface {
	Create(board *models.Board) error
	GetByID(orgID, id uuid.UUID) (*models.Board, error)
	GetDefault(orgID uuid.UUID) (*models.Board, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Board, error)
	Update(board *models.Board) error
	Delete(orgID, id uuid.UUID) error
}

// StageRepositoryInterface defines the interface for stage repository operations
type StageRepositoryInterface interface {
	Create(stage *models.Stage) error
	GetByID(orgID, id uuid.UUID) (*models.Stage, error)
	ListByBoard(boardID uuid.UUID) ([]models.Stage, error)
	FirstStage(boardID uuid.UUID) (*models.Stage, error)
	NextPosition(boardID uuid.UUID) (int, error)
	Update(stage *models.Stage) error
	CountDeals(stageID uuid.UUID) (int64, error)
	Delete(orgID, id uuid.UUID) error
	UpdatePositions(boardID uuid.UUID, orderedIDs []uuid.UUID) error
}

// DealRepositoryInterface defines the interface for deal and deal item repository operations
type DealRepositoryInterface interface {
	Create(deal *models.Deal) error
	GetByID(orgID, id uuid.UUID) (*models.Deal, error)
	List(orgID uuid.UUID, filter DealFilter, limit, offset int) ([]models.Deal, int64, error)
	ListAfter(orgID uuid.UUID, cursor *Cursor, limit int) ([]models.Deal, error)
	NextPosition(stageID uuid.UUID) (int, error)
	Update(deal *models.Deal) error
	Delete(orgID, id uuid.UUID) error
	CreateItem(item *models.DealItem) error
	GetItem(dealID, itemID uuid.UUID) (*models.DealItem, error)
	UpdateItem(item *models.DealItem) error
	DeleteItem(dealID, itemID uuid.UUID) error
	ListItems(dealID uuid.UUID) ([]models.DealItem, error)
}

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByID(orgID, id uuid.UUID) (*models.Product, error)
	GetBySKU(orgID uuid.UUID, sku string) (*models.Product, error)
	Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Product, int64, error)
	Update(product *models.Product) error
	Delete(orgID, id uuid.UUID) error
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	CreateWithIdentities(contact *models.Contact, identities []models.ContactIdentity) error
	GetByID(orgID, id uuid.UUID) (*models.Contact, error)
	Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Contact, int64, error)
	ListAfter(orgID uuid.UUID, cursor *Cursor, limit int) ([]models.Contact, error)
	FindByPhones(orgID uuid.UUID, phones []string) (*models.Contact, error)
	FindByEmail(orgID uuid.UUID, email string) (*models.Contact, error)
	Update(contact *models.Contact) error
	Delete(orgID, id uuid.UUID) error
	Merge(orgID, keepID, dropID uuid.UUID) error
}

// ContactIdentityRepositoryInterface defines the interface for identity key repository operations
type ContactIdentityRepositoryInterface interface {
	Create(identity *models.ContactIdentity) error
	FindByKeys(orgID uuid.UUID, keys []string) ([]models.ContactIdentity, error)
	ListByContact(orgID, contactID uuid.UUID) ([]models.ContactIdentity, error)
	Touch(id uuid.UUID, at time.Time) error
	Delete(orgID, id uuid.UUID) error
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(orgID, id uuid.UUID) (*models.Company, error)
	Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	Delete(orgID, id uuid.UUID) error
}

// AITrainingRepositoryInterface defines the interface for training document repository operations
type AITrainingRepositoryInterface interface {
	Create(doc *models.AITrainingDocument) error
	GetByID(orgID, id uuid.UUID) (*models.AITrainingDocument, error)
	GetByIDAnyOrganization(id uuid.UUID) (*models.AITrainingDocument, error)
	List(orgID uuid.UUID, limit, offset int) ([]models.AITrainingDocument, int64, error)
	Update(doc *models.AITrainingDocument) error
	Delete(orgID, id uuid.UUID) error
	ReplaceChunks(doc *models.AITrainingDocument, chunks []models.AIDocumentChunk) error
	ListChunkIDs(documentID uuid.UUID) ([]uuid.UUID, error)
	SearchChunks(orgID uuid.UUID, query string, limit int) ([]models.AIDocumentChunk, error)
}

// ConversationLinkRepositoryInterface defines the interface for conversation link repository operations
type ConversationLinkRepositoryInterface interface {
	Upsert(link *models.ConversationLink) error
	GetByExternalID(orgID uuid.UUID, channel models.ConversationChannel, externalID string) (*models.ConversationLink, error)
	GetByID(orgID, id uuid.UUID) (*models.ConversationLink, error)
	ListByContact(orgID, contactID uuid.UUID) ([]models.ConversationLink, error)
	SetDeal(id, dealID uuid.UUID) (bool, error)
}

// LabelMappingRepositoryInterface defines the interface for label mapping repository operations
type LabelMappingRepositoryInterface interface {
	Create(mapping *models.LabelMapping) error
	GetByLabels(orgID uuid.UUID, labels []string) ([]models.LabelMapping, error)
	List(orgID uuid.UUID) ([]models.LabelMapping, error)
	Delete(orgID, id uuid.UUID) error
}

// WhatsAppRepositoryInterface defines the interface for WhatsApp session and message operations
type WhatsAppRepositoryInterface interface {
	CreateSession(session *models.WhatsAppSession) error
	GetSession(orgID, id uuid.UUID) (*models.WhatsAppSession, error)
	GetSessionByName(name string) (*models.WhatsAppSession, error)
	GetConnectedSession(orgID uuid.UUID) (*models.WhatsAppSession, error)
	ListSessions(orgID uuid.UUID) ([]models.WhatsAppSession, error)
	UpdateSession(session *models.WhatsAppSession) error
	CreateMessageIfAbsent(msg *models.WhatsAppMessage) (bool, error)
	ListMessages(orgID, contactID uuid.UUID, limit int) ([]models.WhatsAppMessage, error)
}

// APIKeyRepositoryInterface defines the interface for API key repository operations
type APIKeyRepositoryInterface interface {
	Create(key *models.APIKey) error
	GetByPrefix(prefix string) (*models.APIKey, error)
	ListByOrganization(orgID uuid.UUID) ([]models.APIKey, error)
	Revoke(orgID, id uuid.UUID, at time.Time) error
	TouchLastUsed(id uuid.UUID, at time.Time) error
}
