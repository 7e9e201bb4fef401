package repository

import (
	"time"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConversationLinkRepository handles links between external conversations and CRM records
type ConversationLinkRepository struct {
	db *gorm.DB
}

// NewConversationLinkRepository creates a new conversation link repository
func NewConversationLinkRepository(db *gorm.DB) *ConversationLinkRepository {
	return &ConversationLinkRepository{db: db}
}

// Upsert inserts the link or refreshes contact, inbox and last message time of the existing one.
// The stored row (including any deal id) is loaded back into link.
func (r *ConversationLinkRepository) Upsert(link *models.ConversationLink) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "organization_id"}, {Name: "channel"}, {Name: "external_conversation_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"contact_id":      link.ContactID,
			"inbox_id":        gorm.Expr("COALESCE(NULLIF(EXCLUDED.inbox_id, ''), messaging_conversation_links.inbox_id)"),
			"last_message_at": gorm.Expr("GREATEST(EXCLUDED.last_message_at, messaging_conversation_links.last_message_at)"),
			"updated_at":      time.Now(),
		}),
	}).Create(link).Error
	if err != nil {
		return err
	}
	// link carries the generated id even when the insert hit the conflict, so load into a fresh row
	var stored models.ConversationLink
	err = r.db.First(&stored, "organization_id = ? AND channel = ? AND external_conversation_id = ?",
		link.OrganizationID, link.Channel, link.ExternalConversationID).Error
	if err != nil {
		return err
	}
	*link = stored
	return nil
}

// GetByExternalID retrieves a link by its external conversation id
func (r *ConversationLinkRepository) GetByExternalID(orgID uuid.UUID, channel models.ConversationChannel, externalID string) (*models.ConversationLink, error) {
	var link models.ConversationLink
	err := r.db.First(&link, "organization_id = ? AND channel = ? AND external_conversation_id = ?", orgID, channel, externalID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByID retrieves a link of an organization
func (r *ConversationLinkRepository) GetByID(orgID, id uuid.UUID) (*models.ConversationLink, error) {
	var link models.ConversationLink
	err := r.db.First(&link, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByContact lists the conversations of a contact, most recent first
func (r *ConversationLinkRepository) ListByContact(orgID, contactID uuid.UUID) ([]models.ConversationLink, error) {
	var links []models.ConversationLink
	err := r.db.Where("organization_id = ? AND contact_id = ?", orgID, contactID).
		Order("last_message_at DESC NULLS LAST").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// SetDeal attaches a deal to a link that has none. It reports false when another
// delivery attached its deal first.
func (r *ConversationLinkRepository) SetDeal(id, dealID uuid.UUID) (bool, error) {
	result := r.db.Model(&models.ConversationLink{}).
		Where("id = ? AND deal_id IS NULL", id).
		Update("deal_id", dealID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
