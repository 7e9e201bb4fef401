package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WhatsAppRepository handles WPPConnect sessions and stored messages
type WhatsAppRepository struct {
	db *gorm.DB
}

// NewWhatsAppRepository creates a new WhatsApp repository
func NewWhatsAppRepository(db *gorm.DB) *WhatsAppRepository {
	return &WhatsAppRepository{db: db}
}

// CreateSession creates a new session
func (r *WhatsAppRepository) CreateSession(session *models.WhatsAppSession) error {
	return r.db.Create(session).Error
}

// GetSession retrieves a session of an organization
func (r *WhatsAppRepository) GetSession(orgID, id uuid.UUID) (*models.WhatsAppSession, error) {
	var session models.WhatsAppSession
	err := r.db.First(&session, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSessionByName retrieves a session by its WPPConnect name
func (r *WhatsAppRepository) GetSessionByName(name string) (*models.WhatsAppSession, error) {
	var session models.WhatsAppSession
	err := r.db.First(&session, "session_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetConnectedSession returns the most recently updated connected session of an organization
func (r *WhatsAppRepository) GetConnectedSession(orgID uuid.UUID) (*models.WhatsAppSession, error) {
	var session models.WhatsAppSession
	err := r.db.Where("organization_id = ? AND status IN ?", orgID, []string{"CONNECTED", "inChat", "isLogged"}).
		Order("updated_at DESC").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions lists the sessions of an organization
func (r *WhatsAppRepository) ListSessions(orgID uuid.UUID) ([]models.WhatsAppSession, error) {
	var sessions []models.WhatsAppSession
	err := r.db.Where("organization_id = ?", orgID).Order("created_at ASC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateSession updates a session
func (r *WhatsAppRepository) UpdateSession(session *models.WhatsAppSession) error {
	return r.db.Save(session).Error
}

// CreateMessageIfAbsent stores a message unless one with the same external id already exists
// for the session. It reports whether a row was inserted.
func (r *WhatsAppRepository) CreateMessageIfAbsent(msg *models.WhatsAppMessage) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "external_id"}},
		DoNothing: true,
	}).Create(msg)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListMessages returns the latest messages exchanged with a contact
func (r *WhatsAppRepository) ListMessages(orgID, contactID uuid.UUID, limit int) ([]models.WhatsAppMessage, error) {
	var messages []models.WhatsAppMessage
	err := r.db.Where("organization_id = ? AND contact_id = ?", orgID, contactID).
		Order("sent_at DESC").Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
