package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Omit("Identities").Create(contact).Error
}

// CreateWithIdentities inserts a contact and its identity keys atomically. A unique violation on
// any identity rolls the contact back as well.
func (r *ContactRepository) CreateWithIdentities(contact *models.Contact, identities []models.ContactIdentity) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Identities").Create(contact).Error; err != nil {
			return err
		}
		for i := range identities {
			identities[i].ContactID = contact.ID
			identities[i].OrganizationID = contact.OrganizationID
		}
		if len(identities) == 0 {
			return nil
		}
		return tx.Create(&identities).Error
	})
}

// GetByID retrieves a contact of an organization
func (r *ContactRepository) GetByID(orgID, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Search searches contacts by name, email or phone within an organization
func (r *ContactRepository) Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	searchQuery := r.db.Model(&models.Contact{}).Where("organization_id = ?", orgID)
	if query != "" {
		like := containsPattern(query)
		searchQuery = searchQuery.Where(`(name ILIKE ? ESCAPE '\' OR email ILIKE ? ESCAPE '\' OR phone ILIKE ? ESCAPE '\')`, like, like, like)
	}

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// ListAfter returns up to limit+1 contacts after the cursor, newest first
func (r *ContactRepository) ListAfter(orgID uuid.UUID, cursor *Cursor, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	q := r.db.Model(&models.Contact{}).Where("organization_id = ?", orgID)
	if err := applyCursor(q, "contacts", cursor, limit).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByPhones returns the oldest contact whose phone matches any of the given variants
func (r *ContactRepository) FindByPhones(orgID uuid.UUID, phones []string) (*models.Contact, error) {
	if len(phones) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var contact models.Contact
	err := r.db.Where("organization_id = ? AND phone IN ?", orgID, phones).
		Order("created_at ASC").First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindByEmail returns the oldest contact with the given e-mail
func (r *ContactRepository) FindByEmail(orgID uuid.UUID, email string) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Where("organization_id = ? AND LOWER(email) = LOWER(?)", orgID, email).
		Order("created_at ASC").First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update updates a contact
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Omit("Identities").Save(contact).Error
}

// Delete deletes a contact of an organization; identities cascade
func (r *ContactRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.Contact{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Merge moves everything that references dropID over to keepID and deletes dropID.
// Identity keys are unique per organization so they can be re-pointed without conflicts.
func (r *ContactRepository) Merge(orgID, keepID, dropID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		scoped := "organization_id = ? AND contact_id = ?"
		if err := tx.Model(&models.ContactIdentity{}).Where(scoped, orgID, dropID).
			Update("contact_id", keepID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ConversationLink{}).Where(scoped, orgID, dropID).
			Update("contact_id", keepID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Deal{}).Where(scoped, orgID, dropID).
			Update("contact_id", keepID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.WhatsAppMessage{}).Where(scoped, orgID, dropID).
			Update("contact_id", keepID).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Contact{}, "id = ? AND organization_id = ?", dropID, orgID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
