package repository

import (
	"time"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactIdentityRepository handles database operations for contact identity keys
type ContactIdentityRepository struct {
	db *gorm.DB
}

// NewContactIdentityRepository creates a new contact identity repository
func NewContactIdentityRepository(db *gorm.DB) *ContactIdentityRepository {
	return &ContactIdentityRepository{db: db}
}

// Create stores a new identity key for a contact
func (r *ContactIdentityRepository) Create(identity *models.ContactIdentity) error {
	return r.db.Create(identity).Error
}

// FindByKeys returns every identity of the organization matching one of the keys
func (r *ContactIdentityRepository) FindByKeys(orgID uuid.UUID, keys []string) ([]models.ContactIdentity, error) {
	if len(keys) == 0 {
		return []models.ContactIdentity{}, nil
	}
	var identities []models.ContactIdentity
	err := r.db.Where("organization_id = ? AND identity_key IN ?", orgID, keys).
		Order("created_at ASC").
		Find(&identities).Error
	if err != nil {
		return nil, err
	}
	return identities, nil
}

// ListByContact lists identity keys of a contact
func (r *ContactIdentityRepository) ListByContact(orgID, contactID uuid.UUID) ([]models.ContactIdentity, error) {
	var identities []models.ContactIdentity
	err := r.db.Where("organization_id = ? AND contact_id = ?", orgID, contactID).
		Order("created_at ASC").
		Find(&identities).Error
	if err != nil {
		return nil, err
	}
	return identities, nil
}

// Touch records that the identity was just seen on its channel
func (r *ContactIdentityRepository) Touch(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.ContactIdentity{}).Where("id = ?", id).Update("last_seen_at", at).Error
}

// Delete removes an identity key of an organization
func (r *ContactIdentityRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.ContactIdentity{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
