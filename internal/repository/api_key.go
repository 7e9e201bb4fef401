package repository

import (
	"time"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIKeyRepository handles public API keys
type APIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new API key repository
func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// Create creates a new API key
func (r *APIKeyRepository) Create(key *models.APIKey) error {
	return r.db.Create(key).Error
}

// GetByPrefix retrieves a key by its public prefix
func (r *APIKeyRepository) GetByPrefix(prefix string) (*models.APIKey, error) {
	var key models.APIKey
	err := r.db.First(&key, "prefix = ?", prefix).Error
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// ListByOrganization lists the keys of an organization
func (r *APIKeyRepository) ListByOrganization(orgID uuid.UUID) ([]models.APIKey, error) {
	var keys []models.APIKey
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Revoke marks a key of an organization as revoked
func (r *APIKeyRepository) Revoke(orgID, id uuid.UUID, at time.Time) error {
	res := r.db.Model(&models.APIKey{}).
		Where("id = ? AND organization_id = ? AND revoked_at IS NULL", id, orgID).
		Update("revoked_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TouchLastUsed records the last successful use of a key
func (r *APIKeyRepository) TouchLastUsed(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.APIKey{}).Where("id = ?", id).Update("last_used_at", at).Error
}
