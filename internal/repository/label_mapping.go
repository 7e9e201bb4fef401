package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabelMappingRepository handles Chatwoot label to stage mappings
type LabelMappingRepository struct {
	db *gorm.DB
}

// NewLabelMappingRepository creates a new label mapping repository
func NewLabelMappingRepository(db *gorm.DB) *LabelMappingRepository {
	return &LabelMappingRepository{db: db}
}

// Create creates a new mapping
func (r *LabelMappingRepository) Create(mapping *models.LabelMapping) error {
	return r.db.Create(mapping).Error
}

// GetByLabels returns the mappings of an organization for the given labels
func (r *LabelMappingRepository) GetByLabels(orgID uuid.UUID, labels []string) ([]models.LabelMapping, error) {
	if len(labels) == 0 {
		return []models.LabelMapping{}, nil
	}
	var mappings []models.LabelMapping
	err := r.db.Where("organization_id = ? AND chatwoot_label IN ?", orgID, labels).Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// List lists all mappings of an organization
func (r *LabelMappingRepository) List(orgID uuid.UUID) ([]models.LabelMapping, error) {
	var mappings []models.LabelMapping
	err := r.db.Where("organization_id = ?", orgID).Order("chatwoot_label ASC").Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

// Delete deletes a mapping of an organization
func (r *LabelMappingRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.LabelMapping{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
