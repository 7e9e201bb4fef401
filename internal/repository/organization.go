package repository

import (
	"strings"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository stores tenants and their jsonb settings
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create inserts a tenant. Slugs are stored lowercased.
func (r *OrganizationRepository) Create(org *models.Organization) error {
	org.Slug = strings.ToLower(strings.TrimSpace(org.Slug))
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by its case-insensitive slug
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "slug = ?", strings.ToLower(strings.TrimSpace(slug))).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByInstagramPageID finds the organization that connected the given Instagram page.
// Instagram webhooks carry no tenant, so the page id in settings is the only route to one.
func (r *OrganizationRepository) GetByInstagramPageID(pageID string) (*models.Organization, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var org models.Organization
	err := r.db.Where("settings->>'instagram_page_id' = ?", pageID).
		Order("created_at ASC").
		First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update writes the name and settings. The slug is immutable once created.
func (r *OrganizationRepository) Update(org *models.Organization) error {
	result := r.db.Model(&models.Organization{}).
		Where("id = ?", org.ID).
		Select("name", "settings", "updated_at").
		Updates(org)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
