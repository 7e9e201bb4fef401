package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company of an organization
func (r *CompanyRepository) GetByID(orgID, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Search searches companies by name, document or website
func (r *CompanyRepository) Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	searchQuery := r.db.Model(&models.Company{}).Where("organization_id = ?", orgID)
	if query != "" {
		like := containsPattern(query)
		searchQuery = searchQuery.Where(`(name ILIKE ? ESCAPE '\' OR document ILIKE ? ESCAPE '\' OR website ILIKE ? ESCAPE '\')`, like, like, like)
	}

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Order("name ASC").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Omit("Contacts").Save(company).Error
}

// Delete deletes a company; contacts keep existing with company_id cleared
func (r *CompanyRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.Company{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
