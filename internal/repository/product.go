package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID retrieves a product of an organization
func (r *ProductRepository) GetByID(orgID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetBySKU retrieves a product of an organization by SKU
func (r *ProductRepository) GetBySKU(orgID uuid.UUID, sku string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "organization_id = ? AND sku = ?", orgID, sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Search searches products by name or SKU within an organization
func (r *ProductRepository) Search(orgID uuid.UUID, query string, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	searchQuery := r.db.Model(&models.Product{}).Where("organization_id = ?", orgID)
	if query != "" {
		like := containsPattern(query)
		searchQuery = searchQuery.Where(`(name ILIKE ? ESCAPE '\' OR sku ILIKE ? ESCAPE '\')`, like, like)
	}

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Order("name ASC").Limit(limit).Offset(offset).Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// Update updates a product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete deletes a product of an organization
func (r *ProductRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.Product{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
