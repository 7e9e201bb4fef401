package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DealFilter narrows deal listings
type DealFilter struct {
	BoardID   *uuid.UUID
	StageID   *uuid.UUID
	ContactID *uuid.UUID
	OwnerID   *uuid.UUID
	Status    models.DealStatus
	Query     string
}

// DealRepository handles database operations for deals and their items
type DealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// Create creates a new deal
func (r *DealRepository) Create(deal *models.Deal) error {
	return r.db.Create(deal).Error
}

// GetByID retrieves a deal of an organization with its items
func (r *DealRepository) GetByID(orgID, id uuid.UUID) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&deal, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) filtered(orgID uuid.UUID, f DealFilter) *gorm.DB {
	q := r.db.Model(&models.Deal{}).Where("organization_id = ?", orgID)
	if f.BoardID != nil {
		q = q.Where("board_id = ?", *f.BoardID)
	}
	if f.StageID != nil {
		q = q.Where("stage_id = ?", *f.StageID)
	}
	if f.ContactID != nil {
		q = q.Where("contact_id = ?", *f.ContactID)
	}
	if f.OwnerID != nil {
		q = q.Where("owner_id = ?", *f.OwnerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Query != "" {
		q = q.Where(`title ILIKE ? ESCAPE '\'`, containsPattern(f.Query))
	}
	return q
}

// List retrieves deals matching the filter with pagination, ordered by stage position
func (r *DealRepository) List(orgID uuid.UUID, filter DealFilter, limit, offset int) ([]models.Deal, int64, error) {
	var deals []models.Deal
	var total int64

	if err := r.filtered(orgID, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(orgID, filter).
		Order("position ASC").Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&deals).Error
	if err != nil {
		return nil, 0, err
	}

	return deals, total, nil
}

// ListAfter returns up to limit+1 deals after the cursor, newest first
func (r *DealRepository) ListAfter(orgID uuid.UUID, cursor *Cursor, limit int) ([]models.Deal, error) {
	var deals []models.Deal
	q := r.db.Model(&models.Deal{}).Where("organization_id = ?", orgID)
	if err := applyCursor(q, "deals", cursor, limit).Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// NextPosition returns the position after the last deal of a stage
func (r *DealRepository) NextPosition(stageID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.Deal{}).Where("stage_id = ?", stageID).
		Select("COALESCE(MAX(position), -1)").Row().Scan(&max)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// Update updates a deal without touching its items
func (r *DealRepository) Update(deal *models.Deal) error {
	return r.db.Omit("Items").Save(deal).Error
}

// Delete deletes a deal of an organization
func (r *DealRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.Deal{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateItem adds an item to a deal
func (r *DealRepository) CreateItem(item *models.DealItem) error {
	return r.db.Create(item).Error
}

// GetItem retrieves an item of a deal
func (r *DealRepository) GetItem(dealID, itemID uuid.UUID) (*models.DealItem, error) {
	var item models.DealItem
	err := r.db.First(&item, "id = ? AND deal_id = ?", itemID, dealID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem updates a deal item
func (r *DealRepository) UpdateItem(item *models.DealItem) error {
	return r.db.Save(item).Error
}

// DeleteItem removes an item from a deal
func (r *DealRepository) DeleteItem(dealID, itemID uuid.UUID) error {
	res := r.db.Delete(&models.DealItem{}, "id = ? AND deal_id = ?", itemID, dealID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListItems lists the items of a deal
func (r *DealRepository) ListItems(dealID uuid.UUID) ([]models.DealItem, error) {
	var items []models.DealItem
	err := r.db.Where("deal_id = ?", dealID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
