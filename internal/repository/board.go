package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardRepository handles database operations for boards
type BoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func preloadOrderedStages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create creates a board together with any stages attached to it
func (r *BoardRepository) Create(board *models.Board) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if board.IsDefault {
			if err := tx.Model(&models.Board{}).
				Where("organization_id = ? AND is_default = ?", board.OrganizationID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(board).Error
	})
}

// GetByID retrieves a board of an organization with its stages in order
func (r *BoardRepository) GetByID(orgID, id uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := r.db.Preload("Stages", preloadOrderedStages).
		First(&board, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// GetDefault returns the organization's default board, falling back to the oldest board
func (r *BoardRepository) GetDefault(orgID uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := r.db.Preload("Stages", preloadOrderedStages).
		Where("organization_id = ?", orgID).
		Order("is_default DESC").Order("created_at ASC").
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// ListByOrganization lists all boards of an organization
func (r *BoardRepository) ListByOrganization(orgID uuid.UUID) ([]models.Board, error) {
	var boards []models.Board
	err := r.db.Preload("Stages", preloadOrderedStages).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// Update updates board columns, clearing the previous default when this board becomes default
func (r *BoardRepository) Update(board *models.Board) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if board.IsDefault {
			if err := tx.Model(&models.Board{}).
				Where("organization_id = ? AND is_default = ? AND id <> ?", board.OrganizationID, true, board.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(board).Select("name", "description", "is_default").Updates(board).Error
	})
}

// Delete deletes a board; stages cascade and the board's deals are removed with it
func (r *BoardRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ? AND organization_id = ?", id, orgID).Delete(&models.Deal{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Board{}, "id = ? AND organization_id = ?", id, orgID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
