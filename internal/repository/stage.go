package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageRepository handles database operations for board stages
type StageRepository struct {
	db *gorm.DB
}

// NewStageRepository creates a new stage repository
func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

// Create creates a new stage
func (r *StageRepository) Create(stage *models.Stage) error {
	return r.db.Create(stage).Error
}

// GetByID retrieves a stage of an organization
func (r *StageRepository) GetByID(orgID, id uuid.UUID) (*models.Stage, error) {
	var stage models.Stage
	err := r.db.First(&stage, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// ListByBoard lists the stages of a board ordered by position
func (r *StageRepository) ListByBoard(boardID uuid.UUID) ([]models.Stage, error) {
	var stages []models.Stage
	err := r.db.Where("board_id = ?", boardID).Order("position ASC").Find(&stages).Error
	if err != nil {
		return nil, err
	}
	return stages, nil
}

// FirstStage returns the left-most stage of a board
func (r *StageRepository) FirstStage(boardID uuid.UUID) (*models.Stage, error) {
	var stage models.Stage
	err := r.db.Where("board_id = ?", boardID).Order("position ASC").First(&stage).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// NextPosition returns the position after the last stage of a board
func (r *StageRepository) NextPosition(boardID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.Stage{}).Where("board_id = ?", boardID).
		Select("COALESCE(MAX(position), -1)").Row().Scan(&max)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// Update updates a stage
func (r *StageRepository) Update(stage *models.Stage) error {
	return r.db.Save(stage).Error
}

// CountDeals counts the deals currently in a stage
func (r *StageRepository) CountDeals(stageID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Deal{}).Where("stage_id = ?", stageID).Count(&count).Error
	return count, err
}

// Delete deletes a stage of an organization
func (r *StageRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.Stage{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePositions rewrites stage positions of a board to match orderedIDs
func (r *StageRepository) UpdatePositions(boardID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			res := tx.Model(&models.Stage{}).
				Where("id = ? AND board_id = ?", id, boardID).
				Update("position", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
