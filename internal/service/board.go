package service

import (
	"errors"
	"fmt"
	"strings"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultStageNames are created for a board created without stages
var DefaultStageNames = []string{"Lead", "Contacted", "Proposal", "Negotiation", "Closed"}

// BoardService handles business logic for boards and their stages
type BoardService struct {
	boards    repository.BoardRepositoryInterface
	stages    repository.StageRepositoryInterface
	validator *validator.Validate
}

// NewBoardService creates a new board service
func NewBoardService(boards repository.BoardRepositoryInterface, stages repository.StageRepositoryInterface, validator *validator.Validate) *BoardService {
	return &BoardService{
		boards:    boards,
		stages:    stages,
		validator: validator,
	}
}

// StageRequest describes a stage to create
type StageRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100" example:"Proposal"`
	Color string `json:"color,omitempty" validate:"omitempty,max=20" example:"#3b82f6"`
}

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	Name        string         `json:"name" validate:"required,min=1,max=200" example:"Sales"`
	Description string         `json:"description,omitempty"`
	IsDefault   bool           `json:"is_default"`
	Stages      []StageRequest `json:"stages,omitempty" validate:"omitempty,max=30,dive"`
}

// UpdateBoardRequest represents the request to update a board
type UpdateBoardRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	IsDefault   *bool   `json:"is_default,omitempty"`
}

// UpdateStageRequest represents the request to update a stage
type UpdateStageRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=20"`
}

// ReorderStagesRequest lists every stage of a board in the new order
type ReorderStagesRequest struct {
	StageIDs []uuid.UUID `json:"stage_ids" validate:"required,min=1"`
}

// StageResponse represents a stage
type StageResponse struct {
	ID       uuid.UUID `json:"id"`
	BoardID  uuid.UUID `json:"board_id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
	Color    string    `json:"color,omitempty"`
}

// BoardResponse represents a board with its ordered stages
type BoardResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsDefault   bool            `json:"is_default"`
	Stages      []StageResponse `json:"stages"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// Create creates a board; boards created without stages get DefaultStageNames
func (s *BoardService) Create(orgID uuid.UUID, req *CreateBoardRequest) (*BoardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	stageReqs := req.Stages
	if len(stageReqs) == 0 {
		for _, name := range DefaultStageNames {
			stageReqs = append(stageReqs, StageRequest{Name: name})
		}
	}

	board := &models.Board{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsDefault:   req.IsDefault,
	}
	board.OrganizationID = orgID
	for i, st := range stageReqs {
		stage := models.Stage{
			Name:     strings.TrimSpace(st.Name),
			Position: i,
			Color:    st.Color,
		}
		stage.OrganizationID = orgID
		board.Stages = append(board.Stages, stage)
	}

	if err := s.boards.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return toBoardResponse(board), nil
}

// GetByID retrieves a board with its stages
func (s *BoardService) GetByID(orgID, id uuid.UUID) (*BoardResponse, error) {
	board, err := s.getBoard(orgID, id)
	if err != nil {
		return nil, err
	}
	return toBoardResponse(board), nil
}

// List lists the boards of an organization
func (s *BoardService) List(orgID uuid.UUID) ([]BoardResponse, error) {
	boards, err := s.boards.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	responses := make([]BoardResponse, len(boards))
	for i := range boards {
		responses[i] = *toBoardResponse(&boards[i])
	}
	return responses, nil
}

// Update updates a board
func (s *BoardService) Update(orgID, id uuid.UUID, req *UpdateBoardRequest) (*BoardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	board, err := s.getBoard(orgID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		board.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		board.Description = *req.Description
	}
	if req.IsDefault != nil {
		board.IsDefault = *req.IsDefault
	}

	if err := s.boards.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}
	return toBoardResponse(board), nil
}

// Delete deletes a board with its stages and deals
func (s *BoardService) Delete(orgID, id uuid.UUID) error {
	if err := s.boards.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBoardNotFound
		}
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}

// CreateStage appends a stage to a board
func (s *BoardService) CreateStage(orgID, boardID uuid.UUID, req *StageRequest) (*StageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.getBoard(orgID, boardID); err != nil {
		return nil, err
	}

	position, err := s.stages.NextPosition(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stage position: %w", err)
	}

	stage := &models.Stage{
		BoardID:  boardID,
		Name:     strings.TrimSpace(req.Name),
		Position: position,
		Color:    req.Color,
	}
	stage.OrganizationID = orgID
	if err := s.stages.Create(stage); err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}
	return toStageResponse(stage), nil
}

// UpdateStage renames or recolors a stage
func (s *BoardService) UpdateStage(orgID, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	stage, err := s.getStage(orgID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		stage.Name = strings.TrimSpace(*req.Name)
	}
	if req.Color != nil {
		stage.Color = *req.Color
	}

	if err := s.stages.Update(stage); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	return toStageResponse(stage), nil
}

// DeleteStage deletes a stage that holds no deals
func (s *BoardService) DeleteStage(orgID, id uuid.UUID) error {
	stage, err := s.getStage(orgID, id)
	if err != nil {
		return err
	}

	count, err := s.stages.CountDeals(stage.ID)
	if err != nil {
		return fmt.Errorf("failed to count stage deals: %w", err)
	}
	if count > 0 {
		return apperrors.ErrStageNotEmpty
	}

	if err := s.stages.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStageNotFound
		}
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	return nil
}

// ReorderStages rewrites stage positions. The request must list every stage of the board once.
func (s *BoardService) ReorderStages(orgID, boardID uuid.UUID, req *ReorderStagesRequest) ([]StageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.getBoard(orgID, boardID); err != nil {
		return nil, err
	}

	current, err := s.stages.ListByBoard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	if len(current) != len(req.StageIDs) {
		return nil, apperrors.NewValidationError("stage_ids", "must list every stage of the board exactly once")
	}
	known := make(map[uuid.UUID]bool, len(current))
	for _, st := range current {
		known[st.ID] = true
	}
	for _, id := range req.StageIDs {
		if !known[id] {
			return nil, apperrors.NewValidationError("stage_ids", "must list every stage of the board exactly once")
		}
		delete(known, id)
	}

	if err := s.stages.UpdatePositions(boardID, req.StageIDs); err != nil {
		return nil, fmt.Errorf("failed to reorder stages: %w", err)
	}

	stages, err := s.stages.ListByBoard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	responses := make([]StageResponse, len(stages))
	for i := range stages {
		responses[i] = *toStageResponse(&stages[i])
	}
	return responses, nil
}

func (s *BoardService) getBoard(orgID, id uuid.UUID) (*models.Board, error) {
	board, err := s.boards.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return board, nil
}

func (s *BoardService) getStage(orgID, id uuid.UUID) (*models.Stage, error) {
	stage, err := s.stages.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return stage, nil
}

func toStageResponse(st *models.Stage) *StageResponse {
	return &StageResponse{
		ID:       st.ID,
		BoardID:  st.BoardID,
		Name:     st.Name,
		Position: st.Position,
		Color:    st.Color,
	}
}

func toBoardResponse(b *models.Board) *BoardResponse {
	stages := make([]StageResponse, len(b.Stages))
	for i := range b.Stages {
		stages[i] = *toStageResponse(&b.Stages[i])
	}
	return &BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		IsDefault:   b.IsDefault,
		Stages:      stages,
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
}
