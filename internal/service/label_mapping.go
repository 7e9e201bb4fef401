package service

import (
	"errors"
	"fmt"
	"strings"

	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabelMappingService manages Chatwoot label to stage mappings
type LabelMappingService struct {
	repo      repository.LabelMappingRepositoryInterface
	stages    repository.StageRepositoryInterface
	validator *validator.Validate
}

// NewLabelMappingService creates a new label mapping service
func NewLabelMappingService(repo repository.LabelMappingRepositoryInterface, stages repository.StageRepositoryInterface, validator *validator.Validate) *LabelMappingService {
	return &LabelMappingService{
		repo:      repo,
		stages:    stages,
		validator: validator,
	}
}

// CreateLabelMappingRequest represents the request to map a label to a stage
type CreateLabelMappingRequest struct {
	ChatwootLabel string    `json:"chatwoot_label" validate:"required,min=1,max=100" example:"proposal-sent"`
	StageID       uuid.UUID `json:"stage_id" validate:"required"`
}

// LabelMappingResponse represents a label mapping
type LabelMappingResponse struct {
	ID            uuid.UUID `json:"id"`
	ChatwootLabel string    `json:"chatwoot_label"`
	StageID       uuid.UUID `json:"stage_id"`
	CreatedAt     string    `json:"created_at"`
}

// Create maps a label to a stage of the organization
func (s *LabelMappingService) Create(orgID uuid.UUID, req *CreateLabelMappingRequest) (*LabelMappingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.stages.GetByID(orgID, req.StageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}

	mapping := &models.LabelMapping{
		OrganizationID: orgID,
		ChatwootLabel:  strings.ToLower(strings.TrimSpace(req.ChatwootLabel)),
		StageID:        req.StageID,
	}
	if err := s.repo.Create(mapping); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrLabelMappingExists
		}
		return nil, fmt.Errorf("failed to create label mapping: %w", err)
	}
	return toLabelMappingResponse(mapping), nil
}

// List lists the label mappings of an organization
func (s *LabelMappingService) List(orgID uuid.UUID) ([]LabelMappingResponse, error) {
	mappings, err := s.repo.List(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list label mappings: %w", err)
	}
	responses := make([]LabelMappingResponse, len(mappings))
	for i := range mappings {
		responses[i] = *toLabelMappingResponse(&mappings[i])
	}
	return responses, nil
}

// Delete deletes a label mapping
func (s *LabelMappingService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLabelMappingNotFound
		}
		return fmt.Errorf("failed to delete label mapping: %w", err)
	}
	return nil
}

func toLabelMappingResponse(m *models.LabelMapping) *LabelMappingResponse {
	return &LabelMappingResponse{
		ID:            m.ID,
		ChatwootLabel: m.ChatwootLabel,
		StageID:       m.StageID,
		CreatedAt:     formatTime(m.CreatedAt),
	}
}
