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

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	boards    repository.BoardRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, boards repository.BoardRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		boards:    boards,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Slug string `json:"slug" validate:"required,max=100"`
}

// OrganizationSettingsRequest carries the settings to change; nil fields are kept
type OrganizationSettingsRequest struct {
	AutoCreateDeals    *bool      `json:"auto_create_deals,omitempty"`
	DefaultBoardID     *uuid.UUID `json:"default_board_id,omitempty"`
	InstagramPageID    *string    `json:"instagram_page_id,omitempty" validate:"omitempty,max=64"`
	DefaultCountryCode *string    `json:"default_country_code,omitempty" validate:"omitempty,numeric,max=3"`
	ChatwootAccountID  *int64     `json:"chatwoot_account_id,omitempty" validate:"omitempty,min=0"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name     *string                      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Settings *OrganizationSettingsRequest `json:"settings,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID                   `json:"id"`
	Name      string                      `json:"name"`
	Slug      string                      `json:"slug"`
	Settings  models.OrganizationSettings `json:"settings"`
	CreatedAt string                      `json:"created_at"`
	UpdatedAt string                      `json:"updated_at"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name: strings.TrimSpace(req.Name),
		Slug: slug,
	}
	if err := s.repo.Create(org); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetBySlug retrieves an organization by slug
func (s *OrganizationService) GetBySlug(slug string) (*OrganizationResponse, error) {
	org, err := s.repo.GetBySlug(strings.ToLower(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// Update updates the name and settings of an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Settings != nil {
		if err := s.validator.Struct(req.Settings); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.Name != nil {
		org.Name = strings.TrimSpace(*req.Name)
	}
	if st := req.Settings; st != nil {
		if st.AutoCreateDeals != nil {
			org.Settings.AutoCreateDeals = *st.AutoCreateDeals
		}
		if st.DefaultBoardID != nil {
			if *st.DefaultBoardID == uuid.Nil {
				org.Settings.DefaultBoardID = nil
			} else {
				if _, err := s.boards.GetByID(id, *st.DefaultBoardID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return nil, apperrors.ErrBoardNotFound
					}
					return nil, fmt.Errorf("failed to get board: %w", err)
				}
				boardID := *st.DefaultBoardID
				org.Settings.DefaultBoardID = &boardID
			}
		}
		if st.InstagramPageID != nil {
			org.Settings.InstagramPageID = strings.TrimSpace(*st.InstagramPageID)
		}
		if st.DefaultCountryCode != nil {
			org.Settings.DefaultCountryCode = *st.DefaultCountryCode
		}
		if st.ChatwootAccountID != nil {
			org.Settings.ChatwootAccountID = *st.ChatwootAccountID
		}
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		Settings:  org.Settings,
		CreatedAt: formatTime(org.CreatedAt),
		UpdatedAt: formatTime(org.UpdatedAt),
	}
}
