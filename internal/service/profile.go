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

// ProfileService handles business logic for profiles
type ProfileService struct {
	repo      repository.ProfileRepositoryInterface
	validator *validator.Validate
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepositoryInterface, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProfileRequest provisions a profile for an auth provider user
type CreateProfileRequest struct {
	ID             uuid.UUID   `json:"id" validate:"required"`
	OrganizationID *uuid.UUID  `json:"organization_id,omitempty"`
	Email          string      `json:"email" validate:"required,email,max=255"`
	FullName       string      `json:"full_name" validate:"max=200"`
	Role           models.Role `json:"role" validate:"omitempty,oneof=admin manager seller"`
}

// UpdateRoleRequest changes the role of a profile
type UpdateRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=admin manager seller" example:"manager"`
}

// ProfileResponse represents the response for profile operations
type ProfileResponse struct {
	ID             uuid.UUID   `json:"id"`
	OrganizationID *uuid.UUID  `json:"organization_id,omitempty"`
	Email          string      `json:"email"`
	FullName       string      `json:"full_name"`
	Role           models.Role `json:"role"`
	Active         bool        `json:"active"`
	AvatarURL      string      `json:"avatar_url,omitempty"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

// ProfileListResponse represents a paginated list of profiles
type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create provisions a profile
func (s *ProfileService) Create(req *CreateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleSeller
	}
	profile := &models.Profile{
		OrganizationID: req.OrganizationID,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:       req.FullName,
		Role:           role,
		Active:         true,
	}
	profile.ID = req.ID

	if err := s.repo.Create(profile); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("profile", "with this email")
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return s.toResponse(profile), nil
}

// GetByID retrieves a profile by ID
func (s *ProfileService) GetByID(id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return s.toResponse(profile), nil
}

// List retrieves the members of an organization with pagination
func (s *ProfileService) List(orgID uuid.UUID, page, pageSize int) (*ProfileListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	profiles, total, err := s.repo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *s.toResponse(&profiles[i])
	}
	return &ProfileListResponse{
		Profiles: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateRole changes the role of a member of the organization. Admins cannot demote themselves
// so an organization always keeps the admin performing the change.
func (s *ProfileService) UpdateRole(orgID, actorID, id uuid.UUID, req *UpdateRoleRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	profile, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.OrganizationID == nil || *profile.OrganizationID != orgID {
		return nil, apperrors.ErrProfileNotFound
	}
	if profile.ID == actorID && req.Role != models.RoleAdmin {
		return nil, apperrors.NewAuthorizationError("admins cannot demote themselves")
	}

	profile.Role = req.Role
	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.toResponse(profile), nil
}

func (s *ProfileService) toResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Email:          p.Email,
		FullName:       p.FullName,
		Role:           p.Role,
		Active:         p.Active,
		AvatarURL:      p.AvatarURL,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}
