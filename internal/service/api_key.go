package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/auth"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIKeyService manages public API keys of an organization
type APIKeyService struct {
	repo      repository.APIKeyRepositoryInterface
	validator *validator.Validate
	generate  func() (*auth.GeneratedAPIKey, error)
	now       func() time.Time
}

// NewAPIKeyService creates a new API key service
func NewAPIKeyService(repo repository.APIKeyRepositoryInterface, validator *validator.Validate) *APIKeyService {
	return &APIKeyService{
		repo:      repo,
		validator: validator,
		generate:  auth.GenerateAPIKey,
		now:       time.Now,
	}
}

// CreateAPIKeyRequest represents the request to issue an API key
type CreateAPIKeyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Website form"`
}

// APIKeyResponse represents an API key without its secret
type APIKeyResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Prefix     string    `json:"prefix"`
	LastUsedAt *string   `json:"last_used_at,omitempty"`
	RevokedAt  *string   `json:"revoked_at,omitempty"`
	CreatedAt  string    `json:"created_at"`
}

// CreatedAPIKeyResponse carries the plain key. It is returned only once, at creation.
type CreatedAPIKeyResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}

// Create issues a new API key
func (s *APIKeyService) Create(orgID uuid.UUID, req *CreateAPIKeyRequest) (*CreatedAPIKeyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	generated, err := s.generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}

	key := &models.APIKey{
		Name:    strings.TrimSpace(req.Name),
		Prefix:  generated.Prefix,
		KeyHash: generated.Hash,
	}
	key.OrganizationID = orgID
	if err := s.repo.Create(key); err != nil {
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}

	return &CreatedAPIKeyResponse{
		APIKeyResponse: *toAPIKeyResponse(key),
		Key:            generated.Plain,
	}, nil
}

// List lists the API keys of an organization
func (s *APIKeyService) List(orgID uuid.UUID) ([]APIKeyResponse, error) {
	keys, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	responses := make([]APIKeyResponse, len(keys))
	for i := range keys {
		responses[i] = *toAPIKeyResponse(&keys[i])
	}
	return responses, nil
}

// Revoke revokes an API key; revoked keys are kept for auditing
func (s *APIKeyService) Revoke(orgID, id uuid.UUID) error {
	if err := s.repo.Revoke(orgID, id, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAPIKeyNotFound
		}
		return fmt.Errorf("failed to revoke api key: %w", err)
	}
	return nil
}

func toAPIKeyResponse(k *models.APIKey) *APIKeyResponse {
	return &APIKeyResponse{
		ID:         k.ID,
		Name:       k.Name,
		Prefix:     k.Prefix,
		LastUsedAt: formatTimePtr(k.LastUsedAt),
		RevokedAt:  formatTimePtr(k.RevokedAt),
		CreatedAt:  formatTime(k.CreatedAt),
	}
}
