package service

import (
	"errors"
	"fmt"
	"strings"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/messaging"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255" example:"Acme Ltda"`
	Document string `json:"document,omitempty" validate:"max=30" example:"12.345.678/0001-90"`
	Website  string `json:"website,omitempty" validate:"omitempty,url,max=255"`
	Phone    string `json:"phone,omitempty" validate:"max=30"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Document *string `json:"document,omitempty" validate:"omitempty,max=30"`
	Website  *string `json:"website,omitempty" validate:"omitempty,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// CompanyResponse represents a company
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Website   string    `json:"website,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a company
func (s *CompanyService) Create(orgID uuid.UUID, req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company := &models.Company{
		Name:     strings.TrimSpace(req.Name),
		Document: strings.TrimSpace(req.Document),
		Website:  req.Website,
	}
	company.OrganizationID = orgID
	if err := applyCompanyContact(company, req.Phone, req.Email); err != nil {
		return nil, err
	}

	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// GetByID retrieves a company
func (s *CompanyService) GetByID(orgID, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.getCompany(orgID, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Search searches companies by name or document
func (s *CompanyService) Search(orgID uuid.UUID, query string, page, pageSize int) (*CompanyListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	companies, total, err := s.repo.Search(orgID, strings.TrimSpace(query), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = *toCompanyResponse(&companies[i])
	}
	return &CompanyListResponse{
		Companies: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a company
func (s *CompanyService) Update(orgID, id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.getCompany(orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.Document != nil {
		company.Document = strings.TrimSpace(*req.Document)
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	phone, email := company.Phone, company.Email
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if err := applyCompanyContact(company, phone, email); err != nil {
		return nil, err
	}

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// Delete deletes a company; its contacts keep existing without a company
func (s *CompanyService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *CompanyService) getCompany(orgID, id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// applyCompanyContact stores phone and e-mail in the same canonical form contacts use
func applyCompanyContact(company *models.Company, phone, email string) error {
	company.Phone = ""
	if strings.TrimSpace(phone) != "" {
		e164, err := messaging.NormalizePhone(phone, messaging.DefaultCountryCode)
		if err != nil {
			return identityError("phone", err)
		}
		company.Phone = e164
	}
	company.Email = ""
	if strings.TrimSpace(email) != "" {
		normalized, err := messaging.NormalizeEmail(email)
		if err != nil {
			return identityError("email", err)
		}
		company.Email = normalized
	}
	return nil
}

func toCompanyResponse(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Website:   c.Website,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}
