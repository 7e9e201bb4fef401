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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService handles business logic for the product catalog
type ProductService struct {
	repo      repository.ProductRepositoryInterface
	validator *validator.Validate
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepositoryInterface, validator *validator.Validate) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255" example:"Consulting hour"`
	SKU         string          `json:"sku,omitempty" validate:"max=100" example:"CONS-001"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"250.00"`
	Active      *bool           `json:"active,omitempty"`
}

// UpdateProductRequest represents the request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	SKU         *string          `json:"sku,omitempty" validate:"omitempty,max=100"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
	Active      *bool            `json:"active,omitempty"`
}

// ProductResponse represents a product
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ProductListResponse represents a paginated list of products
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a product. SKUs are unique inside an organization.
func (s *ProductService) Create(orgID uuid.UUID, req *CreateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price", "must not be negative")
	}

	product := &models.Product{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		SKU:            strings.TrimSpace(req.SKU),
		Description:    req.Description,
		Price:          req.Price.Round(2),
		Active:         true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.checkSKU(orgID, uuid.Nil, product.SKU); err != nil {
		return nil, err
	}
	if err := s.repo.Create(product); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrProductExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toProductResponse(product), nil
}

// GetByID retrieves a product
func (s *ProductService) GetByID(orgID, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.getProduct(orgID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Search searches products by name or SKU
func (s *ProductService) Search(orgID uuid.UUID, query string, page, pageSize int) (*ProductListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	products, total, err := s.repo.Search(orgID, strings.TrimSpace(query), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *toProductResponse(&products[i])
	}
	return &ProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a product. Existing deal items keep their unit price.
func (s *ProductService) Update(orgID, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.getProduct(orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.SKU != nil {
		sku := strings.TrimSpace(*req.SKU)
		if sku != product.SKU {
			if err := s.checkSKU(orgID, product.ID, sku); err != nil {
				return nil, err
			}
		}
		product.SKU = sku
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.NewValidationError("price", "must not be negative")
		}
		product.Price = req.Price.Round(2)
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.repo.Update(product); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrProductExists
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return toProductResponse(product), nil
}

// Delete deletes a product; deal items referencing it keep their name and price
func (s *ProductService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) checkSKU(orgID, selfID uuid.UUID, sku string) error {
	if sku == "" {
		return nil
	}
	existing, err := s.repo.GetBySKU(orgID, sku)
	if err == nil && existing.ID != selfID {
		return apperrors.ErrProductExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check product SKU: %w", err)
	}
	return nil
}

func (s *ProductService) getProduct(orgID, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func toProductResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}
