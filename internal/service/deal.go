package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DealService handles business logic for deals and deal items
type DealService struct {
	deals     repository.DealRepositoryInterface
	boards    repository.BoardRepositoryInterface
	stages    repository.StageRepositoryInterface
	contacts  repository.ContactRepositoryInterface
	companies repository.CompanyRepositoryInterface
	products  repository.ProductRepositoryInterface
	notifier  Notifier
	validator *validator.Validate
	now       func() time.Time
}

// DealDependencies groups the repositories a DealService needs
type DealDependencies struct {
	Deals     repository.DealRepositoryInterface
	Boards    repository.BoardRepositoryInterface
	Stages    repository.StageRepositoryInterface
	Contacts  repository.ContactRepositoryInterface
	Companies repository.CompanyRepositoryInterface
	Products  repository.ProductRepositoryInterface
	Notifier  Notifier
}

// NewDealService creates a new deal service
func NewDealService(deps DealDependencies, validator *validator.Validate) *DealService {
	return &DealService{
		deals:     deps.Deals,
		boards:    deps.Boards,
		stages:    deps.Stages,
		contacts:  deps.Contacts,
		companies: deps.Companies,
		products:  deps.Products,
		notifier:  deps.Notifier,
		validator: validator,
		now:       time.Now,
	}
}

// CreateDealRequest represents the request to create a deal. Without a board the default board
// is used; without a stage the deal lands on the board's first stage.
type CreateDealRequest struct {
	Title     string           `json:"title" validate:"required,min=1,max=255" example:"Website redesign"`
	BoardID   *uuid.UUID       `json:"board_id,omitempty"`
	StageID   *uuid.UUID       `json:"stage_id,omitempty"`
	ContactID *uuid.UUID       `json:"contact_id,omitempty"`
	CompanyID *uuid.UUID       `json:"company_id,omitempty"`
	OwnerID   *uuid.UUID       `json:"owner_id,omitempty"`
	Value     *decimal.Decimal `json:"value,omitempty" swaggertype:"string" example:"1500.00"`
	Currency  string           `json:"currency,omitempty" validate:"omitempty,len=3,uppercase" example:"BRL"`
	Notes     string           `json:"notes,omitempty"`
}

// UpdateDealRequest represents the request to update a deal. Value is ignored when the deal has items.
type UpdateDealRequest struct {
	Title     *string          `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	ContactID *uuid.UUID       `json:"contact_id,omitempty"`
	CompanyID *uuid.UUID       `json:"company_id,omitempty"`
	OwnerID   *uuid.UUID       `json:"owner_id,omitempty"`
	Value     *decimal.Decimal `json:"value,omitempty" swaggertype:"string"`
	Currency  *string          `json:"currency,omitempty" validate:"omitempty,len=3,uppercase"`
	Notes     *string          `json:"notes,omitempty"`
}

// MoveDealRequest moves a deal to a stage of the same board
type MoveDealRequest struct {
	StageID  uuid.UUID `json:"stage_id" validate:"required"`
	Position *int      `json:"position,omitempty" validate:"omitempty,min=0"`
}

// UpdateDealStatusRequest changes the lifecycle status of a deal
type UpdateDealStatusRequest struct {
	Status models.DealStatus `json:"status" validate:"required" example:"won"`
}

// DealItemRequest adds an item to a deal. With a product, name and unit price default to the product's.
type DealItemRequest struct {
	ProductID *uuid.UUID       `json:"product_id,omitempty"`
	Name      string           `json:"name,omitempty" validate:"max=255"`
	Quantity  decimal.Decimal  `json:"quantity" swaggertype:"string" example:"2"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"string" example:"100.00"`
	Discount  decimal.Decimal  `json:"discount" swaggertype:"string" example:"0"`
}

// UpdateDealItemRequest updates an item of a deal
type UpdateDealItemRequest struct {
	Name      *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Quantity  *decimal.Decimal `json:"quantity,omitempty" swaggertype:"string"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"string"`
	Discount  *decimal.Decimal `json:"discount,omitempty" swaggertype:"string"`
}

// DealListQuery filters and paginates deals
type DealListQuery struct {
	BoardID   *uuid.UUID
	StageID   *uuid.UUID
	ContactID *uuid.UUID
	OwnerID   *uuid.UUID
	Status    models.DealStatus
	Query     string
	Page      int
	PageSize  int
}

// DealItemResponse represents a deal item
type DealItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Discount  decimal.Decimal `json:"discount" swaggertype:"string"`
	Total     decimal.Decimal `json:"total" swaggertype:"string"`
}

// DealResponse represents a deal
type DealResponse struct {
	ID        uuid.UUID          `json:"id"`
	BoardID   uuid.UUID          `json:"board_id"`
	StageID   uuid.UUID          `json:"stage_id"`
	ContactID *uuid.UUID         `json:"contact_id,omitempty"`
	CompanyID *uuid.UUID         `json:"company_id,omitempty"`
	OwnerID   *uuid.UUID         `json:"owner_id,omitempty"`
	Title     string             `json:"title"`
	Value     decimal.Decimal    `json:"value" swaggertype:"string"`
	Currency  string             `json:"currency"`
	Status    models.DealStatus  `json:"status"`
	Position  int                `json:"position"`
	Notes     string             `json:"notes"`
	ClosedAt  *string            `json:"closed_at,omitempty"`
	Items     []DealItemResponse `json:"items,omitempty"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

// DealListResponse represents a paginated list of deals
type DealListResponse struct {
	Deals    []DealResponse `json:"deals"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new deal
func (s *DealService) Create(orgID, ownerID uuid.UUID, req *CreateDealRequest) (*DealResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	board, stage, err := s.placement(orgID, req.BoardID, req.StageID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(orgID, req.ContactID, req.CompanyID); err != nil {
		return nil, err
	}

	position, err := s.deals.NextPosition(stage.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute deal position: %w", err)
	}

	owner := req.OwnerID
	if owner == nil && ownerID != uuid.Nil {
		owner = &ownerID
	}
	deal := &models.Deal{
		BoardID:   board.ID,
		StageID:   stage.ID,
		ContactID: req.ContactID,
		CompanyID: req.CompanyID,
		OwnerID:   owner,
		Title:     strings.TrimSpace(req.Title),
		Currency:  req.Currency,
		Status:    models.DealStatusOpen,
		Position:  position,
		Notes:     req.Notes,
	}
	deal.OrganizationID = orgID
	if deal.Currency == "" {
		deal.Currency = "BRL"
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, apperrors.NewValidationError("value", "must not be negative")
		}
		deal.Value = req.Value.Round(2)
	}

	if err := s.deals.Create(deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	return toDealResponse(deal), nil
}

// CreateForContact opens a deal for a contact on the default board's first stage. Webhooks use
// it when an organization automatically creates deals for new conversations.
func (s *DealService) CreateForContact(orgID uuid.UUID, boardID *uuid.UUID, contact *models.Contact, title string) (*models.Deal, error) {
	board, stage, err := s.placement(orgID, boardID, nil)
	if err != nil {
		return nil, err
	}
	position, err := s.deals.NextPosition(stage.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute deal position: %w", err)
	}

	contactID := contact.ID
	deal := &models.Deal{
		BoardID:   board.ID,
		StageID:   stage.ID,
		ContactID: &contactID,
		CompanyID: contact.CompanyID,
		Title:     title,
		Currency:  "BRL",
		Status:    models.DealStatusOpen,
		Position:  position,
	}
	deal.OrganizationID = orgID
	if err := s.deals.Create(deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	return deal, nil
}

// GetByID retrieves a deal with its items
func (s *DealService) GetByID(orgID, id uuid.UUID) (*DealResponse, error) {
	deal, err := s.getDeal(orgID, id)
	if err != nil {
		return nil, err
	}
	return toDealResponse(deal), nil
}

// List retrieves deals with filters and pagination
func (s *DealService) List(orgID uuid.UUID, q DealListQuery) (*DealListResponse, error) {
	page, pageSize := normalizePagination(q.Page, q.PageSize)
	if q.Status != "" && !q.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	filter := repository.DealFilter{
		BoardID:   q.BoardID,
		StageID:   q.StageID,
		ContactID: q.ContactID,
		OwnerID:   q.OwnerID,
		Status:    q.Status,
		Query:     strings.TrimSpace(q.Query),
	}
	deals, total, err := s.deals.List(orgID, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	responses := make([]DealResponse, len(deals))
	for i := range deals {
		responses[i] = *toDealResponse(&deals[i])
	}
	return &DealListResponse{
		Deals:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a deal
func (s *DealService) Update(orgID, id uuid.UUID, req *UpdateDealRequest) (*DealResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	deal, err := s.getDeal(orgID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(orgID, req.ContactID, req.CompanyID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		deal.Title = strings.TrimSpace(*req.Title)
	}
	if req.ContactID != nil {
		deal.ContactID = nilIfZero(*req.ContactID)
	}
	if req.CompanyID != nil {
		deal.CompanyID = nilIfZero(*req.CompanyID)
	}
	if req.OwnerID != nil {
		deal.OwnerID = nilIfZero(*req.OwnerID)
	}
	if req.Value != nil && len(deal.Items) == 0 {
		if req.Value.IsNegative() {
			return nil, apperrors.NewValidationError("value", "must not be negative")
		}
		deal.Value = req.Value.Round(2)
	}
	if req.Currency != nil {
		deal.Currency = *req.Currency
	}
	if req.Notes != nil {
		deal.Notes = *req.Notes
	}

	if err := s.deals.Update(deal); err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}
	return toDealResponse(deal), nil
}

// Move moves a deal to another stage of its board and notifies N8N when the stage changed
func (s *DealService) Move(ctx context.Context, orgID, id uuid.UUID, req *MoveDealRequest) (*DealResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	deal, err := s.getDeal(orgID, id)
	if err != nil {
		return nil, err
	}
	stage, err := s.stages.GetByID(orgID, req.StageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	if stage.BoardID != deal.BoardID {
		return nil, apperrors.ErrStageBoardMismatch
	}

	fromStage := deal.StageID
	if req.Position != nil {
		deal.Position = *req.Position
	} else if fromStage != stage.ID {
		position, err := s.deals.NextPosition(stage.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute deal position: %w", err)
		}
		deal.Position = position
	}
	deal.StageID = stage.ID

	if err := s.deals.Update(deal); err != nil {
		return nil, fmt.Errorf("failed to move deal: %w", err)
	}

	if fromStage != stage.ID {
		s.notifyStageChange(ctx, deal, fromStage, stage)
	}
	return toDealResponse(deal), nil
}

func (s *DealService) notifyStageChange(ctx context.Context, deal *models.Deal, from uuid.UUID, to *models.Stage) {
	if s.notifier == nil {
		return
	}
	data := map[string]interface{}{
		"deal_id":       deal.ID,
		"title":         deal.Title,
		"board_id":      deal.BoardID,
		"from_stage_id": from,
		"to_stage_id":   to.ID,
		"to_stage_name": to.Name,
		"contact_id":    deal.ContactID,
		"value":         deal.Value.StringFixed(2),
	}
	if err := s.notifier.Notify(ctx, EventDealStageChanged, deal.OrganizationID, data); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("deal_id", deal.ID).Warn("Failed to notify N8N about stage change")
	}
}

// UpdateStatus changes the status of a deal; won and lost stamp closed_at, reopening clears it
func (s *DealService) UpdateStatus(orgID, id uuid.UUID, req *UpdateDealStatusRequest) (*DealResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	deal, err := s.getDeal(orgID, id)
	if err != nil {
		return nil, err
	}

	if deal.Status != req.Status {
		deal.Status = req.Status
		if req.Status.IsClosed() {
			now := s.now()
			deal.ClosedAt = &now
		} else {
			deal.ClosedAt = nil
		}
	}

	if err := s.deals.Update(deal); err != nil {
		return nil, fmt.Errorf("failed to update deal status: %w", err)
	}
	return toDealResponse(deal), nil
}

// Delete deletes a deal
func (s *DealService) Delete(orgID, id uuid.UUID) error {
	if err := s.deals.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDealNotFound
		}
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	return nil
}

// AddItem adds an item to a deal and recomputes the deal value
func (s *DealService) AddItem(orgID, dealID uuid.UUID, req *DealItemRequest) (*DealResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	deal, err := s.getDeal(orgID, dealID)
	if err != nil {
		return nil, err
	}

	item := &models.DealItem{
		DealID:    deal.ID,
		ProductID: req.ProductID,
		Name:      strings.TrimSpace(req.Name),
		Quantity:  req.Quantity,
		Discount:  req.Discount,
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.ProductID != nil {
		product, err := s.products.GetByID(orgID, *req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		if item.Name == "" {
			item.Name = product.Name
		}
		if req.UnitPrice == nil {
			item.UnitPrice = product.Price
		}
	}
	if item.Name == "" {
		return nil, apperrors.NewValidationError("name", "is required without a product")
	}
	if err := validateItemAmounts(item); err != nil {
		return nil, err
	}
	item.ComputeTotal()

	if err := s.deals.CreateItem(item); err != nil {
		return nil, fmt.Errorf("failed to create deal item: %w", err)
	}
	return s.recalculate(deal)
}

// UpdateItem updates an item and recomputes the deal value
func (s *DealService) UpdateItem(orgID, dealID, itemID uuid.UUID, req *UpdateDealItemRequest) (*DealResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	deal, err := s.getDeal(orgID, dealID)
	if err != nil {
		return nil, err
	}
	item, err := s.deals.GetItem(deal.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealItemNotFound
		}
		return nil, fmt.Errorf("failed to get deal item: %w", err)
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.Discount != nil {
		item.Discount = *req.Discount
	}
	if err := validateItemAmounts(item); err != nil {
		return nil, err
	}
	item.ComputeTotal()

	if err := s.deals.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("failed to update deal item: %w", err)
	}
	return s.recalculate(deal)
}

// RemoveItem deletes an item and recomputes the deal value
func (s *DealService) RemoveItem(orgID, dealID, itemID uuid.UUID) (*DealResponse, error) {
	deal, err := s.getDeal(orgID, dealID)
	if err != nil {
		return nil, err
	}
	if err := s.deals.DeleteItem(deal.ID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealItemNotFound
		}
		return nil, fmt.Errorf("failed to delete deal item: %w", err)
	}
	return s.recalculate(deal)
}

// recalculate reloads the items of a deal and sets the value to the sum of their totals. A deal
// whose last item was removed keeps its previous value.
func (s *DealService) recalculate(deal *models.Deal) (*DealResponse, error) {
	items, err := s.deals.ListItems(deal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deal items: %w", err)
	}
	deal.Items = items
	if len(items) > 0 {
		deal.Value = SumItemTotals(items)
		if err := s.deals.Update(deal); err != nil {
			return nil, fmt.Errorf("failed to update deal value: %w", err)
		}
	}
	return toDealResponse(deal), nil
}

// SumItemTotals adds up item totals
func SumItemTotals(items []models.DealItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum.Round(2)
}

func validateItemAmounts(item *models.DealItem) error {
	if !item.Quantity.IsPositive() {
		return apperrors.NewValidationError("quantity", "must be greater than zero")
	}
	if item.UnitPrice.IsNegative() {
		return apperrors.NewValidationError("unit_price", "must not be negative")
	}
	if item.Discount.IsNegative() {
		return apperrors.NewValidationError("discount", "must not be negative")
	}
	return nil
}

// placement picks the board and stage of a new deal
func (s *DealService) placement(orgID uuid.UUID, boardID, stageID *uuid.UUID) (*models.Board, *models.Stage, error) {
	var board *models.Board
	var err error
	if boardID != nil {
		board, err = s.boards.GetByID(orgID, *boardID)
	} else {
		board, err = s.boards.GetDefault(orgID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrBoardNotFound
		}
		return nil, nil, fmt.Errorf("failed to get board: %w", err)
	}

	var stage *models.Stage
	if stageID != nil {
		stage, err = s.stages.GetByID(orgID, *stageID)
		if err == nil && stage.BoardID != board.ID {
			return nil, nil, apperrors.ErrStageBoardMismatch
		}
	} else {
		stage, err = s.stages.FirstStage(board.ID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrStageNotFound
		}
		return nil, nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return board, stage, nil
}

// checkReferences verifies that referenced contacts and companies belong to the organization
func (s *DealService) checkReferences(orgID uuid.UUID, contactID, companyID *uuid.UUID) error {
	if contactID != nil && *contactID != uuid.Nil {
		if _, err := s.contacts.GetByID(orgID, *contactID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrContactNotFound
			}
			return fmt.Errorf("failed to get contact: %w", err)
		}
	}
	if companyID != nil && *companyID != uuid.Nil {
		if _, err := s.companies.GetByID(orgID, *companyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCompanyNotFound
			}
			return fmt.Errorf("failed to get company: %w", err)
		}
	}
	return nil
}

func (s *DealService) getDeal(orgID, id uuid.UUID) (*models.Deal, error) {
	deal, err := s.deals.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return deal, nil
}

// nilIfZero lets clients clear an optional reference by sending the zero UUID
func nilIfZero(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func toDealResponse(d *models.Deal) *DealResponse {
	resp := &DealResponse{
		ID:        d.ID,
		BoardID:   d.BoardID,
		StageID:   d.StageID,
		ContactID: d.ContactID,
		CompanyID: d.CompanyID,
		OwnerID:   d.OwnerID,
		Title:     d.Title,
		Value:     d.Value,
		Currency:  d.Currency,
		Status:    d.Status,
		Position:  d.Position,
		Notes:     d.Notes,
		ClosedAt:  formatTimePtr(d.ClosedAt),
		CreatedAt: formatTime(d.CreatedAt),
		UpdatedAt: formatTime(d.UpdatedAt),
	}
	for _, it := range d.Items {
		resp.Items = append(resp.Items, DealItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Total:     it.Total,
		})
	}
	return resp
}
