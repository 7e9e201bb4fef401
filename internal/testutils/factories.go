package testutils

import (
	"fmt"
	"time"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newTenant(orgID uuid.UUID) models.TenantModel {
	return models.TenantModel{BaseModel: newBase(), OrganizationID: orgID}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with a unique slug
func (f *OrganizationFactory) Create() *models.Organization {
	base := newBase()
	return &models.Organization{
		BaseModel: base,
		Name:      "Test Organization",
		Slug:      "test-" + base.ID.String()[:8],
		Settings: models.OrganizationSettings{
			DefaultCountryCode: "55",
		},
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	return org
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a seller profile without an organization
func (f *ProfileFactory) Create() *models.Profile {
	base := newBase()
	return &models.Profile{
		BaseModel: base,
		Email:     fmt.Sprintf("seller-%s@test.com", base.ID.String()[:8]),
		FullName:  "Sam Seller",
		Role:      models.RoleSeller,
		Active:    true,
	}
}

// WithOrganization attaches the profile to an organization
func (f *ProfileFactory) WithOrganization(orgID uuid.UUID) *models.Profile {
	profile := f.Create()
	profile.OrganizationID = &orgID
	return profile
}

// BoardFactory provides methods to create test Board data
type BoardFactory struct{}

// NewBoardFactory creates a new BoardFactory
func NewBoardFactory() *BoardFactory {
	return &BoardFactory{}
}

// Create creates a board with no stages
func (f *BoardFactory) Create(orgID uuid.UUID) *models.Board {
	return &models.Board{
		TenantModel: newTenant(orgID),
		Name:        "Sales",
		Description: "Default sales pipeline",
	}
}

// WithStages creates a board whose stages are named, in order, by names
func (f *BoardFactory) WithStages(orgID uuid.UUID, names ...string) *models.Board {
	board := f.Create(orgID)
	for i, name := range names {
		board.Stages = append(board.Stages, models.Stage{
			TenantModel: newTenant(orgID),
			BoardID:     board.ID,
			Name:        name,
			Position:    i,
		})
	}
	return board
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values
func (f *ContactFactory) Create(orgID uuid.UUID) *models.Contact {
	return &models.Contact{
		TenantModel: newTenant(orgID),
		Name:        "Maria Silva",
		Phone:       "+5511987654321",
		Email:       "maria@test.com",
		Source:      "manual",
	}
}

// WithName sets a custom name for the contact
func (f *ContactFactory) WithName(orgID uuid.UUID, name string) *models.Contact {
	contact := f.Create(orgID)
	contact.Name = name
	return contact
}

// IdentityFactory provides methods to create test ContactIdentity data
type IdentityFactory struct{}

// NewIdentityFactory creates a new IdentityFactory
func NewIdentityFactory() *IdentityFactory {
	return &IdentityFactory{}
}

// Create binds an already canonical key to a contact
func (f *IdentityFactory) Create(contact *models.Contact, channel, key string) *models.ContactIdentity {
	return &models.ContactIdentity{
		BaseModel:      newBase(),
		OrganizationID: contact.OrganizationID,
		ContactID:      contact.ID,
		Channel:        channel,
		IdentityKey:    key,
	}
}

// DealFactory provides methods to create test Deal data
type DealFactory struct{}

// NewDealFactory creates a new DealFactory
func NewDealFactory() *DealFactory {
	return &DealFactory{}
}

// Create creates an open deal on the given stage
func (f *DealFactory) Create(stage *models.Stage) *models.Deal {
	return &models.Deal{
		TenantModel: newTenant(stage.OrganizationID),
		BoardID:     stage.BoardID,
		StageID:     stage.ID,
		Title:       "Test Deal",
		Value:       decimal.NewFromInt(1000),
		Currency:    "BRL",
		Status:      models.DealStatusOpen,
	}
}

// WithContact creates a deal for a contact
func (f *DealFactory) WithContact(stage *models.Stage, contactID uuid.UUID) *models.Deal {
	deal := f.Create(stage)
	deal.ContactID = &contactID
	return deal
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates an active product
func (f *ProductFactory) Create(orgID uuid.UUID) *models.Product {
	base := newBase()
	return &models.Product{
		BaseModel:      base,
		OrganizationID: orgID,
		Name:           "Basic Plan",
		SKU:            "SKU-" + base.ID.String()[:8],
		Price:          decimal.RequireFromString("99.90"),
		Active:         true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Profile      *ProfileFactory
	Board        *BoardFactory
	Contact      *ContactFactory
	Identity     *IdentityFactory
	Deal         *DealFactory
	Product      *ProductFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Profile:      NewProfileFactory(),
		Board:        NewBoardFactory(),
		Contact:      NewContactFactory(),
		Identity:     NewIdentityFactory(),
		Deal:         NewDealFactory(),
		Product:      NewProductFactory(),
	}
}

// CreateSalesPipeline builds an organization with a three stage board, a seller and a contact
func (fs *FactorySet) CreateSalesPipeline() (*models.Organization, *models.Board, *models.Profile, *models.Contact) {
	org := fs.Organization.Create()
	board := fs.Board.WithStages(org.ID, "Lead", "Proposal", "Closed")
	board.IsDefault = true
	seller := fs.Profile.WithOrganization(org.ID)
	contact := fs.Contact.Create(org.ID)
	return org, board, seller, contact
}
