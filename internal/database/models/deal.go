package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deal is a card on a board
type Deal struct {
	TenantModel
	BoardID   uuid.UUID       `json:"board_id" gorm:"type:uuid;not null;index"`
	StageID   uuid.UUID       `json:"stage_id" gorm:"type:uuid;not null;index"`
	ContactID *uuid.UUID      `json:"contact_id,omitempty" gorm:"type:uuid;index"`
	CompanyID *uuid.UUID      `json:"company_id,omitempty" gorm:"type:uuid;index"`
	OwnerID   *uuid.UUID      `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	Title     string          `json:"title" gorm:"not null;size:255"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(18,2);not null;default:0"`
	Currency  string          `json:"currency" gorm:"size:3;not null;default:'BRL'"`
	Status    DealStatus      `json:"status" gorm:"type:varchar(10);not null;default:'open';index"`
	Position  int             `json:"position" gorm:"not null;default:0"`
	Notes     string          `json:"notes" gorm:"type:text"`
	ClosedAt  *time.Time      `json:"closed_at,omitempty"`

	Items []DealItem `json:"items,omitempty" gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Deal
func (Deal) TableName() string {
	return "deals"
}

// DealItem is a product line of a deal
type DealItem struct {
	BaseModel
	DealID    uuid.UUID       `json:"deal_id" gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID      `json:"product_id,omitempty" gorm:"type:uuid;index"`
	Name      string          `json:"name" gorm:"not null;size:255"`
	Quantity  decimal.Decimal `json:"quantity" gorm:"type:decimal(18,4);not null;default:1"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(18,2);not null;default:0"`
	Discount  decimal.Decimal `json:"discount" gorm:"type:decimal(18,2);not null;default:0"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for DealItem
func (DealItem) TableName() string {
	return "deal_items"
}

// ComputeTotal sets Total to quantity * unit price minus discount, floored at zero.
func (i *DealItem) ComputeTotal() {
	total := i.Quantity.Mul(i.UnitPrice).Sub(i.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	i.Total = total.Round(2)
}

// Product is a catalog entry that can be added to deals
type Product struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_products_org_sku,priority:1"`
	Name           string          `json:"name" gorm:"not null;size:255"`
	SKU            string          `json:"sku" gorm:"size:100;uniqueIndex:idx_products_org_sku,priority:2,where:sku <> ''"`
	Description    string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(18,2);not null;default:0"`
	Active         bool            `json:"active" gorm:"not null;default:true"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
