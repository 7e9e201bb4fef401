package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person the organization talks to
type Contact struct {
	TenantModel
	Name      string     `json:"name" gorm:"not null;size:255"`
	Phone     string     `json:"phone" gorm:"size:20;index"`
	Email     string     `json:"email" gorm:"size:255;index"`
	CompanyID *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	AvatarURL string     `json:"avatar_url" gorm:"size:500"`
	Source    string     `json:"source" gorm:"size:30"`
	Notes     string     `json:"notes" gorm:"type:text"`

	Identities []ContactIdentity `json:"identities,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// Company groups contacts under a legal entity
type Company struct {
	TenantModel
	Name     string `json:"name" gorm:"not null;size:255"`
	Document string `json:"document" gorm:"size:30;index"`
	Website  string `json:"website" gorm:"size:255"`
	Phone    string `json:"phone" gorm:"size:20"`
	Email    string `json:"email" gorm:"size:255"`

	Contacts []Contact `json:"contacts,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}

// ContactIdentity binds a canonical identity key to a contact. A key belongs to at most one
// contact per organization.
type ContactIdentity struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_contact_identities_org_key,priority:1"`
	ContactID      uuid.UUID  `json:"contact_id" gorm:"type:uuid;not null;index"`
	Channel        string     `json:"channel" gorm:"size:20;not null"`
	IdentityKey    string     `json:"identity_key" gorm:"size:255;not null;uniqueIndex:idx_contact_identities_org_key,priority:2"`
	LastSeenAt     *time.Time `json:"last_seen_at,omitempty"`
}

// TableName returns the table name for ContactIdentity
func (ContactIdentity) TableName() string {
	return "contact_identities"
}
