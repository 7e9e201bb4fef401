package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// OrganizationSettings is stored as jsonb on the organizations table
type OrganizationSettings struct {
	AutoCreateDeals    bool       `json:"auto_create_deals"`
	DefaultBoardID     *uuid.UUID `json:"default_board_id,omitempty"`
	InstagramPageID    string     `json:"instagram_page_id,omitempty"`
	DefaultCountryCode string     `json:"default_country_code,omitempty"`
	ChatwootAccountID  int64      `json:"chatwoot_account_id,omitempty"`
}

// Value implements driver.Valuer
func (s OrganizationSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *OrganizationSettings) Scan(value interface{}) error {
	if value == nil {
		*s = OrganizationSettings{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("organization settings: unsupported scan type")
	}
	if len(raw) == 0 {
		*s = OrganizationSettings{}
		return nil
	}
	return json.Unmarshal(raw, s)
}

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name     string               `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug     string               `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Settings OrganizationSettings `json:"settings" gorm:"type:jsonb;not null;default:'{}'"`

	// Relationships
	Profiles []Profile `json:"profiles,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Boards   []Board   `json:"boards,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
