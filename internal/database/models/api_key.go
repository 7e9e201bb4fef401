package models

import (
	"time"
)

// APIKey authenticates calls to the public API. Only the bcrypt hash of the secret is stored.
type APIKey struct {
	TenantModel
	Name       string     `json:"name" gorm:"not null;size:100"`
	Prefix     string     `json:"prefix" gorm:"uniqueIndex;not null;size:16"`
	KeyHash    string     `json:"-" gorm:"not null;size:100"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

// TableName returns the table name for APIKey
func (APIKey) TableName() string {
	return "api_keys"
}

// IsRevoked reports whether the key can no longer be used
func (k *APIKey) IsRevoked() bool {
	return k.RevokedAt != nil
}
