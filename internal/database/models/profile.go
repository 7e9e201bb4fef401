package models

import (
	"github.com/google/uuid"
)

// Profile is the CRM user record. Its ID equals the auth provider user id (JWT sub).
type Profile struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName       string     `json:"full_name" gorm:"size:200"`
	Role           Role       `json:"role" gorm:"type:varchar(20);not null;default:'seller'"`
	Active         bool       `json:"active" gorm:"not null;default:true"`
	AvatarURL      string     `json:"avatar_url" gorm:"size:500"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
