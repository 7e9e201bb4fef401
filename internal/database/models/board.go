package models

import (
	"github.com/google/uuid"
)

// Board is a Kanban pipeline
type Board struct {
	TenantModel
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string `json:"description" gorm:"type:text"`
	IsDefault   bool   `json:"is_default" gorm:"not null;default:false"`

	Stages []Stage `json:"stages,omitempty" gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Board
func (Board) TableName() string {
	return "boards"
}

// Stage is a column of a board. Position is kept unique per board by the service, not the schema,
// so reorders can swap positions inside a single transaction.
type Stage struct {
	TenantModel
	BoardID  uuid.UUID `json:"board_id" gorm:"type:uuid;not null;index"`
	Name     string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Position int       `json:"position" gorm:"not null;default:0"`
	Color    string    `json:"color" gorm:"size:20"`
}

// TableName returns the table name for Stage
func (Stage) TableName() string {
	return "stages"
}
