package models

import (
	"github.com/google/uuid"
)

// AITrainingDocument is a file uploaded to feed the assistant's retrieval index
type AITrainingDocument struct {
	TenantModel
	Title       string         `json:"title" gorm:"not null;size:255"`
	FileName    string         `json:"file_name" gorm:"not null;size:255"`
	StorageKey  string         `json:"storage_key" gorm:"not null;size:500"`
	ContentType string         `json:"content_type" gorm:"size:100"`
	SizeBytes   int64          `json:"size_bytes"`
	Status      DocumentStatus `json:"status" gorm:"type:varchar(20);not null;default:'uploaded';index"`
	ChunkCount  int            `json:"chunk_count" gorm:"not null;default:0"`
	Error       string         `json:"error,omitempty" gorm:"type:text"`
	UploadedBy  *uuid.UUID     `json:"uploaded_by,omitempty" gorm:"type:uuid"`

	Chunks []AIDocumentChunk `json:"-" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AITrainingDocument
func (AITrainingDocument) TableName() string {
	return "ai_training_documents"
}

// AIDocumentChunk is a retrieval unit of a training document
type AIDocumentChunk struct {
	TenantModel
	DocumentID    uuid.UUID `json:"document_id" gorm:"type:uuid;not null;index"`
	Position      int       `json:"position" gorm:"not null"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	TokenEstimate int       `json:"token_estimate"`
}

// TableName returns the table name for AIDocumentChunk
func (AIDocumentChunk) TableName() string {
	return "ai_document_chunks"
}
