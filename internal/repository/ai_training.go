package repository

import (
	"crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AITrainingRepository handles training documents and their chunks
type AITrainingRepository struct {
	db *gorm.DB
}

// NewAITrainingRepository creates a new AI training repository
func NewAITrainingRepository(db *gorm.DB) *AITrainingRepository {
	return &AITrainingRepository{db: db}
}

// Create creates a new training document
func (r *AITrainingRepository) Create(doc *models.AITrainingDocument) error {
	return r.db.Omit("Chunks").Create(doc).Error
}

// GetByID retrieves a training document of an organization
func (r *AITrainingRepository) GetByID(orgID, id uuid.UUID) (*models.AITrainingDocument, error) {
	var doc models.AITrainingDocument
	err := r.db.First(&doc, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByIDAnyOrganization retrieves a training document without tenant scoping. Only used by
// authenticated machine callbacks that carry the document id.
func (r *AITrainingRepository) GetByIDAnyOrganization(id uuid.UUID) (*models.AITrainingDocument, error) {
	var doc models.AITrainingDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List retrieves the training documents of an organization, newest first
func (r *AITrainingRepository) List(orgID uuid.UUID, limit, offset int) ([]models.AITrainingDocument, int64, error) {
	var docs []models.AITrainingDocument
	var total int64

	query := r.db.Model(&models.AITrainingDocument{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// Update updates a training document
func (r *AITrainingRepository) Update(doc *models.AITrainingDocument) error {
	return r.db.Omit("Chunks").Save(doc).Error
}

// Delete deletes a training document; chunks cascade
func (r *AITrainingRepository) Delete(orgID, id uuid.UUID) error {
	res := r.db.Delete(&models.AITrainingDocument{}, "id = ? AND organization_id = ?", id, orgID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceChunks swaps the chunk set of a document and updates its chunk count
func (r *AITrainingRepository) ReplaceChunks(doc *models.AITrainingDocument, chunks []models.AIDocumentChunk) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", doc.ID).Delete(&models.AIDocumentChunk{}).Error; err != nil {
			return err
		}
		for i := range chunks {
			chunks[i].DocumentID = doc.ID
			chunks[i].OrganizationID = doc.OrganizationID
		}
		if len(chunks) > 0 {
			if err := tx.CreateInBatches(&chunks, 200).Error; err != nil {
				return err
			}
		}
		doc.ChunkCount = len(chunks)
		return tx.Omit("Chunks").Save(doc).Error
	})
}

// ListChunkIDs returns the ids of a document's chunks
func (r *AITrainingRepository) ListChunkIDs(documentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.AIDocumentChunk{}).Where("document_id = ?", documentID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SearchChunks is a plain-text fallback when the search index is unavailable
func (r *AITrainingRepository) SearchChunks(orgID uuid.UUID, query string, limit int) ([]models.AIDocumentChunk, error) {
	var chunks []models.AIDocumentChunk
	err := r.db.Where(`organization_id = ? AND content ILIKE ? ESCAPE '\'`, orgID, containsPattern(query)).
		Order("created_at DESC").Limit(limit).
		Find(&chunks).Error
	if err != nil {
		return nil, err
	}
	return chunks, nil
}
