package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
	"crm-backend/internal/search"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMaxUploadBytes caps training document uploads
const DefaultMaxUploadBytes int64 = 10 << 20

const (
	contentTypePDF = "application/pdf"
	presignTTL     = time.Hour
)

var allowedDocumentTypes = map[string]bool{
	"text/plain":       true,
	"text/markdown":    true,
	"text/csv":         true,
	"application/json": true,
	contentTypePDF:     true,
}

var extensionTypes = map[string]string{
	".txt":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".csv":      "text/csv",
	".json":     "application/json",
	".pdf":      contentTypePDF,
}

// AITrainingService ingests training documents: it stores the file, chunks text and indexes
// chunks for retrieval. PDFs are parsed by an N8N workflow that calls back with the chunks.
type AITrainingService struct {
	repo     repository.AITrainingRepositoryInterface
	storage  ObjectStorage
	searcher ChunkSearcher
	notifier Notifier
	maxBytes int64
	now      func() time.Time
}

// AITrainingDependencies groups what an AITrainingService needs. Searcher and Notifier are optional.
type AITrainingDependencies struct {
	Documents      repository.AITrainingRepositoryInterface
	Storage        ObjectStorage
	Searcher       ChunkSearcher
	Notifier       Notifier
	MaxUploadBytes int64
}

// NewAITrainingService creates a new training service
func NewAITrainingService(deps AITrainingDependencies) *AITrainingService {
	maxBytes := deps.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &AITrainingService{
		repo:     deps.Documents,
		storage:  deps.Storage,
		searcher: deps.Searcher,
		notifier: deps.Notifier,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// DocumentResponse represents a training document
type DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Status      string    `json:"status"`
	ChunkCount  int       `json:"chunk_count"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// DocumentListResponse represents a paginated list of training documents
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// SearchPreviewResponse lists the chunks retrieval would feed to the assistant
type SearchPreviewResponse struct {
	Query string            `json:"query"`
	Hits  []search.ChunkHit `json:"hits"`
}

// Upload stores a document and starts its ingestion
func (s *AITrainingService) Upload(ctx context.Context, orgID, uploaderID uuid.UUID, file multipart.File, header *multipart.FileHeader, title string) (*DocumentResponse, error) {
	if header == nil || file == nil {
		return nil, apperrors.NewValidationError("file", "is required")
	}
	if s.storage == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if header.Size > s.maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	fileName := sanitizeFileName(header.Filename)
	contentType, err := detectContentType(header.Header.Get("Content-Type"), fileName)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, apperrors.ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("file", "is empty")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
	if utf8.RuneCountInString(title) > 255 {
		return nil, apperrors.NewValidationError("title", "must be at most 255 characters")
	}

	doc := &models.AITrainingDocument{
		Title:       title,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		Status:      models.DocumentStatusUploaded,
		UploadedBy:  nilIfZero(uploaderID),
	}
	doc.ID = uuid.New()
	doc.OrganizationID = orgID
	doc.StorageKey = fmt.Sprintf("%s/%s/%s", orgID, doc.ID, fileName)

	log := logger.WithContext(ctx).WithField("document_id", doc.ID)
	if err := s.storage.Put(ctx, doc.StorageKey, data, contentType); err != nil {
		return nil, err
	}
	if err := s.repo.Create(doc); err != nil {
		if delErr := s.storage.Delete(ctx, doc.StorageKey); delErr != nil {
			log.WithError(delErr).Warn("Failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if contentType == contentTypePDF {
		s.dispatchPDF(ctx, doc)
	} else {
		s.ingestText(ctx, doc, data)
	}
	log.WithField("status", doc.Status).Info("Training document uploaded")
	return toDocumentResponse(doc), nil
}

// dispatchPDF hands a PDF to the N8N ingestion workflow
func (s *AITrainingService) dispatchPDF(ctx context.Context, doc *models.AITrainingDocument) {
	if s.notifier == nil {
		s.fail(ctx, doc, "PDF ingestion workflow is not configured")
		return
	}

	data := map[string]interface{}{
		"document_id":  doc.ID,
		"title":        doc.Title,
		"file_name":    doc.FileName,
		"content_type": doc.ContentType,
		"storage_key":  doc.StorageKey,
	}
	if url, err := s.storage.PresignGet(ctx, doc.StorageKey, presignTTL); err == nil {
		data["download_url"] = url
	} else {
		logger.WithContext(ctx).WithError(err).Warn("Failed to presign document download")
	}

	if err := s.notifier.Notify(ctx, EventDocumentUploaded, doc.OrganizationID, data); err != nil {
		s.fail(ctx, doc, "failed to start ingestion: "+err.Error())
		return
	}
	doc.Status = models.DocumentStatusProcessing
	if err := s.repo.Update(doc); err != nil {
		logger.WithContext(ctx).WithError(err).Error("Failed to mark document as processing")
	}
}

// ingestText chunks a text document synchronously
func (s *AITrainingService) ingestText(ctx context.Context, doc *models.AITrainingDocument, data []byte) {
	if !utf8.Valid(data) {
		s.fail(ctx, doc, "document is not valid UTF-8 text")
		return
	}
	if err := s.storeChunks(ctx, doc, ChunkText(string(data), DefaultChunkSize, DefaultChunkOverlap)); err != nil {
		s.fail(ctx, doc, err.Error())
	}
}

// storeChunks replaces the chunks of a document, indexes them and marks the document ready.
// Index failures are logged; the database copy still serves retrieval.
func (s *AITrainingService) storeChunks(ctx context.Context, doc *models.AITrainingDocument, texts []string) error {
	oldIDs, err := s.repo.ListChunkIDs(doc.ID)
	if err != nil {
		return fmt.Errorf("failed to list chunks: %w", err)
	}

	chunks := make([]models.AIDocumentChunk, 0, len(texts))
	for i, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		chunk := models.AIDocumentChunk{
			DocumentID:    doc.ID,
			Position:      i,
			Content:       text,
			TokenEstimate: EstimateTokens(text),
		}
		chunk.ID = uuid.New()
		chunk.OrganizationID = doc.OrganizationID
		chunks = append(chunks, chunk)
	}

	doc.Status = models.DocumentStatusReady
	doc.Error = ""
	if err := s.repo.ReplaceChunks(doc, chunks); err != nil {
		return fmt.Errorf("failed to store chunks: %w", err)
	}

	if s.searcher == nil {
		return nil
	}
	log := logger.WithContext(ctx).WithField("document_id", doc.ID)
	if len(oldIDs) > 0 {
		if err := s.searcher.DeleteChunks(uuidStrings(oldIDs)); err != nil {
			log.WithError(err).Warn("Failed to remove stale chunks from the search index")
		}
	}
	records := make([]search.ChunkRecord, len(chunks))
	for i, c := range chunks {
		records[i] = search.ChunkRecord{
			ID:             c.ID.String(),
			OrganizationID: doc.OrganizationID.String(),
			DocumentID:     doc.ID.String(),
			DocumentTitle:  doc.Title,
			Position:       c.Position,
			Content:        c.Content,
		}
	}
	if err := s.searcher.IndexChunks(records); err != nil {
		log.WithError(err).Warn("Failed to index chunks")
	}
	return nil
}

func (s *AITrainingService) fail(ctx context.Context, doc *models.AITrainingDocument, reason string) {
	doc.Status = models.DocumentStatusFailed
	doc.Error = reason
	if err := s.repo.Update(doc); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("document_id", doc.ID).Error("Failed to mark document as failed")
	}
}

// CompleteProcessing applies the result of the N8N ingestion workflow
func (s *AITrainingService) CompleteProcessing(ctx context.Context, cb *DocumentProcessedCallback) error {
	doc, err := s.repo.GetByIDAnyOrganization(cb.DocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	switch models.DocumentStatus(cb.Status) {
	case models.DocumentStatusReady:
		if err := s.storeChunks(ctx, doc, cb.Chunks); err != nil {
			return err
		}
	case models.DocumentStatusFailed:
		reason := cb.Error
		if reason == "" {
			reason = "ingestion failed"
		}
		doc.Status = models.DocumentStatusFailed
		doc.Error = reason
		if err := s.repo.Update(doc); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, cb.Status)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"document_id": doc.ID,
		"status":      doc.Status,
		"chunks":      doc.ChunkCount,
	}).Info("Training document processed")
	return nil
}

// List lists the training documents of an organization
func (s *AITrainingService) List(orgID uuid.UUID, page, pageSize int) (*DocumentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	docs, total, err := s.repo.List(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *toDocumentResponse(&docs[i])
	}
	return &DocumentListResponse{
		Documents: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetByID retrieves a training document
func (s *AITrainingService) GetByID(orgID, id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.getDocument(orgID, id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// Delete removes a document with its chunks, index entries and stored file
func (s *AITrainingService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	doc, err := s.getDocument(orgID, id)
	if err != nil {
		return err
	}
	chunkIDs, err := s.repo.ListChunkIDs(doc.ID)
	if err != nil {
		return fmt.Errorf("failed to list chunks: %w", err)
	}

	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}

	log := logger.WithContext(ctx).WithField("document_id", doc.ID)
	if s.searcher != nil && len(chunkIDs) > 0 {
		if err := s.searcher.DeleteChunks(uuidStrings(chunkIDs)); err != nil {
			log.WithError(err).Warn("Failed to remove chunks from the search index")
		}
	}
	if s.storage != nil {
		if err := s.storage.Delete(ctx, doc.StorageKey); err != nil {
			log.WithError(err).Warn("Failed to remove stored document")
		}
	}
	return nil
}

// Search previews the chunks retrieval returns for a query
func (s *AITrainingService) Search(ctx context.Context, orgID uuid.UUID, query string, limit int) (*SearchPreviewResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("q", "is required")
	}
	if limit < 1 || limit > 20 {
		limit = defaultContextChunks
	}
	hits, err := retrieveChunks(s.searcher, s.repo, orgID, query, limit)
	if err != nil {
		if hits == nil {
			return nil, err
		}
		logger.WithContext(ctx).WithError(err).Warn("Search index unavailable, served database matches")
	}
	if hits == nil {
		hits = []search.ChunkHit{}
	}
	return &SearchPreviewResponse{Query: query, Hits: hits}, nil
}

func (s *AITrainingService) getDocument(orgID, id uuid.UUID) (*models.AITrainingDocument, error) {
	doc, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// detectContentType resolves the media type from the part header, falling back to the extension
func detectContentType(header, fileName string) (string, error) {
	contentType := ""
	if header != "" {
		if mt, _, err := mime.ParseMediaType(header); err == nil {
			contentType = strings.ToLower(mt)
		}
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = extensionTypes[strings.ToLower(filepath.Ext(fileName))]
	}
	if contentType == "text/x-markdown" {
		contentType = "text/markdown"
	}
	if !allowedDocumentTypes[contentType] {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, fileName)
	}
	return contentType, nil
}

// sanitizeFileName keeps the base name and replaces characters unsafe in object keys
func sanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "document"
	}
	return out
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func toDocumentResponse(d *models.AITrainingDocument) *DocumentResponse {
	return &DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Status:      string(d.Status),
		ChunkCount:  d.ChunkCount,
		Error:       d.Error,
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}
}
