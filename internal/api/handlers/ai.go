package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AIHandler handles the assistant chat and its training documents
type AIHandler struct {
	chat     service.AIChatServiceInterface
	training service.AITrainingServiceInterface
}

// NewAIHandler creates a new AI handler
func NewAIHandler(chat service.AIChatServiceInterface, training service.AITrainingServiceInterface) *AIHandler {
	return &AIHandler{
		chat:     chat,
		training: training,
	}
}

// Chat handles POST /api/v1/ai/chat
// @Summary Chat with the assistant
// @Description Ask the assistant a question. Answers are grounded on the organization's training documents and, optionally, a deal or contact.
// @Tags ai
// @Accept json
// @Produce json
// @Param message body service.AIChatRequest true "Chat message"
// @Success 200 {object} service.AIChatResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Deal or contact not found"
// @Failure 503 {object} map[string]interface{} "Assistant not configured"
// @Security BearerAuth
// @Router /api/v1/ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	profileID, ok := callerID(c)
	if !ok {
		return
	}

	var req service.AIChatRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.chat.Chat(c.Request.Context(), orgID, profileID, &req)
	if err != nil {
		respondError(c, err, "Failed to get assistant reply")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ClearHistory handles DELETE /api/v1/ai/chat/:conversation_id
// @Summary Clear chat history
// @Tags ai
// @Param conversation_id path string true "Chat conversation ID"
// @Success 204 "History cleared"
// @Security BearerAuth
// @Router /api/v1/ai/chat/{conversation_id} [delete]
func (h *AIHandler) ClearHistory(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	profileID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.chat.ClearHistory(c.Request.Context(), orgID, profileID, c.Param("conversation_id")); err != nil {
		respondError(c, err, "Failed to clear chat history")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadDocument handles POST /api/v1/ai/documents
// @Summary Upload training document
// @Description Upload a text, markdown, CSV, JSON or PDF document. Text documents are indexed immediately; PDFs are processed asynchronously.
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param title formData string false "Document title"
// @Success 201 {object} service.DocumentResponse
// @Failure 400 {object} map[string]interface{} "Missing file or unsupported type"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Failure 503 {object} map[string]interface{} "Storage not configured"
// @Security BearerAuth
// @Router /api/v1/ai/documents [post]
func (h *AIHandler) UploadDocument(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	uploaderID, ok := callerID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}
	defer file.Close()

	doc, err := h.training.Upload(c.Request.Context(), orgID, uploaderID, file, header, c.PostForm("title"))
	if err != nil {
		respondError(c, err, "Failed to upload document")
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ListDocuments handles GET /api/v1/ai/documents
// @Summary List training documents
// @Tags ai
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DocumentListResponse
// @Security BearerAuth
// @Router /api/v1/ai/documents [get]
func (h *AIHandler) ListDocuments(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	docs, err := h.training.List(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, docs)
}

// GetDocument handles GET /api/v1/ai/documents/:id
// @Summary Get training document
// @Tags ai
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Security BearerAuth
// @Router /api/v1/ai/documents/{id} [get]
func (h *AIHandler) GetDocument(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}

	doc, err := h.training.GetByID(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get document")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument handles DELETE /api/v1/ai/documents/:id
// @Summary Delete training document
// @Description Remove the document, its chunks, their index entries and the stored file
// @Tags ai
// @Param id path string true "Document ID (UUID)"
// @Success 204 "Successfully deleted document"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Security BearerAuth
// @Router /api/v1/ai/documents/{id} [delete]
func (h *AIHandler) DeleteDocument(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}

	if err := h.training.Delete(c.Request.Context(), orgID, id); err != nil {
		respondError(c, err, "Failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchDocuments handles GET /api/v1/ai/search
// @Summary Preview retrieval
// @Description Show the training chunks the assistant would use for a query
// @Tags ai
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Maximum number of chunks" default(5)
// @Success 200 {object} service.SearchPreviewResponse
// @Failure 400 {object} map[string]interface{} "Missing query"
// @Failure 503 {object} map[string]interface{} "Search not configured"
// @Security BearerAuth
// @Router /api/v1/ai/search [get]
func (h *AIHandler) SearchDocuments(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter is required"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		limit = 5
	}

	resp, err := h.training.Search(c.Request.Context(), orgID, query, limit)
	if err != nil {
		respondError(c, err, "Failed to search documents")
		return
	}

	c.JSON(http.StatusOK, resp)
}
