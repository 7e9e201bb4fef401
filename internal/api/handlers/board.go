package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BoardHandler handles HTTP requests for boards and their stages
type BoardHandler struct {
	service service.BoardServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(service service.BoardServiceInterface) *BoardHandler {
	return &BoardHandler{service: service}
}

// CreateBoard handles POST /api/v1/boards
// @Summary Create board
// @Description Create a pipeline board. Boards created without stages get the default stages.
// @Tags boards
// @Accept json
// @Produce json
// @Param board body service.CreateBoardRequest true "Board data"
// @Success 201 {object} service.BoardResponse "Successfully created board"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create board")
		return
	}

	c.JSON(http.StatusCreated, board)
}

// ListBoards handles GET /api/v1/boards
// @Summary List boards
// @Tags boards
// @Produce json
// @Success 200 {array} service.BoardResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	boards, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err, "Failed to list boards")
		return
	}

	c.JSON(http.StatusOK, boards)
}

// GetBoard handles GET /api/v1/boards/:id
// @Summary Get board
// @Tags boards
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Success 200 {object} service.BoardResponse
// @Failure 400 {object} map[string]interface{} "Invalid board ID"
// @Failure 404 {object} map[string]interface{} "Board not found"
// @Security BearerAuth
// @Router /api/v1/boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "board")
	if !ok {
		return
	}

	board, err := h.service.GetByID(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get board")
		return
	}

	c.JSON(http.StatusOK, board)
}

// UpdateBoard handles PUT /api/v1/boards/:id
// @Summary Update board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Param board body service.UpdateBoardRequest true "Updated board data"
// @Success 200 {object} service.BoardResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Board not found"
// @Security BearerAuth
// @Router /api/v1/boards/{id} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "board")
	if !ok {
		return
	}

	var req service.UpdateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update board")
		return
	}

	c.JSON(http.StatusOK, board)
}

// DeleteBoard handles DELETE /api/v1/boards/:id
// @Summary Delete board
// @Tags boards
// @Param id path string true "Board ID (UUID)"
// @Success 204 "Successfully deleted board"
// @Failure 404 {object} map[string]interface{} "Board not found"
// @Security BearerAuth
// @Router /api/v1/boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "board")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err, "Failed to delete board")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateStage handles POST /api/v1/boards/:id/stages
// @Summary Add stage
// @Description Append a stage at the end of a board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Param stage body service.StageRequest true "Stage data"
// @Success 201 {object} service.StageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Board not found"
// @Security BearerAuth
// @Router /api/v1/boards/{id}/stages [post]
func (h *BoardHandler) CreateStage(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	boardID, ok := uuidParam(c, "id", "board")
	if !ok {
		return
	}

	var req service.StageRequest
	if !bindJSON(c, &req) {
		return
	}

	stage, err := h.service.CreateStage(orgID, boardID, &req)
	if err != nil {
		respondError(c, err, "Failed to create stage")
		return
	}

	c.JSON(http.StatusCreated, stage)
}

// ReorderStages handles PUT /api/v1/boards/:id/stages/order
// @Summary Reorder stages
// @Description Set the order of every stage of a board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Param order body service.ReorderStagesRequest true "Stage IDs in their new order"
// @Success 200 {array} service.StageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Board not found"
// @Security BearerAuth
// @Router /api/v1/boards/{id}/stages/order [put]
func (h *BoardHandler) ReorderStages(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	boardID, ok := uuidParam(c, "id", "board")
	if !ok {
		return
	}

	var req service.ReorderStagesRequest
	if !bindJSON(c, &req) {
		return
	}

	stages, err := h.service.ReorderStages(orgID, boardID, &req)
	if err != nil {
		respondError(c, err, "Failed to reorder stages")
		return
	}

	c.JSON(http.StatusOK, stages)
}

// UpdateStage handles PUT /api/v1/stages/:id
// @Summary Update stage
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Stage ID (UUID)"
// @Param stage body service.UpdateStageRequest true "Updated stage data"
// @Success 200 {object} service.StageResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Stage not found"
// @Security BearerAuth
// @Router /api/v1/stages/{id} [put]
func (h *BoardHandler) UpdateStage(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "stage")
	if !ok {
		return
	}

	var req service.UpdateStageRequest
	if !bindJSON(c, &req) {
		return
	}

	stage, err := h.service.UpdateStage(orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update stage")
		return
	}

	c.JSON(http.StatusOK, stage)
}

// DeleteStage handles DELETE /api/v1/stages/:id
// @Summary Delete stage
// @Description Delete a stage that holds no deals
// @Tags boards
// @Param id path string true "Stage ID (UUID)"
// @Success 204 "Successfully deleted stage"
// @Failure 404 {object} map[string]interface{} "Stage not found"
// @Failure 409 {object} map[string]interface{} "Stage still has deals"
// @Security BearerAuth
// @Router /api/v1/stages/{id} [delete]
func (h *BoardHandler) DeleteStage(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "stage")
	if !ok {
		return
	}

	if err := h.service.DeleteStage(orgID, id); err != nil {
		respondError(c, err, "Failed to delete stage")
		return
	}

	c.Status(http.StatusNoContent)
}
