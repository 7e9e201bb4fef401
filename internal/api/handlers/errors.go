package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"crm-backend/internal/auth"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// statusForError maps service errors to HTTP status codes
func statusForError(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsValidation(err), errors.As(err, &validationErrs),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrStageBoardMismatch),
		errors.Is(err, apperrors.ErrMergeSameContact),
		errors.Is(err, apperrors.ErrInvalidCursor),
		errors.Is(err, apperrors.ErrInvalidPaginationParams),
		errors.Is(err, apperrors.ErrUnsupportedFileType),
		errors.Is(err, apperrors.ErrUnknownEvent):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrStageNotEmpty),
		errors.Is(err, apperrors.ErrNoConnectedSession):
		return http.StatusConflict
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response for err. Unexpected errors are logged and reported
// under action with the underlying message as details.
func respondError(c *gin.Context, err error, action string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Error(action)
		c.JSON(status, gin.H{"error": action, "details": err.Error()})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// tenantID returns the organization set by the auth middleware
func tenantID(c *gin.Context) (uuid.UUID, bool) {
	orgID, ok := auth.GetOrganizationID(c)
	if !ok || orgID == uuid.Nil {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNoOrganization.Error()})
		return uuid.Nil, false
	}
	return orgID, true
}

// callerID returns the profile of the authenticated user
func callerID(c *gin.Context) (uuid.UUID, bool) {
	profileID, ok := auth.GetProfileID(c)
	if !ok || profileID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return profileID, true
}

// uuidParam parses a path parameter as UUID, answering 400 when it is malformed
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s ID", label)})
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery parses an optional query parameter as UUID
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return nil, false
	}
	return &id, true
}

// pageParams reads page and page_size with the usual defaults and bounds
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// bindJSON decodes the request body, answering 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}
