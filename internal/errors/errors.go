package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrProfileNotFound      = &NotFoundError{Entity: "profile"}
	ErrBoardNotFound        = &NotFoundError{Entity: "board"}
	ErrStageNotFound        = &NotFoundError{Entity: "stage"}
	ErrDealNotFound         = &NotFoundError{Entity: "deal"}
	ErrDealItemNotFound     = &NotFoundError{Entity: "deal item"}
	ErrProductNotFound      = &NotFoundError{Entity: "product"}
	ErrContactNotFound      = &NotFoundError{Entity: "contact"}
	ErrCompanyNotFound      = &NotFoundError{Entity: "company"}
	ErrIdentityNotFound     = &NotFoundError{Entity: "contact identity"}
	ErrDocumentNotFound     = &NotFoundError{Entity: "training document"}
	ErrConversationNotFound = &NotFoundError{Entity: "conversation"}
	ErrLabelMappingNotFound = &NotFoundError{Entity: "label mapping"}
	ErrSessionNotFound      = &NotFoundError{Entity: "whatsapp session"}
	ErrAPIKeyNotFound       = &NotFoundError{Entity: "api key"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrProductExists      = &AlreadyExistsError{Entity: "product", Context: "with this SKU in the organization"}
	ErrIdentityExists     = &AlreadyExistsError{Entity: "contact identity", Context: "for another contact"}
	ErrLabelMappingExists = &AlreadyExistsError{Entity: "label mapping", Context: "for this label"}
	ErrSessionExists      = &AlreadyExistsError{Entity: "whatsapp session", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidRole             = errors.New("invalid role")
	ErrStageNotEmpty           = errors.New("stage still has deals")
	ErrStageBoardMismatch      = errors.New("stage does not belong to the deal's board")
	ErrMergeSameContact        = errors.New("cannot merge a contact into itself")
	ErrInvalidCursor           = errors.New("invalid cursor")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds the maximum upload size")
	ErrNoConnectedSession      = errors.New("no connected whatsapp session")
	ErrUnknownEvent            = errors.New("unknown event")
	ErrNoIdentity              = &ValidationError{Field: "identity", Message: "no usable phone, e-mail or channel id"}
)

// Authentication Errors
var (
	ErrMissingToken         = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid or expired token"}
	ErrInvalidAPIKey        = &AuthenticationError{Message: "invalid api key"}
	ErrAPIKeyRevoked        = &AuthenticationError{Message: "api key revoked"}
	ErrInvalidSignature     = &AuthenticationError{Message: "invalid webhook signature"}
	ErrStaleWebhook         = &AuthenticationError{Message: "webhook timestamp outside the allowed window"}
	ErrProfileMissing       = &AuthorizationError{Message: "profile not found for authenticated user"}
	ErrNoOrganization       = &AuthorizationError{Message: "profile is not assigned to an organization"}
	ErrProfileInactive      = &AuthorizationError{Message: "profile is inactive"}
	ErrInsufficientRole     = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrCrossTenantReference = &AuthorizationError{Message: "referenced entity belongs to another organization"}
)

// Configuration Errors
var (
	ErrLLMNotConfigured        = &ConfigurationError{Message: "AI provider is not configured: set LLM_API_KEY"}
	ErrStorageNotConfigured    = &ConfigurationError{Message: "object storage is not configured"}
	ErrChatwootNotConfigured   = &ConfigurationError{Message: "chatwoot is not configured: set CHATWOOT_BASE_URL and CHATWOOT_API_TOKEN"}
	ErrWPPConnectNotConfigured = &ConfigurationError{Message: "wppconnect is not configured: set WPPCONNECT_BASE_URL and WPPCONNECT_SECRET_KEY"}
	ErrInstagramNotConfigured  = &ConfigurationError{Message: "instagram is not configured: set INSTAGRAM_ACCESS_TOKEN"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
