package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
)

// Context keys set by the middleware
const (
	ContextUserID         = "user_id"
	ContextEmail          = "email"
	ContextClaims         = "auth_claims"
	ContextProfile        = "profile"
	ContextProfileID      = "profile_id"
	ContextOrganizationID = "organization_id"
	ContextRole           = "role"
	ContextAPIKeyID       = "api_key_id"
)

// APIKeyHeader carries public API keys
const APIKeyHeader = "X-API-Key"

// AuthMiddleware provides JWT and API key authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token, loads the caller's profile and sets the tenant context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}
		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextClaims, claims)

		profile, err := m.service.LoadProfile(claims)
		if err != nil {
			switch {
			case apperrors.IsAuthorization(err):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			case apperrors.IsAuthentication(err):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			default:
				logger.WithContext(c).WithError(err).Error("Failed to load profile")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			}
			return
		}

		c.Set(ContextProfile, profile)
		c.Set(ContextProfileID, profile.ID)
		c.Set(ContextOrganizationID, *profile.OrganizationID)
		c.Set(ContextRole, profile.Role)
		c.Set(ContextEmail, profile.Email)

		c.Next()
	}
}

// RequireRole rejects callers whose profile role is not one of roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientRole.Error()})
	}
}

// RequireAPIKey authenticates public API calls and sets the key's organization as tenant
func (m *AuthMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		plain := c.GetHeader(APIKeyHeader)
		if plain == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-API-Key header is required"})
			return
		}

		key, err := m.service.ValidateAPIKey(plain)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			logger.WithContext(c).WithError(err).Error("Failed to validate api key")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate api key"})
			return
		}

		c.Set(ContextAPIKeyID, key.ID)
		c.Set(ContextOrganizationID, key.OrganizationID)
		c.Set(ContextUserID, "api-key:"+key.Prefix)

		c.Next()
	}
}

// GetOrganizationID extracts the tenant set by RequireAuth or RequireAPIKey
func GetOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextOrganizationID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetProfileID extracts the caller's profile id
func GetProfileID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextProfileID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetProfile extracts the caller's profile
func GetProfile(c *gin.Context) (*models.Profile, bool) {
	value, exists := c.Get(ContextProfile)
	if !exists {
		return nil, false
	}
	profile, ok := value.(*models.Profile)
	return profile, ok
}

// GetRole extracts the caller's role
func GetRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
