package auth

import (
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
)

const (
	apiKeyScheme       = "crm"
	apiKeyPrefixBytes  = 4
	apiKeySecretBytes  = 24
	defaultTokenExpiry = time.Hour
)

// ProfileLookup loads the CRM profile behind a token subject
type ProfileLookup interface {
	GetByID(id uuid.UUID) (*models.Profile, error)
}

// APIKeyLookup loads public API keys by their visible prefix
type APIKeyLookup interface {
	GetByPrefix(prefix string) (*models.APIKey, error)
	TouchLastUsed(id uuid.UUID, at time.Time) error
}

// AuthClaims represents the claims of an access token. The subject is the profile id.
type AuthClaims struct {
	Email                string `json:"email,omitempty" example:"jane@acme.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService validates access tokens and public API keys
type AuthService struct {
	config   *AuthConfig
	profiles ProfileLookup
	apiKeys  APIKeyLookup
	now      func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, profiles ProfileLookup, apiKeys APIKeyLookup) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		profiles: profiles,
		apiKeys:  apiKeys,
		now:      time.Now,
	}, nil
}

// GenerateJWT signs an access token for a profile. Production tokens come from the auth
// provider; this is used by the admin CLI and tests.
func (s *AuthService) GenerateJWT(profileID uuid.UUID, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenExpiry
	}
	now := s.now()
	claims := &AuthClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
		},
	}
	if s.config.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.config.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.config.Leeway),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}
	if s.config.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.config.Audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("token subject is not a profile id")
	}
	return claims, nil
}

// LoadProfile returns the active, tenant-bound profile of a token subject
func (s *AuthService) LoadProfile(claims *AuthClaims) (*models.Profile, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	profile, err := s.profiles.GetByID(id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileMissing
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !profile.Active {
		return nil, apperrors.ErrProfileInactive
	}
	if profile.OrganizationID == nil {
		return nil, apperrors.ErrNoOrganization
	}
	return profile, nil
}

// GeneratedAPIKey holds a freshly generated key. Plain is shown to the caller once.
type GeneratedAPIKey struct {
	Plain  string
	Prefix string
	Hash   string
}

// GenerateAPIKey creates a random key of the form crm_<prefix>_<secret>
func GenerateAPIKey() (*GeneratedAPIKey, error) {
	prefix, err := randomHex(apiKeyPrefixBytes)
	if err != nil {
		return nil, err
	}
	secret, err := randomHex(apiKeySecretBytes)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash api key: %w", err)
	}

	return &GeneratedAPIKey{
		Plain:  fmt.Sprintf("%s_%s_%s", apiKeyScheme, prefix, secret),
		Prefix: prefix,
		Hash:   string(hash),
	}, nil
}

// ParseAPIKey splits a plain key into its prefix and secret
func ParseAPIKey(plain string) (prefix, secret string, err error) {
	parts := strings.SplitN(strings.TrimSpace(plain), "_", 3)
	if len(parts) != 3 || parts[0] != apiKeyScheme || parts[1] == "" || parts[2] == "" {
		return "", "", apperrors.ErrInvalidAPIKey
	}
	return parts[1], parts[2], nil
}

// ValidateAPIKey resolves a plain key to its stored record
func (s *AuthService) ValidateAPIKey(plain string) (*models.APIKey, error) {
	prefix, secret, err := ParseAPIKey(plain)
	if err != nil {
		return nil, err
	}

	key, err := s.apiKeys.GetByPrefix(prefix)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidAPIKey
		}
		return nil, fmt.Errorf("failed to load api key: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(secret)) != nil {
		return nil, apperrors.ErrInvalidAPIKey
	}
	if key.IsRevoked() {
		return nil, apperrors.ErrAPIKeyRevoked
	}

	// last_used_at is informational
	if err := s.apiKeys.TouchLastUsed(key.ID, s.now()); err != nil {
		logger.New().WithError(err).WithField("api_key_id", key.ID).Warn("Failed to record api key use")
	}
	return key, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
