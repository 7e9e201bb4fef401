package auth

import (
	"fmt"
	"time"

	"crm-backend/internal/config"
)

// AuthConfig holds token validation settings. Access tokens are issued by the hosted auth
// provider; this service only validates them.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	Audience  string        `yaml:"audience" json:"audience"`
	Leeway    time.Duration `yaml:"leeway" json:"leeway"`
}

// NewAuthConfig derives the auth configuration from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
		Leeway:    30 * time.Second,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Leeway < 0 {
		return fmt.Errorf("leeway must not be negative")
	}
	return nil
}
