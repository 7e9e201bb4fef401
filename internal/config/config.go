package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	PublicURL   string `mapstructure:"PUBLIC_URL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration. Tokens are issued by the hosted auth provider and signed with HS256.
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTIssuer   string `mapstructure:"JWT_ISSUER"`
	JWTAudience string `mapstructure:"JWT_AUDIENCE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration
	RedisURL            string `mapstructure:"REDIS_URL"`
	WebhookDedupTTLSec  int    `mapstructure:"WEBHOOK_DEDUP_TTL_SEC"`
	ChatHistoryTTLHours int    `mapstructure:"CHAT_HISTORY_TTL_HOURS"`
	ChatHistoryMaxTurns int    `mapstructure:"CHAT_HISTORY_MAX_TURNS"`

	// Object storage configuration
	S3Endpoint     string `mapstructure:"S3_ENDPOINT"`
	S3Region       string `mapstructure:"S3_REGION"`
	S3Bucket       string `mapstructure:"S3_BUCKET"`
	S3AccessKey    string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey    string `mapstructure:"S3_SECRET_KEY"`
	S3UsePathStyle bool   `mapstructure:"S3_USE_PATH_STYLE"`

	// Meilisearch configuration
	MeiliURL    string `mapstructure:"MEILI_URL"`
	MeiliAPIKey string `mapstructure:"MEILI_API_KEY"`
	MeiliIndex  string `mapstructure:"MEILI_INDEX"`

	// LLM configuration (OpenAI compatible chat completions)
	LLMBaseURL      string  `mapstructure:"LLM_BASE_URL"`
	LLMAPIKey       string  `mapstructure:"LLM_API_KEY"`
	LLMModel        string  `mapstructure:"LLM_MODEL"`
	LLMTemperature  float64 `mapstructure:"LLM_TEMPERATURE"`
	LLMMaxTokens    int     `mapstructure:"LLM_MAX_TOKENS"`
	AIContextChunks int     `mapstructure:"AI_CONTEXT_CHUNKS"`

	// Chatwoot configuration
	ChatwootBaseURL       string `mapstructure:"CHATWOOT_BASE_URL"`
	ChatwootAPIToken      string `mapstructure:"CHATWOOT_API_TOKEN"`
	ChatwootWebhookSecret string `mapstructure:"CHATWOOT_WEBHOOK_SECRET"`

	// WPPConnect configuration
	WPPConnectBaseURL   string `mapstructure:"WPPCONNECT_BASE_URL"`
	WPPConnectSecretKey string `mapstructure:"WPPCONNECT_SECRET_KEY"`

	// Instagram configuration
	InstagramAppSecret   string `mapstructure:"INSTAGRAM_APP_SECRET"`
	InstagramVerifyToken string `mapstructure:"INSTAGRAM_VERIFY_TOKEN"`
	InstagramAccessToken string `mapstructure:"INSTAGRAM_ACCESS_TOKEN"`
	InstagramGraphURL    string `mapstructure:"INSTAGRAM_GRAPH_URL"`

	// N8N configuration
	N8NWebhookURL string `mapstructure:"N8N_WEBHOOK_URL"`
	N8NSecret     string `mapstructure:"N8N_SECRET"`

	// Upload limits
	MaxUploadBytes int64 `mapstructure:"MAX_UPLOAD_BYTES"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PUBLIC_URL", "http://localhost:8080")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "crm")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("JWT_AUDIENCE", "authenticated")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Redis defaults
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("WEBHOOK_DEDUP_TTL_SEC", 86400)
	viper.SetDefault("CHAT_HISTORY_TTL_HOURS", 24)
	viper.SetDefault("CHAT_HISTORY_MAX_TURNS", 20)

	// Object storage defaults
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "ai-training")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_USE_PATH_STYLE", true)

	// Meilisearch defaults
	viper.SetDefault("MEILI_URL", "")
	viper.SetDefault("MEILI_API_KEY", "")
	viper.SetDefault("MEILI_INDEX", "ai_chunks")

	// LLM defaults
	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_TEMPERATURE", 0.3)
	viper.SetDefault("LLM_MAX_TOKENS", 800)
	viper.SetDefault("AI_CONTEXT_CHUNKS", 5)

	// Chatwoot defaults
	viper.SetDefault("CHATWOOT_BASE_URL", "")
	viper.SetDefault("CHATWOOT_API_TOKEN", "")
	viper.SetDefault("CHATWOOT_WEBHOOK_SECRET", "")

	// WPPConnect defaults
	viper.SetDefault("WPPCONNECT_BASE_URL", "")
	viper.SetDefault("WPPCONNECT_SECRET_KEY", "")

	// Instagram defaults
	viper.SetDefault("INSTAGRAM_APP_SECRET", "")
	viper.SetDefault("INSTAGRAM_VERIFY_TOKEN", "")
	viper.SetDefault("INSTAGRAM_ACCESS_TOKEN", "")
	viper.SetDefault("INSTAGRAM_GRAPH_URL", "https://graph.facebook.com/v19.0")

	// N8N defaults
	viper.SetDefault("N8N_WEBHOOK_URL", "")
	viper.SetDefault("N8N_SECRET", "")

	viper.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret || config.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.ChatwootBaseURL != "" && config.ChatwootWebhookSecret == "" {
			return fmt.Errorf("CHATWOOT_WEBHOOK_SECRET must be set when Chatwoot is enabled in production")
		}
		if config.InstagramAccessToken != "" && config.InstagramAppSecret == "" {
			return fmt.Errorf("INSTAGRAM_APP_SECRET must be set when Instagram is enabled in production")
		}
		if config.N8NWebhookURL != "" && config.N8NSecret == "" {
			return fmt.Errorf("N8N_SECRET must be set when N8N is enabled in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}
	if config.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LLMConfigured reports whether AI chat can call the model provider
func (c *Config) LLMConfigured() bool {
	return c.LLMAPIKey != "" && c.LLMBaseURL != ""
}

// StorageConfigured reports whether training documents can be stored
func (c *Config) StorageConfigured() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
