package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-backend/internal/api/routes"
	"crm-backend/internal/cache"
	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/logger"
	"crm-backend/internal/metrics"
	"crm-backend/internal/search"
	"crm-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "crm-backend/docs" // This is needed for swag
)

//	@title			CRM Backend API
//	@version		1.0
//	@description	Multi-tenant CRM: pipelines, deals, contacts with cross-channel identity resolution, Chatwoot, WhatsApp and Instagram inboxes, and an AI assistant trained on your documents.

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
//	@description				Public API key (crm_<prefix>_<secret>).

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	infra := connectInfrastructure(cfg)
	if infra.Redis != nil {
		defer infra.Redis.Close()
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, infra)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}

// connectInfrastructure connects the optional backing services. A service that is not configured
// or not reachable disables the features depending on it instead of stopping the server.
func connectInfrastructure(cfg *config.Config) routes.Infrastructure {
	infra := routes.Infrastructure{Metrics: metrics.New()}

	if cfg.RedisURL != "" {
		client, err := cache.NewClient(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable: webhook de-duplication and AI chat history disabled")
		} else {
			infra.Redis = client
		}
	}

	if cfg.MeiliURL != "" {
		index := search.NewChunkIndex(cfg.MeiliURL, cfg.MeiliAPIKey, cfg.MeiliIndex)
		if err := index.EnsureIndex(); err != nil {
			logrus.WithError(err).Warn("Meilisearch unavailable: retrieval falls back to the database")
		} else {
			infra.Search = index
		}
	}

	if cfg.StorageConfigured() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		store, err := storage.NewS3Storage(ctx, storage.OptionsFromConfig(cfg))
		if err == nil {
			err = store.EnsureBucket(ctx)
		}
		if err != nil {
			logrus.WithError(err).Warn("Object storage unavailable: document uploads disabled")
		} else {
			infra.Storage = store
		}
	}

	return infra
}
