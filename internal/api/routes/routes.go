package routes

import (
	"context"
	"fmt"
	"time"

	"crm-backend/internal/api/handlers"
	"crm-backend/internal/api/middleware"
	"crm-backend/internal/auth"
	"crm-backend/internal/cache"
	"crm-backend/internal/config"
	"crm-backend/internal/database/models"
	"crm-backend/internal/messaging"
	"crm-backend/internal/metrics"
	"crm-backend/internal/repository"
	"crm-backend/internal/search"
	"crm-backend/internal/service"
	"crm-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Infrastructure carries the backing services connected at start-up. Nil members disable the
// features that need them.
type Infrastructure struct {
	Redis   *redis.Client
	Search  *search.ChunkIndex
	Storage *storage.S3Storage
	Metrics *metrics.Registry
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, infra Infrastructure) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	if infra.Metrics != nil {
		router.Use(infra.Metrics.Middleware())
	}

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	stageRepo := repository.NewStageRepository(db)
	dealRepo := repository.NewDealRepository(db)
	contactRepo := repository.NewContactRepository(db)
	identityRepo := repository.NewContactIdentityRepository(db)
	conversationRepo := repository.NewConversationLinkRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	productRepo := repository.NewProductRepository(db)
	labelMappingRepo := repository.NewLabelMappingRepository(db)
	apiKeyRepo := repository.NewAPIKeyRepository(db)
	trainingRepo := repository.NewAITrainingRepository(db)
	whatsappRepo := repository.NewWhatsAppRepository(db)

	// Optional backing services stay untyped nil when disabled so services can test for them
	var dedup service.WebhookDeduplicator
	var history service.ChatHistory
	if infra.Redis != nil {
		dedup = cache.NewWebhookDeduplicator(infra.Redis, time.Duration(cfg.WebhookDedupTTLSec)*time.Second)
		history = cache.NewChatHistoryStore(infra.Redis, time.Duration(cfg.ChatHistoryTTLHours)*time.Hour, cfg.ChatHistoryMaxTurns)
	}
	var searcher service.ChunkSearcher
	if infra.Search != nil {
		searcher = infra.Search
	}
	var objects service.ObjectStorage
	if infra.Storage != nil {
		objects = infra.Storage
	}
	n8nClient := service.NewN8NClient(cfg)
	var notifier service.Notifier
	if n8nClient.Enabled() {
		notifier = n8nClient
	}

	// Initialize services
	resolver := messaging.NewResolver(contactRepo, identityRepo)
	organizationService := service.NewOrganizationService(organizationRepo, boardRepo, validator)
	profileService := service.NewProfileService(profileRepo, validator)
	boardService := service.NewBoardService(boardRepo, stageRepo, validator)
	dealService := service.NewDealService(service.DealDependencies{
		Deals:     dealRepo,
		Boards:    boardRepo,
		Stages:    stageRepo,
		Contacts:  contactRepo,
		Companies: companyRepo,
		Products:  productRepo,
		Notifier:  notifier,
	}, validator)
	contactService := service.NewContactService(contactRepo, identityRepo, companyRepo, organizationRepo, resolver, validator)
	companyService := service.NewCompanyService(companyRepo, validator)
	productService := service.NewProductService(productRepo, validator)
	labelMappingService := service.NewLabelMappingService(labelMappingRepo, stageRepo, validator)
	apiKeyService := service.NewAPIKeyService(apiKeyRepo, validator)
	publicAPIService := service.NewPublicAPIService(contactRepo, dealRepo, contactService)
	conversationService := service.NewConversationService(service.ConversationDependencies{
		Links:    conversationRepo,
		Mappings: labelMappingRepo,
		Orgs:     organizationRepo,
		Contacts: contactRepo,
		Resolver: resolver,
		Deals:    dealService,
		Metrics:  infra.Metrics,
	}, validator)
	aiChatService := service.NewAIChatService(service.AIChatDependencies{
		LLM:           service.NewOpenAIClient(cfg),
		History:       history,
		Searcher:      searcher,
		Documents:     trainingRepo,
		Organizations: organizationRepo,
		Deals:         dealRepo,
		Contacts:      contactRepo,
		ContextChunks: cfg.AIContextChunks,
	}, validator)
	trainingService := service.NewAITrainingService(service.AITrainingDependencies{
		Documents:      trainingRepo,
		Storage:        objects,
		Searcher:       searcher,
		Notifier:       notifier,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	n8nCallbackService := service.NewN8NCallbackService(cfg, trainingService)

	chatwootService := service.NewChatwootService(cfg, service.NewChatwootClient(cfg), conversationService, dedup, infra.Metrics)
	whatsappService := service.NewWhatsAppService(cfg, service.WhatsAppDependencies{
		Repo:          whatsappRepo,
		Contacts:      contactRepo,
		Client:        service.NewWPPConnectClient(cfg),
		Conversations: conversationService,
		Dedup:         dedup,
		Metrics:       infra.Metrics,
	}, validator)
	instagramService := service.NewInstagramService(
		cfg,
		organizationRepo,
		service.NewInstagramGraphClient(context.Background(), cfg),
		conversationService,
		dedup,
		infra.Metrics,
	)
	conversationService.RegisterSender(models.ConversationChannelChatwoot, chatwootService)
	conversationService.RegisterSender(models.ConversationChannelWhatsApp, whatsappService)
	conversationService.RegisterSender(models.ConversationChannelInstagram, instagramService)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), profileRepo, apiKeyRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)

	// Initialize handlers
	var healthChecks []handlers.DependencyCheck
	if infra.Redis != nil {
		healthChecks = append(healthChecks, handlers.DependencyCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return infra.Redis.Ping(ctx).Err()
			},
		})
	}
	healthHandler := handlers.NewHealthHandler(db, healthChecks...)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	profileHandler := handlers.NewProfileHandler(profileService)
	boardHandler := handlers.NewBoardHandler(boardService)
	dealHandler := handlers.NewDealHandler(dealService)
	contactHandler := handlers.NewContactHandler(contactService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	productHandler := handlers.NewProductHandler(productService)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	labelMappingHandler := handlers.NewLabelMappingHandler(labelMappingService)
	apiKeyHandler := handlers.NewAPIKeyHandler(apiKeyService)
	aiHandler := handlers.NewAIHandler(aiChatService, trainingService)
	whatsappHandler := handlers.NewWhatsAppHandler(whatsappService)
	// chunk overlap makes a processed document's callback larger than the upload itself
	webhookHandler := handlers.NewWebhookHandler(chatwootService, whatsappService, instagramService, n8nCallbackService, 4*cfg.MaxUploadBytes)
	publicHandler := handlers.NewPublicAPIHandler(publicAPIService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if infra.Metrics != nil {
		router.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Webhooks authenticate with signatures and shared secrets
	webhooks := router.Group("/api/webhooks")
	{
		webhooks.POST("/chatwoot/:org_id", webhookHandler.Chatwoot)
		webhooks.POST("/wppconnect/:session", webhookHandler.WPPConnect)
		webhooks.GET("/instagram", webhookHandler.InstagramVerify)
		webhooks.POST("/instagram", webhookHandler.Instagram)
		webhooks.POST("/n8n/:event", webhookHandler.N8N)
	}

	// Public API routes - API key authentication
	public := router.Group("/public/v1")
	public.Use(authMiddleware.RequireAPIKey())
	{
		public.GET("/contacts", publicHandler.ListContacts)
		public.POST("/contacts", publicHandler.CreateContact)
		public.GET("/deals", publicHandler.ListDeals)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		v1.GET("/organization", organizationHandler.GetOrganization)
		v1.PUT("/organization", adminOnly, organizationHandler.UpdateOrganization)

		// Profile routes
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", profileHandler.ListProfiles)
			profiles.GET("/me", profileHandler.GetMe)
			profiles.PUT("/:id/role", adminOnly, profileHandler.UpdateRole)
		}

		// Board routes
		boards := v1.Group("/boards")
		{
			boards.GET("", boardHandler.ListBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PUT("/:id", boardHandler.UpdateBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
			boards.POST("/:id/stages", boardHandler.CreateStage)
			boards.PUT("/:id/stages/order", boardHandler.ReorderStages)
		}

		// Stage routes
		stages := v1.Group("/stages")
		{
			stages.PUT("/:id", boardHandler.UpdateStage)
			stages.DELETE("/:id", boardHandler.DeleteStage)
		}

		// Deal routes
		deals := v1.Group("/deals")
		{
			deals.GET("", dealHandler.ListDeals)
			deals.POST("", dealHandler.CreateDeal)
			deals.GET("/:id", dealHandler.GetDeal)
			deals.PUT("/:id", dealHandler.UpdateDeal)
			deals.DELETE("/:id", dealHandler.DeleteDeal)
			deals.PATCH("/:id/move", dealHandler.MoveDeal)
			deals.PATCH("/:id/status", dealHandler.UpdateDealStatus)
			deals.POST("/:id/items", dealHandler.AddItem)
			deals.PUT("/:id/items/:item_id", dealHandler.UpdateItem)
			deals.DELETE("/:id/items/:item_id", dealHandler.RemoveItem)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.SearchContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.POST("/resolve", contactHandler.ResolveContact)
			contacts.POST("/merge", adminOnly, contactHandler.MergeContacts)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
			contacts.GET("/:id/identities", contactHandler.ListIdentities)
			contacts.POST("/:id/identities", contactHandler.AddIdentity)
			contacts.DELETE("/:id/identities/:identity_id", contactHandler.RemoveIdentity)
			contacts.GET("/:id/conversations", conversationHandler.ListContactConversations)
		}

		// Company routes
		companies := v1.Group("/companies")
		{
			companies.GET("", companyHandler.SearchCompanies)
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PUT("/:id", companyHandler.UpdateCompany)
			companies.DELETE("/:id", companyHandler.DeleteCompany)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.SearchProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Conversation routes
		conversations := v1.Group("/conversations")
		{
			conversations.GET("/:id", conversationHandler.GetConversation)
			conversations.POST("/:id/messages", conversationHandler.Reply)
		}

		// Label mapping routes
		labelMappings := v1.Group("/label-mappings")
		{
			labelMappings.GET("", labelMappingHandler.ListLabelMappings)
			labelMappings.POST("", adminOnly, labelMappingHandler.CreateLabelMapping)
			labelMappings.DELETE("/:id", adminOnly, labelMappingHandler.DeleteLabelMapping)
		}

		// API key routes
		apiKeys := v1.Group("/api-keys", adminOnly)
		{
			apiKeys.GET("", apiKeyHandler.ListAPIKeys)
			apiKeys.POST("", apiKeyHandler.CreateAPIKey)
			apiKeys.DELETE("/:id", apiKeyHandler.RevokeAPIKey)
		}

		// AI routes
		ai := v1.Group("/ai")
		{
			ai.POST("/chat", aiHandler.Chat)
			ai.DELETE("/chat/:conversation_id", aiHandler.ClearHistory)
			ai.GET("/documents", aiHandler.ListDocuments)
			ai.POST("/documents", aiHandler.UploadDocument)
			ai.GET("/documents/:id", aiHandler.GetDocument)
			ai.DELETE("/documents/:id", aiHandler.DeleteDocument)
			ai.GET("/search", aiHandler.SearchDocuments)
		}

		// WhatsApp routes
		whatsapp := v1.Group("/whatsapp")
		{
			sessions := whatsapp.Group("/sessions", adminOnly)
			{
				sessions.GET("", whatsappHandler.ListSessions)
				sessions.POST("", whatsappHandler.CreateSession)
				sessions.POST("/:id/start", whatsappHandler.StartSession)
				sessions.GET("/:id/status", whatsappHandler.SessionStatus)
				sessions.GET("/:id/qrcode", whatsappHandler.SessionQRCode)
				sessions.POST("/:id/logout", whatsappHandler.LogoutSession)
			}
			whatsapp.GET("/messages", whatsappHandler.ListMessages)
			whatsapp.POST("/messages", whatsappHandler.SendMessage)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
