package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-backend/internal/config"
	"crm-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:         "test",
		JWTSecret:           "test-secret-with-enough-length-123456",
		JWTAudience:         "authenticated",
		AllowedOrigins:      []string{"http://localhost:3000"},
		WebhookDedupTTLSec:  60,
		ChatHistoryTTLHours: 1,
		ChatHistoryMaxTurns: 10,
		AIContextChunks:     5,
		MaxUploadBytes:      1 << 20,
	}
}

func testRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=crm password=crm dbname=crm sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	router, err := SetupRoutes(db, cfg, Infrastructure{Metrics: metrics.New()})
	require.NoError(t, err)
	return router
}

func request(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSetupRoutesRequiresJWTSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""

	_, err := SetupRoutes(nil, cfg, Infrastructure{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestProtectedRoutesRequireCredentials(t *testing.T) {
	router := testRouter(t, testConfig())

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"deals", http.MethodGet, "/api/v1/deals"},
		{"contact merge", http.MethodPost, "/api/v1/contacts/merge"},
		{"ai chat", http.MethodPost, "/api/v1/ai/chat"},
		{"whatsapp sessions", http.MethodGet, "/api/v1/whatsapp/sessions"},
		{"public contacts", http.MethodGet, "/public/v1/contacts"},
		{"public deals", http.MethodGet, "/public/v1/deals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := request(router, tt.method, tt.path, nil)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestInvalidBearerToken(t *testing.T) {
	router := testRouter(t, testConfig())

	recorder := request(router, http.MethodGet, "/api/v1/organization", map[string]string{
		"Authorization": "Bearer not-a-jwt",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestN8NCallbackWithoutSecretIsRejected(t *testing.T) {
	router := testRouter(t, testConfig())

	recorder := request(router, http.MethodPost, "/api/webhooks/n8n/document.processed", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestInfrastructureRoutes(t *testing.T) {
	router := testRouter(t, testConfig())

	recorder := request(router, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	recorder = request(router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "crm_http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter(t, testConfig())

	recorder := request(router, http.MethodGet, "/api/v1/nothing-here", map[string]string{"X-Request-ID": "abc"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Endpoint not found")
	assert.Contains(t, recorder.Body.String(), "abc")
}

func TestSetupHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupHealthRoutes(nil)

	recorder := request(router, http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
