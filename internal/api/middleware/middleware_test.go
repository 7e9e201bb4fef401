package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func serve(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestIDGenerated(t *testing.T) {
	router := newRouter(RequestID())

	recorder := serve(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	id := recorder.Header().Get(RequestIDHeader)
	assert.Len(t, id, 32)
	assert.Contains(t, recorder.Body.String(), id)
}

func TestRequestIDPropagated(t *testing.T) {
	router := newRouter(RequestID())

	recorder := serve(router, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "trace-123"})

	assert.Equal(t, "trace-123", recorder.Header().Get(RequestIDHeader))
}

func TestRecoveryReturnsInternalError(t *testing.T) {
	router := newRouter(RequestID(), Logger(), Recovery())

	recorder := serve(router, http.MethodGet, "/panic", map[string]string{RequestIDHeader: "trace-500"})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
	assert.Contains(t, recorder.Body.String(), "trace-500")
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://app.example.com"}}

	t.Run("allowed origin", func(t *testing.T) {
		router := newRouter(CORS(cfg))
		recorder := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "https://app.example.com"})

		assert.Equal(t, "https://app.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		router := newRouter(CORS(cfg))
		recorder := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "https://evil.example.com"})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		router := newRouter(CORS(cfg))
		recorder := serve(router, http.MethodOptions, "/ping", map[string]string{"Origin": "https://app.example.com"})

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "X-API-Key")
	})

	t.Run("wildcard", func(t *testing.T) {
		router := newRouter(CORS(&config.Config{AllowedOrigins: []string{"*"}}))
		recorder := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "https://any.example.com"})

		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Credentials"))
	})
}
