package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unreachableDB returns a handle whose pings fail fast
func unreachableDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=crm password=crm dbname=crm sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestHealthReportsUnhealthyDatabase(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	handler := NewHealthHandler(unreachableDB(t), DependencyCheck{
		Name:  "redis",
		Check: func(ctx context.Context) error { return nil },
	})
	httpSuite.Router.GET("/health", handler.Health)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Services["database"], "error")
	assert.Equal(t, "healthy", response.Services["redis"])
}

func TestHealthReportsFailingDependency(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	handler := NewHealthHandler(unreachableDB(t), DependencyCheck{
		Name:  "meilisearch",
		Check: func(ctx context.Context) error { return errors.New("connection refused") },
	})
	httpSuite.Router.GET("/health", handler.Health)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "error: connection refused", response.Services["meilisearch"])
}

func TestReadyNotReadyWithoutDatabase(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	handler := NewHealthHandler(unreachableDB(t))
	httpSuite.Router.GET("/health/ready", handler.Ready)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, false, response["ready"])
}

func TestLive(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	handler := NewHealthHandler(nil)
	httpSuite.Router.GET("/health/live", handler.Live)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}
