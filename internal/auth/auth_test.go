package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
)

type fakeProfiles struct {
	profiles map[uuid.UUID]*models.Profile
}

func (f *fakeProfiles) GetByID(id uuid.UUID) (*models.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeAPIKeys struct {
	keys     map[string]*models.APIKey
	touched  []uuid.UUID
	touchErr error
}

func (f *fakeAPIKeys) GetByPrefix(prefix string) (*models.APIKey, error) {
	if k, ok := f.keys[prefix]; ok {
		return k, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAPIKeys) TouchLastUsed(id uuid.UUID, _ time.Time) error {
	f.touched = append(f.touched, id)
	return f.touchErr
}

type fixture struct {
	service  *AuthService
	profiles *fakeProfiles
	apiKeys  *fakeAPIKeys
	orgID    uuid.UUID
	admin    *models.Profile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	orgID := uuid.New()
	admin := &models.Profile{Email: "admin@acme.com", Role: models.RoleAdmin, Active: true, OrganizationID: &orgID}
	admin.ID = uuid.New()

	profiles := &fakeProfiles{profiles: map[uuid.UUID]*models.Profile{admin.ID: admin}}
	apiKeys := &fakeAPIKeys{keys: map[string]*models.APIKey{}}

	service, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key", Audience: "authenticated"}, profiles, apiKeys)
	require.NoError(t, err)

	return &fixture{service: service, profiles: profiles, apiKeys: apiKeys, orgID: orgID, admin: admin}
}

func TestAuthConfig(t *testing.T) {
	assert.NoError(t, (&AuthConfig{JWTSecret: "secret"}).ValidateConfig())

	err := (&AuthConfig{}).ValidateConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")

	assert.Error(t, (&AuthConfig{JWTSecret: "secret", Leeway: -time.Second}).ValidateConfig())

	_, err = NewAuthService(&AuthConfig{}, nil, nil)
	assert.Error(t, err)
}

func TestJWTOperations(t *testing.T) {
	f := newFixture(t)

	t.Run("round trip", func(t *testing.T) {
		token, err := f.service.GenerateJWT(f.admin.ID, f.admin.Email, time.Hour)
		require.NoError(t, err)

		claims, err := f.service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, f.admin.ID.String(), claims.Subject)
		assert.Equal(t, "admin@acme.com", claims.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		f.service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := f.service.GenerateJWT(f.admin.ID, f.admin.Email, time.Hour)
		f.service.now = time.Now
		require.NoError(t, err)

		_, err = f.service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other-key"}, nil, nil)
		require.NoError(t, err)
		token, err := other.GenerateJWT(f.admin.ID, f.admin.Email, time.Hour)
		require.NoError(t, err)

		_, err = f.service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   f.admin.ID.String(),
			Audience:  jwt.ClaimStrings{"anon"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = f.service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("subject must be a uuid", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "12345",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = f.service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := f.service.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestLoadProfile(t *testing.T) {
	f := newFixture(t)

	inactive := &models.Profile{Email: "gone@acme.com", Role: models.RoleSeller, OrganizationID: &f.orgID}
	inactive.ID = uuid.New()
	orphan := &models.Profile{Email: "new@acme.com", Role: models.RoleSeller, Active: true}
	orphan.ID = uuid.New()
	f.profiles.profiles[inactive.ID] = inactive
	f.profiles.profiles[orphan.ID] = orphan

	claimsFor := func(id uuid.UUID) *AuthClaims {
		return &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()}}
	}

	profile, err := f.service.LoadProfile(claimsFor(f.admin.ID))
	require.NoError(t, err)
	assert.Equal(t, f.admin, profile)

	_, err = f.service.LoadProfile(claimsFor(uuid.New()))
	assert.ErrorIs(t, err, apperrors.ErrProfileMissing)

	_, err = f.service.LoadProfile(claimsFor(inactive.ID))
	assert.ErrorIs(t, err, apperrors.ErrProfileInactive)

	_, err = f.service.LoadProfile(claimsFor(orphan.ID))
	assert.ErrorIs(t, err, apperrors.ErrNoOrganization)
}

func TestAPIKeys(t *testing.T) {
	f := newFixture(t)

	generated, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(generated.Plain, "crm_"+generated.Prefix+"_"))

	key := &models.APIKey{Name: "zapier", Prefix: generated.Prefix, KeyHash: generated.Hash}
	key.ID = uuid.New()
	key.OrganizationID = f.orgID
	f.apiKeys.keys[generated.Prefix] = key

	t.Run("valid key", func(t *testing.T) {
		got, err := f.service.ValidateAPIKey(generated.Plain)
		require.NoError(t, err)
		assert.Equal(t, key.ID, got.ID)
		assert.Contains(t, f.apiKeys.touched, key.ID)
	})

	t.Run("last used write failure is logged", func(t *testing.T) {
		hook := logtest.NewGlobal()
		defer hook.Reset()
		f.apiKeys.touchErr = errors.New("connection reset")
		defer func() { f.apiKeys.touchErr = nil }()

		got, err := f.service.ValidateAPIKey(generated.Plain)
		require.NoError(t, err)
		assert.Equal(t, key.ID, got.ID)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "Failed to record api key use", entry.Message)
		assert.Equal(t, key.ID, entry.Data["api_key_id"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := f.service.ValidateAPIKey("crm_" + generated.Prefix + "_deadbeef")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAPIKey)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := f.service.ValidateAPIKey("crm_00000000_deadbeef")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAPIKey)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, plain := range []string{"", "crm_", "sk_abc_def", "crm__secret"} {
			_, err := f.service.ValidateAPIKey(plain)
			assert.ErrorIs(t, err, apperrors.ErrInvalidAPIKey, plain)
		}
	})

	t.Run("revoked", func(t *testing.T) {
		now := time.Now()
		key.RevokedAt = &now
		defer func() { key.RevokedAt = nil }()

		_, err := f.service.ValidateAPIKey(generated.Plain)
		assert.ErrorIs(t, err, apperrors.ErrAPIKeyRevoked)
	})
}

func newRouter(f *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(f.service)

	router := gin.New()
	private := router.Group("/api", m.RequireAuth())
	private.GET("/whoami", func(c *gin.Context) {
		orgID, _ := GetOrganizationID(c)
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{"organization_id": orgID, "role": role})
	})
	private.GET("/admin", m.RequireRole(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	private.GET("/managers", m.RequireRole(models.RoleManager), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	public := router.Group("/public", m.RequireAPIKey())
	public.GET("/ping", func(c *gin.Context) {
		orgID, _ := GetOrganizationID(c)
		c.JSON(http.StatusOK, gin.H{"organization_id": orgID})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)

	token, err := f.service.GenerateJWT(f.admin.ID, f.admin.Email, time.Hour)
	require.NoError(t, err)
	stranger, err := f.service.GenerateJWT(uuid.New(), "who@acme.com", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		path   string
		status int
	}{
		{"missing header", "", "/api/whoami", http.StatusUnauthorized},
		{"not bearer", "Basic abc", "/api/whoami", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", "/api/whoami", http.StatusUnauthorized},
		{"unknown profile", "Bearer " + stranger, "/api/whoami", http.StatusForbidden},
		{"valid", "Bearer " + token, "/api/whoami", http.StatusOK},
		{"admin route", "Bearer " + token, "/api/admin", http.StatusNoContent},
		{"manager route", "Bearer " + token, "/api/managers", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, f.orgID.String(), body["organization_id"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireAPIKey(t *testing.T) {
	f := newFixture(t)
	router := newRouter(f)

	generated, err := GenerateAPIKey()
	require.NoError(t, err)
	key := &models.APIKey{Prefix: generated.Prefix, KeyHash: generated.Hash}
	key.ID = uuid.New()
	key.OrganizationID = f.orgID
	f.apiKeys.keys[generated.Prefix] = key

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public/ping", nil)
	req.Header.Set(APIKeyHeader, "crm_bad_key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/public/ping", nil)
	req.Header.Set(APIKeyHeader, generated.Plain)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), f.orgID.String())
}
