package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{revoked: map[string]time.Time{}}
}

func (b *memoryBlacklist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = expiresAt
	return nil
}

func (b *memoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.revoked[jti]
	return ok, nil
}

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:       "test-signing-key-for-jwt-operations",
		Issuer:          "phishing-simulator-backend",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func testUser() *models.User {
	orgID := uuid.New()
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Username:       "jdoe",
		Email:          "john.doe@example.com",
		Role:           models.UserRoleCustomer,
		OrganizationID: &orgID,
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive lifetimes", func(t *testing.T) {
		config := testConfig()
		config.AccessTokenTTL = 0
		assert.Error(t, config.ValidateConfig())

		config = testConfig()
		config.RefreshTokenTTL = -time.Minute
		assert.Error(t, config.ValidateConfig())
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig(), newMemoryBlacklist())
	require.NoError(t, err)

	user := testUser()
	pair, err := service.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	t.Run("access token carries user claims", func(t *testing.T) {
		claims, err := service.ValidateJWT(pair.Access)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "jdoe", claims.Username)
		assert.Equal(t, string(models.UserRoleCustomer), claims.Role)
		assert.Equal(t, user.OrganizationID.String(), claims.OrganizationID)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
		assert.NotEmpty(t, claims.ID)

		id, err := claims.UUID()
		require.NoError(t, err)
		assert.Equal(t, user.ID, id)
		assert.Equal(t, user.OrganizationID, claims.OrganizationUUID())
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		_, err := service.ValidateJWT(pair.Refresh)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		_, err := service.ValidateRefreshToken(context.Background(), pair.Access)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := service.ValidateJWT(pair.Access + "x")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-secret"
		otherService, err := NewAuthService(other, nil)
		require.NoError(t, err)

		token, err := otherService.GenerateAccessToken(user)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestUserWithoutOrganization(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	user := testUser()
	user.Role = models.UserRoleAdmin
	user.OrganizationID = nil

	token, err := service.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Empty(t, claims.OrganizationID)
	assert.Nil(t, claims.OrganizationUUID())
}

func TestRefreshTokenRevocation(t *testing.T) {
	blacklist := newMemoryBlacklist()
	service, err := NewAuthService(testConfig(), blacklist)
	require.NoError(t, err)

	pair, err := service.GenerateTokenPair(testUser())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = service.ValidateRefreshToken(ctx, pair.Refresh)
	require.NoError(t, err)

	require.NoError(t, service.RevokeRefreshToken(ctx, pair.Refresh))
	assert.Len(t, blacklist.revoked, 1)

	_, err = service.ValidateRefreshToken(ctx, pair.Refresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// revoking twice fails because the token is already blacklisted
	assert.ErrorIs(t, service.RevokeRefreshToken(ctx, pair.Refresh), ErrTokenRevoked)

	// access tokens are unaffected by refresh revocation
	_, err = service.ValidateJWT(pair.Access)
	assert.NoError(t, err)
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	service.now = func() time.Time { return issued }
	token, err := service.GenerateAccessToken(testUser())
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateJWT(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

type revokedTokenStore struct {
	revoked map[string]time.Time
	calls   []string
}

func (r *revokedTokenStore) Revoke(jti string, expiresAt time.Time) error {
	r.calls = append(r.calls, "revoke:"+jti)
	r.revoked[jti] = expiresAt
	return nil
}

func (r *revokedTokenStore) IsRevoked(jti string) (bool, error) {
	r.calls = append(r.calls, "check:"+jti)
	_, ok := r.revoked[jti]
	return ok, nil
}

func (r *revokedTokenStore) DeleteExpired(now time.Time) (int64, error) {
	return 0, nil
}

func TestDBBlacklist(t *testing.T) {
	repo := &revokedTokenStore{revoked: map[string]time.Time{}}
	blacklist := NewDBBlacklist(repo)
	expires := time.Now().Add(time.Hour)

	require.NoError(t, blacklist.Revoke(context.Background(), "jti-1", expires))
	revoked, err := blacklist.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = blacklist.IsRevoked(context.Background(), "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, []string{"revoke:jti-1", "check:jti-1", "check:jti-2"}, repo.calls)
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Str0ng!pass", ""},
		{"too short", "S0!a", "at least 8 characters"},
		{"no lowercase", "STR0NG!PASS", "lowercase"},
		{"no uppercase", "str0ng!pass", "uppercase"},
		{"no digit", "Strong!pass", "digit"},
		{"no special", "Str0ngpass", "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)
	assert.True(t, CheckPassword(hash, "Str0ng!pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	customer := testUser()
	target := testUser()
	target.Role = models.UserRoleTarget

	customerToken, err := service.GenerateAccessToken(customer)
	require.NoError(t, err)
	targetToken, err := service.GenerateAccessToken(target)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role})
	})
	router.GET("/managed", middleware.RequireAuth(), middleware.RequireManager(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/optional", middleware.OptionalAuth(), func(c *gin.Context) {
		_, ok := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	do := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		w := do("/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad header format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := do("/me", customerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, customer.ID.String(), body["id"])
		assert.Equal(t, "customer", body["role"])
	})

	t.Run("manager route", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, do("/managed", customerToken).Code)
		assert.Equal(t, http.StatusForbidden, do("/managed", targetToken).Code)
	})

	t.Run("admin route", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do("/admin", customerToken).Code)
	})

	t.Run("optional auth", func(t *testing.T) {
		w := do("/optional", "")
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

		w = do("/optional", "garbage")
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

		w = do("/optional", customerToken)
		assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
	})
}
