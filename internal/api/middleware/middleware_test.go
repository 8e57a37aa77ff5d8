package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokens map[string]string

func (s stubTokens) ValidateJWT(token string) (*auth.AuthClaims, error) {
	userID, ok := s[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &auth.AuthClaims{UserID: userID}, nil
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	return router
}

func get(router http.Handler, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	router := newRouter(RequestID())

	w := get(router, nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, generated, body["request_id"])

	w = get(router, http.Header{RequestIDHeader: {"req-123"}})
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRecoveryReturns500(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/ping", func(c *gin.Context) { panic("boom") })

	w := get(router, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestNotFound(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.NoRoute(NotFound())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/api/v1/missing", body["path"])
	assert.Equal(t, http.MethodPost, body["method"])
	assert.NotEmpty(t, body["request_id"])
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	router := newRouter(CORS(&config.Config{AllowedOrigins: []string{"https://app.example.com"}}))

	w := get(router, http.Header{"Origin": {"https://app.example.com"}})
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(router, http.Header{"Origin": {"https://evil.example.com"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsMiddlewarePassesThrough(t *testing.T) {
	router := newRouter(Metrics())

	w := get(router, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterAnonymousBudget(t *testing.T) {
	limiter := NewRateLimiter(nil, 10, 2)
	router := newRouter(limiter.Middleware())

	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusOK, get(router, nil).Code)

	w := get(router, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1800", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimiterKeysAuthenticatedCallersByUser(t *testing.T) {
	limiter := NewRateLimiter(stubTokens{"alice-token": "alice", "bob-token": "bob"}, 1, 1)
	router := newRouter(limiter.Middleware())
	alice := http.Header{"Authorization": {"Bearer alice-token"}}
	bob := http.Header{"Authorization": {"Bearer bob-token"}}

	assert.Equal(t, http.StatusOK, get(router, alice).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, alice).Code)
	// same IP, different user
	assert.Equal(t, http.StatusOK, get(router, bob).Code)
	// invalid tokens fall back to the IP budget
	assert.Equal(t, http.StatusOK, get(router, http.Header{"Authorization": {"Bearer forged"}}).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, nil).Code)
}

func TestKeyedLimiterRefillsAndSweeps(t *testing.T) {
	now := time.Now()
	l := newKeyedLimiter(2)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))

	now = now.Add(30 * time.Minute)
	assert.True(t, l.allow("a"))

	now = now.Add(3 * time.Hour)
	l.allow("b")
	l.mu.Lock()
	_, kept := l.visitors["a"]
	l.mu.Unlock()
	assert.False(t, kept)
}

func TestNewKeyedLimiterClampsBudget(t *testing.T) {
	l := newKeyedLimiter(0)

	assert.Equal(t, 1, l.burst)
}
