package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 2 * time.Hour

// TokenValidator identifies the caller behind a bearer token
type TokenValidator interface {
	ValidateJWT(token string) (*auth.AuthClaims, error)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter hands out one token bucket per key
type keyedLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newKeyedLimiter(perHour int) *keyedLimiter {
	if perHour < 1 {
		perHour = 1
	}
	return &keyedLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(float64(perHour) / time.Hour.Seconds()),
		burst:    perHour,
		now:      time.Now,
	}
}

func (l *keyedLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimiter budgets requests per user when a valid token is present, otherwise per client IP
type RateLimiter struct {
	tokens        TokenValidator
	authenticated *keyedLimiter
	anonymous     *keyedLimiter
}

// NewRateLimiter creates a limiter with hourly budgets; tokens may be nil to limit by IP only
func NewRateLimiter(tokens TokenValidator, authenticatedPerHour, anonymousPerHour int) *RateLimiter {
	return &RateLimiter{
		tokens:        tokens,
		authenticated: newKeyedLimiter(authenticatedPerHour),
		anonymous:     newKeyedLimiter(anonymousPerHour),
	}
}

// Middleware enforces the budgets, answering 429 when one is spent
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter, key := r.anonymous, "ip:"+c.ClientIP()
		if userID, ok := r.identify(c); ok {
			limiter, key = r.authenticated, "user:"+userID
		}

		if !limiter.allow(key) {
			logger.WithContext(c.Request.Context()).WithField("key", key).Warn("rate limit exceeded")
			retryAfter := int(time.Hour.Seconds() / float64(limiter.burst))
			c.Header("Retry-After", fmt.Sprintf("%d", max(retryAfter, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) identify(c *gin.Context) (string, bool) {
	if r.tokens == nil {
		return "", false
	}
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return "", false
	}
	claims, err := r.tokens.ValidateJWT(token)
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}
