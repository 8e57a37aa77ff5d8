package auth

import (
	"context"
	"net/http"
	"strings"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set on the gin context by the middleware
const (
	ContextUserID         = "user_id"
	ContextUsername       = "username"
	ContextEmail          = "email"
	ContextRole           = "role"
	ContextOrganizationID = "organization_id"
	ContextAuthClaims     = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" || tokenString == c.GetHeader("Authorization") {
			c.Next()
			return
		}

		if claims, err := m.service.ValidateJWT(tokenString); err == nil {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

// RequireManager lets through organization admins and customers; must run after RequireAuth
func (m *AuthMiddleware) RequireManager() gin.HandlerFunc {
	return requireRole(func(role models.UserRole) bool { return role.IsManager() },
		"Only organization admins or customers can access this resource")
}

// RequireAdmin lets through platform admins only; must run after RequireAuth
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return requireRole(func(role models.UserRole) bool { return role == models.UserRoleAdmin },
		"Only platform admins can access this resource")
}

// ValidateQueryToken validates an access token passed out of band, e.g. as a websocket query parameter
func (m *AuthMiddleware) ValidateQueryToken(token string) (*AuthClaims, error) {
	return m.service.ValidateJWT(token)
}

func requireRole(allowed func(models.UserRole) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !allowed(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": message})
			c.Abort()
			return
		}
		c.Next()
	}
}

func setUserContext(c *gin.Context, claims *AuthClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextOrganizationID, claims.OrganizationID)
	c.Set(ContextAuthClaims, claims)

	// Mirror onto the request context so services can log with logger.WithContext
	ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, logger.UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, logger.OrganizationIDKey, claims.OrganizationID)
	c.Request = c.Request.WithContext(ctx)
}

func fromContext[T any](c *gin.Context, key string) (T, bool) {
	var zero T
	raw, exists := c.Get(key)
	if !exists {
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// GetUserID returns the authenticated user's ID
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	str, ok := fromContext[string](c, ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	return id, err == nil
}

func GetRole(c *gin.Context) (models.UserRole, bool) {
	role, ok := fromContext[string](c, ContextRole)
	return models.UserRole(role), ok
}

// GetOrganizationID returns the caller's organization, nil when they have none
func GetOrganizationID(c *gin.Context) *uuid.UUID {
	claims, ok := GetAuthClaims(c)
	if !ok {
		return nil
	}
	return claims.OrganizationUUID()
}

func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	return fromContext[*AuthClaims](c, ContextAuthClaims)
}
