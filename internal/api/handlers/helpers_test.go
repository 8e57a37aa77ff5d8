package handlers

import (
	"context"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// claimsMiddleware stands in for RequireAuth. The claims pointer is read per request so a
// test can switch callers; a nil claims value leaves the request anonymous.
func claimsMiddleware(claims **auth.AuthClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := *claims
		if current != nil {
			c.Set(auth.ContextUserID, current.UserID)
			c.Set(auth.ContextUsername, current.Username)
			c.Set(auth.ContextEmail, current.Email)
			c.Set(auth.ContextRole, current.Role)
			c.Set(auth.ContextOrganizationID, current.OrganizationID)
			c.Set(auth.ContextAuthClaims, current)
			c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.UserIDKey, current.UserID))
		}
		c.Next()
	}
}

func managerClaims(orgID uuid.UUID) *auth.AuthClaims {
	return &auth.AuthClaims{
		UserID:         uuid.New().String(),
		Username:       "manager",
		Email:          "manager@example.com",
		Role:           string(models.UserRoleCustomer),
		OrganizationID: orgID.String(),
		TokenType:      auth.TokenTypeAccess,
	}
}

func adminClaims() *auth.AuthClaims {
	return &auth.AuthClaims{
		UserID:    uuid.New().String(),
		Username:  "admin",
		Email:     "admin@example.com",
		Role:      string(models.UserRoleAdmin),
		TokenType: auth.TokenTypeAccess,
	}
}

// actorFor is the service actor the handlers derive from claims
func actorFor(claims *auth.AuthClaims) service.Actor {
	return service.Actor{
		UserID:         uuid.MustParse(claims.UserID),
		Role:           models.UserRole(claims.Role),
		OrganizationID: claims.OrganizationUUID(),
	}
}
