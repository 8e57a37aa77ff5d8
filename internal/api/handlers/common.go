package handlers

import (
	"errors"
	"net/http"

	"phishing-simulator-backend/internal/api/middleware"
	"phishing-simulator-backend/internal/auth"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MessageResponse is the body of endpoints that only confirm an action
type MessageResponse struct {
	Message string `json:"message" example:"Logout successful"`
}

// currentActor builds the service actor from the claims set by the auth middleware
func currentActor(c *gin.Context) (service.Actor, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return service.Actor{}, false
	}
	role, _ := auth.GetRole(c)
	return service.Actor{
		UserID:         userID,
		Role:           role,
		OrganizationID: auth.GetOrganizationID(c),
	}, true
}

// optionalActor returns the actor when the request carried a valid token
func optionalActor(c *gin.Context) *service.Actor {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return nil
	}
	role, _ := auth.GetRole(c)
	return &service.Actor{
		UserID:         userID,
		Role:           role,
		OrganizationID: auth.GetOrganizationID(c),
	}
}

// parseID reads a UUID path parameter, answering 400 when it is malformed
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// queryID reads an optional UUID filter from the query string
func queryID(c *gin.Context, key string, dst **uuid.UUID) bool {
	raw := c.Query(key)
	if raw == "" {
		return true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key + " ID: invalid UUID format"})
		return false
	}
	*dst = &id
	return true
}

// bindJSON decodes the request body, answering 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}

// bindQuery decodes list filters from the query string, answering 400 on failure
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return false
	}
	return true
}

// respondError maps a service error onto its HTTP status; action names the failed operation for 500s
func respondError(c *gin.Context, err error, action string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	status, ok := apperrors.HTTPStatus(err)
	if !ok {
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to " + action)
		middleware.CaptureError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action, "details": err.Error()})
		return
	}

	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		body := gin.H{"error": ve.Message}
		if ve.Field != "" {
			body["field"] = ve.Field
		}
		c.JSON(status, body)
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
