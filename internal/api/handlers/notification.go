package handlers

import (
	"context"
	"fmt"
	"net/http"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/metrics"
	"phishing-simulator-backend/internal/realtime"
	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// TokenValidator checks the access token a websocket client passes in the query string
type TokenValidator interface {
	ValidateQueryToken(token string) (*auth.AuthClaims, error)
}

// SocketServer pumps notifications to an upgraded connection until it closes
type SocketServer interface {
	Serve(ctx context.Context, conn *websocket.Conn, userID uuid.UUID)
}

// NotificationHandler handles notifications, preferences, alert rules and the notification socket
type NotificationHandler struct {
	service service.NotificationServiceInterface
	tokens  TokenValidator
	sockets SocketServer
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface, tokens TokenValidator, sockets SocketServer) *NotificationHandler {
	return &NotificationHandler{service: service, tokens: tokens, sockets: sockets}
}

// ListNotifications handles GET /api/v1/notifications
// @Summary List my notifications
// @Tags notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search title or message"
// @Param notification_type query string false "Filter by type"
// @Param priority query string false "Filter by priority"
// @Param is_read query bool false "Filter by read flag"
// @Success 200 {object} service.NotificationListResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.NotificationListRequest
	if !bindQuery(c, &req) {
		return
	}

	notifications, err := h.service.List(actor, &req)
	if err != nil {
		respondError(c, err, "list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetNotification handles GET /api/v1/notifications/:id
// @Summary Get notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} service.NotificationResponse
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id} [get]
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "notification")
	if !ok {
		return
	}

	notification, err := h.service.Get(actor, id)
	if err != nil {
		respondError(c, err, "get notification")
		return
	}
	c.JSON(http.StatusOK, notification)
}

// UpdateNotification handles PUT /api/v1/notifications/:id
// @Summary Update notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Param notification body service.UpdateNotificationRequest true "Fields to update"
// @Success 200 {object} service.NotificationResponse
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id} [put]
func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "notification")
	if !ok {
		return
	}
	var req service.UpdateNotificationRequest
	if !bindJSON(c, &req) {
		return
	}

	notification, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "update notification")
		return
	}
	c.JSON(http.StatusOK, notification)
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} service.NotificationResponse
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "notification")
	if !ok {
		return
	}

	notification, err := h.service.MarkRead(actor, id)
	if err != nil {
		respondError(c, err, "mark notification read")
		return
	}
	c.JSON(http.StatusOK, notification)
}

// MarkAllRead handles POST /api/v1/notifications/mark-all-read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /notifications/mark-all-read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	count, err := h.service.MarkAllRead(actor)
	if err != nil {
		respondError(c, err, "mark notifications read")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("%d notifications marked as read", count)})
}

// Statistics handles GET /api/v1/notifications/statistics
// @Summary Notification statistics
// @Tags notifications
// @Produce json
// @Success 200 {object} service.NotificationStatisticsResponse
// @Security BearerAuth
// @Router /notifications/statistics [get]
func (h *NotificationHandler) Statistics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(actor)
	if err != nil {
		respondError(c, err, "get notification statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetPreferences handles GET /api/v1/notifications/preferences
// @Summary Get notification preferences
// @Tags notifications
// @Produce json
// @Success 200 {object} models.NotificationPreference
// @Security BearerAuth
// @Router /notifications/preferences [get]
func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	prefs, err := h.service.GetPreferences(actor)
	if err != nil {
		respondError(c, err, "get notification preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /api/v1/notifications/preferences
// @Summary Update notification preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param preferences body service.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} models.NotificationPreference
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /notifications/preferences [put]
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := h.service.UpdatePreferences(actor, &req)
	if err != nil {
		respondError(c, err, "update notification preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ListAlertRules handles GET /api/v1/notifications/alert-rules
// @Summary List alert rules
// @Tags alert-rules
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name"
// @Success 200 {object} service.AlertRuleListResponse
// @Failure 403 {object} map[string]interface{} "Managers only"
// @Security BearerAuth
// @Router /notifications/alert-rules [get]
func (h *NotificationHandler) ListAlertRules(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	rules, err := h.service.ListAlertRules(actor, params)
	if err != nil {
		respondError(c, err, "list alert rules")
		return
	}
	c.JSON(http.StatusOK, rules)
}

// CreateAlertRule handles POST /api/v1/notifications/alert-rules
// @Summary Create alert rule
// @Tags alert-rules
// @Accept json
// @Produce json
// @Param rule body service.AlertRuleRequest true "Alert rule"
// @Success 201 {object} service.AlertRuleResponse
// @Failure 400 {object} map[string]interface{} "Invalid notify users"
// @Security BearerAuth
// @Router /notifications/alert-rules [post]
func (h *NotificationHandler) CreateAlertRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.AlertRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.service.CreateAlertRule(actor, &req)
	if err != nil {
		respondError(c, err, "create alert rule")
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// GetAlertRule handles GET /api/v1/notifications/alert-rules/:id
// @Summary Get alert rule
// @Tags alert-rules
// @Produce json
// @Param id path string true "Alert rule ID (UUID)"
// @Success 200 {object} service.AlertRuleResponse
// @Failure 404 {object} map[string]interface{} "Alert rule not found"
// @Security BearerAuth
// @Router /notifications/alert-rules/{id} [get]
func (h *NotificationHandler) GetAlertRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "alert rule")
	if !ok {
		return
	}

	rule, err := h.service.GetAlertRule(actor, id)
	if err != nil {
		respondError(c, err, "get alert rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// UpdateAlertRule handles PUT /api/v1/notifications/alert-rules/:id
// @Summary Update alert rule
// @Tags alert-rules
// @Accept json
// @Produce json
// @Param id path string true "Alert rule ID (UUID)"
// @Param rule body service.AlertRuleRequest true "Alert rule"
// @Success 200 {object} service.AlertRuleResponse
// @Failure 404 {object} map[string]interface{} "Alert rule not found"
// @Security BearerAuth
// @Router /notifications/alert-rules/{id} [put]
func (h *NotificationHandler) UpdateAlertRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "alert rule")
	if !ok {
		return
	}
	var req service.AlertRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.service.UpdateAlertRule(actor, id, &req)
	if err != nil {
		respondError(c, err, "update alert rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeleteAlertRule handles DELETE /api/v1/notifications/alert-rules/:id
// @Summary Delete alert rule
// @Tags alert-rules
// @Param id path string true "Alert rule ID (UUID)"
// @Success 204 "Alert rule deleted"
// @Failure 404 {object} map[string]interface{} "Alert rule not found"
// @Security BearerAuth
// @Router /notifications/alert-rules/{id} [delete]
func (h *NotificationHandler) DeleteAlertRule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "alert rule")
	if !ok {
		return
	}

	if err := h.service.DeleteAlertRule(actor, id); err != nil {
		respondError(c, err, "delete alert rule")
		return
	}
	c.Status(http.StatusNoContent)
}

// Socket handles GET /ws/notifications?token=
// @Summary Notification stream
// @Description Upgrades to a websocket pushing {"type":"notification","data":{...}} frames
// @Tags notifications
// @Param token query string true "Access token"
// @Success 101 "Switching protocols"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /ws/notifications [get]
func (h *NotificationHandler) Socket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter is required"})
		return
	}
	claims, err := h.tokens.ValidateQueryToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}
	userID, err := claims.UUID()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	conn, err := realtime.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		logger.WithContext(c.Request.Context()).WithError(err).Warn("websocket upgrade failed")
		return
	}

	metrics.WebsocketConnections.Inc()
	defer metrics.WebsocketConnections.Dec()
	h.sockets.Serve(c.Request.Context(), conn, userID)
}
