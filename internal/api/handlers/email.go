package handlers

import (
	"net/http"

	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmailHandler handles SMTP configurations, the send queue and email events
type EmailHandler struct {
	service service.EmailServiceInterface
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(service service.EmailServiceInterface) *EmailHandler {
	return &EmailHandler{service: service}
}

// ListSMTPConfigs handles GET /api/v1/emails/smtp-configs
// @Summary List SMTP configurations
// @Tags emails
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name or host"
// @Success 200 {object} service.SMTPConfigListResponse
// @Security BearerAuth
// @Router /emails/smtp-configs [get]
func (h *EmailHandler) ListSMTPConfigs(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	configs, err := h.service.ListSMTPConfigs(actor, params)
	if err != nil {
		respondError(c, err, "list SMTP configurations")
		return
	}
	c.JSON(http.StatusOK, configs)
}

// CreateSMTPConfig handles POST /api/v1/emails/smtp-configs
// @Summary Create SMTP configuration
// @Tags emails
// @Accept json
// @Produce json
// @Param config body service.SMTPConfigRequest true "SMTP configuration"
// @Success 201 {object} models.SMTPConfiguration
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /emails/smtp-configs [post]
func (h *EmailHandler) CreateSMTPConfig(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.SMTPConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	config, err := h.service.CreateSMTPConfig(actor, &req)
	if err != nil {
		respondError(c, err, "create SMTP configuration")
		return
	}
	c.JSON(http.StatusCreated, config)
}

// GetSMTPConfig handles GET /api/v1/emails/smtp-configs/:id
// @Summary Get SMTP configuration
// @Tags emails
// @Produce json
// @Param id path string true "SMTP configuration ID (UUID)"
// @Success 200 {object} models.SMTPConfiguration
// @Failure 404 {object} map[string]interface{} "SMTP configuration not found"
// @Security BearerAuth
// @Router /emails/smtp-configs/{id} [get]
func (h *EmailHandler) GetSMTPConfig(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "SMTP configuration")
	if !ok {
		return
	}

	config, err := h.service.GetSMTPConfig(actor, id)
	if err != nil {
		respondError(c, err, "get SMTP configuration")
		return
	}
	c.JSON(http.StatusOK, config)
}

// UpdateSMTPConfig handles PUT /api/v1/emails/smtp-configs/:id
// @Summary Update SMTP configuration
// @Description An empty password keeps the stored one
// @Tags emails
// @Accept json
// @Produce json
// @Param id path string true "SMTP configuration ID (UUID)"
// @Param config body service.SMTPConfigRequest true "SMTP configuration"
// @Success 200 {object} models.SMTPConfiguration
// @Failure 404 {object} map[string]interface{} "SMTP configuration not found"
// @Security BearerAuth
// @Router /emails/smtp-configs/{id} [put]
func (h *EmailHandler) UpdateSMTPConfig(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "SMTP configuration")
	if !ok {
		return
	}
	var req service.SMTPConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	config, err := h.service.UpdateSMTPConfig(actor, id, &req)
	if err != nil {
		respondError(c, err, "update SMTP configuration")
		return
	}
	c.JSON(http.StatusOK, config)
}

// DeleteSMTPConfig handles DELETE /api/v1/emails/smtp-configs/:id
// @Summary Delete SMTP configuration
// @Tags emails
// @Param id path string true "SMTP configuration ID (UUID)"
// @Success 204 "SMTP configuration deleted"
// @Failure 404 {object} map[string]interface{} "SMTP configuration not found"
// @Security BearerAuth
// @Router /emails/smtp-configs/{id} [delete]
func (h *EmailHandler) DeleteSMTPConfig(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "SMTP configuration")
	if !ok {
		return
	}

	if err := h.service.DeleteSMTPConfig(actor, id); err != nil {
		respondError(c, err, "delete SMTP configuration")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListQueue handles GET /api/v1/emails/queue
// @Summary List queued emails
// @Tags emails
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param status query string false "Filter by queue status"
// @Param campaign query string false "Filter by campaign ID"
// @Success 200 {object} service.EmailQueueListResponse
// @Security BearerAuth
// @Router /emails/queue [get]
func (h *EmailHandler) ListQueue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.EmailQueueListRequest
	if !bindQuery(c, &req) || !queryID(c, "campaign", &req.Campaign) {
		return
	}

	queue, err := h.service.ListQueue(actor, &req)
	if err != nil {
		respondError(c, err, "list email queue")
		return
	}
	c.JSON(http.StatusOK, queue)
}

// ListEvents handles GET /api/v1/emails/events
// @Summary List email events
// @Tags emails
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search target email or IP address"
// @Param event_type query string false "Filter by event type"
// @Param campaign query string false "Filter by campaign ID"
// @Success 200 {object} service.EmailEventListResponse
// @Security BearerAuth
// @Router /emails/events [get]
func (h *EmailHandler) ListEvents(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.EmailEventListRequest
	if !bindQuery(c, &req) || !queryID(c, "campaign", &req.Campaign) {
		return
	}

	events, err := h.service.ListEvents(actor, &req)
	if err != nil {
		respondError(c, err, "list email events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// Statistics handles GET /api/v1/emails/statistics
// @Summary Email statistics
// @Tags emails
// @Produce json
// @Success 200 {object} service.EmailStatisticsResponse
// @Security BearerAuth
// @Router /emails/statistics [get]
func (h *EmailHandler) Statistics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(actor)
	if err != nil {
		respondError(c, err, "get email statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
