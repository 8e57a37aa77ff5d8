package handlers

import (
	"net/http"

	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CampaignHandler handles campaigns, email templates and landing pages
type CampaignHandler struct {
	service service.CampaignServiceInterface
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(service service.CampaignServiceInterface) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// ListCampaigns handles GET /api/v1/campaigns
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name or description"
// @Param status query string false "Filter by status"
// @Param template query string false "Filter by email template ID"
// @Success 200 {object} service.CampaignListResponse
// @Security BearerAuth
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.CampaignListRequest
	if !bindQuery(c, &req) || !queryID(c, "template", &req.Template) {
		return
	}

	campaigns, err := h.service.List(actor, &req)
	if err != nil {
		respondError(c, err, "list campaigns")
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// CreateCampaign handles POST /api/v1/campaigns
// @Summary Create campaign
// @Description Creates the campaign and one recipient per active target of its groups and individual targets
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body service.CampaignRequest true "Campaign data"
// @Success 201 {object} service.CampaignResponse
// @Failure 400 {object} map[string]interface{} "Invalid template, landing page, groups, targets or schedule"
// @Security BearerAuth
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.CampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "create campaign")
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// GetCampaign handles GET /api/v1/campaigns/:id
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignResponse
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	campaign, err := h.service.GetByID(actor, id)
	if err != nil {
		respondError(c, err, "get campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaign handles PUT /api/v1/campaigns/:id
// @Summary Update campaign
// @Description Draft, scheduled and paused campaigns only
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param campaign body service.CampaignRequest true "Campaign data"
// @Success 200 {object} service.CampaignResponse
// @Failure 400 {object} map[string]interface{} "Campaign cannot be modified"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}
	var req service.CampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.service.Update(actor, id, &req)
	if err != nil {
		respondError(c, err, "update campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /api/v1/campaigns/:id
// @Summary Delete campaign
// @Tags campaigns
// @Param id path string true "Campaign ID (UUID)"
// @Success 204 "Campaign deleted"
// @Failure 400 {object} map[string]interface{} "Running campaigns cannot be deleted"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		respondError(c, err, "delete campaign")
		return
	}
	c.Status(http.StatusNoContent)
}

// CampaignAction handles POST /api/v1/campaigns/:id/action
// @Summary Run a lifecycle action
// @Description One of start, pause, resume, cancel, complete
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param action body service.CampaignActionRequest true "Action"
// @Success 200 {object} service.CampaignActionResponse
// @Failure 400 {object} map[string]interface{} "Invalid action or state"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/action [post]
func (h *CampaignHandler) CampaignAction(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}
	var req service.CampaignActionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Action(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err, "run campaign action")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CampaignReports handles GET /api/v1/campaigns/:id/reports
// @Summary Campaign statistics
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignStatsResponse
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/reports [get]
func (h *CampaignHandler) CampaignReports(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	stats, err := h.service.Reports(actor, id)
	if err != nil {
		respondError(c, err, "get campaign reports")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CampaignTargets handles GET /api/v1/campaigns/:id/targets
// @Summary List campaign recipients
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search target name or email"
// @Param status query string false "Filter by recipient status"
// @Success 200 {object} service.CampaignTargetListResponse
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id}/targets [get]
func (h *CampaignHandler) CampaignTargets(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}
	var req service.CampaignTargetListRequest
	if !bindQuery(c, &req) {
		return
	}

	targets, err := h.service.ListTargets(actor, id, &req)
	if err != nil {
		respondError(c, err, "list campaign targets")
		return
	}
	c.JSON(http.StatusOK, targets)
}

// Statistics handles GET /api/v1/campaigns/statistics
// @Summary Campaign, template and landing page totals
// @Tags campaigns
// @Produce json
// @Success 200 {object} service.CampaignStatisticsResponse
// @Security BearerAuth
// @Router /campaigns/statistics [get]
func (h *CampaignHandler) Statistics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(actor)
	if err != nil {
		respondError(c, err, "get campaign statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListTemplates handles GET /api/v1/campaigns/templates
// @Summary List email templates
// @Tags email-templates
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name or subject"
// @Param template_type query string false "Filter by type"
// @Param difficulty query string false "Filter by difficulty"
// @Param is_default query bool false "Filter by default flag"
// @Success 200 {object} service.EmailTemplateListResponse
// @Security BearerAuth
// @Router /campaigns/templates [get]
func (h *CampaignHandler) ListTemplates(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.EmailTemplateListRequest
	if !bindQuery(c, &req) {
		return
	}

	templates, err := h.service.ListTemplates(actor, &req)
	if err != nil {
		respondError(c, err, "list email templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateTemplate handles POST /api/v1/campaigns/templates
// @Summary Create email template
// @Tags email-templates
// @Accept json
// @Produce json
// @Param template body service.EmailTemplateRequest true "Template data"
// @Success 201 {object} service.EmailTemplateResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /campaigns/templates [post]
func (h *CampaignHandler) CreateTemplate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.EmailTemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	template, err := h.service.CreateTemplate(actor, &req)
	if err != nil {
		respondError(c, err, "create email template")
		return
	}
	c.JSON(http.StatusCreated, template)
}

// GetTemplate handles GET /api/v1/campaigns/templates/:id
// @Summary Get email template
// @Tags email-templates
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 200 {object} service.EmailTemplateResponse
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /campaigns/templates/{id} [get]
func (h *CampaignHandler) GetTemplate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "email template")
	if !ok {
		return
	}

	template, err := h.service.GetTemplate(actor, id)
	if err != nil {
		respondError(c, err, "get email template")
		return
	}
	c.JSON(http.StatusOK, template)
}

// UpdateTemplate handles PUT /api/v1/campaigns/templates/:id
// @Summary Update email template
// @Tags email-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Param template body service.EmailTemplateRequest true "Template data"
// @Success 200 {object} service.EmailTemplateResponse
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /campaigns/templates/{id} [put]
func (h *CampaignHandler) UpdateTemplate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "email template")
	if !ok {
		return
	}
	var req service.EmailTemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	template, err := h.service.UpdateTemplate(actor, id, &req)
	if err != nil {
		respondError(c, err, "update email template")
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplate handles DELETE /api/v1/campaigns/templates/:id
// @Summary Delete email template
// @Tags email-templates
// @Param id path string true "Template ID (UUID)"
// @Success 204 "Template deleted"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Security BearerAuth
// @Router /campaigns/templates/{id} [delete]
func (h *CampaignHandler) DeleteTemplate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "email template")
	if !ok {
		return
	}

	if err := h.service.DeleteTemplate(actor, id); err != nil {
		respondError(c, err, "delete email template")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLandingPages handles GET /api/v1/campaigns/landing-pages
// @Summary List landing pages
// @Tags landing-pages
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name"
// @Param page_type query string false "Filter by page type"
// @Success 200 {object} service.LandingPageListResponse
// @Security BearerAuth
// @Router /campaigns/landing-pages [get]
func (h *CampaignHandler) ListLandingPages(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.LandingPageListRequest
	if !bindQuery(c, &req) {
		return
	}

	pages, err := h.service.ListLandingPages(actor, &req)
	if err != nil {
		respondError(c, err, "list landing pages")
		return
	}
	c.JSON(http.StatusOK, pages)
}

// CreateLandingPage handles POST /api/v1/campaigns/landing-pages
// @Summary Create landing page
// @Tags landing-pages
// @Accept json
// @Produce json
// @Param page body service.LandingPageRequest true "Landing page data"
// @Success 201 {object} models.LandingPage
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /campaigns/landing-pages [post]
func (h *CampaignHandler) CreateLandingPage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.LandingPageRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := h.service.CreateLandingPage(actor, &req)
	if err != nil {
		respondError(c, err, "create landing page")
		return
	}
	c.JSON(http.StatusCreated, page)
}

// GetLandingPage handles GET /api/v1/campaigns/landing-pages/:id
// @Summary Get landing page
// @Tags landing-pages
// @Produce json
// @Param id path string true "Landing page ID (UUID)"
// @Success 200 {object} models.LandingPage
// @Failure 404 {object} map[string]interface{} "Landing page not found"
// @Security BearerAuth
// @Router /campaigns/landing-pages/{id} [get]
func (h *CampaignHandler) GetLandingPage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "landing page")
	if !ok {
		return
	}

	page, err := h.service.GetLandingPage(actor, id)
	if err != nil {
		respondError(c, err, "get landing page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdateLandingPage handles PUT /api/v1/campaigns/landing-pages/:id
// @Summary Update landing page
// @Tags landing-pages
// @Accept json
// @Produce json
// @Param id path string true "Landing page ID (UUID)"
// @Param page body service.LandingPageRequest true "Landing page data"
// @Success 200 {object} models.LandingPage
// @Failure 404 {object} map[string]interface{} "Landing page not found"
// @Security BearerAuth
// @Router /campaigns/landing-pages/{id} [put]
func (h *CampaignHandler) UpdateLandingPage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "landing page")
	if !ok {
		return
	}
	var req service.LandingPageRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := h.service.UpdateLandingPage(actor, id, &req)
	if err != nil {
		respondError(c, err, "update landing page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeleteLandingPage handles DELETE /api/v1/campaigns/landing-pages/:id
// @Summary Delete landing page
// @Tags landing-pages
// @Param id path string true "Landing page ID (UUID)"
// @Success 204 "Landing page deleted"
// @Failure 404 {object} map[string]interface{} "Landing page not found"
// @Security BearerAuth
// @Router /campaigns/landing-pages/{id} [delete]
func (h *CampaignHandler) DeleteLandingPage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "landing page")
	if !ok {
		return
	}

	if err := h.service.DeleteLandingPage(actor, id); err != nil {
		respondError(c, err, "delete landing page")
		return
	}
	c.Status(http.StatusNoContent)
}
