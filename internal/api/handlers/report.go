package handlers

import (
	"net/http"

	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles campaign, department and scheduled reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// ListCampaignReports handles GET /api/v1/reports/campaigns
// @Summary List campaign reports
// @Tags reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Success 200 {object} service.CampaignReportListResponse
// @Security BearerAuth
// @Router /reports/campaigns [get]
func (h *ReportHandler) ListCampaignReports(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	reports, err := h.service.ListCampaignReports(actor, params)
	if err != nil {
		respondError(c, err, "list campaign reports")
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetCampaignReport handles GET /api/v1/reports/campaigns/:id
// @Summary Get campaign report
// @Description Regenerates the report when it is missing or older than the latest tracking event
// @Tags reports
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} models.CampaignReport
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Security BearerAuth
// @Router /reports/campaigns/{id} [get]
func (h *ReportHandler) GetCampaignReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "campaign")
	if !ok {
		return
	}

	report, err := h.service.GetCampaignReport(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "get campaign report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListDepartmentReports handles GET /api/v1/reports/departments
// @Summary List department reports
// @Tags reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param campaign query string false "Filter by campaign ID"
// @Success 200 {object} service.DepartmentReportListResponse
// @Security BearerAuth
// @Router /reports/departments [get]
func (h *ReportHandler) ListDepartmentReports(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.DepartmentReportListRequest
	if !bindQuery(c, &req) || !queryID(c, "campaign", &req.Campaign) {
		return
	}

	reports, err := h.service.ListDepartmentReports(actor, &req)
	if err != nil {
		respondError(c, err, "list department reports")
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ListScheduledReports handles GET /api/v1/reports/scheduled
// @Summary List scheduled reports
// @Tags reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(25)
// @Param search query string false "Search name"
// @Success 200 {object} service.ScheduledReportListResponse
// @Security BearerAuth
// @Router /reports/scheduled [get]
func (h *ReportHandler) ListScheduledReports(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params service.ListParams
	if !bindQuery(c, &params) {
		return
	}

	reports, err := h.service.ListScheduled(actor, params)
	if err != nil {
		respondError(c, err, "list scheduled reports")
		return
	}
	c.JSON(http.StatusOK, reports)
}

// CreateScheduledReport handles POST /api/v1/reports/scheduled
// @Summary Create scheduled report
// @Tags reports
// @Accept json
// @Produce json
// @Param report body service.ScheduledReportRequest true "Scheduled report"
// @Success 201 {object} service.ScheduledReportResponse
// @Failure 400 {object} map[string]interface{} "Invalid recipients or campaign IDs"
// @Security BearerAuth
// @Router /reports/scheduled [post]
func (h *ReportHandler) CreateScheduledReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.ScheduledReportRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.service.CreateScheduled(actor, &req)
	if err != nil {
		respondError(c, err, "create scheduled report")
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GetScheduledReport handles GET /api/v1/reports/scheduled/:id
// @Summary Get scheduled report
// @Tags reports
// @Produce json
// @Param id path string true "Scheduled report ID (UUID)"
// @Success 200 {object} service.ScheduledReportResponse
// @Failure 404 {object} map[string]interface{} "Scheduled report not found"
// @Security BearerAuth
// @Router /reports/scheduled/{id} [get]
func (h *ReportHandler) GetScheduledReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "scheduled report")
	if !ok {
		return
	}

	report, err := h.service.GetScheduled(actor, id)
	if err != nil {
		respondError(c, err, "get scheduled report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateScheduledReport handles PUT /api/v1/reports/scheduled/:id
// @Summary Update scheduled report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Scheduled report ID (UUID)"
// @Param report body service.ScheduledReportRequest true "Scheduled report"
// @Success 200 {object} service.ScheduledReportResponse
// @Failure 404 {object} map[string]interface{} "Scheduled report not found"
// @Security BearerAuth
// @Router /reports/scheduled/{id} [put]
func (h *ReportHandler) UpdateScheduledReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "scheduled report")
	if !ok {
		return
	}
	var req service.ScheduledReportRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.service.UpdateScheduled(actor, id, &req)
	if err != nil {
		respondError(c, err, "update scheduled report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteScheduledReport handles DELETE /api/v1/reports/scheduled/:id
// @Summary Delete scheduled report
// @Tags reports
// @Param id path string true "Scheduled report ID (UUID)"
// @Success 204 "Scheduled report deleted"
// @Failure 404 {object} map[string]interface{} "Scheduled report not found"
// @Security BearerAuth
// @Router /reports/scheduled/{id} [delete]
func (h *ReportHandler) DeleteScheduledReport(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "scheduled report")
	if !ok {
		return
	}

	if err := h.service.DeleteScheduled(actor, id); err != nil {
		respondError(c, err, "delete scheduled report")
		return
	}
	c.Status(http.StatusNoContent)
}

// Statistics handles GET /api/v1/reports/statistics
// @Summary Reporting dashboard
// @Tags reports
// @Produce json
// @Success 200 {object} service.ReportStatisticsResponse
// @Security BearerAuth
// @Router /reports/statistics [get]
func (h *ReportHandler) Statistics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(actor)
	if err != nil {
		respondError(c, err, "get report statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
