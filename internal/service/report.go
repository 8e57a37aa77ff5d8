package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const topRiskDepartments = 10

// ReportService generates campaign and department reports and runs scheduled reports
type ReportService struct {
	reportRepo     repository.CampaignReportRepositoryInterface
	departmentRepo repository.DepartmentReportRepositoryInterface
	scheduledRepo  repository.ScheduledReportRepositoryInterface
	campaignRepo   repository.CampaignRepositoryInterface
	recipients     repository.CampaignTargetRepositoryInterface
	eventRepo      repository.EmailEventRepositoryInterface
	queueRepo      repository.EmailQueueRepositoryInterface
	targetRepo     repository.TargetRepositoryInterface
	notifier       Notifier
	validator      *validator.Validate
	now            func() time.Time
}

// NewReportService creates a new report service; notifier may be nil
func NewReportService(
	reportRepo repository.CampaignReportRepositoryInterface,
	departmentRepo repository.DepartmentReportRepositoryInterface,
	scheduledRepo repository.ScheduledReportRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	recipients repository.CampaignTargetRepositoryInterface,
	eventRepo repository.EmailEventRepositoryInterface,
	queueRepo repository.EmailQueueRepositoryInterface,
	targetRepo repository.TargetRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *ReportService {
	return &ReportService{
		reportRepo:     reportRepo,
		departmentRepo: departmentRepo,
		scheduledRepo:  scheduledRepo,
		campaignRepo:   campaignRepo,
		recipients:     recipients,
		eventRepo:      eventRepo,
		queueRepo:      queueRepo,
		targetRepo:     targetRepo,
		notifier:       notifier,
		validator:      validator,
		now:            time.Now,
	}
}

// CampaignReportListResponse represents a paginated list of campaign reports
type CampaignReportListResponse struct {
	Reports  []models.CampaignReport `json:"reports"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// DepartmentReportListRequest filters department reports
type DepartmentReportListRequest struct {
	ListParams
	Campaign *uuid.UUID `form:"-"`
}

// DepartmentReportListResponse represents a paginated list of department reports
type DepartmentReportListResponse struct {
	Reports  []models.DepartmentReport `json:"reports"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// ScheduledReportRequest represents the create and update payload of a scheduled report
type ScheduledReportRequest struct {
	Name               string                 `json:"name" validate:"required,max=200"`
	ReportType         models.ReportType      `json:"report_type" validate:"required"`
	Frequency          models.ReportFrequency `json:"frequency" validate:"required"`
	Recipients         []string               `json:"recipients" validate:"dive,required,email"`
	IncludeCampaignIDs []uuid.UUID            `json:"include_campaign_ids"`
	NextRun            *time.Time             `json:"next_run"`
	IsActive           *bool                  `json:"is_active"`
}

// ScheduledReportResponse represents a scheduled report
type ScheduledReportResponse struct {
	ID                 uuid.UUID              `json:"id"`
	Name               string                 `json:"name"`
	ReportType         models.ReportType      `json:"report_type"`
	Frequency          models.ReportFrequency `json:"frequency"`
	Recipients         []string               `json:"recipients"`
	IncludeCampaignIDs []uuid.UUID            `json:"include_campaign_ids"`
	Campaigns          []string               `json:"campaigns"`
	NextRun            string                 `json:"next_run"`
	LastRun            *string                `json:"last_run,omitempty"`
	IsActive           bool                   `json:"is_active"`
	CreatedBy          *uuid.UUID             `json:"created_by,omitempty"`
	CreatedAt          string                 `json:"created_at"`
}

// ScheduledReportListResponse represents a paginated list of scheduled reports
type ScheduledReportListResponse struct {
	Reports  []ScheduledReportResponse `json:"reports"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// ReportOverview counts the organization's campaigns, targets and sends
type ReportOverview struct {
	TotalCampaigns  int64 `json:"total_campaigns"`
	ActiveCampaigns int64 `json:"active_campaigns"`
	TotalTargets    int64 `json:"total_targets"`
	TotalEmailsSent int64 `json:"total_emails_sent"`
}

// CampaignPerformance averages the rates of the organization's campaign reports
type CampaignPerformance struct {
	AverageOpenRate           float64 `json:"average_open_rate"`
	AverageClickRate          float64 `json:"average_click_rate"`
	AverageSusceptibilityRate float64 `json:"average_susceptibility_rate"`
}

// ReportRecentActivity counts this month's activity
type ReportRecentActivity struct {
	CampaignsThisMonth int64 `json:"campaigns_this_month"`
	EmailsThisMonth    int64 `json:"emails_this_month"`
}

// ReportStatisticsResponse represents the organization's security dashboard
type ReportStatisticsResponse struct {
	Overview            ReportOverview              `json:"overview"`
	CampaignPerformance CampaignPerformance         `json:"campaign_performance"`
	DepartmentBreakdown []repository.DepartmentRisk `json:"department_breakdown"`
	RecentActivity      ReportRecentActivity        `json:"recent_activity"`
}

// ScheduledRunResult summarises one scheduled-reports pass
type ScheduledRunResult struct {
	Run    int `json:"run"`
	Failed int `json:"failed"`
}

// ListCampaignReports returns the campaign reports of the actor's organization
func (s *ReportService) ListCampaignReports(actor Actor, params ListParams) (*CampaignReportListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	reports, total, err := s.reportRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign reports: %w", err)
	}
	if reports == nil {
		reports = []models.CampaignReport{}
	}
	return &CampaignReportListResponse{Reports: reports, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// GetCampaignReport returns a campaign's report, regenerating it when missing or older than the last tracking event
func (s *ReportService) GetCampaignReport(ctx context.Context, actor Actor, campaignID uuid.UUID) (*models.CampaignReport, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if _, err := s.campaignRepo.GetByID(orgID, campaignID); err != nil {
		return nil, lookupError(err, apperrors.ErrCampaignNotFound, "get campaign")
	}

	report, err := s.reportRepo.GetByCampaign(orgID, campaignID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get campaign report: %w", err)
	}
	stale := report == nil
	if report != nil {
		latest, err := s.eventRepo.LatestForCampaign(campaignID)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest campaign event: %w", err)
		}
		stale = latest != nil && latest.After(report.GeneratedAt)
	}
	if !stale {
		return report, nil
	}

	if err := s.GenerateCampaignReport(ctx, orgID, campaignID); err != nil {
		return nil, err
	}
	report, err = s.reportRepo.GetByCampaign(orgID, campaignID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCampaignReportNotFound, "get campaign report")
	}
	return report, nil
}

// GenerateCampaignReport recomputes a campaign's report and its department breakdown
func (s *ReportService) GenerateCampaignReport(ctx context.Context, orgID, campaignID uuid.UUID) error {
	campaign, err := s.campaignRepo.GetByID(orgID, campaignID)
	if err != nil {
		return lookupError(err, apperrors.ErrCampaignNotFound, "get campaign")
	}

	counts, err := s.recipients.Counts([]uuid.UUID{campaignID})
	if err != nil {
		return fmt.Errorf("failed to count campaign recipients: %w", err)
	}
	outcomes, err := s.recipients.DepartmentOutcomes(campaignID)
	if err != nil {
		return fmt.Errorf("failed to get department outcomes: %w", err)
	}
	bounced, err := s.eventRepo.CountByCampaign(campaignID, models.EmailEventBounced)
	if err != nil {
		return fmt.Errorf("failed to count bounces: %w", err)
	}

	c := counts[campaignID]
	var reported int64
	for _, o := range outcomes {
		reported += o.Reported
	}
	delivered := c.EmailsSent - bounced
	if delivered < 0 {
		delivered = 0
	}

	now := s.now()
	report := &models.CampaignReport{
		CampaignID:       campaignID,
		TotalTargets:     int(c.TotalTargets),
		EmailsSent:       int(c.EmailsSent),
		EmailsDelivered:  int(delivered),
		EmailsOpened:     int(c.EmailsOpened),
		LinksClicked:     int(c.LinksClicked),
		DataSubmitted:    int(c.DataSubmitted),
		ReportedPhishing: int(reported),
		GeneratedAt:      now,
	}
	report.CalculateRates()
	if err := s.reportRepo.Upsert(report); err != nil {
		return fmt.Errorf("failed to save campaign report: %w", err)
	}

	departments, err := s.departmentReports(campaign, outcomes)
	if err != nil {
		return err
	}
	if err := s.departmentRepo.ReplaceForCampaign(campaignID, departments); err != nil {
		return fmt.Errorf("failed to save department reports: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": campaignID,
		"departments": len(departments),
	}).Info("campaign report generated")
	return nil
}

// departmentReports scores each department and compares it with the previous completed campaign
func (s *ReportService) departmentReports(campaign *models.Campaign, outcomes []repository.DepartmentOutcome) ([]models.DepartmentReport, error) {
	before := s.now()
	if campaign.EndDate != nil {
		before = *campaign.EndDate
	}
	previous, err := s.campaignRepo.PreviousCompleted(campaign.OrganizationID, campaign.ID, before)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get previous campaign: %w", err)
	}

	reports := make([]models.DepartmentReport, 0, len(outcomes))
	for _, o := range outcomes {
		r := models.DepartmentReport{
			CampaignID:       campaign.ID,
			Department:       o.Department,
			TotalEmployees:   int(o.Employees),
			EmailsOpened:     int(o.Opened),
			LinksClicked:     int(o.Clicked),
			DataSubmitted:    int(o.Submitted),
			ReportedPhishing: int(o.Reported),
		}
		r.CalculateRiskScore()
		if previous != nil {
			prior, err := s.departmentRepo.GetForCampaignDepartment(previous.ID, o.Department)
			switch {
			case err == nil:
				// Positive means the department's risk went down.
				r.ImprovementPercentage = models.Round2(prior.RiskScore - r.RiskScore)
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, fmt.Errorf("failed to get previous department report: %w", err)
			}
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// ListDepartmentReports returns the department reports of the actor's organization
func (s *ReportService) ListDepartmentReports(actor Actor, req *DepartmentReportListRequest) (*DepartmentReportListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	reports, total, err := s.departmentRepo.List(orgID, req.Campaign, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list department reports: %w", err)
	}
	if reports == nil {
		reports = []models.DepartmentReport{}
	}
	return &DepartmentReportListResponse{Reports: reports, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// ListScheduled returns the scheduled reports of the actor's organization
func (s *ReportService) ListScheduled(actor Actor, params ListParams) (*ScheduledReportListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	reports, total, err := s.scheduledRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled reports: %w", err)
	}
	responses := make([]ScheduledReportResponse, len(reports))
	for i := range reports {
		responses[i] = *toScheduledReportResponse(&reports[i])
	}
	return &ScheduledReportListResponse{Reports: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// CreateScheduled adds a scheduled report owned by the actor
func (s *ReportService) CreateScheduled(actor Actor, req *ScheduledReportRequest) (*ScheduledReportResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	campaigns, err := s.checkScheduled(orgID, req)
	if err != nil {
		return nil, err
	}
	report := &models.ScheduledReport{OrganizationID: orgID, IsActive: true, CreatedByID: &actor.UserID}
	s.applyScheduled(report, req)
	report.IncludeCampaigns = campaigns
	if err := s.scheduledRepo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create scheduled report: %w", err)
	}
	return toScheduledReportResponse(report), nil
}

// GetScheduled retrieves a scheduled report
func (s *ReportService) GetScheduled(actor Actor, id uuid.UUID) (*ScheduledReportResponse, error) {
	report, err := s.loadScheduled(actor, id)
	if err != nil {
		return nil, err
	}
	return toScheduledReportResponse(report), nil
}

// UpdateScheduled replaces a scheduled report
func (s *ReportService) UpdateScheduled(actor Actor, id uuid.UUID, req *ScheduledReportRequest) (*ScheduledReportResponse, error) {
	report, err := s.loadScheduled(actor, id)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.checkScheduled(report.OrganizationID, req)
	if err != nil {
		return nil, err
	}
	s.applyScheduled(report, req)
	if err := s.scheduledRepo.Update(report, campaigns); err != nil {
		return nil, fmt.Errorf("failed to update scheduled report: %w", err)
	}
	report.IncludeCampaigns = campaigns
	return toScheduledReportResponse(report), nil
}

// DeleteScheduled removes a scheduled report
func (s *ReportService) DeleteScheduled(actor Actor, id uuid.UUID) error {
	report, err := s.loadScheduled(actor, id)
	if err != nil {
		return err
	}
	if err := s.scheduledRepo.Delete(report.OrganizationID, id); err != nil {
		return fmt.Errorf("failed to delete scheduled report: %w", err)
	}
	return nil
}

// Statistics summarises the organization's campaigns, performance and riskiest departments
func (s *ReportService) Statistics(actor Actor) (*ReportStatisticsResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	now := s.now()
	y, m, _ := now.Date()
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())

	byStatus, err := s.campaignRepo.CountByStatus(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}
	var overview ReportOverview
	for status, n := range byStatus {
		overview.TotalCampaigns += n
		if status == string(models.CampaignStatusRunning) || status == string(models.CampaignStatusScheduled) {
			overview.ActiveCampaigns += n
		}
	}
	if overview.TotalTargets, err = s.targetRepo.Count(orgID); err != nil {
		return nil, fmt.Errorf("failed to count targets: %w", err)
	}
	if overview.TotalEmailsSent, err = s.queueRepo.CountSentSince(orgID, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to count sent emails: %w", err)
	}

	averages, err := s.reportRepo.Averages(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to average campaign reports: %w", err)
	}
	departments, err := s.departmentRepo.TopRiskDepartments(orgID, topRiskDepartments)
	if err != nil {
		return nil, fmt.Errorf("failed to rank departments: %w", err)
	}
	if departments == nil {
		departments = []repository.DepartmentRisk{}
	}

	var recent ReportRecentActivity
	if recent.CampaignsThisMonth, err = s.campaignRepo.CountCreatedSince(orgID, monthStart); err != nil {
		return nil, fmt.Errorf("failed to count recent campaigns: %w", err)
	}
	if recent.EmailsThisMonth, err = s.queueRepo.CountSentSince(orgID, monthStart); err != nil {
		return nil, fmt.Errorf("failed to count recent emails: %w", err)
	}

	return &ReportStatisticsResponse{
		Overview: overview,
		CampaignPerformance: CampaignPerformance{
			AverageOpenRate:           averages.AvgOpenRate,
			AverageClickRate:          averages.AvgClickRate,
			AverageSusceptibilityRate: averages.AvgSusceptibilityRate,
		},
		DepartmentBreakdown: departments,
		RecentActivity:      recent,
	}, nil
}

// RunScheduledReports regenerates due scheduled reports, advances them and notifies their owners
func (s *ReportService) RunScheduledReports(ctx context.Context) (*ScheduledRunResult, error) {
	now := s.now()
	due, err := s.scheduledRepo.ListDue(now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due scheduled reports: %w", err)
	}
	result := &ScheduledRunResult{}
	for i := range due {
		report := &due[i]
		log := logger.WithContext(ctx).WithField("scheduled_report_id", report.ID)
		if err := s.runScheduled(ctx, report, now); err != nil {
			result.Failed++
			log.WithError(err).Error("scheduled report failed")
			continue
		}
		result.Run++
		log.Info("scheduled report generated")
	}
	return result, nil
}

func (s *ReportService) runScheduled(ctx context.Context, report *models.ScheduledReport, now time.Time) error {
	for _, campaign := range report.IncludeCampaigns {
		if err := s.GenerateCampaignReport(ctx, report.OrganizationID, campaign.ID); err != nil {
			return fmt.Errorf("failed to regenerate report for campaign %s: %w", campaign.ID, err)
		}
	}

	next := report.Frequency.NextRunAfter(report.NextRun)
	for !next.After(now) {
		next = report.Frequency.NextRunAfter(next)
	}
	if err := s.scheduledRepo.MarkRun(report.ID, now, next); err != nil {
		return fmt.Errorf("failed to advance scheduled report: %w", err)
	}

	if s.notifier != nil && report.CreatedByID != nil {
		err := s.notifier.Notify(ctx, []uuid.UUID{*report.CreatedByID}, NotificationInput{
			Title:       "Scheduled Report Ready",
			Message:     fmt.Sprintf("Your scheduled report '%s' is ready.", report.Name),
			Type:        models.NotificationReportReady,
			Priority:    models.NotificationPriorityLow,
			ActionURL:   "/reports/scheduled/" + report.ID.String(),
			ActionLabel: "View report",
		})
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("scheduled_report_id", report.ID).Warn("failed to notify report owner")
		}
	}
	return nil
}

func (s *ReportService) loadScheduled(actor Actor, id uuid.UUID) (*models.ScheduledReport, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	report, err := s.scheduledRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrScheduledReportNotFound, "get scheduled report")
	}
	return report, nil
}

// checkScheduled validates the request and resolves its campaigns within the organization
func (s *ReportService) checkScheduled(orgID uuid.UUID, req *ScheduledReportRequest) ([]models.Campaign, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ReportType.IsValid() {
		return nil, apperrors.NewValidationError("report_type", "invalid report type")
	}
	if !req.Frequency.IsValid() {
		return nil, apperrors.NewValidationError("frequency", "invalid frequency")
	}

	ids := uniqueIDs(req.IncludeCampaignIDs)
	campaigns := make([]models.Campaign, 0, len(ids))
	var missing []uuid.UUID
	for _, id := range ids {
		campaign, err := s.campaignRepo.GetByID(orgID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				missing = append(missing, id)
				continue
			}
			return nil, fmt.Errorf("failed to get campaign: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}
	if len(missing) > 0 {
		return nil, apperrors.NewBadRequestError("Invalid campaign IDs: " + idList(missing))
	}
	return campaigns, nil
}

func (s *ReportService) applyScheduled(report *models.ScheduledReport, req *ScheduledReportRequest) {
	report.Name = strings.TrimSpace(req.Name)
	report.ReportType = req.ReportType
	report.Frequency = req.Frequency
	recipients := make(models.StringList, 0, len(req.Recipients))
	for _, r := range req.Recipients {
		recipients = append(recipients, strings.ToLower(strings.TrimSpace(r)))
	}
	report.Recipients = recipients
	switch {
	case req.NextRun != nil:
		report.NextRun = *req.NextRun
	case report.NextRun.IsZero():
		report.NextRun = req.Frequency.NextRunAfter(s.now())
	}
	report.IsActive = boolValue(req.IsActive, report.IsActive)
}

func toScheduledReportResponse(r *models.ScheduledReport) *ScheduledReportResponse {
	resp := &ScheduledReportResponse{
		ID:                 r.ID,
		Name:               r.Name,
		ReportType:         r.ReportType,
		Frequency:          r.Frequency,
		Recipients:         []string(r.Recipients),
		IncludeCampaignIDs: make([]uuid.UUID, 0, len(r.IncludeCampaigns)),
		Campaigns:          make([]string, 0, len(r.IncludeCampaigns)),
		NextRun:            formatTime(r.NextRun),
		LastRun:            formatTimePtr(r.LastRun),
		IsActive:           r.IsActive,
		CreatedBy:          r.CreatedByID,
		CreatedAt:          formatTime(r.CreatedAt),
	}
	if resp.Recipients == nil {
		resp.Recipients = []string{}
	}
	for _, c := range r.IncludeCampaigns {
		resp.IncludeCampaignIDs = append(resp.IncludeCampaignIDs, c.ID)
		resp.Campaigns = append(resp.Campaigns, c.Name)
	}
	return resp
}
