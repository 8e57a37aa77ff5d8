package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/metrics"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultSendIntervalMinutes = 5

// CampaignService handles campaign content, audiences, lifecycle and per-campaign statistics
type CampaignService struct {
	repo         repository.CampaignRepositoryInterface
	recipients   repository.CampaignTargetRepositoryInterface
	templateRepo repository.EmailTemplateRepositoryInterface
	pageRepo     repository.LandingPageRepositoryInterface
	groupRepo    repository.TargetGroupRepositoryInterface
	targetRepo   repository.TargetRepositoryInterface
	queueRepo    repository.EmailQueueRepositoryInterface
	notifier     Notifier
	reports      ReportGenerator
	usage        UsageRecorder
	validator    *validator.Validate
	now          func() time.Time
}

// NewCampaignService creates a new campaign service; notifier, reports and usage may be nil
func NewCampaignService(
	repo repository.CampaignRepositoryInterface,
	recipients repository.CampaignTargetRepositoryInterface,
	templateRepo repository.EmailTemplateRepositoryInterface,
	pageRepo repository.LandingPageRepositoryInterface,
	groupRepo repository.TargetGroupRepositoryInterface,
	targetRepo repository.TargetRepositoryInterface,
	queueRepo repository.EmailQueueRepositoryInterface,
	notifier Notifier,
	reports ReportGenerator,
	usage UsageRecorder,
	validator *validator.Validate,
) *CampaignService {
	return &CampaignService{
		repo:         repo,
		recipients:   recipients,
		templateRepo: templateRepo,
		pageRepo:     pageRepo,
		groupRepo:    groupRepo,
		targetRepo:   targetRepo,
		queueRepo:    queueRepo,
		notifier:     notifier,
		reports:      reports,
		usage:        usage,
		validator:    validator,
		now:          time.Now,
	}
}

// CampaignRequest represents the create and update payload of a campaign.
// On update a nil id list keeps the current audience.
type CampaignRequest struct {
	Name                string      `json:"name" validate:"required,max=200"`
	Description         string      `json:"description"`
	EmailTemplateID     uuid.UUID   `json:"email_template_id" validate:"required"`
	LandingPageID       *uuid.UUID  `json:"landing_page_id"`
	ScheduledStart      *time.Time  `json:"scheduled_start"`
	SendIntervalMinutes *int        `json:"send_interval_minutes" validate:"omitempty,min=1,max=1440"`
	TrackOpens          *bool       `json:"track_opens"`
	TrackClicks         *bool       `json:"track_clicks"`
	CaptureCredentials  *bool       `json:"capture_credentials"`
	CaptureData         *bool       `json:"capture_data"`
	TargetGroupIDs      []uuid.UUID `json:"target_group_ids"`
	IndividualTargetIDs []uuid.UUID `json:"individual_target_ids"`
}

// CampaignListRequest filters campaigns
type CampaignListRequest struct {
	ListParams
	Status   models.CampaignStatus `form:"status"`
	Template *uuid.UUID            `form:"-"`
}

// CampaignActionRequest carries a lifecycle action
type CampaignActionRequest struct {
	Action string `json:"action" validate:"required"`
}

// CampaignResponse represents a campaign
type CampaignResponse struct {
	ID                  uuid.UUID                  `json:"id"`
	OrganizationID      uuid.UUID                  `json:"organization_id"`
	Name                string                     `json:"name"`
	Description         string                     `json:"description"`
	Status              models.CampaignStatus      `json:"status"`
	EmailTemplateID     uuid.UUID                  `json:"email_template_id"`
	EmailTemplateName   string                     `json:"email_template_name,omitempty"`
	LandingPageID       *uuid.UUID                 `json:"landing_page_id,omitempty"`
	LandingPageName     string                     `json:"landing_page_name,omitempty"`
	ScheduledStart      *string                    `json:"scheduled_start,omitempty"`
	ActualStart         *string                    `json:"actual_start,omitempty"`
	EndDate             *string                    `json:"end_date,omitempty"`
	SendIntervalMinutes int                        `json:"send_interval_minutes"`
	TrackOpens          bool                       `json:"track_opens"`
	TrackClicks         bool                       `json:"track_clicks"`
	CaptureCredentials  bool                       `json:"capture_credentials"`
	CaptureData         bool                       `json:"capture_data"`
	TargetGroupIDs      []uuid.UUID                `json:"target_group_ids"`
	IndividualTargetIDs []uuid.UUID                `json:"individual_target_ids"`
	Stats               *repository.CampaignCounts `json:"stats,omitempty"`
	CreatedBy           *uuid.UUID                 `json:"created_by,omitempty"`
	CreatedAt           string                     `json:"created_at"`
	UpdatedAt           string                     `json:"updated_at"`
}

// CampaignListResponse represents a paginated list of campaigns
type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// CampaignActionResponse is returned by a successful lifecycle action
type CampaignActionResponse struct {
	Message  string            `json:"message"`
	Campaign *CampaignResponse `json:"campaign"`
}

// CampaignInfo identifies the campaign in its statistics
type CampaignInfo struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Status      models.CampaignStatus `json:"status"`
	CreatedAt   string                `json:"created_at"`
	ActualStart *string               `json:"actual_start"`
	EndDate     *string               `json:"end_date"`
}

// CampaignEmailStats are the delivery and tracking totals of a campaign
type CampaignEmailStats struct {
	TotalTargets    int64 `json:"total_targets"`
	EmailsSent      int64 `json:"emails_sent"`
	EmailsDelivered int64 `json:"emails_delivered"`
	EmailsOpened    int64 `json:"emails_opened"`
	LinksClicked    int64 `json:"links_clicked"`
	DataSubmitted   int64 `json:"data_submitted"`
	EmailsReported  int64 `json:"emails_reported"`
}

// CampaignRates are the tracking rates of a campaign over emails sent
type CampaignRates struct {
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
	SubmissionRate float64 `json:"submission_rate"`
	ReportRate     float64 `json:"report_rate"`
}

// CampaignStatsResponse is the live report of one campaign
type CampaignStatsResponse struct {
	CampaignInfo    CampaignInfo       `json:"campaign_info"`
	EmailStats      CampaignEmailStats `json:"email_stats"`
	StatusBreakdown map[string]int64   `json:"status_breakdown"`
	Rates           CampaignRates      `json:"rates"`
}

// CampaignTargetListRequest filters the recipients of a campaign
type CampaignTargetListRequest struct {
	ListParams
	Status models.CampaignTargetStatus `form:"status"`
}

// CampaignTargetResponse represents one recipient and its tracking state
type CampaignTargetResponse struct {
	ID              uuid.UUID                   `json:"id"`
	CampaignID      uuid.UUID                   `json:"campaign_id"`
	TargetID        uuid.UUID                   `json:"target_id"`
	TargetName      string                      `json:"target_name"`
	TargetEmail     string                      `json:"target_email"`
	TargetDept      string                      `json:"target_department"`
	Status          models.CampaignTargetStatus `json:"status"`
	EmailSentAt     *string                     `json:"email_sent_at"`
	EmailOpenedAt   *string                     `json:"email_opened_at"`
	LinkClickedAt   *string                     `json:"link_clicked_at"`
	DataSubmittedAt *string                     `json:"data_submitted_at"`
	ReportedAt      *string                     `json:"reported_at"`
	IPAddress       string                      `json:"ip_address"`
	UserAgent       string                      `json:"user_agent"`
}

// CampaignTargetListResponse represents a paginated list of recipients
type CampaignTargetListResponse struct {
	CampaignTargets []CampaignTargetResponse `json:"campaign_targets"`
	Total           int64                    `json:"total"`
	Page            int                      `json:"page"`
	PageSize        int                      `json:"page_size"`
}

// CampaignStatisticsResponse is the campaign dashboard of an organization
type CampaignStatisticsResponse struct {
	TotalCampaigns     int64            `json:"total_campaigns"`
	CampaignsByStatus  map[string]int64 `json:"campaigns_by_status"`
	TotalTemplates     int64            `json:"total_templates"`
	TemplatesByType    map[string]int64 `json:"templates_by_type"`
	TotalLandingPages  int64            `json:"total_landing_pages"`
	LandingPagesByType map[string]int64 `json:"landing_pages_by_type"`
}

// campaignAction is one row of the lifecycle table
type campaignAction struct {
	from     []models.CampaignStatus
	to       models.CampaignStatus
	rejected string
	past     string
}

var campaignActions = map[string]campaignAction{
	"start": {
		from:     []models.CampaignStatus{models.CampaignStatusDraft, models.CampaignStatusScheduled},
		to:       models.CampaignStatusRunning,
		rejected: "Only draft campaigns can be started",
		past:     "started",
	},
	"pause": {
		from:     []models.CampaignStatus{models.CampaignStatusRunning},
		to:       models.CampaignStatusPaused,
		rejected: "Only running campaigns can be paused",
		past:     "paused",
	},
	"resume": {
		from:     []models.CampaignStatus{models.CampaignStatusPaused},
		to:       models.CampaignStatusRunning,
		rejected: "Only paused campaigns can be resumed",
		past:     "resumed",
	},
	"cancel": {
		from: []models.CampaignStatus{
			models.CampaignStatusDraft, models.CampaignStatusScheduled,
			models.CampaignStatusRunning, models.CampaignStatusPaused,
		},
		to:       models.CampaignStatusCancelled,
		rejected: "Campaign cannot be cancelled",
		past:     "cancelled",
	},
	"complete": {
		from:     []models.CampaignStatus{models.CampaignStatusRunning, models.CampaignStatusPaused},
		to:       models.CampaignStatusCompleted,
		rejected: "Campaign cannot be completed",
		past:     "completed",
	},
}

func (a campaignAction) allows(status models.CampaignStatus) bool {
	for _, s := range a.from {
		if s == status {
			return true
		}
	}
	return false
}

// List returns the campaigns of the actor's organization with their tracking totals
func (s *CampaignService) List(actor Actor, req *CampaignListRequest) (*CampaignListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	campaigns, total, err := s.repo.List(repository.CampaignFilter{
		Page:            params.repoPage(),
		OrganizationID:  orgID,
		Status:          req.Status,
		EmailTemplateID: req.Template,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	ids := make([]uuid.UUID, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}
	counts, err := s.recipients.Counts(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaign recipients: %w", err)
	}

	responses := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		c := counts[campaigns[i].ID]
		responses[i] = *toCampaignResponse(&campaigns[i], &c)
	}
	return &CampaignListResponse{Campaigns: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// Create creates a campaign and fans its audience out to pending recipients
func (s *CampaignService) Create(ctx context.Context, actor Actor, req *CampaignRequest) (*CampaignResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkContent(orgID, req); err != nil {
		return nil, err
	}
	if req.ScheduledStart != nil && !req.ScheduledStart.After(s.now()) {
		return nil, apperrors.ErrScheduledStartInPast
	}
	groups, err := s.resolveGroups(orgID, req.TargetGroupIDs)
	if err != nil {
		return nil, err
	}
	targets, err := s.resolveTargets(orgID, req.IndividualTargetIDs)
	if err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		OrganizationID:      orgID,
		Status:              models.CampaignStatusDraft,
		SendIntervalMinutes: defaultSendIntervalMinutes,
		TrackOpens:          true,
		TrackClicks:         true,
		CaptureCredentials:  true,
		CaptureData:         true,
		CreatedByID:         &actor.UserID,
		TargetGroups:        groups,
		IndividualTargets:   targets,
	}
	applyCampaignRequest(campaign, req)
	if campaign.ScheduledStart != nil {
		campaign.Status = models.CampaignStatusScheduled
	}

	if err := s.repo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	if s.usage != nil {
		if err := s.usage.Increment(ctx, orgID, models.MetricCampaignsCount, 1); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("failed to record campaign usage")
		}
	}
	return s.GetByID(actor, campaign.ID)
}

// GetByID retrieves a campaign with its tracking totals
func (s *CampaignService) GetByID(actor Actor, id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	return s.withCounts(campaign)
}

// Update edits a draft, scheduled or paused campaign. Changing the audience of a
// draft or scheduled campaign rebuilds its recipients.
func (s *CampaignService) Update(actor Actor, id uuid.UUID, req *CampaignRequest) (*CampaignResponse, error) {
	campaign, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if !campaign.IsEditable() {
		if campaign.Status == models.CampaignStatusRunning {
			return nil, apperrors.ErrCampaignRunning
		}
		return nil, apperrors.ErrCampaignClosed
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkContent(campaign.OrganizationID, req); err != nil {
		return nil, err
	}
	if req.ScheduledStart != nil && !sameTime(req.ScheduledStart, campaign.ScheduledStart) && !req.ScheduledStart.After(s.now()) {
		return nil, apperrors.ErrScheduledStartInPast
	}

	var groups []models.TargetGroup
	if req.TargetGroupIDs != nil {
		if groups, err = s.resolveGroups(campaign.OrganizationID, req.TargetGroupIDs); err != nil {
			return nil, err
		}
		if groups == nil {
			groups = []models.TargetGroup{}
		}
	}
	var targets []models.Target
	if req.IndividualTargetIDs != nil {
		if targets, err = s.resolveTargets(campaign.OrganizationID, req.IndividualTargetIDs); err != nil {
			return nil, err
		}
		if targets == nil {
			targets = []models.Target{}
		}
	}

	notStarted := campaign.Status == models.CampaignStatusDraft || campaign.Status == models.CampaignStatusScheduled
	applyCampaignRequest(campaign, req)
	if notStarted {
		campaign.Status = models.CampaignStatusDraft
		if campaign.ScheduledStart != nil {
			campaign.Status = models.CampaignStatusScheduled
		}
	}
	rebuild := notStarted && (groups != nil || targets != nil)

	if err := s.repo.Update(campaign, groups, targets, rebuild); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return s.GetByID(actor, id)
}

// Delete removes a campaign that is not running
func (s *CampaignService) Delete(actor Actor, id uuid.UUID) error {
	campaign, err := s.load(actor, id)
	if err != nil {
		return err
	}
	if campaign.Status == models.CampaignStatusRunning {
		return apperrors.NewInvalidStateError("campaign", "Running campaigns cannot be deleted")
	}
	if err := s.repo.Delete(campaign.OrganizationID, id); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// Action applies a lifecycle action. The status change is conditional on the
// current status, so concurrent callers cannot both win.
func (s *CampaignService) Action(ctx context.Context, actor Actor, id uuid.UUID, req *CampaignActionRequest) (*CampaignActionResponse, error) {
	campaign, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(strings.TrimSpace(req.Action))
	action, ok := campaignActions[name]
	if !ok {
		return nil, apperrors.ErrInvalidAction
	}
	if !action.allows(campaign.Status) {
		return nil, apperrors.NewInvalidStateError("campaign", action.rejected)
	}

	now := s.now()
	extra := map[string]interface{}{}
	switch name {
	case "start":
		extra["actual_start"] = now
	case "cancel", "complete":
		extra["end_date"] = now
	}
	won, err := s.repo.Transition(campaign.ID, action.from, action.to, extra)
	if err != nil {
		return nil, fmt.Errorf("failed to %s campaign: %w", name, err)
	}
	if !won {
		return nil, apperrors.NewInvalidStateError("campaign", action.rejected)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": campaign.ID,
		"action":      name,
	})
	log.Info("campaign transitioned")
	metrics.CampaignTransitions.WithLabelValues(string(action.to)).Inc()

	campaign, err = s.repo.GetByID(campaign.OrganizationID, campaign.ID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCampaignNotFound, "get campaign")
	}

	switch name {
	case "start", "resume":
		if _, err := s.queueBatch(ctx, campaign); err != nil {
			log.WithError(err).Error("failed to queue campaign emails")
		}
		s.notify(ctx, campaign, models.NotificationCampaignStarted, "Campaign Started",
			fmt.Sprintf("Campaign '%s' is now running.", campaign.Name))
	case "cancel":
		if n, err := s.queueRepo.CancelQueued(campaign.ID); err != nil {
			log.WithError(err).Error("failed to cancel queued emails")
		} else if n > 0 {
			log.WithField("cancelled_emails", n).Info("queued emails cancelled")
		}
	case "complete":
		if s.reports != nil {
			if err := s.reports.GenerateCampaignReport(ctx, campaign.OrganizationID, campaign.ID); err != nil {
				log.WithError(err).Error("failed to generate campaign report")
			}
		}
		s.notify(ctx, campaign, models.NotificationCampaignCompleted, "Campaign Completed",
			fmt.Sprintf("Campaign '%s' has completed. Its report is ready.", campaign.Name))
	}

	resp, err := s.withCounts(campaign)
	if err != nil {
		return nil, err
	}
	return &CampaignActionResponse{
		Message:  fmt.Sprintf("Campaign %s successfully", action.past),
		Campaign: resp,
	}, nil
}

// Reports returns the live tracking report of a campaign
func (s *CampaignService) Reports(actor Actor, id uuid.UUID) (*CampaignStatsResponse, error) {
	campaign, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.recipients.Counts([]uuid.UUID{campaign.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count campaign recipients: %w", err)
	}
	breakdown, err := s.recipients.StatusCounts(campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaign statuses: %w", err)
	}

	c := counts[campaign.ID]
	stats := CampaignEmailStats{
		TotalTargets:  c.TotalTargets,
		EmailsSent:    c.EmailsSent,
		EmailsOpened:  c.EmailsOpened,
		LinksClicked:  c.LinksClicked,
		DataSubmitted: c.DataSubmitted,
		EmailsDelivered: breakdown[string(models.CampaignTargetSent)] +
			breakdown[string(models.CampaignTargetOpened)] +
			breakdown[string(models.CampaignTargetClicked)] +
			breakdown[string(models.CampaignTargetSubmitted)],
		EmailsReported: breakdown[string(models.CampaignTargetReported)],
	}
	sent := int(stats.EmailsSent)
	return &CampaignStatsResponse{
		CampaignInfo: CampaignInfo{
			ID:          campaign.ID,
			Name:        campaign.Name,
			Status:      campaign.Status,
			CreatedAt:   formatTime(campaign.CreatedAt),
			ActualStart: formatTimePtr(campaign.ActualStart),
			EndDate:     formatTimePtr(campaign.EndDate),
		},
		EmailStats:      stats,
		StatusBreakdown: breakdown,
		Rates: CampaignRates{
			OpenRate:       models.Percentage(int(stats.EmailsOpened), sent),
			ClickRate:      models.Percentage(int(stats.LinksClicked), sent),
			SubmissionRate: models.Percentage(int(stats.DataSubmitted), sent),
			ReportRate:     models.Percentage(int(stats.EmailsReported), sent),
		},
	}, nil
}

// ListTargets returns the recipients of a campaign ordered by last name
func (s *CampaignService) ListTargets(actor Actor, id uuid.UUID, req *CampaignTargetListRequest) (*CampaignTargetListResponse, error) {
	campaign, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	rows, total, err := s.recipients.List(repository.CampaignTargetFilter{
		Page:       params.repoPage(),
		CampaignID: campaign.ID,
		Status:     req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign targets: %w", err)
	}
	responses := make([]CampaignTargetResponse, len(rows))
	for i := range rows {
		responses[i] = toCampaignTargetResponse(&rows[i])
	}
	return &CampaignTargetListResponse{CampaignTargets: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// Statistics is the campaign dashboard of the actor's organization
func (s *CampaignService) Statistics(actor Actor) (*CampaignStatisticsResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountByStatus(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}
	byTemplate, err := s.templateRepo.CountByType(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}
	byPage, err := s.pageRepo.CountByType(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count landing pages: %w", err)
	}

	campaigns := map[string]int64{}
	for _, status := range []models.CampaignStatus{
		models.CampaignStatusDraft, models.CampaignStatusScheduled, models.CampaignStatusRunning,
		models.CampaignStatusPaused, models.CampaignStatusCompleted, models.CampaignStatusCancelled,
	} {
		campaigns[string(status)] = byStatus[string(status)]
	}
	return &CampaignStatisticsResponse{
		TotalCampaigns:     sumCounts(campaigns),
		CampaignsByStatus:  campaigns,
		TotalTemplates:     sumCounts(byTemplate),
		TemplatesByType:    byTemplate,
		TotalLandingPages:  sumCounts(byPage),
		LandingPagesByType: byPage,
	}, nil
}

func (s *CampaignService) load(actor Actor, id uuid.UUID) (*models.Campaign, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	campaign, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCampaignNotFound, "get campaign")
	}
	return campaign, nil
}

func (s *CampaignService) withCounts(campaign *models.Campaign) (*CampaignResponse, error) {
	counts, err := s.recipients.Counts([]uuid.UUID{campaign.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count campaign recipients: %w", err)
	}
	c := counts[campaign.ID]
	return toCampaignResponse(campaign, &c), nil
}

// checkContent verifies the template and landing page belong to the organization
func (s *CampaignService) checkContent(orgID uuid.UUID, req *CampaignRequest) error {
	if _, err := s.templateRepo.GetByID(orgID, req.EmailTemplateID); err != nil {
		return lookupError(err,
			apperrors.NewValidationError("email_template_id", "Email template does not exist in this organization."),
			"get email template")
	}
	if req.LandingPageID != nil {
		if _, err := s.pageRepo.GetByID(orgID, *req.LandingPageID); err != nil {
			return lookupError(err,
				apperrors.NewValidationError("landing_page_id", "Landing page does not exist in this organization."),
				"get landing page")
		}
	}
	return nil
}

func (s *CampaignService) resolveGroups(orgID uuid.UUID, ids []uuid.UUID) ([]models.TargetGroup, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	groups, err := s.groupRepo.GetByIDs(orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get target groups: %w", err)
	}
	found := make([]uuid.UUID, len(groups))
	for i, g := range groups {
		found[i] = g.ID
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperrors.NewBadRequestError("Invalid target group IDs: " + idList(missing))
	}
	return groups, nil
}

func (s *CampaignService) resolveTargets(orgID uuid.UUID, ids []uuid.UUID) ([]models.Target, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	targets, err := s.targetRepo.GetByIDs(orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get targets: %w", err)
	}
	found := make([]uuid.UUID, len(targets))
	for i, t := range targets {
		found[i] = t.ID
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperrors.NewBadRequestError("Invalid target IDs: " + idList(missing))
	}
	return targets, nil
}

func (s *CampaignService) notify(ctx context.Context, campaign *models.Campaign, kind models.NotificationType, title, message string) {
	if s.notifier == nil {
		return
	}
	id := campaign.ID
	err := s.notifier.NotifyManagers(ctx, campaign.OrganizationID, NotificationInput{
		Title:       title,
		Message:     message,
		Type:        kind,
		Priority:    models.NotificationPriorityMedium,
		CampaignID:  &id,
		ActionURL:   "/campaigns/" + id.String(),
		ActionLabel: "View campaign",
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("campaign_id", id).Warn("failed to notify managers")
	}
}

func applyCampaignRequest(c *models.Campaign, req *CampaignRequest) {
	c.Name = strings.TrimSpace(req.Name)
	c.Description = req.Description
	c.EmailTemplateID = req.EmailTemplateID
	c.LandingPageID = req.LandingPageID
	c.ScheduledStart = req.ScheduledStart
	if req.SendIntervalMinutes != nil {
		c.SendIntervalMinutes = *req.SendIntervalMinutes
	}
	c.TrackOpens = boolValue(req.TrackOpens, c.TrackOpens)
	c.TrackClicks = boolValue(req.TrackClicks, c.TrackClicks)
	c.CaptureCredentials = boolValue(req.CaptureCredentials, c.CaptureCredentials)
	c.CaptureData = boolValue(req.CaptureData, c.CaptureData)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func sumCounts(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}

func toCampaignResponse(c *models.Campaign, counts *repository.CampaignCounts) *CampaignResponse {
	resp := &CampaignResponse{
		ID:                  c.ID,
		OrganizationID:      c.OrganizationID,
		Name:                c.Name,
		Description:         c.Description,
		Status:              c.Status,
		EmailTemplateID:     c.EmailTemplateID,
		LandingPageID:       c.LandingPageID,
		ScheduledStart:      formatTimePtr(c.ScheduledStart),
		ActualStart:         formatTimePtr(c.ActualStart),
		EndDate:             formatTimePtr(c.EndDate),
		SendIntervalMinutes: c.SendIntervalMinutes,
		TrackOpens:          c.TrackOpens,
		TrackClicks:         c.TrackClicks,
		CaptureCredentials:  c.CaptureCredentials,
		CaptureData:         c.CaptureData,
		TargetGroupIDs:      make([]uuid.UUID, len(c.TargetGroups)),
		IndividualTargetIDs: make([]uuid.UUID, len(c.IndividualTargets)),
		Stats:               counts,
		CreatedBy:           c.CreatedByID,
		CreatedAt:           formatTime(c.CreatedAt),
		UpdatedAt:           formatTime(c.UpdatedAt),
	}
	if c.EmailTemplate != nil {
		resp.EmailTemplateName = c.EmailTemplate.Name
	}
	if c.LandingPage != nil {
		resp.LandingPageName = c.LandingPage.Name
	}
	for i, g := range c.TargetGroups {
		resp.TargetGroupIDs[i] = g.ID
	}
	for i, t := range c.IndividualTargets {
		resp.IndividualTargetIDs[i] = t.ID
	}
	return resp
}

func toCampaignTargetResponse(ct *models.CampaignTarget) CampaignTargetResponse {
	resp := CampaignTargetResponse{
		ID:              ct.ID,
		CampaignID:      ct.CampaignID,
		TargetID:        ct.TargetID,
		Status:          ct.Status,
		EmailSentAt:     formatTimePtr(ct.EmailSentAt),
		EmailOpenedAt:   formatTimePtr(ct.EmailOpenedAt),
		LinkClickedAt:   formatTimePtr(ct.LinkClickedAt),
		DataSubmittedAt: formatTimePtr(ct.DataSubmittedAt),
		ReportedAt:      formatTimePtr(ct.ReportedAt),
		IPAddress:       ct.IPAddress,
		UserAgent:       ct.UserAgent,
	}
	if ct.Target != nil {
		resp.TargetName = ct.Target.FullName()
		resp.TargetEmail = ct.Target.Email
		resp.TargetDept = ct.Target.Department
	}
	return resp
}
