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
	"phishing-simulator-backend/internal/mailer"
	"phishing-simulator-backend/internal/metrics"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SenderBatchSize is how many due queue rows one email-sender pass handles
const SenderBatchSize = 50

// EmailOptions configures delivery
type EmailOptions struct {
	TrackingBaseURL string
	MaxRetries      int
	// UseFallback allows the platform sender when no SMTP configuration has capacity
	UseFallback bool
}

// EmailService handles SMTP configurations, the outbound queue and tracking events
type EmailService struct {
	smtpRepo     repository.SMTPConfigurationRepositoryInterface
	queueRepo    repository.EmailQueueRepositoryInterface
	eventRepo    repository.EmailEventRepositoryInterface
	campaignRepo repository.CampaignRepositoryInterface
	recipients   repository.CampaignTargetRepositoryInterface
	senders      mailer.Resolver
	usage        UsageRecorder
	validator    *validator.Validate
	opts         EmailOptions
	now          func() time.Time
}

// NewEmailService creates a new email service; usage may be nil
func NewEmailService(
	smtpRepo repository.SMTPConfigurationRepositoryInterface,
	queueRepo repository.EmailQueueRepositoryInterface,
	eventRepo repository.EmailEventRepositoryInterface,
	campaignRepo repository.CampaignRepositoryInterface,
	recipients repository.CampaignTargetRepositoryInterface,
	senders mailer.Resolver,
	usage UsageRecorder,
	validator *validator.Validate,
	opts EmailOptions,
) *EmailService {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	return &EmailService{
		smtpRepo:     smtpRepo,
		queueRepo:    queueRepo,
		eventRepo:    eventRepo,
		campaignRepo: campaignRepo,
		recipients:   recipients,
		senders:      senders,
		usage:        usage,
		validator:    validator,
		opts:         opts,
		now:          time.Now,
	}
}

// SMTPConfigRequest represents the create and update payload of an SMTP configuration.
// Password is write-only; an empty password on update keeps the stored one.
type SMTPConfigRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Host         string `json:"host" validate:"required,max=255"`
	Port         int    `json:"port" validate:"required,min=1,max=65535"`
	Username     string `json:"username" validate:"max=255"`
	Password     string `json:"password" validate:"max=255"`
	UseTLS       *bool  `json:"use_tls"`
	UseSSL       *bool  `json:"use_ssl"`
	FromEmail    string `json:"from_email" validate:"required,email,max=255"`
	ReplyToEmail string `json:"reply_to_email" validate:"omitempty,email,max=255"`
	IsActive     *bool  `json:"is_active"`
	DailyLimit   *int   `json:"daily_limit" validate:"omitempty,min=0"`
}

// SMTPConfigListResponse represents a paginated list of SMTP configurations
type SMTPConfigListResponse struct {
	SMTPConfigs []models.SMTPConfiguration `json:"smtp_configs"`
	Total       int64                      `json:"total"`
	Page        int                        `json:"page"`
	PageSize    int                        `json:"page_size"`
}

// EmailQueueListRequest filters the outbound queue
type EmailQueueListRequest struct {
	ListParams
	Status   models.EmailQueueStatus `form:"status"`
	Campaign *uuid.UUID              `form:"-"`
}

// EmailQueueListResponse represents a paginated list of queue rows
type EmailQueueListResponse struct {
	Emails   []models.EmailQueue `json:"emails"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// EmailEventListRequest filters tracking events
type EmailEventListRequest struct {
	ListParams
	EventType models.EmailEventType `form:"event_type"`
	Campaign  *uuid.UUID            `form:"-"`
}

// EmailEventListResponse represents a paginated list of events
type EmailEventListResponse struct {
	Events   []models.EmailEvent `json:"events"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// EmailRecentActivity counts recent outbound activity
type EmailRecentActivity struct {
	SentToday    int64 `json:"sent_today"`
	SentThisWeek int64 `json:"sent_this_week"`
	EventsToday  int64 `json:"events_today"`
}

// EmailStatisticsResponse represents the email dashboard of an organization
type EmailStatisticsResponse struct {
	EmailVolume       repository.EmailVolume `json:"email_volume"`
	EventBreakdown    map[string]int64       `json:"event_breakdown"`
	RecentActivity    EmailRecentActivity    `json:"recent_activity"`
	ActiveSMTPConfigs int64                  `json:"active_smtp_configs"`
}

// SendResult summarises one email-sender pass
type SendResult struct {
	Sent    int `json:"sent"`
	Retried int `json:"retried"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// ListSMTPConfigs returns the SMTP configurations of the actor's organization
func (s *EmailService) ListSMTPConfigs(actor Actor, params ListParams) (*SMTPConfigListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	configs, total, err := s.smtpRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list SMTP configurations: %w", err)
	}
	if configs == nil {
		configs = []models.SMTPConfiguration{}
	}
	return &SMTPConfigListResponse{SMTPConfigs: configs, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// CreateSMTPConfig adds an SMTP configuration
func (s *EmailService) CreateSMTPConfig(actor Actor, req *SMTPConfigRequest) (*models.SMTPConfiguration, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	cfg := &models.SMTPConfiguration{
		OrganizationID: orgID,
		UseTLS:         true,
		IsActive:       true,
		DailyLimit:     1000,
	}
	applySMTPConfigRequest(cfg, req)
	if err := s.smtpRepo.Create(cfg); err != nil {
		return nil, fmt.Errorf("failed to create SMTP configuration: %w", err)
	}
	return cfg, nil
}

// GetSMTPConfig retrieves an SMTP configuration
func (s *EmailService) GetSMTPConfig(actor Actor, id uuid.UUID) (*models.SMTPConfiguration, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	cfg, err := s.smtpRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrSMTPConfigurationNotFound, "get SMTP configuration")
	}
	return cfg, nil
}

// UpdateSMTPConfig replaces an SMTP configuration
func (s *EmailService) UpdateSMTPConfig(actor Actor, id uuid.UUID, req *SMTPConfigRequest) (*models.SMTPConfiguration, error) {
	cfg, err := s.GetSMTPConfig(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	applySMTPConfigRequest(cfg, req)
	if err := s.smtpRepo.Update(cfg); err != nil {
		return nil, fmt.Errorf("failed to update SMTP configuration: %w", err)
	}
	return cfg, nil
}

// DeleteSMTPConfig removes an SMTP configuration
func (s *EmailService) DeleteSMTPConfig(actor Actor, id uuid.UUID) error {
	cfg, err := s.GetSMTPConfig(actor, id)
	if err != nil {
		return err
	}
	if err := s.smtpRepo.Delete(cfg.OrganizationID, id); err != nil {
		return fmt.Errorf("failed to delete SMTP configuration: %w", err)
	}
	return nil
}

// ListQueue returns the outbound queue of the actor's organization
func (s *EmailService) ListQueue(actor Actor, req *EmailQueueListRequest) (*EmailQueueListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	rows, total, err := s.queueRepo.List(repository.EmailQueueFilter{
		Page:           params.repoPage(),
		OrganizationID: orgID,
		Status:         req.Status,
		CampaignID:     req.Campaign,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list email queue: %w", err)
	}
	if rows == nil {
		rows = []models.EmailQueue{}
	}
	return &EmailQueueListResponse{Emails: rows, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// ListEvents returns the tracking events of the actor's organization
func (s *EmailService) ListEvents(actor Actor, req *EmailEventListRequest) (*EmailEventListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	events, total, err := s.eventRepo.List(repository.EmailEventFilter{
		Page:           params.repoPage(),
		OrganizationID: orgID,
		EventType:      req.EventType,
		CampaignID:     req.Campaign,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list email events: %w", err)
	}
	if events == nil {
		events = []models.EmailEvent{}
	}
	return &EmailEventListResponse{Events: events, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// Statistics summarises queue volume and recent activity
func (s *EmailService) Statistics(actor Actor) (*EmailStatisticsResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	now := s.now()
	today := startOfDay(now)

	volume, err := s.queueRepo.Volume(orgID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get email volume: %w", err)
	}
	breakdown, err := s.eventRepo.CountByType(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count email events: %w", err)
	}
	sentToday, err := s.queueRepo.CountSentSince(orgID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count sent emails: %w", err)
	}
	sentWeek, err := s.queueRepo.CountSentSince(orgID, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to count sent emails: %w", err)
	}
	eventsToday, err := s.eventRepo.CountSince(orgID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count email events: %w", err)
	}
	active, err := s.smtpRepo.CountActive(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count SMTP configurations: %w", err)
	}

	return &EmailStatisticsResponse{
		EmailVolume:    *volume,
		EventBreakdown: breakdown,
		RecentActivity: EmailRecentActivity{
			SentToday:    sentToday,
			SentThisWeek: sentWeek,
			EventsToday:  eventsToday,
		},
		ActiveSMTPConfigs: active,
	}, nil
}

// ProcessQueue delivers due queued emails
func (s *EmailService) ProcessQueue(ctx context.Context) (*SendResult, error) {
	rows, err := s.queueRepo.ListDue(s.now(), SenderBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list due emails: %w", err)
	}
	result := &SendResult{}
	campaigns := make(map[uuid.UUID]*models.Campaign)
	for i := range rows {
		row := &rows[i]
		claimed, err := s.queueRepo.Claim(row.ID)
		if err != nil {
			return result, fmt.Errorf("failed to claim queued email: %w", err)
		}
		if !claimed {
			result.Skipped++
			continue
		}
		row.Status = models.EmailQueueSending

		outcome := s.deliver(ctx, row, campaigns)
		metrics.EmailsProcessed.WithLabelValues(outcome).Inc()
		switch outcome {
		case "sent":
			result.Sent++
		case "retried":
			result.Retried++
		case "failed":
			result.Failed++
		default:
			result.Skipped++
		}
	}
	return result, nil
}

// deliver sends one claimed row and records the outcome on it
func (s *EmailService) deliver(ctx context.Context, row *models.EmailQueue, campaigns map[uuid.UUID]*models.Campaign) string {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"queue_id":    row.ID,
		"campaign_id": row.CampaignID,
	})

	campaign, ok := campaigns[row.CampaignID]
	if !ok {
		c, err := s.campaignRepo.GetForDispatch(row.CampaignID)
		if err != nil {
			return s.fail(ctx, row, fmt.Errorf("failed to load campaign: %w", err))
		}
		campaign = c
		campaigns[row.CampaignID] = c
	}

	switch campaign.Status {
	case models.CampaignStatusRunning:
	case models.CampaignStatusPaused:
		// Hold the row until the campaign resumes.
		row.Status = models.EmailQueueQueued
		row.ScheduledTime = s.now().Add(time.Duration(max(campaign.SendIntervalMinutes, 1)) * time.Minute)
		if err := s.queueRepo.Save(row); err != nil {
			log.WithError(err).Error("failed to defer queued email")
		}
		return "deferred"
	default:
		row.Status = models.EmailQueueCancelled
		if err := s.queueRepo.Save(row); err != nil {
			log.WithError(err).Error("failed to cancel queued email")
		}
		return "cancelled"
	}

	ct, err := s.recipients.GetByID(row.CampaignTargetID)
	if err != nil {
		return s.fail(ctx, row, fmt.Errorf("failed to load recipient: %w", err))
	}
	if ct.Target == nil || campaign.EmailTemplate == nil {
		return s.fail(ctx, row, errors.New("campaign recipient or template is missing"))
	}

	cfg, sender, err := s.pickSender(campaign.OrganizationID)
	if err != nil {
		return s.fail(ctx, row, err)
	}

	msg := s.render(campaign, ct)
	messageID, err := sender.Send(ctx, msg)
	if err != nil {
		return s.fail(ctx, row, err)
	}

	now := s.now()
	row.Status = models.EmailQueueSent
	row.SentTime = &now
	row.MessageID = messageID
	row.ErrorMessage = ""
	if cfg != nil {
		id := cfg.ID
		row.SMTPConfigurationID = &id
	}
	if err := s.queueRepo.Save(row); err != nil {
		log.WithError(err).Error("failed to mark email sent")
	}
	if cfg != nil {
		if err := s.smtpRepo.IncrementDailyCount(cfg.ID); err != nil {
			log.WithError(err).Warn("failed to increment SMTP daily count")
		}
	}
	event := &models.EmailEvent{
		CampaignID: row.CampaignID,
		TargetID:   row.TargetID,
		EventType:  models.EmailEventSent,
		Timestamp:  now,
		MessageID:  messageID,
	}
	if err := s.eventRepo.Create(event); err != nil {
		log.WithError(err).Warn("failed to record sent event")
	}
	if s.usage != nil {
		if err := s.usage.Increment(ctx, campaign.OrganizationID, models.MetricEmailsSent, 1); err != nil {
			log.WithError(err).Warn("failed to record email usage")
		}
	}
	log.WithField("message_id", messageID).Debug("campaign email sent")
	return "sent"
}

// fail records a delivery failure, requeueing with a quadratic backoff until retries run out
func (s *EmailService) fail(ctx context.Context, row *models.EmailQueue, cause error) string {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"queue_id":    row.ID,
		"campaign_id": row.CampaignID,
	}).WithError(cause)

	row.RetryCount++
	row.ErrorMessage = cause.Error()
	outcome := "retried"
	if row.RetryCount < s.opts.MaxRetries {
		row.Status = models.EmailQueueQueued
		row.ScheduledTime = s.now().Add(time.Duration(row.RetryCount*row.RetryCount) * time.Minute)
		log.Warn("email delivery failed, will retry")
	} else {
		row.Status = models.EmailQueueFailed
		outcome = "failed"
		log.Error("email delivery failed permanently")
		if err := s.recipients.MarkFailed(row.CampaignTargetID); err != nil {
			log.WithError(err).Error("failed to mark recipient failed")
		}
	}
	if err := s.queueRepo.Save(row); err != nil {
		log.WithError(err).Error("failed to save queued email")
	}
	return outcome
}

// pickSender returns the first active SMTP configuration with capacity, resetting stale
// daily counters on the way, or the platform fallback when allowed
func (s *EmailService) pickSender(orgID uuid.UUID) (*models.SMTPConfiguration, mailer.Sender, error) {
	configs, err := s.smtpRepo.ListActive(orgID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list SMTP configurations: %w", err)
	}
	now := s.now()
	for i := range configs {
		cfg := &configs[i]
		if cfg.NeedsReset(now) {
			if err := s.smtpRepo.ResetDailyCount(cfg.ID, now); err != nil {
				return nil, nil, fmt.Errorf("failed to reset SMTP daily count: %w", err)
			}
			cfg.CurrentDailyCount = 0
			cfg.LastResetDate = &now
		}
		if !cfg.HasCapacity(now) {
			continue
		}
		sender, err := s.senders.SenderFor(cfg)
		if err != nil {
			return nil, nil, err
		}
		return cfg, sender, nil
	}
	if s.opts.UseFallback {
		sender, err := s.senders.SenderFor(nil)
		if err != nil {
			return nil, nil, err
		}
		return nil, sender, nil
	}
	return nil, nil, apperrors.ErrNoActiveSMTPConfig
}

func (s *EmailService) render(campaign *models.Campaign, ct *models.CampaignTarget) *mailer.Message {
	template := campaign.EmailTemplate
	click, pixel := mailer.TrackingURLs(s.opts.TrackingBaseURL, ct.TrackingToken)
	vars := mailer.Variables{
		FirstName:   ct.Target.FirstName,
		LastName:    ct.Target.LastName,
		Email:       ct.Target.Email,
		Department:  ct.Target.Department,
		TrackingURL: click,
	}
	if campaign.TrackOpens {
		vars.PixelURL = pixel
	}
	return &mailer.Message{
		FromName:  template.SenderName,
		FromEmail: template.SenderEmail,
		To:        ct.Target.Email,
		Subject:   mailer.RenderText(template.Subject, vars),
		HTML:      mailer.Render(template.HTMLContent, vars),
		Text:      mailer.RenderText(template.TextContent, vars),
	}
}

func applySMTPConfigRequest(cfg *models.SMTPConfiguration, req *SMTPConfigRequest) {
	cfg.Name = strings.TrimSpace(req.Name)
	cfg.Host = strings.TrimSpace(req.Host)
	cfg.Port = req.Port
	cfg.Username = req.Username
	if req.Password != "" {
		cfg.Password = req.Password
	}
	cfg.UseTLS = boolValue(req.UseTLS, cfg.UseTLS)
	cfg.UseSSL = boolValue(req.UseSSL, cfg.UseSSL)
	cfg.FromEmail = strings.TrimSpace(req.FromEmail)
	cfg.ReplyToEmail = strings.TrimSpace(req.ReplyToEmail)
	cfg.IsActive = boolValue(req.IsActive, cfg.IsActive)
	if req.DailyLimit != nil {
		cfg.DailyLimit = *req.DailyLimit
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
