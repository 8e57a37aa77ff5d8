package service

import (
	"context"
	"fmt"
	"time"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/realtime"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NotificationInput describes a notification to deliver to one or more users
type NotificationInput struct {
	Title       string
	Message     string
	Type        models.NotificationType
	Priority    models.NotificationPriority
	CampaignID  *uuid.UUID
	TargetID    *uuid.UUID
	ActionURL   string
	ActionLabel string
	ExpiresAt   *time.Time
}

// NotificationService handles in-app notifications, preferences and alert rules
type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	prefRepo  repository.NotificationPreferenceRepositoryInterface
	ruleRepo  repository.AlertRuleRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	publisher realtime.Publisher
	validator *validator.Validate
	now       func() time.Time
}

// NewNotificationService creates a new notification service; publisher may be nil
func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	prefRepo repository.NotificationPreferenceRepositoryInterface,
	ruleRepo repository.AlertRuleRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	publisher realtime.Publisher,
	validator *validator.Validate,
) *NotificationService {
	return &NotificationService{
		repo:      repo,
		prefRepo:  prefRepo,
		ruleRepo:  ruleRepo,
		userRepo:  userRepo,
		publisher: publisher,
		validator: validator,
		now:       time.Now,
	}
}

// NotificationListRequest filters the recipient's notifications
type NotificationListRequest struct {
	ListParams
	NotificationType models.NotificationType     `form:"notification_type"`
	Priority         models.NotificationPriority `form:"priority"`
	IsRead           *bool                       `form:"is_read"`
}

// UpdateNotificationRequest represents the request to update a notification
type UpdateNotificationRequest struct {
	IsRead *bool `json:"is_read"`
}

// NotificationResponse represents a notification
type NotificationResponse struct {
	ID               uuid.UUID                   `json:"id"`
	Title            string                      `json:"title"`
	Message          string                      `json:"message"`
	NotificationType models.NotificationType     `json:"notification_type"`
	Priority         models.NotificationPriority `json:"priority"`
	IsRead           bool                        `json:"is_read"`
	ReadAt           *string                     `json:"read_at,omitempty"`
	IsEmailSent      bool                        `json:"is_email_sent"`
	CampaignID       *uuid.UUID                  `json:"campaign_id,omitempty"`
	TargetID         *uuid.UUID                  `json:"target_id,omitempty"`
	ActionURL        string                      `json:"action_url,omitempty"`
	ActionLabel      string                      `json:"action_label,omitempty"`
	ExpiresAt        *string                     `json:"expires_at,omitempty"`
	CreatedAt        string                      `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// NotificationStatisticsResponse summarises a user's notifications
type NotificationStatisticsResponse struct {
	TotalNotifications  int64            `json:"total_notifications"`
	UnreadNotifications int64            `json:"unread_notifications"`
	ByType              map[string]int64 `json:"by_type"`
	ByPriority          map[string]int64 `json:"by_priority"`
	RecentNotifications int64            `json:"recent_notifications"`
}

// UpdatePreferencesRequest represents a partial update of notification preferences
type UpdatePreferencesRequest struct {
	EmailCampaignUpdates *bool                   `json:"email_campaign_updates"`
	EmailSecurityAlerts  *bool                   `json:"email_security_alerts"`
	EmailReports         *bool                   `json:"email_reports"`
	EmailBilling         *bool                   `json:"email_billing"`
	AppCampaignUpdates   *bool                   `json:"app_campaign_updates"`
	AppSecurityAlerts    *bool                   `json:"app_security_alerts"`
	AppSystemAlerts      *bool                   `json:"app_system_alerts"`
	DigestFrequency      *models.DigestFrequency `json:"digest_frequency"`
	QuietHoursStart      *string                 `json:"quiet_hours_start" validate:"omitempty,datetime=15:04"`
	QuietHoursEnd        *string                 `json:"quiet_hours_end" validate:"omitempty,datetime=15:04"`
	Timezone             *string                 `json:"timezone" validate:"omitempty,timezone"`
}

// AlertRuleRequest represents the request to create or update an alert rule
type AlertRuleRequest struct {
	Name              string                  `json:"name" validate:"required,max=200"`
	TriggerType       models.AlertTriggerType `json:"trigger_type" validate:"required"`
	ThresholdValue    float64                 `json:"threshold_value" validate:"gte=0"`
	TimeWindowMinutes int                     `json:"time_window_minutes" validate:"omitempty,min=1"`
	IsActive          *bool                   `json:"is_active"`
	NotifyUserIDs     []uuid.UUID             `json:"notify_user_ids"`
}

// AlertRuleResponse represents an alert rule
type AlertRuleResponse struct {
	ID                uuid.UUID               `json:"id"`
	Name              string                  `json:"name"`
	TriggerType       models.AlertTriggerType `json:"trigger_type"`
	ThresholdValue    float64                 `json:"threshold_value"`
	TimeWindowMinutes int                     `json:"time_window_minutes"`
	IsActive          bool                    `json:"is_active"`
	NotifyUserIDs     []uuid.UUID             `json:"notify_user_ids"`
	CreatedBy         *uuid.UUID              `json:"created_by,omitempty"`
	CreatedAt         string                  `json:"created_at"`
	UpdatedAt         string                  `json:"updated_at"`
}

// AlertRuleListResponse represents a paginated list of alert rules
type AlertRuleListResponse struct {
	AlertRules []AlertRuleResponse `json:"alert_rules"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Notify creates one notification per recipient and pushes it in-app where preferences allow
func (s *NotificationService) Notify(ctx context.Context, recipientIDs []uuid.UUID, in NotificationInput) error {
	if in.Priority == "" {
		in.Priority = models.NotificationPriorityMedium
	}
	log := logger.WithContext(ctx).WithField("notification_type", in.Type)

	for _, recipientID := range uniqueIDs(recipientIDs) {
		n := &models.Notification{
			RecipientID:      recipientID,
			Title:            in.Title,
			Message:          in.Message,
			NotificationType: in.Type,
			Priority:         in.Priority,
			CampaignID:       in.CampaignID,
			TargetID:         in.TargetID,
			ActionURL:        in.ActionURL,
			ActionLabel:      in.ActionLabel,
			ExpiresAt:        in.ExpiresAt,
		}
		if err := s.repo.Create(n); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
		s.push(ctx, log, n)
	}
	return nil
}

func (s *NotificationService) push(ctx context.Context, log *logger.Logger, n *models.Notification) {
	if s.publisher == nil {
		return
	}
	pref, err := s.prefRepo.GetOrCreate(n.RecipientID)
	if err != nil {
		log.WithError(err).Warn("failed to load notification preferences")
		return
	}
	if !pref.AllowsInApp(n.NotificationType) {
		return
	}
	if err := s.publisher.Publish(ctx, n.RecipientID, toNotificationResponse(n)); err != nil {
		log.WithError(err).WithField("recipient_id", n.RecipientID).Warn("failed to push notification")
	}
}

// NotifyManagers notifies the active admin and customer users of an organization
func (s *NotificationService) NotifyManagers(ctx context.Context, orgID uuid.UUID, in NotificationInput) error {
	managers, err := s.userRepo.GetManagers(orgID)
	if err != nil {
		return fmt.Errorf("failed to get organization managers: %w", err)
	}
	ids := make([]uuid.UUID, len(managers))
	for i, m := range managers {
		ids[i] = m.ID
	}
	return s.Notify(ctx, ids, in)
}

// TriggerAlerts escalates a notification to the recipients of the organization's active rules for trigger
func (s *NotificationService) TriggerAlerts(ctx context.Context, orgID uuid.UUID, trigger models.AlertTriggerType, in NotificationInput) error {
	rules, err := s.ruleRepo.ListActiveByTrigger(orgID, []models.AlertTriggerType{trigger})
	if err != nil {
		return fmt.Errorf("failed to get alert rules: %w", err)
	}
	var ids []uuid.UUID
	for _, rule := range rules {
		for _, u := range rule.NotifyUsers {
			ids = append(ids, u.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	in.Title = "[Alert] " + in.Title
	if in.Priority != models.NotificationPriorityUrgent {
		in.Priority = models.NotificationPriorityHigh
	}
	return s.Notify(ctx, ids, in)
}

// List returns the actor's own unexpired notifications, newest first
func (s *NotificationService) List(actor Actor, req *NotificationListRequest) (*NotificationListResponse, error) {
	params := req.ListParams.Normalize()
	items, total, err := s.repo.List(repository.NotificationFilter{
		Page:             params.repoPage(),
		RecipientID:      actor.UserID,
		NotificationType: req.NotificationType,
		Priority:         req.Priority,
		IsRead:           req.IsRead,
		Now:              s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(items))
	for i := range items {
		responses[i] = *toNotificationResponse(&items[i])
	}
	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          params.Page,
		PageSize:      params.PageSize,
	}, nil
}

// Get retrieves one of the actor's notifications
func (s *NotificationService) Get(actor Actor, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.repo.GetByID(actor.UserID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrNotificationNotFound, "get notification")
	}
	return toNotificationResponse(n), nil
}

// Update changes the read state of one of the actor's notifications
func (s *NotificationService) Update(actor Actor, id uuid.UUID, req *UpdateNotificationRequest) (*NotificationResponse, error) {
	n, err := s.repo.GetByID(actor.UserID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrNotificationNotFound, "get notification")
	}
	if req.IsRead != nil {
		s.setRead(n, *req.IsRead)
	}
	if err := s.repo.Update(n); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	return toNotificationResponse(n), nil
}

// MarkRead marks one of the actor's notifications read
func (s *NotificationService) MarkRead(actor Actor, id uuid.UUID) (*NotificationResponse, error) {
	read := true
	return s.Update(actor, id, &UpdateNotificationRequest{IsRead: &read})
}

func (s *NotificationService) setRead(n *models.Notification, read bool) {
	if read && !n.IsRead {
		now := s.now()
		n.ReadAt = &now
	}
	if !read {
		n.ReadAt = nil
	}
	n.IsRead = read
}

// MarkAllRead marks every unread notification of the actor read and returns how many changed
func (s *NotificationService) MarkAllRead(actor Actor) (int64, error) {
	n, err := s.repo.MarkAllRead(actor.UserID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return n, nil
}

// Statistics summarises the actor's notifications; recent covers the last 7 days
func (s *NotificationService) Statistics(actor Actor) (*NotificationStatisticsResponse, error) {
	now := s.now()
	stats, err := s.repo.Statistics(actor.UserID, now, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to get notification statistics: %w", err)
	}
	return &NotificationStatisticsResponse{
		TotalNotifications:  stats.Total,
		UnreadNotifications: stats.Unread,
		ByType:              stats.ByType,
		ByPriority:          stats.ByPriority,
		RecentNotifications: stats.Recent,
	}, nil
}

// GetPreferences returns the actor's preferences, creating the defaults on first access
func (s *NotificationService) GetPreferences(actor Actor) (*models.NotificationPreference, error) {
	pref, err := s.prefRepo.GetOrCreate(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification preferences: %w", err)
	}
	return pref, nil
}

// UpdatePreferences applies a partial update to the actor's preferences
func (s *NotificationService) UpdatePreferences(actor Actor, req *UpdatePreferencesRequest) (*models.NotificationPreference, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.DigestFrequency != nil && !req.DigestFrequency.IsValid() {
		return nil, apperrors.NewValidationError("digest_frequency", "invalid digest frequency")
	}

	pref, err := s.prefRepo.GetOrCreate(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification preferences: %w", err)
	}

	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	setBool(&pref.EmailCampaignUpdates, req.EmailCampaignUpdates)
	setBool(&pref.EmailSecurityAlerts, req.EmailSecurityAlerts)
	setBool(&pref.EmailReports, req.EmailReports)
	setBool(&pref.EmailBilling, req.EmailBilling)
	setBool(&pref.AppCampaignUpdates, req.AppCampaignUpdates)
	setBool(&pref.AppSecurityAlerts, req.AppSecurityAlerts)
	setBool(&pref.AppSystemAlerts, req.AppSystemAlerts)
	if req.DigestFrequency != nil {
		pref.DigestFrequency = *req.DigestFrequency
	}
	if req.QuietHoursStart != nil {
		pref.QuietHoursStart = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		pref.QuietHoursEnd = *req.QuietHoursEnd
	}
	if req.Timezone != nil {
		pref.Timezone = *req.Timezone
	}

	if err := s.prefRepo.Update(pref); err != nil {
		return nil, fmt.Errorf("failed to update notification preferences: %w", err)
	}
	return pref, nil
}

// ListAlertRules returns the alert rules of the actor's organization
func (s *NotificationService) ListAlertRules(actor Actor, params ListParams) (*AlertRuleListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	rules, total, err := s.ruleRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list alert rules: %w", err)
	}
	responses := make([]AlertRuleResponse, len(rules))
	for i := range rules {
		responses[i] = *toAlertRuleResponse(&rules[i])
	}
	return &AlertRuleListResponse{
		AlertRules: responses,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
	}, nil
}

// GetAlertRule retrieves an alert rule of the actor's organization
func (s *NotificationService) GetAlertRule(actor Actor, id uuid.UUID) (*AlertRuleResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	rule, err := s.ruleRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAlertRuleNotFound, "get alert rule")
	}
	return toAlertRuleResponse(rule), nil
}

// CreateAlertRule creates an alert rule; its recipients must belong to the organization
func (s *NotificationService) CreateAlertRule(actor Actor, req *AlertRuleRequest) (*AlertRuleResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	users, err := s.validateAlertRule(orgID, req)
	if err != nil {
		return nil, err
	}

	rule := &models.AlertRule{
		OrganizationID:    orgID,
		Name:              req.Name,
		TriggerType:       req.TriggerType,
		ThresholdValue:    req.ThresholdValue,
		TimeWindowMinutes: req.TimeWindowMinutes,
		IsActive:          boolValue(req.IsActive, true),
		CreatedByID:       &actor.UserID,
		NotifyUsers:       users,
	}
	if rule.TimeWindowMinutes == 0 {
		rule.TimeWindowMinutes = 60
	}
	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create alert rule: %w", err)
	}
	return toAlertRuleResponse(rule), nil
}

// UpdateAlertRule replaces an alert rule's settings and recipients
func (s *NotificationService) UpdateAlertRule(actor Actor, id uuid.UUID, req *AlertRuleRequest) (*AlertRuleResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	rule, err := s.ruleRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAlertRuleNotFound, "get alert rule")
	}
	users, err := s.validateAlertRule(orgID, req)
	if err != nil {
		return nil, err
	}

	rule.Name = req.Name
	rule.TriggerType = req.TriggerType
	rule.ThresholdValue = req.ThresholdValue
	if req.TimeWindowMinutes > 0 {
		rule.TimeWindowMinutes = req.TimeWindowMinutes
	}
	rule.IsActive = boolValue(req.IsActive, rule.IsActive)
	if users == nil {
		users = []models.User{}
	}
	if err := s.ruleRepo.Update(rule, users); err != nil {
		return nil, fmt.Errorf("failed to update alert rule: %w", err)
	}
	rule.NotifyUsers = users
	return toAlertRuleResponse(rule), nil
}

// DeleteAlertRule deletes an alert rule of the actor's organization
func (s *NotificationService) DeleteAlertRule(actor Actor, id uuid.UUID) error {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return err
	}
	if _, err := s.ruleRepo.GetByID(orgID, id); err != nil {
		return lookupError(err, apperrors.ErrAlertRuleNotFound, "get alert rule")
	}
	if err := s.ruleRepo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete alert rule: %w", err)
	}
	return nil
}

func (s *NotificationService) validateAlertRule(orgID uuid.UUID, req *AlertRuleRequest) ([]models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.TriggerType.IsValid() {
		return nil, apperrors.NewValidationError("trigger_type", "invalid trigger type")
	}
	ids := uniqueIDs(req.NotifyUserIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	users, err := s.userRepo.GetByIDsInOrganization(orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get notify users: %w", err)
	}
	found := make([]uuid.UUID, len(users))
	for i, u := range users {
		found[i] = u.ID
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperrors.NewBadRequestError("Invalid user IDs: " + idList(missing))
	}
	return users, nil
}

func toNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:               n.ID,
		Title:            n.Title,
		Message:          n.Message,
		NotificationType: n.NotificationType,
		Priority:         n.Priority,
		IsRead:           n.IsRead,
		ReadAt:           formatTimePtr(n.ReadAt),
		IsEmailSent:      n.IsEmailSent,
		CampaignID:       n.CampaignID,
		TargetID:         n.TargetID,
		ActionURL:        n.ActionURL,
		ActionLabel:      n.ActionLabel,
		ExpiresAt:        formatTimePtr(n.ExpiresAt),
		CreatedAt:        formatTime(n.CreatedAt),
	}
}

func toAlertRuleResponse(r *models.AlertRule) *AlertRuleResponse {
	ids := make([]uuid.UUID, len(r.NotifyUsers))
	for i, u := range r.NotifyUsers {
		ids[i] = u.ID
	}
	return &AlertRuleResponse{
		ID:                r.ID,
		Name:              r.Name,
		TriggerType:       r.TriggerType,
		ThresholdValue:    r.ThresholdValue,
		TimeWindowMinutes: r.TimeWindowMinutes,
		IsActive:          r.IsActive,
		NotifyUserIDs:     ids,
		CreatedBy:         r.CreatedByID,
		CreatedAt:         formatTime(r.CreatedAt),
		UpdatedAt:         formatTime(r.UpdatedAt),
	}
}
