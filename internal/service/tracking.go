package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/metrics"
	"phishing-simulator-backend/internal/repository"

	"gorm.io/gorm"
)

const defaultAwarenessMessage = "This was a simulated phishing exercise run by your security team. " +
	"No harm was done, but a real attacker could have used this page to steal your information."

var sensitiveFieldMarkers = []string{"password", "passwd", "pwd", "passcode", "secret"}

// TrackingRequest is what the public tracking endpoints know about the visitor
type TrackingRequest struct {
	IPAddress string
	UserAgent string
}

// LandingResult tells the tracking handler what to show after a click or submit
type LandingResult struct {
	HTML        string
	RedirectURL string
}

// TrackingService records interactions with campaign emails
type TrackingService struct {
	recipients repository.CampaignTargetRepositoryInterface
	events     repository.EmailEventRepositoryInterface
	notifier   Notifier
	now        func() time.Time
}

// NewTrackingService creates a new tracking service; notifier may be nil
func NewTrackingService(
	recipients repository.CampaignTargetRepositoryInterface,
	events repository.EmailEventRepositoryInterface,
	notifier Notifier,
) *TrackingService {
	return &TrackingService{
		recipients: recipients,
		events:     events,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Open records that the email was opened
func (s *TrackingService) Open(ctx context.Context, token string, req TrackingRequest) error {
	ct, err := s.resolve(token)
	if err != nil {
		return err
	}
	if !ct.Campaign.TrackOpens {
		return nil
	}
	now := s.now()
	if ct.EmailOpenedAt == nil {
		ct.EmailOpenedAt = &now
	}
	return s.record(ctx, ct, models.CampaignTargetOpened, models.EmailEventOpened, req, nil)
}

// Click records a followed link and returns the page to show
func (s *TrackingService) Click(ctx context.Context, token string, req TrackingRequest) (*LandingResult, error) {
	ct, err := s.resolve(token)
	if err != nil {
		return nil, err
	}
	if ct.Campaign.TrackClicks {
		now := s.now()
		if ct.LinkClickedAt == nil {
			ct.LinkClickedAt = &now
		}
		if err := s.record(ctx, ct, models.CampaignTargetClicked, models.EmailEventClicked, req, nil); err != nil {
			return nil, err
		}
		s.escalate(ctx, ct, "clicked a phishing link", models.AlertTriggerHighRiskUserClick)
	}
	return clickLanding(ct, token), nil
}

// Submit records data entered on the landing page
func (s *TrackingService) Submit(ctx context.Context, token string, req TrackingRequest, form map[string]interface{}) (*LandingResult, error) {
	ct, err := s.resolve(token)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if ct.DataSubmittedAt == nil {
		ct.DataSubmittedAt = &now
	}
	if ct.Campaign.CaptureData {
		ct.SubmittedData = sanitizeSubmission(form)
	}
	// Submissions share the clicked event type; the action marks them apart.
	metadata := models.JSONMap{"action": "submitted", "fields": len(form)}
	if err := s.record(ctx, ct, models.CampaignTargetSubmitted, models.EmailEventClicked, req, metadata); err != nil {
		return nil, err
	}

	s.escalate(ctx, ct, "submitted data on a phishing page", models.AlertTriggerHighRiskUserClick, models.AlertTriggerCredentialSubmission)
	if !ct.Target.RiskLevel.IsHigh() {
		s.trigger(ctx, ct, models.AlertTriggerCredentialSubmission, NotificationInput{
			Title:    "Credential Submission",
			Message:  fmt.Sprintf("%s submitted data in campaign '%s'.", targetLabel(ct.Target), ct.Campaign.Name),
			Type:     models.NotificationSecurityBreach,
			Priority: models.NotificationPriorityHigh,
		})
	}
	return submitLanding(ct), nil
}

// Report records that the target reported the email as phishing
func (s *TrackingService) Report(ctx context.Context, token string, req TrackingRequest) error {
	ct, err := s.resolve(token)
	if err != nil {
		return err
	}
	now := s.now()
	if ct.ReportedAt == nil {
		ct.ReportedAt = &now
	}
	return s.record(ctx, ct, models.CampaignTargetReported, models.EmailEventReported, req, nil)
}

func (s *TrackingService) resolve(token string) (*models.CampaignTarget, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.ErrTrackingTokenNotFound
	}
	ct, err := s.recipients.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackingTokenNotFound
		}
		return nil, fmt.Errorf("failed to resolve tracking token: %w", err)
	}
	if ct.Campaign == nil || ct.Target == nil || !ct.Campaign.IsTrackable() {
		return nil, apperrors.ErrTrackingTokenNotFound
	}
	return ct, nil
}

func (s *TrackingService) record(ctx context.Context, ct *models.CampaignTarget, status models.CampaignTargetStatus,
	eventType models.EmailEventType, req TrackingRequest, metadata models.JSONMap) error {
	advance(ct, status)
	if req.IPAddress != "" {
		ct.IPAddress = req.IPAddress
	}
	if req.UserAgent != "" {
		ct.UserAgent = req.UserAgent
	}
	if err := s.recipients.Save(ct); err != nil {
		return fmt.Errorf("failed to save tracking state: %w", err)
	}

	event := &models.EmailEvent{
		CampaignID: ct.CampaignID,
		TargetID:   ct.TargetID,
		EventType:  eventType,
		Timestamp:  s.now(),
		IPAddress:  req.IPAddress,
		UserAgent:  req.UserAgent,
		Metadata:   metadata,
	}
	if err := s.events.Create(event); err != nil {
		return fmt.Errorf("failed to record email event: %w", err)
	}

	metrics.TrackingEvents.WithLabelValues(string(status)).Inc()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": ct.CampaignID,
		"target_id":   ct.TargetID,
		"event":       eventType,
	}).Debug("tracking event recorded")
	return nil
}

// escalate tells managers about a high-risk target's interaction and fires matching alert rules
func (s *TrackingService) escalate(ctx context.Context, ct *models.CampaignTarget, what string, triggers ...models.AlertTriggerType) {
	if s.notifier == nil || !ct.Target.RiskLevel.IsHigh() {
		return
	}
	in := NotificationInput{
		Title:    "High Risk User Click",
		Message:  fmt.Sprintf("High risk user %s %s in campaign '%s'.", targetLabel(ct.Target), what, ct.Campaign.Name),
		Type:     models.NotificationHighRiskClick,
		Priority: models.NotificationPriorityHigh,
	}
	s.withLinks(ct, &in)
	if err := s.notifier.NotifyManagers(ctx, ct.Campaign.OrganizationID, in); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("campaign_id", ct.CampaignID).Warn("failed to notify managers of high risk click")
	}
	for _, trigger := range triggers {
		s.trigger(ctx, ct, trigger, in)
	}
}

func (s *TrackingService) trigger(ctx context.Context, ct *models.CampaignTarget, trigger models.AlertTriggerType, in NotificationInput) {
	if s.notifier == nil {
		return
	}
	s.withLinks(ct, &in)
	if err := s.notifier.TriggerAlerts(ctx, ct.Campaign.OrganizationID, trigger, in); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("trigger", trigger).Warn("failed to trigger alert rules")
	}
}

func (s *TrackingService) withLinks(ct *models.CampaignTarget, in *NotificationInput) {
	campaignID, targetID := ct.CampaignID, ct.TargetID
	in.CampaignID = &campaignID
	in.TargetID = &targetID
	in.ActionURL = "/campaigns/" + campaignID.String() + "/targets"
	in.ActionLabel = "View targets"
}

// advance moves the recipient along pending, sent, opened, clicked, submitted; reported is reachable from anywhere
func advance(ct *models.CampaignTarget, status models.CampaignTargetStatus) {
	if status == models.CampaignTargetReported {
		ct.Status = status
		return
	}
	current := ct.Status.Rank()
	if current >= 0 && status.Rank() > current {
		ct.Status = status
	}
}

func sanitizeSubmission(form map[string]interface{}) models.JSONMap {
	return models.JSONMap(stripSensitive(form))
}

// stripSensitive drops password-like keys at any depth of nested objects and arrays
func stripSensitive(form map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(form))
	for key, value := range form {
		if isSensitiveField(key) {
			continue
		}
		out[key] = stripSensitiveValue(value)
	}
	return out
}

func stripSensitiveValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return stripSensitive(v)
	case []interface{}:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = stripSensitiveValue(item)
		}
		return items
	default:
		return value
	}
}

func isSensitiveField(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range sensitiveFieldMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func clickLanding(ct *models.CampaignTarget, token string) *LandingResult {
	page := ct.Campaign.LandingPage
	if page == nil {
		return &LandingResult{HTML: awarenessPage("")}
	}
	if strings.TrimSpace(page.HTMLContent) == "" && page.RedirectURL != "" {
		return &LandingResult{RedirectURL: page.RedirectURL}
	}
	body := strings.ReplaceAll(page.HTMLContent, "{{submit_url}}", "/track/"+token+"/submit")
	if page.ShowAwarenessMessage {
		body += awarenessBanner(page.AwarenessMessage)
	}
	return &LandingResult{HTML: wrapPage(page.Name, page.CSSContent, body)}
}

func submitLanding(ct *models.CampaignTarget) *LandingResult {
	page := ct.Campaign.LandingPage
	if page == nil {
		return &LandingResult{HTML: awarenessPage("")}
	}
	if page.RedirectURL != "" {
		return &LandingResult{RedirectURL: page.RedirectURL}
	}
	if !page.ShowAwarenessMessage {
		return &LandingResult{HTML: wrapPage(page.Name, page.CSSContent, "")}
	}
	return &LandingResult{HTML: awarenessPage(page.AwarenessMessage)}
}

func awarenessBanner(message string) string {
	if strings.TrimSpace(message) == "" {
		message = defaultAwarenessMessage
	}
	return `<div class="awareness-message" role="alert"><h2>This was a phishing simulation</h2><p>` +
		html.EscapeString(message) + `</p></div>`
}

func awarenessPage(message string) string {
	return wrapPage("Security Awareness", "", awarenessBanner(message))
}

func wrapPage(title, css, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>")
	if css != "" {
		b.WriteString("<style>")
		b.WriteString(css)
		b.WriteString("</style>")
	}
	b.WriteString("</head><body>")
	b.WriteString(body)
	b.WriteString("</body></html>")
	return b.String()
}

func targetLabel(t *models.Target) string {
	name := strings.TrimSpace(t.FirstName + " " + t.LastName)
	if name == "" {
		return t.Email
	}
	return fmt.Sprintf("%s (%s)", name, t.Email)
}

