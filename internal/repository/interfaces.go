package repository

import (
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByDomain(domain string) (*models.Organization, error)
	List(filter OrganizationFilter) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	CountUsers(ids []uuid.UUID) (map[uuid.UUID]int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateWithOrganization(org *models.Organization, user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List(filter UserFilter) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdatePassword(id uuid.UUID, hash string) error
	UpdateLastLogin(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
	GetManagers(orgID uuid.UUID) ([]models.User, error)
	GetByIDsInOrganization(orgID uuid.UUID, ids []uuid.UUID) ([]models.User, error)
	Statistics(orgID *uuid.UUID, since time.Time) (*UserStatistics, error)
}

// RevokedTokenRepositoryInterface defines the interface for the refresh-token blacklist
type RevokedTokenRepositoryInterface interface {
	Revoke(jti string, expiresAt time.Time) error
	IsRevoked(jti string) (bool, error)
	DeleteExpired(now time.Time) (int64, error)
}

// TargetRepositoryInterface defines the interface for target repository operations
type TargetRepositoryInterface interface {
	Create(target *models.Target) error
	CreateBatch(targets []*models.Target) error
	GetByID(orgID, id uuid.UUID) (*models.Target, error)
	GetByEmail(orgID uuid.UUID, email string) (*models.Target, error)
	List(filter TargetFilter) ([]models.Target, int64, error)
	Update(target *models.Target, tags []models.TargetTag) error
	Delete(orgID, id uuid.UUID) error
	ExistingEmails(orgID uuid.UUID, emails []string) ([]string, error)
	ExistingIDs(orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	GetByIDs(orgID uuid.UUID, ids []uuid.UUID) ([]models.Target, error)
	Count(orgID uuid.UUID) (int64, error)
	Statistics(orgID uuid.UUID) (*TargetStatistics, error)
}

// TargetGroupRepositoryInterface defines the interface for target group repository operations
type TargetGroupRepositoryInterface interface {
	Create(group *models.TargetGroup) error
	GetByID(orgID, id uuid.UUID) (*models.TargetGroup, error)
	GetByName(orgID uuid.UUID, name string) (*models.TargetGroup, error)
	List(orgID uuid.UUID, page Page) ([]models.TargetGroup, int64, error)
	Update(group *models.TargetGroup, targets []models.Target) error
	Delete(orgID, id uuid.UUID) error
	ExistingIDs(orgID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	GetByIDs(orgID uuid.UUID, ids []uuid.UUID) ([]models.TargetGroup, error)
	CountTargets(groupIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// TargetTagRepositoryInterface defines the interface for target tag repository operations
type TargetTagRepositoryInterface interface {
	Create(tag *models.TargetTag) error
	GetByID(orgID, id uuid.UUID) (*models.TargetTag, error)
	GetByName(orgID uuid.UUID, name string) (*models.TargetTag, error)
	GetByIDs(orgID uuid.UUID, ids []uuid.UUID) ([]models.TargetTag, error)
	List(orgID uuid.UUID, page Page) ([]models.TargetTag, int64, error)
	Update(tag *models.TargetTag) error
	Delete(orgID, id uuid.UUID) error
	CountTargets(tagIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// TargetImportRepositoryInterface defines the interface for import audit records
type TargetImportRepositoryInterface interface {
	Create(record *models.TargetImport) error
	List(orgID uuid.UUID, page Page) ([]models.TargetImport, int64, error)
}

// EmailTemplateRepositoryInterface defines the interface for email template repository operations
type EmailTemplateRepositoryInterface interface {
	Create(template *models.EmailTemplate) error
	GetByID(orgID, id uuid.UUID) (*models.EmailTemplate, error)
	List(filter TemplateFilter) ([]models.EmailTemplate, int64, error)
	Update(template *models.EmailTemplate) error
	Delete(orgID, id uuid.UUID) error
	CountByType(orgID uuid.UUID) (map[string]int64, error)
	CountCampaigns(templateIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// LandingPageRepositoryInterface defines the interface for landing page repository operations
type LandingPageRepositoryInterface interface {
	Create(page *models.LandingPage) error
	GetByID(orgID, id uuid.UUID) (*models.LandingPage, error)
	List(filter LandingPageFilter) ([]models.LandingPage, int64, error)
	Update(page *models.LandingPage) error
	Delete(orgID, id uuid.UUID) error
	CountByType(orgID uuid.UUID) (map[string]int64, error)
}

// CampaignRepositoryInterface defines the interface for campaign repository operations
type CampaignRepositoryInterface interface {
	Create(campaign *models.Campaign) error
	GetByID(orgID, id uuid.UUID) (*models.Campaign, error)
	GetForDispatch(id uuid.UUID) (*models.Campaign, error)
	List(filter CampaignFilter) ([]models.Campaign, int64, error)
	Update(campaign *models.Campaign, groups []models.TargetGroup, targets []models.Target, rebuild bool) error
	Delete(orgID, id uuid.UUID) error
	Transition(id uuid.UUID, from []models.CampaignStatus, to models.CampaignStatus, extra map[string]interface{}) (bool, error)
	ListDueScheduled(now time.Time) ([]models.Campaign, error)
	ListByStatus(status models.CampaignStatus) ([]models.Campaign, error)
	CountByStatus(orgID uuid.UUID) (map[string]int64, error)
	CountCreatedSince(orgID uuid.UUID, since time.Time) (int64, error)
	PreviousCompleted(orgID, excludeID uuid.UUID, before time.Time) (*models.Campaign, error)
}

// CampaignTargetRepositoryInterface defines the interface for campaign recipient operations
type CampaignTargetRepositoryInterface interface {
	FanOut(campaignID uuid.UUID) (int64, error)
	GetByToken(token string) (*models.CampaignTarget, error)
	GetByID(id uuid.UUID) (*models.CampaignTarget, error)
	List(filter CampaignTargetFilter) ([]models.CampaignTarget, int64, error)
	ListPending(campaignID uuid.UUID, limit int) ([]models.CampaignTarget, error)
	CountPending(campaignID uuid.UUID) (int64, error)
	QueueEmails(rows []models.EmailQueue, sentAt time.Time) (int, error)
	LastQueuedTime(campaignID uuid.UUID) (*time.Time, error)
	Save(ct *models.CampaignTarget) error
	MarkFailed(id uuid.UUID) error
	StatusCounts(campaignID uuid.UUID) (map[string]int64, error)
	Counts(campaignIDs []uuid.UUID) (map[uuid.UUID]CampaignCounts, error)
	DepartmentOutcomes(campaignID uuid.UUID) ([]DepartmentOutcome, error)
	CountForOrganization(orgID uuid.UUID) (int64, error)
}

// SMTPConfigurationRepositoryInterface defines the interface for SMTP configuration operations
type SMTPConfigurationRepositoryInterface interface {
	Create(cfg *models.SMTPConfiguration) error
	GetByID(orgID, id uuid.UUID) (*models.SMTPConfiguration, error)
	List(orgID uuid.UUID, page Page) ([]models.SMTPConfiguration, int64, error)
	ListActive(orgID uuid.UUID) ([]models.SMTPConfiguration, error)
	CountActive(orgID uuid.UUID) (int64, error)
	Update(cfg *models.SMTPConfiguration) error
	Delete(orgID, id uuid.UUID) error
	ResetDailyCount(id uuid.UUID, now time.Time) error
	IncrementDailyCount(id uuid.UUID) error
}

// EmailQueueRepositoryInterface defines the interface for outbound queue operations
type EmailQueueRepositoryInterface interface {
	List(filter EmailQueueFilter) ([]models.EmailQueue, int64, error)
	ListDue(now time.Time, limit int) ([]models.EmailQueue, error)
	Claim(id uuid.UUID) (bool, error)
	Save(row *models.EmailQueue) error
	CancelQueued(campaignID uuid.UUID) (int64, error)
	Volume(orgID uuid.UUID, now time.Time) (*EmailVolume, error)
	CountSentSince(orgID uuid.UUID, since time.Time) (int64, error)
}

// EmailEventRepositoryInterface defines the interface for tracking event operations
type EmailEventRepositoryInterface interface {
	Create(event *models.EmailEvent) error
	List(filter EmailEventFilter) ([]models.EmailEvent, int64, error)
	CountByType(orgID uuid.UUID) (map[string]int64, error)
	CountSince(orgID uuid.UUID, since time.Time) (int64, error)
	LatestForCampaign(campaignID uuid.UUID) (*time.Time, error)
	CountByCampaign(campaignID uuid.UUID, eventType models.EmailEventType) (int64, error)
}

// CampaignReportRepositoryInterface defines the interface for campaign report operations
type CampaignReportRepositoryInterface interface {
	Upsert(report *models.CampaignReport) error
	GetByCampaign(orgID, campaignID uuid.UUID) (*models.CampaignReport, error)
	List(orgID uuid.UUID, page Page) ([]models.CampaignReport, int64, error)
	Averages(orgID uuid.UUID) (*ReportAverages, error)
}

// DepartmentReportRepositoryInterface defines the interface for department report operations
type DepartmentReportRepositoryInterface interface {
	ReplaceForCampaign(campaignID uuid.UUID, reports []models.DepartmentReport) error
	List(orgID uuid.UUID, campaignID *uuid.UUID, page Page) ([]models.DepartmentReport, int64, error)
	GetForCampaignDepartment(campaignID uuid.UUID, department string) (*models.DepartmentReport, error)
	TopRiskDepartments(orgID uuid.UUID, limit int) ([]DepartmentRisk, error)
}

// ScheduledReportRepositoryInterface defines the interface for scheduled report operations
type ScheduledReportRepositoryInterface interface {
	Create(report *models.ScheduledReport) error
	GetByID(orgID, id uuid.UUID) (*models.ScheduledReport, error)
	List(orgID uuid.UUID, page Page) ([]models.ScheduledReport, int64, error)
	ListDue(now time.Time) ([]models.ScheduledReport, error)
	Update(report *models.ScheduledReport, campaigns []models.Campaign) error
	MarkRun(id uuid.UUID, ranAt, nextRun time.Time) error
	Delete(orgID, id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification operations
type NotificationRepositoryInterface interface {
	Create(n *models.Notification) error
	GetByID(recipientID, id uuid.UUID) (*models.Notification, error)
	List(filter NotificationFilter) ([]models.Notification, int64, error)
	Update(n *models.Notification) error
	MarkAllRead(recipientID uuid.UUID, now time.Time) (int64, error)
	MarkEmailSent(id uuid.UUID) error
	Statistics(recipientID uuid.UUID, now, recentSince time.Time) (*NotificationStatistics, error)
}

// NotificationPreferenceRepositoryInterface defines the interface for preference operations
type NotificationPreferenceRepositoryInterface interface {
	GetOrCreate(userID uuid.UUID) (*models.NotificationPreference, error)
	Update(pref *models.NotificationPreference) error
}

// AlertRuleRepositoryInterface defines the interface for alert rule operations
type AlertRuleRepositoryInterface interface {
	Create(rule *models.AlertRule) error
	GetByID(orgID, id uuid.UUID) (*models.AlertRule, error)
	List(orgID uuid.UUID, page Page) ([]models.AlertRule, int64, error)
	ListActiveByTrigger(orgID uuid.UUID, triggers []models.AlertTriggerType) ([]models.AlertRule, error)
	Update(rule *models.AlertRule, users []models.User) error
	Delete(orgID, id uuid.UUID) error
}

// SubscriptionRepositoryInterface defines the interface for subscription operations
type SubscriptionRepositoryInterface interface {
	Create(sub *models.Subscription) error
	GetByOrganization(orgID uuid.UUID) (*models.Subscription, error)
	Update(sub *models.Subscription) error
}

// InvoiceRepositoryInterface defines the interface for invoice operations
type InvoiceRepositoryInterface interface {
	Create(inv *models.Invoice) error
	GetByID(orgID, id uuid.UUID) (*models.Invoice, error)
	GetByNumber(number string) (*models.Invoice, error)
	List(filter InvoiceFilter) ([]models.Invoice, int64, error)
	Recent(orgID uuid.UUID, limit int) ([]models.Invoice, error)
	Update(inv *models.Invoice) error
	Summary(orgID uuid.UUID) (*InvoiceSummary, error)
}

// UsageMetricRepositoryInterface defines the interface for usage metric operations
type UsageMetricRepositoryInterface interface {
	Get(orgID uuid.UUID, metric models.MetricType) (*models.UsageMetric, error)
	List(filter UsageMetricFilter) ([]models.UsageMetric, int64, error)
	SetLimits(orgID uuid.UUID, limits map[models.MetricType]int, now time.Time) error
	Increment(orgID uuid.UUID, metric models.MetricType, delta int, now time.Time) (*models.UsageMetric, error)
	Update(m *models.UsageMetric) error
}

// PaymentMethodRepositoryInterface defines the interface for payment method operations
type PaymentMethodRepositoryInterface interface {
	Create(pm *models.PaymentMethod) error
	GetByID(orgID, id uuid.UUID) (*models.PaymentMethod, error)
	List(orgID uuid.UUID, page Page) ([]models.PaymentMethod, int64, error)
	Update(pm *models.PaymentMethod) error
	Delete(orgID, id uuid.UUID) error
}
