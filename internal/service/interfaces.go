package service

import (
	"context"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Notifier delivers in-app notifications
type Notifier interface {
	Notify(ctx context.Context, recipientIDs []uuid.UUID, in NotificationInput) error
	NotifyManagers(ctx context.Context, orgID uuid.UUID, in NotificationInput) error
	TriggerAlerts(ctx context.Context, orgID uuid.UUID, trigger models.AlertTriggerType, in NotificationInput) error
}

// UsageRecorder records plan usage
type UsageRecorder interface {
	Increment(ctx context.Context, orgID uuid.UUID, metric models.MetricType, delta int) error
}

// ReportGenerator refreshes a campaign's report
type ReportGenerator interface {
	GenerateCampaignReport(ctx context.Context, orgID, campaignID uuid.UUID) error
}

// OrganizationProvisioner sets up billing for a new organization
type OrganizationProvisioner interface {
	ProvisionOrganization(org *models.Organization) error
}

// TokenIssuer issues and revokes JWT pairs
type TokenIssuer interface {
	GenerateTokenPair(user *models.User) (*auth.TokenPair, error)
	GenerateAccessToken(user *models.User) (string, error)
	ValidateRefreshToken(ctx context.Context, token string) (*auth.AuthClaims, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, req *RefreshRequest) (*RefreshResponse, error)
	Logout(ctx context.Context, req *RefreshRequest) error
	ChangePassword(actor Actor, req *ChangePasswordRequest) error
	Create(actor *Actor, req *CreateUserRequest) (*UserResponse, error)
	GetProfile(actor Actor) (*UserResponse, error)
	UpdateProfile(actor Actor, req *UpdateUserRequest) (*UserResponse, error)
	List(actor Actor, req *UserListRequest) (*UserListResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*UserResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(actor Actor, id uuid.UUID) error
	Statistics(actor Actor, organizationID *uuid.UUID) (*UserStatisticsResponse, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	List(actor Actor, req *OrganizationListRequest) (*OrganizationListResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*OrganizationResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(actor Actor, id uuid.UUID) error
}

// TargetServiceInterface defines the interface for target service
type TargetServiceInterface interface {
	List(actor Actor, req *TargetListRequest) (*TargetListResponse, error)
	Create(ctx context.Context, actor Actor, req *TargetRequest) (*TargetResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*TargetResponse, error)
	Update(actor Actor, id uuid.UUID, req *TargetRequest) (*TargetResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	BulkCreate(ctx context.Context, actor Actor, in *BulkImportInput) (*BulkImportResponse, error)
	Statistics(actor Actor) (*TargetStatisticsResponse, error)
	ListImports(actor Actor, params ListParams) (*TargetImportListResponse, error)
	ListGroups(actor Actor, params ListParams) (*TargetGroupListResponse, error)
	CreateGroup(actor Actor, req *TargetGroupRequest) (*TargetGroupResponse, error)
	GetGroup(actor Actor, id uuid.UUID) (*TargetGroupResponse, error)
	UpdateGroup(actor Actor, id uuid.UUID, req *TargetGroupRequest) (*TargetGroupResponse, error)
	DeleteGroup(actor Actor, id uuid.UUID) error
	ListTags(actor Actor, params ListParams) (*TargetTagListResponse, error)
	CreateTag(actor Actor, req *TargetTagRequest) (*TargetTagResponse, error)
	GetTag(actor Actor, id uuid.UUID) (*TargetTagResponse, error)
	UpdateTag(actor Actor, id uuid.UUID, req *TargetTagRequest) (*TargetTagResponse, error)
	DeleteTag(actor Actor, id uuid.UUID) error
}

// CampaignServiceInterface defines the interface for campaign service
type CampaignServiceInterface interface {
	List(actor Actor, req *CampaignListRequest) (*CampaignListResponse, error)
	Create(ctx context.Context, actor Actor, req *CampaignRequest) (*CampaignResponse, error)
	GetByID(actor Actor, id uuid.UUID) (*CampaignResponse, error)
	Update(actor Actor, id uuid.UUID, req *CampaignRequest) (*CampaignResponse, error)
	Delete(actor Actor, id uuid.UUID) error
	Action(ctx context.Context, actor Actor, id uuid.UUID, req *CampaignActionRequest) (*CampaignActionResponse, error)
	Reports(actor Actor, id uuid.UUID) (*CampaignStatsResponse, error)
	ListTargets(actor Actor, id uuid.UUID, req *CampaignTargetListRequest) (*CampaignTargetListResponse, error)
	Statistics(actor Actor) (*CampaignStatisticsResponse, error)

	ListTemplates(actor Actor, req *EmailTemplateListRequest) (*EmailTemplateListResponse, error)
	CreateTemplate(actor Actor, req *EmailTemplateRequest) (*EmailTemplateResponse, error)
	GetTemplate(actor Actor, id uuid.UUID) (*EmailTemplateResponse, error)
	UpdateTemplate(actor Actor, id uuid.UUID, req *EmailTemplateRequest) (*EmailTemplateResponse, error)
	DeleteTemplate(actor Actor, id uuid.UUID) error

	ListLandingPages(actor Actor, req *LandingPageListRequest) (*LandingPageListResponse, error)
	CreateLandingPage(actor Actor, req *LandingPageRequest) (*models.LandingPage, error)
	GetLandingPage(actor Actor, id uuid.UUID) (*models.LandingPage, error)
	UpdateLandingPage(actor Actor, id uuid.UUID, req *LandingPageRequest) (*models.LandingPage, error)
	DeleteLandingPage(actor Actor, id uuid.UUID) error
}

// TrackingServiceInterface defines the interface for the public tracking endpoints
type TrackingServiceInterface interface {
	Open(ctx context.Context, token string, req TrackingRequest) error
	Click(ctx context.Context, token string, req TrackingRequest) (*LandingResult, error)
	Submit(ctx context.Context, token string, req TrackingRequest, form map[string]interface{}) (*LandingResult, error)
	Report(ctx context.Context, token string, req TrackingRequest) error
}

// EmailServiceInterface defines the interface for email service
type EmailServiceInterface interface {
	ListSMTPConfigs(actor Actor, params ListParams) (*SMTPConfigListResponse, error)
	CreateSMTPConfig(actor Actor, req *SMTPConfigRequest) (*models.SMTPConfiguration, error)
	GetSMTPConfig(actor Actor, id uuid.UUID) (*models.SMTPConfiguration, error)
	UpdateSMTPConfig(actor Actor, id uuid.UUID, req *SMTPConfigRequest) (*models.SMTPConfiguration, error)
	DeleteSMTPConfig(actor Actor, id uuid.UUID) error
	ListQueue(actor Actor, req *EmailQueueListRequest) (*EmailQueueListResponse, error)
	ListEvents(actor Actor, req *EmailEventListRequest) (*EmailEventListResponse, error)
	Statistics(actor Actor) (*EmailStatisticsResponse, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	ListCampaignReports(actor Actor, params ListParams) (*CampaignReportListResponse, error)
	GetCampaignReport(ctx context.Context, actor Actor, campaignID uuid.UUID) (*models.CampaignReport, error)
	ListDepartmentReports(actor Actor, req *DepartmentReportListRequest) (*DepartmentReportListResponse, error)
	ListScheduled(actor Actor, params ListParams) (*ScheduledReportListResponse, error)
	CreateScheduled(actor Actor, req *ScheduledReportRequest) (*ScheduledReportResponse, error)
	GetScheduled(actor Actor, id uuid.UUID) (*ScheduledReportResponse, error)
	UpdateScheduled(actor Actor, id uuid.UUID, req *ScheduledReportRequest) (*ScheduledReportResponse, error)
	DeleteScheduled(actor Actor, id uuid.UUID) error
	Statistics(actor Actor) (*ReportStatisticsResponse, error)
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	List(actor Actor, req *NotificationListRequest) (*NotificationListResponse, error)
	Get(actor Actor, id uuid.UUID) (*NotificationResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateNotificationRequest) (*NotificationResponse, error)
	MarkRead(actor Actor, id uuid.UUID) (*NotificationResponse, error)
	MarkAllRead(actor Actor) (int64, error)
	Statistics(actor Actor) (*NotificationStatisticsResponse, error)
	GetPreferences(actor Actor) (*models.NotificationPreference, error)
	UpdatePreferences(actor Actor, req *UpdatePreferencesRequest) (*models.NotificationPreference, error)
	ListAlertRules(actor Actor, params ListParams) (*AlertRuleListResponse, error)
	GetAlertRule(actor Actor, id uuid.UUID) (*AlertRuleResponse, error)
	CreateAlertRule(actor Actor, req *AlertRuleRequest) (*AlertRuleResponse, error)
	UpdateAlertRule(actor Actor, id uuid.UUID, req *AlertRuleRequest) (*AlertRuleResponse, error)
	DeleteAlertRule(actor Actor, id uuid.UUID) error
}

// BillingServiceInterface defines the interface for billing service
type BillingServiceInterface interface {
	GetSubscription(actor Actor) (*models.Subscription, error)
	UpdateSubscription(actor Actor, req *UpdateSubscriptionRequest) (*models.Subscription, error)
	Overview(actor Actor) (*BillingOverviewResponse, error)
	ListInvoices(actor Actor, req *InvoiceListRequest) (*InvoiceListResponse, error)
	GetInvoice(actor Actor, id uuid.UUID) (*models.Invoice, error)
	ListUsage(actor Actor, req *UsageListRequest) (*UsageListResponse, error)
	ListPaymentMethods(actor Actor, params ListParams) (*PaymentMethodListResponse, error)
	GetPaymentMethod(actor Actor, id uuid.UUID) (*models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, actor Actor, req *PaymentMethodRequest) (*models.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, actor Actor, id uuid.UUID, req *PaymentMethodRequest) (*models.PaymentMethod, error)
	DeletePaymentMethod(actor Actor, id uuid.UUID) error
	HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error
}

var (
	_ Notifier                     = (*NotificationService)(nil)
	_ UsageRecorder                = (*UsageTracker)(nil)
	_ ReportGenerator              = (*ReportService)(nil)
	_ OrganizationProvisioner      = (*BillingService)(nil)
	_ TokenIssuer                  = (*auth.AuthService)(nil)
	_ UserServiceInterface         = (*UserService)(nil)
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
	_ TargetServiceInterface       = (*TargetService)(nil)
	_ CampaignServiceInterface     = (*CampaignService)(nil)
	_ TrackingServiceInterface     = (*TrackingService)(nil)
	_ EmailServiceInterface        = (*EmailService)(nil)
	_ ReportServiceInterface       = (*ReportService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ BillingServiceInterface      = (*BillingService)(nil)
)
