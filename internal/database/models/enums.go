package models

// Industry classifies an organization
type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryFinance       Industry = "finance"
	IndustryHealthcare    Industry = "healthcare"
	IndustryEducation     Industry = "education"
	IndustryGovernment    Industry = "government"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryOther         Industry = "other"
)

// IsValid checks if the Industry is valid
func (i Industry) IsValid() bool {
	switch i {
	case IndustryTechnology, IndustryFinance, IndustryHealthcare, IndustryEducation,
		IndustryGovernment, IndustryRetail, IndustryManufacturing, IndustryOther:
		return true
	}
	return false
}

// OrganizationSize is the headcount bracket of an organization
type OrganizationSize string

const (
	OrganizationSizeSmall      OrganizationSize = "small"
	OrganizationSizeMedium     OrganizationSize = "medium"
	OrganizationSizeLarge      OrganizationSize = "large"
	OrganizationSizeEnterprise OrganizationSize = "enterprise"
)

// IsValid checks if the OrganizationSize is valid
func (s OrganizationSize) IsValid() bool {
	switch s {
	case OrganizationSizeSmall, OrganizationSizeMedium, OrganizationSizeLarge, OrganizationSizeEnterprise:
		return true
	}
	return false
}

// UserRole gates what a user may do
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
	UserRoleTarget   UserRole = "target"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleCustomer, UserRoleTarget:
		return true
	}
	return false
}

// IsManager reports whether the role may manage organization resources
func (r UserRole) IsManager() bool {
	return r == UserRoleAdmin || r == UserRoleCustomer
}

// SecurityLevel is the clearance recorded on a user profile
type SecurityLevel string

const (
	SecurityLevelLow      SecurityLevel = "low"
	SecurityLevelMedium   SecurityLevel = "medium"
	SecurityLevelHigh     SecurityLevel = "high"
	SecurityLevelCritical SecurityLevel = "critical"
)

// IsValid checks if the SecurityLevel is valid
func (s SecurityLevel) IsValid() bool {
	switch s {
	case SecurityLevelLow, SecurityLevelMedium, SecurityLevelHigh, SecurityLevelCritical:
		return true
	}
	return false
}

// RiskLevel is the assessed susceptibility of a target
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// IsValid checks if the RiskLevel is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return true
	}
	return false
}

// IsHigh reports whether clicks by this target should raise an alert
func (r RiskLevel) IsHigh() bool {
	return r == RiskLevelHigh || r == RiskLevelCritical
}

// AllRiskLevels lists risk levels in ascending order
var AllRiskLevels = []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical}

// TargetImportStatus tracks a bulk import
type TargetImportStatus string

const (
	TargetImportProcessing TargetImportStatus = "processing"
	TargetImportCompleted  TargetImportStatus = "completed"
	TargetImportFailed     TargetImportStatus = "failed"
)

// TemplateType categorises an email template lure
type TemplateType string

const (
	TemplateTypeSocialMedia   TemplateType = "social_media"
	TemplateTypeITSupport     TemplateType = "it_support"
	TemplateTypeHRNotice      TemplateType = "hr_notice"
	TemplateTypeSecurityAlert TemplateType = "security_alert"
	TemplateTypeInvoice       TemplateType = "invoice"
	TemplateTypeShipping      TemplateType = "shipping"
	TemplateTypeBanking       TemplateType = "banking"
	TemplateTypeCustom        TemplateType = "custom"
)

// IsValid checks if the TemplateType is valid
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypeSocialMedia, TemplateTypeITSupport, TemplateTypeHRNotice, TemplateTypeSecurityAlert,
		TemplateTypeInvoice, TemplateTypeShipping, TemplateTypeBanking, TemplateTypeCustom:
		return true
	}
	return false
}

// Difficulty is how hard a template is to spot
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// IsValid checks if the Difficulty is valid
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// PageType categorises a landing page
type PageType string

const (
	PageTypeLogin        PageType = "login"
	PageTypeSurvey       PageType = "survey"
	PageTypeDownload     PageType = "download"
	PageTypeNotification PageType = "notification"
	PageTypeBanking      PageType = "banking"
	PageTypeSocial       PageType = "social"
	PageTypeCustom       PageType = "custom"
)

// IsValid checks if the PageType is valid
func (p PageType) IsValid() bool {
	switch p {
	case PageTypeLogin, PageTypeSurvey, PageTypeDownload, PageTypeNotification,
		PageTypeBanking, PageTypeSocial, PageTypeCustom:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusRunning   CampaignStatus = "running"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// IsValid checks if the CampaignStatus is valid
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusRunning,
		CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// CampaignTargetStatus is the per-recipient tracking state
type CampaignTargetStatus string

const (
	CampaignTargetPending   CampaignTargetStatus = "pending"
	CampaignTargetSent      CampaignTargetStatus = "sent"
	CampaignTargetOpened    CampaignTargetStatus = "opened"
	CampaignTargetClicked   CampaignTargetStatus = "clicked"
	CampaignTargetSubmitted CampaignTargetStatus = "submitted"
	CampaignTargetReported  CampaignTargetStatus = "reported"
	CampaignTargetFailed    CampaignTargetStatus = "failed"
)

// AllCampaignTargetStatuses lists every tracking state in progression order
var AllCampaignTargetStatuses = []CampaignTargetStatus{
	CampaignTargetPending, CampaignTargetSent, CampaignTargetOpened, CampaignTargetClicked,
	CampaignTargetSubmitted, CampaignTargetReported, CampaignTargetFailed,
}

// IsValid checks if the CampaignTargetStatus is valid
func (s CampaignTargetStatus) IsValid() bool {
	for _, status := range AllCampaignTargetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Rank orders the forward-only part of the progression; reported and failed sit outside it
func (s CampaignTargetStatus) Rank() int {
	switch s {
	case CampaignTargetPending:
		return 0
	case CampaignTargetSent:
		return 1
	case CampaignTargetOpened:
		return 2
	case CampaignTargetClicked:
		return 3
	case CampaignTargetSubmitted:
		return 4
	}
	return -1
}

// EmailQueueStatus is the delivery state of a queued email
type EmailQueueStatus string

const (
	EmailQueueQueued    EmailQueueStatus = "queued"
	EmailQueueSending   EmailQueueStatus = "sending"
	EmailQueueSent      EmailQueueStatus = "sent"
	EmailQueueFailed    EmailQueueStatus = "failed"
	EmailQueueCancelled EmailQueueStatus = "cancelled"
)

// IsValid checks if the EmailQueueStatus is valid
func (s EmailQueueStatus) IsValid() bool {
	switch s {
	case EmailQueueQueued, EmailQueueSending, EmailQueueSent, EmailQueueFailed, EmailQueueCancelled:
		return true
	}
	return false
}

// EmailEventType is a tracked email interaction
type EmailEventType string

const (
	EmailEventSent      EmailEventType = "sent"
	EmailEventDelivered EmailEventType = "delivered"
	EmailEventBounced   EmailEventType = "bounced"
	EmailEventOpened    EmailEventType = "opened"
	EmailEventClicked   EmailEventType = "clicked"
	EmailEventReported  EmailEventType = "reported"
)

// IsValid checks if the EmailEventType is valid
func (t EmailEventType) IsValid() bool {
	switch t {
	case EmailEventSent, EmailEventDelivered, EmailEventBounced, EmailEventOpened, EmailEventClicked, EmailEventReported:
		return true
	}
	return false
}

// ReportType is the kind of scheduled report
type ReportType string

const (
	ReportTypeCampaignSummary     ReportType = "campaign_summary"
	ReportTypeSecurityMetrics     ReportType = "security_metrics"
	ReportTypeDepartmentBreakdown ReportType = "department_breakdown"
	ReportTypeTrendAnalysis       ReportType = "trend_analysis"
	ReportTypeExecutiveSummary    ReportType = "executive_summary"
)

// IsValid checks if the ReportType is valid
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeCampaignSummary, ReportTypeSecurityMetrics, ReportTypeDepartmentBreakdown,
		ReportTypeTrendAnalysis, ReportTypeExecutiveSummary:
		return true
	}
	return false
}

// ReportFrequency is how often a scheduled report runs
type ReportFrequency string

const (
	ReportFrequencyDaily     ReportFrequency = "daily"
	ReportFrequencyWeekly    ReportFrequency = "weekly"
	ReportFrequencyMonthly   ReportFrequency = "monthly"
	ReportFrequencyQuarterly ReportFrequency = "quarterly"
)

// IsValid checks if the ReportFrequency is valid
func (f ReportFrequency) IsValid() bool {
	switch f {
	case ReportFrequencyDaily, ReportFrequencyWeekly, ReportFrequencyMonthly, ReportFrequencyQuarterly:
		return true
	}
	return false
}

// NotificationType categorises a notification
type NotificationType string

const (
	NotificationCampaignStarted   NotificationType = "campaign_started"
	NotificationCampaignCompleted NotificationType = "campaign_completed"
	NotificationHighRiskClick     NotificationType = "high_risk_click"
	NotificationSecurityBreach    NotificationType = "security_breach"
	NotificationReportReady       NotificationType = "report_ready"
	NotificationSystemAlert       NotificationType = "system_alert"
	NotificationBillingAlert      NotificationType = "billing_alert"
	NotificationTrainingReminder  NotificationType = "training_reminder"
)

// IsValid checks if the NotificationType is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationCampaignStarted, NotificationCampaignCompleted, NotificationHighRiskClick,
		NotificationSecurityBreach, NotificationReportReady, NotificationSystemAlert,
		NotificationBillingAlert, NotificationTrainingReminder:
		return true
	}
	return false
}

// NotificationPriority is the urgency of a notification
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityUrgent NotificationPriority = "urgent"
)

// IsValid checks if the NotificationPriority is valid
func (p NotificationPriority) IsValid() bool {
	switch p {
	case NotificationPriorityLow, NotificationPriorityMedium, NotificationPriorityHigh, NotificationPriorityUrgent:
		return true
	}
	return false
}

// DigestFrequency controls email digest batching
type DigestFrequency string

const (
	DigestRealtime DigestFrequency = "realtime"
	DigestDaily    DigestFrequency = "daily"
	DigestWeekly   DigestFrequency = "weekly"
	DigestDisabled DigestFrequency = "disabled"
)

// IsValid checks if the DigestFrequency is valid
func (d DigestFrequency) IsValid() bool {
	switch d {
	case DigestRealtime, DigestDaily, DigestWeekly, DigestDisabled:
		return true
	}
	return false
}

// AlertTriggerType is the condition an alert rule watches
type AlertTriggerType string

const (
	AlertTriggerClickRateThreshold   AlertTriggerType = "click_rate_threshold"
	AlertTriggerMultipleClicksSameIP AlertTriggerType = "multiple_clicks_same_ip"
	AlertTriggerCredentialSubmission AlertTriggerType = "credential_submission"
	AlertTriggerCampaignCompletion   AlertTriggerType = "campaign_completion"
	AlertTriggerFailedEmailThreshold AlertTriggerType = "failed_email_threshold"
	AlertTriggerHighRiskUserClick    AlertTriggerType = "high_risk_user_click"
)

// IsValid checks if the AlertTriggerType is valid
func (t AlertTriggerType) IsValid() bool {
	switch t {
	case AlertTriggerClickRateThreshold, AlertTriggerMultipleClicksSameIP, AlertTriggerCredentialSubmission,
		AlertTriggerCampaignCompletion, AlertTriggerFailedEmailThreshold, AlertTriggerHighRiskUserClick:
		return true
	}
	return false
}

// PlanType is a subscription plan family
type PlanType string

const (
	PlanTypeBasic        PlanType = "basic"
	PlanTypeProfessional PlanType = "professional"
	PlanTypeEnterprise   PlanType = "enterprise"
	PlanTypeCustom       PlanType = "custom"
)

// IsValid checks if the PlanType is valid
func (p PlanType) IsValid() bool {
	switch p {
	case PlanTypeBasic, PlanTypeProfessional, PlanTypeEnterprise, PlanTypeCustom:
		return true
	}
	return false
}

// BillingCycle is how often a subscription is billed
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleAnnual  BillingCycle = "annual"
)

// IsValid checks if the BillingCycle is valid
func (c BillingCycle) IsValid() bool {
	return c == BillingCycleMonthly || c == BillingCycleAnnual
}

// SubscriptionStatus is the state of a subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionTrial     SubscriptionStatus = "trial"
)

// InvoiceStatus is the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the InvoiceStatus is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// MetricType is a tracked usage dimension
type MetricType string

const (
	MetricTargetsCount   MetricType = "targets_count"
	MetricCampaignsCount MetricType = "campaigns_count"
	MetricEmailsSent     MetricType = "emails_sent"
	MetricStorageUsed    MetricType = "storage_used"
	MetricAPIRequests    MetricType = "api_requests"
)

// AllMetricTypes lists every usage dimension
var AllMetricTypes = []MetricType{MetricTargetsCount, MetricCampaignsCount, MetricEmailsSent, MetricStorageUsed, MetricAPIRequests}

// IsValid checks if the MetricType is valid
func (m MetricType) IsValid() bool {
	for _, t := range AllMetricTypes {
		if m == t {
			return true
		}
	}
	return false
}

// PaymentMethodType is how an organization pays
type PaymentMethodType string

const (
	PaymentMethodCreditCard   PaymentMethodType = "credit_card"
	PaymentMethodBankTransfer PaymentMethodType = "bank_transfer"
	PaymentMethodPayPal       PaymentMethodType = "paypal"
	PaymentMethodStripe       PaymentMethodType = "stripe"
)

// IsValid checks if the PaymentMethodType is valid
func (p PaymentMethodType) IsValid() bool {
	switch p {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodPayPal, PaymentMethodStripe:
		return true
	}
	return false
}
