package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription is an organization's plan and its limits
type Subscription struct {
	BaseModel
	OrganizationID       uuid.UUID          `json:"organization_id" gorm:"type:uuid;uniqueIndex;not null"`
	Organization         *Organization      `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	PlanName             string             `json:"plan_name" gorm:"not null;size:100"`
	PlanType             PlanType           `json:"plan_type" gorm:"type:varchar(20);not null"`
	BillingCycle         BillingCycle       `json:"billing_cycle" gorm:"type:varchar(10);not null"`
	Status               SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null"`
	MaxTargets           int                `json:"max_targets"`
	MaxCampaignsPerMonth int                `json:"max_campaigns_per_month"`
	MaxEmailsPerMonth    int                `json:"max_emails_per_month"`
	MaxTemplates         int                `json:"max_templates"`
	MaxLandingPages      int                `json:"max_landing_pages"`
	AdvancedReporting    bool               `json:"advanced_reporting" gorm:"not null"`
	APIAccess            bool               `json:"api_access" gorm:"not null"`
	CustomBranding       bool               `json:"custom_branding" gorm:"not null"`
	PrioritySupport      bool               `json:"priority_support" gorm:"not null"`
	MonthlyPrice         decimal.Decimal    `json:"monthly_price" gorm:"type:decimal(10,2);not null"`
	AnnualPrice          decimal.Decimal    `json:"annual_price" gorm:"type:decimal(10,2);not null"`
	TrialEnd             *time.Time         `json:"trial_end,omitempty"`
	CurrentPeriodStart   time.Time          `json:"current_period_start"`
	CurrentPeriodEnd     time.Time          `json:"current_period_end"`
	NextBillingDate      *time.Time         `json:"next_billing_date,omitempty"`
	StripeCustomerID     string             `json:"-" gorm:"size:100"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

// LimitFor maps a usage dimension to the plan's limit; 0 means unlimited or untracked
func (s *Subscription) LimitFor(metric MetricType) int {
	switch metric {
	case MetricTargetsCount:
		return s.MaxTargets
	case MetricCampaignsCount:
		return s.MaxCampaignsPerMonth
	case MetricEmailsSent:
		return s.MaxEmailsPerMonth
	}
	return 0
}

// Invoice is one billing document
type Invoice struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization   *Organization   `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	SubscriptionID uuid.UUID       `json:"subscription_id" gorm:"type:uuid;not null"`
	Subscription   *Subscription   `json:"-" gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
	InvoiceNumber  string          `json:"invoice_number" gorm:"uniqueIndex;not null;size:50"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(10,2);not null"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	IssueDate      time.Time       `json:"issue_date" gorm:"not null;index"`
	DueDate        time.Time       `json:"due_date" gorm:"not null"`
	PaidDate       *time.Time      `json:"paid_date,omitempty"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	Status         InvoiceStatus   `json:"status" gorm:"type:varchar(20);not null;index"`
	PaymentMethod  string          `json:"payment_method" gorm:"size:50"`
	TransactionID  string          `json:"transaction_id" gorm:"size:100"`
	Notes          string          `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}

// UsageMetric tracks consumption of one plan dimension
type UsageMetric struct {
	BaseModel
	OrganizationID   uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_usage_metrics_org_type,priority:1"`
	Organization     *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	MetricType       MetricType    `json:"metric_type" gorm:"type:varchar(30);not null;uniqueIndex:idx_usage_metrics_org_type,priority:2"`
	CurrentValue     int           `json:"current_value" gorm:"not null"`
	LimitValue       int           `json:"limit_value" gorm:"not null"`
	MeasurementDate  time.Time     `json:"measurement_date"`
	ResetDate        *time.Time    `json:"reset_date,omitempty"`
	WarningThreshold float64       `json:"warning_threshold" gorm:"not null"`
	WarningSent      bool          `json:"warning_sent" gorm:"not null"`
	LimitExceeded    bool          `json:"limit_exceeded" gorm:"not null"`
}

// TableName returns the table name for UsageMetric
func (UsageMetric) TableName() string {
	return "usage_metrics"
}

// UsagePercentage is current over limit as a percentage, or 0 when there is no limit
func (u *UsageMetric) UsagePercentage() float64 {
	return Percentage(u.CurrentValue, u.LimitValue)
}

// PaymentMethod is a stored way for an organization to pay
type PaymentMethod struct {
	BaseModel
	OrganizationID        uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization          *Organization     `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	MethodType            PaymentMethodType `json:"method_type" gorm:"type:varchar(20);not null"`
	CardLastFour          string            `json:"card_last_four" gorm:"size:4"`
	CardBrand             string            `json:"card_brand" gorm:"size:20"`
	ExpiryMonth           int               `json:"expiry_month"`
	ExpiryYear            int               `json:"expiry_year"`
	StripePaymentMethodID string            `json:"-" gorm:"size:100"`
	PaypalPaymentID       string            `json:"-" gorm:"size:100"`
	IsDefault             bool              `json:"is_default" gorm:"not null"`
	IsActive              bool              `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for PaymentMethod
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
