package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for one user
type Notification struct {
	BaseModel
	RecipientID      uuid.UUID            `json:"recipient_id" gorm:"type:uuid;not null;index"`
	Recipient        *User                `json:"-" gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Title            string               `json:"title" gorm:"not null;size:200"`
	Message          string               `json:"message" gorm:"type:text;not null"`
	NotificationType NotificationType     `json:"notification_type" gorm:"type:varchar(30);not null;index"`
	Priority         NotificationPriority `json:"priority" gorm:"type:varchar(10);not null"`
	IsRead           bool                 `json:"is_read" gorm:"not null;index"`
	ReadAt           *time.Time           `json:"read_at,omitempty"`
	IsEmailSent      bool                 `json:"is_email_sent" gorm:"not null"`
	CampaignID       *uuid.UUID           `json:"campaign_id,omitempty" gorm:"type:uuid"`
	Campaign         *Campaign            `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	TargetID         *uuid.UUID           `json:"target_id,omitempty" gorm:"type:uuid"`
	Target           *Target              `json:"-" gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
	ActionURL        string               `json:"action_url" gorm:"size:500"`
	ActionLabel      string               `json:"action_label" gorm:"size:50"`
	ExpiresAt        *time.Time           `json:"expires_at,omitempty"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// IsExpired reports whether the notification should no longer be listed
func (n *Notification) IsExpired(now time.Time) bool {
	return n.ExpiresAt != nil && !n.ExpiresAt.After(now)
}

// NotificationPreference controls which notifications a user receives and where
type NotificationPreference struct {
	BaseModel
	UserID               uuid.UUID       `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	User                 *User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	EmailCampaignUpdates bool            `json:"email_campaign_updates" gorm:"not null"`
	EmailSecurityAlerts  bool            `json:"email_security_alerts" gorm:"not null"`
	EmailReports         bool            `json:"email_reports" gorm:"not null"`
	EmailBilling         bool            `json:"email_billing" gorm:"not null"`
	AppCampaignUpdates   bool            `json:"app_campaign_updates" gorm:"not null"`
	AppSecurityAlerts    bool            `json:"app_security_alerts" gorm:"not null"`
	AppSystemAlerts      bool            `json:"app_system_alerts" gorm:"not null"`
	DigestFrequency      DigestFrequency `json:"digest_frequency" gorm:"type:varchar(20);not null"`
	QuietHoursStart      string          `json:"quiet_hours_start" gorm:"size:5"`
	QuietHoursEnd        string          `json:"quiet_hours_end" gorm:"size:5"`
	Timezone             string          `json:"timezone" gorm:"size:50;not null"`
}

// TableName returns the table name for NotificationPreference
func (NotificationPreference) TableName() string {
	return "notification_preferences"
}

// DefaultNotificationPreference is what a user gets before changing anything
func DefaultNotificationPreference(userID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		UserID:               userID,
		EmailCampaignUpdates: true,
		EmailSecurityAlerts:  true,
		EmailReports:         true,
		EmailBilling:         true,
		AppCampaignUpdates:   true,
		AppSecurityAlerts:    true,
		AppSystemAlerts:      true,
		DigestFrequency:      DigestDaily,
		Timezone:             "UTC",
	}
}

// AllowsInApp reports whether a notification of type t should be pushed in-app
func (p *NotificationPreference) AllowsInApp(t NotificationType) bool {
	switch t {
	case NotificationCampaignStarted, NotificationCampaignCompleted, NotificationReportReady:
		return p.AppCampaignUpdates
	case NotificationHighRiskClick, NotificationSecurityBreach:
		return p.AppSecurityAlerts
	case NotificationSystemAlert, NotificationBillingAlert, NotificationTrainingReminder:
		return p.AppSystemAlerts
	}
	return true
}

// AlertRule escalates tracking events to chosen users
type AlertRule struct {
	BaseModel
	OrganizationID    uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization      *Organization    `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name              string           `json:"name" gorm:"not null;size:200"`
	TriggerType       AlertTriggerType `json:"trigger_type" gorm:"type:varchar(40);not null"`
	ThresholdValue    float64          `json:"threshold_value"`
	TimeWindowMinutes int              `json:"time_window_minutes" gorm:"not null"`
	IsActive          bool             `json:"is_active" gorm:"not null"`
	CreatedByID       *uuid.UUID       `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedBy         *User            `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`

	NotifyUsers []User `json:"notify_users,omitempty" gorm:"many2many:alert_rule_recipients;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AlertRule
func (AlertRule) TableName() string {
	return "alert_rules"
}
