package models

import (
	"time"

	"github.com/google/uuid"
)

// SMTPConfiguration is an organization's outbound mail server
type SMTPConfiguration struct {
	BaseModel
	OrganizationID    uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization      *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name              string        `json:"name" gorm:"not null;size:100"`
	Host              string        `json:"host" gorm:"not null;size:255"`
	Port              int           `json:"port" gorm:"not null"`
	Username          string        `json:"username" gorm:"size:255"`
	Password          string        `json:"-" gorm:"size:255"`
	UseTLS            bool          `json:"use_tls" gorm:"not null"`
	UseSSL            bool          `json:"use_ssl" gorm:"not null"`
	FromEmail         string        `json:"from_email" gorm:"not null;size:255"`
	ReplyToEmail      string        `json:"reply_to_email" gorm:"size:255"`
	IsActive          bool          `json:"is_active" gorm:"not null"`
	DailyLimit        int           `json:"daily_limit" gorm:"not null"`
	CurrentDailyCount int           `json:"current_daily_count" gorm:"not null"`
	LastResetDate     *time.Time    `json:"last_reset_date,omitempty"`
}

// TableName returns the table name for SMTPConfiguration
func (SMTPConfiguration) TableName() string {
	return "smtp_configurations"
}

// NeedsReset reports whether the daily counter belongs to an earlier day
func (s *SMTPConfiguration) NeedsReset(now time.Time) bool {
	if s.LastResetDate == nil {
		return true
	}
	y1, m1, d1 := s.LastResetDate.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

// HasCapacity reports whether another email fits under the daily limit
func (s *SMTPConfiguration) HasCapacity(now time.Time) bool {
	if s.NeedsReset(now) {
		return s.DailyLimit > 0
	}
	return s.CurrentDailyCount < s.DailyLimit
}

// EmailQueue is one scheduled delivery of a campaign email
type EmailQueue struct {
	BaseModel
	CampaignID          uuid.UUID          `json:"campaign_id" gorm:"type:uuid;not null;index"`
	Campaign            *Campaign          `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	TargetID            uuid.UUID          `json:"target_id" gorm:"type:uuid;not null"`
	Target              *Target            `json:"target,omitempty" gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
	CampaignTargetID    uuid.UUID          `json:"campaign_target_id" gorm:"type:uuid;not null"`
	CampaignTarget      *CampaignTarget    `json:"-" gorm:"foreignKey:CampaignTargetID;constraint:OnDelete:CASCADE"`
	SMTPConfigurationID *uuid.UUID         `json:"smtp_configuration_id,omitempty" gorm:"type:uuid"`
	SMTPConfiguration   *SMTPConfiguration `json:"-" gorm:"foreignKey:SMTPConfigurationID;constraint:OnDelete:SET NULL"`
	ScheduledTime       time.Time          `json:"scheduled_time" gorm:"not null;index"`
	SentTime            *time.Time         `json:"sent_time,omitempty"`
	Status              EmailQueueStatus   `json:"status" gorm:"type:varchar(20);not null;index"`
	RetryCount          int                `json:"retry_count" gorm:"not null"`
	ErrorMessage        string             `json:"error_message" gorm:"type:text"`
	MessageID           string             `json:"message_id" gorm:"size:255"`
}

// TableName returns the table name for EmailQueue
func (EmailQueue) TableName() string {
	return "email_queue"
}

// EmailEvent is one tracked interaction with a campaign email
type EmailEvent struct {
	BaseModel
	CampaignID   uuid.UUID      `json:"campaign_id" gorm:"type:uuid;not null;index"`
	Campaign     *Campaign      `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	TargetID     uuid.UUID      `json:"target_id" gorm:"type:uuid;not null;index"`
	Target       *Target        `json:"target,omitempty" gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
	EventType    EmailEventType `json:"event_type" gorm:"type:varchar(20);not null;index"`
	Timestamp    time.Time      `json:"timestamp" gorm:"not null;index"`
	IPAddress    string         `json:"ip_address" gorm:"size:45"`
	UserAgent    string         `json:"user_agent" gorm:"type:text"`
	Location     string         `json:"location" gorm:"size:255"`
	MessageID    string         `json:"message_id" gorm:"size:255"`
	BounceReason string         `json:"bounce_reason" gorm:"type:text"`
	Metadata     JSONMap        `json:"metadata,omitempty" gorm:"type:text"`
}

// TableName returns the table name for EmailEvent
func (EmailEvent) TableName() string {
	return "email_events"
}
