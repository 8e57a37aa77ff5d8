package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate is the lure sent to targets
type EmailTemplate struct {
	BaseModel
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization   *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name           string        `json:"name" gorm:"not null;size:200"`
	TemplateType   TemplateType  `json:"template_type" gorm:"type:varchar(30);not null"`
	Difficulty     Difficulty    `json:"difficulty" gorm:"type:varchar(20);not null"`
	Subject        string        `json:"subject" gorm:"not null;size:255"`
	SenderName     string        `json:"sender_name" gorm:"not null;size:100"`
	SenderEmail    string        `json:"sender_email" gorm:"not null;size:255"`
	HTMLContent    string        `json:"html_content" gorm:"type:text;not null"`
	TextContent    string        `json:"text_content" gorm:"type:text"`
	IsDefault      bool          `json:"is_default" gorm:"not null"`
	CreatedByID    *uuid.UUID    `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedBy      *User         `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for EmailTemplate
func (EmailTemplate) TableName() string {
	return "email_templates"
}

// LandingPage is served when a target follows a tracked link
type LandingPage struct {
	BaseModel
	OrganizationID       uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization         *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name                 string        `json:"name" gorm:"not null;size:200"`
	PageType             PageType      `json:"page_type" gorm:"type:varchar(30);not null"`
	HTMLContent          string        `json:"html_content" gorm:"type:text;not null"`
	CSSContent           string        `json:"css_content" gorm:"type:text"`
	RedirectURL          string        `json:"redirect_url" gorm:"size:500"`
	CaptureCredentials   bool          `json:"capture_credentials" gorm:"not null"`
	CaptureFormData      bool          `json:"capture_form_data" gorm:"not null"`
	ShowAwarenessMessage bool          `json:"show_awareness_message" gorm:"not null"`
	AwarenessMessage     string        `json:"awareness_message" gorm:"type:text"`
	CreatedByID          *uuid.UUID    `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedBy            *User         `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for LandingPage
func (LandingPage) TableName() string {
	return "landing_pages"
}

// Campaign sends one template to a set of targets and tracks what they do with it
type Campaign struct {
	BaseModel
	OrganizationID      uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization        *Organization  `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name                string         `json:"name" gorm:"not null;size:200"`
	Description         string         `json:"description" gorm:"type:text"`
	EmailTemplateID     uuid.UUID      `json:"email_template_id" gorm:"type:uuid;not null;index"`
	EmailTemplate       *EmailTemplate `json:"email_template,omitempty" gorm:"foreignKey:EmailTemplateID;constraint:OnDelete:CASCADE"`
	LandingPageID       *uuid.UUID     `json:"landing_page_id,omitempty" gorm:"type:uuid"`
	LandingPage         *LandingPage   `json:"landing_page,omitempty" gorm:"foreignKey:LandingPageID;constraint:OnDelete:SET NULL"`
	Status              CampaignStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ScheduledStart      *time.Time     `json:"scheduled_start,omitempty" gorm:"index"`
	ActualStart         *time.Time     `json:"actual_start,omitempty"`
	EndDate             *time.Time     `json:"end_date,omitempty"`
	SendIntervalMinutes int            `json:"send_interval_minutes" gorm:"not null"`
	TrackOpens          bool           `json:"track_opens" gorm:"not null"`
	TrackClicks         bool           `json:"track_clicks" gorm:"not null"`
	CaptureCredentials  bool           `json:"capture_credentials" gorm:"not null"`
	CaptureData         bool           `json:"capture_data" gorm:"not null"`
	CreatedByID         *uuid.UUID     `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedBy           *User          `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`

	TargetGroups      []TargetGroup `json:"target_groups,omitempty" gorm:"many2many:campaign_target_groups;constraint:OnDelete:CASCADE"`
	IndividualTargets []Target      `json:"individual_targets,omitempty" gorm:"many2many:campaign_individual_targets;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}

// IsEditable reports whether the campaign definition may still change
func (c *Campaign) IsEditable() bool {
	switch c.Status {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusPaused:
		return true
	}
	return false
}

// IsTrackable reports whether tracking events are accepted for the campaign
func (c *Campaign) IsTrackable() bool {
	return c.Status == CampaignStatusRunning || c.Status == CampaignStatusPaused
}

// CampaignTarget is one recipient of a campaign and its tracking state
type CampaignTarget struct {
	BaseModel
	CampaignID      uuid.UUID            `json:"campaign_id" gorm:"type:uuid;not null;uniqueIndex:idx_campaign_targets_pair,priority:1"`
	Campaign        *Campaign            `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	TargetID        uuid.UUID            `json:"target_id" gorm:"type:uuid;not null;uniqueIndex:idx_campaign_targets_pair,priority:2"`
	Target          *Target              `json:"target,omitempty" gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
	Status          CampaignTargetStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	TrackingToken   string               `json:"tracking_token" gorm:"uniqueIndex;not null;size:64"`
	EmailSentAt     *time.Time           `json:"email_sent_at,omitempty"`
	EmailOpenedAt   *time.Time           `json:"email_opened_at,omitempty"`
	LinkClickedAt   *time.Time           `json:"link_clicked_at,omitempty"`
	DataSubmittedAt *time.Time           `json:"data_submitted_at,omitempty"`
	ReportedAt      *time.Time           `json:"reported_at,omitempty"`
	IPAddress       string               `json:"ip_address" gorm:"size:45"`
	UserAgent       string               `json:"user_agent" gorm:"type:text"`
	SubmittedData   JSONMap              `json:"submitted_data,omitempty" gorm:"type:text"`
}

// TableName returns the table name for CampaignTarget
func (CampaignTarget) TableName() string {
	return "campaign_targets"
}
