package models

import (
	"time"

	"github.com/google/uuid"
)

// CampaignReport is the aggregated outcome of one campaign
type CampaignReport struct {
	BaseModel
	CampaignID         uuid.UUID `json:"campaign_id" gorm:"type:uuid;uniqueIndex;not null"`
	Campaign           *Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	TotalTargets       int       `json:"total_targets"`
	EmailsSent         int       `json:"emails_sent"`
	EmailsDelivered    int       `json:"emails_delivered"`
	EmailsOpened       int       `json:"emails_opened"`
	LinksClicked       int       `json:"links_clicked"`
	DataSubmitted      int       `json:"data_submitted"`
	ReportedPhishing   int       `json:"reported_phishing"`
	DeliveryRate       float64   `json:"delivery_rate"`
	OpenRate           float64   `json:"open_rate"`
	ClickRate          float64   `json:"click_rate"`
	ClickThroughRate   float64   `json:"click_through_rate"`
	SusceptibilityRate float64   `json:"susceptibility_rate"`
	AwarenessRate      float64   `json:"awareness_rate"`
	GeneratedAt        time.Time `json:"generated_at"`
}

// TableName returns the table name for CampaignReport
func (CampaignReport) TableName() string {
	return "campaign_reports"
}

// CalculateRates derives every rate from the stored counts
func (r *CampaignReport) CalculateRates() {
	r.DeliveryRate = Percentage(r.EmailsDelivered, r.EmailsSent)
	r.OpenRate = Percentage(r.EmailsOpened, r.EmailsDelivered)
	r.ClickRate = Percentage(r.LinksClicked, r.EmailsDelivered)
	r.ClickThroughRate = Percentage(r.LinksClicked, r.EmailsOpened)
	r.SusceptibilityRate = Percentage(r.DataSubmitted, r.EmailsDelivered)
	r.AwarenessRate = Percentage(r.ReportedPhishing, r.EmailsDelivered)
}

// DepartmentReport breaks a campaign outcome down by department
type DepartmentReport struct {
	BaseModel
	CampaignID            uuid.UUID `json:"campaign_id" gorm:"type:uuid;not null;uniqueIndex:idx_department_reports_pair,priority:1"`
	Campaign              *Campaign `json:"-" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	Department            string    `json:"department" gorm:"not null;size:100;uniqueIndex:idx_department_reports_pair,priority:2"`
	TotalEmployees        int       `json:"total_employees"`
	EmailsOpened          int       `json:"emails_opened"`
	LinksClicked          int       `json:"links_clicked"`
	DataSubmitted         int       `json:"data_submitted"`
	ReportedPhishing      int       `json:"reported_phishing"`
	RiskScore             float64   `json:"risk_score"`
	ImprovementPercentage float64   `json:"improvement_percentage"`
}

// TableName returns the table name for DepartmentReport
func (DepartmentReport) TableName() string {
	return "department_reports"
}

// CalculateRiskScore weighs clicks, submissions and reports per employee, clamped to 0..100
func (r *DepartmentReport) CalculateRiskScore() {
	if r.TotalEmployees <= 0 {
		r.RiskScore = 0
		return
	}
	weighted := float64(r.LinksClicked) + float64(r.DataSubmitted)*2 - float64(r.ReportedPhishing)*0.5
	score := weighted / float64(r.TotalEmployees) * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	r.RiskScore = Round2(score)
}

// ScheduledReport periodically regenerates reports and notifies its owner
type ScheduledReport struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	Organization   *Organization   `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Name           string          `json:"name" gorm:"not null;size:200"`
	ReportType     ReportType      `json:"report_type" gorm:"type:varchar(30);not null"`
	Frequency      ReportFrequency `json:"frequency" gorm:"type:varchar(20);not null"`
	Recipients     StringList      `json:"recipients" gorm:"type:text"`
	NextRun        time.Time       `json:"next_run" gorm:"not null;index"`
	LastRun        *time.Time      `json:"last_run,omitempty"`
	IsActive       bool            `json:"is_active" gorm:"not null"`
	CreatedByID    *uuid.UUID      `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedBy      *User           `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`

	IncludeCampaigns []Campaign `json:"include_campaigns,omitempty" gorm:"many2many:scheduled_report_campaigns;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduledReport
func (ScheduledReport) TableName() string {
	return "scheduled_reports"
}

// NextRunAfter advances t by one reporting period
func (f ReportFrequency) NextRunAfter(t time.Time) time.Time {
	switch f {
	case ReportFrequencyDaily:
		return t.AddDate(0, 0, 1)
	case ReportFrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case ReportFrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case ReportFrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	}
	return t.AddDate(0, 0, 1)
}
