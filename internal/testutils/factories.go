package testutils

import (
	"fmt"
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Test Organization",
		Domain:           fmt.Sprintf("%s.example.com", id.String()[:8]),
		Industry:         models.IndustryTechnology,
		Size:             models.OrganizationSizeSmall,
		SubscriptionTier: models.PlanTypeBasic,
		IsActive:         true,
	}
}

// WithDomain sets a custom domain for the organization
func (f *OrganizationFactory) WithDomain(domain string) *models.Organization {
	org := f.Create()
	org.Domain = domain
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active customer without an organization
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	short := id.String()[:8]
	return &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Username:     "user-" + short,
		Email:        "user-" + short + "@example.com",
		PasswordHash: "not-a-real-hash",
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.UserRoleCustomer,
		IsVerified:   true,
		IsActive:     true,
	}
}

// WithOrganization creates a user belonging to orgID
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// WithRole creates a user with the given role in orgID
func (f *UserFactory) WithRole(orgID uuid.UUID, role models.UserRole) *models.User {
	user := f.WithOrganization(orgID)
	user.Role = role
	return user
}

// TargetFactory provides methods to create test Target data
type TargetFactory struct{}

// NewTargetFactory creates a new TargetFactory
func NewTargetFactory() *TargetFactory {
	return &TargetFactory{}
}

// Create creates an active target in orgID
func (f *TargetFactory) Create(orgID uuid.UUID) *models.Target {
	id := uuid.New()
	return &models.Target{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		Email:          "target-" + id.String()[:8] + "@example.com",
		FirstName:      "Jane",
		LastName:       "Doe",
		Department:     "Finance",
		JobTitle:       "Analyst",
		RiskLevel:      models.RiskLevelMedium,
		IsActive:       true,
	}
}

// WithDepartment creates a target in the given department
func (f *TargetFactory) WithDepartment(orgID uuid.UUID, department string) *models.Target {
	target := f.Create(orgID)
	target.Department = department
	return target
}

// TemplateFactory provides methods to create test EmailTemplate data
type TemplateFactory struct{}

// NewTemplateFactory creates a new TemplateFactory
func NewTemplateFactory() *TemplateFactory {
	return &TemplateFactory{}
}

// Create creates an IT support template in orgID
func (f *TemplateFactory) Create(orgID uuid.UUID) *models.EmailTemplate {
	return &models.EmailTemplate{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Name:           "Password Reset",
		TemplateType:   models.TemplateTypeITSupport,
		Difficulty:     models.DifficultyBeginner,
		Subject:        "Reset your password, {{first_name}}",
		SenderName:     "IT Support",
		SenderEmail:    "it@example.net",
		HTMLContent:    `<p>Hello {{first_name}}, <a href="{{tracking_url}}">reset now</a></p>`,
		TextContent:    "Hello {{first_name}}, reset now: {{tracking_url}}",
	}
}

// LandingPageFactory provides methods to create test LandingPage data
type LandingPageFactory struct{}

// NewLandingPageFactory creates a new LandingPageFactory
func NewLandingPageFactory() *LandingPageFactory {
	return &LandingPageFactory{}
}

// Create creates a credential capturing login page in orgID
func (f *LandingPageFactory) Create(orgID uuid.UUID) *models.LandingPage {
	return &models.LandingPage{
		BaseModel:            models.BaseModel{ID: uuid.New()},
		OrganizationID:       orgID,
		Name:                 "Fake Login",
		PageType:             models.PageTypeLogin,
		HTMLContent:          "<form><input name=\"password\"/></form>",
		CaptureCredentials:   true,
		ShowAwarenessMessage: true,
		AwarenessMessage:     "This was a phishing simulation.",
	}
}

// CampaignFactory provides methods to create test Campaign data
type CampaignFactory struct{}

// NewCampaignFactory creates a new CampaignFactory
func NewCampaignFactory() *CampaignFactory {
	return &CampaignFactory{}
}

// Create creates a draft campaign in orgID using templateID
func (f *CampaignFactory) Create(orgID, templateID uuid.UUID) *models.Campaign {
	return &models.Campaign{
		BaseModel:           models.BaseModel{ID: uuid.New()},
		OrganizationID:      orgID,
		Name:                "Q3 Awareness",
		Description:         "Quarterly phishing simulation",
		EmailTemplateID:     templateID,
		Status:              models.CampaignStatusDraft,
		SendIntervalMinutes: 5,
		TrackOpens:          true,
		TrackClicks:         true,
	}
}

// WithStatus creates a campaign in the given status
func (f *CampaignFactory) WithStatus(orgID, templateID uuid.UUID, status models.CampaignStatus) *models.Campaign {
	campaign := f.Create(orgID, templateID)
	campaign.Status = status
	if status == models.CampaignStatusRunning || status == models.CampaignStatusPaused {
		now := time.Now()
		campaign.ActualStart = &now
	}
	return campaign
}

// CampaignTargetFactory provides methods to create test CampaignTarget data
type CampaignTargetFactory struct{}

// NewCampaignTargetFactory creates a new CampaignTargetFactory
func NewCampaignTargetFactory() *CampaignTargetFactory {
	return &CampaignTargetFactory{}
}

// Create creates a sent recipient linking campaign and target
func (f *CampaignTargetFactory) Create(campaign *models.Campaign, target *models.Target) *models.CampaignTarget {
	sentAt := time.Now().Add(-time.Hour)
	return &models.CampaignTarget{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		CampaignID:    campaign.ID,
		Campaign:      campaign,
		TargetID:      target.ID,
		Target:        target,
		Status:        models.CampaignTargetSent,
		TrackingToken: uuid.New().String(),
		EmailSentAt:   &sentAt,
	}
}

// SMTPConfigFactory provides methods to create test SMTPConfiguration data
type SMTPConfigFactory struct{}

// NewSMTPConfigFactory creates a new SMTPConfigFactory
func NewSMTPConfigFactory() *SMTPConfigFactory {
	return &SMTPConfigFactory{}
}

// Create creates an active configuration with spare daily capacity
func (f *SMTPConfigFactory) Create(orgID uuid.UUID) *models.SMTPConfiguration {
	today := time.Now()
	return &models.SMTPConfiguration{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Name:           "Primary relay",
		Host:           "smtp.example.com",
		Port:           587,
		Username:       "mailer",
		Password:       "secret",
		UseTLS:         true,
		FromEmail:      "noreply@example.com",
		IsActive:       true,
		DailyLimit:     500,
		LastResetDate:  &today,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization   *OrganizationFactory
	User           *UserFactory
	Target         *TargetFactory
	Template       *TemplateFactory
	LandingPage    *LandingPageFactory
	Campaign       *CampaignFactory
	CampaignTarget *CampaignTargetFactory
	SMTPConfig     *SMTPConfigFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:   NewOrganizationFactory(),
		User:           NewUserFactory(),
		Target:         NewTargetFactory(),
		Template:       NewTemplateFactory(),
		LandingPage:    NewLandingPageFactory(),
		Campaign:       NewCampaignFactory(),
		CampaignTarget: NewCampaignTargetFactory(),
		SMTPConfig:     NewSMTPConfigFactory(),
	}
}

// CreateRunningCampaign builds an organization with one target enrolled in a running campaign
func (fs *FactorySet) CreateRunningCampaign() (*models.Organization, *models.Campaign, *models.Target, *models.CampaignTarget) {
	org := fs.Organization.Create()
	template := fs.Template.Create(org.ID)
	campaign := fs.Campaign.WithStatus(org.ID, template.ID, models.CampaignStatusRunning)
	campaign.EmailTemplate = template
	target := fs.Target.Create(org.ID)
	recipient := fs.CampaignTarget.Create(campaign, target)
	return org, campaign, target, recipient
}
