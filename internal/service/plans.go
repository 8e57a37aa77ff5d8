package service

import (
	"fmt"
	"os"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Plan is one entry of the subscription plan catalog
type Plan struct {
	Name                 string `yaml:"name" json:"name"`
	MaxTargets           int    `yaml:"max_targets" json:"max_targets"`
	MaxCampaignsPerMonth int    `yaml:"max_campaigns_per_month" json:"max_campaigns_per_month"`
	MaxEmailsPerMonth    int    `yaml:"max_emails_per_month" json:"max_emails_per_month"`
	MaxTemplates         int    `yaml:"max_templates" json:"max_templates"`
	MaxLandingPages      int    `yaml:"max_landing_pages" json:"max_landing_pages"`
	AdvancedReporting    bool   `yaml:"advanced_reporting" json:"advanced_reporting"`
	APIAccess            bool   `yaml:"api_access" json:"api_access"`
	CustomBranding       bool   `yaml:"custom_branding" json:"custom_branding"`
	PrioritySupport      bool   `yaml:"priority_support" json:"priority_support"`
	MonthlyPrice         string `yaml:"monthly_price" json:"monthly_price"`
	AnnualPrice          string `yaml:"annual_price" json:"annual_price"`
	TrialDays            int    `yaml:"trial_days" json:"trial_days"`
}

// PlanCatalog maps plan types to their limits, features and prices
type PlanCatalog struct {
	plans map[models.PlanType]Plan
}

type planFile struct {
	Plans map[models.PlanType]Plan `yaml:"plans"`
}

const defaultPlansYAML = `
plans:
  basic:
    name: Basic
    max_targets: 100
    max_campaigns_per_month: 5
    max_emails_per_month: 1000
    max_templates: 10
    max_landing_pages: 5
    monthly_price: "49.00"
    annual_price: "490.00"
    trial_days: 14
  professional:
    name: Professional
    max_targets: 1000
    max_campaigns_per_month: 25
    max_emails_per_month: 10000
    max_templates: 50
    max_landing_pages: 25
    advanced_reporting: true
    api_access: true
    monthly_price: "199.00"
    annual_price: "1990.00"
    trial_days: 14
  enterprise:
    name: Enterprise
    max_targets: 10000
    max_campaigns_per_month: 100
    max_emails_per_month: 100000
    max_templates: 200
    max_landing_pages: 100
    advanced_reporting: true
    api_access: true
    custom_branding: true
    priority_support: true
    monthly_price: "799.00"
    annual_price: "7990.00"
    trial_days: 30
`

// LoadPlanCatalog reads the catalog from a YAML file
func LoadPlanCatalog(path string) (*PlanCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan catalog: %w", err)
	}
	return ParsePlanCatalog(data)
}

// DefaultPlanCatalog returns the built-in catalog
func DefaultPlanCatalog() *PlanCatalog {
	catalog, err := ParsePlanCatalog([]byte(defaultPlansYAML))
	if err != nil {
		panic(err)
	}
	return catalog
}

// ParsePlanCatalog decodes and checks a YAML catalog
func ParsePlanCatalog(data []byte) (*PlanCatalog, error) {
	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse plan catalog: %w", err)
	}
	if len(file.Plans) == 0 {
		return nil, fmt.Errorf("plan catalog is empty")
	}
	for planType, plan := range file.Plans {
		if !planType.IsValid() || planType == models.PlanTypeCustom {
			return nil, fmt.Errorf("plan catalog: unknown plan type %q", planType)
		}
		if _, err := decimal.NewFromString(plan.MonthlyPrice); err != nil {
			return nil, fmt.Errorf("plan catalog: %s monthly_price: %w", planType, err)
		}
		if _, err := decimal.NewFromString(plan.AnnualPrice); err != nil {
			return nil, fmt.Errorf("plan catalog: %s annual_price: %w", planType, err)
		}
	}
	if _, ok := file.Plans[models.PlanTypeBasic]; !ok {
		return nil, fmt.Errorf("plan catalog must define the basic plan")
	}
	return &PlanCatalog{plans: file.Plans}, nil
}

// Get returns a catalog plan
func (c *PlanCatalog) Get(planType models.PlanType) (*Plan, error) {
	plan, ok := c.plans[planType]
	if !ok {
		return nil, apperrors.ErrPlanNotFound
	}
	return &plan, nil
}

// Apply copies the plan's limits, features and prices onto sub
func (p *Plan) Apply(sub *models.Subscription) {
	sub.PlanName = p.Name
	sub.MaxTargets = p.MaxTargets
	sub.MaxCampaignsPerMonth = p.MaxCampaignsPerMonth
	sub.MaxEmailsPerMonth = p.MaxEmailsPerMonth
	sub.MaxTemplates = p.MaxTemplates
	sub.MaxLandingPages = p.MaxLandingPages
	sub.AdvancedReporting = p.AdvancedReporting
	sub.APIAccess = p.APIAccess
	sub.CustomBranding = p.CustomBranding
	sub.PrioritySupport = p.PrioritySupport
	sub.MonthlyPrice = decimal.RequireFromString(p.MonthlyPrice)
	sub.AnnualPrice = decimal.RequireFromString(p.AnnualPrice)
}

// UsageLimits derives the usage metric limits of a subscription; untracked metrics get 0
func UsageLimits(sub *models.Subscription) map[models.MetricType]int {
	limits := make(map[models.MetricType]int, len(models.AllMetricTypes))
	for _, metric := range models.AllMetricTypes {
		limits[metric] = sub.LimitFor(metric)
	}
	return limits
}
