package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/config"
	"phishing-simulator-backend/internal/database"
	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/repository"
	"phishing-simulator-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name             string `yaml:"name"`
	Domain           string `yaml:"domain"`
	Industry         string `yaml:"industry"`
	Size             string `yaml:"size"`
	SubscriptionTier string `yaml:"subscription_tier"`
}

type UserData struct {
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Role         string `yaml:"role"`
	Organization string `yaml:"organization_domain,omitempty"`
	Department   string `yaml:"department,omitempty"`
	JobTitle     string `yaml:"job_title,omitempty"`
}

type TargetData struct {
	Email      string `yaml:"email"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Department string `yaml:"department"`
	JobTitle   string `yaml:"job_title"`
	RiskLevel  string `yaml:"risk_level"`
}

type TargetGroupData struct {
	Name         string       `yaml:"name"`
	Organization string       `yaml:"organization_domain"`
	Description  string       `yaml:"description"`
	Targets      []TargetData `yaml:"targets"`
}

type TemplateData struct {
	Name         string `yaml:"name"`
	Organization string `yaml:"organization_domain"`
	TemplateType string `yaml:"template_type"`
	Difficulty   string `yaml:"difficulty"`
	Subject      string `yaml:"subject"`
	SenderName   string `yaml:"sender_name"`
	SenderEmail  string `yaml:"sender_email"`
	HTMLContent  string `yaml:"html_content"`
	TextContent  string `yaml:"text_content"`
	IsDefault    bool   `yaml:"is_default"`
}

type LandingPageData struct {
	Name                 string `yaml:"name"`
	Organization         string `yaml:"organization_domain"`
	PageType             string `yaml:"page_type"`
	HTMLContent          string `yaml:"html_content"`
	RedirectURL          string `yaml:"redirect_url"`
	CaptureCredentials   bool   `yaml:"capture_credentials"`
	ShowAwarenessMessage bool   `yaml:"show_awareness_message"`
	AwarenessMessage     string `yaml:"awareness_message"`
}

// SeedFile is the layout of every YAML file under the data directory; sections may be omitted
type SeedFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Users         []UserData         `yaml:"users"`
	TargetGroups  []TargetGroupData  `yaml:"target_groups"`
	Templates     []TemplateData     `yaml:"templates"`
	LandingPages  []LandingPageData  `yaml:"landing_pages"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	plans := service.DefaultPlanCatalog()
	if cfg.PlansFile != "" {
		if loaded, err := service.LoadPlanCatalog(cfg.PlansFile); err == nil {
			plans = loaded
		} else {
			log.Printf("⚠️  Warning: using built-in plans: %v", err)
		}
	}
	billing := service.NewBillingService(
		repository.NewSubscriptionRepository(db),
		repository.NewInvoiceRepository(db),
		repository.NewUsageMetricRepository(db),
		repository.NewPaymentMethodRepository(db),
		repository.NewOrganizationRepository(db),
		plans, nil, nil, validator.New(),
	)

	if err := loadData(db, seed, billing); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DSN(), opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}
	paths, err := filepath.Glob(filepath.Join(dataDir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		merged.Organizations = append(merged.Organizations, file.Organizations...)
		merged.Users = append(merged.Users, file.Users...)
		merged.TargetGroups = append(merged.TargetGroups, file.TargetGroups...)
		merged.Templates = append(merged.Templates, file.Templates...)
		merged.LandingPages = append(merged.LandingPages, file.LandingPages...)
	}
	return merged, nil
}

func loadData(db *gorm.DB, seed *SeedFile, provisioner service.OrganizationProvisioner) error {
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range seed.Organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Domain, err)
		}
		orgMap[orgData.Domain] = org
		if created {
			// new organizations start on a trial of their tier, as on signup
			if err := provisioner.ProvisionOrganization(org); err != nil {
				return fmt.Errorf("failed to provision organization %s: %w", orgData.Domain, err)
			}
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(seed.Organizations))

	userCreated := 0
	for _, userData := range seed.Users {
		created, err := createUser(db, userData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(seed.Users))

	groupCreated := 0
	for _, groupData := range seed.TargetGroups {
		created, err := createTargetGroup(db, groupData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create target group %s: %v", groupData.Name, err)
			continue
		}
		if created {
			groupCreated++
		}
	}
	log.Printf("📋 Target groups: %d created, %d total", groupCreated, len(seed.TargetGroups))

	templateCreated := 0
	for _, templateData := range seed.Templates {
		created, err := createTemplate(db, templateData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create template %s: %v", templateData.Name, err)
			continue
		}
		if created {
			templateCreated++
		}
	}
	log.Printf("📋 Email templates: %d created, %d total", templateCreated, len(seed.Templates))

	pageCreated := 0
	for _, pageData := range seed.LandingPages {
		created, err := createLandingPage(db, pageData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create landing page %s: %v", pageData.Name, err)
			continue
		}
		if created {
			pageCreated++
		}
	}
	log.Printf("📋 Landing pages: %d created, %d total", pageCreated, len(seed.LandingPages))

	return nil
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	err := db.Where("domain = ?", orgData.Domain).First(&org).Error
	if err == nil {
		return &org, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	org = models.Organization{
		Name:             orgData.Name,
		Domain:           orgData.Domain,
		Industry:         models.Industry(orgData.Industry),
		Size:             models.OrganizationSize(orgData.Size),
		SubscriptionTier: models.PlanType(orgData.SubscriptionTier),
		IsActive:         true,
	}
	if err := db.Create(&org).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create organization: %w", err)
	}
	return &org, true, nil
}

func lookupOrganization(orgMap map[string]*models.Organization, domain string) (*uuid.UUID, error) {
	if domain == "" {
		return nil, nil
	}
	org := orgMap[domain]
	if org == nil {
		return nil, fmt.Errorf("organization %s not found", domain)
	}
	return &org.ID, nil
}

func createUser(db *gorm.DB, userData UserData, orgMap map[string]*models.Organization) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", userData.Email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	orgID, err := lookupOrganization(orgMap, userData.Organization)
	if err != nil {
		return false, err
	}
	hash, err := auth.HashPassword(userData.Password)
	if err != nil {
		return false, err
	}

	user := models.User{
		Username:       userData.Username,
		Email:          userData.Email,
		PasswordHash:   hash,
		FirstName:      userData.FirstName,
		LastName:       userData.LastName,
		Role:           models.UserRole(userData.Role),
		OrganizationID: orgID,
		IsVerified:     true,
		IsActive:       true,
		Profile: &models.UserProfile{
			Department:    userData.Department,
			JobTitle:      userData.JobTitle,
			SecurityLevel: models.SecurityLevelMedium,
		},
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

func createTargetGroup(db *gorm.DB, groupData TargetGroupData, orgMap map[string]*models.Organization) (bool, error) {
	orgID, err := lookupOrganization(orgMap, groupData.Organization)
	if err != nil || orgID == nil {
		return false, fmt.Errorf("target group needs an organization: %v", err)
	}

	var group models.TargetGroup
	err = db.Where("organization_id = ? AND name = ?", *orgID, groupData.Name).First(&group).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		members := make([]models.Target, 0, len(groupData.Targets))
		for _, t := range groupData.Targets {
			target := models.Target{
				OrganizationID: *orgID,
				Email:          t.Email,
				FirstName:      t.FirstName,
				LastName:       t.LastName,
				Department:     t.Department,
				JobTitle:       t.JobTitle,
				RiskLevel:      models.RiskLevel(t.RiskLevel),
				IsActive:       true,
			}
			if err := tx.Where("organization_id = ? AND email = ?", *orgID, target.Email).
				FirstOrCreate(&target).Error; err != nil {
				return fmt.Errorf("failed to create target %s: %w", t.Email, err)
			}
			members = append(members, target)
		}

		group = models.TargetGroup{
			OrganizationID: *orgID,
			Name:           groupData.Name,
			Description:    groupData.Description,
			Targets:        members,
		}
		return tx.Create(&group).Error
	})
}

func createTemplate(db *gorm.DB, templateData TemplateData, orgMap map[string]*models.Organization) (bool, error) {
	orgID, err := lookupOrganization(orgMap, templateData.Organization)
	if err != nil || orgID == nil {
		return false, fmt.Errorf("template needs an organization: %v", err)
	}

	var count int64
	if err := db.Model(&models.EmailTemplate{}).
		Where("organization_id = ? AND name = ?", *orgID, templateData.Name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	template := models.EmailTemplate{
		OrganizationID: *orgID,
		Name:           templateData.Name,
		TemplateType:   models.TemplateType(templateData.TemplateType),
		Difficulty:     models.Difficulty(templateData.Difficulty),
		Subject:        templateData.Subject,
		SenderName:     templateData.SenderName,
		SenderEmail:    templateData.SenderEmail,
		HTMLContent:    templateData.HTMLContent,
		TextContent:    templateData.TextContent,
		IsDefault:      templateData.IsDefault,
	}
	return true, db.Create(&template).Error
}

func createLandingPage(db *gorm.DB, pageData LandingPageData, orgMap map[string]*models.Organization) (bool, error) {
	orgID, err := lookupOrganization(orgMap, pageData.Organization)
	if err != nil || orgID == nil {
		return false, fmt.Errorf("landing page needs an organization: %v", err)
	}

	var count int64
	if err := db.Model(&models.LandingPage{}).
		Where("organization_id = ? AND name = ?", *orgID, pageData.Name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	page := models.LandingPage{
		OrganizationID:       *orgID,
		Name:                 pageData.Name,
		PageType:             models.PageType(pageData.PageType),
		HTMLContent:          pageData.HTMLContent,
		RedirectURL:          pageData.RedirectURL,
		CaptureCredentials:   pageData.CaptureCredentials,
		ShowAwarenessMessage: pageData.ShowAwarenessMessage,
		AwarenessMessage:     pageData.AwarenessMessage,
	}
	return true, db.Create(&page).Error
}
