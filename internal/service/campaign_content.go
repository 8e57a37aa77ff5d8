package service

import (
	"fmt"
	"strings"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/repository"

	"github.com/google/uuid"
)

// EmailTemplateRequest represents the create and update payload of an email template
type EmailTemplateRequest struct {
	Name         string              `json:"name" validate:"required,max=200"`
	TemplateType models.TemplateType `json:"template_type" validate:"required"`
	Difficulty   models.Difficulty   `json:"difficulty" validate:"required"`
	Subject      string              `json:"subject" validate:"required,max=255"`
	SenderName   string              `json:"sender_name" validate:"required,max=100"`
	SenderEmail  string              `json:"sender_email" validate:"required,email,max=255"`
	HTMLContent  string              `json:"html_content" validate:"required"`
	TextContent  string              `json:"text_content"`
	IsDefault    bool                `json:"is_default"`
}

// EmailTemplateListRequest filters email templates
type EmailTemplateListRequest struct {
	ListParams
	TemplateType models.TemplateType `form:"template_type"`
	Difficulty   models.Difficulty   `form:"difficulty"`
	IsDefault    *bool               `form:"is_default"`
}

// EmailTemplateResponse represents an email template and how many campaigns use it
type EmailTemplateResponse struct {
	models.EmailTemplate
	CampaignCount int64 `json:"campaign_count"`
}

// EmailTemplateListResponse represents a paginated list of templates
type EmailTemplateListResponse struct {
	Templates []EmailTemplateResponse `json:"templates"`
	Total     int64                   `json:"total"`
	Page      int                     `json:"page"`
	PageSize  int                     `json:"page_size"`
}

// LandingPageRequest represents the create and update payload of a landing page
type LandingPageRequest struct {
	Name                 string          `json:"name" validate:"required,max=200"`
	PageType             models.PageType `json:"page_type" validate:"required"`
	HTMLContent          string          `json:"html_content" validate:"required"`
	CSSContent           string          `json:"css_content"`
	RedirectURL          string          `json:"redirect_url" validate:"omitempty,url,max=500"`
	CaptureCredentials   *bool           `json:"capture_credentials"`
	CaptureFormData      *bool           `json:"capture_form_data"`
	ShowAwarenessMessage *bool           `json:"show_awareness_message"`
	AwarenessMessage     string          `json:"awareness_message"`
}

// LandingPageListRequest filters landing pages
type LandingPageListRequest struct {
	ListParams
	PageType models.PageType `form:"page_type"`
}

// LandingPageListResponse represents a paginated list of landing pages
type LandingPageListResponse struct {
	LandingPages []models.LandingPage `json:"landing_pages"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

// ListTemplates returns the email templates of the actor's organization
func (s *CampaignService) ListTemplates(actor Actor, req *EmailTemplateListRequest) (*EmailTemplateListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	templates, total, err := s.templateRepo.List(repository.TemplateFilter{
		Page:           params.repoPage(),
		OrganizationID: orgID,
		TemplateType:   req.TemplateType,
		Difficulty:     req.Difficulty,
		IsDefault:      req.IsDefault,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	ids := make([]uuid.UUID, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}
	counts, err := s.templateRepo.CountCampaigns(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count template campaigns: %w", err)
	}
	responses := make([]EmailTemplateResponse, len(templates))
	for i := range templates {
		responses[i] = EmailTemplateResponse{EmailTemplate: templates[i], CampaignCount: counts[templates[i].ID]}
	}
	return &EmailTemplateListResponse{Templates: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// CreateTemplate adds an email template
func (s *CampaignService) CreateTemplate(actor Actor, req *EmailTemplateRequest) (*EmailTemplateResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.checkTemplate(req); err != nil {
		return nil, err
	}
	template := &models.EmailTemplate{OrganizationID: orgID, CreatedByID: &actor.UserID}
	applyTemplateRequest(template, req)
	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create email template: %w", err)
	}
	return &EmailTemplateResponse{EmailTemplate: *template}, nil
}

// GetTemplate retrieves an email template
func (s *CampaignService) GetTemplate(actor Actor, id uuid.UUID) (*EmailTemplateResponse, error) {
	template, err := s.loadTemplate(actor, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.templateRepo.CountCampaigns([]uuid.UUID{template.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count template campaigns: %w", err)
	}
	return &EmailTemplateResponse{EmailTemplate: *template, CampaignCount: counts[template.ID]}, nil
}

// UpdateTemplate replaces an email template's content
func (s *CampaignService) UpdateTemplate(actor Actor, id uuid.UUID, req *EmailTemplateRequest) (*EmailTemplateResponse, error) {
	template, err := s.loadTemplate(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTemplate(req); err != nil {
		return nil, err
	}
	applyTemplateRequest(template, req)
	if err := s.templateRepo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update email template: %w", err)
	}
	return s.GetTemplate(actor, id)
}

// DeleteTemplate removes an email template; campaigns using it are removed with it
func (s *CampaignService) DeleteTemplate(actor Actor, id uuid.UUID) error {
	template, err := s.loadTemplate(actor, id)
	if err != nil {
		return err
	}
	if err := s.templateRepo.Delete(template.OrganizationID, id); err != nil {
		return fmt.Errorf("failed to delete email template: %w", err)
	}
	return nil
}

// ListLandingPages returns the landing pages of the actor's organization
func (s *CampaignService) ListLandingPages(actor Actor, req *LandingPageListRequest) (*LandingPageListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	pages, total, err := s.pageRepo.List(repository.LandingPageFilter{
		Page:           params.repoPage(),
		OrganizationID: orgID,
		PageType:       req.PageType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list landing pages: %w", err)
	}
	if pages == nil {
		pages = []models.LandingPage{}
	}
	return &LandingPageListResponse{LandingPages: pages, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// CreateLandingPage adds a landing page
func (s *CampaignService) CreateLandingPage(actor Actor, req *LandingPageRequest) (*models.LandingPage, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.checkLandingPage(req); err != nil {
		return nil, err
	}
	page := &models.LandingPage{
		OrganizationID:       orgID,
		CaptureCredentials:   true,
		CaptureFormData:      true,
		ShowAwarenessMessage: true,
		CreatedByID:          &actor.UserID,
	}
	applyLandingPageRequest(page, req)
	if err := s.pageRepo.Create(page); err != nil {
		return nil, fmt.Errorf("failed to create landing page: %w", err)
	}
	return page, nil
}

// GetLandingPage retrieves a landing page
func (s *CampaignService) GetLandingPage(actor Actor, id uuid.UUID) (*models.LandingPage, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	page, err := s.pageRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrLandingPageNotFound, "get landing page")
	}
	return page, nil
}

// UpdateLandingPage replaces a landing page's content
func (s *CampaignService) UpdateLandingPage(actor Actor, id uuid.UUID, req *LandingPageRequest) (*models.LandingPage, error) {
	page, err := s.GetLandingPage(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkLandingPage(req); err != nil {
		return nil, err
	}
	applyLandingPageRequest(page, req)
	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update landing page: %w", err)
	}
	return page, nil
}

// DeleteLandingPage removes a landing page; campaigns using it keep running without one
func (s *CampaignService) DeleteLandingPage(actor Actor, id uuid.UUID) error {
	page, err := s.GetLandingPage(actor, id)
	if err != nil {
		return err
	}
	if err := s.pageRepo.Delete(page.OrganizationID, id); err != nil {
		return fmt.Errorf("failed to delete landing page: %w", err)
	}
	return nil
}

func (s *CampaignService) loadTemplate(actor Actor, id uuid.UUID) (*models.EmailTemplate, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	template, err := s.templateRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrEmailTemplateNotFound, "get email template")
	}
	return template, nil
}

func (s *CampaignService) checkTemplate(req *EmailTemplateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.TemplateType.IsValid() {
		return apperrors.NewValidationError("template_type", "invalid template type")
	}
	if !req.Difficulty.IsValid() {
		return apperrors.NewValidationError("difficulty", "invalid difficulty")
	}
	return nil
}

func (s *CampaignService) checkLandingPage(req *LandingPageRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.PageType.IsValid() {
		return apperrors.NewValidationError("page_type", "invalid page type")
	}
	return nil
}

func applyTemplateRequest(t *models.EmailTemplate, req *EmailTemplateRequest) {
	t.Name = strings.TrimSpace(req.Name)
	t.TemplateType = req.TemplateType
	t.Difficulty = req.Difficulty
	t.Subject = req.Subject
	t.SenderName = req.SenderName
	t.SenderEmail = strings.TrimSpace(req.SenderEmail)
	t.HTMLContent = req.HTMLContent
	t.TextContent = req.TextContent
	t.IsDefault = req.IsDefault
}

func applyLandingPageRequest(p *models.LandingPage, req *LandingPageRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.PageType = req.PageType
	p.HTMLContent = req.HTMLContent
	p.CSSContent = req.CSSContent
	p.RedirectURL = strings.TrimSpace(req.RedirectURL)
	p.CaptureCredentials = boolValue(req.CaptureCredentials, p.CaptureCredentials)
	p.CaptureFormData = boolValue(req.CaptureFormData, p.CaptureFormData)
	p.ShowAwarenessMessage = boolValue(req.ShowAwarenessMessage, p.ShowAwarenessMessage)
	p.AwarenessMessage = req.AwarenessMessage
}
