package service

import (
	"errors"
	"fmt"
	"strings"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo        repository.OrganizationRepositoryInterface
	provisioner OrganizationProvisioner
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service; provisioner may be nil
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, provisioner OrganizationProvisioner, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		provisioner: provisioner,
		validator:   validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name             string                  `json:"name" validate:"required,min=1,max=200"`
	Domain           string                  `json:"domain" validate:"required,max=255,hostname"`
	Industry         models.Industry         `json:"industry" validate:"required"`
	Size             models.OrganizationSize `json:"size" validate:"required"`
	SubscriptionTier models.PlanType         `json:"subscription_tier,omitempty"`
	IsActive         *bool                   `json:"is_active,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name     string                  `json:"name" validate:"required,min=1,max=200"`
	Industry models.Industry         `json:"industry" validate:"required"`
	Size     models.OrganizationSize `json:"size" validate:"required"`
	IsActive *bool                   `json:"is_active,omitempty"`
}

// OrganizationListRequest filters organizations
type OrganizationListRequest struct {
	ListParams
	Industry         models.Industry         `form:"industry"`
	Size             models.OrganizationSize `form:"size"`
	SubscriptionTier models.PlanType         `form:"subscription_tier"`
	IsActive         *bool                   `form:"is_active"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID               uuid.UUID               `json:"id"`
	Name             string                  `json:"name"`
	Domain           string                  `json:"domain"`
	Industry         models.Industry         `json:"industry"`
	Size             models.OrganizationSize `json:"size"`
	SubscriptionTier models.PlanType         `json:"subscription_tier"`
	IsActive         bool                    `json:"is_active"`
	UsersCount       int64                   `json:"users_count"`
	CreatedAt        string                  `json:"created_at"`
	UpdatedAt        string                  `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new organization and provisions its trial subscription
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	org, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	if err := s.Provision(org); err != nil {
		return nil, err
	}
	return s.toResponse(org, 0), nil
}

// Provision runs the provisioner for a freshly created organization
func (s *OrganizationService) Provision(org *models.Organization) error {
	if s.provisioner == nil {
		return nil
	}
	if err := s.provisioner.ProvisionOrganization(org); err != nil {
		return fmt.Errorf("failed to provision organization: %w", err)
	}
	return nil
}

// build validates req and returns an unsaved organization with a domain nobody else uses
func (s *OrganizationService) build(req *CreateOrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Industry.IsValid() {
		return nil, apperrors.NewValidationError("industry", "invalid industry")
	}
	if !req.Size.IsValid() {
		return nil, apperrors.NewValidationError("size", "invalid organization size")
	}
	tier := req.SubscriptionTier
	if tier == "" {
		tier = models.PlanTypeBasic
	}
	if !tier.IsValid() {
		return nil, apperrors.NewValidationError("subscription_tier", "invalid subscription tier")
	}

	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	existing, err := s.repo.GetByDomain(domain)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by domain: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	return &models.Organization{
		Name:             strings.TrimSpace(req.Name),
		Domain:           domain,
		Industry:         req.Industry,
		Size:             req.Size,
		SubscriptionTier: tier,
		IsActive:         boolValue(req.IsActive, true),
	}, nil
}

// List returns every organization to an admin and only their own to a customer
func (s *OrganizationService) List(actor Actor, req *OrganizationListRequest) (*OrganizationListResponse, error) {
	if !actor.IsManager() {
		return nil, apperrors.ErrManagerRequired
	}
	params := req.ListParams.Normalize()
	filter := repository.OrganizationFilter{
		Page:             params.repoPage(),
		Industry:         req.Industry,
		Size:             req.Size,
		SubscriptionTier: req.SubscriptionTier,
		IsActive:         req.IsActive,
	}
	if !actor.IsAdmin() {
		orgID, err := actor.TenantID()
		if err != nil {
			return nil, err
		}
		filter.IDs = []uuid.UUID{orgID}
	}

	orgs, total, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}
	ids := make([]uuid.UUID, len(orgs))
	for i, org := range orgs {
		ids[i] = org.ID
	}
	counts, err := s.repo.CountUsers(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count organization users: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i], counts[orgs[i].ID])
	}
	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          params.Page,
		PageSize:      params.PageSize,
	}, nil
}

// GetByID retrieves an organization; non-admins always get their own
func (s *OrganizationService) GetByID(actor Actor, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.resolve(actor, id)
	if err != nil {
		return nil, err
	}
	return s.withCount(org)
}

// Update updates an organization; non-admins always update their own
func (s *OrganizationService) Update(actor Actor, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Industry.IsValid() {
		return nil, apperrors.NewValidationError("industry", "invalid industry")
	}
	if !req.Size.IsValid() {
		return nil, apperrors.NewValidationError("size", "invalid organization size")
	}

	org, err := s.resolve(actor, id)
	if err != nil {
		return nil, err
	}
	org.Name = strings.TrimSpace(req.Name)
	org.Industry = req.Industry
	org.Size = req.Size
	org.IsActive = boolValue(req.IsActive, org.IsActive)

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return s.withCount(org)
}

// Delete deletes an organization and, by cascade, everything it owns; admins only
func (s *OrganizationService) Delete(actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return apperrors.ErrAdminRequired
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrOrganizationNotFound, "get organization")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

func (s *OrganizationService) resolve(actor Actor, id uuid.UUID) (*models.Organization, error) {
	if !actor.IsManager() {
		return nil, apperrors.ErrManagerRequired
	}
	if !actor.IsAdmin() {
		orgID, err := actor.TenantID()
		if err != nil {
			return nil, err
		}
		id = orgID
	}
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "get organization")
	}
	return org, nil
}

func (s *OrganizationService) withCount(org *models.Organization) (*OrganizationResponse, error) {
	counts, err := s.repo.CountUsers([]uuid.UUID{org.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count organization users: %w", err)
	}
	return s.toResponse(org, counts[org.ID]), nil
}

func (s *OrganizationService) toResponse(org *models.Organization, usersCount int64) *OrganizationResponse {
	return &OrganizationResponse{
		ID:               org.ID,
		Name:             org.Name,
		Domain:           org.Domain,
		Industry:         org.Industry,
		Size:             org.Size,
		SubscriptionTier: org.SubscriptionTier,
		IsActive:         org.IsActive,
		UsersCount:       usersCount,
		CreatedAt:        formatTime(org.CreatedAt),
		UpdatedAt:        formatTime(org.UpdatedAt),
	}
}
