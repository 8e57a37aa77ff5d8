package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/importer"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/metrics"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxImportErrorLog      = 500
	maxImportErrorResponse = 100
	defaultTagColor        = "#007bff"
)

// TargetService handles targets, groups, tags and bulk imports
type TargetService struct {
	repo       repository.TargetRepositoryInterface
	groupRepo  repository.TargetGroupRepositoryInterface
	tagRepo    repository.TargetTagRepositoryInterface
	importRepo repository.TargetImportRepositoryInterface
	usage      UsageRecorder
	validator  *validator.Validate
}

// NewTargetService creates a new target service; usage may be nil
func NewTargetService(
	repo repository.TargetRepositoryInterface,
	groupRepo repository.TargetGroupRepositoryInterface,
	tagRepo repository.TargetTagRepositoryInterface,
	importRepo repository.TargetImportRepositoryInterface,
	usage UsageRecorder,
	validator *validator.Validate,
) *TargetService {
	return &TargetService{
		repo:       repo,
		groupRepo:  groupRepo,
		tagRepo:    tagRepo,
		importRepo: importRepo,
		usage:      usage,
		validator:  validator,
	}
}

// TargetRequest represents the create and update payload of a target.
// On update a nil TagIDs keeps the current tags.
type TargetRequest struct {
	Email      string           `json:"email" validate:"required,email,max=255"`
	FirstName  string           `json:"first_name" validate:"required,max=100"`
	LastName   string           `json:"last_name" validate:"required,max=100"`
	Department string           `json:"department" validate:"max=100"`
	JobTitle   string           `json:"job_title" validate:"max=100"`
	Phone      string           `json:"phone"`
	RiskLevel  models.RiskLevel `json:"risk_level"`
	IsActive   *bool            `json:"is_active"`
	TagIDs     []uuid.UUID      `json:"tag_ids"`
}

// TargetListRequest filters targets
type TargetListRequest struct {
	ListParams
	RiskLevel  models.RiskLevel `form:"risk_level"`
	IsActive   *bool            `form:"is_active"`
	Department string           `form:"department"`
	Tag        *uuid.UUID       `form:"-"`
}

// TagSummary is a tag embedded in a target response
type TagSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// TargetResponse represents a target
type TargetResponse struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	Email          string           `json:"email"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	FullName       string           `json:"full_name"`
	Department     string           `json:"department"`
	JobTitle       string           `json:"job_title"`
	Phone          string           `json:"phone"`
	RiskLevel      models.RiskLevel `json:"risk_level"`
	IsActive       bool             `json:"is_active"`
	Tags           []TagSummary     `json:"tags"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// TargetListResponse represents a paginated list of targets
type TargetListResponse struct {
	Targets  []TargetResponse `json:"targets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// BulkImportInput is either an uploaded spreadsheet or a list of JSON records
type BulkImportInput struct {
	FileName string
	File     io.Reader
	Size     int64
	Targets  []map[string]interface{}
}

// BulkImportResponse summarises a bulk import
type BulkImportResponse struct {
	CreatedCount   int              `json:"created_count"`
	ErrorCount     int              `json:"error_count"`
	Errors         []string         `json:"errors"`
	CreatedTargets []TargetResponse `json:"created_targets"`
}

// TargetStatisticsResponse aggregates the targets of an organization
type TargetStatisticsResponse struct {
	TotalTargets  int64                        `json:"total_targets"`
	ActiveTargets int64                        `json:"active_targets"`
	ByRiskLevel   map[string]int64             `json:"by_risk_level"`
	ByDepartment  []repository.DepartmentCount `json:"by_department"`
	TotalGroups   int64                        `json:"total_groups"`
	TotalTags     int64                        `json:"total_tags"`
}

// TargetGroupRequest represents the create and update payload of a group.
// On update a nil TargetIDs keeps the current members.
type TargetGroupRequest struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Description string      `json:"description"`
	TargetIDs   []uuid.UUID `json:"target_ids"`
}

// TargetSummary is a target embedded in a group response
type TargetSummary struct {
	ID         uuid.UUID        `json:"id"`
	Email      string           `json:"email"`
	FullName   string           `json:"full_name"`
	Department string           `json:"department"`
	RiskLevel  models.RiskLevel `json:"risk_level"`
	IsActive   bool             `json:"is_active"`
}

// TargetGroupResponse represents a target group
type TargetGroupResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CreatedBy      *uuid.UUID      `json:"created_by,omitempty"`
	TargetCount    int64           `json:"target_count"`
	Targets        []TargetSummary `json:"targets,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// TargetGroupListResponse represents a paginated list of groups
type TargetGroupListResponse struct {
	Groups   []TargetGroupResponse `json:"groups"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// TargetTagRequest represents the create and update payload of a tag
type TargetTagRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// TargetTagResponse represents a tag
type TargetTagResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	TargetCount int64     `json:"target_count"`
	CreatedAt   string    `json:"created_at"`
}

// TargetTagListResponse represents a paginated list of tags
type TargetTagListResponse struct {
	Tags     []TargetTagResponse `json:"tags"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// TargetImportResponse represents an import audit record
type TargetImportResponse struct {
	ID                uuid.UUID                 `json:"id"`
	FileName          string                    `json:"file_name"`
	TotalRecords      int                       `json:"total_records"`
	SuccessfulImports int                       `json:"successful_imports"`
	FailedImports     int                       `json:"failed_imports"`
	SuccessRate       float64                   `json:"success_rate"`
	Status            models.TargetImportStatus `json:"status"`
	ErrorLog          string                    `json:"error_log"`
	ImportedBy        *uuid.UUID                `json:"imported_by,omitempty"`
	CreatedAt         string                    `json:"created_at"`
}

// TargetImportListResponse represents a paginated import history
type TargetImportListResponse struct {
	Imports  []TargetImportResponse `json:"imports"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

type importRow struct {
	Email      string `validate:"required,email,max=255"`
	FirstName  string `validate:"required,max=100"`
	LastName   string `validate:"required,max=100"`
	Department string `validate:"max=100"`
	JobTitle   string `validate:"max=100"`
}

// List returns the targets of the actor's organization
func (s *TargetService) List(actor Actor, req *TargetListRequest) (*TargetListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	targets, total, err := s.repo.List(repository.TargetFilter{
		Page:           params.repoPage(),
		OrganizationID: orgID,
		RiskLevel:      req.RiskLevel,
		IsActive:       req.IsActive,
		Department:     strings.TrimSpace(req.Department),
		TagID:          req.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	responses := make([]TargetResponse, len(targets))
	for i := range targets {
		responses[i] = *toTargetResponse(&targets[i])
	}
	return &TargetListResponse{Targets: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// Create adds a target to the actor's organization
func (s *TargetService) Create(ctx context.Context, actor Actor, req *TargetRequest) (*TargetResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.checkTarget(req); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(orgID, req.Email, uuid.Nil); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(orgID, req.TagIDs)
	if err != nil {
		return nil, err
	}

	target := &models.Target{OrganizationID: orgID, Tags: tags}
	applyTargetRequest(target, req)
	if err := s.repo.Create(target); err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}
	s.recordUsage(ctx, orgID, 1)
	return toTargetResponse(target), nil
}

// GetByID retrieves a target of the actor's organization
func (s *TargetService) GetByID(actor Actor, id uuid.UUID) (*TargetResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	target, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTargetNotFound, "get target")
	}
	return toTargetResponse(target), nil
}

// Update replaces a target's fields and, when tag_ids is sent, its tags
func (s *TargetService) Update(actor Actor, id uuid.UUID, req *TargetRequest) (*TargetResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.checkTarget(req); err != nil {
		return nil, err
	}
	target, err := s.repo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTargetNotFound, "get target")
	}
	if !strings.EqualFold(target.Email, strings.TrimSpace(req.Email)) {
		if err := s.checkEmailFree(orgID, req.Email, target.ID); err != nil {
			return nil, err
		}
	}

	var tags []models.TargetTag
	if req.TagIDs != nil {
		if tags, err = s.resolveTags(orgID, req.TagIDs); err != nil {
			return nil, err
		}
		if tags == nil {
			tags = []models.TargetTag{}
		}
	}

	applyTargetRequest(target, req)
	if err := s.repo.Update(target, tags); err != nil {
		return nil, fmt.Errorf("failed to update target: %w", err)
	}
	return toTargetResponse(target), nil
}

// Delete removes a target of the actor's organization
func (s *TargetService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return err
	}
	if _, err := s.repo.GetByID(orgID, id); err != nil {
		return lookupError(err, apperrors.ErrTargetNotFound, "get target")
	}
	if err := s.repo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}
	s.recordUsage(ctx, orgID, -1)
	return nil
}

// BulkCreate imports targets from a spreadsheet or JSON records. Rows that fail
// de-duplication or validation are reported; the rest are inserted together.
func (s *TargetService) BulkCreate(ctx context.Context, actor Actor, in *BulkImportInput) (*BulkImportResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}

	var rows []importer.Row
	switch {
	case in.File != nil:
		if in.Size > importer.MaxUploadBytes {
			return nil, importer.ErrFileTooLarge
		}
		if rows, err = importer.Parse(in.FileName, in.File); err != nil {
			return nil, err
		}
	case len(in.Targets) > 0:
		if len(in.Targets) > importer.MaxRows {
			return nil, importer.ErrTooManyRows
		}
		rows = make([]importer.Row, len(in.Targets))
		for i, record := range in.Targets {
			rows[i] = importer.Normalize(stringifyRecord(record))
		}
	default:
		return nil, importer.ErrNoImportProvided
	}

	resp := &BulkImportResponse{Errors: []string{}, CreatedTargets: []TargetResponse{}}
	if len(rows) == 0 {
		return resp, nil
	}

	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Email != "" {
			emails = append(emails, row.Email)
		}
	}
	found, err := s.repo.ExistingEmails(orgID, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing targets: %w", err)
	}
	existing := make(map[string]bool, len(found))
	for _, email := range found {
		existing[strings.ToLower(email)] = true
	}

	result := importer.Dedupe(rows, existing)
	errs := result.Errors
	var targets []*models.Target
	for _, row := range result.Rows {
		if err := s.validator.Struct(importRow{
			Email:      row.Email,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Department: row.Department,
			JobTitle:   row.JobTitle,
		}); err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: %s", row.Line, describeValidation(err)))
			continue
		}
		if row.Phone != "" && !phonePattern.MatchString(row.Phone) {
			errs = append(errs, fmt.Sprintf("Row %d: phone: Enter a valid phone number.", row.Line))
			continue
		}
		targets = append(targets, &models.Target{
			OrganizationID: orgID,
			Email:          row.Email,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Department:     row.Department,
			JobTitle:       row.JobTitle,
			Phone:          row.Phone,
			RiskLevel:      row.RiskLevel,
			IsActive:       row.IsActive,
		})
	}

	record := &models.TargetImport{
		OrganizationID: orgID,
		FileName:       in.FileName,
		TotalRecords:   len(rows),
		ImportedByID:   &actor.UserID,
	}

	if len(targets) > 0 {
		if err := s.repo.CreateBatch(targets); err != nil {
			errs = append(errs, "Import failed due to an unexpected error.")
			s.logImport(ctx, record, 0, errs)
			return nil, fmt.Errorf("failed to create targets: %w", err)
		}
	}
	s.logImport(ctx, record, len(targets), errs)
	metrics.TargetsImported.Add(float64(len(targets)))
	s.recordUsage(ctx, orgID, len(targets))

	resp.CreatedCount = len(targets)
	resp.ErrorCount = len(errs)
	if len(errs) > maxImportErrorResponse {
		resp.Errors = errs[:maxImportErrorResponse]
	} else if errs != nil {
		resp.Errors = errs
	}
	for _, target := range targets {
		resp.CreatedTargets = append(resp.CreatedTargets, *toTargetResponse(target))
	}
	return resp, nil
}

// logImport writes the audit record; a failure here does not undo the import
func (s *TargetService) logImport(ctx context.Context, record *models.TargetImport, created int, errs []string) {
	record.SuccessfulImports = created
	record.FailedImports = len(errs)
	record.Status = models.TargetImportCompleted
	if created == 0 {
		record.Status = models.TargetImportFailed
	}
	logged := errs
	if len(logged) > maxImportErrorLog {
		logged = logged[:maxImportErrorLog]
	}
	record.ErrorLog = strings.Join(logged, "\n")

	if err := s.importRepo.Create(record); err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to record target import")
	}
}

// Statistics aggregates the targets of the actor's organization
func (s *TargetService) Statistics(actor Actor) (*TargetStatisticsResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.Statistics(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target statistics: %w", err)
	}
	byDepartment := stats.ByDepartment
	if byDepartment == nil {
		byDepartment = []repository.DepartmentCount{}
	}
	return &TargetStatisticsResponse{
		TotalTargets:  stats.TotalTargets,
		ActiveTargets: stats.ActiveTargets,
		ByRiskLevel:   stats.ByRiskLevel,
		ByDepartment:  byDepartment,
		TotalGroups:   stats.TotalGroups,
		TotalTags:     stats.TotalTags,
	}, nil
}

// ListImports returns the import history of the actor's organization, newest first
func (s *TargetService) ListImports(actor Actor, params ListParams) (*TargetImportListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	records, total, err := s.importRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list target imports: %w", err)
	}
	responses := make([]TargetImportResponse, len(records))
	for i := range records {
		r := &records[i]
		responses[i] = TargetImportResponse{
			ID:                r.ID,
			FileName:          r.FileName,
			TotalRecords:      r.TotalRecords,
			SuccessfulImports: r.SuccessfulImports,
			FailedImports:     r.FailedImports,
			SuccessRate:       r.SuccessRate(),
			Status:            r.Status,
			ErrorLog:          r.ErrorLog,
			ImportedBy:        r.ImportedByID,
			CreatedAt:         formatTime(r.CreatedAt),
		}
	}
	return &TargetImportListResponse{Imports: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// ListGroups returns the groups of the actor's organization
func (s *TargetService) ListGroups(actor Actor, params ListParams) (*TargetGroupListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	groups, total, err := s.groupRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list target groups: %w", err)
	}
	ids := make([]uuid.UUID, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	counts, err := s.groupRepo.CountTargets(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count group members: %w", err)
	}
	responses := make([]TargetGroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toGroupResponse(&groups[i], counts[groups[i].ID], false)
	}
	return &TargetGroupListResponse{Groups: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// CreateGroup adds a group with its members
func (s *TargetService) CreateGroup(actor Actor, req *TargetGroupRequest) (*TargetGroupResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	name := strings.TrimSpace(req.Name)
	if err := s.checkGroupNameFree(orgID, name, uuid.Nil); err != nil {
		return nil, err
	}
	members, err := s.resolveTargets(orgID, req.TargetIDs)
	if err != nil {
		return nil, err
	}

	group := &models.TargetGroup{
		OrganizationID: orgID,
		Name:           name,
		Description:    req.Description,
		CreatedByID:    &actor.UserID,
		Targets:        members,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create target group: %w", err)
	}
	return toGroupResponse(group, int64(len(members)), true), nil
}

// GetGroup retrieves a group with its members
func (s *TargetService) GetGroup(actor Actor, id uuid.UUID) (*TargetGroupResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	group, err := s.groupRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTargetGroupNotFound, "get target group")
	}
	return toGroupResponse(group, int64(len(group.Targets)), true), nil
}

// UpdateGroup renames a group and, when target_ids is sent, replaces its members
func (s *TargetService) UpdateGroup(actor Actor, id uuid.UUID, req *TargetGroupRequest) (*TargetGroupResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	group, err := s.groupRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTargetGroupNotFound, "get target group")
	}
	name := strings.TrimSpace(req.Name)
	if name != group.Name {
		if err := s.checkGroupNameFree(orgID, name, group.ID); err != nil {
			return nil, err
		}
	}

	var members []models.Target
	if req.TargetIDs != nil {
		if members, err = s.resolveTargets(orgID, req.TargetIDs); err != nil {
			return nil, err
		}
		if members == nil {
			members = []models.Target{}
		}
	}

	group.Name = name
	group.Description = req.Description
	if err := s.groupRepo.Update(group, members); err != nil {
		return nil, fmt.Errorf("failed to update target group: %w", err)
	}
	return toGroupResponse(group, int64(len(group.Targets)), true), nil
}

// DeleteGroup removes a group; its targets are kept
func (s *TargetService) DeleteGroup(actor Actor, id uuid.UUID) error {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return err
	}
	if _, err := s.groupRepo.GetByID(orgID, id); err != nil {
		return lookupError(err, apperrors.ErrTargetGroupNotFound, "get target group")
	}
	if err := s.groupRepo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete target group: %w", err)
	}
	return nil
}

// ListTags returns the tags of the actor's organization
func (s *TargetService) ListTags(actor Actor, params ListParams) (*TargetTagListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	tags, total, err := s.tagRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list target tags: %w", err)
	}
	ids := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	counts, err := s.tagRepo.CountTargets(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count tagged targets: %w", err)
	}
	responses := make([]TargetTagResponse, len(tags))
	for i := range tags {
		responses[i] = toTagResponse(&tags[i], counts[tags[i].ID])
	}
	return &TargetTagListResponse{Tags: responses, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// CreateTag adds a tag
func (s *TargetService) CreateTag(actor Actor, req *TargetTagRequest) (*TargetTagResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	name := strings.TrimSpace(req.Name)
	if err := s.checkTagNameFree(orgID, name, uuid.Nil); err != nil {
		return nil, err
	}
	tag := &models.TargetTag{OrganizationID: orgID, Name: name, Color: tagColor(req.Color)}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("failed to create target tag: %w", err)
	}
	resp := toTagResponse(tag, 0)
	return &resp, nil
}

// GetTag retrieves a tag
func (s *TargetService) GetTag(actor Actor, id uuid.UUID) (*TargetTagResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	tag, err := s.tagRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTargetTagNotFound, "get target tag")
	}
	counts, err := s.tagRepo.CountTargets([]uuid.UUID{tag.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count tagged targets: %w", err)
	}
	resp := toTagResponse(tag, counts[tag.ID])
	return &resp, nil
}

// UpdateTag renames or recolours a tag
func (s *TargetService) UpdateTag(actor Actor, id uuid.UUID, req *TargetTagRequest) (*TargetTagResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	tag, err := s.tagRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTargetTagNotFound, "get target tag")
	}
	name := strings.TrimSpace(req.Name)
	if name != tag.Name {
		if err := s.checkTagNameFree(orgID, name, tag.ID); err != nil {
			return nil, err
		}
	}
	tag.Name = name
	if req.Color != "" {
		tag.Color = req.Color
	}
	if err := s.tagRepo.Update(tag); err != nil {
		return nil, fmt.Errorf("failed to update target tag: %w", err)
	}
	return s.GetTag(actor, id)
}

// DeleteTag removes a tag and its assignments
func (s *TargetService) DeleteTag(actor Actor, id uuid.UUID) error {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return err
	}
	if _, err := s.tagRepo.GetByID(orgID, id); err != nil {
		return lookupError(err, apperrors.ErrTargetTagNotFound, "get target tag")
	}
	if err := s.tagRepo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete target tag: %w", err)
	}
	return nil
}

func (s *TargetService) checkTarget(req *TargetRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if req.RiskLevel != "" && !req.RiskLevel.IsValid() {
		return apperrors.NewValidationError("risk_level", "invalid risk level")
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return apperrors.NewValidationError("phone", "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
	}
	return nil
}

func (s *TargetService) checkEmailFree(orgID uuid.UUID, email string, self uuid.UUID) error {
	existing, err := s.repo.GetByEmail(orgID, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing target: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrTargetExists
	}
	return nil
}

func (s *TargetService) checkGroupNameFree(orgID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.groupRepo.GetByName(orgID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing target group: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrTargetGroupExists
	}
	return nil
}

func (s *TargetService) checkTagNameFree(orgID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.tagRepo.GetByName(orgID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing target tag: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrTargetTagExists
	}
	return nil
}

// resolveTags loads the requested tags, rejecting ids from other organizations
func (s *TargetService) resolveTags(orgID uuid.UUID, ids []uuid.UUID) ([]models.TargetTag, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	tags, err := s.tagRepo.GetByIDs(orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get target tags: %w", err)
	}
	found := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		found[i] = t.ID
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperrors.NewBadRequestError("Invalid tag IDs: " + idList(missing))
	}
	return tags, nil
}

// resolveTargets loads the requested targets, rejecting ids from other organizations
func (s *TargetService) resolveTargets(orgID uuid.UUID, ids []uuid.UUID) ([]models.Target, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	targets, err := s.repo.GetByIDs(orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get targets: %w", err)
	}
	found := make([]uuid.UUID, len(targets))
	for i, t := range targets {
		found[i] = t.ID
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperrors.NewBadRequestError("Invalid target IDs: " + idList(missing))
	}
	return targets, nil
}

func (s *TargetService) recordUsage(ctx context.Context, orgID uuid.UUID, delta int) {
	if s.usage == nil {
		return
	}
	if err := s.usage.Increment(ctx, orgID, models.MetricTargetsCount, delta); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to record target usage")
	}
}

func applyTargetRequest(target *models.Target, req *TargetRequest) {
	target.Email = strings.ToLower(strings.TrimSpace(req.Email))
	target.FirstName = strings.TrimSpace(req.FirstName)
	target.LastName = strings.TrimSpace(req.LastName)
	target.Department = strings.TrimSpace(req.Department)
	target.JobTitle = strings.TrimSpace(req.JobTitle)
	target.Phone = req.Phone
	target.RiskLevel = req.RiskLevel
	if target.RiskLevel == "" {
		target.RiskLevel = models.RiskLevelMedium
	}
	target.IsActive = boolValue(req.IsActive, true)
}

// stringifyRecord turns a decoded JSON object into spreadsheet-like cells
func stringifyRecord(record map[string]interface{}) map[string]string {
	out := make(map[string]string, len(record))
	for key, value := range record {
		if value == nil {
			continue
		}
		out[key] = fmt.Sprint(value)
	}
	return out
}

func tagColor(color string) string {
	if color == "" {
		return defaultTagColor
	}
	return color
}

func toTargetResponse(t *models.Target) *TargetResponse {
	tags := make([]TagSummary, len(t.Tags))
	for i, tag := range t.Tags {
		tags[i] = TagSummary{ID: tag.ID, Name: tag.Name, Color: tag.Color}
	}
	return &TargetResponse{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		Email:          t.Email,
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		FullName:       t.FullName(),
		Department:     t.Department,
		JobTitle:       t.JobTitle,
		Phone:          t.Phone,
		RiskLevel:      t.RiskLevel,
		IsActive:       t.IsActive,
		Tags:           tags,
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
	}
}

func toGroupResponse(g *models.TargetGroup, count int64, withTargets bool) *TargetGroupResponse {
	resp := &TargetGroupResponse{
		ID:             g.ID,
		OrganizationID: g.OrganizationID,
		Name:           g.Name,
		Description:    g.Description,
		CreatedBy:      g.CreatedByID,
		TargetCount:    count,
		CreatedAt:      formatTime(g.CreatedAt),
		UpdatedAt:      formatTime(g.UpdatedAt),
	}
	if withTargets {
		resp.Targets = make([]TargetSummary, len(g.Targets))
		for i, t := range g.Targets {
			resp.Targets[i] = TargetSummary{
				ID:         t.ID,
				Email:      t.Email,
				FullName:   t.FullName(),
				Department: t.Department,
				RiskLevel:  t.RiskLevel,
				IsActive:   t.IsActive,
			}
		}
	}
	return resp
}

func toTagResponse(t *models.TargetTag, count int64) TargetTagResponse {
	return TargetTagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Color:       t.Color,
		TargetCount: count,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}
