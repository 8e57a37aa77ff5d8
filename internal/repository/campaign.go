package repository

import (
	"errors"
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TemplateFilter narrows email template listings
type TemplateFilter struct {
	Page
	OrganizationID uuid.UUID
	TemplateType   models.TemplateType
	Difficulty     models.Difficulty
	IsDefault      *bool
}

// LandingPageFilter narrows landing page listings
type LandingPageFilter struct {
	Page
	OrganizationID uuid.UUID
	PageType       models.PageType
}

// CampaignFilter narrows campaign listings
type CampaignFilter struct {
	Page
	OrganizationID  uuid.UUID
	Status          models.CampaignStatus
	EmailTemplateID *uuid.UUID
}

// CampaignTargetFilter narrows the recipients of one campaign
type CampaignTargetFilter struct {
	Page
	CampaignID uuid.UUID
	Status     models.CampaignTargetStatus
}

// CampaignCounts are the tracking totals of one campaign
type CampaignCounts struct {
	TotalTargets  int64 `json:"total_targets"`
	EmailsSent    int64 `json:"emails_sent"`
	EmailsOpened  int64 `json:"emails_opened"`
	LinksClicked  int64 `json:"links_clicked"`
	DataSubmitted int64 `json:"data_submitted"`
}

// DepartmentOutcome is the tracking totals of one department within a campaign
type DepartmentOutcome struct {
	Department string
	Employees  int64
	Opened     int64
	Clicked    int64
	Submitted  int64
	Reported   int64
}

// EmailTemplateRepository handles database operations for email templates
type EmailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *gorm.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

// Create inserts a template
func (r *EmailTemplateRepository) Create(template *models.EmailTemplate) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a template of the organization
func (r *EmailTemplateRepository) GetByID(orgID, id uuid.UUID) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	err := r.db.First(&template, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// List retrieves templates matching the filter, newest first
func (r *EmailTemplateRepository) List(filter TemplateFilter) ([]models.EmailTemplate, int64, error) {
	query := r.db.Model(&models.EmailTemplate{}).Where("organization_id = ?", filter.OrganizationID)
	if filter.TemplateType != "" {
		query = query.Where("template_type = ?", filter.TemplateType)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.IsDefault != nil {
		query = query.Where("is_default = ?", *filter.IsDefault)
	}
	query = applySearch(query, filter.Search, "name", "subject")

	var templates []models.EmailTemplate
	total, err := paginate(query, filter.Page, "created_at DESC", &templates)
	if err != nil {
		return nil, 0, err
	}
	return templates, total, nil
}

// Update saves a template
func (r *EmailTemplateRepository) Update(template *models.EmailTemplate) error {
	return r.db.Save(template).Error
}

// Delete deletes a template of the organization
func (r *EmailTemplateRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.EmailTemplate{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// CountByType counts the organization's templates per template type
func (r *EmailTemplateRepository) CountByType(orgID uuid.UUID) (map[string]int64, error) {
	var rows []countRow
	err := r.db.Model(&models.EmailTemplate{}).
		Select("template_type AS label, COUNT(*) AS count").
		Where("organization_id = ?", orgID).
		Group("template_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// CountCampaigns returns how many campaigns use each template
func (r *EmailTemplateRepository) CountCampaigns(templateIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countJoin(r.db, "campaigns", "email_template_id", templateIDs)
}

// LandingPageRepository handles database operations for landing pages
type LandingPageRepository struct {
	db *gorm.DB
}

// NewLandingPageRepository creates a new landing page repository
func NewLandingPageRepository(db *gorm.DB) *LandingPageRepository {
	return &LandingPageRepository{db: db}
}

// Create inserts a landing page
func (r *LandingPageRepository) Create(page *models.LandingPage) error {
	return r.db.Create(page).Error
}

// GetByID retrieves a landing page of the organization
func (r *LandingPageRepository) GetByID(orgID, id uuid.UUID) (*models.LandingPage, error) {
	var page models.LandingPage
	err := r.db.First(&page, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// List retrieves landing pages matching the filter, newest first
func (r *LandingPageRepository) List(filter LandingPageFilter) ([]models.LandingPage, int64, error) {
	query := r.db.Model(&models.LandingPage{}).Where("organization_id = ?", filter.OrganizationID)
	if filter.PageType != "" {
		query = query.Where("page_type = ?", filter.PageType)
	}
	query = applySearch(query, filter.Search, "name")

	var pages []models.LandingPage
	total, err := paginate(query, filter.Page, "created_at DESC", &pages)
	if err != nil {
		return nil, 0, err
	}
	return pages, total, nil
}

// Update saves a landing page
func (r *LandingPageRepository) Update(page *models.LandingPage) error {
	return r.db.Save(page).Error
}

// Delete deletes a landing page of the organization
func (r *LandingPageRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.LandingPage{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// CountByType counts the organization's landing pages per page type
func (r *LandingPageRepository) CountByType(orgID uuid.UUID) (map[string]int64, error) {
	var rows []countRow
	err := r.db.Model(&models.LandingPage{}).
		Select("page_type AS label, COUNT(*) AS count").
		Where("organization_id = ?", orgID).
		Group("page_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// CampaignRepository handles database operations for campaigns
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create inserts the campaign with its audience and fans it out to campaign targets, atomically
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("TargetGroups.*", "IndividualTargets.*", "EmailTemplate", "LandingPage").
			Create(campaign).Error; err != nil {
			return err
		}
		_, err := fanOut(tx, campaign.ID)
		return err
	})
}

// GetByID retrieves a campaign of the organization with its audience and content
func (r *CampaignRepository) GetByID(orgID, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("EmailTemplate").Preload("LandingPage").
		Preload("TargetGroups").Preload("IndividualTargets").
		First(&campaign, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetForDispatch retrieves any campaign by ID with the content needed to send it
func (r *CampaignRepository) GetForDispatch(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("EmailTemplate").Preload("LandingPage").First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// List retrieves campaigns matching the filter, newest first
func (r *CampaignRepository) List(filter CampaignFilter) ([]models.Campaign, int64, error) {
	query := r.db.Model(&models.Campaign{}).Preload("EmailTemplate").Preload("LandingPage").
		Where("organization_id = ?", filter.OrganizationID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmailTemplateID != nil {
		query = query.Where("email_template_id = ?", *filter.EmailTemplateID)
	}
	query = applySearch(query, filter.Search, "name", "description")

	var campaigns []models.Campaign
	total, err := paginate(query, filter.Page, "created_at DESC", &campaigns)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// Update saves the campaign. When groups or targets is non-nil that audience is replaced,
// and when rebuild is set the pending recipients are recomputed from the new audience.
func (r *CampaignRepository) Update(campaign *models.Campaign, groups []models.TargetGroup, targets []models.Target, rebuild bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("TargetGroups", "IndividualTargets", "EmailTemplate", "LandingPage").
			Save(campaign).Error; err != nil {
			return err
		}
		if groups != nil {
			if err := tx.Model(campaign).Association("TargetGroups").Replace(groups); err != nil {
				return err
			}
			campaign.TargetGroups = groups
		}
		if targets != nil {
			if err := tx.Model(campaign).Association("IndividualTargets").Replace(targets); err != nil {
				return err
			}
			campaign.IndividualTargets = targets
		}
		if !rebuild {
			return nil
		}
		if err := tx.Where("campaign_id = ?", campaign.ID).Delete(&models.CampaignTarget{}).Error; err != nil {
			return err
		}
		_, err := fanOut(tx, campaign.ID)
		return err
	})
}

// Delete deletes a campaign of the organization
func (r *CampaignRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.Campaign{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// Transition moves a campaign to status `to` only if it is currently in one of `from`.
// It reports whether this call won the update.
func (r *CampaignRepository) Transition(id uuid.UUID, from []models.CampaignStatus, to models.CampaignStatus, extra map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	for k, v := range extra {
		updates[k] = v
	}
	res := r.db.Model(&models.Campaign{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ListDueScheduled returns scheduled campaigns whose start time has passed
func (r *CampaignRepository) ListDueScheduled(now time.Time) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("status = ? AND scheduled_start IS NOT NULL AND scheduled_start <= ?",
		models.CampaignStatusScheduled, now).
		Order("scheduled_start ASC").
		Find(&campaigns).Error
	return campaigns, err
}

// ListByStatus returns every campaign in the given status across organizations
func (r *CampaignRepository) ListByStatus(status models.CampaignStatus) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("status = ?", status).Order("created_at ASC").Find(&campaigns).Error
	return campaigns, err
}

// CountByStatus counts the organization's campaigns per status
func (r *CampaignRepository) CountByStatus(orgID uuid.UUID) (map[string]int64, error) {
	var rows []countRow
	err := r.db.Model(&models.Campaign{}).
		Select("status AS label, COUNT(*) AS count").
		Where("organization_id = ?", orgID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// CountCreatedSince counts the organization's campaigns created at or after since
func (r *CampaignRepository) CountCreatedSince(orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).
		Where("organization_id = ? AND created_at >= ?", orgID, since).
		Count(&count).Error
	return count, err
}

// PreviousCompleted returns the organization's most recent completed campaign ended before t, excluding one id
func (r *CampaignRepository) PreviousCompleted(orgID, excludeID uuid.UUID, before time.Time) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Where("organization_id = ? AND id <> ? AND status = ? AND end_date IS NOT NULL AND end_date < ?",
		orgID, excludeID, models.CampaignStatusCompleted, before).
		Order("end_date DESC").
		First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// fanOut creates one pending CampaignTarget per active group member and individual target.
// Existing (campaign, target) pairs are left untouched.
func fanOut(tx *gorm.DB, campaignID uuid.UUID) (int64, error) {
	var fromGroups []uuid.UUID
	err := tx.Table("target_group_members AS m").
		Joins("JOIN campaign_target_groups AS cg ON cg.target_group_id = m.target_group_id").
		Joins("JOIN targets AS t ON t.id = m.target_id").
		Where("cg.campaign_id = ? AND t.is_active = ?", campaignID, true).
		Distinct().
		Pluck("m.target_id", &fromGroups).Error
	if err != nil {
		return 0, err
	}

	var individual []uuid.UUID
	if err := tx.Table("campaign_individual_targets").
		Where("campaign_id = ?", campaignID).
		Pluck("target_id", &individual).Error; err != nil {
		return 0, err
	}

	seen := make(map[uuid.UUID]struct{}, len(fromGroups)+len(individual))
	rows := make([]models.CampaignTarget, 0, len(fromGroups)+len(individual))
	for _, id := range append(fromGroups, individual...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, models.CampaignTarget{
			CampaignID:    campaignID,
			TargetID:      id,
			Status:        models.CampaignTargetPending,
			TrackingToken: NewTrackingToken(),
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "target_id"}},
		DoNothing: true,
	}).CreateInBatches(&rows, 200)
	return res.RowsAffected, res.Error
}

// NewTrackingToken returns an unguessable token for tracking links
func NewTrackingToken() string {
	return uuid.NewString()
}

// CampaignTargetRepository handles database operations for campaign recipients
type CampaignTargetRepository struct {
	db *gorm.DB
}

// NewCampaignTargetRepository creates a new campaign target repository
func NewCampaignTargetRepository(db *gorm.DB) *CampaignTargetRepository {
	return &CampaignTargetRepository{db: db}
}

// FanOut adds any missing recipients to a campaign and returns how many were created
func (r *CampaignTargetRepository) FanOut(campaignID uuid.UUID) (int64, error) {
	var created int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		n, err := fanOut(tx, campaignID)
		created = n
		return err
	})
	return created, err
}

// GetByToken retrieves a recipient by tracking token with its target and campaign
func (r *CampaignTargetRepository) GetByToken(token string) (*models.CampaignTarget, error) {
	var ct models.CampaignTarget
	err := r.db.Preload("Target").Preload("Campaign").Preload("Campaign.LandingPage").
		First(&ct, "tracking_token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// GetByID retrieves a recipient by ID with its target
func (r *CampaignTargetRepository) GetByID(id uuid.UUID) (*models.CampaignTarget, error) {
	var ct models.CampaignTarget
	err := r.db.Preload("Target").First(&ct, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// List retrieves the recipients of a campaign ordered by target last name
func (r *CampaignTargetRepository) List(filter CampaignTargetFilter) ([]models.CampaignTarget, int64, error) {
	query := r.db.Model(&models.CampaignTarget{}).
		Joins("Target").
		Where("campaign_targets.campaign_id = ?", filter.CampaignID)
	if filter.Status != "" {
		query = query.Where("campaign_targets.status = ?", filter.Status)
	}
	query = applySearch(query, filter.Search, `"Target".first_name`, `"Target".last_name`, `"Target".email`)

	var rows []models.CampaignTarget
	total, err := paginate(query, filter.Page, `"Target".last_name ASC, "Target".first_name ASC`, &rows)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListPending returns up to limit pending recipients of a campaign
func (r *CampaignTargetRepository) ListPending(campaignID uuid.UUID, limit int) ([]models.CampaignTarget, error) {
	var rows []models.CampaignTarget
	err := r.db.Where("campaign_id = ? AND status = ?", campaignID, models.CampaignTargetPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// CountPending returns how many recipients of a campaign are still pending
func (r *CampaignTargetRepository) CountPending(campaignID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CampaignTarget{}).
		Where("campaign_id = ? AND status = ?", campaignID, models.CampaignTargetPending).
		Count(&count).Error
	return count, err
}

// QueueEmails claims each row's recipient (pending -> sent) and inserts the queue row
// only for claims that won. Rows whose recipient another writer already took are skipped.
// Returns how many rows were queued.
func (r *CampaignTargetRepository) QueueEmails(rows []models.EmailQueue, sentAt time.Time) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	queued := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		queued = 0
		for i := range rows {
			res := tx.Model(&models.CampaignTarget{}).
				Where("id = ? AND status = ?", rows[i].CampaignTargetID, models.CampaignTargetPending).
				Updates(map[string]interface{}{
					"status":        models.CampaignTargetSent,
					"email_sent_at": sentAt,
					"updated_at":    sentAt,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				continue
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
			queued++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return queued, nil
}

// LastQueuedTime returns the latest scheduled time among a campaign's still-queued
// emails, nil when nothing is queued
func (r *CampaignTargetRepository) LastQueuedTime(campaignID uuid.UUID) (*time.Time, error) {
	var row models.EmailQueue
	err := r.db.Select("scheduled_time").
		Where("campaign_id = ? AND status = ?", campaignID, models.EmailQueueQueued).
		Order("scheduled_time DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.ScheduledTime, nil
}

// Save persists a recipient's tracking state
func (r *CampaignTargetRepository) Save(ct *models.CampaignTarget) error {
	return r.db.Omit("Target", "Campaign").Save(ct).Error
}

// MarkFailed sets a recipient to failed
func (r *CampaignTargetRepository) MarkFailed(id uuid.UUID) error {
	return r.db.Model(&models.CampaignTarget{}).Where("id = ?", id).
		Update("status", models.CampaignTargetFailed).Error
}

// StatusCounts counts a campaign's recipients per status
func (r *CampaignTargetRepository) StatusCounts(campaignID uuid.UUID) (map[string]int64, error) {
	var rows []countRow
	err := r.db.Model(&models.CampaignTarget{}).
		Select("status AS label, COUNT(*) AS count").
		Where("campaign_id = ?", campaignID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(models.AllCampaignTargetStatuses))
	for _, s := range models.AllCampaignTargetStatuses {
		out[string(s)] = 0
	}
	for k, v := range toCountMap(rows) {
		out[k] = v
	}
	return out, nil
}

// Counts returns the tracking totals of each campaign, derived from recorded timestamps
func (r *CampaignTargetRepository) Counts(campaignIDs []uuid.UUID) (map[uuid.UUID]CampaignCounts, error) {
	out := make(map[uuid.UUID]CampaignCounts, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		CampaignID    uuid.UUID
		TotalTargets  int64
		EmailsSent    int64
		EmailsOpened  int64
		LinksClicked  int64
		DataSubmitted int64
	}
	err := r.db.Model(&models.CampaignTarget{}).
		Select(`campaign_id,
			COUNT(*) AS total_targets,
			COUNT(email_sent_at) AS emails_sent,
			COUNT(email_opened_at) AS emails_opened,
			COUNT(link_clicked_at) AS links_clicked,
			COUNT(data_submitted_at) AS data_submitted`).
		Where("campaign_id IN ?", campaignIDs).
		Group("campaign_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.CampaignID] = CampaignCounts{
			TotalTargets:  row.TotalTargets,
			EmailsSent:    row.EmailsSent,
			EmailsOpened:  row.EmailsOpened,
			LinksClicked:  row.LinksClicked,
			DataSubmitted: row.DataSubmitted,
		}
	}
	return out, nil
}

// DepartmentOutcomes buckets a campaign's recipients by target department
func (r *CampaignTargetRepository) DepartmentOutcomes(campaignID uuid.UUID) ([]DepartmentOutcome, error) {
	var rows []DepartmentOutcome
	err := r.db.Table("campaign_targets AS ct").
		Select(`COALESCE(NULLIF(t.department, ''), 'Unassigned') AS department,
			COUNT(*) AS employees,
			COUNT(ct.email_opened_at) AS opened,
			COUNT(ct.link_clicked_at) AS clicked,
			COUNT(ct.data_submitted_at) AS submitted,
			COUNT(ct.reported_at) AS reported`).
		Joins("JOIN targets AS t ON t.id = ct.target_id").
		Where("ct.campaign_id = ?", campaignID).
		Group("COALESCE(NULLIF(t.department, ''), 'Unassigned')").
		Order("department ASC").
		Scan(&rows).Error
	return rows, err
}

// CountForOrganization counts the recipients across all of an organization's campaigns
func (r *CampaignTargetRepository) CountForOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CampaignTarget{}).
		Joins("JOIN campaigns ON campaigns.id = campaign_targets.campaign_id").
		Where("campaigns.organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}
