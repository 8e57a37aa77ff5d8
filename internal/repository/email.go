package repository

import (
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailQueueFilter narrows queue listings to one organization
type EmailQueueFilter struct {
	Page
	OrganizationID uuid.UUID
	Status         models.EmailQueueStatus
	CampaignID     *uuid.UUID
}

// EmailEventFilter narrows event listings to one organization
type EmailEventFilter struct {
	Page
	OrganizationID uuid.UUID
	EventType      models.EmailEventType
	CampaignID     *uuid.UUID
}

// EmailVolume summarises the queue of one organization
type EmailVolume struct {
	Queued  int64 `json:"queued"`
	Sent    int64 `json:"sent"`
	Failed  int64 `json:"failed"`
	Pending int64 `json:"pending"`
}

// SMTPConfigurationRepository handles database operations for SMTP configurations
type SMTPConfigurationRepository struct {
	db *gorm.DB
}

// NewSMTPConfigurationRepository creates a new SMTP configuration repository
func NewSMTPConfigurationRepository(db *gorm.DB) *SMTPConfigurationRepository {
	return &SMTPConfigurationRepository{db: db}
}

// Create inserts a configuration
func (r *SMTPConfigurationRepository) Create(cfg *models.SMTPConfiguration) error {
	return r.db.Create(cfg).Error
}

// GetByID retrieves a configuration of the organization
func (r *SMTPConfigurationRepository) GetByID(orgID, id uuid.UUID) (*models.SMTPConfiguration, error) {
	var cfg models.SMTPConfiguration
	err := r.db.First(&cfg, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// List retrieves the configurations of the organization, ordered by name
func (r *SMTPConfigurationRepository) List(orgID uuid.UUID, page Page) ([]models.SMTPConfiguration, int64, error) {
	query := r.db.Model(&models.SMTPConfiguration{}).Where("organization_id = ?", orgID)
	query = applySearch(query, page.Search, "name", "host", "from_email")

	var cfgs []models.SMTPConfiguration
	total, err := paginate(query, page, "name ASC", &cfgs)
	if err != nil {
		return nil, 0, err
	}
	return cfgs, total, nil
}

// ListActive returns the organization's active configurations in creation order
func (r *SMTPConfigurationRepository) ListActive(orgID uuid.UUID) ([]models.SMTPConfiguration, error) {
	var cfgs []models.SMTPConfiguration
	err := r.db.Where("organization_id = ? AND is_active = ?", orgID, true).
		Order("created_at ASC").
		Find(&cfgs).Error
	return cfgs, err
}

// CountActive counts the organization's active configurations
func (r *SMTPConfigurationRepository) CountActive(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SMTPConfiguration{}).
		Where("organization_id = ? AND is_active = ?", orgID, true).
		Count(&count).Error
	return count, err
}

// Update saves a configuration
func (r *SMTPConfigurationRepository) Update(cfg *models.SMTPConfiguration) error {
	return r.db.Save(cfg).Error
}

// Delete deletes a configuration of the organization
func (r *SMTPConfigurationRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.SMTPConfiguration{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// ResetDailyCount zeroes the counter when it was last reset before today
func (r *SMTPConfigurationRepository) ResetDailyCount(id uuid.UUID, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return r.db.Model(&models.SMTPConfiguration{}).
		Where("id = ? AND (last_reset_date IS NULL OR last_reset_date < ?)", id, today).
		Updates(map[string]interface{}{
			"current_daily_count": 0,
			"last_reset_date":     now,
		}).Error
}

// IncrementDailyCount adds one sent email to the counter
func (r *SMTPConfigurationRepository) IncrementDailyCount(id uuid.UUID) error {
	return r.db.Model(&models.SMTPConfiguration{}).Where("id = ?", id).
		Update("current_daily_count", gorm.Expr("current_daily_count + 1")).Error
}

// EmailQueueRepository handles database operations for the outbound queue
type EmailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository
func NewEmailQueueRepository(db *gorm.DB) *EmailQueueRepository {
	return &EmailQueueRepository{db: db}
}

// List retrieves queue rows of the organization, soonest first
func (r *EmailQueueRepository) List(filter EmailQueueFilter) ([]models.EmailQueue, int64, error) {
	query := r.db.Model(&models.EmailQueue{}).Preload("Target").
		Where("email_queue.campaign_id IN (?)",
			r.db.Model(&models.Campaign{}).Select("id").Where("organization_id = ?", filter.OrganizationID))
	if filter.Status != "" {
		query = query.Where("email_queue.status = ?", filter.Status)
	}
	if filter.CampaignID != nil {
		query = query.Where("email_queue.campaign_id = ?", *filter.CampaignID)
	}

	var rows []models.EmailQueue
	total, err := paginate(query, filter.Page, "email_queue.scheduled_time ASC", &rows)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListDue returns up to limit queued rows whose scheduled time has passed
func (r *EmailQueueRepository) ListDue(now time.Time, limit int) ([]models.EmailQueue, error) {
	var rows []models.EmailQueue
	err := r.db.Where("status = ? AND scheduled_time <= ?", models.EmailQueueQueued, now).
		Order("scheduled_time ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Claim moves a row from queued to sending; false means another worker got it first
func (r *EmailQueueRepository) Claim(id uuid.UUID) (bool, error) {
	res := r.db.Model(&models.EmailQueue{}).
		Where("id = ? AND status = ?", id, models.EmailQueueQueued).
		Updates(map[string]interface{}{"status": models.EmailQueueSending, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Save persists a queue row
func (r *EmailQueueRepository) Save(row *models.EmailQueue) error {
	return r.db.Omit("Campaign", "Target", "CampaignTarget", "SMTPConfiguration").Save(row).Error
}

// CancelQueued cancels every still-queued row of a campaign
func (r *EmailQueueRepository) CancelQueued(campaignID uuid.UUID) (int64, error) {
	res := r.db.Model(&models.EmailQueue{}).
		Where("campaign_id = ? AND status = ?", campaignID, models.EmailQueueQueued).
		Updates(map[string]interface{}{"status": models.EmailQueueCancelled, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// Volume summarises the organization's queue
func (r *EmailQueueRepository) Volume(orgID uuid.UUID, now time.Time) (*EmailVolume, error) {
	scoped := func() *gorm.DB {
		return r.db.Model(&models.EmailQueue{}).Where("campaign_id IN (?)",
			r.db.Model(&models.Campaign{}).Select("id").Where("organization_id = ?", orgID))
	}
	v := &EmailVolume{}
	if err := scoped().Where("status = ?", models.EmailQueueQueued).Count(&v.Queued).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", models.EmailQueueSent).Count(&v.Sent).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", models.EmailQueueFailed).Count(&v.Failed).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ? AND scheduled_time > ?", models.EmailQueueQueued, now).Count(&v.Pending).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// CountSentSince counts the organization's emails sent at or after since
func (r *EmailQueueRepository) CountSentSince(orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmailQueue{}).
		Where("campaign_id IN (?)", r.db.Model(&models.Campaign{}).Select("id").Where("organization_id = ?", orgID)).
		Where("status = ? AND sent_time >= ?", models.EmailQueueSent, since).
		Count(&count).Error
	return count, err
}

// EmailEventRepository handles database operations for tracking events
type EmailEventRepository struct {
	db *gorm.DB
}

// NewEmailEventRepository creates a new email event repository
func NewEmailEventRepository(db *gorm.DB) *EmailEventRepository {
	return &EmailEventRepository{db: db}
}

// Create inserts an event
func (r *EmailEventRepository) Create(event *models.EmailEvent) error {
	return r.db.Omit("Campaign", "Target").Create(event).Error
}

// List retrieves events of the organization, newest first
func (r *EmailEventRepository) List(filter EmailEventFilter) ([]models.EmailEvent, int64, error) {
	query := r.db.Model(&models.EmailEvent{}).
		Joins("Target").
		Where("email_events.campaign_id IN (?)",
			r.db.Model(&models.Campaign{}).Select("id").Where("organization_id = ?", filter.OrganizationID))
	if filter.EventType != "" {
		query = query.Where("email_events.event_type = ?", filter.EventType)
	}
	if filter.CampaignID != nil {
		query = query.Where("email_events.campaign_id = ?", *filter.CampaignID)
	}
	query = applySearch(query, filter.Search, `"Target".email`, "email_events.ip_address")

	var events []models.EmailEvent
	total, err := paginate(query, filter.Page, "email_events.timestamp DESC", &events)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// CountByType counts the organization's events per type
func (r *EmailEventRepository) CountByType(orgID uuid.UUID) (map[string]int64, error) {
	var rows []countRow
	err := r.db.Model(&models.EmailEvent{}).
		Select("event_type AS label, COUNT(*) AS count").
		Where("campaign_id IN (?)", r.db.Model(&models.Campaign{}).Select("id").Where("organization_id = ?", orgID)).
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// CountSince counts the organization's events at or after since
func (r *EmailEventRepository) CountSince(orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmailEvent{}).
		Where("campaign_id IN (?)", r.db.Model(&models.Campaign{}).Select("id").Where("organization_id = ?", orgID)).
		Where("timestamp >= ?", since).
		Count(&count).Error
	return count, err
}

// LatestForCampaign returns the time of the campaign's newest event, or nil when it has none
func (r *EmailEventRepository) LatestForCampaign(campaignID uuid.UUID) (*time.Time, error) {
	var event models.EmailEvent
	err := r.db.Where("campaign_id = ?", campaignID).Order("timestamp DESC").Limit(1).Find(&event).Error
	if err != nil {
		return nil, err
	}
	if event.ID == uuid.Nil {
		return nil, nil
	}
	return &event.Timestamp, nil
}

// CountByCampaign counts a campaign's events of one type
func (r *EmailEventRepository) CountByCampaign(campaignID uuid.UUID, eventType models.EmailEventType) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmailEvent{}).
		Where("campaign_id = ? AND event_type = ?", campaignID, eventType).
		Count(&count).Error
	return count, err
}
