package repository

import (
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationFilter narrows a user's notifications
type NotificationFilter struct {
	Page
	RecipientID      uuid.UUID
	NotificationType models.NotificationType
	Priority         models.NotificationPriority
	IsRead           *bool
	Now              time.Time
}

// NotificationStatistics aggregates a user's notifications
type NotificationStatistics struct {
	Total      int64
	Unread     int64
	ByType     map[string]int64
	ByPriority map[string]int64
	Recent     int64
}

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification
func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Omit("Recipient", "Campaign", "Target").Create(n).Error
}

// GetByID retrieves a notification addressed to recipientID
func (r *NotificationRepository) GetByID(recipientID, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	err := r.db.First(&n, "recipient_id = ? AND id = ?", recipientID, id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// visible restricts to a recipient's notifications that have not expired
func (r *NotificationRepository) visible(recipientID uuid.UUID, now time.Time) *gorm.DB {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ?", recipientID).
		Where("expires_at IS NULL OR expires_at > ?", now)
}

// List retrieves a recipient's unexpired notifications, newest first
func (r *NotificationRepository) List(filter NotificationFilter) ([]models.Notification, int64, error) {
	query := r.visible(filter.RecipientID, filter.Now)
	if filter.NotificationType != "" {
		query = query.Where("notification_type = ?", filter.NotificationType)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	query = applySearch(query, filter.Search, "title", "message")

	var items []models.Notification
	total, err := paginate(query, filter.Page, "created_at DESC", &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update saves a notification
func (r *NotificationRepository) Update(n *models.Notification) error {
	return r.db.Omit("Recipient", "Campaign", "Target").Save(n).Error
}

// MarkAllRead marks every unread notification of the recipient as read and returns how many changed
func (r *NotificationRepository) MarkAllRead(recipientID uuid.UUID, now time.Time) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now, "updated_at": now})
	return res.RowsAffected, res.Error
}

// MarkEmailSent flags that the notification was also delivered by email
func (r *NotificationRepository) MarkEmailSent(id uuid.UUID) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_email_sent", true).Error
}

// Statistics aggregates the recipient's unexpired notifications
func (r *NotificationRepository) Statistics(recipientID uuid.UUID, now, recentSince time.Time) (*NotificationStatistics, error) {
	stats := &NotificationStatistics{ByType: map[string]int64{}, ByPriority: map[string]int64{}}
	if err := r.visible(recipientID, now).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.visible(recipientID, now).Where("is_read = ?", false).Count(&stats.Unread).Error; err != nil {
		return nil, err
	}
	if err := r.visible(recipientID, now).Where("created_at >= ?", recentSince).Count(&stats.Recent).Error; err != nil {
		return nil, err
	}

	var byType []countRow
	if err := r.visible(recipientID, now).
		Select("notification_type AS label, COUNT(*) AS count").
		Group("notification_type").
		Scan(&byType).Error; err != nil {
		return nil, err
	}
	stats.ByType = toCountMap(byType)

	var byPriority []countRow
	if err := r.visible(recipientID, now).
		Select("priority AS label, COUNT(*) AS count").
		Group("priority").
		Scan(&byPriority).Error; err != nil {
		return nil, err
	}
	stats.ByPriority = toCountMap(byPriority)
	return stats, nil
}

// NotificationPreferenceRepository handles database operations for notification preferences
type NotificationPreferenceRepository struct {
	db *gorm.DB
}

// NewNotificationPreferenceRepository creates a new notification preference repository
func NewNotificationPreferenceRepository(db *gorm.DB) *NotificationPreferenceRepository {
	return &NotificationPreferenceRepository{db: db}
}

// GetOrCreate returns the user's preferences, creating defaults on first access
func (r *NotificationPreferenceRepository) GetOrCreate(userID uuid.UUID) (*models.NotificationPreference, error) {
	pref := models.DefaultNotificationPreference(userID)
	err := r.db.Where(models.NotificationPreference{UserID: userID}).
		Attrs(pref).
		FirstOrCreate(pref).Error
	if err != nil {
		return nil, err
	}
	return pref, nil
}

// Update saves preferences
func (r *NotificationPreferenceRepository) Update(pref *models.NotificationPreference) error {
	return r.db.Omit("User").Save(pref).Error
}

// AlertRuleRepository handles database operations for alert rules
type AlertRuleRepository struct {
	db *gorm.DB
}

// NewAlertRuleRepository creates a new alert rule repository
func NewAlertRuleRepository(db *gorm.DB) *AlertRuleRepository {
	return &AlertRuleRepository{db: db}
}

// Create inserts a rule with its recipients
func (r *AlertRuleRepository) Create(rule *models.AlertRule) error {
	return r.db.Omit("NotifyUsers.*").Create(rule).Error
}

// GetByID retrieves a rule of the organization with its recipients
func (r *AlertRuleRepository) GetByID(orgID, id uuid.UUID) (*models.AlertRule, error) {
	var rule models.AlertRule
	err := r.db.Preload("NotifyUsers").
		First(&rule, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// List retrieves the organization's rules, ordered by name
func (r *AlertRuleRepository) List(orgID uuid.UUID, page Page) ([]models.AlertRule, int64, error) {
	query := r.db.Model(&models.AlertRule{}).Preload("NotifyUsers").Where("organization_id = ?", orgID)
	query = applySearch(query, page.Search, "name")

	var rules []models.AlertRule
	total, err := paginate(query, page, "name ASC", &rules)
	if err != nil {
		return nil, 0, err
	}
	return rules, total, nil
}

// ListActiveByTrigger returns the organization's active rules for any of triggers
func (r *AlertRuleRepository) ListActiveByTrigger(orgID uuid.UUID, triggers []models.AlertTriggerType) ([]models.AlertRule, error) {
	var rules []models.AlertRule
	err := r.db.Preload("NotifyUsers").
		Where("organization_id = ? AND is_active = ? AND trigger_type IN ?", orgID, true, triggers).
		Find(&rules).Error
	return rules, err
}

// Update saves a rule; when users is non-nil the recipients are replaced
func (r *AlertRuleRepository) Update(rule *models.AlertRule, users []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("NotifyUsers").Save(rule).Error; err != nil {
			return err
		}
		if users == nil {
			return nil
		}
		if err := tx.Model(rule).Association("NotifyUsers").Replace(users); err != nil {
			return err
		}
		rule.NotifyUsers = users
		return nil
	})
}

// Delete deletes a rule of the organization
func (r *AlertRuleRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.AlertRule{}, "organization_id = ? AND id = ?", orgID, id).Error
}
