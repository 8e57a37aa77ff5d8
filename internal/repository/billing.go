package repository

import (
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceFilter narrows invoice listings
type InvoiceFilter struct {
	Page
	OrganizationID uuid.UUID
	Status         models.InvoiceStatus
}

// UsageMetricFilter narrows usage metric listings
type UsageMetricFilter struct {
	Page
	OrganizationID uuid.UUID
	MetricType     models.MetricType
	WarningSent    *bool
	LimitExceeded  *bool
}

// InvoiceSummary totals an organization's invoices
type InvoiceSummary struct {
	TotalInvoices     int64           `json:"total_invoices"`
	PaidInvoices      int64           `json:"paid_invoices"`
	OverdueInvoices   int64           `json:"overdue_invoices"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
}

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts a subscription
func (r *SubscriptionRepository) Create(sub *models.Subscription) error {
	return r.db.Omit("Organization").Create(sub).Error
}

// GetByOrganization retrieves the subscription of an organization
func (r *SubscriptionRepository) GetByOrganization(orgID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "organization_id = ?", orgID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update saves a subscription
func (r *SubscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Omit("Organization").Save(sub).Error
}

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create inserts an invoice
func (r *InvoiceRepository) Create(inv *models.Invoice) error {
	return r.db.Omit("Organization", "Subscription").Create(inv).Error
}

// GetByID retrieves an invoice of the organization
func (r *InvoiceRepository) GetByID(orgID, id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.First(&inv, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByNumber retrieves an invoice by its number
func (r *InvoiceRepository) GetByNumber(number string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.First(&inv, "invoice_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// List retrieves invoices matching the filter, newest first
func (r *InvoiceRepository) List(filter InvoiceFilter) ([]models.Invoice, int64, error) {
	query := r.db.Model(&models.Invoice{}).Where("organization_id = ?", filter.OrganizationID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = applySearch(query, filter.Search, "invoice_number", "notes")

	var invoices []models.Invoice
	total, err := paginate(query, filter.Page, "issue_date DESC", &invoices)
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// Recent returns the organization's newest invoices
func (r *InvoiceRepository) Recent(orgID uuid.UUID, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("organization_id = ?", orgID).Order("issue_date DESC").Limit(limit).Find(&invoices).Error
	return invoices, err
}

// Update saves an invoice
func (r *InvoiceRepository) Update(inv *models.Invoice) error {
	return r.db.Omit("Organization", "Subscription").Save(inv).Error
}

// Summary totals the organization's invoices; outstanding covers sent and overdue invoices
func (r *InvoiceRepository) Summary(orgID uuid.UUID) (*InvoiceSummary, error) {
	scoped := func() *gorm.DB {
		return r.db.Model(&models.Invoice{}).Where("organization_id = ?", orgID)
	}
	s := &InvoiceSummary{OutstandingAmount: decimal.Zero}
	if err := scoped().Count(&s.TotalInvoices).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", models.InvoicePaid).Count(&s.PaidInvoices).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", models.InvoiceOverdue).Count(&s.OverdueInvoices).Error; err != nil {
		return nil, err
	}

	var outstanding []decimal.Decimal
	if err := scoped().
		Where("status IN ?", []models.InvoiceStatus{models.InvoiceSent, models.InvoiceOverdue}).
		Pluck("total_amount", &outstanding).Error; err != nil {
		return nil, err
	}
	for _, amount := range outstanding {
		s.OutstandingAmount = s.OutstandingAmount.Add(amount)
	}
	return s, nil
}

// UsageMetricRepository handles database operations for usage metrics
type UsageMetricRepository struct {
	db *gorm.DB
}

// NewUsageMetricRepository creates a new usage metric repository
func NewUsageMetricRepository(db *gorm.DB) *UsageMetricRepository {
	return &UsageMetricRepository{db: db}
}

// Get retrieves one metric of an organization
func (r *UsageMetricRepository) Get(orgID uuid.UUID, metric models.MetricType) (*models.UsageMetric, error) {
	var m models.UsageMetric
	err := r.db.First(&m, "organization_id = ? AND metric_type = ?", orgID, metric).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves metrics matching the filter
func (r *UsageMetricRepository) List(filter UsageMetricFilter) ([]models.UsageMetric, int64, error) {
	query := r.db.Model(&models.UsageMetric{}).Where("organization_id = ?", filter.OrganizationID)
	if filter.MetricType != "" {
		query = query.Where("metric_type = ?", filter.MetricType)
	}
	if filter.WarningSent != nil {
		query = query.Where("warning_sent = ?", *filter.WarningSent)
	}
	if filter.LimitExceeded != nil {
		query = query.Where("limit_exceeded = ?", *filter.LimitExceeded)
	}

	var metrics []models.UsageMetric
	total, err := paginate(query, filter.Page, "metric_type ASC", &metrics)
	if err != nil {
		return nil, 0, err
	}
	return metrics, total, nil
}

// SetLimits creates any missing metrics and updates limit values, leaving current values alone
func (r *UsageMetricRepository) SetLimits(orgID uuid.UUID, limits map[models.MetricType]int, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for metric, limit := range limits {
			row := models.UsageMetric{
				OrganizationID:   orgID,
				MetricType:       metric,
				LimitValue:       limit,
				MeasurementDate:  now,
				WarningThreshold: 0.8,
			}
			err := tx.Omit("Organization").Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "organization_id"}, {Name: "metric_type"}},
				DoUpdates: clause.AssignmentColumns([]string{"limit_value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Increment adds delta to a metric, creating it when missing, and returns the updated row
func (r *UsageMetricRepository) Increment(orgID uuid.UUID, metric models.MetricType, delta int, now time.Time) (*models.UsageMetric, error) {
	var out models.UsageMetric
	err := r.db.Transaction(func(tx *gorm.DB) error {
		row := models.UsageMetric{
			OrganizationID:   orgID,
			MetricType:       metric,
			CurrentValue:     delta,
			MeasurementDate:  now,
			WarningThreshold: 0.8,
		}
		err := tx.Omit("Organization").Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "organization_id"}, {Name: "metric_type"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"current_value":    gorm.Expr("usage_metrics.current_value + ?", delta),
				"measurement_date": now,
				"updated_at":       now,
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
		return tx.First(&out, "organization_id = ? AND metric_type = ?", orgID, metric).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update saves a metric
func (r *UsageMetricRepository) Update(m *models.UsageMetric) error {
	return r.db.Omit("Organization").Save(m).Error
}

// PaymentMethodRepository handles database operations for payment methods
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// Create inserts a payment method; a default one clears the organization's other defaults
func (r *PaymentMethodRepository) Create(pm *models.PaymentMethod) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if pm.IsDefault {
			if err := clearDefaults(tx, pm.OrganizationID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Omit("Organization").Create(pm).Error
	})
}

// GetByID retrieves a payment method of the organization
func (r *PaymentMethodRepository) GetByID(orgID, id uuid.UUID) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := r.db.First(&pm, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// List retrieves the organization's payment methods, default first then newest
func (r *PaymentMethodRepository) List(orgID uuid.UUID, page Page) ([]models.PaymentMethod, int64, error) {
	query := r.db.Model(&models.PaymentMethod{}).Where("organization_id = ?", orgID)
	query = applySearch(query, page.Search, "card_brand", "card_last_four")

	var methods []models.PaymentMethod
	total, err := paginate(query, page, "is_default DESC, created_at DESC", &methods)
	if err != nil {
		return nil, 0, err
	}
	return methods, total, nil
}

// Update saves a payment method; a default one clears the organization's other defaults
func (r *PaymentMethodRepository) Update(pm *models.PaymentMethod) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if pm.IsDefault {
			if err := clearDefaults(tx, pm.OrganizationID, pm.ID); err != nil {
				return err
			}
		}
		return tx.Omit("Organization").Save(pm).Error
	})
}

// Delete deletes a payment method of the organization
func (r *PaymentMethodRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.PaymentMethod{}, "organization_id = ? AND id = ?", orgID, id).Error
}

func clearDefaults(tx *gorm.DB, orgID, exceptID uuid.UUID) error {
	return tx.Model(&models.PaymentMethod{}).
		Where("organization_id = ? AND id <> ? AND is_default = ?", orgID, exceptID, true).
		Update("is_default", false).Error
}
