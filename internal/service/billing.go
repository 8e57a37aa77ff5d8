package service

import (
	"context"
	"fmt"
	"time"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/payments"
	"phishing-simulator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingService handles subscriptions, invoices, usage and payment methods
type BillingService struct {
	subRepo     repository.SubscriptionRepositoryInterface
	invoiceRepo repository.InvoiceRepositoryInterface
	usageRepo   repository.UsageMetricRepositoryInterface
	pmRepo      repository.PaymentMethodRepositoryInterface
	orgRepo     repository.OrganizationRepositoryInterface
	plans       *PlanCatalog
	gateway     payments.Gateway
	notifier    Notifier
	validator   *validator.Validate
	now         func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(
	subRepo repository.SubscriptionRepositoryInterface,
	invoiceRepo repository.InvoiceRepositoryInterface,
	usageRepo repository.UsageMetricRepositoryInterface,
	pmRepo repository.PaymentMethodRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	plans *PlanCatalog,
	gateway payments.Gateway,
	notifier Notifier,
	validator *validator.Validate,
) *BillingService {
	if gateway == nil {
		gateway = payments.DisabledGateway{}
	}
	return &BillingService{
		subRepo:     subRepo,
		invoiceRepo: invoiceRepo,
		usageRepo:   usageRepo,
		pmRepo:      pmRepo,
		orgRepo:     orgRepo,
		plans:       plans,
		gateway:     gateway,
		notifier:    notifier,
		validator:   validator,
		now:         time.Now,
	}
}

// UpdateSubscriptionRequest changes the plan; explicit limits apply to the custom plan only
type UpdateSubscriptionRequest struct {
	PlanType             models.PlanType     `json:"plan_type" validate:"required"`
	BillingCycle         models.BillingCycle `json:"billing_cycle"`
	MaxTargets           *int                `json:"max_targets" validate:"omitempty,min=0"`
	MaxCampaignsPerMonth *int                `json:"max_campaigns_per_month" validate:"omitempty,min=0"`
	MaxEmailsPerMonth    *int                `json:"max_emails_per_month" validate:"omitempty,min=0"`
	MaxTemplates         *int                `json:"max_templates" validate:"omitempty,min=0"`
	MaxLandingPages      *int                `json:"max_landing_pages" validate:"omitempty,min=0"`
}

// InvoiceListRequest filters invoices
type InvoiceListRequest struct {
	ListParams
	Status models.InvoiceStatus `form:"status"`
}

// InvoiceListResponse represents a paginated list of invoices
type InvoiceListResponse struct {
	Invoices []models.Invoice `json:"invoices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// UsageListRequest filters usage metrics
type UsageListRequest struct {
	ListParams
	MetricType    models.MetricType `form:"metric_type"`
	WarningSent   *bool             `form:"warning_sent"`
	LimitExceeded *bool             `form:"limit_exceeded"`
}

// UsageMetricResponse is a usage metric with its computed percentage
type UsageMetricResponse struct {
	models.UsageMetric
	UsagePercentage float64 `json:"usage_percentage"`
}

// UsageListResponse represents a paginated list of usage metrics
type UsageListResponse struct {
	UsageMetrics []UsageMetricResponse `json:"usage_metrics"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// BillingOverviewResponse is the billing dashboard
type BillingOverviewResponse struct {
	Subscription   *models.Subscription       `json:"subscription"`
	UsageMetrics   []UsageMetricResponse      `json:"usage_metrics"`
	RecentInvoices []models.Invoice           `json:"recent_invoices"`
	Summary        *repository.InvoiceSummary `json:"summary"`
}

// PaymentMethodRequest represents the request to create or update a payment method
type PaymentMethodRequest struct {
	MethodType            models.PaymentMethodType `json:"method_type" validate:"required"`
	CardLastFour          string                   `json:"card_last_four" validate:"omitempty,len=4,numeric"`
	CardBrand             string                   `json:"card_brand" validate:"max=20"`
	ExpiryMonth           int                      `json:"expiry_month" validate:"omitempty,min=1,max=12"`
	ExpiryYear            int                      `json:"expiry_year" validate:"omitempty,min=2000,max=2100"`
	StripePaymentMethodID string                   `json:"stripe_payment_method_id" validate:"max=100"`
	PaypalPaymentID       string                   `json:"paypal_payment_id" validate:"max=100"`
	IsDefault             *bool                    `json:"is_default"`
	IsActive              *bool                    `json:"is_active"`
}

// PaymentMethodListResponse represents a paginated list of payment methods
type PaymentMethodListResponse struct {
	PaymentMethods []models.PaymentMethod `json:"payment_methods"`
	Total          int64                  `json:"total"`
	Page           int                    `json:"page"`
	PageSize       int                    `json:"page_size"`
}

// ProvisionOrganization gives a new organization its trial subscription and usage metrics
func (s *BillingService) ProvisionOrganization(org *models.Organization) error {
	planType := org.SubscriptionTier
	plan, err := s.plans.Get(planType)
	if err != nil {
		planType = models.PlanTypeBasic
		if plan, err = s.plans.Get(planType); err != nil {
			return err
		}
	}

	now := s.now()
	trialEnd := now.AddDate(0, 0, plan.TrialDays)
	sub := &models.Subscription{
		OrganizationID:     org.ID,
		PlanType:           planType,
		BillingCycle:       models.BillingCycleMonthly,
		Status:             models.SubscriptionTrial,
		TrialEnd:           &trialEnd,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.AddDate(0, 1, 0),
		NextBillingDate:    &trialEnd,
	}
	plan.Apply(sub)
	if err := s.subRepo.Create(sub); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	if err := s.usageRepo.SetLimits(org.ID, UsageLimits(sub), now); err != nil {
		return fmt.Errorf("failed to create usage metrics: %w", err)
	}
	return nil
}

// GetSubscription returns the subscription of the actor's organization
func (s *BillingService) GetSubscription(actor Actor) (*models.Subscription, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	return s.subscription(orgID)
}

func (s *BillingService) subscription(orgID uuid.UUID) (*models.Subscription, error) {
	sub, err := s.subRepo.GetByOrganization(orgID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrSubscriptionNotFound, "get subscription")
	}
	return sub, nil
}

// UpdateSubscription changes plan or billing cycle and moves the usage limits with it
func (s *BillingService) UpdateSubscription(actor Actor, req *UpdateSubscriptionRequest) (*models.Subscription, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.PlanType.IsValid() {
		return nil, apperrors.NewValidationError("plan_type", "invalid plan type")
	}
	if req.BillingCycle != "" && !req.BillingCycle.IsValid() {
		return nil, apperrors.NewValidationError("billing_cycle", "invalid billing cycle")
	}
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	sub, err := s.subscription(orgID)
	if err != nil {
		return nil, err
	}

	if req.PlanType == models.PlanTypeCustom {
		sub.PlanName = "Custom"
		setInt := func(dst *int, v *int) {
			if v != nil {
				*dst = *v
			}
		}
		setInt(&sub.MaxTargets, req.MaxTargets)
		setInt(&sub.MaxCampaignsPerMonth, req.MaxCampaignsPerMonth)
		setInt(&sub.MaxEmailsPerMonth, req.MaxEmailsPerMonth)
		setInt(&sub.MaxTemplates, req.MaxTemplates)
		setInt(&sub.MaxLandingPages, req.MaxLandingPages)
	} else {
		plan, err := s.plans.Get(req.PlanType)
		if err != nil {
			return nil, err
		}
		plan.Apply(sub)
	}
	sub.PlanType = req.PlanType
	if req.BillingCycle != "" {
		sub.BillingCycle = req.BillingCycle
	}

	if err := s.subRepo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	if err := s.usageRepo.SetLimits(orgID, UsageLimits(sub), s.now()); err != nil {
		return nil, fmt.Errorf("failed to update usage limits: %w", err)
	}

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "get organization")
	}
	if org.SubscriptionTier != sub.PlanType {
		org.SubscriptionTier = sub.PlanType
		if err := s.orgRepo.Update(org); err != nil {
			return nil, fmt.Errorf("failed to update organization tier: %w", err)
		}
	}
	return sub, nil
}

// Overview returns the subscription, usage, five latest invoices and the invoice summary
func (s *BillingService) Overview(actor Actor) (*BillingOverviewResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	sub, err := s.subscription(orgID)
	if err != nil {
		return nil, err
	}
	metrics, _, err := s.usageRepo.List(repository.UsageMetricFilter{OrganizationID: orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to list usage metrics: %w", err)
	}
	invoices, err := s.invoiceRepo.Recent(orgID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent invoices: %w", err)
	}
	summary, err := s.invoiceRepo.Summary(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise invoices: %w", err)
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return &BillingOverviewResponse{
		Subscription:   sub,
		UsageMetrics:   toUsageResponses(metrics),
		RecentInvoices: invoices,
		Summary:        summary,
	}, nil
}

// ListInvoices returns the organization's invoices, newest first
func (s *BillingService) ListInvoices(actor Actor, req *InvoiceListRequest) (*InvoiceListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	invoices, total, err := s.invoiceRepo.List(repository.InvoiceFilter{
		Page:           params.repoPage(),
		OrganizationID: orgID,
		Status:         req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return &InvoiceListResponse{Invoices: invoices, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// GetInvoice retrieves an invoice of the organization
func (s *BillingService) GetInvoice(actor Actor, id uuid.UUID) (*models.Invoice, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrInvoiceNotFound, "get invoice")
	}
	return inv, nil
}

// ListUsage returns the organization's usage metrics
func (s *BillingService) ListUsage(actor Actor, req *UsageListRequest) (*UsageListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params := req.ListParams.Normalize()
	metrics, total, err := s.usageRepo.List(repository.UsageMetricFilter{
		Page:           params.repoPage(),
		OrganizationID: orgID,
		MetricType:     req.MetricType,
		WarningSent:    req.WarningSent,
		LimitExceeded:  req.LimitExceeded,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list usage metrics: %w", err)
	}
	return &UsageListResponse{
		UsageMetrics: toUsageResponses(metrics),
		Total:        total,
		Page:         params.Page,
		PageSize:     params.PageSize,
	}, nil
}

// ListPaymentMethods returns the organization's payment methods, default first
func (s *BillingService) ListPaymentMethods(actor Actor, params ListParams) (*PaymentMethodListResponse, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	params = params.Normalize()
	methods, total, err := s.pmRepo.List(orgID, params.repoPage())
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	if methods == nil {
		methods = []models.PaymentMethod{}
	}
	return &PaymentMethodListResponse{PaymentMethods: methods, Total: total, Page: params.Page, PageSize: params.PageSize}, nil
}

// GetPaymentMethod retrieves a payment method of the organization
func (s *BillingService) GetPaymentMethod(actor Actor, id uuid.UUID) (*models.PaymentMethod, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	pm, err := s.pmRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrPaymentMethodNotFound, "get payment method")
	}
	return pm, nil
}

// CreatePaymentMethod stores a payment method; Stripe methods are attached to the organization's customer
func (s *BillingService) CreatePaymentMethod(ctx context.Context, actor Actor, req *PaymentMethodRequest) (*models.PaymentMethod, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validatePaymentMethod(req); err != nil {
		return nil, err
	}

	pm := &models.PaymentMethod{OrganizationID: orgID, IsActive: true}
	s.applyPaymentMethod(pm, req)
	if err := s.attachStripe(ctx, orgID, pm); err != nil {
		return nil, err
	}
	if err := s.pmRepo.Create(pm); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}
	return pm, nil
}

// UpdatePaymentMethod updates a payment method of the organization
func (s *BillingService) UpdatePaymentMethod(ctx context.Context, actor Actor, id uuid.UUID, req *PaymentMethodRequest) (*models.PaymentMethod, error) {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return nil, err
	}
	if err := s.validatePaymentMethod(req); err != nil {
		return nil, err
	}
	pm, err := s.pmRepo.GetByID(orgID, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrPaymentMethodNotFound, "get payment method")
	}

	previousStripeID := pm.StripePaymentMethodID
	s.applyPaymentMethod(pm, req)
	if pm.StripePaymentMethodID != previousStripeID {
		if err := s.attachStripe(ctx, orgID, pm); err != nil {
			return nil, err
		}
	}
	if err := s.pmRepo.Update(pm); err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}
	return pm, nil
}

// DeletePaymentMethod deletes a payment method of the organization
func (s *BillingService) DeletePaymentMethod(actor Actor, id uuid.UUID) error {
	orgID, err := actor.ManagedTenantID()
	if err != nil {
		return err
	}
	if _, err := s.pmRepo.GetByID(orgID, id); err != nil {
		return lookupError(err, apperrors.ErrPaymentMethodNotFound, "get payment method")
	}
	if err := s.pmRepo.Delete(orgID, id); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}

func (s *BillingService) validatePaymentMethod(req *PaymentMethodRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.MethodType.IsValid() {
		return apperrors.NewValidationError("method_type", "invalid payment method type")
	}
	return nil
}

func (s *BillingService) applyPaymentMethod(pm *models.PaymentMethod, req *PaymentMethodRequest) {
	pm.MethodType = req.MethodType
	pm.CardLastFour = req.CardLastFour
	pm.CardBrand = req.CardBrand
	pm.ExpiryMonth = req.ExpiryMonth
	pm.ExpiryYear = req.ExpiryYear
	pm.StripePaymentMethodID = req.StripePaymentMethodID
	pm.PaypalPaymentID = req.PaypalPaymentID
	pm.IsDefault = boolValue(req.IsDefault, pm.IsDefault)
	pm.IsActive = boolValue(req.IsActive, pm.IsActive)
}

// attachStripe fills card details from Stripe; without a Stripe id or gateway the request values stand
func (s *BillingService) attachStripe(ctx context.Context, orgID uuid.UUID, pm *models.PaymentMethod) error {
	if pm.StripePaymentMethodID == "" || !s.gateway.Enabled() {
		return nil
	}
	sub, err := s.subscription(orgID)
	if err != nil {
		return err
	}
	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		return lookupError(err, apperrors.ErrOrganizationNotFound, "get organization")
	}

	customerID, err := s.gateway.EnsureCustomer(ctx, sub.StripeCustomerID, "billing@"+org.Domain, org.Name, orgID.String())
	if err != nil {
		return fmt.Errorf("failed to ensure stripe customer: %w", err)
	}
	if customerID != sub.StripeCustomerID {
		sub.StripeCustomerID = customerID
		if err := s.subRepo.Update(sub); err != nil {
			return fmt.Errorf("failed to store stripe customer: %w", err)
		}
	}

	card, err := s.gateway.AttachPaymentMethod(ctx, customerID, pm.StripePaymentMethodID)
	if err != nil {
		return fmt.Errorf("failed to attach payment method: %w", err)
	}
	pm.CardBrand = card.Brand
	pm.CardLastFour = card.LastFour
	pm.ExpiryMonth = card.ExpMonth
	pm.ExpiryYear = card.ExpYear
	return nil
}

// HandleStripeWebhook applies a verified Stripe invoice event to the matching invoice
func (s *BillingService) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseInvoiceEvent(payload, signature)
	if err != nil {
		return err
	}
	log := logger.WithContext(ctx).WithField("event_type", event.Type)
	if event.InvoiceNumber == "" {
		log.Debug("ignoring stripe event")
		return nil
	}

	inv, err := s.invoiceRepo.GetByNumber(event.InvoiceNumber)
	if err != nil {
		return lookupError(err, apperrors.ErrInvoiceNotFound, "get invoice")
	}

	switch event.Type {
	case payments.EventInvoicePaid:
		paid := event.OccurredAt
		inv.Status = models.InvoicePaid
		inv.PaidDate = &paid
		inv.TransactionID = event.TransactionID
		inv.PaymentMethod = string(models.PaymentMethodStripe)
	case payments.EventInvoicePaymentFailed:
		inv.Status = models.InvoiceOverdue
	default:
		return nil
	}
	if err := s.invoiceRepo.Update(inv); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	log.WithField("invoice_number", inv.InvoiceNumber).Info("invoice updated from stripe")

	if event.Type == payments.EventInvoicePaymentFailed && s.notifier != nil {
		return s.notifier.NotifyManagers(ctx, inv.OrganizationID, NotificationInput{
			Title:       "Payment Failed",
			Message:     fmt.Sprintf("Payment for invoice %s (%s) failed.", inv.InvoiceNumber, formatAmount(inv.TotalAmount)),
			Type:        models.NotificationBillingAlert,
			Priority:    models.NotificationPriorityUrgent,
			ActionURL:   "/billing/invoices/" + inv.ID.String(),
			ActionLabel: "View invoice",
		})
	}
	return nil
}

func formatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func toUsageResponses(metrics []models.UsageMetric) []UsageMetricResponse {
	out := make([]UsageMetricResponse, len(metrics))
	for i := range metrics {
		out[i] = UsageMetricResponse{UsageMetric: metrics[i], UsagePercentage: metrics[i].UsagePercentage()}
	}
	return out
}
