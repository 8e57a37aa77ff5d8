package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/payments"
	"phishing-simulator-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// BillingServiceTestSuite defines the test suite for BillingService
type BillingServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSubs     *mocks.MockSubscriptionRepositoryInterface
	mockInvoices *mocks.MockInvoiceRepositoryInterface
	mockUsage    *mocks.MockUsageMetricRepositoryInterface
	mockPayments *mocks.MockPaymentMethodRepositoryInterface
	mockOrgs     *mocks.MockOrganizationRepositoryInterface
	mockGateway  *mocks.MockGateway
	mockNotifier *mocks.MockNotifier
	billing      *service.BillingService
	orgID        uuid.UUID
	actor        service.Actor
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSubs = mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl)
	suite.mockInvoices = mocks.NewMockInvoiceRepositoryInterface(suite.ctrl)
	suite.mockUsage = mocks.NewMockUsageMetricRepositoryInterface(suite.ctrl)
	suite.mockPayments = mocks.NewMockPaymentMethodRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockGateway = mocks.NewMockGateway(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.billing = service.NewBillingService(
		suite.mockSubs, suite.mockInvoices, suite.mockUsage, suite.mockPayments, suite.mockOrgs,
		service.DefaultPlanCatalog(), suite.mockGateway, suite.mockNotifier, validator.New(),
	)
	suite.orgID = uuid.New()
	suite.actor = service.Actor{UserID: uuid.New(), Role: models.UserRoleCustomer, OrganizationID: &suite.orgID}
}

func (suite *BillingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BillingServiceTestSuite) TestProvisionStartsTrial() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, SubscriptionTier: models.PlanTypeProfessional}
	suite.mockSubs.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(sub *models.Subscription) error {
			assert.Equal(suite.T(), models.SubscriptionTrial, sub.Status)
			assert.Equal(suite.T(), "Professional", sub.PlanName)
			assert.Equal(suite.T(), 1000, sub.MaxTargets)
			assert.True(suite.T(), sub.APIAccess)
			assert.True(suite.T(), decimal.RequireFromString("199").Equal(sub.MonthlyPrice))
			suite.Require().NotNil(sub.TrialEnd)
			assert.WithinDuration(suite.T(), time.Now().AddDate(0, 0, 14), *sub.TrialEnd, time.Minute)
			return nil
		})
	suite.mockUsage.EXPECT().
		SetLimits(suite.orgID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, limits map[models.MetricType]int, _ time.Time) error {
			assert.Equal(suite.T(), 1000, limits[models.MetricTargetsCount])
			assert.Equal(suite.T(), 25, limits[models.MetricCampaignsCount])
			assert.Equal(suite.T(), 10000, limits[models.MetricEmailsSent])
			assert.Equal(suite.T(), 0, limits[models.MetricAPIRequests])
			return nil
		})

	err := suite.billing.ProvisionOrganization(org)

	assert.NoError(suite.T(), err)
}

func (suite *BillingServiceTestSuite) TestProvisionCustomTierFallsBackToBasic() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, SubscriptionTier: models.PlanTypeCustom}
	suite.mockSubs.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(sub *models.Subscription) error {
			assert.Equal(suite.T(), models.PlanTypeBasic, sub.PlanType)
			assert.Equal(suite.T(), 100, sub.MaxTargets)
			return nil
		})
	suite.mockUsage.EXPECT().SetLimits(suite.orgID, gomock.Any(), gomock.Any()).Return(nil)

	err := suite.billing.ProvisionOrganization(org)

	assert.NoError(suite.T(), err)
}

func (suite *BillingServiceTestSuite) TestUpdateSubscriptionChangesPlan() {
	sub := &models.Subscription{OrganizationID: suite.orgID, PlanType: models.PlanTypeBasic, BillingCycle: models.BillingCycleMonthly}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, SubscriptionTier: models.PlanTypeBasic}
	suite.mockSubs.EXPECT().GetByOrganization(suite.orgID).Return(sub, nil)
	suite.mockSubs.EXPECT().Update(sub).Return(nil)
	suite.mockUsage.EXPECT().SetLimits(suite.orgID, gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOrgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.mockOrgs.EXPECT().
		Update(org).
		DoAndReturn(func(saved *models.Organization) error {
			assert.Equal(suite.T(), models.PlanTypeEnterprise, saved.SubscriptionTier)
			return nil
		})

	result, err := suite.billing.UpdateSubscription(suite.actor, &service.UpdateSubscriptionRequest{
		PlanType:     models.PlanTypeEnterprise,
		BillingCycle: models.BillingCycleAnnual,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Enterprise", result.PlanName)
	assert.Equal(suite.T(), 10000, result.MaxTargets)
	assert.Equal(suite.T(), models.BillingCycleAnnual, result.BillingCycle)
	assert.True(suite.T(), result.CustomBranding)
}

func (suite *BillingServiceTestSuite) TestUpdateSubscriptionCustomLimits() {
	sub := &models.Subscription{OrganizationID: suite.orgID, PlanType: models.PlanTypeBasic, MaxTargets: 100, MaxTemplates: 10}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, SubscriptionTier: models.PlanTypeCustom}
	targets := 2500
	suite.mockSubs.EXPECT().GetByOrganization(suite.orgID).Return(sub, nil)
	suite.mockSubs.EXPECT().Update(sub).Return(nil)
	suite.mockUsage.EXPECT().
		SetLimits(suite.orgID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, limits map[models.MetricType]int, _ time.Time) error {
			assert.Equal(suite.T(), 2500, limits[models.MetricTargetsCount])
			return nil
		})
	suite.mockOrgs.EXPECT().GetByID(suite.orgID).Return(org, nil)

	result, err := suite.billing.UpdateSubscription(suite.actor, &service.UpdateSubscriptionRequest{
		PlanType:   models.PlanTypeCustom,
		MaxTargets: &targets,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Custom", result.PlanName)
	assert.Equal(suite.T(), 2500, result.MaxTargets)
	assert.Equal(suite.T(), 10, result.MaxTemplates)
}

func (suite *BillingServiceTestSuite) TestUpdateSubscriptionInvalidPlan() {
	_, err := suite.billing.UpdateSubscription(suite.actor, &service.UpdateSubscriptionRequest{PlanType: "platinum"})

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	assert.Equal(suite.T(), "plan_type", ve.Field)
}

func (suite *BillingServiceTestSuite) TestGetSubscriptionNotFound() {
	suite.mockSubs.EXPECT().GetByOrganization(suite.orgID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.billing.GetSubscription(suite.actor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSubscriptionNotFound)
}

func (suite *BillingServiceTestSuite) TestGetSubscriptionRequiresManager() {
	actor := service.Actor{UserID: uuid.New(), Role: models.UserRoleTarget, OrganizationID: &suite.orgID}

	_, err := suite.billing.GetSubscription(actor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerRequired)
}

func (suite *BillingServiceTestSuite) TestCreatePaymentMethodWithStripe() {
	sub := &models.Subscription{OrganizationID: suite.orgID}
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Name: "Acme", Domain: "acme.com"}
	suite.mockGateway.EXPECT().Enabled().Return(true)
	suite.mockSubs.EXPECT().GetByOrganization(suite.orgID).Return(sub, nil)
	suite.mockOrgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.mockGateway.EXPECT().
		EnsureCustomer(gomock.Any(), "", "billing@acme.com", "Acme", suite.orgID.String()).
		Return("cus_123", nil)
	suite.mockSubs.EXPECT().
		Update(sub).
		DoAndReturn(func(saved *models.Subscription) error {
			assert.Equal(suite.T(), "cus_123", saved.StripeCustomerID)
			return nil
		})
	suite.mockGateway.EXPECT().
		AttachPaymentMethod(gomock.Any(), "cus_123", "pm_abc").
		Return(&payments.CardDetails{Brand: "visa", LastFour: "4242", ExpMonth: 12, ExpYear: 2030}, nil)
	suite.mockPayments.EXPECT().Create(gomock.Any()).Return(nil)

	pm, err := suite.billing.CreatePaymentMethod(context.Background(), suite.actor, &service.PaymentMethodRequest{
		MethodType:            models.PaymentMethodStripe,
		StripePaymentMethodID: "pm_abc",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "visa", pm.CardBrand)
	assert.Equal(suite.T(), "4242", pm.CardLastFour)
	assert.Equal(suite.T(), 2030, pm.ExpiryYear)
	assert.True(suite.T(), pm.IsActive)
}

func (suite *BillingServiceTestSuite) TestCreatePaymentMethodWithoutGateway() {
	suite.mockGateway.EXPECT().Enabled().Return(false)
	suite.mockPayments.EXPECT().Create(gomock.Any()).Return(nil)

	pm, err := suite.billing.CreatePaymentMethod(context.Background(), suite.actor, &service.PaymentMethodRequest{
		MethodType:            models.PaymentMethodCreditCard,
		CardLastFour:          "1111",
		CardBrand:             "mastercard",
		StripePaymentMethodID: "pm_abc",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "1111", pm.CardLastFour)
}

func (suite *BillingServiceTestSuite) TestCreatePaymentMethodInvalidType() {
	_, err := suite.billing.CreatePaymentMethod(context.Background(), suite.actor, &service.PaymentMethodRequest{MethodType: "cheque"})

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	assert.Equal(suite.T(), "method_type", ve.Field)
}

func (suite *BillingServiceTestSuite) TestDeletePaymentMethodNotFound() {
	id := uuid.New()
	suite.mockPayments.EXPECT().GetByID(suite.orgID, id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.billing.DeletePaymentMethod(suite.actor, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPaymentMethodNotFound)
}

func (suite *BillingServiceTestSuite) TestWebhookMarksInvoicePaid() {
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	inv := &models.Invoice{OrganizationID: suite.orgID, InvoiceNumber: "INV-0001", Status: models.InvoiceSent}
	suite.mockGateway.EXPECT().
		ParseInvoiceEvent([]byte("{}"), "sig").
		Return(&payments.InvoiceEvent{Type: payments.EventInvoicePaid, InvoiceNumber: "INV-0001", TransactionID: "ch_1", OccurredAt: paidAt}, nil)
	suite.mockInvoices.EXPECT().GetByNumber("INV-0001").Return(inv, nil)
	suite.mockInvoices.EXPECT().Update(inv).Return(nil)

	err := suite.billing.HandleStripeWebhook(context.Background(), []byte("{}"), "sig")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.InvoicePaid, inv.Status)
	assert.Equal(suite.T(), paidAt, *inv.PaidDate)
	assert.Equal(suite.T(), "ch_1", inv.TransactionID)
	assert.Equal(suite.T(), "stripe", inv.PaymentMethod)
}

func (suite *BillingServiceTestSuite) TestWebhookPaymentFailedNotifiesManagers() {
	inv := &models.Invoice{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		InvoiceNumber:  "INV-0002",
		Status:         models.InvoiceSent,
		TotalAmount:    decimal.RequireFromString("199"),
	}
	suite.mockGateway.EXPECT().
		ParseInvoiceEvent(gomock.Any(), gomock.Any()).
		Return(&payments.InvoiceEvent{Type: payments.EventInvoicePaymentFailed, InvoiceNumber: "INV-0002"}, nil)
	suite.mockInvoices.EXPECT().GetByNumber("INV-0002").Return(inv, nil)
	suite.mockInvoices.EXPECT().Update(inv).Return(nil)
	suite.mockNotifier.EXPECT().
		NotifyManagers(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in service.NotificationInput) error {
			assert.Equal(suite.T(), models.NotificationBillingAlert, in.Type)
			assert.Equal(suite.T(), models.NotificationPriorityUrgent, in.Priority)
			assert.Contains(suite.T(), in.Message, "INV-0002 ($199.00)")
			return nil
		})

	err := suite.billing.HandleStripeWebhook(context.Background(), nil, "sig")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.InvoiceOverdue, inv.Status)
}

func (suite *BillingServiceTestSuite) TestWebhookUnknownInvoice() {
	suite.mockGateway.EXPECT().
		ParseInvoiceEvent(gomock.Any(), gomock.Any()).
		Return(&payments.InvoiceEvent{Type: payments.EventInvoicePaid, InvoiceNumber: "INV-404"}, nil)
	suite.mockInvoices.EXPECT().GetByNumber("INV-404").Return(nil, gorm.ErrRecordNotFound)

	err := suite.billing.HandleStripeWebhook(context.Background(), nil, "sig")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvoiceNotFound)
}

func (suite *BillingServiceTestSuite) TestWebhookWithoutInvoiceIsIgnored() {
	suite.mockGateway.EXPECT().
		ParseInvoiceEvent(gomock.Any(), gomock.Any()).
		Return(&payments.InvoiceEvent{Type: payments.EventInvoicePaid}, nil)

	err := suite.billing.HandleStripeWebhook(context.Background(), nil, "sig")

	assert.NoError(suite.T(), err)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func TestUsageTrackerWarnsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsageMetricRepositoryInterface(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	tracker := service.NewUsageTracker(repo, notifier)
	orgID := uuid.New()

	metric := &models.UsageMetric{OrganizationID: orgID, MetricType: models.MetricEmailsSent, CurrentValue: 80, LimitValue: 100, WarningThreshold: 0.8}
	repo.EXPECT().Increment(orgID, models.MetricEmailsSent, 1, gomock.Any()).Return(metric, nil)
	repo.EXPECT().
		Update(metric).
		DoAndReturn(func(m *models.UsageMetric) error {
			assert.True(t, m.WarningSent)
			assert.False(t, m.LimitExceeded)
			return nil
		})
	notifier.EXPECT().
		NotifyManagers(gomock.Any(), orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in service.NotificationInput) error {
			assert.Equal(t, "Usage Limit Warning", in.Title)
			assert.Contains(t, in.Message, "80 of 100 (80.00%)")
			return nil
		})

	assert.NoError(t, tracker.Increment(context.Background(), orgID, models.MetricEmailsSent, 1))

	// already warned; only the exceeded flag changes
	metric.CurrentValue = 100
	repo.EXPECT().Increment(orgID, models.MetricEmailsSent, 20, gomock.Any()).Return(metric, nil)
	repo.EXPECT().Update(metric).Return(nil)

	assert.NoError(t, tracker.Increment(context.Background(), orgID, models.MetricEmailsSent, 20))
	assert.True(t, metric.LimitExceeded)
}

func TestUsageTrackerIgnoresUnlimitedMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsageMetricRepositoryInterface(ctrl)
	tracker := service.NewUsageTracker(repo, nil)
	orgID := uuid.New()

	repo.EXPECT().
		Increment(orgID, models.MetricAPIRequests, 5, gomock.Any()).
		Return(&models.UsageMetric{CurrentValue: 5000, WarningThreshold: 0.8}, nil)

	assert.NoError(t, tracker.Increment(context.Background(), orgID, models.MetricAPIRequests, 5))
	assert.NoError(t, tracker.Increment(context.Background(), orgID, models.MetricAPIRequests, 0))
}

func TestParsePlanCatalog(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "empty", yaml: "plans: {}", wantErr: "plan catalog is empty"},
		{name: "custom plan", yaml: "plans:\n  custom:\n    monthly_price: \"1\"\n    annual_price: \"1\"", wantErr: "unknown plan type"},
		{name: "bad price", yaml: "plans:\n  basic:\n    monthly_price: cheap\n    annual_price: \"1\"", wantErr: "monthly_price"},
		{name: "missing basic", yaml: "plans:\n  enterprise:\n    monthly_price: \"1\"\n    annual_price: \"1\"", wantErr: "must define the basic plan"},
		{name: "malformed", yaml: "plans: [", wantErr: "failed to parse plan catalog"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.ParsePlanCatalog([]byte(tc.yaml))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	catalog := service.DefaultPlanCatalog()
	_, err := catalog.Get(models.PlanTypeCustom)
	assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
	plan, err := catalog.Get(models.PlanTypeEnterprise)
	assert.NoError(t, err)
	assert.Equal(t, 30, plan.TrialDays)
}
