package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BillingHandlerTestSuite defines the test suite for BillingHandler
type BillingHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockBillingService *mocks.MockBillingServiceInterface
	handler            *BillingHandler
	httpSuite          *testutils.HTTPTestSuite
	orgID              uuid.UUID
	claims             *auth.AuthClaims
}

// SetupTest sets up the test suite
func (suite *BillingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBillingService = mocks.NewMockBillingServiceInterface(suite.ctrl)
	suite.handler = NewBillingHandler(suite.mockBillingService)
	suite.orgID = uuid.New()
	suite.claims = managerClaims(suite.orgID)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/api/v1/billing/webhooks/stripe", suite.handler.StripeWebhook)

	billing := suite.httpSuite.Router.Group("/api/v1/billing")
	billing.Use(claimsMiddleware(&suite.claims))
	{
		billing.GET("/subscription", suite.handler.GetSubscription)
		billing.PUT("/subscription", suite.handler.UpdateSubscription)
		billing.GET("/invoices", suite.handler.ListInvoices)
		billing.POST("/payment-methods", suite.handler.CreatePaymentMethod)
	}
}

// TearDownTest cleans up after each test
func (suite *BillingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BillingHandlerTestSuite) postWebhook(payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *BillingHandlerTestSuite) TestGetSubscription() {
	suite.mockBillingService.EXPECT().
		GetSubscription(actorFor(suite.claims)).
		Return(&models.Subscription{
			OrganizationID: suite.orgID,
			PlanType:       models.PlanTypeProfessional,
			Status:         models.SubscriptionActive,
			MonthlyPrice:   decimal.RequireFromString("99.00"),
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/billing/subscription", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "professional", response["plan_type"])
	assert.Equal(suite.T(), "99", response["monthly_price"])
}

func (suite *BillingHandlerTestSuite) TestGetSubscriptionMissing() {
	suite.mockBillingService.EXPECT().
		GetSubscription(gomock.Any()).
		Return(nil, apperrors.ErrSubscriptionNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/billing/subscription", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "subscription not found")
}

func (suite *BillingHandlerTestSuite) TestUpdateSubscriptionUnknownPlan() {
	suite.mockBillingService.EXPECT().
		UpdateSubscription(actorFor(suite.claims), gomock.Any()).
		Return(nil, apperrors.ErrPlanNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/billing/subscription", map[string]interface{}{"plan_type": "platinum"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "plan not found")
}

func (suite *BillingHandlerTestSuite) TestListInvoicesByStatus() {
	suite.mockBillingService.EXPECT().
		ListInvoices(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.InvoiceListRequest) (*service.InvoiceListResponse, error) {
			assert.Equal(suite.T(), models.InvoiceOverdue, req.Status)
			return &service.InvoiceListResponse{Page: 1, PageSize: 25}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/billing/invoices?status=overdue", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *BillingHandlerTestSuite) TestCreatePaymentMethod() {
	suite.mockBillingService.EXPECT().
		CreatePaymentMethod(gomock.Any(), actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Actor, req *service.PaymentMethodRequest) (*models.PaymentMethod, error) {
			assert.Equal(suite.T(), models.PaymentMethodCreditCard, req.MethodType)
			return &models.PaymentMethod{
				BaseModel:      models.BaseModel{ID: uuid.New()},
				OrganizationID: suite.orgID,
				MethodType:     req.MethodType,
				CardLastFour:   req.CardLastFour,
				IsDefault:      true,
				IsActive:       true,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/billing/payment-methods", map[string]interface{}{
		"method_type":    "credit_card",
		"card_last_four": "4242",
		"card_brand":     "visa",
	})

	var response models.PaymentMethod
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "4242", response.CardLastFour)
	assert.True(suite.T(), response.IsDefault)
}

func (suite *BillingHandlerTestSuite) TestStripeWebhookPassesRawPayload() {
	payload := []byte(`{"id":"evt_1","type":"invoice.paid"}`)
	suite.mockBillingService.EXPECT().
		HandleStripeWebhook(gomock.Any(), payload, "t=1,v1=abc").
		Return(nil).
		Times(1)

	recorder := suite.postWebhook(payload, "t=1,v1=abc")

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), true, response["received"])
}

func (suite *BillingHandlerTestSuite) TestStripeWebhookBadSignature() {
	suite.mockBillingService.EXPECT().
		HandleStripeWebhook(gomock.Any(), gomock.Any(), "").
		Return(apperrors.ErrInvalidWebhookSignature).
		Times(1)

	recorder := suite.postWebhook([]byte(`{}`), "")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid webhook signature")
}

func (suite *BillingHandlerTestSuite) TestStripeWebhookGatewayDisabled() {
	suite.mockBillingService.EXPECT().
		HandleStripeWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.ErrPaymentGatewayDisabled).
		Times(1)

	recorder := suite.postWebhook([]byte(`{}`), "t=1,v1=abc")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusServiceUnavailable, "payment gateway is not configured")
}

// TestBillingHandlerTestSuite runs the test suite
func TestBillingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}
