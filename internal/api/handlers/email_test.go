package handlers

import (
	"net/http"
	"testing"

	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmailHandlerTestSuite defines the test suite for EmailHandler
type EmailHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEmailService *mocks.MockEmailServiceInterface
	handler          *EmailHandler
	httpSuite        *testutils.HTTPTestSuite
	orgID            uuid.UUID
	claims           *auth.AuthClaims
}

// SetupTest sets up the test suite
func (suite *EmailHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmailService = mocks.NewMockEmailServiceInterface(suite.ctrl)
	suite.handler = NewEmailHandler(suite.mockEmailService)
	suite.orgID = uuid.New()
	suite.claims = managerClaims(suite.orgID)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(claimsMiddleware(&suite.claims))

	emails := suite.httpSuite.Router.Group("/api/v1/emails")
	{
		emails.POST("/smtp-configs", suite.handler.CreateSMTPConfig)
		emails.DELETE("/smtp-configs/:id", suite.handler.DeleteSMTPConfig)
		emails.GET("/queue", suite.handler.ListQueue)
		emails.GET("/events", suite.handler.ListEvents)
		emails.GET("/statistics", suite.handler.Statistics)
	}
}

// TearDownTest cleans up after each test
func (suite *EmailHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmailHandlerTestSuite) TestCreateSMTPConfigHidesPassword() {
	suite.mockEmailService.EXPECT().
		CreateSMTPConfig(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.SMTPConfigRequest) (*models.SMTPConfiguration, error) {
			assert.Equal(suite.T(), "s3cret", req.Password)
			return &models.SMTPConfiguration{
				BaseModel:      models.BaseModel{ID: uuid.New()},
				OrganizationID: suite.orgID,
				Name:           req.Name,
				Host:           req.Host,
				Port:           req.Port,
				Password:       req.Password,
				FromEmail:      req.FromEmail,
				IsActive:       true,
				DailyLimit:     500,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/emails/smtp-configs", map[string]interface{}{
		"name":       "Relay",
		"host":       "smtp.acme.test",
		"port":       587,
		"password":   "s3cret",
		"from_email": "noreply@acme.test",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "smtp.acme.test", response["host"])
	assert.NotContains(suite.T(), response, "password")
	assert.NotContains(suite.T(), recorder.Body.String(), "s3cret")
}

func (suite *EmailHandlerTestSuite) TestDeleteSMTPConfigNotFound() {
	id := uuid.New()
	suite.mockEmailService.EXPECT().
		DeleteSMTPConfig(actorFor(suite.claims), id).
		Return(apperrors.ErrSMTPConfigurationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/emails/smtp-configs/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "smtp configuration not found")
}

func (suite *EmailHandlerTestSuite) TestListQueueFilters() {
	campaignID := uuid.New()
	suite.mockEmailService.EXPECT().
		ListQueue(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.EmailQueueListRequest) (*service.EmailQueueListResponse, error) {
			assert.Equal(suite.T(), models.EmailQueueFailed, req.Status)
			assert.Equal(suite.T(), campaignID, *req.Campaign)
			return &service.EmailQueueListResponse{Page: 1, PageSize: 25}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/emails/queue?status=failed&campaign="+campaignID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *EmailHandlerTestSuite) TestListEventsInvalidCampaign() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/emails/events?campaign=bogus", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid campaign ID")
}

func (suite *EmailHandlerTestSuite) TestStatistics() {
	suite.mockEmailService.EXPECT().
		Statistics(actorFor(suite.claims)).
		Return(&service.EmailStatisticsResponse{
			EventBreakdown:    map[string]int64{"opened": 7},
			ActiveSMTPConfigs: 2,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/emails/statistics", nil)

	var response service.EmailStatisticsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(2), response.ActiveSMTPConfigs)
	assert.Equal(suite.T(), int64(7), response.EventBreakdown["opened"])
}

// TestEmailHandlerTestSuite runs the test suite
func TestEmailHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmailHandlerTestSuite))
}
