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

// CampaignHandlerTestSuite defines the test suite for CampaignHandler
type CampaignHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockCampaignService *mocks.MockCampaignServiceInterface
	handler             *CampaignHandler
	httpSuite           *testutils.HTTPTestSuite
	orgID               uuid.UUID
	claims              *auth.AuthClaims
}

// SetupTest sets up the test suite
func (suite *CampaignHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCampaignService = mocks.NewMockCampaignServiceInterface(suite.ctrl)
	suite.handler = NewCampaignHandler(suite.mockCampaignService)
	suite.orgID = uuid.New()
	suite.claims = managerClaims(suite.orgID)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(claimsMiddleware(&suite.claims))

	campaigns := suite.httpSuite.Router.Group("/api/v1/campaigns")
	{
		campaigns.GET("/templates/:id", suite.handler.GetTemplate)
		campaigns.GET("", suite.handler.ListCampaigns)
		campaigns.POST("", suite.handler.CreateCampaign)
		campaigns.PUT("/:id", suite.handler.UpdateCampaign)
		campaigns.POST("/:id/action", suite.handler.CampaignAction)
		campaigns.GET("/:id/reports", suite.handler.CampaignReports)
		campaigns.GET("/:id/targets", suite.handler.CampaignTargets)
	}
}

// TearDownTest cleans up after each test
func (suite *CampaignHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CampaignHandlerTestSuite) TestListCampaignsByStatus() {
	suite.mockCampaignService.EXPECT().
		List(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.CampaignListRequest) (*service.CampaignListResponse, error) {
			assert.Equal(suite.T(), models.CampaignStatusRunning, req.Status)
			assert.Nil(suite.T(), req.Template)
			return &service.CampaignListResponse{Total: 0, Page: 1, PageSize: 25}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/campaigns?status=running", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CampaignHandlerTestSuite) TestCreateCampaignScheduledInPast() {
	suite.mockCampaignService.EXPECT().
		Create(gomock.Any(), actorFor(suite.claims), gomock.Any()).
		Return(nil, apperrors.ErrScheduledStartInPast).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/campaigns", map[string]interface{}{
		"name":              "Q3",
		"email_template_id": uuid.New().String(),
		"scheduled_start":   "2020-01-01T00:00:00Z",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "Scheduled start time must be in the future", response["error"])
	assert.Equal(suite.T(), "scheduled_start", response["field"])
}

func (suite *CampaignHandlerTestSuite) TestUpdateRunningCampaign() {
	id := uuid.New()
	suite.mockCampaignService.EXPECT().
		Update(actorFor(suite.claims), id, gomock.Any()).
		Return(nil, apperrors.ErrCampaignRunning).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/campaigns/"+id.String(), map[string]interface{}{
		"name":              "Renamed",
		"email_template_id": uuid.New().String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Running campaigns cannot be modified")
}

func (suite *CampaignHandlerTestSuite) TestCampaignActionStart() {
	id := uuid.New()
	suite.mockCampaignService.EXPECT().
		Action(gomock.Any(), actorFor(suite.claims), id, &service.CampaignActionRequest{Action: "start"}).
		Return(&service.CampaignActionResponse{
			Message:  "Campaign started successfully",
			Campaign: &service.CampaignResponse{ID: id, Status: models.CampaignStatusRunning},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/campaigns/"+id.String()+"/action", map[string]interface{}{"action": "start"})

	var response service.CampaignActionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Campaign started successfully", response.Message)
	assert.Equal(suite.T(), models.CampaignStatusRunning, response.Campaign.Status)
}

func (suite *CampaignHandlerTestSuite) TestCampaignActionInvalid() {
	id := uuid.New()
	suite.mockCampaignService.EXPECT().
		Action(gomock.Any(), gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.ErrInvalidAction).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/campaigns/"+id.String()+"/action", map[string]interface{}{"action": "pause"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid action")
}

func (suite *CampaignHandlerTestSuite) TestCampaignActionNotFound() {
	id := uuid.New()
	suite.mockCampaignService.EXPECT().
		Action(gomock.Any(), gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.ErrCampaignNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/campaigns/"+id.String()+"/action", map[string]interface{}{"action": "start"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "campaign not found")
}

func (suite *CampaignHandlerTestSuite) TestCampaignReports() {
	id := uuid.New()
	suite.mockCampaignService.EXPECT().
		Reports(actorFor(suite.claims), id).
		Return(&service.CampaignStatsResponse{
			CampaignInfo: service.CampaignInfo{ID: id, Name: "Q3", Status: models.CampaignStatusRunning},
			EmailStats:   service.CampaignEmailStats{TotalTargets: 10, EmailsSent: 10, EmailsOpened: 5},
			Rates:        service.CampaignRates{OpenRate: 50},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/campaigns/"+id.String()+"/reports", nil)

	var response service.CampaignStatsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 50.0, response.Rates.OpenRate)
	assert.Equal(suite.T(), int64(5), response.EmailStats.EmailsOpened)
}

func (suite *CampaignHandlerTestSuite) TestCampaignTargetsStatusFilter() {
	id := uuid.New()
	suite.mockCampaignService.EXPECT().
		ListTargets(actorFor(suite.claims), id, gomock.Any()).
		DoAndReturn(func(actor service.Actor, campaignID uuid.UUID, req *service.CampaignTargetListRequest) (*service.CampaignTargetListResponse, error) {
			assert.Equal(suite.T(), models.CampaignTargetClicked, req.Status)
			return &service.CampaignTargetListResponse{}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/campaigns/"+id.String()+"/targets?status=clicked", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CampaignHandlerTestSuite) TestGetTemplateInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/campaigns/templates/x", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid email template ID")
}

// TestCampaignHandlerTestSuite runs the test suite
func TestCampaignHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignHandlerTestSuite))
}
