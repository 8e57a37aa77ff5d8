package handlers

import (
	"errors"
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

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockReportService *mocks.MockReportServiceInterface
	handler           *ReportHandler
	httpSuite         *testutils.HTTPTestSuite
	orgID             uuid.UUID
	claims            *auth.AuthClaims
}

// SetupTest sets up the test suite
func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReportService = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = NewReportHandler(suite.mockReportService)
	suite.orgID = uuid.New()
	suite.claims = managerClaims(suite.orgID)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(claimsMiddleware(&suite.claims))

	reports := suite.httpSuite.Router.Group("/api/v1/reports")
	{
		reports.GET("/campaigns/:id", suite.handler.GetCampaignReport)
		reports.GET("/departments", suite.handler.ListDepartmentReports)
		reports.POST("/scheduled", suite.handler.CreateScheduledReport)
		reports.DELETE("/scheduled/:id", suite.handler.DeleteScheduledReport)
	}
}

// TearDownTest cleans up after each test
func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestGetCampaignReport() {
	campaignID := uuid.New()
	suite.mockReportService.EXPECT().
		GetCampaignReport(gomock.Any(), actorFor(suite.claims), campaignID).
		Return(&models.CampaignReport{CampaignID: campaignID, TotalTargets: 20, EmailsOpened: 10, OpenRate: 50}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/reports/campaigns/"+campaignID.String(), nil)

	var response models.CampaignReport
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), campaignID, response.CampaignID)
	assert.Equal(suite.T(), 50.0, response.OpenRate)
}

func (suite *ReportHandlerTestSuite) TestGetCampaignReportOtherOrganization() {
	campaignID := uuid.New()
	suite.mockReportService.EXPECT().
		GetCampaignReport(gomock.Any(), gomock.Any(), campaignID).
		Return(nil, apperrors.ErrCampaignNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/reports/campaigns/"+campaignID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "campaign not found")
}

func (suite *ReportHandlerTestSuite) TestListDepartmentReportsByCampaign() {
	campaignID := uuid.New()
	suite.mockReportService.EXPECT().
		ListDepartmentReports(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.DepartmentReportListRequest) (*service.DepartmentReportListResponse, error) {
			assert.Equal(suite.T(), campaignID, *req.Campaign)
			return &service.DepartmentReportListResponse{
				Reports: []models.DepartmentReport{{CampaignID: campaignID, Department: "Finance"}},
				Total:   1,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/reports/departments?campaign="+campaignID.String(), nil)

	var response service.DepartmentReportListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Finance", response.Reports[0].Department)
}

func (suite *ReportHandlerTestSuite) TestCreateScheduledReport() {
	suite.mockReportService.EXPECT().
		CreateScheduled(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.ScheduledReportRequest) (*service.ScheduledReportResponse, error) {
			assert.Equal(suite.T(), models.ReportFrequencyWeekly, req.Frequency)
			assert.Equal(suite.T(), []string{"ciso@acme.test"}, req.Recipients)
			return &service.ScheduledReportResponse{
				ID:         uuid.New(),
				Name:       req.Name,
				ReportType: req.ReportType,
				Frequency:  req.Frequency,
				Recipients: req.Recipients,
				IsActive:   true,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/reports/scheduled", map[string]interface{}{
		"name":        "Weekly summary",
		"report_type": "campaign_summary",
		"frequency":   "weekly",
		"recipients":  []string{"ciso@acme.test"},
	})

	var response service.ScheduledReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), models.ReportTypeCampaignSummary, response.ReportType)
}

func (suite *ReportHandlerTestSuite) TestDeleteScheduledReportFailure() {
	id := uuid.New()
	suite.mockReportService.EXPECT().
		DeleteScheduled(actorFor(suite.claims), id).
		Return(errors.New("database is locked")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/reports/scheduled/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to delete scheduled report")
}

// TestReportHandlerTestSuite runs the test suite
func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
