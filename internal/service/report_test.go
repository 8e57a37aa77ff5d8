package service_test

import (
	"context"
	"testing"
	"time"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/repository"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockReports     *mocks.MockCampaignReportRepositoryInterface
	mockDepartments *mocks.MockDepartmentReportRepositoryInterface
	mockScheduled   *mocks.MockScheduledReportRepositoryInterface
	mockCampaigns   *mocks.MockCampaignRepositoryInterface
	mockRecipients  *mocks.MockCampaignTargetRepositoryInterface
	mockEvents      *mocks.MockEmailEventRepositoryInterface
	mockQueue       *mocks.MockEmailQueueRepositoryInterface
	mockTargets     *mocks.MockTargetRepositoryInterface
	mockNotifier    *mocks.MockNotifier
	reports         *service.ReportService
	factories       *testutils.FactorySet
	orgID           uuid.UUID
	actor           service.Actor
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReports = mocks.NewMockCampaignReportRepositoryInterface(suite.ctrl)
	suite.mockDepartments = mocks.NewMockDepartmentReportRepositoryInterface(suite.ctrl)
	suite.mockScheduled = mocks.NewMockScheduledReportRepositoryInterface(suite.ctrl)
	suite.mockCampaigns = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockRecipients = mocks.NewMockCampaignTargetRepositoryInterface(suite.ctrl)
	suite.mockEvents = mocks.NewMockEmailEventRepositoryInterface(suite.ctrl)
	suite.mockQueue = mocks.NewMockEmailQueueRepositoryInterface(suite.ctrl)
	suite.mockTargets = mocks.NewMockTargetRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.reports = service.NewReportService(suite.mockReports, suite.mockDepartments, suite.mockScheduled,
		suite.mockCampaigns, suite.mockRecipients, suite.mockEvents, suite.mockQueue, suite.mockTargets,
		suite.mockNotifier, validator.New())
	suite.factories = testutils.NewFactorySet()
	suite.orgID = uuid.New()
	suite.actor = service.Actor{UserID: uuid.New(), Role: models.UserRoleCustomer, OrganizationID: &suite.orgID}
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectGeneration sets up one report generation for campaign with a previous completed campaign
func (suite *ReportServiceTestSuite) expectGeneration(campaign *models.Campaign, check func(*models.CampaignReport, []models.DepartmentReport)) {
	previous := suite.factories.Campaign.WithStatus(suite.orgID, campaign.EmailTemplateID, models.CampaignStatusCompleted)
	var saved *models.CampaignReport

	suite.mockCampaigns.EXPECT().GetByID(suite.orgID, campaign.ID).Return(campaign, nil)
	suite.mockRecipients.EXPECT().Counts([]uuid.UUID{campaign.ID}).Return(map[uuid.UUID]repository.CampaignCounts{
		campaign.ID: {TotalTargets: 12, EmailsSent: 10, EmailsOpened: 6, LinksClicked: 4, DataSubmitted: 2},
	}, nil)
	suite.mockRecipients.EXPECT().DepartmentOutcomes(campaign.ID).Return([]repository.DepartmentOutcome{
		{Department: "Finance", Employees: 5, Opened: 3, Clicked: 2, Submitted: 1, Reported: 1},
		{Department: "Sales", Employees: 4, Opened: 1},
	}, nil)
	suite.mockEvents.EXPECT().CountByCampaign(campaign.ID, models.EmailEventBounced).Return(int64(2), nil)
	suite.mockReports.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(r *models.CampaignReport) error {
			saved = r
			return nil
		})
	suite.mockCampaigns.EXPECT().PreviousCompleted(suite.orgID, campaign.ID, gomock.Any()).Return(previous, nil)
	suite.mockDepartments.EXPECT().
		GetForCampaignDepartment(previous.ID, "Finance").
		Return(&models.DepartmentReport{Department: "Finance", RiskScore: 90}, nil)
	suite.mockDepartments.EXPECT().
		GetForCampaignDepartment(previous.ID, "Sales").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockDepartments.EXPECT().
		ReplaceForCampaign(campaign.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, departments []models.DepartmentReport) error {
			check(saved, departments)
			return nil
		})
}

func (suite *ReportServiceTestSuite) TestGenerateCampaignReport() {
	campaign := suite.factories.Campaign.WithStatus(suite.orgID, uuid.New(), models.CampaignStatusCompleted)
	suite.expectGeneration(campaign, func(r *models.CampaignReport, departments []models.DepartmentReport) {
		suite.Require().NotNil(r)
		assert.Equal(suite.T(), 8, r.EmailsDelivered)
		assert.Equal(suite.T(), 1, r.ReportedPhishing)
		assert.Equal(suite.T(), 80.0, r.DeliveryRate)
		assert.Equal(suite.T(), 75.0, r.OpenRate)
		assert.Equal(suite.T(), 50.0, r.ClickRate)
		assert.Equal(suite.T(), 25.0, r.SusceptibilityRate)
		assert.Equal(suite.T(), 12.5, r.AwarenessRate)

		suite.Require().Len(departments, 2)
		assert.Equal(suite.T(), 70.0, departments[0].RiskScore)
		assert.Equal(suite.T(), 20.0, departments[0].ImprovementPercentage)
		assert.Equal(suite.T(), 0.0, departments[1].RiskScore)
		assert.Equal(suite.T(), 0.0, departments[1].ImprovementPercentage)
	})

	err := suite.reports.GenerateCampaignReport(context.Background(), suite.orgID, campaign.ID)

	assert.NoError(suite.T(), err)
}

func (suite *ReportServiceTestSuite) TestGetCampaignReportFresh() {
	campaign := suite.factories.Campaign.WithStatus(suite.orgID, uuid.New(), models.CampaignStatusRunning)
	report := &models.CampaignReport{CampaignID: campaign.ID, GeneratedAt: time.Now()}
	earlier := time.Now().Add(-time.Hour)

	suite.mockCampaigns.EXPECT().GetByID(suite.orgID, campaign.ID).Return(campaign, nil)
	suite.mockReports.EXPECT().GetByCampaign(suite.orgID, campaign.ID).Return(report, nil)
	suite.mockEvents.EXPECT().LatestForCampaign(campaign.ID).Return(&earlier, nil)

	got, err := suite.reports.GetCampaignReport(context.Background(), suite.actor, campaign.ID)

	suite.Require().NoError(err)
	assert.Same(suite.T(), report, got)
}

func (suite *ReportServiceTestSuite) TestGetCampaignReportRegeneratesWhenMissing() {
	campaign := suite.factories.Campaign.WithStatus(suite.orgID, uuid.New(), models.CampaignStatusRunning)
	regenerated := &models.CampaignReport{CampaignID: campaign.ID, GeneratedAt: time.Now()}

	suite.mockCampaigns.EXPECT().GetByID(suite.orgID, campaign.ID).Return(campaign, nil)
	suite.mockReports.EXPECT().GetByCampaign(suite.orgID, campaign.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.expectGeneration(campaign, func(*models.CampaignReport, []models.DepartmentReport) {})
	suite.mockReports.EXPECT().GetByCampaign(suite.orgID, campaign.ID).Return(regenerated, nil)

	got, err := suite.reports.GetCampaignReport(context.Background(), suite.actor, campaign.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), campaign.ID, got.CampaignID)
}

func (suite *ReportServiceTestSuite) TestGetCampaignReportUnknownCampaign() {
	id := uuid.New()
	suite.mockCampaigns.EXPECT().GetByID(suite.orgID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.reports.GetCampaignReport(context.Background(), suite.actor, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotFound)
}

func (suite *ReportServiceTestSuite) TestCreateScheduledDefaultsNextRun() {
	suite.mockScheduled.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.reports.CreateScheduled(suite.actor, &service.ScheduledReportRequest{
		Name:       "Weekly summary",
		ReportType: models.ReportTypeCampaignSummary,
		Frequency:  models.ReportFrequencyWeekly,
		Recipients: []string{" CISO@Example.com "},
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), []string{"ciso@example.com"}, resp.Recipients)
	assert.True(suite.T(), resp.IsActive)
	assert.Equal(suite.T(), suite.actor.UserID, *resp.CreatedBy)
	next, err := time.Parse(time.RFC3339, resp.NextRun)
	suite.Require().NoError(err)
	assert.WithinDuration(suite.T(), time.Now().AddDate(0, 0, 7), next, time.Minute)
}

func (suite *ReportServiceTestSuite) TestCreateScheduledInvalidFrequency() {
	_, err := suite.reports.CreateScheduled(suite.actor, &service.ScheduledReportRequest{
		Name:       "Hourly",
		ReportType: models.ReportTypeCampaignSummary,
		Frequency:  "hourly",
	})

	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	assert.Equal(suite.T(), "frequency", ve.Field)
}

func (suite *ReportServiceTestSuite) TestCreateScheduledUnknownCampaign() {
	id := uuid.New()
	suite.mockCampaigns.EXPECT().GetByID(suite.orgID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.reports.CreateScheduled(suite.actor, &service.ScheduledReportRequest{
		Name:               "Pinned",
		ReportType:         models.ReportTypeSecurityMetrics,
		Frequency:          models.ReportFrequencyMonthly,
		IncludeCampaignIDs: []uuid.UUID{id},
	})

	assert.True(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *ReportServiceTestSuite) TestRunScheduledReportsAdvancesPastNow() {
	owner := uuid.New()
	report := models.ScheduledReport{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		Name:           "Daily",
		Frequency:      models.ReportFrequencyDaily,
		NextRun:        time.Now().AddDate(0, 0, -3),
		CreatedByID:    &owner,
		IsActive:       true,
	}
	suite.mockScheduled.EXPECT().ListDue(gomock.Any()).Return([]models.ScheduledReport{report}, nil)
	suite.mockScheduled.EXPECT().
		MarkRun(report.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, ranAt, next time.Time) error {
			assert.True(suite.T(), next.After(ranAt))
			assert.True(suite.T(), next.Before(ranAt.AddDate(0, 0, 1).Add(time.Second)))
			return nil
		})
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), []uuid.UUID{owner}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []uuid.UUID, in service.NotificationInput) error {
			assert.Equal(suite.T(), models.NotificationReportReady, in.Type)
			return nil
		})

	result, err := suite.reports.RunScheduledReports(context.Background())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, result.Run)
	assert.Equal(suite.T(), 0, result.Failed)
}

func (suite *ReportServiceTestSuite) TestStatistics() {
	suite.mockCampaigns.EXPECT().CountByStatus(suite.orgID).Return(map[string]int64{"running": 2, "scheduled": 1, "completed": 4}, nil)
	suite.mockTargets.EXPECT().Count(suite.orgID).Return(int64(120), nil)
	suite.mockQueue.EXPECT().CountSentSince(suite.orgID, time.Time{}).Return(int64(900), nil)
	suite.mockReports.EXPECT().Averages(suite.orgID).Return(&repository.ReportAverages{AvgOpenRate: 40, AvgClickRate: 12.5}, nil)
	suite.mockDepartments.EXPECT().TopRiskDepartments(suite.orgID, 10).Return(nil, nil)
	suite.mockCampaigns.EXPECT().CountCreatedSince(suite.orgID, gomock.Any()).Return(int64(3), nil)
	suite.mockQueue.EXPECT().CountSentSince(suite.orgID, gomock.Not(time.Time{})).Return(int64(150), nil)

	resp, err := suite.reports.Statistics(suite.actor)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(7), resp.Overview.TotalCampaigns)
	assert.Equal(suite.T(), int64(3), resp.Overview.ActiveCampaigns)
	assert.Equal(suite.T(), int64(900), resp.Overview.TotalEmailsSent)
	assert.Equal(suite.T(), 12.5, resp.CampaignPerformance.AverageClickRate)
	assert.NotNil(suite.T(), resp.DepartmentBreakdown)
	assert.Equal(suite.T(), int64(150), resp.RecentActivity.EmailsThisMonth)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
