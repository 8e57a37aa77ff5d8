package service_test

import (
	"context"
	"errors"
	"testing"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TrackingServiceTestSuite defines the test suite for TrackingService
type TrackingServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRecipients *mocks.MockCampaignTargetRepositoryInterface
	mockEvents     *mocks.MockEmailEventRepositoryInterface
	mockNotifier   *mocks.MockNotifier
	tracking       *service.TrackingService
	factories      *testutils.FactorySet
	visitor        service.TrackingRequest
}

func (suite *TrackingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRecipients = mocks.NewMockCampaignTargetRepositoryInterface(suite.ctrl)
	suite.mockEvents = mocks.NewMockEmailEventRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.tracking = service.NewTrackingService(suite.mockRecipients, suite.mockEvents, suite.mockNotifier)
	suite.factories = testutils.NewFactorySet()
	suite.visitor = service.TrackingRequest{IPAddress: "203.0.113.7", UserAgent: "Mozilla/5.0"}
}

func (suite *TrackingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TrackingServiceTestSuite) recipient() *models.CampaignTarget {
	_, _, _, ct := suite.factories.CreateRunningCampaign()
	suite.mockRecipients.EXPECT().GetByToken(ct.TrackingToken).Return(ct, nil)
	return ct
}

func (suite *TrackingServiceTestSuite) TestOpenAdvancesStatus() {
	ct := suite.recipient()
	suite.mockRecipients.EXPECT().
		Save(ct).
		DoAndReturn(func(saved *models.CampaignTarget) error {
			assert.Equal(suite.T(), models.CampaignTargetOpened, saved.Status)
			assert.NotNil(suite.T(), saved.EmailOpenedAt)
			assert.Equal(suite.T(), "203.0.113.7", saved.IPAddress)
			return nil
		})
	suite.mockEvents.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(event *models.EmailEvent) error {
			assert.Equal(suite.T(), models.EmailEventOpened, event.EventType)
			assert.Equal(suite.T(), ct.CampaignID, event.CampaignID)
			return nil
		})

	err := suite.tracking.Open(context.Background(), ct.TrackingToken, suite.visitor)

	assert.NoError(suite.T(), err)
}

func (suite *TrackingServiceTestSuite) TestOpenIgnoredWhenTrackingDisabled() {
	ct := suite.recipient()
	ct.Campaign.TrackOpens = false

	err := suite.tracking.Open(context.Background(), ct.TrackingToken, suite.visitor)

	assert.NoError(suite.T(), err)
}

func (suite *TrackingServiceTestSuite) TestOpenNeverMovesStatusBackwards() {
	ct := suite.recipient()
	ct.Status = models.CampaignTargetClicked
	suite.mockRecipients.EXPECT().Save(ct).Return(nil)
	suite.mockEvents.EXPECT().Create(gomock.Any()).Return(nil)

	err := suite.tracking.Open(context.Background(), ct.TrackingToken, suite.visitor)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.CampaignTargetClicked, ct.Status)
}

func (suite *TrackingServiceTestSuite) TestUnknownToken() {
	suite.mockRecipients.EXPECT().GetByToken("missing").Return(nil, gorm.ErrRecordNotFound)

	err := suite.tracking.Report(context.Background(), "missing", suite.visitor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTrackingTokenNotFound)
}

func (suite *TrackingServiceTestSuite) TestFinishedCampaignIsNotTracked() {
	ct := suite.recipient()
	ct.Campaign.Status = models.CampaignStatusCompleted

	_, err := suite.tracking.Click(context.Background(), ct.TrackingToken, suite.visitor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTrackingTokenNotFound)
}

func (suite *TrackingServiceTestSuite) TestClickShowsLandingPage() {
	ct := suite.recipient()
	page := suite.factories.LandingPage.Create(ct.Campaign.OrganizationID)
	page.HTMLContent = `<form action="{{submit_url}}"></form>`
	ct.Campaign.LandingPage = page
	suite.mockRecipients.EXPECT().Save(ct).Return(nil)
	suite.mockEvents.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.tracking.Click(context.Background(), ct.TrackingToken, suite.visitor)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.CampaignTargetClicked, ct.Status)
	assert.Contains(suite.T(), result.HTML, `action="/track/`+ct.TrackingToken+`/submit"`)
	assert.Contains(suite.T(), result.HTML, "This was a phishing simulation.")
	assert.Empty(suite.T(), result.RedirectURL)
}

func (suite *TrackingServiceTestSuite) TestClickRedirectsWithoutPageContent() {
	ct := suite.recipient()
	ct.Campaign.LandingPage = &models.LandingPage{Name: "Redirect", RedirectURL: "https://example.org/training"}
	suite.mockRecipients.EXPECT().Save(ct).Return(nil)
	suite.mockEvents.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.tracking.Click(context.Background(), ct.TrackingToken, suite.visitor)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "https://example.org/training", result.RedirectURL)
}

func (suite *TrackingServiceTestSuite) TestHighRiskClickNotifiesManagers() {
	ct := suite.recipient()
	ct.Target.RiskLevel = models.RiskLevelCritical
	suite.mockRecipients.EXPECT().Save(ct).Return(nil)
	suite.mockEvents.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockNotifier.EXPECT().
		NotifyManagers(gomock.Any(), ct.Campaign.OrganizationID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in service.NotificationInput) error {
			assert.Equal(suite.T(), models.NotificationHighRiskClick, in.Type)
			assert.Equal(suite.T(), ct.TargetID, *in.TargetID)
			assert.Contains(suite.T(), in.Message, ct.Target.Email)
			return nil
		})
	suite.mockNotifier.EXPECT().
		TriggerAlerts(gomock.Any(), ct.Campaign.OrganizationID, models.AlertTriggerHighRiskUserClick, gomock.Any()).
		Return(nil)

	_, err := suite.tracking.Click(context.Background(), ct.TrackingToken, suite.visitor)

	assert.NoError(suite.T(), err)
}

func (suite *TrackingServiceTestSuite) TestSubmitDropsSensitiveFields() {
	ct := suite.recipient()
	ct.Campaign.CaptureData = true
	suite.mockRecipients.EXPECT().
		Save(ct).
		DoAndReturn(func(saved *models.CampaignTarget) error {
			assert.Equal(suite.T(), models.CampaignTargetSubmitted, saved.Status)
			assert.Equal(suite.T(), "jane", saved.SubmittedData["username"])
			assert.NotContains(suite.T(), saved.SubmittedData, "Password")
			assert.NotContains(suite.T(), saved.SubmittedData, "api_secret")

			user, ok := saved.SubmittedData["user"].(map[string]interface{})
			suite.Require().True(ok)
			assert.Equal(suite.T(), map[string]interface{}{"email": "jane@example.com"}, user)
			accounts, ok := saved.SubmittedData["accounts"].([]interface{})
			suite.Require().True(ok)
			assert.Equal(suite.T(), []interface{}{map[string]interface{}{"login": "jdoe"}, "plain"}, accounts)
			return nil
		})
	suite.mockEvents.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(event *models.EmailEvent) error {
			assert.Equal(suite.T(), models.EmailEventClicked, event.EventType)
			assert.Equal(suite.T(), "submitted", event.Metadata["action"])
			return nil
		})
	suite.mockNotifier.EXPECT().
		TriggerAlerts(gomock.Any(), ct.Campaign.OrganizationID, models.AlertTriggerCredentialSubmission, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.AlertTriggerType, in service.NotificationInput) error {
			assert.Equal(suite.T(), models.NotificationSecurityBreach, in.Type)
			return nil
		})

	result, err := suite.tracking.Submit(context.Background(), ct.TrackingToken, suite.visitor, map[string]interface{}{
		"username":   "jane",
		"Password":   "hunter2",
		"api_secret": "x",
		"user":       map[string]interface{}{"email": "jane@example.com", "password": "hunter2"},
		"accounts": []interface{}{
			map[string]interface{}{"login": "jdoe", "pwd": "hunter2"},
			"plain",
		},
	})

	suite.Require().NoError(err)
	assert.Contains(suite.T(), result.HTML, "phishing simulation")
}

func (suite *TrackingServiceTestSuite) TestReportFromAnyStatus() {
	ct := suite.recipient()
	ct.Status = models.CampaignTargetSubmitted
	suite.mockRecipients.EXPECT().Save(ct).Return(nil)
	suite.mockEvents.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(event *models.EmailEvent) error {
			assert.Equal(suite.T(), models.EmailEventReported, event.EventType)
			return nil
		})

	err := suite.tracking.Report(context.Background(), ct.TrackingToken, suite.visitor)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.CampaignTargetReported, ct.Status)
	assert.NotNil(suite.T(), ct.ReportedAt)
}

func (suite *TrackingServiceTestSuite) TestSaveFailure() {
	ct := suite.recipient()
	suite.mockRecipients.EXPECT().Save(ct).Return(errors.New("disk full"))

	err := suite.tracking.Report(context.Background(), ct.TrackingToken, suite.visitor)

	assert.ErrorContains(suite.T(), err, "failed to save tracking state")
}

func TestTrackingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingServiceTestSuite))
}
