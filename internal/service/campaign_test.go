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

// CampaignServiceTestSuite defines the test suite for CampaignService
type CampaignServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockCampaignRepositoryInterface
	mockRecipients *mocks.MockCampaignTargetRepositoryInterface
	mockTemplates  *mocks.MockEmailTemplateRepositoryInterface
	mockPages      *mocks.MockLandingPageRepositoryInterface
	mockGroups     *mocks.MockTargetGroupRepositoryInterface
	mockTargets    *mocks.MockTargetRepositoryInterface
	mockQueue      *mocks.MockEmailQueueRepositoryInterface
	mockNotifier   *mocks.MockNotifier
	mockReports    *mocks.MockReportGenerator
	mockUsage      *mocks.MockUsageRecorder
	factories      *testutils.FactorySet
	campaigns      *service.CampaignService
	orgID          uuid.UUID
	actor          service.Actor
}

func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockRecipients = mocks.NewMockCampaignTargetRepositoryInterface(suite.ctrl)
	suite.mockTemplates = mocks.NewMockEmailTemplateRepositoryInterface(suite.ctrl)
	suite.mockPages = mocks.NewMockLandingPageRepositoryInterface(suite.ctrl)
	suite.mockGroups = mocks.NewMockTargetGroupRepositoryInterface(suite.ctrl)
	suite.mockTargets = mocks.NewMockTargetRepositoryInterface(suite.ctrl)
	suite.mockQueue = mocks.NewMockEmailQueueRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.mockReports = mocks.NewMockReportGenerator(suite.ctrl)
	suite.mockUsage = mocks.NewMockUsageRecorder(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	suite.campaigns = service.NewCampaignService(
		suite.mockRepo, suite.mockRecipients, suite.mockTemplates, suite.mockPages,
		suite.mockGroups, suite.mockTargets, suite.mockQueue,
		suite.mockNotifier, suite.mockReports, suite.mockUsage, validator.New(),
	)

	suite.orgID = uuid.New()
	suite.actor = service.Actor{UserID: uuid.New(), Role: models.UserRoleCustomer, OrganizationID: &suite.orgID}
}

func (suite *CampaignServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CampaignServiceTestSuite) campaign(status models.CampaignStatus) *models.Campaign {
	return suite.factories.Campaign.WithStatus(suite.orgID, uuid.New(), status)
}

func (suite *CampaignServiceTestSuite) expectCounts(id uuid.UUID) {
	suite.mockRecipients.EXPECT().
		Counts([]uuid.UUID{id}).
		Return(map[uuid.UUID]repository.CampaignCounts{id: {TotalTargets: 2}}, nil)
}

func (suite *CampaignServiceTestSuite) TestStartQueuesFirstBatch() {
	draft := suite.campaign(models.CampaignStatusDraft)
	running := *draft
	running.Status = models.CampaignStatusRunning
	target := suite.factories.Target.Create(suite.orgID)
	pending := []models.CampaignTarget{
		{BaseModel: models.BaseModel{ID: uuid.New()}, CampaignID: draft.ID, TargetID: target.ID, Status: models.CampaignTargetPending},
		{BaseModel: models.BaseModel{ID: uuid.New()}, CampaignID: draft.ID, TargetID: uuid.New(), Status: models.CampaignTargetPending},
	}

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(suite.orgID, draft.ID).Return(draft, nil),
		suite.mockRepo.EXPECT().
			Transition(draft.ID, gomock.Any(), models.CampaignStatusRunning, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, from []models.CampaignStatus, _ models.CampaignStatus, extra map[string]interface{}) (bool, error) {
				assert.ElementsMatch(suite.T(), []models.CampaignStatus{models.CampaignStatusDraft, models.CampaignStatusScheduled}, from)
				assert.Contains(suite.T(), extra, "actual_start")
				return true, nil
			}),
		suite.mockRepo.EXPECT().GetByID(suite.orgID, draft.ID).Return(&running, nil),
		suite.mockRecipients.EXPECT().ListPending(draft.ID, service.DispatchBatchSize).Return(pending, nil),
		suite.mockRecipients.EXPECT().LastQueuedTime(draft.ID).Return(nil, nil),
		suite.mockRecipients.EXPECT().
			QueueEmails(gomock.Any(), gomock.Any()).
			DoAndReturn(func(rows []models.EmailQueue, _ time.Time) (int, error) {
				assert.Len(suite.T(), rows, 2)
				assert.Equal(suite.T(), pending[0].ID, rows[0].CampaignTargetID)
				assert.Equal(suite.T(), models.EmailQueueQueued, rows[1].Status)
				assert.Equal(suite.T(), 5*time.Minute, rows[1].ScheduledTime.Sub(rows[0].ScheduledTime))
				return len(rows), nil
			}),
	)
	suite.mockNotifier.EXPECT().
		NotifyManagers(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in service.NotificationInput) error {
			assert.Equal(suite.T(), models.NotificationCampaignStarted, in.Type)
			assert.Equal(suite.T(), draft.ID, *in.CampaignID)
			return nil
		})
	suite.expectCounts(draft.ID)

	resp, err := suite.campaigns.Action(context.Background(), suite.actor, draft.ID, &service.CampaignActionRequest{Action: " Start "})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Campaign started successfully", resp.Message)
	assert.Equal(suite.T(), models.CampaignStatusRunning, resp.Campaign.Status)
	assert.Equal(suite.T(), int64(2), resp.Campaign.Stats.TotalTargets)
}

func (suite *CampaignServiceTestSuite) TestUnknownAction() {
	c := suite.campaign(models.CampaignStatusDraft)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)

	_, err := suite.campaigns.Action(context.Background(), suite.actor, c.ID, &service.CampaignActionRequest{Action: "archive"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidAction)
}

func (suite *CampaignServiceTestSuite) TestActionRejectedForStatus() {
	c := suite.campaign(models.CampaignStatusCompleted)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)

	_, err := suite.campaigns.Action(context.Background(), suite.actor, c.ID, &service.CampaignActionRequest{Action: "pause"})

	assert.True(suite.T(), apperrors.IsInvalidState(err))
	assert.Contains(suite.T(), err.Error(), "Only running campaigns can be paused")
}

func (suite *CampaignServiceTestSuite) TestActionLosesRace() {
	c := suite.campaign(models.CampaignStatusRunning)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().
		Transition(c.ID, []models.CampaignStatus{models.CampaignStatusRunning}, models.CampaignStatusPaused, gomock.Any()).
		Return(false, nil)

	_, err := suite.campaigns.Action(context.Background(), suite.actor, c.ID, &service.CampaignActionRequest{Action: "pause"})

	assert.True(suite.T(), apperrors.IsInvalidState(err))
}

func (suite *CampaignServiceTestSuite) TestCancelDropsQueuedEmails() {
	c := suite.campaign(models.CampaignStatusPaused)
	cancelled := *c
	cancelled.Status = models.CampaignStatusCancelled

	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().
		Transition(c.ID, gomock.Any(), models.CampaignStatusCancelled, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ []models.CampaignStatus, _ models.CampaignStatus, extra map[string]interface{}) (bool, error) {
			assert.Contains(suite.T(), extra, "end_date")
			return true, nil
		})
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(&cancelled, nil)
	suite.mockQueue.EXPECT().CancelQueued(c.ID).Return(int64(3), nil)
	suite.expectCounts(c.ID)

	resp, err := suite.campaigns.Action(context.Background(), suite.actor, c.ID, &service.CampaignActionRequest{Action: "cancel"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Campaign cancelled successfully", resp.Message)
}

func (suite *CampaignServiceTestSuite) TestCompleteGeneratesReport() {
	c := suite.campaign(models.CampaignStatusRunning)
	completed := *c
	completed.Status = models.CampaignStatusCompleted

	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().Transition(c.ID, gomock.Any(), models.CampaignStatusCompleted, gomock.Any()).Return(true, nil)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(&completed, nil)
	suite.mockReports.EXPECT().GenerateCampaignReport(gomock.Any(), suite.orgID, c.ID).Return(nil)
	suite.mockNotifier.EXPECT().
		NotifyManagers(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in service.NotificationInput) error {
			assert.Equal(suite.T(), models.NotificationCampaignCompleted, in.Type)
			return nil
		})
	suite.expectCounts(c.ID)

	resp, err := suite.campaigns.Action(context.Background(), suite.actor, c.ID, &service.CampaignActionRequest{Action: "complete"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Campaign completed successfully", resp.Message)
}

func (suite *CampaignServiceTestSuite) TestActionRequiresManager() {
	actor := service.Actor{UserID: uuid.New(), Role: models.UserRoleTarget, OrganizationID: &suite.orgID}

	_, err := suite.campaigns.Action(context.Background(), actor, uuid.New(), &service.CampaignActionRequest{Action: "start"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerRequired)
}

func (suite *CampaignServiceTestSuite) TestActionNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(suite.orgID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.campaigns.Action(context.Background(), suite.actor, id, &service.CampaignActionRequest{Action: "start"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotFound)
}

func (suite *CampaignServiceTestSuite) TestCreateScheduledCampaign() {
	template := suite.factories.Template.Create(suite.orgID)
	group := models.TargetGroup{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, Name: "Finance"}
	start := time.Now().Add(24 * time.Hour)
	id := uuid.New()

	suite.mockTemplates.EXPECT().GetByID(suite.orgID, template.ID).Return(template, nil)
	suite.mockGroups.EXPECT().GetByIDs(suite.orgID, []uuid.UUID{group.ID}).Return([]models.TargetGroup{group}, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.Campaign) error {
			assert.Equal(suite.T(), models.CampaignStatusScheduled, c.Status)
			assert.Equal(suite.T(), 5, c.SendIntervalMinutes)
			assert.Equal(suite.T(), suite.actor.UserID, *c.CreatedByID)
			assert.Len(suite.T(), c.TargetGroups, 1)
			c.ID = id
			return nil
		})
	suite.mockUsage.EXPECT().Increment(gomock.Any(), suite.orgID, models.MetricCampaignsCount, 1).Return(nil)
	created := suite.campaign(models.CampaignStatusScheduled)
	created.ID = id
	created.ScheduledStart = &start
	suite.mockRepo.EXPECT().GetByID(suite.orgID, id).Return(created, nil)
	suite.expectCounts(id)

	resp, err := suite.campaigns.Create(context.Background(), suite.actor, &service.CampaignRequest{
		Name:            "  Q4 Awareness ",
		EmailTemplateID: template.ID,
		ScheduledStart:  &start,
		TargetGroupIDs:  []uuid.UUID{group.ID, group.ID},
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), id, resp.ID)
	assert.Equal(suite.T(), models.CampaignStatusScheduled, resp.Status)
}

func (suite *CampaignServiceTestSuite) TestCreateScheduledInPast() {
	template := suite.factories.Template.Create(suite.orgID)
	past := time.Now().Add(-time.Hour)
	suite.mockTemplates.EXPECT().GetByID(suite.orgID, template.ID).Return(template, nil)

	_, err := suite.campaigns.Create(context.Background(), suite.actor, &service.CampaignRequest{
		Name:            "Late",
		EmailTemplateID: template.ID,
		ScheduledStart:  &past,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrScheduledStartInPast)
}

func (suite *CampaignServiceTestSuite) TestCreateWithForeignTemplate() {
	templateID := uuid.New()
	suite.mockTemplates.EXPECT().GetByID(suite.orgID, templateID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.campaigns.Create(context.Background(), suite.actor, &service.CampaignRequest{
		Name:            "Borrowed",
		EmailTemplateID: templateID,
	})

	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	assert.Equal(suite.T(), "email_template_id", ve.Field)
}

func (suite *CampaignServiceTestSuite) TestCreateWithUnknownTargets() {
	template := suite.factories.Template.Create(suite.orgID)
	known := suite.factories.Target.Create(suite.orgID)
	unknown := uuid.New()

	suite.mockTemplates.EXPECT().GetByID(suite.orgID, template.ID).Return(template, nil)
	suite.mockTargets.EXPECT().
		GetByIDs(suite.orgID, []uuid.UUID{known.ID, unknown}).
		Return([]models.Target{*known}, nil)

	_, err := suite.campaigns.Create(context.Background(), suite.actor, &service.CampaignRequest{
		Name:                "Partial",
		EmailTemplateID:     template.ID,
		IndividualTargetIDs: []uuid.UUID{known.ID, unknown},
	})

	assert.True(suite.T(), apperrors.IsBadRequest(err))
	assert.Contains(suite.T(), err.Error(), unknown.String())
}

func (suite *CampaignServiceTestSuite) TestUpdateRunningCampaign() {
	c := suite.campaign(models.CampaignStatusRunning)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)

	_, err := suite.campaigns.Update(suite.actor, c.ID, &service.CampaignRequest{Name: "Renamed", EmailTemplateID: c.EmailTemplateID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignRunning)
}

func (suite *CampaignServiceTestSuite) TestUpdateDraftRebuildsAudience() {
	c := suite.campaign(models.CampaignStatusDraft)
	template := suite.factories.Template.Create(suite.orgID)
	template.ID = c.EmailTemplateID

	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)
	suite.mockTemplates.EXPECT().GetByID(suite.orgID, c.EmailTemplateID).Return(template, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), []models.TargetGroup{}, nil, true).
		DoAndReturn(func(updated *models.Campaign, _ []models.TargetGroup, _ []models.Target, _ bool) error {
			assert.Equal(suite.T(), "Renamed", updated.Name)
			assert.Equal(suite.T(), models.CampaignStatusDraft, updated.Status)
			return nil
		})
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)
	suite.expectCounts(c.ID)

	_, err := suite.campaigns.Update(suite.actor, c.ID, &service.CampaignRequest{
		Name:            "Renamed",
		EmailTemplateID: c.EmailTemplateID,
		TargetGroupIDs:  []uuid.UUID{},
	})

	suite.Require().NoError(err)
}

func (suite *CampaignServiceTestSuite) TestDeleteRunningCampaign() {
	c := suite.campaign(models.CampaignStatusRunning)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)

	err := suite.campaigns.Delete(suite.actor, c.ID)

	assert.True(suite.T(), apperrors.IsInvalidState(err))
}

func (suite *CampaignServiceTestSuite) TestReportsRates() {
	c := suite.campaign(models.CampaignStatusRunning)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, c.ID).Return(c, nil)
	suite.mockRecipients.EXPECT().Counts([]uuid.UUID{c.ID}).Return(map[uuid.UUID]repository.CampaignCounts{
		c.ID: {TotalTargets: 10, EmailsSent: 8, EmailsOpened: 4, LinksClicked: 2, DataSubmitted: 1},
	}, nil)
	suite.mockRecipients.EXPECT().StatusCounts(c.ID).Return(map[string]int64{
		"sent": 3, "opened": 2, "clicked": 1, "submitted": 1, "reported": 1, "pending": 2,
	}, nil)

	resp, err := suite.campaigns.Reports(suite.actor, c.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(7), resp.EmailStats.EmailsDelivered)
	assert.Equal(suite.T(), int64(1), resp.EmailStats.EmailsReported)
	assert.Equal(suite.T(), 50.0, resp.Rates.OpenRate)
	assert.Equal(suite.T(), 25.0, resp.Rates.ClickRate)
	assert.Equal(suite.T(), 12.5, resp.Rates.SubmissionRate)
}

func (suite *CampaignServiceTestSuite) TestDispatchDueStartsScheduled() {
	due := suite.campaign(models.CampaignStatusScheduled)
	running := suite.campaign(models.CampaignStatusRunning)
	pending := []models.CampaignTarget{{BaseModel: models.BaseModel{ID: uuid.New()}, CampaignID: running.ID, TargetID: uuid.New()}}

	suite.mockRepo.EXPECT().ListDueScheduled(gomock.Any()).Return([]models.Campaign{*due}, nil)
	suite.mockRepo.EXPECT().
		Transition(due.ID, []models.CampaignStatus{models.CampaignStatusScheduled}, models.CampaignStatusRunning, gomock.Any()).
		Return(true, nil)
	suite.mockNotifier.EXPECT().NotifyManagers(gomock.Any(), suite.orgID, gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().ListByStatus(models.CampaignStatusRunning).Return([]models.Campaign{*running}, nil)
	suite.mockRecipients.EXPECT().ListPending(running.ID, service.DispatchBatchSize).Return(pending, nil)
	suite.mockRecipients.EXPECT().LastQueuedTime(running.ID).Return(nil, nil)
	suite.mockRecipients.EXPECT().QueueEmails(gomock.Len(1), gomock.Any()).Return(1, nil)

	result, err := suite.campaigns.DispatchDue(context.Background())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, result.Started)
	assert.Equal(suite.T(), 1, result.Queued)
}

func (suite *CampaignServiceTestSuite) TestDispatchDueContinuesAfterQueuedEmails() {
	running := suite.campaign(models.CampaignStatusRunning)
	pending := []models.CampaignTarget{
		{BaseModel: models.BaseModel{ID: uuid.New()}, CampaignID: running.ID, TargetID: uuid.New()},
		{BaseModel: models.BaseModel{ID: uuid.New()}, CampaignID: running.ID, TargetID: uuid.New()},
	}
	last := time.Now().Add(6 * time.Hour)

	suite.mockRepo.EXPECT().ListDueScheduled(gomock.Any()).Return(nil, nil)
	suite.mockRepo.EXPECT().ListByStatus(models.CampaignStatusRunning).Return([]models.Campaign{*running}, nil)
	suite.mockRecipients.EXPECT().ListPending(running.ID, service.DispatchBatchSize).Return(pending, nil)
	suite.mockRecipients.EXPECT().LastQueuedTime(running.ID).Return(&last, nil)
	suite.mockRecipients.EXPECT().
		QueueEmails(gomock.Len(2), gomock.Any()).
		DoAndReturn(func(rows []models.EmailQueue, _ time.Time) (int, error) {
			assert.Equal(suite.T(), last.Add(5*time.Minute), rows[0].ScheduledTime)
			assert.Equal(suite.T(), last.Add(10*time.Minute), rows[1].ScheduledTime)
			// the other recipient was taken by a concurrent pass
			return 1, nil
		})

	result, err := suite.campaigns.DispatchDue(context.Background())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, result.Queued)
}

func (suite *CampaignServiceTestSuite) TestDispatchDueSkipsLostRace() {
	due := suite.campaign(models.CampaignStatusScheduled)

	suite.mockRepo.EXPECT().ListDueScheduled(gomock.Any()).Return([]models.Campaign{*due}, nil)
	suite.mockRepo.EXPECT().Transition(due.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().ListByStatus(models.CampaignStatusRunning).Return(nil, nil)

	result, err := suite.campaigns.DispatchDue(context.Background())

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 0, result.Started)
}

func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
