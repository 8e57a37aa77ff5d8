package repository

import (
	"testing"
	"time"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CampaignRepositoryTestSuite covers campaign lifecycle and dispatch queries on sqlite
type CampaignRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	campaigns  *CampaignRepository
	recipients *CampaignTargetRepository
	queue      *EmailQueueRepository
	factories  *testutils.FactorySet
	org        *models.Organization
	template   *models.EmailTemplate
}

func (suite *CampaignRepositoryTestSuite) SetupTest() {
	suite.db = testutils.SetupSQLiteDB(suite.T())
	suite.campaigns = NewCampaignRepository(suite.db)
	suite.recipients = NewCampaignTargetRepository(suite.db)
	suite.queue = NewEmailQueueRepository(suite.db)
	suite.factories = testutils.NewFactorySet()

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.db.Create(suite.org).Error)
	suite.template = suite.factories.Template.Create(suite.org.ID)
	suite.Require().NoError(suite.db.Create(suite.template).Error)
}

func (suite *CampaignRepositoryTestSuite) createTargets(n int) []models.Target {
	targets := make([]models.Target, n)
	for i := range targets {
		targets[i] = *suite.factories.Target.Create(suite.org.ID)
		suite.Require().NoError(suite.db.Create(&targets[i]).Error)
	}
	return targets
}

func (suite *CampaignRepositoryTestSuite) TestCreateFansOutAudience() {
	targets := suite.createTargets(3)
	inactive := suite.factories.Target.Create(suite.org.ID)
	suite.Require().NoError(suite.db.Create(inactive).Error)
	suite.Require().NoError(suite.db.Model(inactive).Update("is_active", false).Error)

	group := &models.TargetGroup{
		OrganizationID: suite.org.ID,
		Name:           "Finance",
		Targets:        []models.Target{targets[0], targets[1], *inactive},
	}
	suite.Require().NoError(suite.db.Create(group).Error)

	campaign := suite.factories.Campaign.Create(suite.org.ID, suite.template.ID)
	campaign.TargetGroups = []models.TargetGroup{*group}
	campaign.IndividualTargets = []models.Target{targets[1], targets[2]}

	suite.Require().NoError(suite.campaigns.Create(campaign))

	pending, err := suite.recipients.CountPending(campaign.ID)
	suite.NoError(err)
	suite.Equal(int64(3), pending)

	created, err := suite.recipients.FanOut(campaign.ID)
	suite.NoError(err)
	suite.Equal(int64(0), created)
}

func (suite *CampaignRepositoryTestSuite) TestTransitionOnlyOneWinner() {
	campaign := suite.factories.Campaign.Create(suite.org.ID, suite.template.ID)
	suite.Require().NoError(suite.campaigns.Create(campaign))
	from := []models.CampaignStatus{models.CampaignStatusDraft, models.CampaignStatusScheduled}
	now := time.Now()

	won, err := suite.campaigns.Transition(campaign.ID, from, models.CampaignStatusRunning, map[string]interface{}{"actual_start": now})
	suite.NoError(err)
	suite.True(won)

	won, err = suite.campaigns.Transition(campaign.ID, from, models.CampaignStatusRunning, nil)
	suite.NoError(err)
	suite.False(won)

	stored, err := suite.campaigns.GetByID(suite.org.ID, campaign.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CampaignStatusRunning, stored.Status)
	suite.NotNil(stored.ActualStart)
}

func (suite *CampaignRepositoryTestSuite) TestGetByIDScopedToOrganization() {
	campaign := suite.factories.Campaign.Create(suite.org.ID, suite.template.ID)
	suite.Require().NoError(suite.campaigns.Create(campaign))

	_, err := suite.campaigns.GetByID(uuid.New(), campaign.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *CampaignRepositoryTestSuite) TestListDueScheduled() {
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	due := suite.factories.Campaign.WithStatus(suite.org.ID, suite.template.ID, models.CampaignStatusScheduled)
	due.ScheduledStart = &past
	later := suite.factories.Campaign.WithStatus(suite.org.ID, suite.template.ID, models.CampaignStatusScheduled)
	later.ScheduledStart = &future
	suite.Require().NoError(suite.campaigns.Create(due))
	suite.Require().NoError(suite.campaigns.Create(later))

	campaigns, err := suite.campaigns.ListDueScheduled(time.Now())

	suite.NoError(err)
	suite.Require().Len(campaigns, 1)
	suite.Equal(due.ID, campaigns[0].ID)
}

func (suite *CampaignRepositoryTestSuite) TestQueueEmailsMarksRecipientsSent() {
	targets := suite.createTargets(2)
	campaign := suite.factories.Campaign.WithStatus(suite.org.ID, suite.template.ID, models.CampaignStatusRunning)
	campaign.IndividualTargets = targets
	suite.Require().NoError(suite.campaigns.Create(campaign))

	pending, err := suite.recipients.ListPending(campaign.ID, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)

	now := time.Now()
	rows := []models.EmailQueue{{
		CampaignID:       campaign.ID,
		TargetID:         pending[0].TargetID,
		CampaignTargetID: pending[0].ID,
		ScheduledTime:    now,
		Status:           models.EmailQueueQueued,
	}}
	queued, err := suite.recipients.QueueEmails(rows, now)
	suite.Require().NoError(err)
	suite.Equal(1, queued)

	counts, err := suite.recipients.StatusCounts(campaign.ID)
	suite.NoError(err)
	suite.Equal(int64(1), counts[string(models.CampaignTargetSent)])
	suite.Equal(int64(1), counts[string(models.CampaignTargetPending)])
	suite.Equal(int64(0), counts[string(models.CampaignTargetClicked)])

	recipient, err := suite.recipients.GetByID(pending[0].ID)
	suite.Require().NoError(err)
	suite.NotNil(recipient.EmailSentAt)
}

func (suite *CampaignRepositoryTestSuite) TestEmailQueueClaimAndCancel() {
	targets := suite.createTargets(3)
	campaign := suite.factories.Campaign.WithStatus(suite.org.ID, suite.template.ID, models.CampaignStatusRunning)
	campaign.IndividualTargets = targets
	suite.Require().NoError(suite.campaigns.Create(campaign))
	pending, err := suite.recipients.ListPending(campaign.ID, 10)
	suite.Require().NoError(err)

	now := time.Now()
	rows := make([]models.EmailQueue, len(pending))
	for i, ct := range pending {
		rows[i] = models.EmailQueue{
			CampaignID:       campaign.ID,
			TargetID:         ct.TargetID,
			CampaignTargetID: ct.ID,
			ScheduledTime:    now.Add(time.Duration(i) * time.Hour),
			Status:           models.EmailQueueQueued,
		}
	}
	_, err = suite.recipients.QueueEmails(rows, now)
	suite.Require().NoError(err)

	last, err := suite.recipients.LastQueuedTime(campaign.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(last)
	suite.WithinDuration(now.Add(2*time.Hour), *last, time.Second)

	due, err := suite.queue.ListDue(now.Add(time.Minute), 10)
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)

	claimed, err := suite.queue.Claim(due[0].ID)
	suite.NoError(err)
	suite.True(claimed)

	claimed, err = suite.queue.Claim(due[0].ID)
	suite.NoError(err)
	suite.False(claimed)

	cancelled, err := suite.queue.CancelQueued(campaign.ID)
	suite.NoError(err)
	suite.Equal(int64(2), cancelled)

	due, err = suite.queue.ListDue(now.Add(24*time.Hour), 10)
	suite.NoError(err)
	suite.Empty(due)
}

func (suite *CampaignRepositoryTestSuite) queueRows(campaign *models.Campaign, pending []models.CampaignTarget, at time.Time) []models.EmailQueue {
	rows := make([]models.EmailQueue, len(pending))
	for i, ct := range pending {
		rows[i] = models.EmailQueue{
			CampaignID:       campaign.ID,
			TargetID:         ct.TargetID,
			CampaignTargetID: ct.ID,
			ScheduledTime:    at,
			Status:           models.EmailQueueQueued,
		}
	}
	return rows
}

func (suite *CampaignRepositoryTestSuite) TestQueueEmailsSkipsRecipientsAlreadyTaken() {
	targets := suite.createTargets(3)
	campaign := suite.factories.Campaign.WithStatus(suite.org.ID, suite.template.ID, models.CampaignStatusRunning)
	campaign.IndividualTargets = targets
	suite.Require().NoError(suite.campaigns.Create(campaign))

	// two dispatchers read the same pending set before either writes
	firstRead, err := suite.recipients.ListPending(campaign.ID, 10)
	suite.Require().NoError(err)
	secondRead, err := suite.recipients.ListPending(campaign.ID, 10)
	suite.Require().NoError(err)
	suite.Require().Len(secondRead, 3)

	now := time.Now()
	queued, err := suite.recipients.QueueEmails(suite.queueRows(campaign, firstRead[:2], now), now)
	suite.NoError(err)
	suite.Equal(2, queued)

	queued, err = suite.recipients.QueueEmails(suite.queueRows(campaign, secondRead, now), now)
	suite.NoError(err)
	suite.Equal(1, queued)

	var perRecipient []struct {
		CampaignTargetID string
		Count            int64
	}
	suite.Require().NoError(suite.db.Model(&models.EmailQueue{}).
		Select("campaign_target_id, COUNT(*) AS count").
		Where("campaign_id = ?", campaign.ID).
		Group("campaign_target_id").
		Scan(&perRecipient).Error)
	suite.Len(perRecipient, 3)
	for _, row := range perRecipient {
		suite.Equal(int64(1), row.Count, row.CampaignTargetID)
	}
}

func (suite *CampaignRepositoryTestSuite) TestLastQueuedTimeEmpty() {
	last, err := suite.recipients.LastQueuedTime(uuid.New())

	suite.NoError(err)
	suite.Nil(last)
}

func TestCampaignRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignRepositoryTestSuite))
}
