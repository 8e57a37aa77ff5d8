package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/repository"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CampaignDispatchTestSuite runs dispatch passes against real repositories on sqlite
type CampaignDispatchTestSuite struct {
	suite.Suite
	db        *gorm.DB
	campaigns *service.CampaignService
	factories *testutils.FactorySet
	org       *models.Organization
	template  *models.EmailTemplate
}

func (suite *CampaignDispatchTestSuite) SetupTest() {
	suite.db = testutils.SetupSQLiteDB(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.campaigns = service.NewCampaignService(
		repository.NewCampaignRepository(suite.db),
		repository.NewCampaignTargetRepository(suite.db),
		repository.NewEmailTemplateRepository(suite.db),
		repository.NewLandingPageRepository(suite.db),
		repository.NewTargetGroupRepository(suite.db),
		repository.NewTargetRepository(suite.db),
		repository.NewEmailQueueRepository(suite.db),
		nil, nil, nil, validator.New(),
	)

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.db.Create(suite.org).Error)
	suite.template = suite.factories.Template.Create(suite.org.ID)
	suite.Require().NoError(suite.db.Create(suite.template).Error)
}

func (suite *CampaignDispatchTestSuite) runningCampaign(recipients int) *models.Campaign {
	targets := make([]models.Target, recipients)
	for i := range targets {
		targets[i] = *suite.factories.Target.Create(suite.org.ID)
	}
	suite.Require().NoError(suite.db.CreateInBatches(targets, 100).Error)

	campaign := suite.factories.Campaign.WithStatus(suite.org.ID, suite.template.ID, models.CampaignStatusRunning)
	campaign.IndividualTargets = targets
	suite.Require().NoError(repository.NewCampaignRepository(suite.db).Create(campaign))
	return campaign
}

func (suite *CampaignDispatchTestSuite) queuedTimes(campaign *models.Campaign) []time.Time {
	var rows []models.EmailQueue
	suite.Require().NoError(suite.db.Where("campaign_id = ?", campaign.ID).Find(&rows).Error)
	times := make([]time.Time, len(rows))
	for i, row := range rows {
		times[i] = row.ScheduledTime
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times
}

func (suite *CampaignDispatchTestSuite) TestLaterPassesContinueAfterQueuedEmails() {
	campaign := suite.runningCampaign(service.DispatchBatchSize + 50)
	interval := time.Duration(campaign.SendIntervalMinutes) * time.Minute

	first, err := suite.campaigns.DispatchDue(context.Background())
	suite.Require().NoError(err)
	suite.Equal(service.DispatchBatchSize, first.Queued)

	second, err := suite.campaigns.DispatchDue(context.Background())
	suite.Require().NoError(err)
	suite.Equal(50, second.Queued)

	third, err := suite.campaigns.DispatchDue(context.Background())
	suite.Require().NoError(err)
	suite.Equal(0, third.Queued)

	times := suite.queuedTimes(campaign)
	suite.Require().Len(times, service.DispatchBatchSize+50)
	for i := 1; i < len(times); i++ {
		suite.Equal(interval, times[i].Sub(times[i-1]), "gap before email %d", i)
	}
}

func TestCampaignDispatchTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignDispatchTestSuite))
}
