package repository

import (
	"testing"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TargetRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *TargetRepository
	factories *testutils.FactorySet
	org       *models.Organization
}

func (suite *TargetRepositoryTestSuite) SetupTest() {
	suite.db = testutils.SetupSQLiteDB(suite.T())
	suite.repo = NewTargetRepository(suite.db)
	suite.factories = testutils.NewFactorySet()

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.db.Create(suite.org).Error)
}

func (suite *TargetRepositoryTestSuite) TestEmailUniquePerOrganization() {
	first := suite.factories.Target.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(first))

	dup := suite.factories.Target.Create(suite.org.ID)
	dup.Email = first.Email
	suite.Error(suite.repo.Create(dup))

	other := suite.factories.Organization.Create()
	suite.Require().NoError(suite.db.Create(other).Error)
	elsewhere := suite.factories.Target.Create(other.ID)
	elsewhere.Email = first.Email
	suite.NoError(suite.repo.Create(elsewhere))
}

func (suite *TargetRepositoryTestSuite) TestCreateBatchRollsBackOnConflict() {
	existing := suite.factories.Target.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(existing))

	fresh := suite.factories.Target.Create(suite.org.ID)
	clash := suite.factories.Target.Create(suite.org.ID)
	clash.Email = existing.Email

	suite.Error(suite.repo.CreateBatch([]*models.Target{fresh, clash}))

	count, err := suite.repo.Count(suite.org.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *TargetRepositoryTestSuite) TestRecipientUniquePerCampaign() {
	target := suite.factories.Target.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(target))
	template := suite.factories.Template.Create(suite.org.ID)
	suite.Require().NoError(suite.db.Create(template).Error)
	campaign := suite.factories.Campaign.Create(suite.org.ID, template.ID)
	suite.Require().NoError(suite.db.Omit(clause.Associations).Create(campaign).Error)

	first := suite.factories.CampaignTarget.Create(campaign, target)
	suite.Require().NoError(suite.db.Omit(clause.Associations).Create(first).Error)

	second := suite.factories.CampaignTarget.Create(campaign, target)
	suite.Error(suite.db.Omit(clause.Associations).Create(second).Error)
}

func (suite *TargetRepositoryTestSuite) TestExistingEmailsAndIDs() {
	a := suite.factories.Target.Create(suite.org.ID)
	b := suite.factories.Target.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.CreateBatch([]*models.Target{a, b}))

	emails, err := suite.repo.ExistingEmails(suite.org.ID, []string{a.Email, "nobody@example.com"})
	suite.NoError(err)
	suite.Equal([]string{a.Email}, emails)

	ids, err := suite.repo.ExistingIDs(suite.org.ID, []uuid.UUID{b.ID, uuid.New()})
	suite.NoError(err)
	suite.Equal([]uuid.UUID{b.ID}, ids)

	found, err := suite.repo.GetByIDs(uuid.New(), []uuid.UUID{a.ID, b.ID})
	suite.NoError(err)
	suite.Empty(found)
}

func (suite *TargetRepositoryTestSuite) TestStatistics() {
	high := suite.factories.Target.WithDepartment(suite.org.ID, "Sales")
	high.RiskLevel = models.RiskLevelHigh
	noDept := suite.factories.Target.WithDepartment(suite.org.ID, "")
	inactive := suite.factories.Target.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.CreateBatch([]*models.Target{high, noDept, inactive}))
	suite.Require().NoError(suite.db.Model(inactive).Update("is_active", false).Error)

	stats, err := suite.repo.Statistics(suite.org.ID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), stats.TotalTargets)
	suite.Equal(int64(2), stats.ActiveTargets)
	suite.Equal(int64(1), stats.ByRiskLevel[string(models.RiskLevelHigh)])
	suite.Equal(int64(2), stats.ByRiskLevel[string(models.RiskLevelMedium)])
	suite.Equal(int64(0), stats.ByRiskLevel[string(models.RiskLevelLow)])
	suite.ElementsMatch([]DepartmentCount{{Department: "Finance", Count: 1}, {Department: "Sales", Count: 1}}, stats.ByDepartment)
}

func TestTargetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TargetRepositoryTestSuite))
}
