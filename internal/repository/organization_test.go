//go:build integration
// +build integration

package repository

import (
	"testing"

	"phishing-simulator-backend/internal/database/models"
	"phishing-simulator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository against Postgres
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()
	org.ID = uuid.Nil

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
}

func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateDomain() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Organization.WithDomain("acme.com")))

	err := suite.repo.Create(suite.factories.Organization.WithDomain("acme.com"))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.Equal(org.Name, retrieved.Name)
	suite.Equal(org.Domain, retrieved.Domain)
	suite.Equal(models.IndustryTechnology, retrieved.Industry)
}

func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(org)
}

func (suite *OrganizationRepositoryTestSuite) TestGetByDomain() {
	org := suite.factories.Organization.WithDomain("contoso.com")
	suite.Require().NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByDomain("contoso.com")

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

func (suite *OrganizationRepositoryTestSuite) TestListFilters() {
	first := suite.factories.Organization.Create()
	first.Name = "Alpha"
	second := suite.factories.Organization.Create()
	second.Name = "Beta"
	second.Industry = models.IndustryFinance
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.Create(second))

	all, total, err := suite.repo.List(OrganizationFilter{Page: Page{Limit: 25}})
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("Alpha", all[0].Name)

	finance, total, err := suite.repo.List(OrganizationFilter{Page: Page{Limit: 25}, Industry: models.IndustryFinance})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(second.ID, finance[0].ID)

	scoped, total, err := suite.repo.List(OrganizationFilter{Page: Page{Limit: 25}, IDs: []uuid.UUID{first.ID}})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(first.ID, scoped[0].ID)
}

func (suite *OrganizationRepositoryTestSuite) TestCountUsers() {
	org := suite.factories.Organization.Create()
	empty := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(org))
	suite.Require().NoError(suite.repo.Create(empty))
	suite.Require().NoError(suite.users.Create(suite.factories.User.WithOrganization(org.ID)))
	suite.Require().NoError(suite.users.Create(suite.factories.User.WithOrganization(org.ID)))

	counts, err := suite.repo.CountUsers([]uuid.UUID{org.ID, empty.ID})

	suite.NoError(err)
	suite.Equal(int64(2), counts[org.ID])
	suite.Equal(int64(0), counts[empty.ID])
}

func (suite *OrganizationRepositoryTestSuite) TestDeleteDetachesUsers() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(org))
	user := suite.factories.User.WithOrganization(org.ID)
	suite.Require().NoError(suite.users.Create(user))

	suite.NoError(suite.repo.Delete(org.ID))

	retrieved, err := suite.users.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Nil(retrieved.OrganizationID)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
