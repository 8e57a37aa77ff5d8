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

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockOrgService *mocks.MockOrganizationServiceInterface
	handler        *OrganizationHandler
	httpSuite      *testutils.HTTPTestSuite
	orgID          uuid.UUID
	claims         *auth.AuthClaims
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockOrgService)
	suite.orgID = uuid.New()
	suite.claims = managerClaims(suite.orgID)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(claimsMiddleware(&suite.claims))

	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.POST("/organizations", suite.handler.CreateOrganization)
		v1.GET("/organizations", suite.handler.ListOrganizations)
		v1.GET("/organizations/:id", suite.handler.GetOrganization)
		v1.PUT("/organizations/:id", suite.handler.UpdateOrganization)
		v1.DELETE("/organizations/:id", suite.handler.DeleteOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	suite.mockOrgService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateOrganizationRequest) (*service.OrganizationResponse, error) {
			assert.Equal(suite.T(), "acme.test", req.Domain)
			return &service.OrganizationResponse{
				ID:               suite.orgID,
				Name:             req.Name,
				Domain:           req.Domain,
				SubscriptionTier: models.PlanTypeBasic,
				IsActive:         true,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"name":     "Acme",
		"domain":   "acme.test",
		"industry": "technology",
		"size":     "small",
	})

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), suite.orgID, response.ID)
	assert.Equal(suite.T(), models.PlanTypeBasic, response.SubscriptionTier)
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationDuplicateDomain() {
	suite.mockOrgService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrOrganizationExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"name":     "Acme",
		"domain":   "acme.test",
		"industry": "technology",
		"size":     "small",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "organization already exists")
}

func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	suite.mockOrgService.EXPECT().
		List(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.OrganizationListRequest) (*service.OrganizationListResponse, error) {
			assert.Equal(suite.T(), "acme", req.Search)
			assert.Equal(suite.T(), models.IndustryTechnology, req.Industry)
			return &service.OrganizationListResponse{
				Organizations: []service.OrganizationResponse{{ID: suite.orgID, Name: "Acme"}},
				Total:         1,
				Page:          1,
				PageSize:      25,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?search=acme&industry=technology", nil)

	var response service.OrganizationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Organizations, 1)
	assert.Equal(suite.T(), "Acme", response.Organizations[0].Name)
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/123", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()
	suite.mockOrgService.EXPECT().
		GetByID(actorFor(suite.claims), id).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	suite.mockOrgService.EXPECT().
		Update(actorFor(suite.claims), suite.orgID, gomock.Any()).
		Return(&service.OrganizationResponse{ID: suite.orgID, Name: "Acme Renamed"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+suite.orgID.String(), map[string]interface{}{
		"name":     "Acme Renamed",
		"industry": "technology",
		"size":     "medium",
	})

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Acme Renamed", response.Name)
}

func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	suite.claims = adminClaims()
	suite.mockOrgService.EXPECT().
		Delete(actorFor(suite.claims), suite.orgID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+suite.orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestDeleteOrganizationRequiresAuthentication() {
	suite.claims = nil

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+suite.orgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
