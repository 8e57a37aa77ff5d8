package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"phishing-simulator-backend/internal/auth"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
	orgID           uuid.UUID
	claims          *auth.AuthClaims
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService)
	suite.orgID = uuid.New()
	suite.claims = managerClaims(suite.orgID)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(claimsMiddleware(&suite.claims))

	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.POST("/auth/login", suite.handler.Login)
		v1.POST("/auth/refresh", suite.handler.Refresh)
		v1.POST("/auth/logout", suite.handler.Logout)
		v1.PUT("/auth/change-password", suite.handler.ChangePassword)
		v1.GET("/profile", suite.handler.GetProfile)
		v1.PUT("/profile", suite.handler.UpdateProfile)
		v1.POST("/users", suite.handler.CreateUser)
		v1.GET("/users", suite.handler.ListUsers)
		v1.GET("/users/:id", suite.handler.GetUser)
		v1.PUT("/users/:id", suite.handler.UpdateUser)
		v1.DELETE("/users/:id", suite.handler.DeleteUser)
		v1.GET("/statistics", suite.handler.Statistics)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestLogin() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		Login(gomock.Any(), &service.LoginRequest{Email: "jane@example.com", Password: "Secret123!"}).
		Return(&service.LoginResponse{
			Access:  "access-token",
			Refresh: "refresh-token",
			User:    &service.UserResponse{ID: userID, Email: "jane@example.com"},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "Secret123!",
	})

	var response service.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "access-token", response.Access)
	assert.Equal(suite.T(), "refresh-token", response.Refresh)
	assert.Equal(suite.T(), userID, response.User.ID)
}

func (suite *UserHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockUserService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "wrong",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid credentials")
}

func (suite *UserHandlerTestSuite) TestLoginMalformedBody() {
	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/auth/login", "not-an-object",
		map[string]string{"Content-Type": "application/json"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *UserHandlerTestSuite) TestRefreshRevokedToken() {
	suite.mockUserService.EXPECT().
		Refresh(gomock.Any(), &service.RefreshRequest{Refresh: "old"}).
		Return(nil, apperrors.ErrRefreshTokenRevoked).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/auth/refresh", map[string]interface{}{"refresh": "old"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "refresh token has been revoked")
}

func (suite *UserHandlerTestSuite) TestLogout() {
	suite.mockUserService.EXPECT().
		Logout(gomock.Any(), &service.RefreshRequest{Refresh: "token"}).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/auth/logout", map[string]interface{}{"refresh": "token"})

	var response MessageResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Logout successful", response.Message)
}

func (suite *UserHandlerTestSuite) TestChangePasswordMismatch() {
	suite.mockUserService.EXPECT().
		ChangePassword(actorFor(suite.claims), gomock.Any()).
		Return(apperrors.ErrPasswordMismatch).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/auth/change-password", map[string]interface{}{
		"old_password":         "Old12345!",
		"new_password":         "New12345!",
		"new_password_confirm": "Different1!",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	assert.Equal(suite.T(), "Passwords don't match", response["error"])
	assert.Equal(suite.T(), "password_confirm", response["field"])
}

func (suite *UserHandlerTestSuite) TestGetProfileRequiresAuthentication() {
	suite.claims = nil

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/profile", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

func (suite *UserHandlerTestSuite) TestGetProfile() {
	suite.mockUserService.EXPECT().
		GetProfile(actorFor(suite.claims)).
		Return(&service.UserResponse{ID: uuid.MustParse(suite.claims.UserID), Username: "manager"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/profile", nil)

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "manager", response.Username)
}

func (suite *UserHandlerTestSuite) TestCreateUserAnonymousSignup() {
	suite.claims = nil
	suite.mockUserService.EXPECT().
		Create(nil, gomock.Any()).
		DoAndReturn(func(actor *service.Actor, req *service.CreateUserRequest) (*service.UserResponse, error) {
			assert.Equal(suite.T(), "newcustomer", req.Username)
			assert.NotNil(suite.T(), req.OrganizationData)
			return &service.UserResponse{ID: uuid.New(), Username: req.Username}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users", map[string]interface{}{
		"username":         "newcustomer",
		"email":            "owner@acme.test",
		"password":         "Secret123!",
		"password_confirm": "Secret123!",
		"role":             "customer",
		"organization_data": map[string]interface{}{
			"name":     "Acme",
			"domain":   "acme.test",
			"industry": "technology",
			"size":     "small",
		},
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUserAdminRequired() {
	suite.mockUserService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrAdminRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users", map[string]interface{}{
		"username": "root2",
		"email":    "root2@example.com",
		"password": "Secret123!",
		"role":     "admin",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Only platform admins")
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.mockUserService.EXPECT().
		List(actorFor(suite.claims), gomock.Any()).
		DoAndReturn(func(actor service.Actor, req *service.UserListRequest) (*service.UserListResponse, error) {
			assert.Equal(suite.T(), 2, req.Page)
			assert.Equal(suite.T(), 10, req.PageSize)
			assert.Equal(suite.T(), "target", string(req.Role))
			return &service.UserListResponse{Users: []service.UserResponse{{ID: uuid.New()}}, Total: 11, Page: 2, PageSize: 10}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users?page=2&page_size=10&role=target", nil)

	var response service.UserListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(11), response.Total)
	assert.Len(suite.T(), response.Users, 1)
}

func (suite *UserHandlerTestSuite) TestGetUserInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid user ID")
}

func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	id := uuid.New()
	suite.mockUserService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	id := uuid.New()
	suite.mockUserService.EXPECT().Delete(actorFor(suite.claims), id).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/users/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestStatisticsInvalidOrganization() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/statistics?organization=abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

func (suite *UserHandlerTestSuite) TestStatisticsServiceError() {
	suite.claims = adminClaims()
	suite.mockUserService.EXPECT().
		Statistics(gomock.Any(), &suite.orgID).
		Return(nil, fmt.Errorf("database unavailable")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/statistics?organization="+suite.orgID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to get user statistics")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
