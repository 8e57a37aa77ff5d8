package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"phishing-simulator-backend/internal/auth"
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

const strongPassword = "Sup3r-Secret!"

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockUserRepositoryInterface
	mockOrgRepo     *mocks.MockOrganizationRepositoryInterface
	mockProvisioner *mocks.MockOrganizationProvisioner
	mockTokens      *mocks.MockTokenIssuer
	userService     *service.UserService
	users           *testutils.UserFactory
	orgID           uuid.UUID
	manager         service.Actor
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockProvisioner = mocks.NewMockOrganizationProvisioner(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenIssuer(suite.ctrl)
	v := validator.New()
	organizations := service.NewOrganizationService(suite.mockOrgRepo, suite.mockProvisioner, v)
	suite.userService = service.NewUserService(suite.mockRepo, organizations, suite.mockTokens, v)
	suite.users = testutils.NewUserFactory()
	suite.orgID = uuid.New()
	suite.manager = service.Actor{UserID: uuid.New(), Role: models.UserRoleCustomer, OrganizationID: &suite.orgID}
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) userWithPassword(password string) *models.User {
	hash, err := auth.HashPassword(password)
	suite.Require().NoError(err)
	user := suite.users.WithOrganization(suite.orgID)
	user.PasswordHash = hash
	return user
}

func (suite *UserServiceTestSuite) signup() *service.CreateUserRequest {
	return &service.CreateUserRequest{
		Username:        "jdoe",
		Email:           "John.Doe@Example.com",
		Password:        strongPassword,
		PasswordConfirm: strongPassword,
		FirstName:       "John",
		LastName:        "Doe",
		Role:            models.UserRoleTarget,
		OrganizationID:  &suite.orgID,
	}
}

func (suite *UserServiceTestSuite) TestLogin() {
	user := suite.userWithPassword(strongPassword)
	suite.mockRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	suite.mockRepo.EXPECT().UpdateLastLogin(user.ID, gomock.Any()).Return(nil)
	suite.mockTokens.EXPECT().GenerateTokenPair(user).Return(&auth.TokenPair{Access: "access", Refresh: "refresh"}, nil)

	result, err := suite.userService.Login(context.Background(), &service.LoginRequest{Email: user.Email, Password: strongPassword})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "access", result.Access)
	assert.Equal(suite.T(), "refresh", result.Refresh)
	assert.Equal(suite.T(), user.ID, result.User.ID)
	assert.NotNil(suite.T(), user.LastLogin)
}

func (suite *UserServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Login(context.Background(), &service.LoginRequest{Email: "ghost@example.com", Password: strongPassword})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestLoginWrongPassword() {
	user := suite.userWithPassword(strongPassword)
	suite.mockRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	_, err := suite.userService.Login(context.Background(), &service.LoginRequest{Email: user.Email, Password: "Wrong-Pass1!"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestLoginDisabledAccount() {
	user := suite.userWithPassword(strongPassword)
	user.IsActive = false
	suite.mockRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	_, err := suite.userService.Login(context.Background(), &service.LoginRequest{Email: user.Email, Password: strongPassword})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAccountDisabled)
}

func (suite *UserServiceTestSuite) TestRefresh() {
	user := suite.users.WithOrganization(suite.orgID)
	suite.mockTokens.EXPECT().
		ValidateRefreshToken(gomock.Any(), "refresh").
		Return(&auth.AuthClaims{UserID: user.ID.String(), TokenType: "refresh"}, nil)
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockTokens.EXPECT().GenerateAccessToken(user).Return("new-access", nil)

	result, err := suite.userService.Refresh(context.Background(), &service.RefreshRequest{Refresh: "refresh"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "new-access", result.Access)
}

func (suite *UserServiceTestSuite) TestRefreshRevokedToken() {
	suite.mockTokens.EXPECT().
		ValidateRefreshToken(gomock.Any(), "refresh").
		Return(nil, auth.ErrTokenRevoked)

	_, err := suite.userService.Refresh(context.Background(), &service.RefreshRequest{Refresh: "refresh"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenRevoked)
}

func (suite *UserServiceTestSuite) TestRefreshMalformedToken() {
	suite.mockTokens.EXPECT().
		ValidateRefreshToken(gomock.Any(), "garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := suite.userService.Refresh(context.Background(), &service.RefreshRequest{Refresh: "garbage"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

func (suite *UserServiceTestSuite) TestLogoutInvalidToken() {
	suite.mockTokens.EXPECT().RevokeRefreshToken(gomock.Any(), "garbage").Return(errors.New("token is malformed"))

	err := suite.userService.Logout(context.Background(), &service.RefreshRequest{Refresh: "garbage"})

	assert.True(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *UserServiceTestSuite) TestChangePassword() {
	user := suite.userWithPassword(strongPassword)
	actor := service.Actor{UserID: user.ID, Role: user.Role, OrganizationID: user.OrganizationID}
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRepo.EXPECT().
		UpdatePassword(user.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, hash string) error {
			assert.True(suite.T(), auth.CheckPassword(hash, "N3w-Password!"))
			return nil
		})

	err := suite.userService.ChangePassword(actor, &service.ChangePasswordRequest{
		OldPassword:        strongPassword,
		NewPassword:        "N3w-Password!",
		NewPasswordConfirm: "N3w-Password!",
	})

	assert.NoError(suite.T(), err)
}

func (suite *UserServiceTestSuite) TestChangePasswordRejections() {
	user := suite.userWithPassword(strongPassword)
	actor := service.Actor{UserID: user.ID, Role: user.Role, OrganizationID: user.OrganizationID}
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil).AnyTimes()

	testCases := []struct {
		name  string
		req   service.ChangePasswordRequest
		field string
	}{
		{
			name:  "confirmation mismatch",
			req:   service.ChangePasswordRequest{OldPassword: strongPassword, NewPassword: "N3w-Password!", NewPasswordConfirm: "N3w-Password?"},
			field: "new_password_confirm",
		},
		{
			name:  "same as old",
			req:   service.ChangePasswordRequest{OldPassword: strongPassword, NewPassword: strongPassword, NewPasswordConfirm: strongPassword},
			field: "new_password",
		},
		{
			name:  "wrong old password",
			req:   service.ChangePasswordRequest{OldPassword: "Not-It-1!", NewPassword: "N3w-Password!", NewPasswordConfirm: "N3w-Password!"},
			field: "old_password",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.userService.ChangePassword(actor, &tc.req)

			var ve *apperrors.ValidationError
			suite.Require().True(errors.As(err, &ve), "expected validation error, got %v", err)
			assert.Equal(suite.T(), tc.field, ve.Field)
		})
	}
}

func (suite *UserServiceTestSuite) TestCreateTargetUser() {
	req := suite.signup()
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(&models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}}, nil)
	suite.mockRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByUsername("jdoe").Return(nil, gorm.ErrRecordNotFound)

	var created *models.User
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			created = user
			return nil
		})
	suite.mockRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.User, error) {
			assert.Equal(suite.T(), created.ID, id)
			return created, nil
		})

	result, err := suite.userService.Create(nil, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "john.doe@example.com", result.Email)
	assert.Equal(suite.T(), models.UserRoleTarget, result.Role)
	assert.True(suite.T(), auth.CheckPassword(created.PasswordHash, strongPassword))
	suite.Require().NotNil(created.Profile)
	assert.Equal(suite.T(), models.SecurityLevelMedium, created.Profile.SecurityLevel)
}

func (suite *UserServiceTestSuite) TestCreateCustomerWithOrganization() {
	req := suite.signup()
	req.Role = models.UserRoleCustomer
	req.OrganizationID = nil
	req.OrganizationData = &service.CreateOrganizationRequest{
		Name:     "Acme",
		Domain:   "Acme.com",
		Industry: models.IndustryFinance,
		Size:     models.OrganizationSizeSmall,
	}
	suite.mockRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByUsername("jdoe").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByDomain("acme.com").Return(nil, gorm.ErrRecordNotFound)

	var org *models.Organization
	var user *models.User
	gomock.InOrder(
		suite.mockRepo.EXPECT().
			CreateWithOrganization(gomock.Any(), gomock.Any()).
			DoAndReturn(func(o *models.Organization, u *models.User) error {
				o.ID = uuid.New()
				u.ID = uuid.New()
				u.OrganizationID = &o.ID
				org, user = o, u
				return nil
			}),
		suite.mockProvisioner.EXPECT().
			ProvisionOrganization(gomock.Any()).
			DoAndReturn(func(o *models.Organization) error {
				assert.Equal(suite.T(), models.PlanTypeBasic, o.SubscriptionTier)
				return nil
			}),
	)
	suite.mockRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(uuid.UUID) (*models.User, error) { return user, nil })

	_, err := suite.userService.Create(nil, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "acme.com", org.Domain)
	assert.True(suite.T(), org.IsActive)
}

func (suite *UserServiceTestSuite) TestCreatePasswordMismatch() {
	req := suite.signup()
	req.PasswordConfirm = "Something-3lse!"

	_, err := suite.userService.Create(nil, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPasswordMismatch)
}

func (suite *UserServiceTestSuite) TestCreateWeakPassword() {
	req := suite.signup()
	req.Password = "password"
	req.PasswordConfirm = "password"

	_, err := suite.userService.Create(nil, req)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	assert.Equal(suite.T(), "password", ve.Field)
}

func (suite *UserServiceTestSuite) TestCreateAdminRequiresAdmin() {
	req := suite.signup()
	req.Role = models.UserRoleAdmin
	req.OrganizationID = nil

	_, err := suite.userService.Create(nil, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminRequired)

	_, err = suite.userService.Create(&suite.manager, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminRequired)
}

func (suite *UserServiceTestSuite) TestCreateCustomerNeedsOneOrganization() {
	req := suite.signup()
	req.Role = models.UserRoleCustomer
	req.OrganizationID = nil

	_, err := suite.userService.Create(nil, req)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	assert.Equal(suite.T(), "organization", ve.Field)
}

func (suite *UserServiceTestSuite) TestCreateUnknownOrganization() {
	req := suite.signup()
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Create(nil, req)

	var ve *apperrors.ValidationError
	suite.Require().True(errors.As(err, &ve))
	assert.Equal(suite.T(), "organization_id", ve.Field)
}

func (suite *UserServiceTestSuite) TestCreateDuplicateEmail() {
	req := suite.signup()
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(&models.Organization{}, nil)
	suite.mockRepo.EXPECT().GetByEmail(gomock.Any()).Return(suite.users.Create(), nil)

	_, err := suite.userService.Create(nil, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestGetByIDOtherOrganization() {
	other := suite.users.WithOrganization(uuid.New())
	suite.mockRepo.EXPECT().GetByID(other.ID).Return(other, nil)

	_, err := suite.userService.GetByID(suite.manager, other.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestGetByIDAsAdmin() {
	other := suite.users.WithOrganization(uuid.New())
	admin := service.Actor{UserID: uuid.New(), Role: models.UserRoleAdmin}
	suite.mockRepo.EXPECT().GetByID(other.ID).Return(other, nil)

	result, err := suite.userService.GetByID(admin, other.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), other.Email, result.Email)
}

func (suite *UserServiceTestSuite) TestGetByIDRequiresManager() {
	actor := service.Actor{UserID: uuid.New(), Role: models.UserRoleTarget, OrganizationID: &suite.orgID}

	_, err := suite.userService.GetByID(actor, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerRequired)
}

func (suite *UserServiceTestSuite) TestStatistics() {
	suite.mockRepo.EXPECT().
		Statistics(&suite.orgID, gomock.Any()).
		DoAndReturn(func(_ *uuid.UUID, since time.Time) (*repository.UserStatistics, error) {
			assert.WithinDuration(suite.T(), time.Now().AddDate(0, 0, -30), since, time.Minute)
			return &repository.UserStatistics{
				TotalUsers:  5,
				ActiveUsers: 4,
				UsersByRole: map[string]int64{"target": 4, "customer": 1},
			}, nil
		})

	result, err := suite.userService.Statistics(suite.manager, nil)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(5), result.TotalUsers)
	assert.Equal(suite.T(), int64(0), result.UsersByRole["admin"])
	assert.Equal(suite.T(), int64(4), result.UsersByRole["target"])
}

func (suite *UserServiceTestSuite) TestStatisticsWithoutOrganization() {
	admin := service.Actor{UserID: uuid.New(), Role: models.UserRoleAdmin}

	_, err := suite.userService.Statistics(admin, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoOrganizationContext)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
