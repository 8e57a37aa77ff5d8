package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"phishing-simulator-backend/internal/database/models"
	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/importer"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TargetServiceTestSuite defines the test suite for TargetService
type TargetServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockTargetRepositoryInterface
	mockGroups  *mocks.MockTargetGroupRepositoryInterface
	mockTags    *mocks.MockTargetTagRepositoryInterface
	mockImports *mocks.MockTargetImportRepositoryInterface
	mockUsage   *mocks.MockUsageRecorder
	targets     *service.TargetService
	factories   *testutils.FactorySet
	orgID       uuid.UUID
	actor       service.Actor
}

func (suite *TargetServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTargetRepositoryInterface(suite.ctrl)
	suite.mockGroups = mocks.NewMockTargetGroupRepositoryInterface(suite.ctrl)
	suite.mockTags = mocks.NewMockTargetTagRepositoryInterface(suite.ctrl)
	suite.mockImports = mocks.NewMockTargetImportRepositoryInterface(suite.ctrl)
	suite.mockUsage = mocks.NewMockUsageRecorder(suite.ctrl)
	suite.targets = service.NewTargetService(suite.mockRepo, suite.mockGroups, suite.mockTags, suite.mockImports,
		suite.mockUsage, validator.New())
	suite.factories = testutils.NewFactorySet()
	suite.orgID = uuid.New()
	suite.actor = service.Actor{UserID: uuid.New(), Role: models.UserRoleCustomer, OrganizationID: &suite.orgID}
}

func (suite *TargetServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TargetServiceTestSuite) TestCreateTarget() {
	tag := models.TargetTag{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, Name: "VIP", Color: "#ff0000"}

	suite.mockRepo.EXPECT().GetByEmail(suite.orgID, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTags.EXPECT().GetByIDs(suite.orgID, []uuid.UUID{tag.ID}).Return([]models.TargetTag{tag}, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(t *models.Target) error {
			assert.Equal(suite.T(), "jane@example.com", t.Email)
			assert.Equal(suite.T(), suite.orgID, t.OrganizationID)
			assert.Len(suite.T(), t.Tags, 1)
			return nil
		})
	suite.mockUsage.EXPECT().Increment(gomock.Any(), suite.orgID, models.MetricTargetsCount, 1).Return(nil)

	resp, err := suite.targets.Create(context.Background(), suite.actor, &service.TargetRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		TagIDs:    []uuid.UUID{tag.ID},
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Jane Doe", resp.FullName)
	assert.Equal(suite.T(), models.RiskLevelMedium, resp.RiskLevel)
	suite.Require().Len(resp.Tags, 1)
	assert.Equal(suite.T(), "VIP", resp.Tags[0].Name)
}

func (suite *TargetServiceTestSuite) TestCreateTargetDuplicateEmail() {
	existing := suite.factories.Target.Create(suite.orgID)
	suite.mockRepo.EXPECT().GetByEmail(suite.orgID, existing.Email).Return(existing, nil)

	_, err := suite.targets.Create(context.Background(), suite.actor, &service.TargetRequest{
		Email: existing.Email, FirstName: "Jane", LastName: "Doe",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTargetExists)
}

func (suite *TargetServiceTestSuite) TestCreateTargetInvalidPhone() {
	_, err := suite.targets.Create(context.Background(), suite.actor, &service.TargetRequest{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Phone: "call me",
	})

	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	assert.Equal(suite.T(), "phone", ve.Field)
}

func (suite *TargetServiceTestSuite) TestCreateTargetRequiresManager() {
	actor := service.Actor{UserID: uuid.New(), Role: models.UserRoleTarget, OrganizationID: &suite.orgID}

	_, err := suite.targets.Create(context.Background(), actor, &service.TargetRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerRequired)
}

func (suite *TargetServiceTestSuite) TestDeleteTargetReleasesUsage() {
	target := suite.factories.Target.Create(suite.orgID)
	suite.mockRepo.EXPECT().GetByID(suite.orgID, target.ID).Return(target, nil)
	suite.mockRepo.EXPECT().Delete(suite.orgID, target.ID).Return(nil)
	suite.mockUsage.EXPECT().Increment(gomock.Any(), suite.orgID, models.MetricTargetsCount, -1).Return(nil)

	err := suite.targets.Delete(context.Background(), suite.actor, target.ID)

	assert.NoError(suite.T(), err)
}

func (suite *TargetServiceTestSuite) TestBulkCreateFromRecords() {
	suite.mockRepo.EXPECT().ExistingEmails(suite.orgID, gomock.Any()).Return([]string{"OLD@example.com"}, nil)
	suite.mockRepo.EXPECT().
		CreateBatch(gomock.Len(1)).
		DoAndReturn(func(targets []*models.Target) error {
			assert.Equal(suite.T(), "ann@example.com", targets[0].Email)
			assert.Equal(suite.T(), models.RiskLevelHigh, targets[0].RiskLevel)
			return nil
		})
	suite.mockImports.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.TargetImport) error {
			assert.Equal(suite.T(), 5, record.TotalRecords)
			assert.Equal(suite.T(), 1, record.SuccessfulImports)
			assert.Equal(suite.T(), 4, record.FailedImports)
			assert.Equal(suite.T(), models.TargetImportCompleted, record.Status)
			assert.Equal(suite.T(), suite.actor.UserID, *record.ImportedByID)
			return nil
		})
	suite.mockUsage.EXPECT().Increment(gomock.Any(), suite.orgID, models.MetricTargetsCount, 1).Return(nil)

	resp, err := suite.targets.BulkCreate(context.Background(), suite.actor, &service.BulkImportInput{
		Targets: []map[string]interface{}{
			{"email": "Ann@Example.com", "first_name": "Ann", "last_name": "Lee", "risk_level": "HIGH"},
			{"email": "ann@example.com", "first_name": "Ann", "last_name": "Again"},
			{"first_name": "No", "last_name": "Email"},
			{"email": "old@example.com", "first_name": "Old", "last_name": "Timer"},
			{"email": "bob@example.com", "first_name": "Bob"},
		},
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, resp.CreatedCount)
	assert.Equal(suite.T(), 4, resp.ErrorCount)
	assert.Contains(suite.T(), resp.Errors, "Row 2: duplicate email in file (ann@example.com)")
	assert.Contains(suite.T(), resp.Errors, "Row 3: email is required")
	assert.Contains(suite.T(), resp.Errors, "Email already exists: old@example.com")
	assert.Contains(suite.T(), resp.Errors, "Row 5: last_name: This field is required.")
	suite.Require().Len(resp.CreatedTargets, 1)
}

func (suite *TargetServiceTestSuite) TestBulkCreateCapsReportedErrors() {
	const failing = 600
	records := make([]map[string]interface{}, 0, failing+1)
	records = append(records, map[string]interface{}{"email": "kept@example.com", "first_name": "Kept", "last_name": "Row"})
	for i := 0; i < failing; i++ {
		records = append(records, map[string]interface{}{"first_name": fmt.Sprintf("Nobody%d", i), "last_name": "Missing"})
	}

	suite.mockRepo.EXPECT().ExistingEmails(suite.orgID, []string{"kept@example.com"}).Return(nil, nil)
	suite.mockRepo.EXPECT().CreateBatch(gomock.Len(1)).Return(nil)
	suite.mockImports.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.TargetImport) error {
			assert.Equal(suite.T(), failing+1, record.TotalRecords)
			assert.Equal(suite.T(), failing, record.FailedImports)
			assert.Equal(suite.T(), 499, strings.Count(record.ErrorLog, "\n"))
			assert.True(suite.T(), strings.HasPrefix(record.ErrorLog, "Row 2: email is required"))
			return nil
		})
	suite.mockUsage.EXPECT().Increment(gomock.Any(), suite.orgID, models.MetricTargetsCount, 1).Return(nil)

	resp, err := suite.targets.BulkCreate(context.Background(), suite.actor, &service.BulkImportInput{Targets: records})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, resp.CreatedCount)
	assert.Equal(suite.T(), failing, resp.ErrorCount)
	assert.Len(suite.T(), resp.Errors, 100)
	assert.Equal(suite.T(), "Row 101: email is required", resp.Errors[99])
}

func (suite *TargetServiceTestSuite) TestBulkCreateFromCSV() {
	csv := "email,first_name,last_name,department,is_active\nzed@example.com,Zed,Quinn,Legal,no\n"
	suite.mockRepo.EXPECT().ExistingEmails(suite.orgID, []string{"zed@example.com"}).Return(nil, nil)
	suite.mockRepo.EXPECT().
		CreateBatch(gomock.Len(1)).
		DoAndReturn(func(targets []*models.Target) error {
			assert.Equal(suite.T(), "Legal", targets[0].Department)
			assert.False(suite.T(), targets[0].IsActive)
			return nil
		})
	suite.mockImports.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.TargetImport) error {
			assert.Equal(suite.T(), "staff.csv", record.FileName)
			return nil
		})
	suite.mockUsage.EXPECT().Increment(gomock.Any(), suite.orgID, models.MetricTargetsCount, 1).Return(nil)

	resp, err := suite.targets.BulkCreate(context.Background(), suite.actor, &service.BulkImportInput{
		FileName: "staff.csv",
		File:     strings.NewReader(csv),
		Size:     int64(len(csv)),
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, resp.CreatedCount)
	assert.Empty(suite.T(), resp.Errors)
}

func (suite *TargetServiceTestSuite) TestBulkCreateInsertFailureIsLogged() {
	suite.mockRepo.EXPECT().ExistingEmails(suite.orgID, gomock.Any()).Return(nil, nil)
	suite.mockRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("unique violation"))
	suite.mockImports.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.TargetImport) error {
			assert.Equal(suite.T(), models.TargetImportFailed, record.Status)
			assert.Equal(suite.T(), 0, record.SuccessfulImports)
			assert.Contains(suite.T(), record.ErrorLog, "Import failed due to an unexpected error.")
			return nil
		})

	_, err := suite.targets.BulkCreate(context.Background(), suite.actor, &service.BulkImportInput{
		Targets: []map[string]interface{}{{"email": "a@example.com", "first_name": "A", "last_name": "B"}},
	})

	assert.ErrorContains(suite.T(), err, "failed to create targets")
}

func (suite *TargetServiceTestSuite) TestBulkCreateRejectsBadInput() {
	_, err := suite.targets.BulkCreate(context.Background(), suite.actor, &service.BulkImportInput{})
	assert.ErrorIs(suite.T(), err, importer.ErrNoImportProvided)

	_, err = suite.targets.BulkCreate(context.Background(), suite.actor, &service.BulkImportInput{
		FileName: "staff.pdf",
		File:     strings.NewReader("%PDF"),
		Size:     4,
	})
	assert.ErrorIs(suite.T(), err, importer.ErrUnsupportedType)

	_, err = suite.targets.BulkCreate(context.Background(), suite.actor, &service.BulkImportInput{
		FileName: "huge.csv",
		File:     strings.NewReader(""),
		Size:     importer.MaxUploadBytes + 1,
	})
	assert.ErrorIs(suite.T(), err, importer.ErrFileTooLarge)
}

func (suite *TargetServiceTestSuite) TestCreateGroupDuplicateName() {
	existing := &models.TargetGroup{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, Name: "Finance"}
	suite.mockGroups.EXPECT().GetByName(suite.orgID, "Finance").Return(existing, nil)

	_, err := suite.targets.CreateGroup(suite.actor, &service.TargetGroupRequest{Name: " Finance "})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTargetGroupExists)
}

func (suite *TargetServiceTestSuite) TestCreateGroupWithForeignTarget() {
	foreign := uuid.New()
	suite.mockGroups.EXPECT().GetByName(suite.orgID, "Finance").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByIDs(suite.orgID, []uuid.UUID{foreign}).Return(nil, nil)

	_, err := suite.targets.CreateGroup(suite.actor, &service.TargetGroupRequest{Name: "Finance", TargetIDs: []uuid.UUID{foreign}})

	assert.True(suite.T(), apperrors.IsBadRequest(err))
	assert.Contains(suite.T(), err.Error(), "Invalid target IDs")
}

func (suite *TargetServiceTestSuite) TestCreateGroupWithMembers() {
	member := suite.factories.Target.Create(suite.orgID)
	suite.mockGroups.EXPECT().GetByName(suite.orgID, "Finance").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByIDs(suite.orgID, []uuid.UUID{member.ID}).Return([]models.Target{*member}, nil)
	suite.mockGroups.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.targets.CreateGroup(suite.actor, &service.TargetGroupRequest{Name: "Finance", TargetIDs: []uuid.UUID{member.ID}})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), resp.TargetCount)
}

func TestTargetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TargetServiceTestSuite))
}
