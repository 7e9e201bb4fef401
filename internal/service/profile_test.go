package service_test

import (
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockProfileRepositoryInterface
	profileSvc *service.ProfileService
	orgID      uuid.UUID
	adminID    uuid.UUID
	memberID   uuid.UUID
	otherOrgID uuid.UUID
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.profileSvc = service.NewProfileService(suite.mockRepo, validator.New())
	suite.orgID = uuid.New()
	suite.adminID = uuid.New()
	suite.memberID = uuid.New()
	suite.otherOrgID = uuid.New()
}

func (suite *ProfileServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProfileServiceTestSuite) profile(id, orgID uuid.UUID, role models.Role) *models.Profile {
	p := &models.Profile{OrganizationID: &orgID, Email: "ana@acme.test", Role: role, Active: true}
	p.ID = id
	return p
}

func (suite *ProfileServiceTestSuite) TestCreateDefaultsToSeller() {
	id := uuid.New()
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Profile) error {
			assert.Equal(suite.T(), id, p.ID)
			assert.Equal(suite.T(), "ana@acme.test", p.Email)
			return nil
		})

	resp, err := suite.profileSvc.Create(&service.CreateProfileRequest{ID: id, Email: " Ana@Acme.test "})

	suite.NoError(err)
	suite.Equal(models.RoleSeller, resp.Role)
	suite.True(resp.Active)
}

func (suite *ProfileServiceTestSuite) TestCreateRejectsInvalidEmail() {
	resp, err := suite.profileSvc.Create(&service.CreateProfileRequest{ID: uuid.New(), Email: "not-an-email"})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
	suite.Nil(resp)
}

func (suite *ProfileServiceTestSuite) TestGetByIDNotFound() {
	suite.mockRepo.EXPECT().GetByID(suite.memberID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.profileSvc.GetByID(suite.memberID)

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
	suite.Nil(resp)
}

func (suite *ProfileServiceTestSuite) TestListNormalizesPagination() {
	suite.mockRepo.EXPECT().
		GetByOrganizationID(suite.orgID, 20, 0).
		Return([]models.Profile{*suite.profile(suite.memberID, suite.orgID, models.RoleSeller)}, int64(1), nil)

	resp, err := suite.profileSvc.List(suite.orgID, 0, 500)

	suite.NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Len(resp.Profiles, 1)
	suite.Equal(int64(1), resp.Total)
}

func (suite *ProfileServiceTestSuite) TestUpdateRolePromotesMember() {
	member := suite.profile(suite.memberID, suite.orgID, models.RoleSeller)
	suite.mockRepo.EXPECT().GetByID(suite.memberID).Return(member, nil)
	suite.mockRepo.EXPECT().Update(member).Return(nil)

	resp, err := suite.profileSvc.UpdateRole(suite.orgID, suite.adminID, suite.memberID, &service.UpdateRoleRequest{Role: models.RoleManager})

	suite.NoError(err)
	suite.Equal(models.RoleManager, resp.Role)
}

func (suite *ProfileServiceTestSuite) TestUpdateRoleRejectsSelfDemotion() {
	admin := suite.profile(suite.adminID, suite.orgID, models.RoleAdmin)
	suite.mockRepo.EXPECT().GetByID(suite.adminID).Return(admin, nil)

	resp, err := suite.profileSvc.UpdateRole(suite.orgID, suite.adminID, suite.adminID, &service.UpdateRoleRequest{Role: models.RoleSeller})

	suite.True(apperrors.IsAuthorization(err))
	suite.Nil(resp)
}

func (suite *ProfileServiceTestSuite) TestUpdateRoleHidesOtherTenants() {
	stranger := suite.profile(suite.memberID, suite.otherOrgID, models.RoleSeller)
	suite.mockRepo.EXPECT().GetByID(suite.memberID).Return(stranger, nil)

	resp, err := suite.profileSvc.UpdateRole(suite.orgID, suite.adminID, suite.memberID, &service.UpdateRoleRequest{Role: models.RoleManager})

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
	suite.Nil(resp)
}

func (suite *ProfileServiceTestSuite) TestUpdateRoleRejectsUnknownRole() {
	resp, err := suite.profileSvc.UpdateRole(suite.orgID, suite.adminID, suite.memberID, &service.UpdateRoleRequest{Role: "owner"})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
	suite.Nil(resp)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
