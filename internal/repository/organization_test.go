//go:build integration
// +build integration

package repository

import (
	"testing"

	"crm-backend/internal/database"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
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

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
}

func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateSlug() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Organization.WithSlug("acme")))

	err := suite.repo.Create(suite.factories.Organization.WithSlug("acme"))

	suite.Error(err)
	suite.True(database.IsUniqueViolation(err))
}

func (suite *OrganizationRepositoryTestSuite) TestGetBySlug() {
	org := suite.factories.Organization.WithSlug("acme")
	suite.Require().NoError(suite.repo.Create(org))

	found, err := suite.repo.GetBySlug("acme")

	suite.NoError(err)
	suite.Equal(org.ID, found.ID)
	suite.Equal("55", found.Settings.DefaultCountryCode)
}

func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(org)
}

func (suite *OrganizationRepositoryTestSuite) TestGetByInstagramPageID() {
	org := suite.factories.Organization.Create()
	org.Settings.InstagramPageID = "17841400000000"
	suite.Require().NoError(suite.repo.Create(org))
	suite.Require().NoError(suite.repo.Create(suite.factories.Organization.Create()))

	found, err := suite.repo.GetByInstagramPageID("17841400000000")

	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	_, err = suite.repo.GetByInstagramPageID("unknown")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrganizationRepositoryTestSuite) TestUpdateSettings() {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.repo.Create(org))

	boardID := uuid.New()
	org.Name = "Renamed"
	org.Settings.AutoCreateDeals = true
	org.Settings.DefaultBoardID = &boardID
	org.Settings.ChatwootAccountID = 7
	suite.Require().NoError(suite.repo.Update(org))

	found, err := suite.repo.GetByID(org.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.True(found.Settings.AutoCreateDeals)
	suite.Require().NotNil(found.Settings.DefaultBoardID)
	suite.Equal(boardID, *found.Settings.DefaultBoardID)
	suite.Equal(int64(7), found.Settings.ChatwootAccountID)
}

func (suite *OrganizationRepositoryTestSuite) TestUpdateKeepsSlug() {
	org := suite.factories.Organization.WithSlug("acme")
	suite.Require().NoError(suite.repo.Create(org))

	org.Slug = "hijacked"
	org.Name = "Acme Ltda"
	suite.Require().NoError(suite.repo.Update(org))

	found, err := suite.repo.GetBySlug("ACME")
	suite.Require().NoError(err)
	suite.Equal("Acme Ltda", found.Name)
}

func (suite *OrganizationRepositoryTestSuite) TestUpdateMissing() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Update(org)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrganizationRepositoryTestSuite) TestGetByEmptyInstagramPageID() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Organization.Create()))

	_, err := suite.repo.GetByInstagramPageID("  ")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
