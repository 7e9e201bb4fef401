package service_test

import (
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProductServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	repo       *mocks.MockProductRepositoryInterface
	productSvc *service.ProductService
	orgID      uuid.UUID
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockProductRepositoryInterface(suite.ctrl)
	suite.productSvc = service.NewProductService(suite.repo, validator.New())
	suite.orgID = uuid.New()
}

func (suite *ProductServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProductServiceTestSuite) product(sku string) *models.Product {
	p := &models.Product{OrganizationID: suite.orgID, Name: "Consulting hour", SKU: sku, Price: decimal.NewFromInt(250), Active: true}
	p.ID = uuid.New()
	return p
}

func (suite *ProductServiceTestSuite) TestCreateRoundsPrice() {
	suite.repo.EXPECT().GetBySKU(suite.orgID, "CONS-001").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.productSvc.Create(suite.orgID, &service.CreateProductRequest{
		Name:  "Consulting hour",
		SKU:   " CONS-001 ",
		Price: decimal.RequireFromString("249.999"),
	})

	suite.NoError(err)
	suite.Equal("CONS-001", resp.SKU)
	suite.Equal("250.00", resp.Price.StringFixed(2))
	suite.True(resp.Active)
}

func (suite *ProductServiceTestSuite) TestCreateWithoutSKUSkipsLookup() {
	inactive := false
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.productSvc.Create(suite.orgID, &service.CreateProductRequest{Name: "Setup fee", Active: &inactive})

	suite.NoError(err)
	suite.False(resp.Active)
}

func (suite *ProductServiceTestSuite) TestCreateDuplicateSKU() {
	suite.repo.EXPECT().GetBySKU(suite.orgID, "CONS-001").Return(suite.product("CONS-001"), nil)

	resp, err := suite.productSvc.Create(suite.orgID, &service.CreateProductRequest{Name: "Other", SKU: "CONS-001"})

	suite.ErrorIs(err, apperrors.ErrProductExists)
	suite.Nil(resp)
}

func (suite *ProductServiceTestSuite) TestCreateDuplicateSKURace() {
	suite.repo.EXPECT().GetBySKU(suite.orgID, "CONS-001").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	resp, err := suite.productSvc.Create(suite.orgID, &service.CreateProductRequest{Name: "Other", SKU: "CONS-001"})

	suite.ErrorIs(err, apperrors.ErrProductExists)
	suite.Nil(resp)
}

func (suite *ProductServiceTestSuite) TestCreateNegativePrice() {
	resp, err := suite.productSvc.Create(suite.orgID, &service.CreateProductRequest{Name: "Refund", Price: decimal.NewFromInt(-1)})

	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

func (suite *ProductServiceTestSuite) TestUpdateKeepsOwnSKU() {
	product := suite.product("CONS-001")
	sku := "CONS-001"
	price := decimal.RequireFromString("300")

	suite.repo.EXPECT().GetByID(suite.orgID, product.ID).Return(product, nil)
	suite.repo.EXPECT().Update(product).Return(nil)

	resp, err := suite.productSvc.Update(suite.orgID, product.ID, &service.UpdateProductRequest{SKU: &sku, Price: &price})

	suite.NoError(err)
	suite.Equal("300.00", resp.Price.StringFixed(2))
}

func (suite *ProductServiceTestSuite) TestUpdateToTakenSKU() {
	product := suite.product("CONS-001")
	sku := "CONS-002"

	suite.repo.EXPECT().GetByID(suite.orgID, product.ID).Return(product, nil)
	suite.repo.EXPECT().GetBySKU(suite.orgID, "CONS-002").Return(suite.product("CONS-002"), nil)

	resp, err := suite.productSvc.Update(suite.orgID, product.ID, &service.UpdateProductRequest{SKU: &sku})

	suite.ErrorIs(err, apperrors.ErrProductExists)
	suite.Nil(resp)
}

func (suite *ProductServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.repo.EXPECT().Delete(suite.orgID, id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.productSvc.Delete(suite.orgID, id), apperrors.ErrProductNotFound)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
