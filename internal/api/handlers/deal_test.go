package handlers

import (
	"context"
	"net/http"
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DealHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDealService *mocks.MockDealServiceInterface
	handler         *DealHandler
	httpSuite       *testutils.HTTPTestSuite
	orgID           uuid.UUID
	profileID       uuid.UUID
}

func (suite *DealHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDealService = mocks.NewMockDealServiceInterface(suite.ctrl)
	suite.handler = NewDealHandler(suite.mockDealService)
	suite.orgID = uuid.New()
	suite.profileID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	deals := suite.httpSuite.Router.Group("/api/v1/deals", testutils.WithTenant(suite.orgID, suite.profileID))
	{
		deals.POST("", suite.handler.CreateDeal)
		deals.GET("", suite.handler.ListDeals)
		deals.GET("/:id", suite.handler.GetDeal)
		deals.PATCH("/:id/move", suite.handler.MoveDeal)
		deals.PATCH("/:id/status", suite.handler.UpdateDealStatus)
		deals.DELETE("/:id", suite.handler.DeleteDeal)
		deals.POST("/:id/items", suite.handler.AddItem)
		deals.DELETE("/:id/items/:item_id", suite.handler.RemoveItem)
	}
}

func (suite *DealHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DealHandlerTestSuite) TestCreateDealUsesCallerAsOwner() {
	dealID := uuid.New()
	suite.mockDealService.EXPECT().
		Create(suite.orgID, suite.profileID, gomock.Any()).
		DoAndReturn(func(_, ownerID uuid.UUID, req *service.CreateDealRequest) (*service.DealResponse, error) {
			assert.Equal(suite.T(), "Website redesign", req.Title)
			suite.Require().NotNil(req.Value)
			assert.True(suite.T(), decimal.RequireFromString("1500.50").Equal(*req.Value))
			return &service.DealResponse{
				ID:       dealID,
				OwnerID:  &ownerID,
				Title:    req.Title,
				Value:    *req.Value,
				Currency: "BRL",
				Status:   models.DealStatusOpen,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals", map[string]interface{}{
		"title": "Website redesign",
		"value": "1500.50",
	})

	var response service.DealResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), dealID, response.ID)
	assert.Equal(suite.T(), models.DealStatusOpen, response.Status)
	suite.Require().NotNil(response.OwnerID)
	assert.Equal(suite.T(), suite.profileID, *response.OwnerID)
}

func (suite *DealHandlerTestSuite) TestCreateDealCrossTenantReference() {
	suite.mockDealService.EXPECT().
		Create(suite.orgID, suite.profileID, gomock.Any()).
		Return(nil, apperrors.ErrCrossTenantReference).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals", map[string]interface{}{
		"title":      "Foreign contact",
		"contact_id": uuid.New().String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "another organization")
}

func (suite *DealHandlerTestSuite) TestListDealsPassesFilters() {
	boardID := uuid.New()
	ownerID := uuid.New()

	suite.mockDealService.EXPECT().
		List(suite.orgID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, q service.DealListQuery) (*service.DealListResponse, error) {
			suite.Require().NotNil(q.BoardID)
			assert.Equal(suite.T(), boardID, *q.BoardID)
			suite.Require().NotNil(q.OwnerID)
			assert.Equal(suite.T(), ownerID, *q.OwnerID)
			assert.Nil(suite.T(), q.StageID)
			assert.Equal(suite.T(), models.DealStatusWon, q.Status)
			assert.Equal(suite.T(), "redesign", q.Query)
			assert.Equal(suite.T(), 2, q.Page)
			assert.Equal(suite.T(), 10, q.PageSize)
			return &service.DealListResponse{Deals: []service.DealResponse{}, Total: 0, Page: q.Page, PageSize: q.PageSize}, nil
		}).
		Times(1)

	url := "/api/v1/deals?board_id=" + boardID.String() + "&owner_id=" + ownerID.String() +
		"&status=WON&q=%20redesign%20&page=2&page_size=10"
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	var response service.DealListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Page)
}

func (suite *DealHandlerTestSuite) TestListDealsInvalidFilter() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/deals?stage_id=nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid stage_id")
}

func (suite *DealHandlerTestSuite) TestGetDealInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/deals/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid deal ID")
}

func (suite *DealHandlerTestSuite) TestGetDealNotFound() {
	dealID := uuid.New()
	suite.mockDealService.EXPECT().
		GetByID(suite.orgID, dealID).
		Return(nil, apperrors.ErrDealNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/deals/"+dealID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "deal not found")
}

func (suite *DealHandlerTestSuite) TestMoveDeal() {
	dealID := uuid.New()
	stageID := uuid.New()

	suite.mockDealService.EXPECT().
		Move(gomock.Any(), suite.orgID, dealID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, id uuid.UUID, req *service.MoveDealRequest) (*service.DealResponse, error) {
			assert.Equal(suite.T(), stageID, req.StageID)
			suite.Require().NotNil(req.Position)
			assert.Equal(suite.T(), 0, *req.Position)
			return &service.DealResponse{ID: id, StageID: req.StageID, Position: 0}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/deals/"+dealID.String()+"/move", map[string]interface{}{
		"stage_id": stageID.String(),
		"position": 0,
	})

	var response service.DealResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), stageID, response.StageID)
}

func (suite *DealHandlerTestSuite) TestMoveDealToStageOfAnotherBoard() {
	dealID := uuid.New()
	suite.mockDealService.EXPECT().
		Move(gomock.Any(), suite.orgID, dealID, gomock.Any()).
		Return(nil, apperrors.ErrStageBoardMismatch).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/deals/"+dealID.String()+"/move", map[string]interface{}{
		"stage_id": uuid.New().String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "stage does not belong")
}

func (suite *DealHandlerTestSuite) TestUpdateDealStatusInvalid() {
	dealID := uuid.New()
	suite.mockDealService.EXPECT().
		UpdateStatus(suite.orgID, dealID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidStatus).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/deals/"+dealID.String()+"/status", map[string]interface{}{
		"status": "archived",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid status")
}

func (suite *DealHandlerTestSuite) TestDeleteDeal() {
	dealID := uuid.New()
	suite.mockDealService.EXPECT().
		Delete(suite.orgID, dealID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/deals/"+dealID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *DealHandlerTestSuite) TestAddItem() {
	dealID := uuid.New()
	productID := uuid.New()

	suite.mockDealService.EXPECT().
		AddItem(suite.orgID, dealID, gomock.Any()).
		DoAndReturn(func(_, id uuid.UUID, req *service.DealItemRequest) (*service.DealResponse, error) {
			suite.Require().NotNil(req.ProductID)
			assert.Equal(suite.T(), productID, *req.ProductID)
			assert.True(suite.T(), decimal.NewFromInt(2).Equal(req.Quantity))
			return &service.DealResponse{ID: id, Value: decimal.NewFromInt(200)}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/deals/"+dealID.String()+"/items", map[string]interface{}{
		"product_id": productID.String(),
		"quantity":   "2",
	})

	var response service.DealResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.True(suite.T(), decimal.NewFromInt(200).Equal(response.Value))
}

func (suite *DealHandlerTestSuite) TestRemoveItemInvalidItemID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/deals/"+uuid.New().String()+"/items/bad", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid item ID")
}

func TestDealHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}
