package service_test

import (
	"context"
	"errors"
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DealServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	deals     *mocks.MockDealRepositoryInterface
	boards    *mocks.MockBoardRepositoryInterface
	stages    *mocks.MockStageRepositoryInterface
	contacts  *mocks.MockContactRepositoryInterface
	companies *mocks.MockCompanyRepositoryInterface
	products  *mocks.MockProductRepositoryInterface
	notifier  *mocks.MockNotifier
	dealSvc   *service.DealService

	orgID   uuid.UUID
	boardID uuid.UUID
	stageA  *models.Stage
	stageB  *models.Stage
}

func (suite *DealServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.deals = mocks.NewMockDealRepositoryInterface(suite.ctrl)
	suite.boards = mocks.NewMockBoardRepositoryInterface(suite.ctrl)
	suite.stages = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.contacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.companies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.products = mocks.NewMockProductRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)

	suite.dealSvc = service.NewDealService(service.DealDependencies{
		Deals:     suite.deals,
		Boards:    suite.boards,
		Stages:    suite.stages,
		Contacts:  suite.contacts,
		Companies: suite.companies,
		Products:  suite.products,
		Notifier:  suite.notifier,
	}, validator.New())

	suite.orgID = uuid.New()
	suite.boardID = uuid.New()
	suite.stageA = suite.stage("Lead", 0)
	suite.stageB = suite.stage("Proposal", 1)
}

func (suite *DealServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DealServiceTestSuite) stage(name string, position int) *models.Stage {
	st := &models.Stage{BoardID: suite.boardID, Name: name, Position: position}
	st.ID = uuid.New()
	st.OrganizationID = suite.orgID
	return st
}

func (suite *DealServiceTestSuite) board() *models.Board {
	b := &models.Board{Name: "Sales", IsDefault: true}
	b.ID = suite.boardID
	b.OrganizationID = suite.orgID
	return b
}

func (suite *DealServiceTestSuite) deal() *models.Deal {
	d := &models.Deal{
		BoardID:  suite.boardID,
		StageID:  suite.stageA.ID,
		Title:    "Website redesign",
		Currency: "BRL",
		Status:   models.DealStatusOpen,
	}
	d.ID = uuid.New()
	d.OrganizationID = suite.orgID
	return d
}

func (suite *DealServiceTestSuite) TestCreateUsesDefaultBoardAndFirstStage() {
	ownerID := uuid.New()
	value := decimal.RequireFromString("1500.456")

	suite.boards.EXPECT().GetDefault(suite.orgID).Return(suite.board(), nil)
	suite.stages.EXPECT().FirstStage(suite.boardID).Return(suite.stageA, nil)
	suite.deals.EXPECT().NextPosition(suite.stageA.ID).Return(4, nil)
	suite.deals.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.dealSvc.Create(suite.orgID, ownerID, &service.CreateDealRequest{
		Title: "Website redesign",
		Value: &value,
	})

	suite.NoError(err)
	suite.Equal(suite.boardID, resp.BoardID)
	suite.Equal(suite.stageA.ID, resp.StageID)
	suite.Equal(4, resp.Position)
	suite.Equal(&ownerID, resp.OwnerID)
	suite.Equal("BRL", resp.Currency)
	suite.Equal(models.DealStatusOpen, resp.Status)
	suite.Equal("1500.46", resp.Value.StringFixed(2))
}

func (suite *DealServiceTestSuite) TestCreateRejectsStageFromOtherBoard() {
	foreign := suite.stage("Elsewhere", 0)
	foreign.BoardID = uuid.New()

	suite.boards.EXPECT().GetDefault(suite.orgID).Return(suite.board(), nil)
	suite.stages.EXPECT().GetByID(suite.orgID, foreign.ID).Return(foreign, nil)

	resp, err := suite.dealSvc.Create(suite.orgID, uuid.Nil, &service.CreateDealRequest{
		Title:   "Deal",
		StageID: &foreign.ID,
	})

	suite.ErrorIs(err, apperrors.ErrStageBoardMismatch)
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestCreateRejectsUnknownContact() {
	contactID := uuid.New()

	suite.boards.EXPECT().GetDefault(suite.orgID).Return(suite.board(), nil)
	suite.stages.EXPECT().FirstStage(suite.boardID).Return(suite.stageA, nil)
	suite.contacts.EXPECT().GetByID(suite.orgID, contactID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.dealSvc.Create(suite.orgID, uuid.Nil, &service.CreateDealRequest{
		Title:     "Deal",
		ContactID: &contactID,
	})

	suite.ErrorIs(err, apperrors.ErrContactNotFound)
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestCreateWithoutDefaultBoard() {
	suite.boards.EXPECT().GetDefault(suite.orgID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.dealSvc.Create(suite.orgID, uuid.Nil, &service.CreateDealRequest{Title: "Deal"})

	suite.ErrorIs(err, apperrors.ErrBoardNotFound)
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestCreateForContact() {
	companyID := uuid.New()
	contact := &models.Contact{Name: "Maria", CompanyID: &companyID}
	contact.ID = uuid.New()
	contact.OrganizationID = suite.orgID

	suite.boards.EXPECT().GetDefault(suite.orgID).Return(suite.board(), nil)
	suite.stages.EXPECT().FirstStage(suite.boardID).Return(suite.stageA, nil)
	suite.deals.EXPECT().NextPosition(suite.stageA.ID).Return(0, nil)
	suite.deals.EXPECT().Create(gomock.Any()).Return(nil)

	deal, err := suite.dealSvc.CreateForContact(suite.orgID, nil, contact, "WhatsApp: Maria")

	suite.NoError(err)
	suite.Equal(&contact.ID, deal.ContactID)
	suite.Equal(&companyID, deal.CompanyID)
	suite.Equal("WhatsApp: Maria", deal.Title)
}

func (suite *DealServiceTestSuite) TestListRejectsUnknownStatus() {
	resp, err := suite.dealSvc.List(suite.orgID, service.DealListQuery{Status: "archived"})

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestList() {
	suite.deals.EXPECT().
		List(suite.orgID, gomock.Any(), 10, 10).
		Return([]models.Deal{*suite.deal()}, int64(11), nil)

	resp, err := suite.dealSvc.List(suite.orgID, service.DealListQuery{Status: models.DealStatusOpen, Page: 2, PageSize: 10})

	suite.NoError(err)
	suite.Len(resp.Deals, 1)
	suite.Equal(int64(11), resp.Total)
	suite.Equal(2, resp.Page)
}

func (suite *DealServiceTestSuite) TestMoveNotifiesStageChange() {
	deal := suite.deal()
	ctx := context.Background()

	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.stages.EXPECT().GetByID(suite.orgID, suite.stageB.ID).Return(suite.stageB, nil)
	suite.deals.EXPECT().NextPosition(suite.stageB.ID).Return(2, nil)
	suite.deals.EXPECT().Update(deal).Return(nil)
	suite.notifier.EXPECT().
		Notify(ctx, service.EventDealStageChanged, suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, data interface{}) error {
			payload := data.(map[string]interface{})
			suite.Equal(suite.stageA.ID, payload["from_stage_id"])
			suite.Equal(suite.stageB.ID, payload["to_stage_id"])
			suite.Equal("Proposal", payload["to_stage_name"])
			return nil
		})

	resp, err := suite.dealSvc.Move(ctx, suite.orgID, deal.ID, &service.MoveDealRequest{StageID: suite.stageB.ID})

	suite.NoError(err)
	suite.Equal(suite.stageB.ID, resp.StageID)
	suite.Equal(2, resp.Position)
}

func (suite *DealServiceTestSuite) TestMoveWithinStageDoesNotNotify() {
	deal := suite.deal()
	position := 7

	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.stages.EXPECT().GetByID(suite.orgID, suite.stageA.ID).Return(suite.stageA, nil)
	suite.deals.EXPECT().Update(deal).Return(nil)

	resp, err := suite.dealSvc.Move(context.Background(), suite.orgID, deal.ID, &service.MoveDealRequest{StageID: suite.stageA.ID, Position: &position})

	suite.NoError(err)
	suite.Equal(7, resp.Position)
}

func (suite *DealServiceTestSuite) TestMoveNotifierFailureIsNotFatal() {
	deal := suite.deal()

	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.stages.EXPECT().GetByID(suite.orgID, suite.stageB.ID).Return(suite.stageB, nil)
	suite.deals.EXPECT().NextPosition(suite.stageB.ID).Return(0, nil)
	suite.deals.EXPECT().Update(deal).Return(nil)
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("n8n down"))

	resp, err := suite.dealSvc.Move(context.Background(), suite.orgID, deal.ID, &service.MoveDealRequest{StageID: suite.stageB.ID})

	suite.NoError(err)
	suite.Equal(suite.stageB.ID, resp.StageID)
}

func (suite *DealServiceTestSuite) TestMoveAcrossBoards() {
	deal := suite.deal()
	foreign := suite.stage("Other", 0)
	foreign.BoardID = uuid.New()

	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.stages.EXPECT().GetByID(suite.orgID, foreign.ID).Return(foreign, nil)

	resp, err := suite.dealSvc.Move(context.Background(), suite.orgID, deal.ID, &service.MoveDealRequest{StageID: foreign.ID})

	suite.ErrorIs(err, apperrors.ErrStageBoardMismatch)
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestUpdateStatusStampsClosedAt() {
	deal := suite.deal()
	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.deals.EXPECT().Update(deal).Return(nil)

	resp, err := suite.dealSvc.UpdateStatus(suite.orgID, deal.ID, &service.UpdateDealStatusRequest{Status: models.DealStatusWon})

	suite.NoError(err)
	suite.Equal(models.DealStatusWon, resp.Status)
	suite.NotNil(resp.ClosedAt)
}

func (suite *DealServiceTestSuite) TestUpdateStatusReopenClearsClosedAt() {
	deal := suite.deal()
	deal.Status = models.DealStatusLost
	closed := deal.CreatedAt
	deal.ClosedAt = &closed

	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.deals.EXPECT().Update(deal).Return(nil)

	resp, err := suite.dealSvc.UpdateStatus(suite.orgID, deal.ID, &service.UpdateDealStatusRequest{Status: models.DealStatusOpen})

	suite.NoError(err)
	suite.Nil(resp.ClosedAt)
}

func (suite *DealServiceTestSuite) TestUpdateStatusInvalid() {
	resp, err := suite.dealSvc.UpdateStatus(suite.orgID, uuid.New(), &service.UpdateDealStatusRequest{Status: "paused"})

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestAddItemFromProductRecomputesValue() {
	deal := suite.deal()
	product := &models.Product{OrganizationID: suite.orgID, Name: "Hosting", Price: decimal.RequireFromString("100.00")}
	product.ID = uuid.New()

	var stored models.DealItem
	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.products.EXPECT().GetByID(suite.orgID, product.ID).Return(product, nil)
	suite.deals.EXPECT().
		CreateItem(gomock.Any()).
		DoAndReturn(func(item *models.DealItem) error {
			stored = *item
			return nil
		})
	suite.deals.EXPECT().
		ListItems(deal.ID).
		DoAndReturn(func(uuid.UUID) ([]models.DealItem, error) {
			other := models.DealItem{DealID: deal.ID, Name: "Setup", Total: decimal.RequireFromString("50.00")}
			return []models.DealItem{stored, other}, nil
		})
	suite.deals.EXPECT().Update(deal).Return(nil)

	resp, err := suite.dealSvc.AddItem(suite.orgID, deal.ID, &service.DealItemRequest{
		ProductID: &product.ID,
		Quantity:  decimal.NewFromInt(3),
		Discount:  decimal.RequireFromString("10"),
	})

	suite.NoError(err)
	suite.Equal("Hosting", stored.Name)
	suite.Equal("290.00", stored.Total.StringFixed(2))
	suite.Equal("340.00", resp.Value.StringFixed(2))
	suite.Len(resp.Items, 2)
}

func (suite *DealServiceTestSuite) TestAddItemDiscountAboveSubtotalCountsAsZero() {
	deal := suite.deal()
	price := decimal.RequireFromString("20.00")

	var stored models.DealItem
	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.deals.EXPECT().
		CreateItem(gomock.Any()).
		DoAndReturn(func(item *models.DealItem) error {
			stored = *item
			return nil
		})
	suite.deals.EXPECT().
		ListItems(deal.ID).
		DoAndReturn(func(uuid.UUID) ([]models.DealItem, error) {
			other := models.DealItem{DealID: deal.ID, Name: "Setup", Total: decimal.RequireFromString("30.00")}
			return []models.DealItem{stored, other}, nil
		})
	suite.deals.EXPECT().Update(deal).Return(nil)

	resp, err := suite.dealSvc.AddItem(suite.orgID, deal.ID, &service.DealItemRequest{
		Name:      "Consulting",
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: &price,
		Discount:  decimal.RequireFromString("50.00"),
	})

	suite.NoError(err)
	suite.True(stored.Total.IsZero())
	suite.Equal("30.00", resp.Value.StringFixed(2))
}

func (suite *DealServiceTestSuite) TestAddItemRequiresNameWithoutProduct() {
	deal := suite.deal()
	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)

	resp, err := suite.dealSvc.AddItem(suite.orgID, deal.ID, &service.DealItemRequest{Quantity: decimal.NewFromInt(1)})

	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestAddItemRejectsZeroQuantity() {
	deal := suite.deal()
	price := decimal.NewFromInt(10)
	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)

	resp, err := suite.dealSvc.AddItem(suite.orgID, deal.ID, &service.DealItemRequest{Name: "Consulting", UnitPrice: &price})

	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestRemoveLastItemKeepsValue() {
	deal := suite.deal()
	deal.Value = decimal.RequireFromString("99.90")
	itemID := uuid.New()

	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.deals.EXPECT().DeleteItem(deal.ID, itemID).Return(nil)
	suite.deals.EXPECT().ListItems(deal.ID).Return(nil, nil)

	resp, err := suite.dealSvc.RemoveItem(suite.orgID, deal.ID, itemID)

	suite.NoError(err)
	suite.Equal("99.90", resp.Value.StringFixed(2))
}

func (suite *DealServiceTestSuite) TestRemoveMissingItem() {
	deal := suite.deal()
	itemID := uuid.New()

	suite.deals.EXPECT().GetByID(suite.orgID, deal.ID).Return(deal, nil)
	suite.deals.EXPECT().DeleteItem(deal.ID, itemID).Return(gorm.ErrRecordNotFound)

	resp, err := suite.dealSvc.RemoveItem(suite.orgID, deal.ID, itemID)

	suite.ErrorIs(err, apperrors.ErrDealItemNotFound)
	suite.Nil(resp)
}

func (suite *DealServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.deals.EXPECT().Delete(suite.orgID, id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.dealSvc.Delete(suite.orgID, id), apperrors.ErrDealNotFound)
}

func TestSumItemTotals(t *testing.T) {
	items := []models.DealItem{
		{Total: decimal.RequireFromString("10.10")},
		{Total: decimal.RequireFromString("0.205")},
	}
	if got := service.SumItemTotals(items).StringFixed(2); got != "10.31" {
		t.Fatalf("unexpected sum %s", got)
	}
}

func TestDealServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DealServiceTestSuite))
}
