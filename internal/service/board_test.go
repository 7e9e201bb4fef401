package service_test

import (
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type BoardServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	boardRepo *mocks.MockBoardRepositoryInterface
	stageRepo *mocks.MockStageRepositoryInterface
	boardSvc  *service.BoardService
	orgID     uuid.UUID
	boardID   uuid.UUID
	stageIDs  []uuid.UUID
}

func (suite *BoardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.boardRepo = mocks.NewMockBoardRepositoryInterface(suite.ctrl)
	suite.stageRepo = mocks.NewMockStageRepositoryInterface(suite.ctrl)
	suite.boardSvc = service.NewBoardService(suite.boardRepo, suite.stageRepo, validator.New())
	suite.orgID = uuid.New()
	suite.boardID = uuid.New()
	suite.stageIDs = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
}

func (suite *BoardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BoardServiceTestSuite) board() *models.Board {
	b := &models.Board{Name: "Sales"}
	b.ID = suite.boardID
	b.OrganizationID = suite.orgID
	return b
}

func (suite *BoardServiceTestSuite) stages() []models.Stage {
	out := make([]models.Stage, len(suite.stageIDs))
	for i, id := range suite.stageIDs {
		out[i] = models.Stage{BoardID: suite.boardID, Name: "stage", Position: i}
		out[i].ID = id
		out[i].OrganizationID = suite.orgID
	}
	return out
}

func (suite *BoardServiceTestSuite) TestCreateWithDefaultStages() {
	suite.boardRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(b *models.Board) error {
			suite.Equal(suite.orgID, b.OrganizationID)
			suite.Len(b.Stages, len(service.DefaultStageNames))
			for i, st := range b.Stages {
				suite.Equal(i, st.Position)
				suite.Equal(suite.orgID, st.OrganizationID)
			}
			return nil
		})

	resp, err := suite.boardSvc.Create(suite.orgID, &service.CreateBoardRequest{Name: " Sales "})

	suite.NoError(err)
	suite.Equal("Sales", resp.Name)
	suite.Equal("Lead", resp.Stages[0].Name)
	suite.Equal("Closed", resp.Stages[len(resp.Stages)-1].Name)
}

func (suite *BoardServiceTestSuite) TestCreateWithCustomStages() {
	suite.boardRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.boardSvc.Create(suite.orgID, &service.CreateBoardRequest{
		Name:   "Support",
		Stages: []service.StageRequest{{Name: "New"}, {Name: "Done", Color: "#16a34a"}},
	})

	suite.NoError(err)
	suite.Len(resp.Stages, 2)
	suite.Equal(1, resp.Stages[1].Position)
	suite.Equal("#16a34a", resp.Stages[1].Color)
}

func (suite *BoardServiceTestSuite) TestCreateRejectsBlankStage() {
	resp, err := suite.boardSvc.Create(suite.orgID, &service.CreateBoardRequest{
		Name:   "Support",
		Stages: []service.StageRequest{{Name: ""}},
	})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
	suite.Nil(resp)
}

func (suite *BoardServiceTestSuite) TestGetByIDNotFound() {
	suite.boardRepo.EXPECT().GetByID(suite.orgID, suite.boardID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.boardSvc.GetByID(suite.orgID, suite.boardID)

	suite.ErrorIs(err, apperrors.ErrBoardNotFound)
	suite.Nil(resp)
}

func (suite *BoardServiceTestSuite) TestDeleteNotFound() {
	suite.boardRepo.EXPECT().Delete(suite.orgID, suite.boardID).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.boardSvc.Delete(suite.orgID, suite.boardID), apperrors.ErrBoardNotFound)
}

func (suite *BoardServiceTestSuite) TestCreateStageAppends() {
	suite.boardRepo.EXPECT().GetByID(suite.orgID, suite.boardID).Return(suite.board(), nil)
	suite.stageRepo.EXPECT().NextPosition(suite.boardID).Return(3, nil)
	suite.stageRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.boardSvc.CreateStage(suite.orgID, suite.boardID, &service.StageRequest{Name: "Won"})

	suite.NoError(err)
	suite.Equal(3, resp.Position)
	suite.Equal(suite.boardID, resp.BoardID)
}

func (suite *BoardServiceTestSuite) TestDeleteStageWithDeals() {
	stage := suite.stages()[0]
	suite.stageRepo.EXPECT().GetByID(suite.orgID, stage.ID).Return(&stage, nil)
	suite.stageRepo.EXPECT().CountDeals(stage.ID).Return(int64(2), nil)

	err := suite.boardSvc.DeleteStage(suite.orgID, stage.ID)

	suite.ErrorIs(err, apperrors.ErrStageNotEmpty)
}

func (suite *BoardServiceTestSuite) TestDeleteEmptyStage() {
	stage := suite.stages()[1]
	suite.stageRepo.EXPECT().GetByID(suite.orgID, stage.ID).Return(&stage, nil)
	suite.stageRepo.EXPECT().CountDeals(stage.ID).Return(int64(0), nil)
	suite.stageRepo.EXPECT().Delete(suite.orgID, stage.ID).Return(nil)

	suite.NoError(suite.boardSvc.DeleteStage(suite.orgID, stage.ID))
}

func (suite *BoardServiceTestSuite) TestReorderStages() {
	order := []uuid.UUID{suite.stageIDs[2], suite.stageIDs[0], suite.stageIDs[1]}
	reordered := suite.stages()
	reordered[0], reordered[1], reordered[2] = reordered[2], reordered[0], reordered[1]

	suite.boardRepo.EXPECT().GetByID(suite.orgID, suite.boardID).Return(suite.board(), nil)
	gomock.InOrder(
		suite.stageRepo.EXPECT().ListByBoard(suite.boardID).Return(suite.stages(), nil),
		suite.stageRepo.EXPECT().UpdatePositions(suite.boardID, order).Return(nil),
		suite.stageRepo.EXPECT().ListByBoard(suite.boardID).Return(reordered, nil),
	)

	resp, err := suite.boardSvc.ReorderStages(suite.orgID, suite.boardID, &service.ReorderStagesRequest{StageIDs: order})

	suite.NoError(err)
	suite.Len(resp, 3)
	suite.Equal(suite.stageIDs[2], resp[0].ID)
}

func (suite *BoardServiceTestSuite) TestReorderStagesRejectsPartialList() {
	suite.boardRepo.EXPECT().GetByID(suite.orgID, suite.boardID).Return(suite.board(), nil)
	suite.stageRepo.EXPECT().ListByBoard(suite.boardID).Return(suite.stages(), nil)

	resp, err := suite.boardSvc.ReorderStages(suite.orgID, suite.boardID, &service.ReorderStagesRequest{
		StageIDs: []uuid.UUID{suite.stageIDs[0], suite.stageIDs[0], suite.stageIDs[1]},
	})

	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

func (suite *BoardServiceTestSuite) TestReorderStagesRejectsForeignStage() {
	suite.boardRepo.EXPECT().GetByID(suite.orgID, suite.boardID).Return(suite.board(), nil)
	suite.stageRepo.EXPECT().ListByBoard(suite.boardID).Return(suite.stages(), nil)

	resp, err := suite.boardSvc.ReorderStages(suite.orgID, suite.boardID, &service.ReorderStagesRequest{
		StageIDs: []uuid.UUID{suite.stageIDs[0], suite.stageIDs[1], uuid.New()},
	})

	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

func TestBoardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceTestSuite))
}
