package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/search"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AIHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockChat     *mocks.MockAIChatServiceInterface
	mockTraining *mocks.MockAITrainingServiceInterface
	httpSuite    *testutils.HTTPTestSuite
	orgID        uuid.UUID
	profileID    uuid.UUID
}

func (suite *AIHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockChat = mocks.NewMockAIChatServiceInterface(suite.ctrl)
	suite.mockTraining = mocks.NewMockAITrainingServiceInterface(suite.ctrl)
	handler := NewAIHandler(suite.mockChat, suite.mockTraining)
	suite.orgID = uuid.New()
	suite.profileID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	ai := suite.httpSuite.Router.Group("/api/v1/ai", testutils.WithTenant(suite.orgID, suite.profileID))
	{
		ai.POST("/chat", handler.Chat)
		ai.DELETE("/chat/:conversation_id", handler.ClearHistory)
		ai.POST("/documents", handler.UploadDocument)
		ai.GET("/documents", handler.ListDocuments)
		ai.DELETE("/documents/:id", handler.DeleteDocument)
		ai.GET("/search", handler.SearchDocuments)
	}
}

func (suite *AIHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AIHandlerTestSuite) upload(fileName, content, title string) *httptest.ResponseRecorder {
	fields := map[string]string{}
	if title != "" {
		fields["title"] = title
	}
	return suite.httpSuite.Upload(suite.T(), "/api/v1/ai/documents", fileName, content, fields)
}

func (suite *AIHandlerTestSuite) TestChat() {
	suite.mockChat.EXPECT().
		Chat(gomock.Any(), suite.orgID, suite.profileID, &service.AIChatRequest{Message: "What is our refund policy?"}).
		Return(&service.AIChatResponse{
			ConversationID: "c-1",
			Reply:          "Refunds are accepted within 30 days.",
			Sources:        []service.ChatSource{},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ai/chat", map[string]interface{}{
		"message": "What is our refund policy?",
	})

	var response service.AIChatResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "c-1", response.ConversationID)
	assert.Contains(suite.T(), response.Reply, "30 days")
}

func (suite *AIHandlerTestSuite) TestChatNotConfigured() {
	suite.mockChat.EXPECT().
		Chat(gomock.Any(), suite.orgID, suite.profileID, gomock.Any()).
		Return(nil, apperrors.ErrLLMNotConfigured).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ai/chat", map[string]interface{}{
		"message": "hi",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusServiceUnavailable, "LLM_API_KEY")
}

func (suite *AIHandlerTestSuite) TestClearHistory() {
	suite.mockChat.EXPECT().
		ClearHistory(gomock.Any(), suite.orgID, suite.profileID, "c-1").
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/ai/chat/c-1", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *AIHandlerTestSuite) TestUploadDocument() {
	docID := uuid.New()
	suite.mockTraining.EXPECT().
		Upload(gomock.Any(), suite.orgID, suite.profileID, gomock.Any(), gomock.Any(), "Pricing").
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, file multipart.File, header *multipart.FileHeader, title string) (*service.DocumentResponse, error) {
			assert.Equal(suite.T(), "pricing.md", header.Filename)
			data, err := io.ReadAll(file)
			suite.Require().NoError(err)
			assert.Equal(suite.T(), "# Pricing\nBasic plan costs 10.", string(data))
			return &service.DocumentResponse{ID: docID, Title: title, FileName: header.Filename, Status: "ready", ChunkCount: 1}, nil
		}).
		Times(1)

	recorder := suite.upload("pricing.md", "# Pricing\nBasic plan costs 10.", "Pricing")

	var response service.DocumentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), docID, response.ID)
	assert.Equal(suite.T(), "ready", response.Status)
}

func (suite *AIHandlerTestSuite) TestUploadDocumentWithoutFile() {
	recorder := suite.upload("", "", "Pricing")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "file is required")
}

func (suite *AIHandlerTestSuite) TestUploadDocumentUnsupportedType() {
	suite.mockTraining.EXPECT().
		Upload(gomock.Any(), suite.orgID, suite.profileID, gomock.Any(), gomock.Any(), "").
		Return(nil, apperrors.ErrUnsupportedFileType).
		Times(1)

	recorder := suite.upload("photo.png", "\x89PNG", "")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "unsupported file type")
}

func (suite *AIHandlerTestSuite) TestUploadDocumentTooLarge() {
	suite.mockTraining.EXPECT().
		Upload(gomock.Any(), suite.orgID, suite.profileID, gomock.Any(), gomock.Any(), "").
		Return(nil, apperrors.ErrFileTooLarge).
		Times(1)

	recorder := suite.upload("big.txt", "lots of text", "")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusRequestEntityTooLarge, "maximum upload size")
}

func (suite *AIHandlerTestSuite) TestListDocuments() {
	suite.mockTraining.EXPECT().
		List(suite.orgID, 1, 20).
		Return(&service.DocumentListResponse{Documents: []service.DocumentResponse{{Title: "Pricing"}}, Total: 1, Page: 1, PageSize: 20}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ai/documents", nil)

	var response service.DocumentListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
}

func (suite *AIHandlerTestSuite) TestDeleteDocumentNotFound() {
	docID := uuid.New()
	suite.mockTraining.EXPECT().
		Delete(gomock.Any(), suite.orgID, docID).
		Return(apperrors.ErrDocumentNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/ai/documents/"+docID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "training document not found")
}

func (suite *AIHandlerTestSuite) TestSearchDocuments() {
	suite.mockTraining.EXPECT().
		Search(gomock.Any(), suite.orgID, "refund", 3).
		Return(&service.SearchPreviewResponse{
			Query: "refund",
			Hits:  []search.ChunkHit{{ID: "chunk-1", DocumentTitle: "Policies", Content: "Refunds within 30 days"}},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ai/search?q=refund&limit=3", nil)

	var response service.SearchPreviewResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response.Hits, 1)
	assert.Equal(suite.T(), "Policies", response.Hits[0].DocumentTitle)
}

func (suite *AIHandlerTestSuite) TestSearchDocumentsRequiresQuery() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/ai/search?q=%20", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "q parameter is required")
}

func TestAIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AIHandlerTestSuite))
}
