package handlers

import (
	"context"
	"net/http"
	"testing"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContactHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockContactService *mocks.MockContactServiceInterface
	handler            *ContactHandler
	httpSuite          *testutils.HTTPTestSuite
	orgID              uuid.UUID
}

func (suite *ContactHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContactService = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.handler = NewContactHandler(suite.mockContactService)
	suite.orgID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	contacts := suite.httpSuite.Router.Group("/api/v1/contacts", testutils.WithTenant(suite.orgID, uuid.New()))
	{
		contacts.POST("", suite.handler.CreateContact)
		contacts.GET("", suite.handler.SearchContacts)
		contacts.POST("/resolve", suite.handler.ResolveContact)
		contacts.POST("/merge", suite.handler.MergeContacts)
		contacts.GET("/:id", suite.handler.GetContact)
		contacts.POST("/:id/identities", suite.handler.AddIdentity)
		contacts.DELETE("/:id/identities/:identity_id", suite.handler.RemoveIdentity)
	}
}

func (suite *ContactHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactHandlerTestSuite) TestCreateContact() {
	contactID := uuid.New()
	suite.mockContactService.EXPECT().
		Create(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.CreateContactRequest) (*service.ContactResponse, error) {
			assert.Equal(suite.T(), "Maria Silva", req.Name)
			assert.Equal(suite.T(), "(11) 99999-8888", req.Phone)
			return &service.ContactResponse{ID: contactID, Name: req.Name, Phone: "+5511999998888"}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/contacts", map[string]interface{}{
		"name":  "Maria Silva",
		"phone": "(11) 99999-8888",
	})

	var response service.ContactResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), contactID, response.ID)
	assert.Equal(suite.T(), "+5511999998888", response.Phone)
}

func (suite *ContactHandlerTestSuite) TestSearchContacts() {
	suite.mockContactService.EXPECT().
		Search(suite.orgID, "maria", 1, 20).
		Return(&service.ContactListResponse{Contacts: []service.ContactResponse{{Name: "Maria Silva"}}, Total: 1, Page: 1, PageSize: 20}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/contacts?q=maria", nil)

	var response service.ContactListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response.Contacts, 1)
	assert.Equal(suite.T(), "Maria Silva", response.Contacts[0].Name)
}

func (suite *ContactHandlerTestSuite) TestResolveContact() {
	contactID := uuid.New()
	suite.mockContactService.EXPECT().
		Resolve(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.ResolveContactRequest) (*service.ResolveContactResponse, error) {
			assert.Equal(suite.T(), "instagram", req.Channel)
			assert.Equal(suite.T(), "17841400000000000", req.ExternalID)
			return &service.ResolveContactResponse{
				Contact:   service.ContactResponse{ID: contactID},
				Created:   false,
				MatchedBy: "instagram:17841400000000000",
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/contacts/resolve", map[string]interface{}{
		"channel":     "instagram",
		"external_id": "17841400000000000",
	})

	var response service.ResolveContactResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), contactID, response.Contact.ID)
	assert.False(suite.T(), response.Created)
}

func (suite *ContactHandlerTestSuite) TestResolveContactWithoutIdentity() {
	suite.mockContactService.EXPECT().
		Resolve(gomock.Any(), suite.orgID, gomock.Any()).
		Return(nil, apperrors.ErrNoIdentity).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/contacts/resolve", map[string]interface{}{
		"name": "Nobody",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no usable phone")
}

func (suite *ContactHandlerTestSuite) TestMergeSameContact() {
	id := uuid.New()
	suite.mockContactService.EXPECT().
		Merge(gomock.Any(), suite.orgID, &service.MergeContactsRequest{KeepID: id, DropID: id}).
		Return(nil, apperrors.ErrMergeSameContact).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/contacts/merge", map[string]interface{}{
		"keep_id": id.String(),
		"drop_id": id.String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "cannot merge a contact into itself")
}

func (suite *ContactHandlerTestSuite) TestGetContactNotFound() {
	id := uuid.New()
	suite.mockContactService.EXPECT().
		GetByID(suite.orgID, id).
		Return(nil, apperrors.ErrContactNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/contacts/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contact not found")
}

func (suite *ContactHandlerTestSuite) TestAddIdentityOwnedByAnotherContact() {
	id := uuid.New()
	suite.mockContactService.EXPECT().
		AddIdentity(gomock.Any(), suite.orgID, id, &service.AddIdentityRequest{Key: "email:maria@example.com"}).
		Return(nil, apperrors.ErrIdentityExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/contacts/"+id.String()+"/identities", map[string]interface{}{
		"key": "email:maria@example.com",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "contact identity already exists")
}

func (suite *ContactHandlerTestSuite) TestRemoveIdentity() {
	contactID := uuid.New()
	identityID := uuid.New()
	suite.mockContactService.EXPECT().
		RemoveIdentity(suite.orgID, contactID, identityID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/contacts/"+contactID.String()+"/identities/"+identityID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
