package service_test

import (
	"context"
	"errors"
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/messaging"
	"crm-backend/internal/metrics"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ConversationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	links    *mocks.MockConversationLinkRepositoryInterface
	mappings *mocks.MockLabelMappingRepositoryInterface
	orgs     *mocks.MockOrganizationRepositoryInterface
	contacts *mocks.MockContactRepositoryInterface
	resolver *mocks.MockIdentityResolver
	deals    *mocks.MockDealServiceInterface
	svc      *service.ConversationService

	ctx     context.Context
	orgID   uuid.UUID
	contact *models.Contact
}

func (suite *ConversationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.links = mocks.NewMockConversationLinkRepositoryInterface(suite.ctrl)
	suite.mappings = mocks.NewMockLabelMappingRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.contacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.resolver = mocks.NewMockIdentityResolver(suite.ctrl)
	suite.deals = mocks.NewMockDealServiceInterface(suite.ctrl)
	suite.svc = service.NewConversationService(service.ConversationDependencies{
		Links:    suite.links,
		Mappings: suite.mappings,
		Orgs:     suite.orgs,
		Contacts: suite.contacts,
		Resolver: suite.resolver,
		Deals:    suite.deals,
		Metrics:  metrics.New(),
	}, validator.New())

	suite.ctx = context.Background()
	suite.orgID = uuid.New()
	suite.contact = &models.Contact{Name: "Maria", Phone: "+5511987654321"}
	suite.contact.ID = uuid.New()
	suite.contact.OrganizationID = suite.orgID
}

func (suite *ConversationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConversationServiceTestSuite) organization(settings models.OrganizationSettings) *models.Organization {
	org := &models.Organization{Name: "Acme", Slug: "acme", Settings: settings}
	org.ID = suite.orgID
	return org
}

func (suite *ConversationServiceTestSuite) inbound() service.InboundConversation {
	return service.InboundConversation{
		Channel:                models.ConversationChannelWhatsApp,
		ExternalConversationID: "5511987654321@c.us",
		Identity: messaging.IdentityInput{
			Channel:    messaging.ChannelWhatsApp,
			ExternalID: "5511987654321@c.us",
			Name:       "Maria",
		},
	}
}

func (suite *ConversationServiceTestSuite) expectResolve(created bool) {
	suite.resolver.EXPECT().
		Resolve(suite.ctx, suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in messaging.IdentityInput) (*messaging.Resolution, error) {
			suite.Equal("351", in.DefaultCountry)
			return &messaging.Resolution{Contact: suite.contact, Created: created, MatchedBy: messaging.MatchedByNone}, nil
		})
}

func (suite *ConversationServiceTestSuite) TestRecordInboundWithoutAutoDeal() {
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(suite.organization(models.OrganizationSettings{DefaultCountryCode: "351"}), nil)
	suite.expectResolve(true)
	suite.links.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(l *models.ConversationLink) error {
			suite.Equal(suite.contact.ID, l.ContactID)
			suite.NotNil(l.LastMessageAt)
			l.ID = uuid.New()
			return nil
		})

	res, err := suite.svc.RecordInbound(suite.ctx, suite.orgID, suite.inbound())

	suite.NoError(err)
	suite.True(res.Created)
	suite.False(res.DealCreated)
	suite.Equal(suite.contact.ID, res.Contact.ID)
}

func (suite *ConversationServiceTestSuite) TestRecordInboundCreatesDeal() {
	boardID := uuid.New()
	org := suite.organization(models.OrganizationSettings{AutoCreateDeals: true, DefaultBoardID: &boardID, DefaultCountryCode: "351"})
	deal := &models.Deal{Title: "WhatsApp: Maria"}
	deal.ID = uuid.New()
	linkID := uuid.New()

	in := suite.inbound()
	in.DealTitle = "WhatsApp: Maria"

	suite.orgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.expectResolve(true)
	suite.links.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(l *models.ConversationLink) error {
			l.ID = linkID
			return nil
		})
	suite.deals.EXPECT().CreateForContact(suite.orgID, &boardID, suite.contact, "WhatsApp: Maria").Return(deal, nil)
	suite.links.EXPECT().SetDeal(linkID, deal.ID).Return(true, nil)

	res, err := suite.svc.RecordInbound(suite.ctx, suite.orgID, in)

	suite.NoError(err)
	suite.True(res.DealCreated)
	suite.Equal(&deal.ID, res.Link.DealID)
}

func (suite *ConversationServiceTestSuite) TestRecordInboundDropsDealWhenAnotherDeliveryAttachedFirst() {
	boardID := uuid.New()
	org := suite.organization(models.OrganizationSettings{AutoCreateDeals: true, DefaultBoardID: &boardID, DefaultCountryCode: "351"})
	ours := &models.Deal{Title: "Maria"}
	ours.ID = uuid.New()
	winner := uuid.New()
	linkID := uuid.New()

	suite.orgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.expectResolve(false)
	suite.links.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(l *models.ConversationLink) error {
			l.ID = linkID
			return nil
		})
	suite.deals.EXPECT().CreateForContact(suite.orgID, &boardID, suite.contact, "Maria").Return(ours, nil)
	suite.links.EXPECT().SetDeal(linkID, ours.ID).Return(false, nil)
	suite.deals.EXPECT().Delete(suite.orgID, ours.ID).Return(nil)
	stored := &models.ConversationLink{OrganizationID: suite.orgID, ContactID: suite.contact.ID, DealID: &winner}
	stored.ID = linkID
	suite.links.EXPECT().GetByID(suite.orgID, linkID).Return(stored, nil)

	res, err := suite.svc.RecordInbound(suite.ctx, suite.orgID, suite.inbound())

	suite.NoError(err)
	suite.False(res.DealCreated)
	suite.Require().NotNil(res.Link.DealID)
	suite.Equal(winner, *res.Link.DealID)
}

func (suite *ConversationServiceTestSuite) TestRecordInboundKeepsExistingDeal() {
	existing := uuid.New()
	org := suite.organization(models.OrganizationSettings{AutoCreateDeals: true, DefaultCountryCode: "351"})

	suite.orgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.expectResolve(false)
	suite.links.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(l *models.ConversationLink) error {
			// the upsert returns the stored row, which already carries a deal
			l.DealID = &existing
			return nil
		})

	res, err := suite.svc.RecordInbound(suite.ctx, suite.orgID, suite.inbound())

	suite.NoError(err)
	suite.False(res.DealCreated)
	suite.Equal(&existing, res.Link.DealID)
}

func (suite *ConversationServiceTestSuite) TestRecordInboundDealFailureStillRecords() {
	org := suite.organization(models.OrganizationSettings{AutoCreateDeals: true, DefaultCountryCode: "351"})

	suite.orgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.expectResolve(true)
	suite.links.EXPECT().Upsert(gomock.Any()).Return(nil)
	suite.deals.EXPECT().CreateForContact(suite.orgID, nil, suite.contact, "Maria").Return(nil, apperrors.ErrBoardNotFound)

	res, err := suite.svc.RecordInbound(suite.ctx, suite.orgID, suite.inbound())

	suite.NoError(err)
	suite.False(res.DealCreated)
}

func (suite *ConversationServiceTestSuite) TestRecordInboundUnknownOrganization() {
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(nil, gorm.ErrRecordNotFound)

	res, err := suite.svc.RecordInbound(suite.ctx, suite.orgID, suite.inbound())

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	suite.Nil(res)
}

func (suite *ConversationServiceTestSuite) TestRecordInboundRequiresConversationID() {
	in := suite.inbound()
	in.ExternalConversationID = " "

	res, err := suite.svc.RecordInbound(suite.ctx, suite.orgID, in)

	suite.True(apperrors.IsValidation(err))
	suite.Nil(res)
}

func (suite *ConversationServiceTestSuite) TestApplyLabelsMovesDeal() {
	dealID := uuid.New()
	stageID := uuid.New()
	link := &models.ConversationLink{OrganizationID: suite.orgID, DealID: &dealID}

	suite.links.EXPECT().GetByExternalID(suite.orgID, models.ConversationChannelChatwoot, "42").Return(link, nil)
	suite.mappings.EXPECT().
		GetByLabels(suite.orgID, []string{"vip", "proposal-sent"}).
		Return([]models.LabelMapping{{ChatwootLabel: "proposal-sent", StageID: stageID}}, nil)
	suite.deals.EXPECT().
		Move(suite.ctx, suite.orgID, dealID, &service.MoveDealRequest{StageID: stageID}).
		Return(&service.DealResponse{ID: dealID, StageID: stageID}, nil)

	resp, err := suite.svc.ApplyLabels(suite.ctx, suite.orgID, models.ConversationChannelChatwoot, "42", []string{"VIP", " Proposal-Sent "})

	suite.NoError(err)
	suite.Equal(stageID, resp.StageID)
}

func (suite *ConversationServiceTestSuite) TestApplyLabelsFirstMappedLabelWins() {
	dealID := uuid.New()
	first, second := uuid.New(), uuid.New()
	link := &models.ConversationLink{DealID: &dealID}

	suite.links.EXPECT().GetByExternalID(suite.orgID, models.ConversationChannelChatwoot, "42").Return(link, nil)
	suite.mappings.EXPECT().
		GetByLabels(suite.orgID, gomock.Any()).
		Return([]models.LabelMapping{
			{ChatwootLabel: "won", StageID: second},
			{ChatwootLabel: "negotiation", StageID: first},
		}, nil)
	suite.deals.EXPECT().
		Move(suite.ctx, suite.orgID, dealID, &service.MoveDealRequest{StageID: first}).
		Return(&service.DealResponse{ID: dealID, StageID: first}, nil)

	_, err := suite.svc.ApplyLabels(suite.ctx, suite.orgID, models.ConversationChannelChatwoot, "42", []string{"negotiation", "won"})

	suite.NoError(err)
}

func (suite *ConversationServiceTestSuite) TestApplyLabelsWithoutDeal() {
	suite.links.EXPECT().GetByExternalID(suite.orgID, models.ConversationChannelChatwoot, "42").Return(&models.ConversationLink{}, nil)

	resp, err := suite.svc.ApplyLabels(suite.ctx, suite.orgID, models.ConversationChannelChatwoot, "42", []string{"won"})

	suite.NoError(err)
	suite.Nil(resp)
}

func (suite *ConversationServiceTestSuite) TestApplyLabelsUnmapped() {
	dealID := uuid.New()
	suite.links.EXPECT().GetByExternalID(suite.orgID, models.ConversationChannelChatwoot, "42").Return(&models.ConversationLink{DealID: &dealID}, nil)
	suite.mappings.EXPECT().GetByLabels(suite.orgID, []string{"spam"}).Return(nil, nil)

	resp, err := suite.svc.ApplyLabels(suite.ctx, suite.orgID, models.ConversationChannelChatwoot, "42", []string{"spam"})

	suite.NoError(err)
	suite.Nil(resp)
}

func (suite *ConversationServiceTestSuite) TestApplyLabelsUnknownConversation() {
	suite.links.EXPECT().GetByExternalID(suite.orgID, models.ConversationChannelChatwoot, "404").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.ApplyLabels(suite.ctx, suite.orgID, models.ConversationChannelChatwoot, "404", []string{"won"})

	suite.ErrorIs(err, apperrors.ErrConversationNotFound)
	suite.Nil(resp)
}

func (suite *ConversationServiceTestSuite) TestReplyDispatchesToChannelSender() {
	link := &models.ConversationLink{OrganizationID: suite.orgID, Channel: models.ConversationChannelInstagram, ContactID: suite.contact.ID}
	link.ID = uuid.New()
	org := suite.organization(models.OrganizationSettings{})
	sender := mocks.NewMockChannelSender(suite.ctrl)
	suite.svc.RegisterSender(models.ConversationChannelInstagram, sender)

	suite.links.EXPECT().GetByID(suite.orgID, link.ID).Return(link, nil)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(org, nil)
	suite.contacts.EXPECT().GetByID(suite.orgID, suite.contact.ID).Return(suite.contact, nil)
	sender.EXPECT().SendReply(suite.ctx, org, link, suite.contact, "Olá!").Return(nil)

	suite.NoError(suite.svc.Reply(suite.ctx, suite.orgID, link.ID, &service.ReplyRequest{Text: "Olá!"}))
}

func (suite *ConversationServiceTestSuite) TestReplyWithoutSender() {
	link := &models.ConversationLink{Channel: models.ConversationChannelChatwoot}
	link.ID = uuid.New()
	suite.links.EXPECT().GetByID(suite.orgID, link.ID).Return(link, nil)

	err := suite.svc.Reply(suite.ctx, suite.orgID, link.ID, &service.ReplyRequest{Text: "hi"})

	suite.True(apperrors.IsConfiguration(err))
}

func (suite *ConversationServiceTestSuite) TestReplySenderError() {
	link := &models.ConversationLink{Channel: models.ConversationChannelWhatsApp, ContactID: suite.contact.ID}
	link.ID = uuid.New()
	sender := mocks.NewMockChannelSender(suite.ctrl)
	suite.svc.RegisterSender(models.ConversationChannelWhatsApp, sender)

	suite.links.EXPECT().GetByID(suite.orgID, link.ID).Return(link, nil)
	suite.orgs.EXPECT().GetByID(suite.orgID).Return(suite.organization(models.OrganizationSettings{}), nil)
	suite.contacts.EXPECT().GetByID(suite.orgID, suite.contact.ID).Return(suite.contact, nil)
	sender.EXPECT().SendReply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "hi").Return(apperrors.ErrNoConnectedSession)

	err := suite.svc.Reply(suite.ctx, suite.orgID, link.ID, &service.ReplyRequest{Text: "hi"})

	suite.True(errors.Is(err, apperrors.ErrNoConnectedSession))
}

func (suite *ConversationServiceTestSuite) TestReplyRequiresText() {
	err := suite.svc.Reply(suite.ctx, suite.orgID, uuid.New(), &service.ReplyRequest{})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func TestConversationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationServiceTestSuite))
}
