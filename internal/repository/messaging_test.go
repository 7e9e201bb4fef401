//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MessagingRepositoryTestSuite tests conversation links, label mappings, WhatsApp storage and API keys
type MessagingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	orgs          *OrganizationRepository
	contacts      *ContactRepository
	links         *ConversationLinkRepository
	labels        *LabelMappingRepository
	whatsapp      *WhatsAppRepository
	apiKeys       *APIKeyRepository
	factories     *testutils.FactorySet
	org           *models.Organization
	contact       *models.Contact
}

func (suite *MessagingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.orgs = NewOrganizationRepository(db)
	suite.contacts = NewContactRepository(db)
	suite.links = NewConversationLinkRepository(db)
	suite.labels = NewLabelMappingRepository(db)
	suite.whatsapp = NewWhatsAppRepository(db)
	suite.apiKeys = NewAPIKeyRepository(db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *MessagingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MessagingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgs.Create(suite.org))
	suite.contact = suite.factories.Contact.Create(suite.org.ID)
	suite.Require().NoError(suite.contacts.Create(suite.contact))
}

func (suite *MessagingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MessagingRepositoryTestSuite) TestUpsertConversationLinkKeepsDeal() {
	first := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	link := &models.ConversationLink{
		OrganizationID:         suite.org.ID,
		Channel:                models.ConversationChannelChatwoot,
		ExternalConversationID: "321",
		ContactID:              suite.contact.ID,
		InboxID:                "5",
		LastMessageAt:          &first,
	}
	suite.Require().NoError(suite.links.Upsert(link))

	dealID := uuid.New()
	attached, err := suite.links.SetDeal(link.ID, dealID)
	suite.Require().NoError(err)
	suite.True(attached)

	later := first.Add(30 * time.Minute)
	again := &models.ConversationLink{
		OrganizationID:         suite.org.ID,
		Channel:                models.ConversationChannelChatwoot,
		ExternalConversationID: "321",
		ContactID:              suite.contact.ID,
		LastMessageAt:          &later,
	}
	suite.Require().NoError(suite.links.Upsert(again))

	suite.Equal(link.ID, again.ID)
	suite.Require().NotNil(again.DealID)
	suite.Equal(dealID, *again.DealID)
	suite.Equal("5", again.InboxID)
	suite.True(later.Equal(again.LastMessageAt.UTC()))
}

func (suite *MessagingRepositoryTestSuite) TestSetDealKeepsFirstDeal() {
	link := &models.ConversationLink{
		OrganizationID:         suite.org.ID,
		Channel:                models.ConversationChannelWhatsApp,
		ExternalConversationID: "351912345678@c.us",
		ContactID:              suite.contact.ID,
	}
	suite.Require().NoError(suite.links.Upsert(link))

	first := uuid.New()
	attached, err := suite.links.SetDeal(link.ID, first)
	suite.Require().NoError(err)
	suite.True(attached)

	attached, err = suite.links.SetDeal(link.ID, uuid.New())
	suite.Require().NoError(err)
	suite.False(attached)

	stored, err := suite.links.GetByID(suite.org.ID, link.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.DealID)
	suite.Equal(first, *stored.DealID)
}

func (suite *MessagingRepositoryTestSuite) TestListConversationsByContact() {
	for _, id := range []string{"a", "b"} {
		suite.Require().NoError(suite.links.Upsert(&models.ConversationLink{
			OrganizationID:         suite.org.ID,
			Channel:                models.ConversationChannelWhatsApp,
			ExternalConversationID: id,
			ContactID:              suite.contact.ID,
		}))
	}

	links, err := suite.links.ListByContact(suite.org.ID, suite.contact.ID)

	suite.NoError(err)
	suite.Len(links, 2)

	_, err = suite.links.GetByExternalID(suite.org.ID, models.ConversationChannelInstagram, "a")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MessagingRepositoryTestSuite) TestLabelMappings() {
	stageID := uuid.New()
	mapping := &models.LabelMapping{OrganizationID: suite.org.ID, ChatwootLabel: "proposal-sent", StageID: stageID}
	suite.Require().NoError(suite.labels.Create(mapping))

	duplicate := &models.LabelMapping{OrganizationID: suite.org.ID, ChatwootLabel: "proposal-sent", StageID: uuid.New()}
	suite.True(database.IsUniqueViolation(suite.labels.Create(duplicate)))

	found, err := suite.labels.GetByLabels(suite.org.ID, []string{"proposal-sent", "vip"})
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(stageID, found[0].StageID)

	suite.NoError(suite.labels.Delete(suite.org.ID, mapping.ID))
	suite.ErrorIs(suite.labels.Delete(suite.org.ID, mapping.ID), gorm.ErrRecordNotFound)
}

func (suite *MessagingRepositoryTestSuite) TestWhatsAppMessagesAreStoredOnce() {
	session := &models.WhatsAppSession{
		TenantModel:   models.TenantModel{OrganizationID: suite.org.ID},
		SessionName:   "org-" + suite.org.Slug,
		Status:        "CONNECTED",
		WebhookSecret: "secret",
	}
	suite.Require().NoError(suite.whatsapp.CreateSession(session))

	msg := func() *models.WhatsAppMessage {
		return &models.WhatsAppMessage{
			OrganizationID: suite.org.ID,
			SessionID:      session.ID,
			ContactID:      suite.contact.ID,
			ExternalID:     "true_5511987654321@c.us_ABC",
			Direction:      models.MessageDirectionInbound,
			Body:           "Olá",
			SentAt:         time.Now(),
		}
	}

	inserted, err := suite.whatsapp.CreateMessageIfAbsent(msg())
	suite.NoError(err)
	suite.True(inserted)

	inserted, err = suite.whatsapp.CreateMessageIfAbsent(msg())
	suite.NoError(err)
	suite.False(inserted)

	messages, err := suite.whatsapp.ListMessages(suite.org.ID, suite.contact.ID, 50)
	suite.NoError(err)
	suite.Len(messages, 1)
}

func (suite *MessagingRepositoryTestSuite) TestConnectedSession() {
	closed := &models.WhatsAppSession{
		TenantModel:   models.TenantModel{OrganizationID: suite.org.ID},
		SessionName:   "closed-" + suite.org.Slug,
		Status:        "CLOSED",
		WebhookSecret: "a",
	}
	suite.Require().NoError(suite.whatsapp.CreateSession(closed))

	_, err := suite.whatsapp.GetConnectedSession(suite.org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	closed.Status = "inChat"
	suite.Require().NoError(suite.whatsapp.UpdateSession(closed))

	connected, err := suite.whatsapp.GetConnectedSession(suite.org.ID)
	suite.NoError(err)
	suite.Equal(closed.ID, connected.ID)

	byName, err := suite.whatsapp.GetSessionByName(closed.SessionName)
	suite.NoError(err)
	suite.Equal(closed.ID, byName.ID)
}

func (suite *MessagingRepositoryTestSuite) TestAPIKeyRevoke() {
	key := &models.APIKey{
		TenantModel: models.TenantModel{OrganizationID: suite.org.ID},
		Name:        "Website",
		Prefix:      "ab12cd34",
		KeyHash:     "$2a$10$hash",
	}
	suite.Require().NoError(suite.apiKeys.Create(key))

	suite.ErrorIs(suite.apiKeys.Revoke(uuid.New(), key.ID, time.Now()), gorm.ErrRecordNotFound)
	suite.NoError(suite.apiKeys.Revoke(suite.org.ID, key.ID, time.Now()))
	suite.ErrorIs(suite.apiKeys.Revoke(suite.org.ID, key.ID, time.Now()), gorm.ErrRecordNotFound)

	found, err := suite.apiKeys.GetByPrefix("ab12cd34")
	suite.NoError(err)
	suite.True(found.IsRevoked())
}

func TestMessagingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingRepositoryTestSuite))
}
