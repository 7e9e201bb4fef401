package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"crm-backend/internal/config"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/messaging"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeWPPConnect emulates the WPPConnect server endpoints used by the CRM
type fakeWPPConnect struct {
	mu       sync.Mutex
	requests map[string]map[string]interface{}
	auth     map[string]string
}

func newFakeWPPConnect() (*fakeWPPConnect, *httptest.Server) {
	f := &fakeWPPConnect{
		requests: make(map[string]map[string]interface{}),
		auth:     make(map[string]string),
	}
	return f, httptest.NewServer(f)
}

func (f *fakeWPPConnect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests[action] = body
	f.auth[action] = r.Header.Get("Authorization")
	f.mu.Unlock()

	switch action {
	case "generate-token":
		if !strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/generate-token"), "/wpp-secret") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","token":"session-token"}`))
	case "start-session":
		_, _ = w.Write([]byte(`{"status":"QRCODE","qrcode":"data:image/png;base64,AAAA"}`))
	case "status-session":
		_, _ = w.Write([]byte(`{"status":"inChat"}`))
	case "qrcode-session":
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	case "send-message":
		_, _ = w.Write([]byte(`{"status":"success","response":[{"id":"true_5511987654321@c.us_3EB0"}]}`))
	case "logout-session":
		_, _ = w.Write([]byte(`{"status":true}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeWPPConnect) request(action string) (map[string]interface{}, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[action], f.auth[action]
}

type WhatsAppServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	repo          *mocks.MockWhatsAppRepositoryInterface
	contacts      *mocks.MockContactRepositoryInterface
	conversations *mocks.MockConversationServiceInterface
	dedup         *mocks.MockWebhookDeduplicator
	fake          *fakeWPPConnect
	server        *httptest.Server
	svc           *service.WhatsAppService

	ctx     context.Context
	orgID   uuid.UUID
	session *models.WhatsAppSession
}

func (suite *WhatsAppServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockWhatsAppRepositoryInterface(suite.ctrl)
	suite.contacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.conversations = mocks.NewMockConversationServiceInterface(suite.ctrl)
	suite.dedup = mocks.NewMockWebhookDeduplicator(suite.ctrl)
	suite.fake, suite.server = newFakeWPPConnect()

	cfg := &config.Config{
		PublicURL:           "https://crm.example.com/",
		WPPConnectBaseURL:   suite.server.URL,
		WPPConnectSecretKey: "wpp-secret",
	}
	suite.svc = service.NewWhatsAppService(cfg, service.WhatsAppDependencies{
		Repo:          suite.repo,
		Contacts:      suite.contacts,
		Client:        service.NewWPPConnectClient(cfg),
		Conversations: suite.conversations,
		Dedup:         suite.dedup,
	}, validator.New())

	suite.ctx = context.Background()
	suite.orgID = uuid.New()
	suite.session = &models.WhatsAppSession{
		SessionName:   "sales",
		Token:         "session-token",
		Status:        service.SessionStatusConnected,
		WebhookSecret: "hook-secret",
	}
	suite.session.ID = uuid.New()
	suite.session.OrganizationID = suite.orgID
}

func (suite *WhatsAppServiceTestSuite) TearDownTest() {
	suite.server.Close()
	suite.ctrl.Finish()
}

func (suite *WhatsAppServiceTestSuite) TestCreateSessionStartsWithWebhook() {
	var created *models.WhatsAppSession
	suite.repo.EXPECT().
		CreateSession(gomock.Any()).
		DoAndReturn(func(s *models.WhatsAppSession) error {
			suite.Equal("crm-"+strings.ReplaceAll(suite.orgID.String(), "-", "")[:12], s.SessionName)
			suite.Len(s.WebhookSecret, 48)
			s.ID = uuid.New()
			created = s
			return nil
		})
	suite.repo.EXPECT().
		UpdateSession(gomock.Any()).
		DoAndReturn(func(s *models.WhatsAppSession) error {
			suite.Equal("session-token", s.Token)
			suite.Equal(service.SessionStatusQRCode, s.Status)
			return nil
		})

	resp, err := suite.svc.CreateSession(suite.ctx, suite.orgID, &service.CreateSessionRequest{})

	suite.Require().NoError(err)
	suite.Equal(service.SessionStatusQRCode, resp.Status)
	suite.Equal("data:image/png;base64,AAAA", resp.QRCode)

	body, auth := suite.fake.request("start-session")
	suite.Equal("Bearer session-token", auth)
	suite.Equal("https://crm.example.com/api/webhooks/wppconnect/"+created.SessionName+"?secret="+created.WebhookSecret, body["webhook"])
}

func (suite *WhatsAppServiceTestSuite) TestCreateSessionValidation() {
	_, err := suite.svc.CreateSession(suite.ctx, suite.orgID, &service.CreateSessionRequest{SessionName: "Sales Team!"})
	suite.True(apperrors.IsValidation(err))

	suite.repo.EXPECT().CreateSession(gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
	_, err = suite.svc.CreateSession(suite.ctx, suite.orgID, &service.CreateSessionRequest{SessionName: "Sales"})
	suite.ErrorIs(err, apperrors.ErrSessionExists)
}

func (suite *WhatsAppServiceTestSuite) TestCreateSessionNotConfigured() {
	svc := service.NewWhatsAppService(&config.Config{}, service.WhatsAppDependencies{
		Repo:   suite.repo,
		Client: service.NewWPPConnectClient(&config.Config{}),
	}, validator.New())

	_, err := svc.CreateSession(suite.ctx, suite.orgID, &service.CreateSessionRequest{})

	suite.ErrorIs(err, apperrors.ErrWPPConnectNotConfigured)
	suite.True(apperrors.IsConfiguration(err))
}

func (suite *WhatsAppServiceTestSuite) TestStatusRefreshesSession() {
	suite.session.Status = service.SessionStatusQRCode
	suite.session.QRCode = "data:old"
	suite.repo.EXPECT().GetSession(suite.orgID, suite.session.ID).Return(suite.session, nil)
	suite.repo.EXPECT().UpdateSession(suite.session).Return(nil)

	resp, err := suite.svc.Status(suite.ctx, suite.orgID, suite.session.ID)

	suite.NoError(err)
	suite.Equal(service.SessionStatusConnected, resp.Status)
	suite.Empty(resp.QRCode)
}

func (suite *WhatsAppServiceTestSuite) TestQRCodeReturnsDataURI() {
	suite.repo.EXPECT().GetSession(suite.orgID, suite.session.ID).Return(suite.session, nil)
	suite.repo.EXPECT().UpdateSession(suite.session).Return(nil)

	resp, err := suite.svc.QRCode(suite.ctx, suite.orgID, suite.session.ID)

	suite.NoError(err)
	suite.Equal(service.SessionStatusQRCode, resp.Status)
	suite.Equal("data:image/png;base64,iVBORw==", resp.QRCode)
}

func (suite *WhatsAppServiceTestSuite) TestLogout() {
	suite.repo.EXPECT().GetSession(suite.orgID, suite.session.ID).Return(suite.session, nil)
	suite.repo.EXPECT().UpdateSession(suite.session).Return(nil)

	resp, err := suite.svc.Logout(suite.ctx, suite.orgID, suite.session.ID)

	suite.NoError(err)
	suite.Equal(service.SessionStatusClosed, resp.Status)
	_, auth := suite.fake.request("logout-session")
	suite.Equal("Bearer session-token", auth)
}

func (suite *WhatsAppServiceTestSuite) TestSessionNotFound() {
	id := uuid.New()
	suite.repo.EXPECT().GetSession(suite.orgID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.StartSession(suite.ctx, suite.orgID, id)

	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (suite *WhatsAppServiceTestSuite) inboundMessage() []byte {
	return []byte(`{
	  "event": "onmessage",
	  "session": "sales",
	  "id": "false_5511987654321@c.us_3EB0ABC",
	  "body": "Bom dia!",
	  "type": "chat",
	  "from": "5511987654321@c.us",
	  "chatId": "5511987654321@c.us",
	  "fromMe": false,
	  "isGroupMsg": false,
	  "timestamp": 1760000000,
	  "sender": {"id": "5511987654321@c.us", "pushname": "Maria"}
	}`)
}

func (suite *WhatsAppServiceTestSuite) TestWebhookRecordsInboundMessage() {
	contact := &models.Contact{Name: "Maria"}
	contact.ID = uuid.New()

	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	suite.dedup.EXPECT().FirstDelivery(suite.ctx, "wppconnect", "sales:false_5511987654321@c.us_3EB0ABC").Return(true, nil)
	suite.conversations.EXPECT().
		RecordInbound(suite.ctx, suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in service.InboundConversation) (*service.InboundResult, error) {
			suite.Equal(models.ConversationChannelWhatsApp, in.Channel)
			suite.Equal("5511987654321@c.us", in.ExternalConversationID)
			suite.Equal("sales", in.InboxID)
			suite.Equal(int64(1760000000), in.At.Unix())
			suite.Equal(messaging.ChannelWhatsApp, in.Identity.Channel)
			suite.Equal("Maria", in.Identity.Name)
			return &service.InboundResult{Contact: contact}, nil
		})
	suite.repo.EXPECT().
		CreateMessageIfAbsent(gomock.Any()).
		DoAndReturn(func(msg *models.WhatsAppMessage) (bool, error) {
			suite.Equal(suite.session.ID, msg.SessionID)
			suite.Equal(contact.ID, msg.ContactID)
			suite.Equal(models.MessageDirectionInbound, msg.Direction)
			suite.Equal("Bom dia!", msg.Body)
			suite.Empty(msg.MediaType)
			return true, nil
		})

	outcome, err := suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", suite.inboundMessage())

	suite.NoError(err)
	suite.Equal(service.WebhookProcessed, outcome)
}

func (suite *WhatsAppServiceTestSuite) TestWebhookStoredMessageIsDuplicate() {
	contact := &models.Contact{}
	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	suite.dedup.EXPECT().FirstDelivery(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	suite.conversations.EXPECT().RecordInbound(gomock.Any(), gomock.Any(), gomock.Any()).Return(&service.InboundResult{Contact: contact}, nil)
	suite.repo.EXPECT().CreateMessageIfAbsent(gomock.Any()).Return(false, nil)

	outcome, err := suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", suite.inboundMessage())

	suite.NoError(err)
	suite.Equal(service.WebhookDuplicate, outcome)
}

func (suite *WhatsAppServiceTestSuite) TestWebhookRedeliveryIsSkipped() {
	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	suite.dedup.EXPECT().FirstDelivery(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	outcome, err := suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", suite.inboundMessage())

	suite.NoError(err)
	suite.Equal(service.WebhookDuplicate, outcome)
}

func (suite *WhatsAppServiceTestSuite) TestWebhookFailureReleasesDelivery() {
	dbErr := errors.New("db down")
	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	suite.dedup.EXPECT().FirstDelivery(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	suite.conversations.EXPECT().RecordInbound(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
	suite.dedup.EXPECT().Forget(gomock.Any(), "wppconnect", "sales:false_5511987654321@c.us_3EB0ABC").Return(nil)

	_, err := suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", suite.inboundMessage())

	suite.ErrorIs(err, dbErr)
}

func (suite *WhatsAppServiceTestSuite) TestWebhookIgnoresOwnAndGroupMessages() {
	own := strings.Replace(string(suite.inboundMessage()), `"fromMe": false`, `"fromMe": true`, 1)
	group := strings.Replace(string(suite.inboundMessage()), `"from": "5511987654321@c.us"`, `"from": "120363025246125486@g.us"`, 1)

	for _, body := range []string{own, group} {
		suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)

		outcome, err := suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", []byte(body))

		suite.NoError(err)
		suite.Equal(service.WebhookIgnored, outcome)
	}
}

func (suite *WhatsAppServiceTestSuite) TestWebhookAuthentication() {
	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	_, err := suite.svc.HandleWebhook(suite.ctx, "sales", "wrong", suite.inboundMessage())
	suite.ErrorIs(err, apperrors.ErrInvalidSignature)

	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	_, err = suite.svc.HandleWebhook(suite.ctx, "sales", "", suite.inboundMessage())
	suite.ErrorIs(err, apperrors.ErrInvalidSignature)

	suite.repo.EXPECT().GetSessionByName("ghost").Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.svc.HandleWebhook(suite.ctx, "ghost", "hook-secret", suite.inboundMessage())
	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (suite *WhatsAppServiceTestSuite) TestWebhookSessionEvents() {
	suite.session.Status = service.SessionStatusQRCode
	suite.session.QRCode = "data:old"

	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	suite.repo.EXPECT().UpdateSession(suite.session).Return(nil)
	outcome, err := suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", []byte(`{"event":"status-find","status":"qrReadSuccess"}`))
	suite.NoError(err)
	suite.Equal(service.WebhookProcessed, outcome)
	suite.Equal(service.SessionStatusConnected, suite.session.Status)
	suite.Empty(suite.session.QRCode)

	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	suite.repo.EXPECT().UpdateSession(suite.session).Return(nil)
	_, err = suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", []byte(`{"event":"onstatechange","state":"UNPAIRED"}`))
	suite.NoError(err)
	suite.Equal(service.SessionStatusDisconnected, suite.session.Status)

	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	suite.repo.EXPECT().UpdateSession(suite.session).Return(nil)
	_, err = suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", []byte(`{"event":"qrcode","qrcode":"data:new"}`))
	suite.NoError(err)
	suite.Equal("data:new", suite.session.QRCode)

	suite.repo.EXPECT().GetSessionByName("sales").Return(suite.session, nil)
	outcome, err = suite.svc.HandleWebhook(suite.ctx, "sales", "hook-secret", []byte(`{"event":"status-find","status":"somethingNew"}`))
	suite.NoError(err)
	suite.Equal(service.WebhookIgnored, outcome)
}

func (suite *WhatsAppServiceTestSuite) TestSendMessage() {
	contact := &models.Contact{Name: "Maria", Phone: "+5511987654321"}
	contact.ID = uuid.New()

	suite.contacts.EXPECT().GetByID(suite.orgID, contact.ID).Return(contact, nil)
	suite.repo.EXPECT().GetConnectedSession(suite.orgID).Return(suite.session, nil)
	suite.repo.EXPECT().
		CreateMessageIfAbsent(gomock.Any()).
		DoAndReturn(func(msg *models.WhatsAppMessage) (bool, error) {
			suite.Equal(models.MessageDirectionOutbound, msg.Direction)
			return true, nil
		})

	resp, err := suite.svc.SendMessage(suite.ctx, suite.orgID, &service.SendWhatsAppMessageRequest{ContactID: contact.ID, Text: "Olá Maria"})

	suite.Require().NoError(err)
	suite.Equal("true_5511987654321@c.us_3EB0", resp.ExternalID)
	suite.Equal("outbound", resp.Direction)

	body, auth := suite.fake.request("send-message")
	suite.Equal("Bearer session-token", auth)
	suite.Equal("5511987654321", body["phone"])
	suite.Equal("Olá Maria", body["message"])
}

func (suite *WhatsAppServiceTestSuite) TestSendMessageErrors() {
	noPhone := &models.Contact{Email: "a@b.test"}
	noPhone.ID = uuid.New()
	suite.contacts.EXPECT().GetByID(suite.orgID, noPhone.ID).Return(noPhone, nil)
	_, err := suite.svc.SendMessage(suite.ctx, suite.orgID, &service.SendWhatsAppMessageRequest{ContactID: noPhone.ID, Text: "hi"})
	suite.True(apperrors.IsValidation(err))

	withPhone := &models.Contact{Phone: "+5511987654321"}
	withPhone.ID = uuid.New()
	suite.contacts.EXPECT().GetByID(suite.orgID, withPhone.ID).Return(withPhone, nil)
	suite.repo.EXPECT().GetConnectedSession(suite.orgID).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.svc.SendMessage(suite.ctx, suite.orgID, &service.SendWhatsAppMessageRequest{ContactID: withPhone.ID, Text: "hi"})
	suite.ErrorIs(err, apperrors.ErrNoConnectedSession)

	missing := uuid.New()
	suite.contacts.EXPECT().GetByID(suite.orgID, missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.svc.SendMessage(suite.ctx, suite.orgID, &service.SendWhatsAppMessageRequest{ContactID: missing, Text: "hi"})
	suite.ErrorIs(err, apperrors.ErrContactNotFound)
}

func (suite *WhatsAppServiceTestSuite) TestListMessagesClampsLimit() {
	suite.repo.EXPECT().ListMessages(suite.orgID, gomock.Any(), 50).Return([]models.WhatsAppMessage{{Body: "hi"}}, nil)

	messages, err := suite.svc.ListMessages(suite.orgID, uuid.New(), 0)

	suite.NoError(err)
	suite.Len(messages, 1)
}

func TestWhatsAppServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WhatsAppServiceTestSuite))
}
