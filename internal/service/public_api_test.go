package service_test

import (
	"context"
	"testing"
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func contactsAt(orgID uuid.UUID, n int) []models.Contact {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]models.Contact, n)
	for i := range out {
		out[i].ID = uuid.New()
		out[i].OrganizationID = orgID
		out[i].Name = "contact"
		out[i].CreatedAt = base.Add(-time.Duration(i) * time.Minute)
	}
	return out
}

func TestPublicAPIService_ListContacts(t *testing.T) {
	orgID := uuid.New()

	t.Run("first page with more results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mocks.NewMockContactRepositoryInterface(ctrl)
		svc := service.NewPublicAPIService(contacts, mocks.NewMockDealRepositoryInterface(ctrl), mocks.NewMockContactServiceInterface(ctrl))

		rows := contactsAt(orgID, 3)
		contacts.EXPECT().ListAfter(orgID, nil, 2).Return(rows, nil)

		page, err := svc.ListContacts(orgID, "", 2)

		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.True(t, page.HasMore)

		next, err := repository.DecodeCursor(page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, next.ID)
		assert.True(t, rows[1].CreatedAt.Equal(next.CreatedAt))
	})

	t.Run("last page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mocks.NewMockContactRepositoryInterface(ctrl)
		svc := service.NewPublicAPIService(contacts, mocks.NewMockDealRepositoryInterface(ctrl), mocks.NewMockContactServiceInterface(ctrl))

		cursor := repository.Cursor{CreatedAt: time.Now().UTC(), ID: uuid.New()}
		contacts.EXPECT().
			ListAfter(orgID, gomock.Any(), 50).
			DoAndReturn(func(_ uuid.UUID, c *repository.Cursor, _ int) ([]models.Contact, error) {
				assert.Equal(t, cursor.ID, c.ID)
				return contactsAt(orgID, 1), nil
			})

		page, err := svc.ListContacts(orgID, cursor.Encode(), 0)

		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.False(t, page.HasMore)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contacts := mocks.NewMockContactRepositoryInterface(ctrl)
		svc := service.NewPublicAPIService(contacts, mocks.NewMockDealRepositoryInterface(ctrl), mocks.NewMockContactServiceInterface(ctrl))

		contacts.EXPECT().ListAfter(orgID, nil, 100).Return(nil, nil)

		page, err := svc.ListContacts(orgID, "", 1000)

		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewPublicAPIService(mocks.NewMockContactRepositoryInterface(ctrl), mocks.NewMockDealRepositoryInterface(ctrl), mocks.NewMockContactServiceInterface(ctrl))

		_, err := svc.ListContacts(orgID, "%%%", 10)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCursor)
	})
}

func TestPublicAPIService_ListDeals(t *testing.T) {
	ctrl := gomock.NewController(t)
	deals := mocks.NewMockDealRepositoryInterface(ctrl)
	svc := service.NewPublicAPIService(mocks.NewMockContactRepositoryInterface(ctrl), deals, mocks.NewMockContactServiceInterface(ctrl))
	orgID := uuid.New()

	rows := make([]models.Deal, 2)
	for i := range rows {
		rows[i].ID = uuid.New()
		rows[i].Title = "deal"
		rows[i].CreatedAt = time.Now().Add(-time.Duration(i) * time.Hour)
	}
	deals.EXPECT().ListAfter(orgID, nil, 1).Return(rows, nil)

	page, err := svc.ListDeals(orgID, "", 1)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, rows[0].ID, page.Data[0].ID)
	assert.True(t, page.HasMore)
	assert.NotEmpty(t, page.NextCursor)
}

func TestPublicAPIService_CreateContactDelegatesToResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockContactServiceInterface(ctrl)
	svc := service.NewPublicAPIService(mocks.NewMockContactRepositoryInterface(ctrl), mocks.NewMockDealRepositoryInterface(ctrl), resolver)
	orgID := uuid.New()
	ctx := context.Background()
	req := &service.ResolveContactRequest{Name: "Maria", Phone: "11987654321"}

	resolver.EXPECT().
		Resolve(ctx, orgID, req).
		Return(&service.ResolveContactResponse{Created: false, MatchedBy: "phone"}, nil)

	resp, err := svc.CreateContact(ctx, orgID, req)

	require.NoError(t, err)
	assert.Equal(t, "phone", resp.MatchedBy)
}
