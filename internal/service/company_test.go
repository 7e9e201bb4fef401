package service_test

import (
	"testing"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/mocks"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestCompanyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompanyRepositoryInterface(ctrl)
	svc := service.NewCompanyService(repo, validator.New())
	orgID := uuid.New()

	t.Run("normalizes phone and email", func(t *testing.T) {
		repo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(c *models.Company) error {
				assert.Equal(t, orgID, c.OrganizationID)
				return nil
			})

		resp, err := svc.Create(orgID, &service.CreateCompanyRequest{
			Name:  " Acme Ltda ",
			Phone: "(11) 3333-4444",
			Email: "Contato@Acme.test",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Ltda", resp.Name)
		assert.Equal(t, "+551133334444", resp.Phone)
		assert.Equal(t, "contato@acme.test", resp.Email)
	})

	t.Run("rejects unparseable phone", func(t *testing.T) {
		resp, err := svc.Create(orgID, &service.CreateCompanyRequest{Name: "Acme", Phone: "ext. 12"})

		assert.True(t, apperrors.IsValidation(err))
		assert.Nil(t, resp)
	})

	t.Run("rejects invalid website", func(t *testing.T) {
		resp, err := svc.Create(orgID, &service.CreateCompanyRequest{Name: "Acme", Website: "not a url"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.Nil(t, resp)
	})
}

func TestCompanyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompanyRepositoryInterface(ctrl)
	svc := service.NewCompanyService(repo, validator.New())
	orgID := uuid.New()

	company := &models.Company{Name: "Acme", Phone: "+551133334444", Email: "old@acme.test"}
	company.ID = uuid.New()
	company.OrganizationID = orgID

	email := ""
	repo.EXPECT().GetByID(orgID, company.ID).Return(company, nil)
	repo.EXPECT().Update(company).Return(nil)

	resp, err := svc.Update(orgID, company.ID, &service.UpdateCompanyRequest{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "+551133334444", resp.Phone)
	assert.Empty(t, resp.Email)
}

func TestCompanyService_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompanyRepositoryInterface(ctrl)
	svc := service.NewCompanyService(repo, validator.New())
	orgID, id := uuid.New(), uuid.New()

	repo.EXPECT().GetByID(orgID, id).Return(nil, gorm.ErrRecordNotFound)
	_, err := svc.GetByID(orgID, id)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)

	repo.EXPECT().Delete(orgID, id).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(orgID, id), apperrors.ErrCompanyNotFound)
}

func TestCompanyService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompanyRepositoryInterface(ctrl)
	svc := service.NewCompanyService(repo, validator.New())
	orgID := uuid.New()

	repo.EXPECT().
		Search(orgID, "acme", 50, 50).
		Return([]models.Company{{Name: "Acme"}}, int64(51), nil)

	resp, err := svc.Search(orgID, "acme", 2, 50)

	require.NoError(t, err)
	assert.Len(t, resp.Companies, 1)
	assert.Equal(t, int64(51), resp.Total)
	assert.Equal(t, 50, resp.PageSize)
}
