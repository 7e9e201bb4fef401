//go:build integration
// +build integration

package seed

import (
	"testing"

	"crm-backend/internal/database/models"
	"crm-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyIsIdempotent(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	defer base.TeardownTestSuite()

	file, err := Load("testdata/acme.yaml")
	require.NoError(t, err)

	summary, err := Apply(base.DB, file)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Organizations: 1, Profiles: 2, Boards: 1, Stages: 3, Products: 2, LabelMappings: 1}, summary)

	summary, err = Apply(base.DB, file)
	require.NoError(t, err)
	assert.Equal(t, &Summary{}, summary)

	var org models.Organization
	require.NoError(t, base.DB.Where("slug = ?", "acme").First(&org).Error)
	require.NotNil(t, org.Settings.DefaultBoardID)

	var mapping models.LabelMapping
	require.NoError(t, base.DB.Where("organization_id = ?", org.ID).First(&mapping).Error)
	assert.Equal(t, "proposal-sent", mapping.ChatwootLabel)

	var stage models.Stage
	require.NoError(t, base.DB.First(&stage, "id = ?", mapping.StageID).Error)
	assert.Equal(t, "Proposal", stage.Name)
	assert.Equal(t, 1, stage.Position)
}

func TestApplyAddsMissingStages(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	defer base.TeardownTestSuite()

	file := &File{Organizations: []OrganizationData{{
		Name:   "Globex",
		Slug:   "globex",
		Boards: []BoardData{{Name: "Support", Stages: []StageData{{Name: "New"}}}},
	}}}
	_, err := Apply(base.DB, file)
	require.NoError(t, err)

	file.Organizations[0].Boards[0].Stages = append(file.Organizations[0].Boards[0].Stages, StageData{Name: "Solved"})
	summary, err := Apply(base.DB, file)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Boards)
	assert.Equal(t, 1, summary.Stages)
}
