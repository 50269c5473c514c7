package services

import (
	"testing"

	"court_filing_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestSeedFilingTemplates(t *testing.T) {
	testDB := setupTestDB(t)

	assert.NoError(t, SeedFilingTemplates(testDB))

	var count int64
	testDB.Model(&models.FilingTemplate{}).Count(&count)
	assert.Equal(t, int64(8), count)

	// Re-seeding is a no-op
	assert.NoError(t, SeedFilingTemplates(testDB))
	testDB.Model(&models.FilingTemplate{}).Count(&count)
	assert.Equal(t, int64(8), count)
}

func TestGetFilingTemplates(t *testing.T) {
	testDB := setupTestDB(t)
	assert.NoError(t, SeedFilingTemplates(testDB))

	t.Run("All active templates", func(t *testing.T) {
		templates, err := GetFilingTemplates(testDB, false)
		assert.NoError(t, err)
		assert.Len(t, templates, 8)
	})

	t.Run("Emergency templates only", func(t *testing.T) {
		templates, err := GetFilingTemplates(testDB, true)
		assert.NoError(t, err)
		assert.Len(t, templates, 3)
		for _, tmpl := range templates {
			assert.True(t, tmpl.IsEmergency)
		}
	})

	t.Run("Inactive templates are hidden", func(t *testing.T) {
		assert.NoError(t, testDB.Model(&models.FilingTemplate{}).
			Where("document_type = ?", "Complaint").
			Update("is_active", false).Error)

		templates, err := GetFilingTemplates(testDB, false)
		assert.NoError(t, err)
		assert.Len(t, templates, 7)
	})
}

func TestSeedLegalAidOrganizations(t *testing.T) {
	testDB := setupTestDB(t)

	assert.NoError(t, SeedLegalAidOrganizations(testDB))

	var count int64
	testDB.Model(&models.LegalAidOrganization{}).Count(&count)
	assert.Equal(t, int64(6), count)

	// Re-seeding is a no-op
	assert.NoError(t, SeedLegalAidOrganizations(testDB))
	testDB.Model(&models.LegalAidOrganization{}).Count(&count)
	assert.Equal(t, int64(6), count)
}
