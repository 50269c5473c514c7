package services

import (
	"testing"

	"court_filing_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestNewCourtRegistry(t *testing.T) {
	registry := NewCourtRegistry()

	courts := registry.List()
	assert.Len(t, courts, 7)

	// Catalog order is stable
	assert.Equal(t, "ma-fed-district", courts[0].ID)
	assert.Equal(t, "ma-land", courts[6].ID)
}

func TestGetCourt(t *testing.T) {
	registry := NewCourtRegistry()

	t.Run("Known court", func(t *testing.T) {
		court, err := registry.GetCourt("ma-probate-family")
		assert.NoError(t, err)
		assert.Equal(t, "Massachusetts Probate and Family Court", court.Name)
		assert.Equal(t, models.CourtClassProbateFamily, court.Class)
	})

	t.Run("Unknown court", func(t *testing.T) {
		court, err := registry.GetCourt("ma-admiralty")
		assert.Error(t, err)
		assert.Nil(t, court)
	})
}

func TestListByClass(t *testing.T) {
	registry := NewCourtRegistry()

	federal := registry.ListByClass(models.CourtClassFederal)
	assert.Len(t, federal, 1)
	assert.Equal(t, "ma-fed-district", federal[0].ID)

	none := registry.ListByClass(models.CourtClass("appellate"))
	assert.Empty(t, none)
}

func TestValidateDocumentForCourt(t *testing.T) {
	registry := NewCourtRegistry()

	t.Run("Accepted document type", func(t *testing.T) {
		result := registry.ValidateDocumentForCourt("TRO", "ma-fed-district")
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Issues)
		assert.NotEmpty(t, result.FilingRequirements)
	})

	t.Run("Rejected document type", func(t *testing.T) {
		result := registry.ValidateDocumentForCourt("Petition for Divorce", "ma-fed-district")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Issues, 1)
		assert.Contains(t, result.Issues[0], "Petition for Divorce")
		assert.Contains(t, result.Issues[0], "is not accepted by")
		// Requirements are still returned so callers can show what a valid filing needs
		assert.NotEmpty(t, result.FilingRequirements)
	})

	t.Run("Unknown court", func(t *testing.T) {
		result := registry.ValidateDocumentForCourt("Complaint", "ma-admiralty")
		assert.False(t, result.IsValid)
		assert.Equal(t, []string{"Invalid court specified"}, result.Issues)
		assert.Empty(t, result.FilingRequirements)
	})

	t.Run("Result depends only on inputs", func(t *testing.T) {
		first := registry.ValidateDocumentForCourt("Guardianship Petition", "ma-probate-family")
		second := registry.ValidateDocumentForCourt("Guardianship Petition", "ma-probate-family")
		assert.Equal(t, first, second)
		assert.True(t, first.IsValid)
	})

	t.Run("Divorce petition belongs in probate court", func(t *testing.T) {
		probate := registry.ValidateDocumentForCourt("Petition for Divorce", "ma-probate-family")
		assert.True(t, probate.IsValid)

		housing := registry.ValidateDocumentForCourt("Petition for Divorce", "ma-housing")
		assert.False(t, housing.IsValid)
	})
}
