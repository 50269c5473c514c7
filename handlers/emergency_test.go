package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"court_filing_app_go/models"
	"court_filing_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestEmergencyValidateHandler(t *testing.T) {
	testDB := setupTestDB(t)
	handler := NewEmergencyHandler(services.NewEmergencyValidator(nil))

	t.Run("Valid TRO document", func(t *testing.T) {
		text := "The plaintiff will suffer immediate and irreparable injury. Counsel " +
			"attempted to give notice by phone. The attached affidavit states the facts."
		doc := createStoredDocument(t, testDB, models.DocumentStatusAnalyzed, text)

		body := bytes.NewBufferString(`{"documentId": "` + doc.ID + `", "filingType": "TRO"}`)
		_, c, rec := setupEcho("POST", "/emergency/validate", body)

		assert.NoError(t, handler.Validate(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var result services.EmergencyFilingValidation
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, services.FilingTypeTRO, result.FilingType)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Issues)
	})

	t.Run("Deficient preliminary injunction motion", func(t *testing.T) {
		doc := createStoredDocument(t, testDB, models.DocumentStatusAnalyzed, "The movant requests an injunction.")

		body := bytes.NewBufferString(`{"documentId": "` + doc.ID + `", "filingType": "PRELIMINARY_INJUNCTION"}`)
		_, c, rec := setupEcho("POST", "/emergency/validate", body)

		assert.NoError(t, handler.Validate(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var result services.EmergencyFilingValidation
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.False(t, result.IsValid)
		assert.Len(t, result.Issues, 4)
		assert.Len(t, result.Recommendations, 4)
	})

	t.Run("Unknown filing type", func(t *testing.T) {
		doc := createStoredDocument(t, testDB, models.DocumentStatusAnalyzed, "text")

		body := bytes.NewBufferString(`{"documentId": "` + doc.ID + `", "filingType": "HABEAS"}`)
		_, c, _ := setupEcho("POST", "/emergency/validate", body)

		err := handler.Validate(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Missing documentId", func(t *testing.T) {
		body := bytes.NewBufferString(`{"filingType": "TRO"}`)
		_, c, _ := setupEcho("POST", "/emergency/validate", body)

		err := handler.Validate(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Unknown document", func(t *testing.T) {
		body := bytes.NewBufferString(`{"documentId": "` + uuid.New().String() + `", "filingType": "TRO"}`)
		_, c, _ := setupEcho("POST", "/emergency/validate", body)

		err := handler.Validate(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
