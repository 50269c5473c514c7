package handlers

import (
	"errors"
	"net/http"

	"court_filing_app_go/db"
	"court_filing_app_go/services"

	"github.com/labstack/echo/v4"
)

// EmergencyHandler serves the emergency filing validation endpoint
type EmergencyHandler struct {
	Validator *services.EmergencyValidator
}

func NewEmergencyHandler(validator *services.EmergencyValidator) *EmergencyHandler {
	return &EmergencyHandler{Validator: validator}
}

type emergencyValidateRequest struct {
	DocumentID string `json:"documentId"`
	FilingType string `json:"filingType"`
}

// Validate handles POST /emergency/validate. Checklist failures are not
// errors: a well-formed request against an existing document always returns
// a structured result.
func (h *EmergencyHandler) Validate(c echo.Context) error {
	var req emergencyValidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.DocumentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "documentId is required")
	}

	filingType, err := services.ParseEmergencyFilingType(req.FilingType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "filingType must be TRO or PRELIMINARY_INJUNCTION")
	}

	doc, err := services.GetDocument(db.DB, req.DocumentID)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Document not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load document")
	}

	result, err := h.Validator.ValidateEmergencyFiling(c.Request().Context(), doc.ExtractedText, filingType)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to validate filing")
	}

	return c.JSON(http.StatusOK, result)
}
