package handlers

import (
	"net/http"

	"court_filing_app_go/models"
	"court_filing_app_go/services"

	"github.com/labstack/echo/v4"
)

// CourtHandler serves the read-only court registry API
type CourtHandler struct {
	Registry *services.CourtRegistry
}

func NewCourtHandler(registry *services.CourtRegistry) *CourtHandler {
	return &CourtHandler{Registry: registry}
}

// List handles GET /courts with an optional ?class= filter
func (h *CourtHandler) List(c echo.Context) error {
	if class := c.QueryParam("class"); class != "" {
		return c.JSON(http.StatusOK, h.Registry.ListByClass(models.CourtClass(class)))
	}
	return c.JSON(http.StatusOK, h.Registry.List())
}

// Get handles GET /courts/:id
func (h *CourtHandler) Get(c echo.Context) error {
	court, err := h.Registry.GetCourt(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Court not found")
	}
	return c.JSON(http.StatusOK, court)
}

// ValidateDocumentType handles GET /courts/:id/validate?docType=...
// exposing the pure court validation check
func (h *CourtHandler) ValidateDocumentType(c echo.Context) error {
	docType := c.QueryParam("docType")
	if docType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "docType is required")
	}

	result := h.Registry.ValidateDocumentForCourt(docType, c.Param("id"))
	return c.JSON(http.StatusOK, result)
}
