package handlers

import (
	"net/http"

	"court_filing_app_go/db"
	"court_filing_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetTemplatesHandler handles GET /templates
func GetTemplatesHandler(c echo.Context) error {
	templates, err := services.GetFilingTemplates(db.DB, false)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch templates")
	}
	return c.JSON(http.StatusOK, templates)
}

// GetEmergencyTemplatesHandler handles GET /templates/emergency
func GetEmergencyTemplatesHandler(c echo.Context) error {
	templates, err := services.GetFilingTemplates(db.DB, true)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch templates")
	}
	return c.JSON(http.StatusOK, templates)
}
