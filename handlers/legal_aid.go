package handlers

import (
	"net/http"
	"strings"

	"court_filing_app_go/db"
	"court_filing_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetLegalAidHandler handles GET /legal-aid with optional filters:
// practiceArea, location, availability and isEmergency.
func GetLegalAidHandler(c echo.Context) error {
	filter := services.LegalAidFilter{
		PracticeArea: c.QueryParam("practiceArea"),
		Location:     c.QueryParam("location"),
		Availability: c.QueryParam("availability"),
		IsEmergency:  strings.EqualFold(c.QueryParam("isEmergency"), "true"),
	}

	orgs, err := services.FindLegalAidOrganizations(db.DB, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch legal aid organizations")
	}

	return c.JSON(http.StatusOK, orgs)
}

// ImportLegalAidHandler handles POST /legal-aid/import with a multipart .xlsx
// file of organizations
func ImportLegalAidHandler(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	result, err := services.ImportLegalAidOrganizations(db.DB, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to import spreadsheet: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
