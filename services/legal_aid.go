package services

import (
	"fmt"
	"io"
	"strings"

	"court_filing_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// LegalAidFilter narrows the organization directory. Empty fields match
// everything.
type LegalAidFilter struct {
	PracticeArea string
	Location     string
	Availability string
	IsEmergency  bool
}

// FindLegalAidOrganizations returns directory entries matching the filter,
// ordered by name. Pure filter, no ranking.
func FindLegalAidOrganizations(db *gorm.DB, filter LegalAidFilter) ([]models.LegalAidOrganization, error) {
	query := db.Model(&models.LegalAidOrganization{})

	if filter.PracticeArea != "" {
		query = query.Where("practice_areas LIKE ?", "%"+filter.PracticeArea+"%")
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Availability != "" {
		query = query.Where("availability = ?", filter.Availability)
	}
	if filter.IsEmergency {
		query = query.Where("handles_emergencies = ?", true)
	}

	var orgs []models.LegalAidOrganization
	if err := query.Order("name ASC").Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch legal aid organizations: %w", err)
	}
	return orgs, nil
}

// ImportResult contains the summary of a spreadsheet import
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	SuccessCount   int      `json:"success_count"`
	FailedCount    int      `json:"failed_count"`
	Errors         []string `json:"errors,omitempty"`
}

// Expected column order of the organizations sheet
// Name | PracticeAreas | Location | Availability | HandlesEmergencies | Phone | Website
const legalAidImportColumns = 7

// ImportLegalAidOrganizations bulk-loads directory entries from an .xlsx
// spreadsheet. The first row is a header and is skipped; rows with a missing
// name are counted as failures, everything else is best-effort.
func ImportLegalAidOrganizations(db *gorm.DB, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		result.TotalProcessed++

		// Pad short rows so trailing empty cells are not fatal
		for len(row) < legalAidImportColumns {
			row = append(row, "")
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing organization name", i+1))
			continue
		}

		org := models.LegalAidOrganization{
			Name:               name,
			PracticeAreas:      strings.TrimSpace(row[1]),
			Location:           strings.TrimSpace(row[2]),
			Availability:       strings.TrimSpace(row[3]),
			HandlesEmergencies: parseSpreadsheetBool(row[4]),
			Phone:              strings.TrimSpace(row[5]),
			Website:            strings.TrimSpace(row[6]),
		}

		if err := db.Create(&org).Error; err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.SuccessCount++
	}

	return result, nil
}

func parseSpreadsheetBool(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}
