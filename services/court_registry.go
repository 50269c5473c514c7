package services

import (
	"fmt"

	"court_filing_app_go/models"
)

// CourtValidationResult is the outcome of checking a document type against a
// court. FilingRequirements are returned even when validation fails so callers
// can show what a valid filing would need.
type CourtValidationResult struct {
	IsValid            bool     `json:"is_valid"`
	Issues             []string `json:"issues"`
	FilingRequirements []string `json:"filing_requirements"`
}

// CourtRegistry is the static catalog of Massachusetts courts. It is built
// once at startup and read-only afterwards.
type CourtRegistry struct {
	courts map[string]*models.Court
	order  []string
}

// NewCourtRegistry builds the Massachusetts court catalog
func NewCourtRegistry() *CourtRegistry {
	r := &CourtRegistry{courts: make(map[string]*models.Court)}
	for _, court := range massachusettsCourts() {
		c := court
		r.courts[c.ID] = &c
		r.order = append(r.order, c.ID)
	}
	return r
}

// GetCourt returns the court with the given id, or an error if unknown
func (r *CourtRegistry) GetCourt(id string) (*models.Court, error) {
	court, ok := r.courts[id]
	if !ok {
		return nil, fmt.Errorf("court not found: %s", id)
	}
	return court, nil
}

// List returns all courts in catalog order
func (r *CourtRegistry) List() []*models.Court {
	courts := make([]*models.Court, 0, len(r.order))
	for _, id := range r.order {
		courts = append(courts, r.courts[id])
	}
	return courts
}

// ListByClass returns all courts of the given class in catalog order
func (r *CourtRegistry) ListByClass(class models.CourtClass) []*models.Court {
	var courts []*models.Court
	for _, id := range r.order {
		if r.courts[id].Class == class {
			courts = append(courts, r.courts[id])
		}
	}
	return courts
}

// ValidateDocumentForCourt checks whether a court accepts the given document
// type. Pure function of (docType, courtID): the result depends only on the
// court's accepted-types set.
func (r *CourtRegistry) ValidateDocumentForCourt(docType string, courtID string) CourtValidationResult {
	court, ok := r.courts[courtID]
	if !ok {
		return CourtValidationResult{
			IsValid:            false,
			Issues:             []string{"Invalid court specified"},
			FilingRequirements: []string{},
		}
	}

	result := CourtValidationResult{
		IsValid:            court.Accepts(docType),
		Issues:             []string{},
		FilingRequirements: court.FilingRequirements,
	}
	if !result.IsValid {
		result.Issues = append(result.Issues,
			fmt.Sprintf("Document type %q is not accepted by %s", docType, court.Name))
	}
	return result
}

// massachusettsCourts is the static seed catalog. Accepted document types and
// filing requirements follow the court's published filing rules.
func massachusettsCourts() []models.Court {
	return []models.Court{
		{
			ID:                "ma-fed-district",
			Name:              "United States District Court for the District of Massachusetts",
			Class:             models.CourtClassFederal,
			JurisdictionLabel: "Federal - District of Massachusetts",
			AcceptedDocumentTypes: []string{
				"Complaint", "Answer", "Motion", "Motion for Summary Judgment",
				"TRO", "Preliminary Injunction", "Notice of Appeal",
			},
			FilingRequirements: []string{
				"Civil cover sheet (JS 44)",
				"Filing fee or application to proceed in forma pauperis",
				"Electronic filing through CM/ECF",
				"Certificate of service",
				"Local Rule 7.1 certification for motions",
			},
		},
		{
			ID:                "ma-superior",
			Name:              "Massachusetts Superior Court",
			Class:             models.CourtClassSuperior,
			JurisdictionLabel: "Commonwealth of Massachusetts - Superior Court Department",
			AcceptedDocumentTypes: []string{
				"Complaint", "Answer", "Motion", "Motion for Summary Judgment",
				"Petition", "Preliminary Injunction", "TRO",
			},
			FilingRequirements: []string{
				"Civil action cover sheet",
				"Filing fee or affidavit of indigency",
				"Statement of damages for contract and tort claims",
				"Certificate of service",
			},
		},
		{
			ID:                "ma-probate-family",
			Name:              "Massachusetts Probate and Family Court",
			Class:             models.CourtClassProbateFamily,
			JurisdictionLabel: "Commonwealth of Massachusetts - Probate and Family Court Department",
			AcceptedDocumentTypes: []string{
				"Petition for Divorce", "Probate Petition", "Guardianship Petition", "Motion",
			},
			FilingRequirements: []string{
				"Certified copy of marriage certificate for divorce petitions",
				"Financial statement (short or long form)",
				"Filing fee or affidavit of indigency",
				"Certificate of absolute divorce or annulment statistics (R-408)",
			},
		},
		{
			ID:                "ma-district",
			Name:              "Massachusetts District Court",
			Class:             models.CourtClassDistrict,
			JurisdictionLabel: "Commonwealth of Massachusetts - District Court Department",
			AcceptedDocumentTypes: []string{
				"Complaint", "Answer", "Motion", "Small Claims Statement",
			},
			FilingRequirements: []string{
				"Statement of damages (must not exceed $50,000)",
				"Filing fee or affidavit of indigency",
				"Certificate of service",
			},
		},
		{
			ID:                "ma-housing",
			Name:              "Massachusetts Housing Court",
			Class:             models.CourtClassHousing,
			JurisdictionLabel: "Commonwealth of Massachusetts - Housing Court Department",
			AcceptedDocumentTypes: []string{
				"Summary Process Summons and Complaint", "Answer", "Motion",
			},
			FilingRequirements: []string{
				"Entry fee",
				"Proof of proper notice to quit for summary process",
				"Certificate of service",
			},
		},
		{
			ID:                "ma-juvenile",
			Name:              "Massachusetts Juvenile Court",
			Class:             models.CourtClassJuvenile,
			JurisdictionLabel: "Commonwealth of Massachusetts - Juvenile Court Department",
			AcceptedDocumentTypes: []string{
				"Care and Protection Petition", "Motion",
			},
			FilingRequirements: []string{
				"Sworn statement of facts supporting the petition",
				"Notice to all parties entitled to notice",
			},
		},
		{
			ID:                "ma-land",
			Name:              "Massachusetts Land Court",
			Class:             models.CourtClassLand,
			JurisdictionLabel: "Commonwealth of Massachusetts - Land Court Department",
			AcceptedDocumentTypes: []string{
				"Complaint", "Petition to Register Land", "Motion",
			},
			FilingRequirements: []string{
				"Certified copy of the deed or instrument at issue",
				"Filing fee",
				"Plan of the land where registration is sought",
			},
		},
	}
}
