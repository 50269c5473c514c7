package services

import (
	"strings"

	"court_filing_app_go/models"
)

// Issue strings surfaced to end users. Wording and order are stable: callers
// and tests rely on them.
const (
	IssueMissingSignature  = "Missing electronic signature (/s/)"
	IssueMissingCaseID     = "Missing case identification"
	IssueContentIncomplete = "Document content appears incomplete (less than 100 characters)"

	// MinDocumentLength guards against near-empty uploads
	MinDocumentLength = 100
)

// BasicComplianceResult is the outcome of the deterministic document checks
type BasicComplianceResult struct {
	IsCompliant bool     `json:"is_compliant"`
	Issues      []string `json:"issues"`
}

// CheckBasicCompliance runs the three fixed document checks. Each check is
// evaluated independently, never short-circuited, so every issue surfaces in
// one pass.
func CheckBasicCompliance(text string) BasicComplianceResult {
	issues := []string{}

	if !strings.Contains(text, "/s/") {
		issues = append(issues, IssueMissingSignature)
	}

	lower := strings.ToLower(text)
	if !strings.Contains(lower, "case") && !strings.Contains(lower, "civil action") {
		issues = append(issues, IssueMissingCaseID)
	}

	if len(text) < MinDocumentLength {
		issues = append(issues, IssueContentIncomplete)
	}

	return BasicComplianceResult{
		IsCompliant: len(issues) == 0,
		Issues:      issues,
	}
}

// basicRecommendations maps each basic compliance issue to its remediation
var basicRecommendations = map[string]string{
	IssueMissingSignature:  "Add an electronic signature in the form /s/ Your Name",
	IssueMissingCaseID:     "Include the case number or civil action number in the caption",
	IssueContentIncomplete: "Complete the document body before filing",
}

// RecommendationsForIssues returns one remediation string per basic issue,
// preserving issue order. Unknown issues are skipped.
func RecommendationsForIssues(issues []string) []string {
	var recs []string
	for _, issue := range issues {
		if rec, ok := basicRecommendations[issue]; ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// TypeRequirements lists filing requirements for a document type at a court
type TypeRequirements struct {
	General   []string `json:"general"`
	Specific  []string `json:"specific"`
	Deadlines []string `json:"deadlines"`
}

// DocumentTypeRequirements returns the curated requirement and deadline lists
// for a document type. This is a pure lookup keyed by the exact type string:
// unknown types get empty specific/deadline lists but still carry the court's
// general requirements.
func DocumentTypeRequirements(docType string, court *models.Court) TypeRequirements {
	req := TypeRequirements{
		General:   []string{},
		Specific:  []string{},
		Deadlines: []string{},
	}
	if court != nil {
		req.General = court.FilingRequirements
	}

	switch docType {
	case "Petition for Divorce":
		req.Specific = []string{
			"Certified copy of the marriage certificate",
			"Separation agreement if filing under Section 1A",
			"Financial statement from each party",
		}
		req.Deadlines = []string{
			"Financial statements due within 45 days of service",
		}
	case "Probate Petition":
		req.Specific = []string{
			"Original will if one exists",
			"Certified copy of the death certificate",
			"Bond of the personal representative",
		}
		req.Deadlines = []string{
			"Petition must be filed within 3 years of the date of death",
		}
	case "TRO":
		req.Specific = []string{
			"Affidavit showing immediate and irreparable injury",
			"Certification of efforts made to give notice to the adverse party",
			"Proposed order for the court's signature",
		}
		req.Deadlines = []string{
			"Order expires 14 days after entry unless extended for good cause",
		}
	case "Preliminary Injunction":
		req.Specific = []string{
			"Memorandum addressing the four Winter factors",
			"Supporting affidavits or verified complaint",
			"Proposed order for the court's signature",
		}
		req.Deadlines = []string{
			"Opposition due 14 days after service of the motion",
		}
	case "Motion for Summary Judgment":
		req.Specific = []string{
			"Statement of undisputed material facts",
			"Supporting memorandum of law",
			"Appendix of record evidence cited",
		}
		req.Deadlines = []string{
			"Must be filed by the dispositive motion deadline in the scheduling order",
			"Opposition due 21 days after service",
		}
	case "Complaint":
		req.Specific = []string{
			"Civil cover sheet",
			"Summons for each defendant",
		}
		req.Deadlines = []string{
			"Service must be completed within 90 days of filing",
		}
	}

	return req
}
